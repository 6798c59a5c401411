package leftright

import (
	"testing"

	"github.com/zeebo/assert"
)

func TestBTreeReplica(t *testing.T) {
	r := newBTreeReplica[int]()

	assert.That(t, r.Add(1))
	assert.That(t, !r.Add(1))
	assert.That(t, r.Contains(1))
	assert.That(t, !r.Contains(2))
	assert.That(t, r.Remove(1))
	assert.That(t, !r.Remove(1))
	assert.That(t, !r.Contains(1))
}
