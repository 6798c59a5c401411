package leftright

import (
	"cmp"

	"github.com/tidwall/btree"
)

// Replica is the sequential ordered set a Set keeps two copies of. It needs
// no internal synchronization: the Set never issues a mutation while a
// reader can reach the replica, and writers are serialized.
type Replica[T any] interface {
	// Add inserts key and reports whether it was absent. A duplicate add
	// must leave the replica unchanged.
	Add(key T) bool
	// Remove deletes key and reports whether it was present.
	Remove(key T) bool
	// Contains reports whether key is present.
	Contains(key T) bool
}

// btreeReplica is the default Replica for ordered keys.
type btreeReplica[T cmp.Ordered] struct {
	tr *btree.BTreeG[T]
}

func newBTreeReplica[T cmp.Ordered]() *btreeReplica[T] {
	less := func(a, b T) bool { return a < b }
	return &btreeReplica[T]{
		tr: btree.NewBTreeGOptions(less, btree.Options{NoLocks: true}),
	}
}

func (r *btreeReplica[T]) Add(key T) bool {
	_, replaced := r.tr.Set(key)
	return !replaced
}

func (r *btreeReplica[T]) Remove(key T) bool {
	_, removed := r.tr.Delete(key)
	return removed
}

func (r *btreeReplica[T]) Contains(key T) bool {
	_, ok := r.tr.Get(key)
	return ok
}
