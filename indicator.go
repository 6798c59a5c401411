package leftright

import (
	"sync"
	"sync/atomic"
	"unsafe"
)

const (
	cacheLine    = 64 // typical size of a cache line
	slotsPerCore = 4  // counter slots per core to spread arrivals
)

// goroutine identities for picking a counter slot. the pool hands the same
// id back to the same P in the common case, so repeated arrivals from one
// goroutine tend to hit the same slot.
var slotID uint64
var slotPool = sync.Pool{
	New: func() any { return atomic.AddUint64(&slotID, 1) },
}

// slot is a single presence counter padded out to a cache line so that
// concurrent arrivals on different slots never share one.
type slot struct {
	n atomic.Int32
	_ [cacheLine - unsafe.Sizeof(atomic.Int32{})]byte
}

// indicator tracks in-flight readers across two versioned arrays of counter
// slots. Readers touch exactly one slot per arrive/depart pair; only writers
// read the version's array in full.
type indicator struct {
	version atomic.Uint32 // 0 or 1; stored only inside toggleAndWait
	_       [cacheLine - unsafe.Sizeof(atomic.Uint32{})]byte
	slots   [2][]slot
}

// newIndicator sizes both slot arrays from the core estimate. The size only
// affects contention: colliding goroutines share a slot harmlessly.
func newIndicator(cores int) *indicator {
	ind := new(indicator)
	ind.slots[0] = make([]slot, cores*slotsPerCore)
	ind.slots[1] = make([]slot, cores*slotsPerCore)
	return ind
}

// arrive tallies the caller as an in-flight reader under the current version
// and returns a token that departs the same counter. A single atomic add;
// never blocks, regardless of how many arrivals or handovers race with it.
func (ind *indicator) arrive() token {
	idi := slotPool.Get()
	slotPool.Put(idi)
	id, _ := idi.(uint64)

	v := ind.version.Load()
	s := &ind.slots[v][id%uint64(len(ind.slots[v]))]
	s.n.Add(1)
	return token{slot: s}
}

// isEmpty reports whether every presence counter for version v reads zero.
// Writer-only: a linear scan bounded by the construction-time slot count.
func (ind *indicator) isEmpty(v uint32) bool {
	for i := range ind.slots[v] {
		if ind.slots[v][i].n.Load() != 0 {
			return false
		}
	}
	return true
}
