package leftright

import (
	"cmp"
	"runtime"
	"sync"
	"sync/atomic"
)

// Set is a concurrent ordered set. Contains is wait-free population
// oblivious. Add and Remove serialize on an internal mutex and block until
// readers still on the replica they are about to mutate have departed.
type Set[T any] struct {
	replicas [2]Replica[T]
	side     atomic.Uint32 // index of the replica readers consult
	mu       sync.Mutex    // serializes writers
	ind      *indicator
}

// Option configures a Set at construction.
type Option func(*options)

type options struct {
	cores int
}

// WithCores overrides the runtime estimate of available cores used to size
// the reader presence counters. It affects contention only, never
// correctness; non-positive values fall back to the runtime estimate.
func WithCores(n int) Option {
	return func(o *options) { o.cores = n }
}

// New returns an empty Set over ordered keys backed by B-tree replicas.
func New[T cmp.Ordered](opts ...Option) *Set[T] {
	return NewWithReplicas[T](newBTreeReplica[T](), newBTreeReplica[T](), opts...)
}

// NewWithReplicas returns a Set reading from two empty replicas supplied by
// the caller. The caller must not use the replicas afterwards; the Set owns
// them for its whole lifetime.
func NewWithReplicas[T any](left, right Replica[T], opts ...Option) *Set[T] {
	o := options{cores: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&o)
	}
	if o.cores <= 0 {
		o.cores = runtime.GOMAXPROCS(0)
	}
	return &Set[T]{
		replicas: [2]Replica[T]{left, right},
		ind:      newIndicator(o.cores),
	}
}

// Contains reports whether key is in the set. It takes no lock and never
// blocks: its cost is one tally, one replica lookup, one untally.
func (s *Set[T]) Contains(key T) bool {
	t := s.ind.arrive()
	ok := s.replicas[s.side.Load()].Contains(key)
	t.depart()
	return ok
}

// Add inserts key, reporting whether it was absent. A duplicate add returns
// false without republishing or draining. Blocks behind other writers and,
// briefly, behind in-flight readers.
func (s *Set[T]) Add(key T) bool {
	return s.mutate(func(r Replica[T]) bool { return r.Add(key) })
}

// Remove deletes key, reporting whether it was present. An absent key
// returns false without republishing or draining.
func (s *Set[T]) Remove(key T) bool {
	return s.mutate(func(r Replica[T]) bool { return r.Remove(key) })
}

// mutate applies op to the replica readers are not using, publishes that
// replica, drains readers off the old one, then applies op again so both
// replicas converge. The second application's result is discarded: the
// replicas held identical content when op first succeeded.
func (s *Set[T]) mutate(op func(Replica[T]) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	back := 1 - s.side.Load()
	if !op(s.replicas[back]) {
		return false
	}
	s.side.Store(back)
	s.ind.toggleAndWait()
	op(s.replicas[1-back])
	return true
}
