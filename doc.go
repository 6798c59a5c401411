// package leftright provides a concurrent ordered set whose lookups never
// wait on writers.
//
// A Set keeps two replicas of the same sorted key set. Readers announce
// themselves on a read indicator, check which replica is currently published,
// and query it. A writer mutates the replica readers are not using, publishes
// it, waits until every reader that could still be looking at the old replica
// has departed, and then repeats the mutation on the old replica so the two
// converge. Readers therefore always see one complete replica, never a
// half-applied mutation:
//
//	set := leftright.New[int]()
//
//	// any number of goroutines
//	if set.Contains(5) {
//		...
//	}
//
//	// writers serialize among themselves but never make a reader wait
//	set.Add(5)
//	set.Remove(5)
//
// Contains is wait-free population oblivious: it completes in a bounded
// number of steps no matter how many other readers are active, and a
// concurrent writer never blocks it. Add and Remove are blocking: they hold
// a mutex for the duration of the call and spin until in-flight readers
// depart. The wait is bounded by how long readers spend inside a lookup, so
// writer progress depends on readers finishing their lookups, never the
// other way around.
//
// The read indicator tallies arrivals across two arrays of padded per-core
// counters, selected by a version that the writer toggles while draining.
// Splitting the tally across two versions is what keeps readers wait-free:
// a reader's single increment is valid no matter how many writer handovers
// race with it, so it never needs to re-check and retry.
package leftright
