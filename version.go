package leftright

import "runtime"

// toggleAndWait routes future arrivals to the other counter array and waits
// out every reader tallied under the current one. Must be called with the
// writer mutex held, after the read side has been republished. On return, no
// reader that could have seen the previously published replica is still
// mid-lookup.
func (ind *indicator) toggleAndWait() {
	cur := ind.version.Load()
	next := 1 - cur

	// A reader tallied during an earlier handover can still be in flight on
	// the next array; it has to empty before the array is reused.
	spinUntil(func() bool { return ind.isEmpty(next) })

	ind.version.Store(next)

	// Everything that arrived under cur predates the version store, so once
	// cur drains the old replica is unreachable.
	spinUntil(func() bool { return ind.isEmpty(cur) })
}

// spinUntil evaluates cond until it holds, yielding the processor between
// attempts. There is deliberately no upper bound and no timeout: the drain
// finishes when readers depart, which is the protocol's only liveness
// assumption.
func spinUntil(cond func() bool) {
	for !cond() {
		runtime.Gosched()
	}
}
