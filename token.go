package leftright

// token records the counter an arrive incremented so the matching depart
// decrements that same counter, even if the goroutine migrated or the
// version toggled in between.
type token struct {
	slot *slot
}

// depart retracts the reader's presence. Must be called exactly once.
func (t token) depart() { t.slot.n.Add(-1) }
