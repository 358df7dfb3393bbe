package utils

import "time"

// SameDay reports whether two instants fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ShouldRollOver reports whether the day ledger last touched at lastActive
// belongs to an earlier calendar day than now. The comparison is by calendar
// date, not elapsed hours: 23:59 to 00:01 rolls over, a 23-hour gap within
// one day does not.
func ShouldRollOver(lastActive, now time.Time) bool {
	return !SameDay(lastActive, now)
}
