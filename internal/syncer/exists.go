package syncer

import "google.golang.org/api/calendar/v3"

// sameEvent reports whether two events denote the same scheduled entry: both
// must have timed (not all-day) starts, and summary and start must match
// exactly. This is stricter than the deletion key, which matches on summary
// alone, and is kept for diagnostics rather than to gate insertion.
func sameEvent(a, b *calendar.Event) bool {
	if a.Start == nil || b.Start == nil {
		return false
	}
	if a.Start.DateTime == "" || b.Start.DateTime == "" {
		return false
	}
	return a.Summary == b.Summary && a.Start.DateTime == b.Start.DateTime
}
