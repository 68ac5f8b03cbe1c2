package syncer

import (
	"testing"

	"google.golang.org/api/calendar/v3"
)

func timedEvent(summary, start string) *calendar.Event {
	return &calendar.Event{Summary: summary, Start: &calendar.EventDateTime{DateTime: start}}
}

func TestSameEvent(t *testing.T) {
	cases := []struct {
		name string
		a, b *calendar.Event
		want bool
	}{
		{
			"equal summary and start",
			timedEvent("Write report", "2024-03-10T19:00:00-03:00"),
			timedEvent("Write report", "2024-03-10T19:00:00-03:00"),
			true,
		},
		{
			"different summary",
			timedEvent("Write report", "2024-03-10T19:00:00-03:00"),
			timedEvent("Submit form", "2024-03-10T19:00:00-03:00"),
			false,
		},
		{
			"different start",
			timedEvent("Write report", "2024-03-10T19:00:00-03:00"),
			timedEvent("Write report", "2024-03-11T19:00:00-03:00"),
			false,
		},
		{
			"all-day event never matches",
			&calendar.Event{Summary: "Write report", Start: &calendar.EventDateTime{Date: "2024-03-10"}},
			timedEvent("Write report", "2024-03-10T19:00:00-03:00"),
			false,
		},
		{
			"missing start never matches",
			&calendar.Event{Summary: "Write report"},
			timedEvent("Write report", "2024-03-10T19:00:00-03:00"),
			false,
		},
	}

	for _, tc := range cases {
		if got := sameEvent(tc.a, tc.b); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}
