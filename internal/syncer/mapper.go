package syncer

import (
	"time"

	"google.golang.org/api/calendar/v3"

	"notioncal/internal/models"
)

// Scheduling policy for synced tasks: a fixed evening block on the task's
// start date, with a popup reminder a day ahead.
const (
	startHour       = 19
	endHour         = 22
	endMinute       = 30
	reminderMinutes = 24 * 60
)

// mapEvent converts a dated item into a calendar event. The event occupies
// the 19:00-22:30 block of the item's start date in the given timezone.
// Callers must filter out items without a start date before calling.
func mapEvent(item models.Item, loc *time.Location) *calendar.Event {
	day := *item.StartDate
	start := time.Date(day.Year(), day.Month(), day.Day(), startHour, 0, 0, 0, loc)
	end := time.Date(day.Year(), day.Month(), day.Day(), endHour, endMinute, 0, 0, loc)

	return &calendar.Event{
		Summary:     item.Name,
		Description: item.Link + "\n\n" + item.Status,
		Start: &calendar.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: loc.String(),
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: loc.String(),
		},
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "popup", Minutes: reminderMinutes},
			},
			// UseDefault is a zero value and would be dropped from the
			// request body without this.
			ForceSendFields: []string{"UseDefault"},
		},
	}
}
