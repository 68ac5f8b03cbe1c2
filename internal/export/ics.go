package export

import (
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"notioncal/internal/models"
)

// WriteICS encodes the dated items as an iCalendar stream, so a run's plan
// can be inspected or imported elsewhere without touching the calendar API.
// Items without a start date are left out, mirroring the sync pipeline.
func WriteICS(w io.Writer, items []models.Item, loc *time.Location) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//notioncal//EN")

	for _, item := range items {
		if !item.HasStartDate() {
			continue
		}
		cal.Children = append(cal.Children, toVEvent(item, loc))
	}
	if len(cal.Children) == 0 {
		return fmt.Errorf("no dated items to export")
	}

	return ical.NewEncoder(w).Encode(cal)
}

// toVEvent builds a VEVENT on the same evening block the syncer schedules.
func toVEvent(item models.Item, loc *time.Location) *ical.Component {
	day := *item.StartDate
	start := time.Date(day.Year(), day.Month(), day.Day(), 19, 0, 0, 0, loc)
	end := time.Date(day.Year(), day.Month(), day.Day(), 22, 30, 0, 0, loc)

	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, uuid.New().String())
	ve.Props.SetText(ical.PropSummary, item.Name)
	ve.Props.SetText(ical.PropDescription, item.Link+"\n\n"+item.Status)
	ve.Props.SetDateTime(ical.PropDateTimeStamp, time.Now().UTC())
	ve.Props.SetDateTime(ical.PropDateTimeStart, start)
	ve.Props.SetDateTime(ical.PropDateTimeEnd, end)
	return ve
}
