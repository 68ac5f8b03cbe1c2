package models

import "time"

// Status values recognized by the sync pipeline. A record whose select
// property is unset gets StatusNotStarted; StatusCompleted items are never
// pushed to the calendar.
const (
	StatusNotStarted = "Not Started"
	StatusCompleted  = "Completed"
)

// Item is the normalized representation of one task record, flattened down
// to the fields the calendar sync cares about. It lives only for the
// duration of a single run.
type Item struct {
	Name        string              // Task title, from the record's title property
	Status      string              // Select value, or StatusNotStarted when unset
	StartDate   *time.Time          // Date property start; nil means "do not schedule"
	Link        string              // Direct URL back to the source page
	MultiChoice map[string][]string // Multi-select properties, keyed by property name
}

// HasStartDate reports whether the item can be scheduled as an event.
func (i Item) HasStartDate() bool { return i.StartDate != nil }
