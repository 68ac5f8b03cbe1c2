package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"notioncal/internal/models"
)

func TestWriteICS(t *testing.T) {
	due := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	items := []models.Item{
		{Name: "Write report", Status: "In Progress", StartDate: &due, Link: "https://www.notion.so/abc123"},
		{Name: "Someday task", Status: models.StatusNotStarted}, // undated, must be skipped
	}

	var buf bytes.Buffer
	if err := WriteICS(&buf, items, time.UTC); err != nil {
		t.Fatalf("write ics: %v", err)
	}
	body := buf.String()

	for _, field := range []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"BEGIN:VEVENT",
		"SUMMARY:Write report",
		"DTSTART:20240310T190000Z",
		"DTEND:20240310T223000Z",
		"END:VEVENT",
		"END:VCALENDAR",
	} {
		if !strings.Contains(body, field) {
			t.Errorf("ICS output missing %q", field)
		}
	}

	if strings.Contains(body, "Someday task") {
		t.Error("undated item must not be exported")
	}
}

func TestWriteICSNoDatedItems(t *testing.T) {
	items := []models.Item{{Name: "Someday task", Status: models.StatusNotStarted}}

	var buf bytes.Buffer
	if err := WriteICS(&buf, items, time.UTC); err == nil {
		t.Fatal("expected an error when nothing is exportable")
	}
}
