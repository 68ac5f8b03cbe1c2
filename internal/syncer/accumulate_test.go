package syncer

import (
	"testing"
	"time"

	"notioncal/internal/models"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestAccumulateDropsCompleted(t *testing.T) {
	items := []models.Item{
		{Name: "Done already", Status: models.StatusCompleted, StartDate: datePtr(2024, 3, 1)},
		{Name: "Still open", Status: "In Progress", StartDate: datePtr(2024, 3, 2)},
		{Name: "Also done", Status: models.StatusCompleted},
	}

	out := Accumulate(items)
	if len(out) != 1 || out[0].Name != "Still open" {
		t.Fatalf("expected only the open item, got %v", out)
	}
}

func TestAccumulateCollapsesDuplicates(t *testing.T) {
	// Same name, date, and status; link and multi-select differ.
	a := models.Item{Name: "Submit form", Status: "In Progress", StartDate: datePtr(2024, 4, 1), Link: "https://www.notion.so/aaa"}
	b := models.Item{Name: "Submit form", Status: "In Progress", StartDate: datePtr(2024, 4, 1), Link: "https://www.notion.so/bbb",
		MultiChoice: map[string][]string{"Tags": {"work"}}}

	out := Accumulate([]models.Item{a, b})
	if len(out) != 1 {
		t.Fatalf("expected 1 item, got %d", len(out))
	}
	if out[0].Link != a.Link {
		t.Errorf("expected the first-seen item to win, got link %q", out[0].Link)
	}
}

func TestAccumulateKeepsWhenAnyFieldDiffers(t *testing.T) {
	base := models.Item{Name: "Submit form", Status: "In Progress", StartDate: datePtr(2024, 4, 1)}

	cases := []struct {
		name  string
		other models.Item
	}{
		{"different name", models.Item{Name: "Submit report", Status: "In Progress", StartDate: datePtr(2024, 4, 1)}},
		{"different status", models.Item{Name: "Submit form", Status: "Blocked", StartDate: datePtr(2024, 4, 1)}},
		{"different date", models.Item{Name: "Submit form", Status: "In Progress", StartDate: datePtr(2024, 4, 2)}},
		{"missing date", models.Item{Name: "Submit form", Status: "In Progress"}},
	}

	for _, tc := range cases {
		out := Accumulate([]models.Item{base, tc.other})
		if len(out) != 2 {
			t.Errorf("%s: expected both items kept, got %d", tc.name, len(out))
		}
	}
}

func TestAccumulatePreservesOrder(t *testing.T) {
	items := []models.Item{
		{Name: "c", Status: "In Progress"},
		{Name: "a", Status: "In Progress"},
		{Name: "b", Status: "In Progress"},
		{Name: "a", Status: "In Progress"}, // duplicate
	}

	out := Accumulate(items)
	if len(out) != 3 {
		t.Fatalf("expected 3 items, got %d", len(out))
	}
	for i, want := range []string{"c", "a", "b"} {
		if out[i].Name != want {
			t.Errorf("position %d: expected %q, got %q", i, want, out[i].Name)
		}
	}
}
