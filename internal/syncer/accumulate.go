package syncer

import "notioncal/internal/models"

// accumulate folds one normalized item into the result list. Completed items
// are dropped outright, and an incoming item is dropped as a duplicate when
// the list already holds one with the same name, the same status, and the
// same start date (including both having none). Link and multi-select fields
// do not participate in the comparison. First-seen order is preserved.
func accumulate(existing []models.Item, incoming models.Item) []models.Item {
	if incoming.Status == models.StatusCompleted {
		return existing
	}
	for _, item := range existing {
		if isDuplicate(item, incoming) {
			return existing
		}
	}
	return append(existing, incoming)
}

// Accumulate folds a batch of items in order. It is a pure function: the
// same input sequence always yields the same output list.
func Accumulate(items []models.Item) []models.Item {
	var out []models.Item
	for _, item := range items {
		out = accumulate(out, item)
	}
	return out
}

func isDuplicate(a, b models.Item) bool {
	if a.Name != b.Name || a.Status != b.Status {
		return false
	}
	if (a.StartDate == nil) != (b.StartDate == nil) {
		return false
	}
	return a.StartDate == nil || a.StartDate.Equal(*b.StartDate)
}
