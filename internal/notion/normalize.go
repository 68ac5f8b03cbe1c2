package notion

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jomei/notionapi"

	"notioncal/internal/models"
)

const pageBaseURL = "https://www.notion.so/"

// ErrMissingTitle marks a page whose title property has no text content.
// Such a page cannot become a calendar event and is skipped by the syncer.
var ErrMissingTitle = errors.New("page has no extractable title")

// Normalize flattens one Notion page into an Item. Each recognized property
// kind is extracted independently; when a page carries several properties of
// the same kind the last one wins. Missing optional properties are fine —
// only a page that yields no title text at all is an error.
func Normalize(page notionapi.Page) (models.Item, error) {
	item := models.Item{
		Link: pageBaseURL + strings.ReplaceAll(page.ID.String(), "-", ""),
	}

	for name, prop := range page.Properties {
		switch p := prop.(type) {
		case *notionapi.TitleProperty:
			// A title with no text runs contributes nothing but does not
			// abort the record.
			if text, ok := firstRunText(p.Title); ok {
				item.Name = text
			}
		case *notionapi.SelectProperty:
			if p.Select.Name != "" {
				item.Status = p.Select.Name
			}
		case *notionapi.MultiSelectProperty:
			if item.MultiChoice == nil {
				item.MultiChoice = make(map[string][]string)
			}
			options := make([]string, 0, len(p.MultiSelect))
			for _, opt := range p.MultiSelect {
				options = append(options, opt.Name)
			}
			item.MultiChoice[name] = options
		case *notionapi.DateProperty:
			// Only the start matters; a date range's end is ignored.
			if p.Date != nil && p.Date.Start != nil {
				start := time.Time(*p.Date.Start)
				item.StartDate = &start
			}
		}
	}

	if item.Name == "" {
		return models.Item{}, fmt.Errorf("page %s: %w", page.ID, ErrMissingTitle)
	}
	if item.Status == "" {
		item.Status = models.StatusNotStarted
	}
	return item, nil
}

// firstRunText returns the content of the property's first text run, or
// false when there are no runs to read.
func firstRunText(runs []notionapi.RichText) (string, bool) {
	if len(runs) == 0 {
		return "", false
	}
	if runs[0].Text != nil {
		return runs[0].Text.Content, true
	}
	return runs[0].PlainText, true
}
