package syncer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jomei/notionapi"
	"google.golang.org/api/calendar/v3"

	"notioncal/internal/models"
	"notioncal/internal/notion"
)

// SourceLister fetches the raw task records to reconcile.
type SourceLister interface {
	QueryDatabase(ctx context.Context) ([]notionapi.Page, error)
}

// Calendar is the narrow slice of the Google Calendar API the syncer needs.
type Calendar interface {
	ListEvents(calendarID string) ([]*calendar.Event, error)
	InsertEvent(calendarID string, event *calendar.Event) (*calendar.Event, error)
	DeleteEvent(calendarID, eventID string) error
}

// Syncer drives one-way reconciliation from the task database to a calendar.
// Each run is independent: both sides are fetched fresh and no cursor is
// kept between runs.
type Syncer struct {
	logger     *slog.Logger
	source     SourceLister
	calendar   Calendar
	calendarID string
	timezone   *time.Location
	dryRun     bool
}

// NewSyncer creates a new Syncer.
func NewSyncer(logger *slog.Logger, source SourceLister, cal Calendar, calendarID string, tz *time.Location, dryRun bool) *Syncer {
	return &Syncer{
		logger:     logger,
		source:     source,
		calendar:   cal,
		calendarID: calendarID,
		timezone:   tz,
		dryRun:     dryRun,
	}
}

// Sync performs one full reconciliation cycle: fetch and normalize the task
// database, then replace the calendar event for every dated item. Items are
// processed in first-seen order, and the first event operation failure
// aborts the remaining items.
func (s *Syncer) Sync(ctx context.Context) error {
	logger := s.logger.With("run", uuid.New().String())
	logger.Info("Starting sync cycle.")

	items, err := CollectItems(ctx, logger, s.source)
	if err != nil {
		return err
	}

	synced := 0
	for _, item := range items {
		if !item.HasStartDate() {
			logger.Debug("Item has no start date, skipping.", "name", item.Name)
			continue
		}
		if err := s.upsertEvent(logger, item); err != nil {
			return fmt.Errorf("failed to sync %q: %w", item.Name, err)
		}
		synced++
	}

	logger.Info("Sync cycle finished.", "synced", synced)
	return nil
}

// CollectItems fetches the database and folds it into the deduplicated item
// list. Records without an extractable title are logged and left behind
// rather than failing the run.
func CollectItems(ctx context.Context, logger *slog.Logger, source SourceLister) ([]models.Item, error) {
	pages, err := source.QueryDatabase(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch source records: %w", err)
	}

	var items []models.Item
	skipped := 0
	for _, page := range pages {
		item, err := notion.Normalize(page)
		if err != nil {
			logger.Warn("Skipping malformed record.", "page", page.ID.String(), "error", err)
			skipped++
			continue
		}
		items = accumulate(items, item)
	}

	logger.Info("Collected items from source.", "fetched", len(pages), "skipped", skipped, "kept", len(items))
	return items, nil
}

// upsertEvent deletes every calendar event sharing the item's title, then
// inserts the freshly mapped one. Re-runs are idempotent for unchanged
// items, at the cost of the event id changing each time.
func (s *Syncer) upsertEvent(logger *slog.Logger, item models.Item) error {
	event := mapEvent(item, s.timezone)

	if s.dryRun {
		logger.Info("[DRY RUN] Would replace event.", "summary", event.Summary, "start", event.Start.DateTime)
		return nil
	}

	existing, err := s.calendar.ListEvents(s.calendarID)
	if err != nil {
		return fmt.Errorf("failed to list calendar events: %w", err)
	}
	for _, old := range existing {
		if old.Summary != event.Summary {
			continue
		}
		if err := s.calendar.DeleteEvent(s.calendarID, old.Id); err != nil {
			return fmt.Errorf("failed to delete event %s: %w", old.Id, err)
		}
		logger.Info("Deleted existing event.", "summary", old.Summary, "id", old.Id)
	}

	inserted, err := s.calendar.InsertEvent(s.calendarID, event)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	logger.Info("Added event to calendar.", "summary", inserted.Summary, "link", inserted.HtmlLink)
	return nil
}
