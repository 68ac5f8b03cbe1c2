package notion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jomei/notionapi"
)

// Client wraps the Notion API for querying a single task database.
type Client struct {
	api        *notionapi.Client
	databaseID notionapi.DatabaseID
	logger     *slog.Logger
}

// NewClient creates a Notion client for the given integration token and database.
func NewClient(logger *slog.Logger, token, databaseID string) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("NOTION_TOKEN environment variable not set")
	}
	if databaseID == "" {
		return nil, fmt.Errorf("NOTION_DATABASE_ID environment variable not set")
	}

	return &Client{
		api:        notionapi.NewClient(notionapi.Token(token)),
		databaseID: notionapi.DatabaseID(databaseID),
		logger:     logger,
	}, nil
}

// QueryDatabase fetches every page of the task database, following the
// cursor until the result set is exhausted. Any API error aborts the run;
// there is no partial result.
func (c *Client) QueryDatabase(ctx context.Context) ([]notionapi.Page, error) {
	var pages []notionapi.Page
	req := &notionapi.DatabaseQueryRequest{}
	for {
		resp, err := c.api.Database.Query(ctx, c.databaseID, req)
		if err != nil {
			return nil, fmt.Errorf("failed to query notion database %s: %w", c.databaseID, err)
		}
		pages = append(pages, resp.Results...)
		if !resp.HasMore {
			break
		}
		req.StartCursor = resp.NextCursor
	}

	c.logger.Debug("Fetched pages from Notion.", "count", len(pages))
	return pages, nil
}
