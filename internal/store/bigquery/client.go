package bigquery

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"

	"github.com/heera2507/Seasonality-Publish-Recommender/internal/shared/telemetry"
	"github.com/heera2507/Seasonality-Publish-Recommender/internal/store"
)

const (
	subscriptionTable = "article_data.subscription_summary_small"
	seasonalityTable  = "article_data.seasonality_summary_small"
)

// Client implements store.ReferenceStore on top of BigQuery.
type Client struct {
	bq        *bigquery.Client
	projectID string
}

// New connects a BigQuery client scoped to the given project.
func New(ctx context.Context, projectID string) (*Client, error) {
	bq, err := bigquery.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("bigquery client: %w", err)
	}
	return &Client{bq: bq, projectID: projectID}, nil
}

// SubscriptionSummary returns the user engagement history dataset.
func (c *Client) SubscriptionSummary(ctx context.Context) ([]store.Row, error) {
	return c.queryAll(ctx, subscriptionTable)
}

// SeasonalitySummary returns the topic timing performance dataset.
func (c *Client) SeasonalitySummary(ctx context.Context) ([]store.Row, error) {
	return c.queryAll(ctx, seasonalityTable)
}

// Close releases the underlying client.
func (c *Client) Close() error {
	return c.bq.Close()
}

func (c *Client) queryAll(ctx context.Context, table string) ([]store.Row, error) {
	q := c.bq.Query(fmt.Sprintf("SELECT * FROM `%s.%s`", c.projectID, table))
	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}

	var rows []store.Row
	for {
		var values map[string]bigquery.Value
		err := it.Next(&values)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", table, err)
		}
		row := make(store.Row, len(values))
		for k, v := range values {
			row[k] = v
		}
		rows = append(rows, row)
	}

	// The query has no ORDER BY, so which rows survive the caller's
	// truncation is up to the store. Log the full count so the loss is
	// at least visible.
	telemetry.Info("store.query_complete", map[string]any{
		"table": table,
		"rows":  len(rows),
	})
	return rows, nil
}
