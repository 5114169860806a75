package store

import "context"

// Row is one record from a reference dataset, keys as returned by the
// analytical store.
type Row map[string]any

// ReferenceStore fetches the two fixed reference datasets that ground every
// recommendation. Implementations return rows in whatever order the store
// delivers them; the queries carry no ORDER BY.
type ReferenceStore interface {
	// SubscriptionSummary returns the user engagement history dataset.
	SubscriptionSummary(ctx context.Context) ([]Row, error)
	// SeasonalitySummary returns the topic timing performance dataset.
	SeasonalitySummary(ctx context.Context) ([]Row, error)
}
