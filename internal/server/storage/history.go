package storage

import (
	"context"

	"calcapi/internal/models"
)

// HistoryFilter narrows a history query.
// Empty string fields mean "no filter"; when both filters are set
// a record must match both of them.
type HistoryFilter struct {
	UserID        string
	OperationType string
	Limit         int
}

// HistoryStorage defines interface for the append-only operation history
type HistoryStorage interface {
	// Append durably stores one operation record.
	// Records are never mutated or deleted afterwards.
	Append(ctx context.Context, op *models.Operation) error

	// Query returns at most filter.Limit records matching the filter,
	// ordered most-recent-first by timestamp, ties broken by insertion
	// order (stable). Backend failure is reported as ErrUnavailable.
	Query(ctx context.Context, filter HistoryFilter) ([]*models.Operation, error)
}
