package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"calcapi/internal/models"
	"calcapi/internal/server/storage"
)

// Append durably stores one operation record
func (s *Storage) Append(ctx context.Context, op *models.Operation) error {
	query := `
		INSERT INTO operations (id, operation, operand1, operand2, result, timestamp, user_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	var operand2 sql.NullFloat64
	if op.Operand2 != nil {
		operand2 = sql.NullFloat64{Float64: *op.Operand2, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, query,
		op.ID,
		op.Operation,
		op.Operand1,
		operand2,
		op.Result,
		op.Timestamp,
		op.UserID,
	)

	if err != nil {
		return fmt.Errorf("%w: failed to insert operation: %v", storage.ErrUnavailable, err)
	}

	return nil
}

// Query returns at most filter.Limit records matching the filter,
// newest first. seq (insertion order) breaks timestamp ties so the
// ordering is stable under concurrent writers.
func (s *Storage) Query(ctx context.Context, filter storage.HistoryFilter) ([]*models.Operation, error) {
	query := `
		SELECT id, operation, operand1, operand2, result, timestamp, user_id
		FROM operations
	`

	// Фильтры объединяются по AND
	var conditions []string
	var args []any
	if filter.UserID != "" {
		conditions = append(conditions, "user_id = ?")
		args = append(args, filter.UserID)
	}
	if filter.OperationType != "" {
		conditions = append(conditions, "operation = ?")
		args = append(args, filter.OperationType)
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	query += " ORDER BY timestamp DESC, seq DESC LIMIT ?"
	args = append(args, filter.Limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query operations: %v", storage.ErrUnavailable, err)
	}
	defer rows.Close()

	var ops []*models.Operation
	for rows.Next() {
		op := &models.Operation{}
		var operand2 sql.NullFloat64

		if err := rows.Scan(
			&op.ID,
			&op.Operation,
			&op.Operand1,
			&operand2,
			&op.Result,
			&op.Timestamp,
			&op.UserID,
		); err != nil {
			return nil, fmt.Errorf("%w: failed to scan operation: %v", storage.ErrUnavailable, err)
		}

		if operand2.Valid {
			op.Operand2 = &operand2.Float64
		}

		ops = append(ops, op)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate operations: %v", storage.ErrUnavailable, err)
	}

	return ops, nil
}
