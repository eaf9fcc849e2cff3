package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcapi/internal/models"
	"calcapi/internal/server/storage"
)

// appendOp вставляет запись истории с заданными полями
func appendOp(t *testing.T, s *Storage, operation, userID string, ts time.Time) *models.Operation {
	t.Helper()

	op := &models.Operation{
		ID:        uuid.New().String(),
		Operation: operation,
		Operand1:  10,
		Operand2:  f64(5),
		Result:    15,
		Timestamp: ts,
		UserID:    userID,
	}
	if operation == models.OpSqrt {
		op.Operand2 = nil
	}
	require.NoError(t, s.Append(context.Background(), op))
	return op
}

func TestHistoryStorage_AppendAndQuery(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	op := appendOp(t, s, models.OpAdd, "user-1", time.Now().UTC())

	ops, err := s.Query(ctx, storage.HistoryFilter{Limit: 50})
	require.NoError(t, err)
	require.Len(t, ops, 1)

	assert.Equal(t, op.ID, ops[0].ID)
	assert.Equal(t, op.Operation, ops[0].Operation)
	assert.Equal(t, op.Operand1, ops[0].Operand1)
	require.NotNil(t, ops[0].Operand2)
	assert.Equal(t, *op.Operand2, *ops[0].Operand2)
	assert.Equal(t, op.Result, ops[0].Result)
	assert.Equal(t, op.UserID, ops[0].UserID)
}

func TestHistoryStorage_NullOperand2(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	appendOp(t, s, models.OpSqrt, "", time.Now().UTC())

	ops, err := s.Query(ctx, storage.HistoryFilter{Limit: 50})
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Nil(t, ops[0].Operand2)
}

func TestHistoryStorage_QueryOrdering(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	base := time.Now().UTC().Truncate(time.Second)
	oldest := appendOp(t, s, models.OpAdd, "", base.Add(-2*time.Hour))
	newest := appendOp(t, s, models.OpAdd, "", base)
	middle := appendOp(t, s, models.OpAdd, "", base.Add(-time.Hour))

	ops, err := s.Query(ctx, storage.HistoryFilter{Limit: 50})
	require.NoError(t, err)
	require.Len(t, ops, 3)

	// Новейшие первыми, независимо от порядка вставки
	assert.Equal(t, newest.ID, ops[0].ID)
	assert.Equal(t, middle.ID, ops[1].ID)
	assert.Equal(t, oldest.ID, ops[2].ID)
}

func TestHistoryStorage_QueryOrdering_TimestampTies(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	// Одинаковый timestamp: порядок определяется порядком вставки
	ts := time.Now().UTC().Truncate(time.Second)
	first := appendOp(t, s, models.OpAdd, "", ts)
	second := appendOp(t, s, models.OpAdd, "", ts)
	third := appendOp(t, s, models.OpAdd, "", ts)

	ops, err := s.Query(ctx, storage.HistoryFilter{Limit: 50})
	require.NoError(t, err)
	require.Len(t, ops, 3)

	assert.Equal(t, third.ID, ops[0].ID)
	assert.Equal(t, second.ID, ops[1].ID)
	assert.Equal(t, first.ID, ops[2].ID)
}

func TestHistoryStorage_QueryFilters(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	base := time.Now().UTC().Truncate(time.Second)
	appendOp(t, s, models.OpAdd, "user-1", base)
	appendOp(t, s, models.OpDivide, "user-1", base.Add(time.Second))
	appendOp(t, s, models.OpAdd, "user-2", base.Add(2*time.Second))
	appendOp(t, s, models.OpSqrt, "", base.Add(3*time.Second))

	t.Run("filter by user", func(t *testing.T) {
		ops, err := s.Query(ctx, storage.HistoryFilter{UserID: "user-1", Limit: 50})
		require.NoError(t, err)
		require.Len(t, ops, 2)
		for _, op := range ops {
			assert.Equal(t, "user-1", op.UserID)
		}
	})

	t.Run("filter by operation type", func(t *testing.T) {
		ops, err := s.Query(ctx, storage.HistoryFilter{OperationType: models.OpAdd, Limit: 50})
		require.NoError(t, err)
		require.Len(t, ops, 2)
		for _, op := range ops {
			assert.Equal(t, models.OpAdd, op.Operation)
		}
	})

	t.Run("both filters are combined with AND", func(t *testing.T) {
		ops, err := s.Query(ctx, storage.HistoryFilter{UserID: "user-1", OperationType: models.OpAdd, Limit: 50})
		require.NoError(t, err)
		require.Len(t, ops, 1)
		assert.Equal(t, "user-1", ops[0].UserID)
		assert.Equal(t, models.OpAdd, ops[0].Operation)
	})

	t.Run("no matches", func(t *testing.T) {
		ops, err := s.Query(ctx, storage.HistoryFilter{UserID: "user-3", Limit: 50})
		require.NoError(t, err)
		assert.Empty(t, ops)
	})
}

func TestHistoryStorage_QueryLimit(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 25; i++ {
		appendOp(t, s, models.OpAdd, "user-1", base.Add(time.Duration(i)*time.Second))
	}

	ops, err := s.Query(ctx, storage.HistoryFilter{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, ops, 10)

	// Лимит возвращает новейшие записи
	for i := 0; i < len(ops)-1; i++ {
		assert.False(t, ops[i].Timestamp.Before(ops[i+1].Timestamp),
			"records must be ordered newest first")
	}
}

func TestHistoryStorage_Immutable(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	op := appendOp(t, s, models.OpAdd, "user-1", time.Now().UTC())

	// Повторная вставка той же записи отвергается: история append-only
	err := s.Append(ctx, op)
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrUnavailable)
}

func TestHistoryStorage_ManyOperationTypes(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	base := time.Now().UTC().Truncate(time.Second)
	for i, operation := range models.Operations {
		appendOp(t, s, operation, fmt.Sprintf("user-%d", i%2), base.Add(time.Duration(i)*time.Second))
	}

	for _, operation := range models.Operations {
		ops, err := s.Query(ctx, storage.HistoryFilter{OperationType: operation, Limit: 50})
		require.NoError(t, err)
		require.Len(t, ops, 1, "operation %s", operation)
		assert.Equal(t, operation, ops[0].Operation)
	}
}
