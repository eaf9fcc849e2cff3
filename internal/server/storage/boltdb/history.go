package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"calcapi/internal/models"
	"calcapi/internal/server/storage"
)

// Append durably stores one operation record under the next bucket
// sequence number. Update transactions are serialized by bbolt, so
// sequence numbers reflect insertion order.
func (s *Storage) Append(ctx context.Context, op *models.Operation) error {
	data, err := json.Marshal(op)
	if err != nil {
		return fmt.Errorf("failed to marshal operation: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOperations)
		if bucket == nil {
			return fmt.Errorf("operations bucket not found")
		}

		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to get next sequence: %w", err)
		}

		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)

		return bucket.Put(key, data)
	})

	if err != nil {
		return fmt.Errorf("%w: failed to append operation: %v", storage.ErrUnavailable, err)
	}

	return nil
}

// queried операция вместе с порядковым номером вставки
type queried struct {
	op  *models.Operation
	seq uint64
}

// Query returns at most filter.Limit records matching the filter,
// ordered most-recent-first by timestamp, insertion order breaking ties.
func (s *Storage) Query(ctx context.Context, filter storage.HistoryFilter) ([]*models.Operation, error) {
	var matched []queried

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOperations)
		if bucket == nil {
			return fmt.Errorf("operations bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			op := &models.Operation{}
			if err := json.Unmarshal(v, op); err != nil {
				return fmt.Errorf("failed to unmarshal operation: %w", err)
			}

			// Фильтры объединяются по AND
			if filter.UserID != "" && op.UserID != filter.UserID {
				return nil
			}
			if filter.OperationType != "" && op.Operation != filter.OperationType {
				return nil
			}

			matched = append(matched, queried{op: op, seq: binary.BigEndian.Uint64(k)})
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("%w: failed to query operations: %v", storage.ErrUnavailable, err)
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].op.Timestamp.Equal(matched[j].op.Timestamp) {
			return matched[i].op.Timestamp.After(matched[j].op.Timestamp)
		}
		return matched[i].seq > matched[j].seq
	})

	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}

	ops := make([]*models.Operation, 0, len(matched))
	for _, m := range matched {
		ops = append(ops, m.op)
	}

	return ops, nil
}
