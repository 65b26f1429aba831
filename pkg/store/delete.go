package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/alocar/backend/pkg/models"
	"github.com/google/uuid"
)

// SoftDelete marks the resource as deleted.
//
// Only the primary key of m is used. A resource that is already deleted is
// left unchanged and no error is returned. Deleting an allocation also
// deletes its account allocations. Deleting an account keeps the account
// allocations recorded for it.
func (s *Store) SoftDelete(ctx context.Context, m models.Model) error {
	table := m.TableName()
	id := m.PrimaryKey()

	return s.write(ctx, func(t *tx) error {
		var total int64
		err := t.owned(table).Where("id = ?", id).Count(&total).Error
		if err != nil {
			return err
		}

		if total == 0 {
			return fmt.Errorf("%w %s matching your query", models.ErrResourceNotFound, strings.ToLower(m.Self()))
		}

		deleted, err := t.softDelete(table, "id = ?", id)
		if err != nil {
			return err
		}

		// Already deleted
		if len(deleted) == 0 {
			return nil
		}

		if table == (models.Allocation{}).TableName() {
			_, err = t.softDelete(models.AccountAllocation{}.TableName(), "allocation_id = ?", id)
		}

		return err
	})
}

// softDelete sets deleted_at for all live rows of table matching the condition
// and returns their IDs.
func (t *tx) softDelete(table string, query string, args ...any) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := t.owned(table).Where(query, args...).Where("deleted_at IS NULL").Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return ids, nil
	}

	err = t.owned(table).Where("id IN ?", ids).Update("deleted_at", t.now).Error
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		t.record(table, OpDelete, id)
	}

	return ids, nil
}
