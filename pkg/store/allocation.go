package store

import (
	"context"
	"time"

	"github.com/alocar/backend/pkg/calculator"
	"github.com/alocar/backend/pkg/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	allocationOrder = "created_at DESC, rowid DESC"
	shareOrder      = "rowid ASC"
)

func orderShares(db *gorm.DB) *gorm.DB {
	return db.Order(shareOrder)
}

// CreateAllocation persists an allocation together with the share of every
// non-deleted account, computed from the account's current CAP.
//
// The income is not validated, call AllocationCreate.Validate first.
func (s *Store) CreateAllocation(ctx context.Context, c models.AllocationCreate) (models.Allocation, error) {
	allocation := models.Allocation{AllocationCreate: c}
	allocation.UserID = s.owner

	err := s.write(ctx, func(t *tx) error {
		err := t.db.Omit(clause.Associations).Create(&allocation).Error
		if err != nil {
			return err
		}
		t.record(allocation.TableName(), OpCreate, allocation.ID)

		var accounts []models.Account
		err = t.db.Where("user_id = ?", t.owner).Order(accountOrder).Find(&accounts).Error
		if err != nil {
			return err
		}

		shares := calculator.Split(c.Income, accounts)
		rows := make([]models.AccountAllocation, 0, len(shares))
		for _, share := range shares {
			row := models.AccountAllocation{
				CAP:          share.CAP,
				Amount:       share.Amount,
				AccountID:    share.AccountID,
				AllocationID: allocation.ID,
			}
			row.UserID = t.owner
			rows = append(rows, row)
		}

		// gorm refuses to create an empty batch
		if len(rows) > 0 {
			err = t.db.Omit(clause.Associations).Create(&rows).Error
			if err != nil {
				return err
			}
		}

		for _, row := range rows {
			t.record(row.TableName(), OpCreate, row.ID)
		}

		allocation.AccountAllocations = rows
		return nil
	})
	if err != nil {
		return models.Allocation{}, err
	}

	return allocation, nil
}

// GetAllocation returns the non-deleted allocation with the ID and its shares.
func (s *Store) GetAllocation(ctx context.Context, id uuid.UUID) (models.Allocation, error) {
	var allocation models.Allocation
	err := s.read(ctx).Preload("AccountAllocations", orderShares).First(&allocation, "id = ?", id).Error
	if err != nil {
		return models.Allocation{}, err
	}

	return allocation, nil
}

// ListAllocations returns all non-deleted allocations, newest first.
func (s *Store) ListAllocations(ctx context.Context) ([]models.Allocation, error) {
	var allocations []models.Allocation
	err := s.read(ctx).Preload("AccountAllocations", orderShares).Order(allocationOrder).Find(&allocations).Error
	if err != nil {
		return nil, err
	}

	return allocations, nil
}

// ListAllocationsBetween returns the non-deleted allocations created in
// [from, to), newest first.
func (s *Store) ListAllocationsBetween(ctx context.Context, from, to time.Time) ([]models.Allocation, error) {
	var allocations []models.Allocation
	err := s.read(ctx).
		Preload("AccountAllocations", orderShares).
		Where("created_at >= ? AND created_at < ?", from.UTC(), to.UTC()).
		Order(allocationOrder).
		Find(&allocations).Error
	if err != nil {
		return nil, err
	}

	return allocations, nil
}

// ListAccountAllocations returns the shares of an allocation. The account of
// every share is loaded even if it has been deleted since.
func (s *Store) ListAccountAllocations(ctx context.Context, allocationID uuid.UUID) ([]models.AccountAllocation, error) {
	var shares []models.AccountAllocation
	err := s.read(ctx).
		Preload("Account", func(db *gorm.DB) *gorm.DB {
			return db.Unscoped()
		}).
		Where("allocation_id = ?", allocationID).
		Order(shareOrder).
		Find(&shares).Error
	if err != nil {
		return nil, err
	}

	return shares, nil
}
