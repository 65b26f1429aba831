package store

import (
	"context"
	"strings"

	"github.com/alocar/backend/pkg/models"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

const accountOrder = "created_at ASC, rowid ASC"

// accountFields are the fields written when UpdateAccount is called without fields.
var accountFields = []string{"Name", "CAP", "TAP"}

// CreateAccount persists a new account.
//
// The values are not validated, call AccountCreate.Validate first.
func (s *Store) CreateAccount(ctx context.Context, c models.AccountCreate) (models.Account, error) {
	account := models.Account{AccountCreate: c}
	account.UserID = s.owner

	err := s.write(ctx, func(t *tx) error {
		err := t.db.Omit(clause.Associations).Create(&account).Error
		if err != nil {
			return err
		}

		t.record(account.TableName(), OpCreate, account.ID)
		return nil
	})
	if err != nil {
		return models.Account{}, err
	}

	return account, nil
}

// GetAccount returns the non-deleted account with the ID.
func (s *Store) GetAccount(ctx context.Context, id uuid.UUID) (models.Account, error) {
	var account models.Account
	err := s.read(ctx).First(&account, "id = ?", id).Error
	if err != nil {
		return models.Account{}, err
	}

	return account, nil
}

// ListAccounts returns all non-deleted accounts in insertion order.
func (s *Store) ListAccounts(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	err := s.read(ctx).Order(accountOrder).Find(&accounts).Error
	if err != nil {
		return nil, err
	}

	return accounts, nil
}

// UpdateAccount writes the given fields of c to the account.
//
// fields are the struct field names of models.AccountCreate. If none are
// given, all fields are written. Allocations recorded before keep the
// CAP they were split with.
func (s *Store) UpdateAccount(ctx context.Context, id uuid.UUID, c models.AccountCreate, fields ...string) (models.Account, error) {
	if len(fields) == 0 {
		fields = accountFields
	}

	selected := make([]any, 0, len(fields))
	for _, field := range fields {
		selected = append(selected, field)
	}
	c.Name = strings.TrimSpace(c.Name)

	var account models.Account
	err := s.write(ctx, func(t *tx) error {
		err := t.db.Where("user_id = ?", t.owner).First(&account, "id = ?", id).Error
		if err != nil {
			return err
		}

		err = t.db.Model(&account).Select("", selected...).Updates(models.Account{AccountCreate: c}).Error
		if err != nil {
			return err
		}

		t.record(account.TableName(), OpUpdate, account.ID)
		return t.db.First(&account, "id = ?", id).Error
	})
	if err != nil {
		return models.Account{}, err
	}

	return account, nil
}
