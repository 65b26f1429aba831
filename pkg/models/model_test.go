package models_test

import (
	"time"

	"github.com/alocar/backend/pkg/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestModelTimeUTC() {
	tz := time.FixedZone("BRT", -3*60*60)

	model := models.DefaultModel{
		Timestamps: models.Timestamps{
			CreatedAt: time.Date(2000, 1, 2, 3, 4, 5, 6, tz),
			UpdatedAt: time.Date(2001, 2, 3, 4, 5, 6, 7, tz),
			DeletedAt: gorm.DeletedAt{Time: time.Now().In(tz), Valid: true},
		},
	}

	err := model.AfterFind(suite.db)
	if err != nil {
		assert.Fail(suite.T(), "model.AfterFind failed")
	}

	assert.Equal(suite.T(), time.UTC, model.CreatedAt.Location(), "Timezone for model is not UTC")
	assert.Equal(suite.T(), time.UTC, model.UpdatedAt.Location(), "Timezone for model is not UTC")
	assert.Equal(suite.T(), time.UTC, model.DeletedAt.Time.Location(), "Timezone for model is not UTC")
}

func (suite *TestSuiteStandard) TestModelBeforeCreate() {
	model := models.DefaultModel{}
	_ = model.BeforeCreate(suite.db)
	assert.NotEqual(suite.T(), uuid.Nil, model.ID, "ID was not generated")

	id := uuid.New()
	model = models.DefaultModel{ID: id}
	_ = model.BeforeCreate(suite.db)
	assert.Equal(suite.T(), id, model.ID, "Existing ID was overwritten")
	assert.Equal(suite.T(), id, model.PrimaryKey())
}

func (suite *TestSuiteStandard) TestModelSelf() {
	tests := []struct {
		model models.Model
		self  string
		table string
	}{
		{models.Account{}, "Account", "accounts"},
		{models.Allocation{}, "Allocation", "allocations"},
		{models.AccountAllocation{}, "Account Allocation", "account_allocations"},
	}

	for _, tt := range tests {
		assert.Equal(suite.T(), tt.self, tt.model.Self())
		assert.Equal(suite.T(), tt.table, tt.model.TableName())
	}
}

// TestRegistryCoversSchema ensures that every table is reachable through the registry.
func (suite *TestSuiteStandard) TestRegistryCoversSchema() {
	assert.Len(suite.T(), models.Registry, len(models.Schema))

	for _, m := range models.Registry {
		_, ok := models.TableByName(m.TableName())
		assert.True(suite.T(), ok, "table %s of %s is not in the schema", m.TableName(), m.Self())
	}
}
