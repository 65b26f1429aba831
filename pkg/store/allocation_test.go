package store_test

import (
	"time"

	"github.com/alocar/backend/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCreateAllocationSplits() {
	savings := suite.createTestAccount("Savings", 30, 0)
	stocks := suite.createTestAccount("Stocks", 70, 0)

	allocation := suite.createTestAllocation(1000)
	suite.Require().Len(allocation.AccountAllocations, 2)

	tests := []struct {
		account models.Account
		amount  int64
	}{
		{savings, 300},
		{stocks, 700},
	}

	for i, tt := range tests {
		share := allocation.AccountAllocations[i]
		assert.Equal(suite.T(), tt.account.ID, share.AccountID)
		assert.Equal(suite.T(), allocation.ID, share.AllocationID)
		assert.Equal(suite.T(), suite.store.Owner(), share.UserID)
		assert.True(suite.T(), share.CAP.Equal(tt.account.CAP))
		assert.True(suite.T(), share.Amount.Equal(decimal.NewFromInt(tt.amount)), "expected %d, got %s", tt.amount, share.Amount)
	}

	stored, err := suite.store.GetAllocation(suite.ctx, allocation.ID)
	suite.Require().Nil(err)
	suite.Require().Len(stored.AccountAllocations, 2)
	assert.True(suite.T(), stored.Income.Equal(decimal.NewFromInt(1000)))
	assert.Equal(suite.T(), savings.ID, stored.AccountAllocations[0].AccountID)
	assert.Equal(suite.T(), stocks.ID, stored.AccountAllocations[1].AccountID)
}

func (suite *TestSuiteStandard) TestCreateAllocationWithoutAccounts() {
	allocation := suite.createTestAllocation(500)
	assert.Len(suite.T(), allocation.AccountAllocations, 0)

	stored, err := suite.store.GetAllocation(suite.ctx, allocation.ID)
	suite.Require().Nil(err)
	assert.Len(suite.T(), stored.AccountAllocations, 0)
}

// TestCreateAllocationSkipsDeletedAccounts verifies that deleted accounts receive no share.
func (suite *TestSuiteStandard) TestCreateAllocationSkipsDeletedAccounts() {
	kept := suite.createTestAccount("Kept", 40, 0)
	deleted := suite.createTestAccount("Deleted", 60, 0)
	suite.Require().Nil(suite.store.SoftDelete(suite.ctx, deleted))

	allocation := suite.createTestAllocation(100)
	suite.Require().Len(allocation.AccountAllocations, 1)
	assert.Equal(suite.T(), kept.ID, allocation.AccountAllocations[0].AccountID)
	assert.True(suite.T(), allocation.AccountAllocations[0].Amount.Equal(decimal.NewFromInt(40)))
}

// TestCreateAllocationNotValidated verifies that the store accepts any income.
func (suite *TestSuiteStandard) TestCreateAllocationNotValidated() {
	suite.createTestAccount("Savings", 50, 0)

	allocation := suite.createTestAllocation(-200)
	suite.Require().Len(allocation.AccountAllocations, 1)
	assert.True(suite.T(), allocation.AccountAllocations[0].Amount.Equal(decimal.NewFromInt(-100)))
}

func (suite *TestSuiteStandard) TestListAllocationsOrder() {
	first := suite.createTestAllocation(100)
	second := suite.createTestAllocation(200)
	third := suite.createTestAllocation(300)

	allocations, err := suite.store.ListAllocations(suite.ctx)
	suite.Require().Nil(err)
	suite.Require().Len(allocations, 3)

	assert.Equal(suite.T(), third.ID, allocations[0].ID)
	assert.Equal(suite.T(), second.ID, allocations[1].ID)
	assert.Equal(suite.T(), first.ID, allocations[2].ID)
}

func (suite *TestSuiteStandard) TestListAllocationsBetween() {
	allocation := suite.createTestAllocation(100)

	now := time.Now()
	tests := []struct {
		name  string
		from  time.Time
		to    time.Time
		count int
	}{
		{"Containing", now.Add(-time.Hour), now.Add(time.Hour), 1},
		{"Before", now.Add(-2 * time.Hour), now.Add(-time.Hour), 0},
		{"After", now.Add(time.Hour), now.Add(2 * time.Hour), 0},
		{"Start is inclusive", allocation.CreatedAt, allocation.CreatedAt.Add(time.Second), 1},
		{"End is exclusive", allocation.CreatedAt.Add(-time.Second), allocation.CreatedAt, 0},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			allocations, err := suite.store.ListAllocationsBetween(suite.ctx, tt.from, tt.to)
			suite.Require().Nil(err)
			assert.Len(suite.T(), allocations, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestGetAllocationNotFound() {
	_, err := suite.store.GetAllocation(suite.ctx, uuid.New())
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no allocation matching your query", err.Error())
}

// TestListAccountAllocationsDeletedAccount verifies that shares keep their
// account after the account was deleted.
func (suite *TestSuiteStandard) TestListAccountAllocationsDeletedAccount() {
	account := suite.createTestAccount("Closed account", 100, 0)
	allocation := suite.createTestAllocation(250)
	suite.Require().Nil(suite.store.SoftDelete(suite.ctx, account))

	shares, err := suite.store.ListAccountAllocations(suite.ctx, allocation.ID)
	suite.Require().Nil(err)
	suite.Require().Len(shares, 1)
	assert.Equal(suite.T(), "Closed account", shares[0].Account.Name)
	assert.True(suite.T(), shares[0].Account.DeletedAt.Valid)
	assert.True(suite.T(), shares[0].Amount.Equal(decimal.NewFromInt(250)))

	shares, err = suite.store.ListAccountAllocations(suite.ctx, uuid.New())
	suite.Require().Nil(err)
	assert.Len(suite.T(), shares, 0)
}

// TestAllocationPrecision verifies that income, CAP and amounts are read back
// with all their decimal places.
func (suite *TestSuiteStandard) TestAllocationPrecision() {
	percent := decimal.RequireFromString("33.33333333")
	account, err := suite.store.CreateAccount(suite.ctx, models.AccountCreate{Name: "Savings", CAP: percent})
	suite.Require().Nil(err)

	income := decimal.RequireFromString("1234567890.12345678")
	allocation, err := suite.store.CreateAllocation(suite.ctx, models.AllocationCreate{Income: income})
	suite.Require().Nil(err)

	stored, err := suite.store.GetAllocation(suite.ctx, allocation.ID)
	suite.Require().Nil(err)
	assert.True(suite.T(), income.Equal(stored.Income), "stored %s, read %s", income, stored.Income)

	suite.Require().Len(stored.AccountAllocations, 1)
	share := stored.AccountAllocations[0]
	assert.Equal(suite.T(), account.ID, share.AccountID)
	assert.True(suite.T(), percent.Equal(share.CAP), "read CAP %s", share.CAP)
	assert.True(suite.T(), allocation.AccountAllocations[0].Amount.Equal(share.Amount), "stored %s, read %s", allocation.AccountAllocations[0].Amount, share.Amount)
}
