package store_test

import (
	"github.com/alocar/backend/pkg/models"
	"github.com/alocar/backend/pkg/store"
	"github.com/alocar/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestAccountRoundTrip creates an account and reads it back through the list.
func (suite *TestSuiteStandard) TestAccountRoundTrip() {
	created := suite.createTestAccount("Savings", 30, 40)

	accounts, err := suite.store.ListAccounts(suite.ctx)
	suite.Require().Nil(err)
	suite.Require().Len(accounts, 1)

	account := accounts[0]
	assert.Equal(suite.T(), created.ID, account.ID)
	assert.NotEqual(suite.T(), uuid.Nil, account.ID)
	assert.Equal(suite.T(), "Savings", account.Name)
	assert.True(suite.T(), account.CAP.Equal(decimal.NewFromInt(30)))
	assert.True(suite.T(), account.TAP.Equal(decimal.NewFromInt(40)))
	assert.Equal(suite.T(), suite.store.Owner(), account.UserID)
	assert.False(suite.T(), account.CreatedAt.IsZero())
	assert.False(suite.T(), account.UpdatedAt.IsZero())
	assert.False(suite.T(), account.DeletedAt.Valid)
}

func (suite *TestSuiteStandard) TestAccountListOrder() {
	names := []string{"First", "Second", "Third"}
	for _, name := range names {
		suite.createTestAccount(name, 10, 10)
	}

	accounts, err := suite.store.ListAccounts(suite.ctx)
	suite.Require().Nil(err)
	suite.Require().Len(accounts, len(names))

	for i, name := range names {
		assert.Equal(suite.T(), name, accounts[i].Name)
	}
}

// TestAccountOwnerScope verifies that stores only see the resources of their owner.
func (suite *TestSuiteStandard) TestAccountOwnerScope() {
	account := suite.createTestAccount("Mine", 50, 50)
	other := store.New(suite.db, uuid.New())

	accounts, err := other.ListAccounts(suite.ctx)
	suite.Require().Nil(err)
	assert.Len(suite.T(), accounts, 0)

	_, err = other.GetAccount(suite.ctx, account.ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	err = other.SoftDelete(suite.ctx, account)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

// TestAccountNotValidated verifies that the store persists values without validating them.
func (suite *TestSuiteStandard) TestAccountNotValidated() {
	account := suite.createTestAccount("X", 150, -5)

	stored, err := suite.store.GetAccount(suite.ctx, account.ID)
	suite.Require().Nil(err)
	assert.True(suite.T(), stored.CAP.Equal(decimal.NewFromInt(150)))
}

func (suite *TestSuiteStandard) TestGetAccount() {
	account := suite.createTestAccount("Emergency", 20, 0)

	stored, err := suite.store.GetAccount(suite.ctx, account.ID)
	suite.Require().Nil(err)
	assert.Equal(suite.T(), "Emergency", stored.Name)

	_, err = suite.store.GetAccount(suite.ctx, uuid.New())
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no account matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestUpdateAccount() {
	account := suite.createTestAccount("Savings", 30, 40)

	tests := []struct {
		name   string
		create models.AccountCreate
		fields []string
		check  func(models.Account)
	}{
		{
			"Single field",
			models.AccountCreate{CAP: decimal.NewFromInt(35)},
			[]string{"CAP"},
			func(a models.Account) {
				assert.Equal(suite.T(), "Savings", a.Name)
				assert.True(suite.T(), a.CAP.Equal(decimal.NewFromInt(35)), "CAP is %s", a.CAP)
				assert.True(suite.T(), a.TAP.Equal(decimal.NewFromInt(40)), "TAP is %s", a.TAP)
			},
		},
		{
			"Zero value is written when selected",
			models.AccountCreate{},
			[]string{"TAP"},
			func(a models.Account) {
				assert.True(suite.T(), a.TAP.IsZero(), "TAP is %s", a.TAP)
			},
		},
		{
			"All fields",
			models.AccountCreate{Name: "  Retirement ", CAP: decimal.NewFromInt(10), TAP: decimal.NewFromInt(15)},
			nil,
			func(a models.Account) {
				assert.Equal(suite.T(), "Retirement", a.Name)
				assert.True(suite.T(), a.CAP.Equal(decimal.NewFromInt(10)))
				assert.True(suite.T(), a.TAP.Equal(decimal.NewFromInt(15)))
			},
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			updated, err := suite.store.UpdateAccount(suite.ctx, account.ID, tt.create, tt.fields...)
			suite.Require().Nil(err)
			tt.check(updated)

			stored, err := suite.store.GetAccount(suite.ctx, account.ID)
			suite.Require().Nil(err)
			tt.check(stored)
		})
	}
}

func (suite *TestSuiteStandard) TestUpdateAccountNotFound() {
	_, err := suite.store.UpdateAccount(suite.ctx, uuid.New(), models.AccountCreate{Name: "Nope"})
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestUpdateDeletedAccount() {
	account := suite.createTestAccount("Gone", 10, 10)
	suite.Require().Nil(suite.store.SoftDelete(suite.ctx, account))

	_, err := suite.store.UpdateAccount(suite.ctx, account.ID, models.AccountCreate{Name: "Back"})
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

// TestUpdateAccountKeepsHistory verifies that recorded shares keep the CAP they were split with.
func (suite *TestSuiteStandard) TestUpdateAccountKeepsHistory() {
	account := suite.createTestAccount("Stocks", 50, 0)
	allocation := suite.createTestAllocation(1000)

	_, err := suite.store.UpdateAccount(suite.ctx, account.ID, models.AccountCreate{CAP: decimal.NewFromInt(80)}, "CAP")
	suite.Require().Nil(err)

	stored, err := suite.store.GetAllocation(suite.ctx, allocation.ID)
	suite.Require().Nil(err)
	suite.Require().Len(stored.AccountAllocations, 1)
	assert.True(suite.T(), stored.AccountAllocations[0].CAP.Equal(decimal.NewFromInt(50)))
	assert.True(suite.T(), stored.AccountAllocations[0].Amount.Equal(decimal.NewFromInt(500)))
}

func (suite *TestSuiteStandard) TestAccountsDatabaseClosed() {
	suite.CloseDB()

	_, err := suite.store.ListAccounts(suite.ctx)
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)

	_, err = suite.store.CreateAccount(suite.ctx, models.AccountCreate{Name: "Closed"})
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}

// TestStoreSharedDatabase verifies that two handles on the same file see each other's writes.
func (suite *TestSuiteStandard) TestStoreSharedDatabase() {
	db := test.Connect(suite.T())
	first := store.New(db, suite.store.Owner())
	second := store.New(db, suite.store.Owner())

	_, err := first.CreateAccount(suite.ctx, models.AccountCreate{Name: "Shared"})
	suite.Require().Nil(err)

	accounts, err := second.ListAccounts(suite.ctx)
	suite.Require().Nil(err)
	assert.Len(suite.T(), accounts, 1)
}
