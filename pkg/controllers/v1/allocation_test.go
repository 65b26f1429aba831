package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/alocar/backend/internal/types"
	"github.com/alocar/backend/pkg/calculator"
	v1 "github.com/alocar/backend/pkg/controllers/v1"
	"github.com/alocar/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func income(value int64) v1.AllocationEditable {
	return v1.AllocationEditable{Income: decimal.NewFromInt(value)}
}

// TestAllocationsSplit verifies that the income is split by the CAP of the accounts.
func (suite *TestSuiteStandard) TestAllocationsSplit() {
	a := suite.createTestAccount(suite.T(), v1.AccountEditable{Name: "Savings", CAP: decimal.NewFromInt(30)})
	b := suite.createTestAccount(suite.T(), v1.AccountEditable{Name: "Stocks", CAP: decimal.NewFromInt(70)})

	allocation := suite.createTestAllocation(suite.T(), income(1000)).Data
	suite.Require().NotNil(allocation)

	suite.Assert().Equal("R$ 1.000,00", allocation.Formatted.Income)
	suite.Assert().Equal(fmt.Sprintf("%s/v1/allocations/%s", baseURL, allocation.ID), allocation.Links.Self)
	suite.Assert().Equal(fmt.Sprintf("%s/v1/allocations/%s/distribution", baseURL, allocation.ID), allocation.Links.Distribution)

	suite.Require().Len(allocation.Shares, 2)
	suite.Assert().Equal(a.Data.ID, allocation.Shares[0].AccountID)
	suite.Assert().True(allocation.Shares[0].Amount.Equal(decimal.NewFromInt(300)))
	suite.Assert().Equal("R$ 300,00", allocation.Shares[0].Formatted.Amount)
	suite.Assert().Equal("30,0%", allocation.Shares[0].Formatted.CAP)
	suite.Assert().Equal(b.Data.ID, allocation.Shares[1].AccountID)
	suite.Assert().True(allocation.Shares[1].Amount.Equal(decimal.NewFromInt(700)))
	suite.Assert().Equal("R$ 700,00", allocation.Shares[1].Formatted.Amount)
}

func (suite *TestSuiteStandard) TestAllocationsWithoutAccounts() {
	allocation := suite.createTestAllocation(suite.T(), income(500)).Data
	suite.Require().NotNil(allocation)
	suite.Assert().Empty(allocation.Shares)

	r := suite.request(suite.T(), http.MethodGet, "/v1/allocations/"+allocation.ID.String(), "", http.StatusOK)
	suite.Assert().Contains(r.Body.String(), `"shares":[]`)
}

func (suite *TestSuiteStandard) TestAllocationsCreateInvalid() {
	tests := []struct {
		name        string
		allocations []v1.AllocationEditable
		status      int
		created     int
	}{
		{"Zero income", []v1.AllocationEditable{income(0)}, http.StatusBadRequest, 0},
		{"Negative income", []v1.AllocationEditable{income(-100)}, http.StatusBadRequest, 0},
		{"One valid, one invalid", []v1.AllocationEditable{income(100), income(0)}, http.StatusBadRequest, 1},
		{"Multiple valid", []v1.AllocationEditable{income(100), income(200)}, http.StatusCreated, 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			before, err := suite.store.ListAllocations(t.Context())
			require.Nil(t, err)

			r := suite.request(t, http.MethodPost, "/v1/allocations", tt.allocations, tt.status)

			var response v1.AllocationCreateResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, len(tt.allocations))

			after, err := suite.store.ListAllocations(t.Context())
			require.Nil(t, err)
			assert.Len(t, after, len(before)+tt.created)
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationsCreateBrokenRequest() {
	r := suite.request(suite.T(), http.MethodPost, "/v1/allocations", `[{ "income": "lots" }]`, http.StatusBadRequest)

	var response v1.AllocationCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Error)
}

// TestAllocationsListOrder verifies that allocations are listed newest first.
func (suite *TestSuiteStandard) TestAllocationsListOrder() {
	for _, i := range []int64{100, 200, 300} {
		suite.createTestAllocation(suite.T(), income(i))
	}

	r := suite.request(suite.T(), http.MethodGet, "/v1/allocations", "", http.StatusOK)

	var response v1.AllocationListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 3)
	suite.Assert().True(response.Data[0].Income.Equal(decimal.NewFromInt(300)))
	suite.Assert().True(response.Data[2].Income.Equal(decimal.NewFromInt(100)))
	suite.Assert().Equal(v1.Pagination{Count: 3, Offset: 0, Limit: 50, Total: 3}, *response.Pagination)
}

func (suite *TestSuiteStandard) TestAllocationsFilterMonth() {
	suite.createTestAllocation(suite.T(), income(100))

	current := types.MonthOf(time.Now().UTC())

	tests := []struct {
		name   string
		query  string
		status int
		len    int
	}{
		{"Current month", "month=" + current.String(), http.StatusOK, 1},
		{"Previous month", "month=" + current.AddDate(0, -1).String(), http.StatusOK, 0},
		{"Next year", "month=" + current.AddDate(1, 0).String(), http.StatusOK, 0},
		{"Empty month", "month=", http.StatusOK, 1},
		{"Invalid month", "month=January", http.StatusBadRequest, 0},
		{"Limit too high", "limit=1000", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, "/v1/allocations?"+tt.query, "", tt.status)

			var response v1.AllocationListResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status != http.StatusOK {
				assert.NotNil(t, response.Error)
				return
			}
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationsGetSingle() {
	a := suite.createTestAllocation(suite.T(), income(100))

	tests := []struct {
		name   string
		path   string
		status int
		method string
	}{
		{"GET Existing allocation", "/v1/allocations/" + a.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET No allocation with this ID", "/v1/allocations/" + uuid.NewString(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID", "/v1/allocations/notaUUID", http.StatusBadRequest, http.MethodGet},
		{"GET Distribution", "/v1/allocations/" + a.Data.ID.String() + "/distribution", http.StatusOK, http.MethodGet},
		{"GET Distribution of missing allocation", "/v1/allocations/" + uuid.NewString() + "/distribution", http.StatusNotFound, http.MethodGet},
		{"GET Distribution invalid ID", "/v1/allocations/notaUUID/distribution", http.StatusBadRequest, http.MethodGet},
		{"DELETE Invalid ID", "/v1/allocations/23", http.StatusBadRequest, http.MethodDelete},
		{"DELETE No allocation with this ID", "/v1/allocations/" + uuid.NewString(), http.StatusNotFound, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, tt.method, tt.path, "", tt.status)

			var response map[string]any
			test.DecodeResponse(t, &r, &response)
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationsOptions() {
	tests := []struct {
		name   string
		path   string
		status int
		allow  string
	}{
		{"List", "/v1/allocations", http.StatusNoContent, "OPTIONS, GET, POST"},
		{"Preview", "/v1/allocations/preview", http.StatusNoContent, "OPTIONS, GET"},
		{"No allocation with this ID", "/v1/allocations/" + uuid.NewString(), http.StatusNotFound, ""},
		{"Not a valid UUID", "/v1/allocations/NotParseableAsUUID", http.StatusBadRequest, ""},
		{"Allocation exists", "/v1/allocations/" + suite.createTestAllocation(suite.T(), income(10)).Data.ID.String(), http.StatusNoContent, "OPTIONS, GET, DELETE"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodOptions, tt.path, "", tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, tt.allow, r.Header().Get("allow"))
			}
		})
	}
}

// TestAllocationsDistribution verifies that shares keep their account and CAP
// after the account is changed or deleted.
func (suite *TestSuiteStandard) TestAllocationsDistribution() {
	a := suite.createTestAccount(suite.T(), v1.AccountEditable{Name: "Savings", CAP: decimal.NewFromInt(40)})
	b := suite.createTestAccount(suite.T(), v1.AccountEditable{Name: "Stocks", CAP: decimal.NewFromInt(60)})
	allocation := suite.createTestAllocation(suite.T(), income(2000))

	suite.request(suite.T(), http.MethodPatch, "/v1/accounts/"+a.Data.ID.String(), map[string]any{"cap": 10}, http.StatusOK)
	suite.request(suite.T(), http.MethodDelete, "/v1/accounts/"+b.Data.ID.String(), "", http.StatusNoContent)

	r := suite.request(suite.T(), http.MethodGet, "/v1/allocations/"+allocation.Data.ID.String()+"/distribution", "", http.StatusOK)

	var response v1.DistributionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2)

	savings := response.Data[0]
	suite.Assert().Equal("Savings", savings.AccountName)
	suite.Assert().False(savings.AccountDeleted)
	suite.Assert().Equal("40,0%", savings.Formatted.CAP)
	suite.Assert().True(savings.Amount.Equal(decimal.NewFromInt(800)))

	stocks := response.Data[1]
	suite.Assert().Equal("Stocks", stocks.AccountName)
	suite.Assert().True(stocks.AccountDeleted)
	suite.Assert().Equal("R$ 1.200,00", stocks.Formatted.Amount)
}

func (suite *TestSuiteStandard) TestAllocationsDelete() {
	suite.createTestAccount(suite.T(), v1.AccountEditable{Name: "Savings", CAP: decimal.NewFromInt(100)})
	a := suite.createTestAllocation(suite.T(), income(100))
	path := "/v1/allocations/" + a.Data.ID.String()

	suite.request(suite.T(), http.MethodDelete, path, "", http.StatusNoContent)
	suite.request(suite.T(), http.MethodGet, path, "", http.StatusNotFound)
	suite.request(suite.T(), http.MethodGet, path+"/distribution", "", http.StatusNotFound)

	// Deleting again is a no-op
	suite.request(suite.T(), http.MethodDelete, path, "", http.StatusNoContent)

	shares, err := suite.store.ListAccountAllocations(suite.T().Context(), a.Data.ID)
	suite.Require().Nil(err)
	suite.Assert().Empty(shares, "shares must be deleted with the allocation")
}

func (suite *TestSuiteStandard) TestAllocationsDatabaseClosed() {
	suite.CloseDB()

	suite.createTestAllocation(suite.T(), income(100), http.StatusInternalServerError)
	suite.request(suite.T(), http.MethodGet, "/v1/allocations", "", http.StatusInternalServerError)
	suite.request(suite.T(), http.MethodGet, "/v1/allocations/"+uuid.NewString(), "", http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) preview(t *testing.T, query string, expectedStatus int) v1.AllocationPreviewResponse {
	r := suite.request(t, http.MethodGet, "/v1/allocations/preview"+query, nil, expectedStatus)

	var response v1.AllocationPreviewResponse
	test.DecodeResponse(t, &r, &response)
	return response
}

// TestAllocationsPreviewUnbalanced verifies that a preview with a CAP total
// below 100% allocates less than the income.
func (suite *TestSuiteStandard) TestAllocationsPreviewUnbalanced() {
	a := suite.createTestAccount(suite.T(), v1.AccountEditable{Name: "Savings", CAP: decimal.NewFromInt(40)})
	b := suite.createTestAccount(suite.T(), v1.AccountEditable{Name: "Stocks", CAP: decimal.NewFromInt(40)})

	preview := suite.preview(suite.T(), "?income=1000", http.StatusOK).Data
	suite.Require().NotNil(preview)

	suite.Assert().True(preview.Income.Equal(decimal.NewFromInt(1000)))
	suite.Assert().True(preview.TotalCAP.Equal(decimal.NewFromInt(80)))
	suite.Assert().Equal(calculator.CapUnder, preview.Status)
	suite.Assert().False(preview.Balanced)
	suite.Assert().True(preview.Allocated.Equal(decimal.NewFromInt(800)), "allocated is %s", preview.Allocated)

	suite.Require().Len(preview.Shares, 2)
	for i, account := range []v1.AccountResponse{a, b} {
		share := preview.Shares[i]
		suite.Assert().Equal(account.Data.ID, share.AccountID)
		suite.Assert().Equal(account.Data.Name, share.AccountName)
		suite.Assert().True(share.Amount.Equal(decimal.NewFromInt(400)), "amount is %s", share.Amount)
		suite.Assert().Equal("R$ 400,00", share.Formatted.Amount)
		suite.Assert().Equal("40,0%", share.Formatted.CAP)
	}

	suite.Assert().Equal("R$ 1.000,00", preview.Formatted.Income)
	suite.Assert().Equal("R$ 800,00", preview.Formatted.Allocated)
	suite.Assert().Equal("80,0%", preview.Formatted.TotalCAP)

	// Nothing is recorded
	allocations, err := suite.store.ListAllocations(suite.T().Context())
	suite.Require().Nil(err)
	suite.Assert().Empty(allocations)
}

func (suite *TestSuiteStandard) TestAllocationsPreviewStatus() {
	tests := []struct {
		name      string
		caps      []int64
		status    calculator.CapStatus
		balanced  bool
		allocated int64
	}{
		{"No accounts", nil, calculator.CapUnder, false, 0},
		{"Balanced", []int64{30, 70}, calculator.CapBalanced, true, 1000},
		{"Over", []int64{60, 60}, calculator.CapOver, false, 1200},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.SetupTest()

			for i, percent := range tt.caps {
				suite.createTestAccount(t, v1.AccountEditable{Name: fmt.Sprintf("Account %d", i), CAP: decimal.NewFromInt(percent)})
			}

			preview := suite.preview(t, "?income=1000", http.StatusOK).Data
			require.NotNil(t, preview)
			assert.Equal(t, tt.status, preview.Status)
			assert.Equal(t, tt.balanced, preview.Balanced)
			assert.True(t, preview.Allocated.Equal(decimal.NewFromInt(tt.allocated)), "allocated is %s", preview.Allocated)
			assert.Len(t, preview.Shares, len(tt.caps))
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationsPreviewInvalid() {
	tests := []struct {
		name  string
		query string
		err   string
	}{
		{"Missing income", "", "Income is required"},
		{"Empty income", "?income=", "Income is required"},
		{"Not a number", "?income=lots", `income: "lots" is not a valid number`},
		{"Zero", "?income=0", "income: must be greater than 0"},
		{"Negative", "?income=-10", "income: must be greater than 0"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			response := suite.preview(t, tt.query, http.StatusBadRequest)
			assert.Nil(t, response.Data)
			require.NotNil(t, response.Error)
			assert.Equal(t, tt.err, *response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationsPreviewDatabaseClosed() {
	suite.CloseDB()
	suite.preview(suite.T(), "?income=100", http.StatusInternalServerError)
}
