package v1

import (
	"fmt"
	"strings"

	"github.com/alocar/backend/pkg/httputil"
	"github.com/alocar/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
)

type AccountEditable struct {
	Name string          `json:"name" example:"Savings" default:""`                                            // Name of the account, at least 2 characters
	CAP  decimal.Decimal `json:"cap" example:"30" default:"0" minimum:"0" maximum:"100" multipleOf:"0.00000001"` // Capital allocation percentage, the share of every income routed to this account
	TAP  decimal.Decimal `json:"tap" example:"40" default:"0" minimum:"0" maximum:"100" multipleOf:"0.00000001"` // Target allocation percentage
}

// model returns the values for the store
func (editable AccountEditable) model() models.AccountCreate {
	return models.AccountCreate{
		Name: editable.Name,
		CAP:  editable.CAP,
		TAP:  editable.TAP,
	}
}

type AccountLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // The account itself
}

// AccountFormatted contains the values of the account formatted for display.
type AccountFormatted struct {
	CAP       string `json:"cap" example:"30,0%"`               // CAP as percentage
	TAP       string `json:"tap" example:"40,0%"`               // TAP as percentage
	CreatedAt string `json:"createdAt" example:"17/01/2024"` // Creation date
}

// Account is the API v1 representation of an Account.
type Account struct {
	models.DefaultModel
	AccountEditable
	Formatted AccountFormatted `json:"formatted"`
	Links     AccountLinks     `json:"links"`
}

func (co Controller) newAccount(c *gin.Context, model models.Account) Account {
	return Account{
		DefaultModel: model.DefaultModel,
		AccountEditable: AccountEditable{
			Name: model.Name,
			CAP:  model.CAP,
			TAP:  model.TAP,
		},
		Formatted: AccountFormatted{
			CAP:       co.Format.Percentage(model.CAP),
			TAP:       co.Format.Percentage(model.TAP),
			CreatedAt: co.Format.Date(model.CreatedAt),
		},
		Links: AccountLinks{
			Self: fmt.Sprintf("%s/v1/accounts/%s", httputil.BaseURL(c), model.ID),
		},
	}
}

type AccountListResponse struct {
	Data       []Account   `json:"data"`                                                          // List of accounts
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type AccountCreateResponse struct {
	Error *string           `json:"error" example:"name: must be at least 2 characters"` // The error, if any occurred
	Data  []AccountResponse `json:"data"`                                                // List of created Accounts
}

func (a *AccountCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, AccountResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AccountResponse struct {
	Data  *Account `json:"data"`                                                          // Data for the account
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this account
}

type AccountQueryFilter struct {
	Name   string `form:"name"`                                    // Filter for the account name. Supports "*" as wildcard, without one, all accounts containing the name match
	Offset uint   `form:"offset"`                                  // The offset of the first Account returned. Defaults to 0.
	Limit  int    `form:"limit" binding:"omitempty,min=0,max=500"` // Maximum number of Accounts to return. Defaults to 50.
}

// matches reports if the account name matches the name filter.
// Matching is case insensitive.
func (f AccountQueryFilter) matches(account models.Account) bool {
	if f.Name == "" {
		return true
	}

	pattern := strings.ToLower(f.Name)
	if !strings.Contains(pattern, glob.GLOB) {
		pattern = glob.GLOB + pattern + glob.GLOB
	}

	return glob.Glob(pattern, strings.ToLower(account.Name))
}
