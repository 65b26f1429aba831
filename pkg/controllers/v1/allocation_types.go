package v1

import (
	"fmt"

	"github.com/alocar/backend/internal/types"
	"github.com/alocar/backend/pkg/calculator"
	"github.com/alocar/backend/pkg/httputil"
	"github.com/alocar/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AllocationEditable struct {
	Income decimal.Decimal `json:"income" example:"4250.75" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The income to distribute
}

func (editable AllocationEditable) model() models.AllocationCreate {
	return models.AllocationCreate{
		Income: editable.Income,
	}
}

type AllocationLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/allocations/902cd93c-3724-4e46-8540-d014131282fc"`                      // The allocation itself
	Distribution string `json:"distribution" example:"https://example.com/api/v1/allocations/902cd93c-3724-4e46-8540-d014131282fc/distribution"` // The shares with their accounts
}

type AllocationFormatted struct {
	Income    string `json:"income" example:"R$ 4.250,75"`            // Income as currency
	CreatedAt string `json:"createdAt" example:"17/01/2024, 14:05"` // Time the income was recorded
}

// Share is the part of the income of an allocation routed to one account.
type Share struct {
	ID        uuid.UUID       `json:"id" example:"3f6c0f7e-6f1a-4b57-9a8e-f0f1a3bce3a1"`        // ID of the share
	AccountID uuid.UUID       `json:"accountId" example:"3b1e1b4c-5a3e-4b36-a1a4-7c2b0c2f8e11"` // The account receiving the share
	CAP       decimal.Decimal `json:"cap" example:"30"`                                         // CAP of the account when the allocation was recorded
	Amount    decimal.Decimal `json:"amount" example:"1275.225"`                                // The share of the income
	Formatted ShareFormatted  `json:"formatted"`
}

type ShareFormatted struct {
	CAP    string `json:"cap" example:"30,0%"`          // CAP as percentage
	Amount string `json:"amount" example:"R$ 1.275,23"` // Amount as currency
}

// Allocation is the API v1 representation of an Allocation.
type Allocation struct {
	models.DefaultModel
	AllocationEditable
	Shares    []Share             `json:"shares"` // Shares of the accounts, in the order the accounts were created
	Formatted AllocationFormatted `json:"formatted"`
	Links     AllocationLinks     `json:"links"`
}

func (co Controller) newShare(model models.AccountAllocation) Share {
	return Share{
		ID:        model.ID,
		AccountID: model.AccountID,
		CAP:       model.CAP,
		Amount:    model.Amount,
		Formatted: ShareFormatted{
			CAP:    co.Format.Percentage(model.CAP),
			Amount: co.Format.Currency(model.Amount),
		},
	}
}

func (co Controller) newAllocation(c *gin.Context, model models.Allocation) Allocation {
	url := httputil.BaseURL(c)

	shares := make([]Share, 0, len(model.AccountAllocations))
	for _, share := range model.AccountAllocations {
		shares = append(shares, co.newShare(share))
	}

	return Allocation{
		DefaultModel: model.DefaultModel,
		AllocationEditable: AllocationEditable{
			Income: model.Income,
		},
		Shares: shares,
		Formatted: AllocationFormatted{
			Income:    co.Format.Currency(model.Income),
			CreatedAt: co.Format.DateTime(model.CreatedAt),
		},
		Links: AllocationLinks{
			Self:         fmt.Sprintf("%s/v1/allocations/%s", url, model.ID),
			Distribution: fmt.Sprintf("%s/v1/allocations/%s/distribution", url, model.ID),
		},
	}
}

type AllocationListResponse struct {
	Data       []Allocation `json:"data"`                                                          // List of allocations
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type AllocationCreateResponse struct {
	Error *string              `json:"error" example:"income: must be greater than 0"` // The error, if any occurred
	Data  []AllocationResponse `json:"data"`                                           // List of created allocations
}

func (a *AllocationCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, AllocationResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AllocationResponse struct {
	Data  *Allocation `json:"data"`                                                          // Data for the allocation
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this allocation
}

type AllocationQueryFilter struct {
	Month  types.Month `form:"month" swaggertype:"string" example:"2024-01"` // Only allocations recorded in this month, in the time zone of the server
	Offset uint        `form:"offset"`                                       // The offset of the first Allocation returned. Defaults to 0.
	Limit  int         `form:"limit" binding:"omitempty,min=0,max=500"`      // Maximum number of Allocations to return. Defaults to 50.
}

// Distribution is a share together with the account it was routed to.
type Distribution struct {
	Share
	AccountName    string `json:"accountName" example:"Savings"`    // Name of the account
	AccountDeleted bool   `json:"accountDeleted" example:"false"` // The account has been deleted after the allocation was recorded
}

type DistributionResponse struct {
	Data  []Distribution `json:"data"`                                                          // The shares of the allocation
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AllocationPreviewQuery struct {
	Income string `form:"income" binding:"required" example:"4250.75"` // The income to split
}

type PreviewShareFormatted struct {
	CAP    string `json:"cap" example:"30,0%"`          // CAP as percentage
	Amount string `json:"amount" example:"R$ 1.275,23"` // Amount as currency
}

// PreviewShare is the part of the income one account would receive.
type PreviewShare struct {
	calculator.Share
	AccountName string                `json:"accountName" example:"Savings"` // Name of the account
	Formatted   PreviewShareFormatted `json:"formatted"`
}

type AllocationPreviewFormatted struct {
	Income    string `json:"income" example:"R$ 4.250,75"`    // Income as currency
	Allocated string `json:"allocated" example:"R$ 4.250,75"` // Sum of all shares as currency
	TotalCAP  string `json:"totalCap" example:"100,0%"`       // Sum of all CAPs as percentage
}

// AllocationPreview is the split of an income across the current accounts.
// Nothing is recorded.
type AllocationPreview struct {
	Income    decimal.Decimal            `json:"income" example:"4250.75"`    // The income to split
	Shares    []PreviewShare             `json:"shares"`                      // Shares of the accounts, in the order the accounts were created
	Allocated decimal.Decimal            `json:"allocated" example:"4250.75"` // Sum of all shares. Differs from the income unless the CAP is balanced
	TotalCAP  decimal.Decimal            `json:"totalCap" example:"100"`      // Sum of the CAP of all accounts
	Status    calculator.CapStatus       `json:"status" example:"balanced"`   // How the CAP total relates to 100%: "under", "balanced" or "over"
	Balanced  bool                       `json:"balanced" example:"true"`     // The CAP of all accounts sums to exactly 100%
	Formatted AllocationPreviewFormatted `json:"formatted"`
}

func (co Controller) newAllocationPreview(income decimal.Decimal, accounts []models.Account) AllocationPreview {
	split := calculator.Split(income, accounts)

	shares := make([]PreviewShare, 0, len(split))
	for i, share := range split {
		shares = append(shares, PreviewShare{
			Share:       share,
			AccountName: accounts[i].Name,
			Formatted: PreviewShareFormatted{
				CAP:    co.Format.Percentage(share.CAP),
				Amount: co.Format.Currency(share.Amount),
			},
		})
	}

	allocated := calculator.Allocated(split)
	totalCAP := calculator.PercentageTotal(accounts, calculator.CAP)

	return AllocationPreview{
		Income:    income,
		Shares:    shares,
		Allocated: allocated,
		TotalCAP:  totalCAP,
		Status:    calculator.Status(accounts),
		Balanced:  calculator.IsBalanced(accounts),
		Formatted: AllocationPreviewFormatted{
			Income:    co.Format.Currency(income),
			Allocated: co.Format.Currency(allocated),
			TotalCAP:  co.Format.Percentage(totalCAP),
		},
	}
}

type AllocationPreviewResponse struct {
	Data  *AllocationPreview `json:"data"`                                          // The split of the income
	Error *string            `json:"error" example:"income: must be greater than 0"` // The error, if any occurred
}
