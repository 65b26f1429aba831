// Package calculator contains the allocation arithmetic.
//
// All functions are pure and never fail. Percentages are expressed in
// the range 0 to 100.
package calculator

import (
	"github.com/alocar/backend/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Field selects the percentage of an account that is summed.
type Field string

const (
	CAP Field = "cap"
	TAP Field = "tap"
)

// CapStatus describes how the CAP total of a set of accounts relates to 100%.
type CapStatus string

const (
	CapUnder    CapStatus = "under"
	CapBalanced CapStatus = "balanced"
	CapOver     CapStatus = "over"
)

// Share is the part of an income that one account receives.
type Share struct {
	AccountID uuid.UUID       `json:"accountId" example:"3b1e1b4c-5a3e-4b36-a1a4-7c2b0c2f8e11"` // The account receiving the share
	CAP       decimal.Decimal `json:"cap" example:"30"`                                        // CAP the amount was computed with
	Amount    decimal.Decimal `json:"amount" example:"1275.23"`                                // The share of the income
}

// PercentageTotal sums the selected percentage over all accounts.
//
// An unknown field sums to zero.
func PercentageTotal(accounts []models.Account, field Field) decimal.Decimal {
	total := decimal.Zero
	for _, account := range accounts {
		switch field {
		case CAP:
			total = total.Add(account.CAP)
		case TAP:
			total = total.Add(account.TAP)
		}
	}
	return total
}

// AllocatedAmount returns the part of the income a CAP of cap percent receives.
//
// The result is not rounded. Negative incomes are not rejected, they
// simply produce negative amounts.
func AllocatedAmount(income, cap decimal.Decimal) decimal.Decimal {
	return income.Mul(cap).Div(hundred)
}

// IsBalanced reports whether the CAP of all accounts sums to exactly 100.
func IsBalanced(accounts []models.Account) bool {
	return PercentageTotal(accounts, CAP).Equal(hundred)
}

// Status classifies the CAP total of the accounts.
func Status(accounts []models.Account) CapStatus {
	switch PercentageTotal(accounts, CAP).Cmp(hundred) {
	case -1:
		return CapUnder
	case 1:
		return CapOver
	default:
		return CapBalanced
	}
}

// Split computes the share of the income for every account, in the
// order of the accounts.
func Split(income decimal.Decimal, accounts []models.Account) []Share {
	shares := make([]Share, 0, len(accounts))
	for _, account := range accounts {
		shares = append(shares, Share{
			AccountID: account.ID,
			CAP:       account.CAP,
			Amount:    AllocatedAmount(income, account.CAP),
		})
	}
	return shares
}

// Allocated sums the amounts of all shares.
func Allocated(shares []Share) decimal.Decimal {
	total := decimal.Zero
	for _, share := range shares {
		total = total.Add(share.Amount)
	}
	return total
}
