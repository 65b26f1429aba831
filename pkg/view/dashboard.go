// Package view derives the dashboard from the accounts and allocations of a user.
package view

import (
	"time"

	"github.com/alocar/backend/internal/types"
	"github.com/alocar/backend/pkg/calculator"
	"github.com/alocar/backend/pkg/models"
	"github.com/shopspring/decimal"
)

// Dashboard is the summary of all accounts and allocations.
type Dashboard struct {
	Month           types.Month          `json:"month" swaggertype:"string" example:"2024-01"`                      // The month MonthlyIncome is computed for
	TotalIncome     decimal.Decimal      `json:"totalIncome" example:"15000"`                                      // Sum of all recorded incomes
	MonthlyIncome   decimal.Decimal      `json:"monthlyIncome" example:"4250.75"`                                  // Sum of the incomes recorded in Month
	TotalCAP        decimal.Decimal      `json:"totalCap" example:"100"`                                           // Sum of the CAP of all accounts
	TotalTAP        decimal.Decimal      `json:"totalTap" example:"100"`                                           // Sum of the TAP of all accounts
	CapStatus       calculator.CapStatus `json:"capStatus" example:"balanced" enums:"under,balanced,over"`          // How TotalCAP relates to 100%
	Balanced        bool                 `json:"balanced" example:"true"`                                          // TotalCAP is exactly 100%
	LastAllocation  *models.Allocation   `json:"lastAllocation"`                                                   // The most recently recorded allocation, if any
	AccountCount    int                  `json:"accountCount" example:"3"`                                         // Number of accounts
	AllocationCount int                  `json:"allocationCount" example:"12"`                                     // Number of allocations
	Empty           bool                 `json:"empty" example:"false"`                                            // There are neither accounts nor allocations
}

// Compute derives the dashboard. now determines the current month, in now's location.
func Compute(accounts []models.Account, allocations []models.Allocation, now time.Time) Dashboard {
	month := types.MonthOf(now)

	d := Dashboard{
		Month:           month,
		TotalIncome:     decimal.Zero,
		MonthlyIncome:   decimal.Zero,
		TotalCAP:        calculator.PercentageTotal(accounts, calculator.CAP),
		TotalTAP:        calculator.PercentageTotal(accounts, calculator.TAP),
		CapStatus:       calculator.Status(accounts),
		Balanced:        calculator.IsBalanced(accounts),
		AccountCount:    len(accounts),
		AllocationCount: len(allocations),
		Empty:           len(accounts) == 0 && len(allocations) == 0,
	}

	for _, allocation := range allocations {
		d.TotalIncome = d.TotalIncome.Add(allocation.Income)

		if month.Contains(allocation.CreatedAt) {
			d.MonthlyIncome = d.MonthlyIncome.Add(allocation.Income)
		}

		if d.LastAllocation == nil || allocation.CreatedAt.After(d.LastAllocation.CreatedAt) {
			last := allocation
			d.LastAllocation = &last
		}
	}

	return d
}
