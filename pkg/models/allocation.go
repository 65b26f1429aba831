package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Allocation is a single recorded income event that is distributed
// across the accounts of its owner.
type Allocation struct {
	DefaultModel
	AllocationCreate
	AccountAllocations []AccountAllocation `json:"accountAllocations" gorm:"foreignKey:AllocationID"` // The per-account shares of the income
}

type AllocationCreate struct {
	Income decimal.Decimal `json:"income" gorm:"type:TEXT" example:"4250.75" default:"0"` // The income to distribute
}

func (Allocation) Self() string {
	return "Allocation"
}

func (Allocation) TableName() string {
	return "allocations"
}

// Validate checks the income a user submits.
//
// Storage accepts any value, but an allocation of nothing is never
// what a user meant to record.
func (c AllocationCreate) Validate() error {
	if !c.Income.IsPositive() {
		return ValidationError{Field: "income", Message: "must be greater than 0"}
	}
	return nil
}

// AccountAllocation is the share of one Allocation routed to one Account.
//
// CAP is a snapshot of the account's CAP when the allocation was recorded,
// so later edits of the account do not change history.
type AccountAllocation struct {
	DefaultModel
	CAP          decimal.Decimal `json:"cap" gorm:"column:cap;type:TEXT" example:"30"`                              // CAP of the account at the time of the split
	Amount       decimal.Decimal `json:"amount" gorm:"type:TEXT" example:"1275.225"`                                // Share of the income
	AccountID    uuid.UUID       `json:"accountId" gorm:"<-:create" example:"3b1e1b4c-5a3e-4b36-a1a4-7c2b0c2f8e11"` // The account receiving the share
	Account      Account         `json:"-"`
	AllocationID uuid.UUID       `json:"allocationId" gorm:"<-:create" example:"e3c1a7b2-44f6-4a0e-8c1b-5f0e0f6f7a90"` // The allocation the share is part of
	Allocation   *Allocation     `json:"-"`
}

func (AccountAllocation) Self() string {
	return "Account Allocation"
}

func (AccountAllocation) TableName() string {
	return "account_allocations"
}
