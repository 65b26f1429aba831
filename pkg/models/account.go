package models

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Minimum length of an account name, counted in characters.
const AccountNameMinLength = 2

var (
	percentMin = decimal.Zero
	percentMax = decimal.NewFromInt(100)
)

// Account is an investment bucket that receives a share of every income event.
type Account struct {
	DefaultModel
	AccountCreate
}

type AccountCreate struct {
	Name string          `json:"name" example:"Savings" default:""`                        // Name of the account
	CAP  decimal.Decimal `json:"cap" gorm:"column:cap;type:TEXT" example:"30" default:"0"` // Capital allocation percentage, the share of every income routed to this account
	TAP  decimal.Decimal `json:"tap" gorm:"column:tap;type:TEXT" example:"40" default:"0"` // Target allocation percentage
}

func (Account) Self() string {
	return "Account"
}

func (Account) TableName() string {
	return "accounts"
}

func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	return nil
}

// Validate checks the values a user submits for an account.
//
// The store does not call this, callers must validate before writing.
func (c AccountCreate) Validate() error {
	if utf8.RuneCountInString(strings.TrimSpace(c.Name)) < AccountNameMinLength {
		return ValidationError{Field: "name", Message: "must be at least 2 characters"}
	}

	if err := validatePercent("cap", c.CAP); err != nil {
		return err
	}

	return validatePercent("tap", c.TAP)
}

func validatePercent(field string, value decimal.Decimal) error {
	if value.LessThan(percentMin) || value.GreaterThan(percentMax) {
		return ValidationError{Field: field, Message: "must be between 0 and 100"}
	}
	return nil
}
