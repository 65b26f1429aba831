// Package format renders amounts, percentages and dates for display.
//
// Every function is total: it returns a string for any input and never
// an error.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Fallback is returned for values that cannot be displayed, e.g. a zero time.
const Fallback = "-"

// symbols overrides the CLDR symbols for the currencies the app is used with,
// so that e.g. USD renders as "$" independent of the locale.
var symbols = map[currency.Unit]string{
	currency.BRL: "R$",
	currency.USD: "$",
	currency.EUR: "€",
	currency.GBP: "£",
}

// Formatter formats values for one locale.
type Formatter struct {
	tag      language.Tag
	printer  *message.Printer
	unit     currency.Unit
	location *time.Location
	date     string
	dateTime string
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithLocation sets the time zone dates are displayed in. It defaults to
// the local time zone.
func WithLocation(loc *time.Location) Option {
	return func(f *Formatter) {
		if loc != nil {
			f.location = loc
		}
	}
}

// WithCurrency overrides the currency derived from the locale.
func WithCurrency(unit currency.Unit) Option {
	return func(f *Formatter) {
		f.unit = unit
	}
}

// Default formats for Brazilian Portuguese with Brazilian Real.
var Default = New(language.BrazilianPortuguese)

// New creates a Formatter for the locale.
func New(tag language.Tag, opts ...Option) Formatter {
	unit, _ := currency.FromTag(tag)

	f := Formatter{
		tag:      tag,
		printer:  message.NewPrinter(tag),
		unit:     unit,
		location: time.Local,
		date:     "02/01/2006",
		dateTime: "02/01/2006, 15:04",
	}

	if region, _ := tag.Region(); region.String() == "US" {
		f.date = "01/02/2006"
		f.dateTime = "01/02/2006, 3:04 PM"
	}

	for _, opt := range opts {
		opt(&f)
	}

	return f
}

// Tag returns the locale of the Formatter.
func (f Formatter) Tag() language.Tag {
	return f.tag
}

// Location returns the time zone dates are displayed in.
func (f Formatter) Location() *time.Location {
	return f.location
}

// Symbol returns the currency symbol, e.g. "R$".
func (f Formatter) Symbol() string {
	if s, ok := symbols[f.unit]; ok {
		return s
	}
	return f.printer.Sprint(currency.Symbol(f.unit))
}

// Currency formats an amount of money with two decimals and the currency
// symbol, e.g. "R$ 1.234,50".
func (f Formatter) Currency(value decimal.Decimal) string {
	sign := ""
	if value.Round(2).IsNegative() {
		sign = "-"
	}

	return fmt.Sprintf("%s%s %s", sign, f.Symbol(), f.decimal(value.Abs(), 2))
}

// Number formats a number with two decimals and locale grouping, e.g. "1.234,50".
func (f Formatter) Number(value decimal.Decimal) string {
	return f.decimal(value, 2)
}

// Percentage formats a percentage in the range 0 to 100 with one decimal,
// e.g. "30,0%".
func (f Formatter) Percentage(value decimal.Decimal) string {
	return f.decimal(value, 1) + "%"
}

// Date formats the day of t, e.g. "17/01/2024".
func (f Formatter) Date(t time.Time) string {
	if t.IsZero() {
		return Fallback
	}
	return t.In(f.location).Format(f.date)
}

// DateTime formats t with minute precision, e.g. "17/01/2024, 14:05".
func (f Formatter) DateTime(t time.Time) string {
	if t.IsZero() {
		return Fallback
	}
	return t.In(f.location).Format(f.dateTime)
}

func (f Formatter) decimal(value decimal.Decimal, digits int) string {
	rounded := value.Round(int32(digits))

	s := f.printer.Sprintf("%v", number.Decimal(
		rounded.InexactFloat64(),
		number.MinFractionDigits(digits),
		number.MaxFractionDigits(digits),
	))

	// Avoid "-0,00" for values that round to zero
	if rounded.IsZero() {
		s = strings.TrimPrefix(s, "-")
	}

	return s
}

// Currency formats value with the Default formatter.
func Currency(value decimal.Decimal) string {
	return Default.Currency(value)
}

// Number formats value with the Default formatter.
func Number(value decimal.Decimal) string {
	return Default.Number(value)
}

// Percentage formats value with the Default formatter.
func Percentage(value decimal.Decimal) string {
	return Default.Percentage(value)
}

// Date formats t with the Default formatter.
func Date(t time.Time) string {
	return Default.Date(t)
}

// DateTime formats t with the Default formatter.
func DateTime(t time.Time) string {
	return Default.DateTime(t)
}
