package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money is a monetary amount in a single currency. The amount stays a
// decimal string at rest; arithmetic goes through shopspring/decimal.
type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

func NewMoney(amount decimal.Decimal, currencyCode string) Money {
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	return Money{Amount: amount.String(), CurrencyCode: currencyCode}
}

// Decimal parses the amount. Unparseable or negative amounts normalize to
// zero rather than erroring; they only ever originate from internal call
// sites.
func (m Money) Decimal() decimal.Decimal {
	d, err := decimal.NewFromString(m.Amount)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func (m Money) IsZero() bool {
	return m.Decimal().IsZero()
}

// Cmp compares amounts numerically, ignoring currency.
func (m Money) Cmp(other Money) int {
	return m.Decimal().Cmp(other.Decimal())
}

// MulQuantity returns the line total for a positive quantity.
func (m Money) MulQuantity(quantity int) Money {
	if quantity < 1 {
		quantity = 1
	}
	return NewMoney(m.Decimal().Mul(decimal.NewFromInt(int64(quantity))), m.CurrencyCode)
}

func (m Money) Add(other Money) Money {
	return NewMoney(m.Decimal().Add(other.Decimal()), m.CurrencyCode)
}

// Format renders the amount for display with a currency symbol. Display
// only; stored amounts are never touched by formatting.
func (m Money) Format() string {
	unit, err := currency.ParseISO(m.CurrencyCode)
	if err != nil {
		return m.CurrencyCode + " " + m.Amount
	}
	p := message.NewPrinter(language.English)
	return p.Sprint(currency.NarrowSymbol(unit.Amount(m.Decimal().InexactFloat64())))
}
