package lucro

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DefaultCurrency is the currency used to display amounts when none is configured.
const DefaultCurrency = "BRL"

// Money represents a monetary value in the business currency.
//
// The currency itself is a display concern: a ledger holds amounts in a
// single currency chosen in the settings.
type Money struct {
	value decimal.Decimal // as major unit value
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// M creates a Money from a number of major units.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// ParseMoney parses a decimal amount, accepting a comma as decimal separator.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(normalizeAmount(s))
	if err != nil {
		return Money{}, err
	}
	return Money{value: d}, nil
}

// normalizeAmount turns "1.234,50" or "12,5" into a dot-decimal string.
// The right-most of ',' and '.' is the decimal separator, the other one is a
// thousands separator.
func normalizeAmount(s string) string {
	comma, dot := strings.LastIndex(s, ","), strings.LastIndex(s, ".")
	if comma < 0 {
		return s
	}
	if dot > comma {
		return strings.ReplaceAll(s, ",", "")
	}
	s = strings.ReplaceAll(s, ".", "")
	return strings.Replace(s, ",", ".", 1)
}

// Format returns the amount formatted for the given currency (e.g. "R$ 45,00").
func (m Money) Format(currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	// to get a never nil currency I need to call the Money constructor
	cur := money.New(0, currency).Currency()
	minor := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// String returns the amount with two decimals and no currency.
func (m Money) String() string { return m.value.StringFixed(2) }

// Simple wrapper around decimal.Decimal

func (m Money) Decimal() decimal.Decimal        { return m.value }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) LessThanOrEqual(n Money) bool    { return m.value.LessThanOrEqual(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money               { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money               { return Money{value: m.value.Sub(n.value)} }
func (m Money) Times(n int) Money               { return Money{value: m.value.Mul(decimal.NewFromInt(int64(n)))} }

// Div divides by a count. Dividing by zero returns zero.
func (m Money) Div(n int) Money {
	if n == 0 {
		return Money{}
	}
	return Money{value: m.value.Div(decimal.NewFromInt(int64(n)))}
}

// Ratio returns m/n, or zero when n is zero.
func (m Money) Ratio(n Money) decimal.Decimal {
	if n.value.IsZero() {
		return decimal.Zero
	}
	return m.value.Div(n.value)
}

// AsFloat is for presentation only, e.g. spreadsheet cells. Computations stay exact on decimals.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

func (m *Money) UnmarshalJSON(b []byte) error {
	return m.value.UnmarshalJSON(b)
}
