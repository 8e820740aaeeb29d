package lucro

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a ratio expressed in percent, 40 means 40%.
type Percent float64

// percentOf returns the ratio as a Percent, unrounded. Rounding is left to
// String.
func percentOf(ratio decimal.Decimal) Percent {
	return Percent(ratio.Shift(2).InexactFloat64())
}

// Equal compares percents within a hundredth of a percent.
func (p Percent) Equal(q Percent) bool {
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < 0.01
}

// String rounds to the unit, e.g. "43%".
func (p Percent) String() string {
	return fmt.Sprintf("%.0f%%", float64(p))
}
