package lucro

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SimulatedQuantities are the sale volumes shown by a price simulation.
var SimulatedQuantities = []int{10, 20, 50, 100}

// PriceSimulation suggests a sale price for a unit cost and a desired margin.
type PriceSimulation struct {
	Cost           Money
	Margin         Percent // margin on the sale price
	SuggestedPrice Money
	UnitProfit     Money
	Volumes        []VolumeProfit
}

// VolumeProfit is the profit of selling Quantity units at the suggested price.
type VolumeProfit struct {
	Quantity int
	Profit   Money
}

// SuggestedPrice returns the price making margin percent of it profit:
// cost / (1 - margin/100).
func SuggestedPrice(cost Money, margin decimal.Decimal) (Money, error) {
	hundred := decimal.NewFromInt(100)
	if margin.IsNegative() || margin.GreaterThanOrEqual(hundred) {
		return Money{}, fmt.Errorf("margin must be in [0, 100), got %s", margin)
	}
	rate := decimal.NewFromInt(1).Sub(margin.Div(hundred))
	return Money{value: cost.value.Div(rate).Round(2)}, nil
}

// ProfitMargin is the share of the price that is profit, 0 for a free product.
func ProfitMargin(price, cost Money) Percent {
	if price.IsZero() {
		return 0
	}
	return percentOf(price.Sub(cost).Ratio(price))
}

// SimulatePrice builds the price simulation of the calculator.
func SimulatePrice(cost Money, margin decimal.Decimal) (*PriceSimulation, error) {
	if !cost.IsPositive() {
		return nil, fmt.Errorf("cost must be positive, got %s", cost)
	}
	price, err := SuggestedPrice(cost, margin)
	if err != nil {
		return nil, err
	}
	sim := &PriceSimulation{
		Cost:           cost,
		Margin:         Percent(margin.InexactFloat64()),
		SuggestedPrice: price,
		UnitProfit:     price.Sub(cost),
	}
	for _, q := range SimulatedQuantities {
		sim.Volumes = append(sim.Volumes, VolumeProfit{Quantity: q, Profit: sim.UnitProfit.Times(q)})
	}
	return sim, nil
}
