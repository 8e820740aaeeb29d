package lucro

import (
	"time"

	"github.com/etnz/lucro/date"
)

// Record is a dated amount: a sale or an expense.
type Record interface {
	When() time.Time
	Amount() Money
}

// day returns the calendar day a record belongs to.
func day(r Record) date.Date { return date.Of(r.When()) }

// Total sums all the records.
func Total[R Record](records []R) Money {
	var sum Money
	for _, r := range records {
		sum = sum.Add(r.Amount())
	}
	return sum
}

// DailyTotal sums the records of the calendar day d.
func DailyTotal[R Record](records []R, d date.Date) Money {
	var sum Money
	for _, r := range records {
		if day(r) == d {
			sum = sum.Add(r.Amount())
		}
	}
	return sum
}

// RangeTotal sums the records dated on or after from.
func RangeTotal[R Record](records []R, from date.Date) Money {
	var sum Money
	for _, r := range records {
		if !day(r).Before(from) {
			sum = sum.Add(r.Amount())
		}
	}
	return sum
}

// MonthTotal sums the records of the calendar month of d.
func MonthTotal[R Record](records []R, d date.Date) Money {
	var sum Money
	for _, r := range records {
		rd := day(r)
		if rd.Year() == d.Year() && rd.Month() == d.Month() {
			sum = sum.Add(r.Amount())
		}
	}
	return sum
}

// PeriodTotal sums the records of the period containing today.
//
// The weekly window starts on the Sunday of the current week and includes
// anything recorded after it.
func PeriodTotal[R Record](records []R, today date.Date, period date.Period) Money {
	switch period {
	case date.Weekly:
		return RangeTotal(records, WeekStart(today))
	case date.Monthly:
		return MonthTotal(records, today)
	default:
		return DailyTotal(records, today)
	}
}

// WeekStart returns the Sunday starting the week of today.
func WeekStart(today date.Date) date.Date { return today.StartOf(date.Weekly) }

// Profit is the signed difference between sales and expenses.
func Profit(sales []Sale, expenses []Expense) Money {
	return Total(sales).Sub(Total(expenses))
}

// GoalProgress returns achieved as a percentage of target.
//
// A zero target gives 0. The result is capped at 100 but not floored, a
// negative achieved value gives a negative percentage.
func GoalProgress(achieved, target Money) Percent {
	if target.IsZero() {
		return 0
	}
	if p := percentOf(achieved.Ratio(target)); p < 100 {
		return p
	}
	return 100
}

// Target derives the target of a period from the daily target: ×1, ×7 or ×30.
func Target(daily Money, period date.Period) Money {
	return daily.Times(period.Days())
}

// BestSeller is the product name with the highest quantity sold.
type BestSeller struct {
	Name     string
	Quantity int
}

// BestSelling groups sales by product name and returns the group with the
// greatest quantity. Ties go to the name sold first.
func BestSelling(sales []Sale) (BestSeller, bool) {
	var names []string
	qty := make(map[string]int)
	for _, s := range sales {
		if _, seen := qty[s.ProductName]; !seen {
			names = append(names, s.ProductName)
		}
		qty[s.ProductName] += s.Quantity
	}
	if len(names) == 0 {
		return BestSeller{}, false
	}
	best := BestSeller{Name: names[0], Quantity: qty[names[0]]}
	for _, n := range names[1:] {
		if qty[n] > best.Quantity {
			best = BestSeller{Name: n, Quantity: qty[n]}
		}
	}
	return best, true
}

// HistoricalProfit is the profit of all sales at the current unit margin of
// their product. Sales of deleted products count for nothing.
func HistoricalProfit(sales []Sale, products []Product) Money {
	margins := make(map[string]Money, len(products))
	for _, p := range products {
		margins[p.ID] = p.UnitMargin()
	}
	var sum Money
	for _, s := range sales {
		if m, ok := margins[s.ProductID]; ok {
			sum = sum.Add(m.Times(s.Quantity))
		}
	}
	return sum
}

// AverageProfitPerSale divides the historical profit by the number of sales,
// 0 without sales.
func AverageProfitPerSale(sales []Sale, products []Product) Money {
	return HistoricalProfit(sales, products).Div(len(sales))
}

// SalesNeeded is the number of sales of perSale profit covering target.
// It is 0 when perSale is not positive.
func SalesNeeded(target, perSale Money) int {
	if !perSale.IsPositive() {
		return 0
	}
	return int(target.Ratio(perSale).Ceil().IntPart())
}

// Basis tells which per-sale profit estimate a Requirement uses.
type Basis int

const (
	// NoBasis means there is nothing to estimate a per-sale profit from.
	NoBasis Basis = iota
	// HistoricalAverage uses the average profit of recorded sales.
	HistoricalAverage
	// FirstProductMargin uses the unit margin of the first registered product.
	FirstProductMargin
)

// Requirement is how many sales cover a target amount.
type Requirement struct {
	Target  Money
	PerSale Money
	Sales   int
	Basis   Basis
	Product *Product // set for FirstProductMargin
}

// RequiredSales estimates the number of sales needed to cover target.
//
// The historical average profit per sale is used when it is positive,
// otherwise the unit margin of the first product when it is positive.
func RequiredSales(target Money, sales []Sale, products []Product) Requirement {
	r := Requirement{Target: target}
	if avg := AverageProfitPerSale(sales, products); avg.IsPositive() {
		r.PerSale, r.Basis = avg, HistoricalAverage
		r.Sales = SalesNeeded(target, avg)
		return r
	}
	if len(products) == 0 {
		return r
	}
	first := products[0]
	if margin := first.UnitMargin(); margin.IsPositive() {
		r.PerSale, r.Basis, r.Product = margin, FirstProductMargin, &first
		r.Sales = SalesNeeded(target, margin)
	}
	return r
}

// LowStock returns the products whose stock reached their minimum.
func LowStock(products []Product) []Product {
	var low []Product
	for _, p := range products {
		if p.LowStock() {
			low = append(low, p)
		}
	}
	return low
}
