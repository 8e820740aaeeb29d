package lucro

import (
	"time"

	"github.com/etnz/lucro/date"
)

// GoalStatus is the progress of the revenue of a period toward its target.
type GoalStatus struct {
	Period   date.Period
	Target   Money
	Achieved Money
	Progress Percent
}

// Dashboard is the summary of the current day.
type Dashboard struct {
	Date         date.Date
	BusinessName string
	Revenue      Money
	Expense      Money
	Profit       Money
	Goals        []GoalStatus // daily, weekly, monthly; empty without a daily target
	LowStock     []Product
	Achievements []Achievement // unlocked ones
}

// NewDashboard computes the dashboard of today.
//
// Weekly and monthly targets are derived from the daily target (×7, ×30).
func NewDashboard(l *Ledger, today date.Date) *Dashboard {
	d := &Dashboard{
		Date:         today,
		BusinessName: l.Config.BusinessName,
		Revenue:      DailyTotal(l.Sales, today),
		Expense:      DailyTotal(l.Expenses, today),
		LowStock:     LowStock(l.Products),
	}
	d.Profit = d.Revenue.Sub(d.Expense)

	if daily := l.DailyTarget(); daily.IsPositive() {
		for _, p := range []date.Period{date.Daily, date.Weekly, date.Monthly} {
			target := Target(daily, p)
			achieved := PeriodTotal(l.Sales, today, p)
			d.Goals = append(d.Goals, GoalStatus{
				Period:   p,
				Target:   target,
				Achieved: achieved,
				Progress: GoalProgress(achieved, target),
			})
		}
	}
	for _, a := range l.Achievements {
		if a.Unlocked {
			d.Achievements = append(d.Achievements, a)
		}
	}
	return d
}

// AdminReport summarizes the whole history and the current month.
type AdminReport struct {
	Date          date.Date
	Revenue       Money
	Expense       Money
	Profit        Money
	MonthRevenue  Money
	MonthExpense  Money
	MonthProfit   Money
	BestSeller    *BestSeller
	Products      int
	Sales         int
	Customers     int
	Goals         []Goal
	LastSale      time.Time
	FixedCosts    Money
	FixedCostPlan Requirement
}

// NewAdminReport computes the administration summary on today.
func NewAdminReport(l *Ledger, today date.Date) *AdminReport {
	r := &AdminReport{
		Date:         today,
		Revenue:      Total(l.Sales),
		Expense:      Total(l.Expenses),
		MonthRevenue: MonthTotal(l.Sales, today),
		MonthExpense: MonthTotal(l.Expenses, today),
		Products:     len(l.Products),
		Sales:        len(l.Sales),
		Customers:    len(l.Customers),
		Goals:        l.Goals,
		FixedCosts:   l.Config.MonthlyFixedCosts,
	}
	r.Profit = r.Revenue.Sub(r.Expense)
	r.MonthProfit = r.MonthRevenue.Sub(r.MonthExpense)
	if best, ok := BestSelling(l.Sales); ok {
		r.BestSeller = &best
	}
	if n := len(l.Sales); n > 0 {
		r.LastSale = l.Sales[n-1].Time
	}
	if r.FixedCosts.IsPositive() {
		r.FixedCostPlan = RequiredSales(r.FixedCosts, l.Sales, l.Products)
	}
	return r
}
