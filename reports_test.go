package lucro

import (
	"testing"

	"github.com/etnz/lucro/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDashboard(t *testing.T) {
	today := date.MustParse("2025-09-10")
	l := NewLedger()
	l.Config.BusinessName = "Doces da Ana"
	l.Products = []Product{
		{ID: "p1", Name: "Bolo", Stock: 2, MinStock: 3},
		{ID: "p2", Name: "Torta", Stock: 9, MinStock: 3},
	}
	l.Sales = []Sale{
		sale("2025-09-08", "Bolo", 1, 100),
		sale("2025-09-10", "Bolo", 1, 50),
		sale("2025-08-30", "Bolo", 1, 1000),
	}
	l.Expenses = []Expense{expense("2025-09-10", 70)}
	l.Achievements[0].Unlocked = true

	t.Run("without target", func(t *testing.T) {
		d := NewDashboard(l, today)
		assert.Equal(t, "Doces da Ana", d.BusinessName)
		assert.True(t, d.Revenue.Equal(BRL(50)))
		assert.True(t, d.Expense.Equal(BRL(70)))
		assert.True(t, d.Profit.Equal(BRL(-20)))
		assert.Empty(t, d.Goals)
		require.Len(t, d.LowStock, 1)
		assert.Equal(t, "Bolo", d.LowStock[0].Name)
		require.Len(t, d.Achievements, 1)
		assert.Equal(t, ActiveEntrepreneur, d.Achievements[0].ID)
	})

	t.Run("with target", func(t *testing.T) {
		l.Config.DailyGoal = BRL(100)
		d := NewDashboard(l, today)
		require.Len(t, d.Goals, 3)
		want := []struct {
			period   date.Period
			target   float64
			achieved float64
			progress Percent
		}{
			{date.Daily, 100, 50, 50},
			{date.Weekly, 700, 150, Percent(150.0 / 7)},
			{date.Monthly, 3000, 150, 5},
		}
		for i, w := range want {
			g := d.Goals[i]
			assert.Equal(t, w.period, g.Period)
			assert.True(t, g.Target.Equal(BRL(w.target)), "%v target = %v", w.period, g.Target)
			assert.True(t, g.Achieved.Equal(BRL(w.achieved)), "%v achieved = %v", w.period, g.Achieved)
			assert.InDelta(t, float64(w.progress), float64(g.Progress), 0.01)
		}
	})
}

func TestDailyTargetFallsBackToGoal(t *testing.T) {
	l := NewLedger()
	assert.True(t, l.DailyTarget().IsZero())
	l.Goals = []Goal{{ID: "g", Period: date.Daily, Target: BRL(80)}}
	assert.True(t, l.DailyTarget().Equal(BRL(80)))
	l.Config.DailyGoal = BRL(120)
	assert.True(t, l.DailyTarget().Equal(BRL(120)))
}

func TestNewAdminReport(t *testing.T) {
	today := date.MustParse("2025-09-10")
	l := NewLedger()
	l.Config.MonthlyFixedCosts = BRL(100)
	l.Products = []Product{{ID: "Bolo", Name: "Bolo", UnitCost: BRL(5), SalePrice: BRL(15)}}
	l.Customers = []Customer{{ID: "c1", Name: "Bia"}}
	l.Sales = []Sale{
		sale("2025-08-30", "Bolo", 2, 30),
		sale("2025-09-09", "Bolo", 1, 15),
	}
	l.Expenses = []Expense{expense("2025-08-01", 20), expense("2025-09-01", 5)}

	r := NewAdminReport(l, today)
	assert.True(t, r.Revenue.Equal(BRL(45)))
	assert.True(t, r.Expense.Equal(BRL(25)))
	assert.True(t, r.Profit.Equal(BRL(20)))
	assert.True(t, r.MonthRevenue.Equal(BRL(15)))
	assert.True(t, r.MonthProfit.Equal(BRL(10)))
	require.NotNil(t, r.BestSeller)
	assert.Equal(t, BestSeller{Name: "Bolo", Quantity: 3}, *r.BestSeller)
	assert.Equal(t, 1, r.Products)
	assert.Equal(t, 2, r.Sales)
	assert.Equal(t, 1, r.Customers)
	assert.Equal(t, l.Sales[1].Time, r.LastSale)
	// 30 of profit over 2 sales: 15 per sale, 7 sales cover 100.
	assert.Equal(t, HistoricalAverage, r.FixedCostPlan.Basis)
	assert.Equal(t, 7, r.FixedCostPlan.Sales)
}

func TestNewAdminReportEmpty(t *testing.T) {
	r := NewAdminReport(NewLedger(), date.MustParse("2025-09-10"))
	assert.Nil(t, r.BestSeller)
	assert.True(t, r.LastSale.IsZero())
	assert.Equal(t, NoBasis, r.FixedCostPlan.Basis)
}
