package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/lucro"
	"github.com/etnz/lucro/date"
	"github.com/etnz/lucro/renderer"
	"github.com/google/subcommands"
)

type saleCmd struct {
	quantity int
	customer string
}

func (*saleCmd) Name() string     { return "sale" }
func (*saleCmd) Synopsis() string { return "record a sale" }
func (*saleCmd) Usage() string {
	return `lcr sale [-q <quantity>] [-customer <customer>] <product>

  Records a sale of a product, designated by id or name, at its current price.
  The stock is decremented and achievements are checked.
`
}

func (c *saleCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.quantity, "q", 1, "Quantity sold.")
	f.StringVar(&c.customer, "customer", "", "Customer who bought, by id or name.")
}

func (c *saleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: sale expects exactly one product")
		return subcommands.ExitUsageError
	}
	err := withStore(func(a *app, s *lucro.Store) error {
		l := s.Snapshot()
		p, err := findProduct(l, f.Arg(0))
		if err != nil {
			return err
		}
		customerID := ""
		if c.customer != "" {
			cu, err := findCustomer(l, c.customer)
			if err != nil {
				return err
			}
			customerID = cu.ID
		}
		sale := lucro.NewSale(*p, c.quantity, customerID)
		if err := lucro.ValidateSale(l, sale); err != nil {
			return fmt.Errorf("invalid sale:\n%w", err)
		}

		sale = s.AddSale(sale)
		cur := a.settings.Currency
		fmt.Printf("Venda registrada: %d × %s = %s\n", sale.Quantity, sale.ProductName, sale.Total.Format(cur))

		after := s.Snapshot()
		for _, ach := range after.Achievements {
			if ach.Unlocked && !l.Achievement(ach.ID).Unlocked {
				fmt.Printf("%s Conquista desbloqueada: %s!\n", ach.Icon, ach.Title)
			}
		}
		if np := after.Product(p.ID); np != nil && np.LowStock() {
			fmt.Printf("⚠️ Estoque baixo: %s (%d unidades)\n", np.Name, np.Stock)
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// periodFlags select the records of a calendar period.
type periodFlags struct {
	period string
	date   string
}

func (p *periodFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.period, "p", "", "Only list the records of this period (day, week, month).")
	f.StringVar(&p.date, "d", "", "Day within the period. Defaults to today.")
}

// contains returns a predicate on record times, always true without -p.
func (p *periodFlags) contains(today date.Date) (func(time.Time) bool, error) {
	if p.period == "" {
		return func(time.Time) bool { return true }, nil
	}
	period, err := date.ParsePeriod(p.period)
	if err != nil {
		return nil, err
	}
	day := today
	if p.date != "" {
		if day, err = date.Parse(p.date); err != nil {
			return nil, err
		}
	}
	r := date.NewRange(day, period)
	return func(t time.Time) bool { return r.Contains(date.Of(t)) }, nil
}

type salesCmd struct {
	periodFlags
}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "list the sales" }
func (*salesCmd) Usage() string {
	return `lcr sales [-p <period>] [-d <date>]

  Lists the sales, all of them or those of a period.
`
}

func (c *salesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	err := withStore(func(a *app, s *lucro.Store) error {
		in, err := c.contains(s.Today())
		if err != nil {
			return err
		}
		var sales []lucro.Sale
		for _, sale := range s.Snapshot().Sales {
			if in(sale.Time) {
				sales = append(sales, sale)
			}
		}
		printMarkdown(renderer.RenderSales(sales, a.renderOptions()))
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type expenseCmd struct {
	value       moneyFlag
	kind        string
	category    string
	description string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record an expense" }
func (*expenseCmd) Usage() string {
	return `lcr expense -v <amount> [-kind fixed|variable] [-category <category>] <description>

  Records money spent by the business.
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.value, "v", "Amount spent.")
	f.StringVar(&c.kind, "kind", "variable", "Kind of expense (fixed, variable).")
	f.StringVar(&c.category, "category", "", "Optional category.")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := lucro.ParseExpenseKind(c.kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	e := lucro.Expense{Description: joinArgs(f), Value: c.value.value, Kind: kind, Category: c.category}
	if err := lucro.ValidateExpense(e); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid expense:\n%v\n", err)
		return subcommands.ExitUsageError
	}
	err = withStore(func(a *app, s *lucro.Store) error {
		e = s.AddExpense(e)
		fmt.Printf("Gasto registrado: %s, %s\n", e.Description, e.Value.Format(a.settings.Currency))
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type expensesCmd struct {
	periodFlags
}

func (*expensesCmd) Name() string     { return "expenses" }
func (*expensesCmd) Synopsis() string { return "list the expenses" }
func (*expensesCmd) Usage() string {
	return `lcr expenses [-p <period>] [-d <date>]

  Lists the expenses, all of them or those of a period.
`
}

func (c *expensesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	err := withStore(func(a *app, s *lucro.Store) error {
		in, err := c.contains(s.Today())
		if err != nil {
			return err
		}
		var expenses []lucro.Expense
		for _, e := range s.Snapshot().Expenses {
			if in(e.Time) {
				expenses = append(expenses, e)
			}
		}
		printMarkdown(renderer.RenderExpenses(expenses, a.renderOptions()))
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type goalCmd struct {
	period string
	target moneyFlag
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "set a revenue goal" }
func (*goalCmd) Usage() string {
	return `lcr goal [-p <period>] -v <amount>

  Sets the revenue goal of a period (day, week, month), replacing the previous one.
`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "day", "Period of the goal (day, week, month).")
	f.Var(&c.target, "v", "Revenue to reach over the period.")
}

func (c *goalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := date.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	g := lucro.Goal{Period: period, Target: c.target.value}
	if err := lucro.ValidateGoal(g); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	err = withStore(func(a *app, s *lucro.Store) error {
		g = s.SetGoal(g)
		fmt.Printf("Meta %s definida: %s\n", period, g.Target.Format(a.settings.Currency))
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type goalsCmd struct{}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "list the goals" }
func (*goalsCmd) Usage() string {
	return `lcr goals

  Lists the active goal of each period.
`
}
func (*goalsCmd) SetFlags(*flag.FlagSet) {}

func (*goalsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	err := withStore(func(a *app, s *lucro.Store) error {
		printMarkdown(renderer.RenderGoals(s.Snapshot().Goals, a.renderOptions()))
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
