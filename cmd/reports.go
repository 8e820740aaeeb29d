package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/lucro"
	"github.com/etnz/lucro/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "summary of the day" }
func (*dashboardCmd) Usage() string {
	return `lcr dashboard

  Shows today's revenue, expenses and profit, the progress of the goals,
  the low stock alerts and the unlocked achievements.
`
}
func (*dashboardCmd) SetFlags(*flag.FlagSet) {}

func (*dashboardCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	err := withStore(func(a *app, s *lucro.Store) error {
		printMarkdown(renderer.RenderDashboard(lucro.NewDashboard(s.Snapshot(), s.Today()), a.renderOptions()))
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type adminCmd struct{}

func (*adminCmd) Name() string     { return "admin" }
func (*adminCmd) Synopsis() string { return "totals of the whole history" }
func (*adminCmd) Usage() string {
	return `lcr admin

  Shows all time and current month totals, the best selling product and
  the number of sales needed to pay the fixed costs.
`
}
func (*adminCmd) SetFlags(*flag.FlagSet) {}

func (*adminCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	err := withStore(func(a *app, s *lucro.Store) error {
		printMarkdown(renderer.RenderAdmin(lucro.NewAdminReport(s.Snapshot(), s.Today()), a.renderOptions()))
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type achievementsCmd struct{}

func (*achievementsCmd) Name() string     { return "achievements" }
func (*achievementsCmd) Synopsis() string { return "list the achievements" }
func (*achievementsCmd) Usage() string {
	return `lcr achievements

  Lists the achievements, locked and unlocked.
`
}
func (*achievementsCmd) SetFlags(*flag.FlagSet) {}

func (*achievementsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	err := withStore(func(a *app, s *lucro.Store) error {
		printMarkdown(renderer.RenderAchievements(s.Snapshot().Achievements, a.renderOptions()))
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type priceCmd struct {
	cost     moneyFlag
	margin   float64
	currency string
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "suggest a sale price" }
func (*priceCmd) Usage() string {
	return `lcr price -cost <amount> [-margin <percent>]

  Suggests the sale price giving the desired margin on the price, and the
  profit of selling 10, 20, 50 and 100 units. Does not need an account.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.cost, "cost", "Unit cost.")
	f.Float64Var(&c.margin, "margin", 40, "Desired margin, in percent of the sale price.")
	f.StringVar(&c.currency, "currency", "", "Currency of the amounts. Defaults to the currency setting.")
}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sim, err := lucro.SimulatePrice(c.cost.value, decimal.NewFromFloat(c.margin))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	opts := renderer.Options{Currency: c.currency}
	if opts.Currency == "" {
		if settings, err := LoadSettings(*configFile); err == nil {
			opts.Currency = settings.Currency
		}
	}
	printMarkdown(renderer.RenderPriceSimulation(sim, opts))
	return subcommands.ExitSuccess
}
