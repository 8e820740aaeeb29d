package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/lucro"
	"github.com/google/subcommands"
)

type onboardCmd struct {
	business, kind, product string
	quantity                int
	cost, profit            moneyFlag
	fixedCosts, dailyGoal   moneyFlag
}

func (*onboardCmd) Name() string     { return "onboard" }
func (*onboardCmd) Synopsis() string { return "describe your business the first time" }
func (*onboardCmd) Usage() string {
	return `lcr onboard -business <name> -type <type> [-product <name> -cost <amount> -profit <amount> -quantity <n>] [-fixed-costs <amount>] [-daily-goal <amount>]

  Configures the business, adds the first product and the daily goal.
`
}

func (c *onboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.business, "business", "", "Name of the business. Defaults to the one given at registration.")
	f.StringVar(&c.kind, "type", "", "Kind of business (bakery, street food, crafts...).")
	f.StringVar(&c.product, "product", "", "Name of the main product.")
	f.Var(&c.cost, "cost", "Unit cost of the main product.")
	f.Var(&c.profit, "profit", "Desired profit per unit of the main product.")
	f.IntVar(&c.quantity, "quantity", 0, "Units of the main product in stock. Defaults to 10.")
	f.Var(&c.fixedCosts, "fixed-costs", "Monthly fixed costs (rent, power, internet...).")
	f.Var(&c.dailyGoal, "daily-goal", "Revenue targeted every day.")
}

func (c *onboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	err := withStore(func(a *app, s *lucro.Store) error {
		name := c.business
		if name == "" {
			name = s.Session().Identity.BusinessName
		}
		s.CompleteOnboarding(lucro.Onboarding{
			BusinessName:      name,
			BusinessType:      c.kind,
			ProductName:       c.product,
			ProductCost:       c.cost.value,
			ExpectedQuantity:  c.quantity,
			DesiredUnitProfit: c.profit.value,
			MonthlyFixedCosts: c.fixedCosts.value,
			DailyGoal:         c.dailyGoal.value,
		})
		fmt.Printf("Tudo pronto, %s! Bora lucrar! 🚀\n", name)
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type configCmd struct {
	business, kind        string
	fixedCosts, dailyGoal moneyFlag
}

func (*configCmd) Name() string     { return "config" }
func (*configCmd) Synopsis() string { return "show or change the business configuration" }
func (*configCmd) Usage() string {
	return `lcr config [-business <name>] [-type <type>] [-fixed-costs <amount>] [-daily-goal <amount>]

  Without flags, prints the business configuration. Otherwise changes the given fields.
`
}

func (c *configCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.business, "business", "", "Name of the business.")
	f.StringVar(&c.kind, "type", "", "Kind of business.")
	f.Var(&c.fixedCosts, "fixed-costs", "Monthly fixed costs.")
	f.Var(&c.dailyGoal, "daily-goal", "Revenue targeted every day, must be positive.")
}

func (c *configCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	err := withStore(func(a *app, s *lucro.Store) error {
		var patch lucro.ConfigPatch
		if c.business != "" {
			patch.BusinessName = &c.business
		}
		if c.kind != "" {
			patch.BusinessType = &c.kind
		}
		patch.MonthlyFixedCosts = c.fixedCosts.ptr()
		if patch != (lucro.ConfigPatch{}) {
			s.SetConfig(patch)
		}
		if c.dailyGoal.set {
			if err := s.SetDailyGoal(c.dailyGoal.value); err != nil {
				return err
			}
		}

		cfg := s.Snapshot().Config
		cur := a.settings.Currency
		fmt.Printf("Negócio:           %s\n", cfg.BusinessName)
		fmt.Printf("Tipo:              %s\n", cfg.BusinessType)
		fmt.Printf("Custo fixo mensal: %s\n", cfg.MonthlyFixedCosts.Format(cur))
		fmt.Printf("Meta diária:       %s\n", cfg.DailyGoal.Format(cur))
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
