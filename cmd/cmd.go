// Package cmd implements the lcr command line application.
package cmd

import (
	"github.com/google/subcommands"
)

// Commands lists every lcr subcommand, grouped for the help output.
var Commands = []struct {
	Group   string
	Command subcommands.Command
}{
	{"account", &registerCmd{}},
	{"account", &loginCmd{}},
	{"account", &logoutCmd{}},
	{"account", &whoamiCmd{}},
	{"account", &onboardCmd{}},
	{"account", &configCmd{}},

	{"catalog", &productAddCmd{}},
	{"catalog", &productEditCmd{}},
	{"catalog", &productRmCmd{}},
	{"catalog", &productsCmd{}},
	{"catalog", &customerAddCmd{}},
	{"catalog", &customersCmd{}},

	{"bookkeeping", &saleCmd{}},
	{"bookkeeping", &salesCmd{}},
	{"bookkeeping", &expenseCmd{}},
	{"bookkeeping", &expensesCmd{}},
	{"bookkeeping", &goalCmd{}},
	{"bookkeeping", &goalsCmd{}},

	{"reports", &dashboardCmd{}},
	{"reports", &adminCmd{}},
	{"reports", &achievementsCmd{}},
	{"reports", &priceCmd{}},
	{"reports", &selectCmd{}},
	{"reports", &exportCmd{}},

	{"assistant", &askCmd{}},
	{"assistant", &chatCmd{}},

	{"help", &topicCmd{}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
	c.Register(c.CommandsCommand(), "help")
	for _, e := range Commands {
		c.Register(e.Command, e.Group)
	}
}
