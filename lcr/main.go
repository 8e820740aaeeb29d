// Command lcr keeps the books of a small business: products, sales, expenses,
// goals and a friendly assistant.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/lucro/cmd"
	"github.com/google/subcommands"
)

func main() {
	cmd.Completion(flag.CommandLine).Complete("lcr")

	commander := subcommands.NewCommander(flag.CommandLine, "lcr")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
