package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/gval"
	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/lucro"
	"github.com/google/subcommands"
)

type selectCmd struct{}

func (*selectCmd) Name() string     { return "select" }
func (*selectCmd) Synopsis() string { return "query the ledger with a JSONPath expression" }
func (*selectCmd) Usage() string {
	return `lcr select <jsonpath>

  Evaluates a JSONPath expression on the ledger and prints the result as JSON.
  For instance:

    lcr select '$.products[?(@.stock <= @.minStock)].name'
    lcr select '$.sales[*].total'
`
}
func (*selectCmd) SetFlags(*flag.FlagSet) {}

func (*selectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: select expects exactly one JSONPath expression")
		return subcommands.ExitUsageError
	}
	err := withStore(func(a *app, s *lucro.Store) error {
		v, err := selectPath(s.Snapshot(), f.Arg(0))
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// selectLanguage is JSONPath with the full gval expression language, so that
// filters can compare fields.
var selectLanguage = gval.Full(jsonpath.PlaceholderExtension())

// selectPath evaluates path on the JSON form of the ledger.
func selectPath(l *lucro.Ledger, path string) (any, error) {
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("encoding ledger: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding ledger: %w", err)
	}
	eval, err := selectLanguage.NewEvaluable(path)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}
	v, err := eval(context.Background(), doc)
	if err != nil {
		return nil, fmt.Errorf("evaluating %q: %w", path, err)
	}
	return v, nil
}
