package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/lucro"
	"github.com/etnz/lucro/assistant"
	"github.com/google/subcommands"
)

func newAssistant(a *app, s *lucro.Store) *assistant.Assistant {
	return assistant.New(s,
		assistant.WithCurrency(a.settings.Currency),
		assistant.WithLogger(a.log),
	)
}

type askCmd struct{}

func (*askCmd) Name() string     { return "ask" }
func (*askCmd) Synopsis() string { return "ask a question to the assistant" }
func (*askCmd) Usage() string {
	return `lcr ask <question>

  Answers a question about the business, for instance:

    lcr ask quanto vendi hoje?
    lcr ask como está meu estoque
`
}
func (*askCmd) SetFlags(*flag.FlagSet) {}

func (*askCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	question := joinArgs(f)
	if question == "" {
		fmt.Fprintln(os.Stderr, "Error: ask expects a question")
		return subcommands.ExitUsageError
	}
	err := withStore(func(a *app, s *lucro.Store) error {
		fmt.Println(newAssistant(a, s).Ask(question))
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type chatCmd struct{}

func (*chatCmd) Name() string     { return "chat" }
func (*chatCmd) Synopsis() string { return "start a conversation with the assistant" }
func (*chatCmd) Usage() string {
	return `lcr chat [<first question>]

  Starts an interactive conversation with the assistant. Type "sair" or
  "tchau" to leave.
`
}
func (*chatCmd) SetFlags(*flag.FlagSet) {}

func (*chatCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var prompts []string
	if q := joinArgs(f); q != "" {
		prompts = append(prompts, q)
	}
	err := withStore(func(a *app, s *lucro.Store) error {
		return newAssistant(a, s).Chat(ctx, os.Stdout, os.Stdin, prompts...)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
