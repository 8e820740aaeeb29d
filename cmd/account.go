package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/lucro/auth"
	"github.com/google/subcommands"
)

type registerCmd struct {
	form auth.Registration
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create an account and log in" }
func (*registerCmd) Usage() string {
	return `lcr register -name <name> -business <business> -phone <phone> -password <password>

  Creates a local account. The phone number, with area code, identifies the account.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.form.Name, "name", "", "Your name.")
	f.StringVar(&c.form.BusinessName, "business", "", "The name of your business.")
	f.StringVar(&c.form.Phone, "phone", "", "Mobile phone number with area code.")
	f.StringVar(&c.form.Password, "password", "", "Password, at least 4 characters.")
}

func (c *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	s, err := a.auth.Register(c.form)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Bem-vindo(a), %s! Conta criada para %s.\n", s.Identity.Name, s.Identity.BusinessName)
	return subcommands.ExitSuccess
}

type loginCmd struct {
	phone, password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "log in to an account" }
func (*loginCmd) Usage() string {
	return `lcr login -phone <phone> -password <password>

  Opens the session of a registered account. The phone may be formatted.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.phone, "phone", "", "Mobile phone number used at registration.")
	f.StringVar(&c.password, "password", "", "Password.")
}

func (c *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	s, err := a.auth.Login(c.phone, c.password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Olá, %s!\n", s.Identity.Name)
	return subcommands.ExitSuccess
}

type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "close the current session" }
func (*logoutCmd) Usage() string {
	return `lcr logout

  Closes the current session. The data stays on disk.
`
}
func (*logoutCmd) SetFlags(*flag.FlagSet) {}

func (*logoutCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	if err := a.auth.Logout(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Até mais!")
	return subcommands.ExitSuccess
}

type whoamiCmd struct{}

func (*whoamiCmd) Name() string     { return "whoami" }
func (*whoamiCmd) Synopsis() string { return "show the connected account" }
func (*whoamiCmd) Usage() string {
	return `lcr whoami

  Prints the connected account, fails when nobody is connected.
`
}
func (*whoamiCmd) SetFlags(*flag.FlagSet) {}

func (*whoamiCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	s, err := a.auth.Current()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s (%s), %s\n", s.Identity.Name, s.Identity.Phone, s.Identity.BusinessName)
	return subcommands.ExitSuccess
}
