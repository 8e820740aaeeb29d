package cmd

import (
	"flag"
	"testing"
)

func TestCompletion(t *testing.T) {
	global := flag.NewFlagSet("lcr", flag.ContinueOnError)
	global.String("backend", "", "")
	global.Bool("plain", false, "")

	c := Completion(global)
	if len(c.Sub) != len(Commands) {
		t.Errorf("got %d sub commands, want %d", len(c.Sub), len(Commands))
	}
	for _, name := range []string{"backend", "plain"} {
		if c.Flags[name] == nil {
			t.Errorf("global flag %q has no predictor", name)
		}
	}
	sale := c.Sub["sale"]
	if sale == nil {
		t.Fatal("no completion for sale")
	}
	for _, name := range []string{"q", "customer"} {
		if sale.Flags[name] == nil {
			t.Errorf("sale flag %q has no predictor", name)
		}
	}
	if c.Sub["topic"].Args == nil {
		t.Error("topic arguments are not predicted")
	}
}
