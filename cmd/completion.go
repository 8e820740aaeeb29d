package cmd

import (
	"flag"

	"github.com/etnz/lucro/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// predictors of the flags whose values are known in advance, by flag name.
var predictors = map[string]complete.Predictor{
	"config":    predict.Files("*.yaml"),
	"data-dir":  predict.Dirs("*"),
	"backend":   predict.Set{"file", "sqlite"},
	"log-level": predict.Set{"debug", "info", "warn", "error"},
	"p":         predict.Set{"day", "week", "month", "diaria", "semanal", "mensal"},
	"kind":      predict.Set{"fixed", "variable", "fixo", "variavel"},
	"o":         predict.Files("*.xlsx"),
	"currency":  predict.Set{"BRL", "USD", "EUR"},
}

// Completion describes the lcr command line for shell completion.
//
// Run it before flag.Parse, it exits when the shell asks for completions:
//
//	cmd.Completion(flag.CommandLine).Complete("lcr")
func Completion(global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command, len(Commands)),
		Flags: flagPredictors(global),
	}
	for _, e := range Commands {
		fs := flag.NewFlagSet(e.Command.Name(), flag.ContinueOnError)
		e.Command.SetFlags(fs)
		root.Sub[e.Command.Name()] = &complete.Command{Flags: flagPredictors(fs)}
	}
	if topics, err := docs.GetAllTopics(); err == nil {
		root.Sub["topic"].Args = predict.Set(append(topics, "*"))
	}
	return root
}

func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	m := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			m[f.Name] = predict.Nothing
			return
		}
		if p, ok := predictors[f.Name]; ok {
			m[f.Name] = p
			return
		}
		m[f.Name] = predict.Something
	})
	return m
}
