// Package assistant answers free text questions about the business with
// canned answers filled from the ledger.
//
// Questions are matched on keywords, in a fixed order, the first matching
// rule answers.
package assistant

import (
	"math/rand/v2"
	"strings"

	"github.com/etnz/lucro"
	"github.com/etnz/lucro/date"
	"github.com/rs/zerolog"
)

// Greeting is the assistant's opening line.
const Greeting = "Oi! Sou o Bot do Lucro 🤖 Tô aqui pra te ajudar com seu negócio. Pode me perguntar qualquer coisa sobre vendas, gastos, estoque ou preços!"

// Suggestions are questions offered to a new user.
var Suggestions = []string{
	"Quanto vendi hoje?",
	"Qual meu lucro?",
	"Como tá o estoque?",
	"Me dá uma dica",
}

// View gives read access to the ledger to answer from.
// *lucro.Store implements it.
type View interface {
	Snapshot() *lucro.Ledger
	Today() date.Date
}

// Assistant answers questions over a View.
type Assistant struct {
	view     View
	currency string
	rand     *rand.Rand // nil uses the global source
	log      zerolog.Logger
}

// Option configures an Assistant.
type Option func(*Assistant)

// WithCurrency sets the currency amounts are formatted in.
func WithCurrency(code string) Option { return func(a *Assistant) { a.currency = code } }

// WithRand sets the source the tips are drawn from.
func WithRand(r *rand.Rand) Option { return func(a *Assistant) { a.rand = r } }

// WithLogger sets the logger tracing which rule answered.
func WithLogger(log zerolog.Logger) Option { return func(a *Assistant) { a.log = log } }

// New creates an Assistant answering from view.
func New(view View, opts ...Option) *Assistant {
	a := &Assistant{view: view, currency: lucro.DefaultCurrency, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// question is a lower-cased question with the ledger it is asked about.
type question struct {
	text   string
	ledger *lucro.Ledger
	today  date.Date
}

func (q question) has(words ...string) bool {
	for _, w := range words {
		if strings.Contains(q.text, w) {
			return true
		}
	}
	return false
}

// rule answers the questions it matches.
type rule struct {
	name    string
	matches func(q question) bool
	answer  func(a *Assistant, q question) string
}

var rules = []rule{
	{
		name:    "sales",
		matches: func(q question) bool { return q.has("vend") && q.has("hoje", "dia") },
		answer:  (*Assistant).sales,
	},
	{
		name:    "expenses",
		matches: func(q question) bool { return q.has("gast") && q.has("hoje", "dia") },
		answer:  (*Assistant).expenses,
	},
	{
		name:    "profit",
		matches: func(q question) bool { return q.has("lucr") },
		answer:  (*Assistant).profit,
	},
	{
		name:    "stock",
		matches: func(q question) bool { return q.has("estoqu") },
		answer:  (*Assistant).stock,
	},
	{
		name:    "best-seller",
		matches: func(q question) bool { return q.has("mais vend", "melhor") },
		answer:  (*Assistant).bestSeller,
	},
	{
		name: "fixed-costs",
		matches: func(q question) bool {
			return q.has("custo fixo", "pagar custo") || (q.has("quantas") && q.has("vend"))
		},
		answer: (*Assistant).fixedCosts,
	},
	{
		name:    "tip",
		matches: func(q question) bool { return q.has("dica", "ajuda", "conselho") },
		answer:  (*Assistant).tip,
	},
	{
		name:    "goal",
		matches: func(q question) bool { return q.has("meta") },
		answer:  (*Assistant).goal,
	},
}

// Ask answers a question. It never fails: an unrecognized question gets
// the list of supported ones.
func (a *Assistant) Ask(text string) string {
	answer, _ := a.answer(text)
	return answer
}

// answer returns the answer and the name of the rule that produced it,
// "help" for the default answer.
func (a *Assistant) answer(text string) (string, string) {
	q := question{
		text:   strings.ToLower(text),
		ledger: a.view.Snapshot(),
		today:  a.view.Today(),
	}
	for _, r := range rules {
		if r.matches(q) {
			a.log.Debug().Str("rule", r.name).Msg("question matched")
			return r.answer(a, q), r.name
		}
	}
	a.log.Debug().Str("question", q.text).Msg("no rule matched")
	return Help, "help"
}
