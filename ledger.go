package lucro

import (
	"slices"

	"github.com/etnz/lucro/date"
)

// Achievement identifiers of the fixed catalog.
const (
	ActiveEntrepreneur = "1"
	OrganizedManager   = "2"
	RootManager        = "3"
	GoalCrusher        = "4"
)

// Catalog returns the fixed list of achievements, all locked.
func Catalog() []Achievement {
	return []Achievement{
		{ID: ActiveEntrepreneur, Title: "Empreendedor Ativo", Description: "Registrou vendas todo dia", Icon: "🔥"},
		{ID: OrganizedManager, Title: "Empreendedor Organizado", Description: "7 dias com estoque atualizado", Icon: "📦"},
		{ID: RootManager, Title: "Gerente Raiz", Description: "30 dias no lucro", Icon: "💰"},
		{ID: GoalCrusher, Title: "Bateu Meta, Tá Voando", Description: "Acertou meta da semana", Icon: "🚀"},
	}
}

// Ledger is the complete bookkeeping state of one user.
//
// Collections keep insertion order.
type Ledger struct {
	Config       BusinessConfig `json:"config"`
	Products     []Product      `json:"products"`
	Sales        []Sale         `json:"sales"`
	Expenses     []Expense      `json:"expenses"`
	Customers    []Customer     `json:"customers"`
	Goals        []Goal         `json:"goals"`
	Achievements []Achievement  `json:"achievements"`
}

// NewLedger creates an empty ledger with the locked achievement catalog.
func NewLedger() *Ledger {
	return &Ledger{
		Products:     make([]Product, 0),
		Sales:        make([]Sale, 0),
		Expenses:     make([]Expense, 0),
		Customers:    make([]Customer, 0),
		Goals:        make([]Goal, 0),
		Achievements: Catalog(),
	}
}

// Product returns the product with this id, or nil if unknown.
func (l *Ledger) Product(id string) *Product {
	i := slices.IndexFunc(l.Products, func(p Product) bool { return p.ID == id })
	if i < 0 {
		return nil
	}
	return &l.Products[i]
}

// Customer returns the customer with this id, or nil if unknown.
func (l *Ledger) Customer(id string) *Customer {
	i := slices.IndexFunc(l.Customers, func(c Customer) bool { return c.ID == id })
	if i < 0 {
		return nil
	}
	return &l.Customers[i]
}

// Goal returns the active goal of this period, or nil if none was set.
func (l *Ledger) Goal(period date.Period) *Goal {
	i := slices.IndexFunc(l.Goals, func(g Goal) bool { return g.Period == period })
	if i < 0 {
		return nil
	}
	return &l.Goals[i]
}

// Achievement returns the achievement with this id, or nil if unknown.
func (l *Ledger) Achievement(id string) *Achievement {
	i := slices.IndexFunc(l.Achievements, func(a Achievement) bool { return a.ID == id })
	if i < 0 {
		return nil
	}
	return &l.Achievements[i]
}

// DailyTarget is the configured daily revenue target.
//
// The business configuration wins, a daily goal is used when the
// configuration has none.
func (l *Ledger) DailyTarget() Money {
	if l.Config.DailyGoal.IsPositive() {
		return l.Config.DailyGoal
	}
	if g := l.Goal(date.Daily); g != nil {
		return g.Target
	}
	return Money{}
}

// Clone returns a deep copy of the ledger.
func (l *Ledger) Clone() *Ledger {
	return &Ledger{
		Config:       l.Config,
		Products:     slices.Clone(l.Products),
		Sales:        slices.Clone(l.Sales),
		Expenses:     slices.Clone(l.Expenses),
		Customers:    slices.Clone(l.Customers),
		Goals:        slices.Clone(l.Goals),
		Achievements: slices.Clone(l.Achievements),
	}
}

// normalize replaces missing collections by their defaults and restores
// catalog entries absent from a persisted ledger.
func (l *Ledger) normalize() {
	if l.Products == nil {
		l.Products = make([]Product, 0)
	}
	if l.Sales == nil {
		l.Sales = make([]Sale, 0)
	}
	if l.Expenses == nil {
		l.Expenses = make([]Expense, 0)
	}
	if l.Customers == nil {
		l.Customers = make([]Customer, 0)
	}
	if l.Goals == nil {
		l.Goals = make([]Goal, 0)
	}
	if len(l.Achievements) == 0 {
		l.Achievements = Catalog()
		return
	}
	for _, a := range Catalog() {
		if l.Achievement(a.ID) == nil {
			l.Achievements = append(l.Achievements, a)
		}
	}
}
