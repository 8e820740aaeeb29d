package lucro

import (
	"errors"
	"slices"
	"time"

	"github.com/etnz/lucro/date"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrNotFound reports a mutation of an unknown id. The mutation did nothing.
var ErrNotFound = errors.New("not found")

// Store owns the ledger of the session's user and writes it through to the
// storage after every mutation.
//
// A Store is not safe for concurrent use: it serves a single interactive session.
type Store struct {
	storage Storage
	session *Session
	ledger  *Ledger
	log     zerolog.Logger
	now     func() time.Time
	newID   func() string
}

// Open loads the ledger of the session's user from st.
func Open(st Storage, session *Session, log zerolog.Logger) (*Store, error) {
	if session == nil || session.UserID() == "" {
		return nil, ErrNoSession
	}
	s := &Store{
		storage: st,
		session: session,
		log:     log.With().Str("user", session.UserID()).Logger(),
		now:     time.Now,
		newID:   uuid.NewString,
	}
	s.Load()
	return s, nil
}

// SetClock replaces the time source of the store.
func (s *Store) SetClock(now func() time.Time) { s.now = now }

// Session returns the session this store is scoped to.
func (s *Store) Session() *Session { return s.session }

// Now returns the current instant of the store clock.
func (s *Store) Now() time.Time { return s.now() }

// Today returns the current calendar day of the store clock.
func (s *Store) Today() date.Date { return date.Of(s.now()) }

// Snapshot returns a copy of the current ledger.
func (s *Store) Snapshot() *Ledger { return s.ledger.Clone() }

// Load replaces the in-memory ledger by the persisted one.
func (s *Store) Load() {
	s.ledger = LoadLedger(s.storage, s.session.UserID(), s.log)
}

// Save writes the ledger to the storage. Failures are logged and returned.
func (s *Store) Save() error {
	err := SaveLedger(s.storage, s.session.UserID(), s.ledger)
	if err != nil {
		s.log.Error().Err(err).Msg("could not save ledger")
	}
	return err
}

// commit persists a mutation. A persistence failure never fails the mutation.
func (s *Store) commit() { _ = s.Save() }

// SetConfig merges the non nil fields of patch into the business configuration.
func (s *Store) SetConfig(patch ConfigPatch) BusinessConfig {
	patch.apply(&s.ledger.Config)
	s.commit()
	return s.ledger.Config
}

// AddProduct registers a new product and returns it with its id.
func (s *Store) AddProduct(p Product) Product {
	p.ID = s.newID()
	s.ledger.Products = append(s.ledger.Products, p)
	s.commit()
	return p
}

// UpdateProduct merges patch into the product id.
// An unknown id is a no-op reported as ErrNotFound.
func (s *Store) UpdateProduct(id string, patch ProductPatch) error {
	p := s.ledger.Product(id)
	if p == nil {
		return ErrNotFound
	}
	patch.apply(p)
	s.commit()
	return nil
}

// RemoveProduct deletes the product id. Sales of this product are kept.
// An unknown id is a no-op reported as ErrNotFound.
func (s *Store) RemoveProduct(id string) error {
	n := len(s.ledger.Products)
	s.ledger.Products = slices.DeleteFunc(s.ledger.Products, func(p Product) bool { return p.ID == id })
	if len(s.ledger.Products) == n {
		return ErrNotFound
	}
	s.commit()
	return nil
}

// AddSale records a sale now.
//
// The stock of the sold product is decremented, and may become negative when
// overselling. The customer, if any, gets the purchase time and amount.
// Achievements are evaluated once the sale is recorded.
func (s *Store) AddSale(sale Sale) Sale {
	now := s.now()
	sale.ID = s.newID()
	sale.Time = now
	s.ledger.Sales = append(s.ledger.Sales, sale)

	if p := s.ledger.Product(sale.ProductID); p != nil {
		p.Stock -= sale.Quantity
	}
	if sale.CustomerID != "" {
		if c := s.ledger.Customer(sale.CustomerID); c != nil {
			c.LastPurchase = now
			c.TotalSpent = c.TotalSpent.Add(sale.Total)
		}
	}
	for _, a := range EvaluateAchievements(s.ledger, now) {
		s.log.Info().Str("achievement", a.Title).Msg("achievement unlocked")
	}
	s.commit()
	return sale
}

// AddExpense records an expense now.
func (s *Store) AddExpense(e Expense) Expense {
	e.ID = s.newID()
	e.Time = s.now()
	if e.Kind == "" {
		e.Kind = Variable
	}
	s.ledger.Expenses = append(s.ledger.Expenses, e)
	s.commit()
	return e
}

// AddCustomer registers a customer who has not bought anything yet.
func (s *Store) AddCustomer(c Customer) Customer {
	c.ID = s.newID()
	c.TotalSpent = Money{}
	s.ledger.Customers = append(s.ledger.Customers, c)
	s.commit()
	return c
}

// SetGoal defines the goal of a period, replacing the previous goal of the
// same period.
func (s *Store) SetGoal(g Goal) Goal {
	g.ID = s.newID()
	if g.Anchor.IsZero() {
		g.Anchor = s.Today()
	}
	goals := slices.DeleteFunc(s.ledger.Goals, func(o Goal) bool { return o.Period == g.Period })
	s.ledger.Goals = append(goals, g)
	s.commit()
	return g
}

// SetDailyGoal changes the daily target of the business configuration.
func (s *Store) SetDailyGoal(v Money) error {
	if !v.IsPositive() {
		return errors.New("digite um valor válido")
	}
	s.SetConfig(ConfigPatch{DailyGoal: &v})
	return nil
}

// Onboarding gathers the answers of the first-run questionnaire.
type Onboarding struct {
	BusinessName      string
	BusinessType      string
	ProductName       string
	ProductCost       Money
	ExpectedQuantity  int   // initial stock of the first product, 10 when 0
	DesiredUnitProfit Money // added to the cost to price the first product
	MonthlyFixedCosts Money
	DailyGoal         Money
}

// CompleteOnboarding configures the business from the questionnaire, adds
// the first product and the daily goal when given.
func (s *Store) CompleteOnboarding(o Onboarding) {
	s.SetConfig(ConfigPatch{
		BusinessName:        &o.BusinessName,
		BusinessType:        &o.BusinessType,
		MonthlyFixedCosts:   &o.MonthlyFixedCosts,
		DailyGoal:           &o.DailyGoal,
		OnboardingCompleted: Ptr(true),
	})
	if o.ProductName != "" && o.ProductCost.IsPositive() {
		stock := o.ExpectedQuantity
		if stock == 0 {
			stock = 10
		}
		s.AddProduct(Product{
			Name:      o.ProductName,
			UnitCost:  o.ProductCost,
			SalePrice: o.ProductCost.Add(o.DesiredUnitProfit),
			Stock:     stock,
			MinStock:  5,
		})
	}
	if o.DailyGoal.IsPositive() {
		s.SetGoal(Goal{Period: date.Daily, Target: o.DailyGoal, Anchor: s.Today()})
	}
}
