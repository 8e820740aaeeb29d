package lucro

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/etnz/lucro/date"
)

// Product is an item the business sells and keeps in stock.
type Product struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UnitCost  Money  `json:"unitCost"`
	SalePrice Money  `json:"salePrice"`
	Stock     int    `json:"stock"`
	MinStock  int    `json:"minStock"`
	Category  string `json:"category,omitempty"`
}

// UnitMargin is the profit made on one unit sold at the current price.
func (p Product) UnitMargin() Money { return p.SalePrice.Sub(p.UnitCost) }

// LowStock reports whether the stock reached the minimum threshold.
func (p Product) LowStock() bool { return p.Stock <= p.MinStock }

// ProductPatch holds the product fields to overwrite, nil fields are left untouched.
type ProductPatch struct {
	Name      *string
	UnitCost  *Money
	SalePrice *Money
	Stock     *int
	MinStock  *int
	Category  *string
}

// Apply returns prod with the patch applied, prod itself is left untouched.
func (p ProductPatch) Apply(prod Product) Product {
	p.apply(&prod)
	return prod
}

func (p ProductPatch) apply(prod *Product) {
	if p.Name != nil {
		prod.Name = *p.Name
	}
	if p.UnitCost != nil {
		prod.UnitCost = *p.UnitCost
	}
	if p.SalePrice != nil {
		prod.SalePrice = *p.SalePrice
	}
	if p.Stock != nil {
		prod.Stock = *p.Stock
	}
	if p.MinStock != nil {
		prod.MinStock = *p.MinStock
	}
	if p.Category != nil {
		prod.Category = *p.Category
	}
}

// Sale records units of a product sold at a given instant.
//
// The product name and the total are snapshots taken when the sale is
// recorded, later product edits do not change them.
type Sale struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	Total       Money     `json:"total"`
	Time        time.Time `json:"time"`
	CustomerID  string    `json:"customerId,omitempty"`
}

// NewSale prepares a sale of qty units of p at its current price.
func NewSale(p Product, qty int, customerID string) Sale {
	return Sale{
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    qty,
		Total:       p.SalePrice.Times(qty),
		CustomerID:  customerID,
	}
}

func (s Sale) When() time.Time { return s.Time }
func (s Sale) Amount() Money   { return s.Total }

// ExpenseKind distinguishes recurring costs from occasional ones.
type ExpenseKind string

const (
	Fixed    ExpenseKind = "fixed"
	Variable ExpenseKind = "variable"
)

// ParseExpenseKind accepts english and portuguese names.
func ParseExpenseKind(s string) (ExpenseKind, error) {
	switch s {
	case "fixed", "fixo":
		return Fixed, nil
	case "variable", "variavel", "variável", "":
		return Variable, nil
	default:
		return "", fmt.Errorf("unknown expense kind %q", s)
	}
}

// Expense is money spent by the business.
type Expense struct {
	ID          string      `json:"id"`
	Description string      `json:"description"`
	Value       Money       `json:"value"`
	Kind        ExpenseKind `json:"kind"`
	Time        time.Time   `json:"time"`
	Category    string      `json:"category,omitempty"`
}

func (e Expense) When() time.Time { return e.Time }
func (e Expense) Amount() Money   { return e.Value }

// Customer is someone buying from the business.
type Customer struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone,omitempty"`
	FavoriteProduct string    `json:"favoriteProduct,omitempty"`
	LastPurchase    time.Time `json:"lastPurchase"`
	TotalSpent      Money     `json:"totalSpent"`
}

// MarshalJSON omits the last purchase of a customer who never bought anything.
func (c Customer) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", c.ID)
	w.Append("name", c.Name)
	w.Optional("phone", c.Phone)
	w.Optional("favoriteProduct", c.FavoriteProduct)
	w.Optional("lastPurchase", c.LastPurchase)
	w.Append("totalSpent", c.TotalSpent)
	return w.MarshalJSON()
}

// Goal is a revenue target for a period.
type Goal struct {
	ID     string      `json:"id"`
	Period date.Period `json:"period"`
	Target Money       `json:"target"`
	Anchor date.Date   `json:"anchor"`
}

// Achievement is a badge unlocked by a pattern in the ledger history.
type Achievement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Unlocked    bool      `json:"unlocked"`
	UnlockedAt  time.Time `json:"unlockedAt"`
}

func (a Achievement) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", a.ID)
	w.Append("title", a.Title)
	w.Append("description", a.Description)
	w.Append("icon", a.Icon)
	w.Append("unlocked", a.Unlocked)
	w.Optional("unlockedAt", a.UnlockedAt)
	return w.MarshalJSON()
}

// BusinessConfig describes the business of the current user.
type BusinessConfig struct {
	BusinessName        string `json:"businessName"`
	BusinessType        string `json:"businessType"`
	MonthlyFixedCosts   Money  `json:"monthlyFixedCosts"`
	DailyGoal           Money  `json:"dailyGoal"`
	OnboardingCompleted bool   `json:"onboardingCompleted"`
}

// ConfigPatch holds the configuration fields to overwrite, nil fields are left untouched.
type ConfigPatch struct {
	BusinessName        *string
	BusinessType        *string
	MonthlyFixedCosts   *Money
	DailyGoal           *Money
	OnboardingCompleted *bool
}

func (p ConfigPatch) apply(c *BusinessConfig) {
	if p.BusinessName != nil {
		c.BusinessName = *p.BusinessName
	}
	if p.BusinessType != nil {
		c.BusinessType = *p.BusinessType
	}
	if p.MonthlyFixedCosts != nil {
		c.MonthlyFixedCosts = *p.MonthlyFixedCosts
	}
	if p.DailyGoal != nil {
		c.DailyGoal = *p.DailyGoal
	}
	if p.OnboardingCompleted != nil {
		c.OnboardingCompleted = *p.OnboardingCompleted
	}
}

// Ptr returns a pointer to v, handy to build patches.
func Ptr[T any](v T) *T { return &v }

// check that custom marshallers keep the standard decoding.
var _ json.Marshaler = Customer{}
var _ json.Marshaler = Achievement{}
