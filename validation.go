package lucro

import (
	"errors"
	"fmt"
	"strings"
)

// ValidateProduct checks a product before it is added or after it is edited.
func ValidateProduct(p Product) error {
	var errs error
	if strings.TrimSpace(p.Name) == "" {
		errs = errors.Join(errs, errors.New("product name is required"))
	}
	if p.UnitCost.IsNegative() {
		errs = errors.Join(errs, fmt.Errorf("unit cost must not be negative, got %s", p.UnitCost))
	}
	if p.SalePrice.IsNegative() {
		errs = errors.Join(errs, fmt.Errorf("sale price must not be negative, got %s", p.SalePrice))
	}
	if p.Stock < 0 {
		errs = errors.Join(errs, fmt.Errorf("stock must not be negative, got %d", p.Stock))
	}
	if p.MinStock < 0 {
		errs = errors.Join(errs, fmt.Errorf("minimum stock must not be negative, got %d", p.MinStock))
	}
	return errs
}

// ValidateSale checks a sale against the ledger it is going to be recorded in.
func ValidateSale(l *Ledger, s Sale) error {
	var errs error
	if s.Quantity <= 0 {
		errs = errors.Join(errs, fmt.Errorf("quantity must be positive, got %d", s.Quantity))
	}
	if l.Product(s.ProductID) == nil {
		errs = errors.Join(errs, fmt.Errorf("unknown product %q", s.ProductID))
	}
	if s.CustomerID != "" && l.Customer(s.CustomerID) == nil {
		errs = errors.Join(errs, fmt.Errorf("unknown customer %q", s.CustomerID))
	}
	return errs
}

// ValidateExpense checks an expense before it is recorded.
func ValidateExpense(e Expense) error {
	var errs error
	if strings.TrimSpace(e.Description) == "" {
		errs = errors.Join(errs, errors.New("description is required"))
	}
	if !e.Value.IsPositive() {
		errs = errors.Join(errs, fmt.Errorf("amount must be positive, got %s", e.Value))
	}
	if e.Kind != Fixed && e.Kind != Variable {
		errs = errors.Join(errs, fmt.Errorf("unknown expense kind %q", e.Kind))
	}
	return errs
}

// ValidateGoal checks a goal before it is set.
func ValidateGoal(g Goal) error {
	if !g.Target.IsPositive() {
		return fmt.Errorf("goal target must be positive, got %s", g.Target)
	}
	return nil
}
