package cmd

import (
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/lucro"
)

// moneyFlag is a flag.Value holding an amount and whether it was set.
type moneyFlag struct {
	value lucro.Money
	set   bool
}

func (m *moneyFlag) String() string {
	if m == nil || !m.set {
		return ""
	}
	return m.value.String()
}

func (m *moneyFlag) Set(s string) error {
	v, err := lucro.ParseMoney(s)
	if err != nil {
		return err
	}
	m.value, m.set = v, true
	return nil
}

// ptr returns the amount, or nil when the flag was not set.
func (m *moneyFlag) ptr() *lucro.Money {
	if !m.set {
		return nil
	}
	return lucro.Ptr(m.value)
}

// findProduct resolves a product by id, id prefix or case insensitive name.
func findProduct(l *lucro.Ledger, ref string) (*lucro.Product, error) {
	if p := l.Product(ref); p != nil {
		return p, nil
	}
	var found []*lucro.Product
	for i := range l.Products {
		p := &l.Products[i]
		if strings.EqualFold(p.Name, ref) || (len(ref) >= 4 && strings.HasPrefix(p.ID, ref)) {
			found = append(found, p)
		}
	}
	switch len(found) {
	case 0:
		return nil, fmt.Errorf("product %q: %w", ref, lucro.ErrNotFound)
	case 1:
		return found[0], nil
	default:
		return nil, fmt.Errorf("product %q is ambiguous, %d products match", ref, len(found))
	}
}

// findCustomer resolves a customer by id, id prefix or case insensitive name.
func findCustomer(l *lucro.Ledger, ref string) (*lucro.Customer, error) {
	if c := l.Customer(ref); c != nil {
		return c, nil
	}
	var found []*lucro.Customer
	for i := range l.Customers {
		c := &l.Customers[i]
		if strings.EqualFold(c.Name, ref) || (len(ref) >= 4 && strings.HasPrefix(c.ID, ref)) {
			found = append(found, c)
		}
	}
	switch len(found) {
	case 0:
		return nil, fmt.Errorf("customer %q: %w", ref, lucro.ErrNotFound)
	case 1:
		return found[0], nil
	default:
		return nil, fmt.Errorf("customer %q is ambiguous, %d customers match", ref, len(found))
	}
}

// joinArgs returns the positional arguments as a single text.
func joinArgs(f *flag.FlagSet) string { return strings.TrimSpace(strings.Join(f.Args(), " ")) }
