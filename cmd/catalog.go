package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/lucro"
	"github.com/etnz/lucro/renderer"
	"github.com/google/subcommands"
)

type productAddCmd struct {
	name, category  string
	cost, price     moneyFlag
	stock, minStock int
}

func (*productAddCmd) Name() string     { return "product-add" }
func (*productAddCmd) Synopsis() string { return "add a product to the catalog" }
func (*productAddCmd) Usage() string {
	return `lcr product-add -name <name> -cost <amount> -price <amount> [-stock <n>] [-min <n>] [-category <category>]

  Adds a product. Its id is printed.
`
}

func (c *productAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Product name.")
	f.Var(&c.cost, "cost", "Unit cost.")
	f.Var(&c.price, "price", "Sale price.")
	f.IntVar(&c.stock, "stock", 0, "Units in stock.")
	f.IntVar(&c.minStock, "min", 5, "Stock level that triggers a low stock alert.")
	f.StringVar(&c.category, "category", "", "Optional category.")
}

func (c *productAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p := lucro.Product{
		Name:      c.name,
		UnitCost:  c.cost.value,
		SalePrice: c.price.value,
		Stock:     c.stock,
		MinStock:  c.minStock,
		Category:  c.category,
	}
	if err := lucro.ValidateProduct(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid product:\n%v\n", err)
		return subcommands.ExitUsageError
	}
	err := withStore(func(a *app, s *lucro.Store) error {
		p = s.AddProduct(p)
		fmt.Printf("Produto %q cadastrado (%s), lucro por unidade %s.\n", p.Name, p.ID, p.UnitMargin().Format(a.settings.Currency))
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type productEditCmd struct {
	name, category  string
	cost, price     moneyFlag
	stock, minStock int
}

func (*productEditCmd) Name() string     { return "product-edit" }
func (*productEditCmd) Synopsis() string { return "change a product" }
func (*productEditCmd) Usage() string {
	return `lcr product-edit [-name <name>] [-cost <amount>] [-price <amount>] [-stock <n>] [-min <n>] [-category <category>] <product>

  Changes the given fields of a product, designated by id or name.
  Past sales keep the name and price they were recorded with.
`
}

func (c *productEditCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "New name.")
	f.Var(&c.cost, "cost", "New unit cost.")
	f.Var(&c.price, "price", "New sale price.")
	f.IntVar(&c.stock, "stock", -1, "New stock level.")
	f.IntVar(&c.minStock, "min", -1, "New low stock threshold.")
	f.StringVar(&c.category, "category", "", "New category.")
}

func (c *productEditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: product-edit expects exactly one product")
		return subcommands.ExitUsageError
	}
	patch := lucro.ProductPatch{UnitCost: c.cost.ptr(), SalePrice: c.price.ptr()}
	if c.name != "" {
		patch.Name = &c.name
	}
	if c.category != "" {
		patch.Category = &c.category
	}
	if c.stock >= 0 {
		patch.Stock = &c.stock
	}
	if c.minStock >= 0 {
		patch.MinStock = &c.minStock
	}

	err := withStore(func(a *app, s *lucro.Store) error {
		p, err := editProduct(s, f.Arg(0), patch)
		if err != nil {
			return err
		}
		fmt.Printf("Produto %q atualizado.\n", p.ID)
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// editProduct applies patch to the product designated by ref, unless the
// edited product would be invalid.
func editProduct(s *lucro.Store, ref string, patch lucro.ProductPatch) (lucro.Product, error) {
	p, err := findProduct(s.Snapshot(), ref)
	if err != nil {
		return lucro.Product{}, err
	}
	edited := patch.Apply(*p)
	if err := lucro.ValidateProduct(edited); err != nil {
		return lucro.Product{}, fmt.Errorf("invalid product:\n%w", err)
	}
	if err := s.UpdateProduct(p.ID, patch); err != nil {
		return lucro.Product{}, err
	}
	return edited, nil
}

type productRmCmd struct{}

func (*productRmCmd) Name() string     { return "product-rm" }
func (*productRmCmd) Synopsis() string { return "remove a product from the catalog" }
func (*productRmCmd) Usage() string {
	return `lcr product-rm <product>

  Removes a product, designated by id or name. Its past sales are kept.
`
}
func (*productRmCmd) SetFlags(*flag.FlagSet) {}

func (*productRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: product-rm expects exactly one product")
		return subcommands.ExitUsageError
	}
	err := withStore(func(a *app, s *lucro.Store) error {
		p, err := findProduct(s.Snapshot(), f.Arg(0))
		if errors.Is(err, lucro.ErrNotFound) {
			// Removing an unknown product does nothing.
			a.log.Info().Str("product", f.Arg(0)).Msg("nothing to remove")
			return nil
		}
		if err != nil {
			return err
		}
		if err := s.RemoveProduct(p.ID); err != nil {
			return err
		}
		fmt.Printf("Produto %q removido.\n", p.Name)
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type productsCmd struct {
	low bool
}

func (*productsCmd) Name() string     { return "products" }
func (*productsCmd) Synopsis() string { return "list the products" }
func (*productsCmd) Usage() string {
	return `lcr products [-low]

  Lists the products with their margin and stock.
`
}

func (c *productsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.low, "low", false, "List only the products with a low stock.")
}

func (c *productsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	err := withStore(func(a *app, s *lucro.Store) error {
		products := s.Snapshot().Products
		if c.low {
			products = lucro.LowStock(products)
		}
		printMarkdown(renderer.RenderProducts(products, a.renderOptions()))
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type customerAddCmd struct {
	name, phone, favorite string
}

func (*customerAddCmd) Name() string     { return "customer-add" }
func (*customerAddCmd) Synopsis() string { return "add a customer" }
func (*customerAddCmd) Usage() string {
	return `lcr customer-add -name <name> [-phone <phone>] [-favorite <product>]

  Adds a customer. Sales can then be attributed to them with 'lcr sale -customer'.
`
}

func (c *customerAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Customer name.")
	f.StringVar(&c.phone, "phone", "", "Optional phone number.")
	f.StringVar(&c.favorite, "favorite", "", "Optional favorite product.")
}

func (c *customerAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required")
		return subcommands.ExitUsageError
	}
	err := withStore(func(a *app, s *lucro.Store) error {
		cu := s.AddCustomer(lucro.Customer{Name: c.name, Phone: c.phone, FavoriteProduct: c.favorite})
		fmt.Printf("Cliente %q cadastrado (%s).\n", cu.Name, cu.ID)
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type customersCmd struct{}

func (*customersCmd) Name() string     { return "customers" }
func (*customersCmd) Synopsis() string { return "list the customers" }
func (*customersCmd) Usage() string {
	return `lcr customers

  Lists the customers with their last purchase and total spent.
`
}
func (*customersCmd) SetFlags(*flag.FlagSet) {}

func (*customersCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	err := withStore(func(a *app, s *lucro.Store) error {
		printMarkdown(renderer.RenderCustomers(s.Snapshot().Customers, a.renderOptions()))
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
