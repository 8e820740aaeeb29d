package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/lucro"
	"github.com/google/subcommands"
	"github.com/xuri/excelize/v2"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the ledger to a spreadsheet" }
func (*exportCmd) Usage() string {
	return `lcr export [-o <file.xlsx>]

  Writes the sales, expenses, products and customers to an Excel workbook.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "lucro.xlsx", "Output file.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	err := withStore(func(a *app, s *lucro.Store) error {
		wb, err := workbook(s.Snapshot())
		if err != nil {
			return err
		}
		defer wb.Close()
		if err := wb.SaveAs(c.output); err != nil {
			return fmt.Errorf("saving %q: %w", c.output, err)
		}
		fmt.Printf("Planilha salva em %s\n", c.output)
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// Sheet names of the exported workbook.
const (
	salesSheet     = "Vendas"
	expensesSheet  = "Gastos"
	productsSheet  = "Produtos"
	customersSheet = "Clientes"
)

// sheet is a header row and the rows below it.
type sheet struct {
	name   string
	header []any
	rows   [][]any
}

// workbook builds a workbook with one sheet per collection of l. Amounts are
// written as numbers so they can be summed in the spreadsheet.
func workbook(l *lucro.Ledger) (*excelize.File, error) {
	sheets := []sheet{
		{name: salesSheet, header: []any{"Data", "Produto", "Quantidade", "Total", "Cliente"}},
		{name: expensesSheet, header: []any{"Data", "Descrição", "Tipo", "Categoria", "Valor"}},
		{name: productsSheet, header: []any{"Nome", "Custo", "Preço", "Lucro unitário", "Estoque", "Mínimo", "Categoria"}},
		{name: customersSheet, header: []any{"Nome", "Celular", "Produto favorito", "Última compra", "Total gasto"}},
	}
	customers := make(map[string]string, len(l.Customers))
	for _, c := range l.Customers {
		customers[c.ID] = c.Name
	}
	for _, s := range l.Sales {
		sheets[0].rows = append(sheets[0].rows, []any{s.Time, s.ProductName, s.Quantity, s.Total.AsFloat(), customers[s.CustomerID]})
	}
	for _, e := range l.Expenses {
		sheets[1].rows = append(sheets[1].rows, []any{e.Time, e.Description, string(e.Kind), e.Category, e.Value.AsFloat()})
	}
	for _, p := range l.Products {
		sheets[2].rows = append(sheets[2].rows, []any{p.Name, p.UnitCost.AsFloat(), p.SalePrice.AsFloat(), p.UnitMargin().AsFloat(), p.Stock, p.MinStock, p.Category})
	}
	for _, c := range l.Customers {
		var last any
		if !c.LastPurchase.IsZero() {
			last = c.LastPurchase
		}
		sheets[3].rows = append(sheets[3].rows, []any{c.Name, c.Phone, c.FavoriteProduct, last, c.TotalSpent.AsFloat()})
	}

	f := excelize.NewFile()
	for i, s := range sheets {
		if err := writeSheet(f, s); err != nil {
			f.Close()
			return nil, err
		}
		if i == 0 {
			idx, err := f.GetSheetIndex(s.name)
			if err != nil {
				f.Close()
				return nil, err
			}
			f.SetActiveSheet(idx)
		}
	}
	// NewFile starts with a default sheet we do not use.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func writeSheet(f *excelize.File, s sheet) error {
	if _, err := f.NewSheet(s.name); err != nil {
		return fmt.Errorf("creating sheet %q: %w", s.name, err)
	}
	for i, row := range append([][]any{s.header}, s.rows...) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(s.name, cell, &row); err != nil {
			return fmt.Errorf("writing sheet %q: %w", s.name, err)
		}
	}
	return nil
}
