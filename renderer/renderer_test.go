package renderer

import (
	"strings"
	"testing"
	"text/template"
	"time"

	"github.com/etnz/lucro"
	"github.com/etnz/lucro/date"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// outline is the structure of a rendered markdown document.
type outline struct {
	headings []string
	tables   int
	rows     int // table body rows
	items    int // list items
}

func parse(t *testing.T, md string) outline {
	t.Helper()
	if strings.HasPrefix(md, "error ") {
		t.Fatalf("rendering failed: %s", md)
	}
	src := []byte(md)
	doc := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(src))

	var o outline
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Heading:
			var b strings.Builder
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if txt, ok := c.(*ast.Text); ok {
					b.Write(txt.Segment.Value(src))
				}
			}
			o.headings = append(o.headings, b.String())
		case *extast.Table:
			o.tables++
		case *extast.TableRow:
			o.rows++
		case *ast.ListItem:
			o.items++
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walking markdown: %v", err)
	}
	return o
}

func brl(v float64) string { return lucro.M(v).Format("BRL") }

func TestAllTemplatesParse(t *testing.T) {
	entries, err := templates.ReadDir(".")
	if err != nil {
		t.Fatalf("failed to read embedded templates: %v", err)
	}
	for _, e := range entries {
		t.Run(e.Name(), func(t *testing.T) {
			content, err := templates.ReadFile(e.Name())
			if err != nil {
				t.Fatal(err)
			}
			if _, err := template.New(e.Name()).Funcs(funcs(Options{})).Parse(string(content)); err != nil {
				t.Errorf("template %q does not parse: %v", e.Name(), err)
			}
		})
	}
}

func sampleLedger() *lucro.Ledger {
	l := lucro.NewLedger()
	l.Config.BusinessName = "Doces da Ana"
	l.Config.DailyGoal = lucro.M(100)
	l.Config.MonthlyFixedCosts = lucro.M(300)
	l.Products = []lucro.Product{
		{ID: "p1", Name: "Bolo", UnitCost: lucro.M(10), SalePrice: lucro.M(25), Stock: 2, MinStock: 3},
		{ID: "p2", Name: "Torta", UnitCost: lucro.M(12), SalePrice: lucro.M(30), Stock: 8, MinStock: 3, Category: "doces"},
	}
	noon := time.Date(2025, 9, 10, 12, 0, 0, 0, time.UTC)
	l.Sales = []lucro.Sale{
		{ID: "s1", ProductID: "p1", ProductName: "Bolo", Quantity: 2, Total: lucro.M(50), Time: noon},
		{ID: "s2", ProductID: "p2", ProductName: "Torta", Quantity: 1, Total: lucro.M(30), Time: noon.Add(-48 * time.Hour)},
	}
	l.Expenses = []lucro.Expense{{ID: "e1", Description: "Farinha", Value: lucro.M(20), Kind: lucro.Variable, Time: noon}}
	l.Customers = []lucro.Customer{{ID: "c1", Name: "Bia", Phone: "11988887777", TotalSpent: lucro.M(50), LastPurchase: noon}, {ID: "c2", Name: "Caio"}}
	l.Goals = []lucro.Goal{{ID: "g1", Period: date.Weekly, Target: lucro.M(700), Anchor: date.New(2025, 9, 7)}}
	l.Achievements[0].Unlocked = true
	l.Achievements[0].UnlockedAt = noon
	return l
}

var today = date.New(2025, 9, 10)

func TestRenderDashboard(t *testing.T) {
	md := RenderDashboard(lucro.NewDashboard(sampleLedger(), today), Options{})
	o := parse(t, md)
	want := []string{"Doces da Ana, 10/09/2025", "Hoje", "Metas", "Estoque baixo", "Conquistas"}
	if strings.Join(o.headings, "|") != strings.Join(want, "|") {
		t.Errorf("headings = %q, want %q", o.headings, want)
	}
	if o.tables != 2 {
		t.Errorf("got %d tables, want 2", o.tables)
	}
	for _, s := range []string{brl(50), brl(20), brl(30), "Semanal", "Bolo: 2 unidades", "Empreendedor Ativo"} {
		if !strings.Contains(md, s) {
			t.Errorf("dashboard does not contain %q:\n%s", s, md)
		}
	}
}

func TestRenderDashboardMinimal(t *testing.T) {
	md := RenderDashboard(lucro.NewDashboard(lucro.NewLedger(), today), Options{})
	o := parse(t, md)
	want := []string{"Meu negócio, 10/09/2025", "Hoje"}
	if strings.Join(o.headings, "|") != strings.Join(want, "|") {
		t.Errorf("headings = %q, want %q", o.headings, want)
	}
}

func TestRenderAdmin(t *testing.T) {
	md := RenderAdmin(lucro.NewAdminReport(sampleLedger(), today), Options{})
	o := parse(t, md)
	want := []string{"Administração, 10/09/2025", "Resultados", "Custo fixo", "Metas"}
	if strings.Join(o.headings, "|") != strings.Join(want, "|") {
		t.Errorf("headings = %q, want %q", o.headings, want)
	}
	for _, s := range []string{"Mais vendido: Bolo (2 unidades)", "Última venda: 08/09/2025", "São necessárias"} {
		if !strings.Contains(md, s) {
			t.Errorf("admin does not contain %q:\n%s", s, md)
		}
	}
}

func TestRenderLists(t *testing.T) {
	l := sampleLedger()
	testCases := []struct {
		name    string
		md      string
		heading string
		rows    int
		items   int
	}{
		{"products", RenderProducts(l.Products, Options{}), "Produtos", 2, 0},
		{"sales", RenderSales(l.Sales, Options{}), "Vendas", 2, 0},
		{"expenses", RenderExpenses(l.Expenses, Options{}), "Gastos", 1, 0},
		{"customers", RenderCustomers(l.Customers, Options{}), "Clientes", 2, 0},
		{"goals", RenderGoals(l.Goals, Options{}), "Metas", 1, 0},
		{"achievements", RenderAchievements(l.Achievements, Options{}), "Conquistas", 0, 4},
		{"no products", RenderProducts(nil, Options{}), "Produtos", 0, 0},
		{"no goals", RenderGoals(nil, Options{}), "Metas", 0, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o := parse(t, tc.md)
			if len(o.headings) != 1 || o.headings[0] != tc.heading {
				t.Errorf("headings = %q, want [%q]", o.headings, tc.heading)
			}
			if o.rows != tc.rows {
				t.Errorf("got %d table rows, want %d:\n%s", o.rows, tc.rows, tc.md)
			}
			if o.items != tc.items {
				t.Errorf("got %d list items, want %d:\n%s", o.items, tc.items, tc.md)
			}
		})
	}
}

func TestRenderPriceSimulation(t *testing.T) {
	sim, err := lucro.SimulatePrice(lucro.M(6), decimal.NewFromInt(40))
	if err != nil {
		t.Fatal(err)
	}
	md := RenderPriceSimulation(sim, Options{Currency: "USD"})
	o := parse(t, md)
	if o.rows != 4 {
		t.Errorf("got %d rows, want 4:\n%s", o.rows, md)
	}
	for _, s := range []string{"**$10.00**", "Margem desejada: 40%", "| 100 | $400.00 |"} {
		if !strings.Contains(md, s) {
			t.Errorf("simulation does not contain %q:\n%s", s, md)
		}
	}
}
