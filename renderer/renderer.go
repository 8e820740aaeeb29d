// Package renderer turns ledger reports into markdown documents.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
	"time"

	"github.com/etnz/lucro"
	"github.com/etnz/lucro/date"
)

//go:embed *.md
var templates embed.FS

// Options holds the settings shared by all renderings.
type Options struct {
	Currency string // ISO code amounts are formatted in, lucro.DefaultCurrency if empty
}

func (o Options) currency() string {
	if o.Currency == "" {
		return lucro.DefaultCurrency
	}
	return o.Currency
}

// RenderDashboard renders the summary of the day.
func RenderDashboard(d *lucro.Dashboard, opts Options) string {
	partials := map[string]string{
		"dashboard_title":        "dashboard_title.md",
		"dashboard_today":        "dashboard_today.md",
		"dashboard_goals":        "dashboard_goals.md",
		"dashboard_stock":        "dashboard_stock.md",
		"dashboard_achievements": "dashboard_achievements.md",
	}
	return renderTemplate("dashboard", "dashboard.md", partials, opts, d)
}

// RenderAdmin renders the administration summary.
func RenderAdmin(r *lucro.AdminReport, opts Options) string {
	partials := map[string]string{
		"admin_totals":     "admin_totals.md",
		"admin_fixed_cost": "admin_fixed_cost.md",
		"goals":            "goals.md",
	}
	return renderTemplate("admin", "admin.md", partials, opts, r)
}

// RenderProducts renders the product catalog.
func RenderProducts(products []lucro.Product, opts Options) string {
	return renderTemplate("products", "products.md", nil, opts, products)
}

// RenderSales renders a list of sales.
func RenderSales(sales []lucro.Sale, opts Options) string {
	return renderTemplate("sales", "sales.md", nil, opts, sales)
}

// RenderExpenses renders a list of expenses.
func RenderExpenses(expenses []lucro.Expense, opts Options) string {
	return renderTemplate("expenses", "expenses.md", nil, opts, expenses)
}

// RenderCustomers renders the customer list.
func RenderCustomers(customers []lucro.Customer, opts Options) string {
	return renderTemplate("customers", "customers.md", nil, opts, customers)
}

// RenderGoals renders the active goals.
func RenderGoals(goals []lucro.Goal, opts Options) string {
	partials := map[string]string{"goals": "goals.md"}
	return renderTemplate("goalList", "goal_list.md", partials, opts, goals)
}

// RenderAchievements renders the achievement catalog, locked ones included.
func RenderAchievements(achievements []lucro.Achievement, opts Options) string {
	return renderTemplate("achievements", "achievements.md", nil, opts, achievements)
}

// RenderPriceSimulation renders the result of the price calculator.
func RenderPriceSimulation(sim *lucro.PriceSimulation, opts Options) string {
	return renderTemplate("price", "price.md", nil, opts, sim)
}

// funcs are the helpers available to every template.
func funcs(opts Options) template.FuncMap {
	return template.FuncMap{
		"money": func(m lucro.Money) string { return m.Format(opts.currency()) },
		"day": func(t time.Time) string {
			if t.IsZero() {
				return "-"
			}
			return t.Format("02/01/2006")
		},
		"datetime": func(t time.Time) string { return t.Format("02/01/2006 15:04") },
		"date":     func(d date.Date) string { return d.Format("02/01/2006") },
		"period":   periodName,
		"kind": func(k lucro.ExpenseKind) string {
			if k == lucro.Fixed {
				return "Fixo"
			}
			return "Variável"
		},
		"orDash": func(s string) string {
			if s == "" {
				return "-"
			}
			return s
		},
	}
}

func periodName(p date.Period) string {
	switch p {
	case date.Weekly:
		return "Semanal"
	case date.Monthly:
		return "Mensal"
	default:
		return "Diária"
	}
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, opts Options, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs(opts)).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			content, err = fs.ReadFile(templates, file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
