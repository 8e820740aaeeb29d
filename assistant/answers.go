package assistant

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/etnz/lucro"
)

// Tips are the general advice drawn at random.
var Tips = []string{
	"Registre TODAS as vendas e gastos, mesmo os pequenos. Assim você tem controle real do negócio!",
	"Mantenha sempre um estoque mínimo. Nunca deixe faltar produto pro cliente!",
	"Calcule seu preço com margem de lucro de pelo menos 30-40%. Você precisa lucrar!",
	"Separe o dinheiro do negócio do seu dinheiro pessoal. Isso é fundamental!",
	"Acompanhe suas vendas todo dia. Quanto mais você controla, mais você cresce!",
}

// Help is the answer to unrecognized questions.
const Help = `Desculpa, não entendi bem sua pergunta. Você pode me perguntar sobre:

• "Quanto vendi hoje?"
• "Quanto gastei hoje?"
• "Qual meu lucro?"
• "Como tá o estoque?"
• "Qual produto mais vende?"
• "Quantas vendas preciso fazer?"
• "Me dá uma dica"
• "Como tá minha meta?"

Tô aqui pra te ajudar! 😊`

func (a *Assistant) money(m lucro.Money) string { return m.Format(a.currency) }

func (a *Assistant) sales(q question) string {
	total := lucro.DailyTotal(q.ledger.Sales, q.today)
	if total.IsPositive() {
		return fmt.Sprintf("Hoje você vendeu %s! Tá indo bem! 🎉", a.money(total))
	}
	return fmt.Sprintf("Hoje você vendeu %s! Ainda não registrou vendas hoje. Bora lançar as vendas!", a.money(total))
}

func (a *Assistant) expenses(q question) string {
	total := lucro.DailyTotal(q.ledger.Expenses, q.today)
	if total.IsPositive() {
		return fmt.Sprintf("Hoje você gastou %s. Fique de olho nos gastos!", a.money(total))
	}
	return fmt.Sprintf("Hoje você gastou %s. Ainda não registrou gastos hoje.", a.money(total))
}

func (a *Assistant) profit(q question) string {
	profit := lucro.DailyTotal(q.ledger.Sales, q.today).Sub(lucro.DailyTotal(q.ledger.Expenses, q.today))
	msg := "Ainda não teve movimentação hoje."
	switch {
	case profit.IsPositive():
		msg = "Tá no lucro! Continue assim! 💰"
	case profit.IsNegative():
		msg = "Atenção! Você gastou mais do que vendeu. Vamos aumentar as vendas? 📈"
	}
	return fmt.Sprintf("Seu lucro hoje é de %s. %s", a.money(profit), msg)
}

func (a *Assistant) stock(q question) string {
	low := lucro.LowStock(q.ledger.Products)
	if len(low) == 0 {
		return fmt.Sprintf("Seu estoque tá ok! Você tem %d produto(s) cadastrado(s). 📦", len(q.ledger.Products))
	}
	items := make([]string, len(low))
	for i, p := range low {
		items[i] = fmt.Sprintf("%s (%d unidades)", p.Name, p.Stock)
	}
	return fmt.Sprintf("Atenção! Você tem %d produto(s) com estoque baixo: %s. Planeja repor antes de faltar!", len(low), strings.Join(items, ", "))
}

func (a *Assistant) bestSeller(q question) string {
	best, ok := lucro.BestSelling(q.ledger.Sales)
	if !ok {
		return "Você ainda não tem vendas registradas. Comece a lançar suas vendas!"
	}
	return fmt.Sprintf("Seu produto mais vendido é %s com %d vendas! É o queridinho dos clientes! 🌟", best.Name, best.Quantity)
}

func (a *Assistant) fixedCosts(q question) string {
	costs := q.ledger.Config.MonthlyFixedCosts
	if costs.IsPositive() && len(q.ledger.Products) > 0 {
		r := lucro.RequiredSales(costs, q.ledger.Sales, q.ledger.Products)
		switch r.Basis {
		case lucro.HistoricalAverage:
			return fmt.Sprintf("Com seu lucro médio de %s por venda, você precisa vender %d vezes no mês para pagar seu custo fixo de %s. Depois disso, é lucro puro! 💰",
				a.money(r.PerSale), r.Sales, a.money(costs))
		case lucro.FirstProductMargin:
			return fmt.Sprintf("Com base no seu produto \"%s\" que tem %s de lucro por unidade, você precisa vender %d unidades no mês para pagar seu custo fixo de %s. 📊",
				r.Product.Name, a.money(r.PerSale), r.Sales, a.money(costs))
		}
	}
	return "Configure seus custos fixos e produtos para eu calcular quantas vendas você precisa fazer!"
}

func (a *Assistant) tip(question) string {
	if a.rand != nil {
		return Tips[a.rand.IntN(len(Tips))]
	}
	return Tips[rand.IntN(len(Tips))]
}

func (a *Assistant) goal(q question) string {
	target := q.ledger.DailyTarget()
	if !target.IsPositive() {
		return "Você ainda não definiu uma meta diária. Que tal definir uma agora?"
	}
	missing := target.Sub(lucro.DailyTotal(q.ledger.Sales, q.today))
	if !missing.IsPositive() {
		return "Você já bateu sua meta de hoje! 🎉 Tá voando! Continue assim!"
	}
	if len(q.ledger.Sales) > 0 && len(q.ledger.Products) > 0 {
		if avg := lucro.AverageProfitPerSale(q.ledger.Sales, q.ledger.Products); avg.IsPositive() {
			return fmt.Sprintf("Faltam %s pra bater sua meta de hoje. Com base no seu lucro médio de %s por venda, você precisa vender mais %d vezes. Você consegue! 💪",
				a.money(missing), a.money(avg), lucro.SalesNeeded(missing, avg))
		}
	}
	return fmt.Sprintf("Faltam %s pra bater sua meta de hoje. Você consegue! 💪", a.money(missing))
}
