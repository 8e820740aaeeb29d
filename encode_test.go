package lucro

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/etnz/lucro/date"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func sampleLedger() *Ledger {
	l := NewLedger()
	l.Config = BusinessConfig{
		BusinessName:        "Doces da Ana",
		BusinessType:        "Confeitaria",
		MonthlyFixedCosts:   BRL(800),
		DailyGoal:           BRL(150),
		OnboardingCompleted: true,
	}
	l.Products = []Product{{ID: "p1", Name: "Brigadeiro", UnitCost: BRL(0.8), SalePrice: BRL(2.5), Stock: 40, MinStock: 10, Category: "doces"}}
	l.Customers = []Customer{
		{ID: "c1", Name: "Bia", Phone: "11988887777", TotalSpent: BRL(5), LastPurchase: time.Date(2025, 9, 10, 14, 0, 0, 0, time.UTC)},
		{ID: "c2", Name: "Caio"},
	}
	l.Sales = []Sale{{ID: "s1", ProductID: "p1", ProductName: "Brigadeiro", Quantity: 2, Total: BRL(5), Time: time.Date(2025, 9, 10, 14, 0, 0, 0, time.UTC), CustomerID: "c1"}}
	l.Expenses = []Expense{{ID: "e1", Description: "Leite condensado", Value: BRL(12.9), Kind: Variable, Time: time.Date(2025, 9, 10, 8, 0, 0, 0, time.UTC), Category: "insumos"}}
	l.Goals = []Goal{{ID: "g1", Period: date.Weekly, Target: BRL(1000), Anchor: date.New(2025, 9, 7)}}
	l.Achievements[3].Unlocked = true
	l.Achievements[3].UnlockedAt = time.Date(2025, 9, 10, 14, 0, 0, 0, time.UTC)
	return l
}

func TestEncodeDecodeLedger(t *testing.T) {
	for name, l := range map[string]*Ledger{"empty": NewLedger(), "sample": sampleLedger()} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := EncodeLedger(&buf, l); err != nil {
				t.Fatalf("EncodeLedger() unexpected error: %v", err)
			}
			got, err := DecodeLedger(&buf)
			if err != nil {
				t.Fatalf("DecodeLedger() unexpected error: %v", err)
			}
			if diff := cmp.Diff(l, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s\ngot: %s", diff, spew.Sdump(got))
			}
		})
	}
}

func TestDecodeLedgerDefaults(t *testing.T) {
	got, err := DecodeLedger(strings.NewReader(`{"config":{"businessName":"Bar do Zé"}}`))
	if err != nil {
		t.Fatalf("DecodeLedger() unexpected error: %v", err)
	}
	want := NewLedger()
	want.Config.BusinessName = "Bar do Zé"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DecodeLedger() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeLedgerRestoresCatalog(t *testing.T) {
	got, err := DecodeLedger(strings.NewReader(`{"achievements":[{"id":"4","title":"Bateu Meta, Tá Voando","unlocked":true,"unlockedAt":"2025-09-10T14:00:00Z"}]}`))
	if err != nil {
		t.Fatalf("DecodeLedger() unexpected error: %v", err)
	}
	if len(got.Achievements) != len(Catalog()) {
		t.Fatalf("got %d achievements, want %d", len(got.Achievements), len(Catalog()))
	}
	if a := got.Achievement(GoalCrusher); a == nil || !a.Unlocked {
		t.Errorf("Achievement(%q) = %v, want unlocked", GoalCrusher, a)
	}
}

func TestDecodeLedgerError(t *testing.T) {
	if _, err := DecodeLedger(strings.NewReader(`{"products":`)); err == nil {
		t.Error("DecodeLedger() expected an error on truncated input")
	}
}
