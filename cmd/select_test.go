package cmd

import (
	"testing"

	"github.com/etnz/lucro"
	"github.com/google/go-cmp/cmp"
)

func TestSelectPath(t *testing.T) {
	l := testCatalog()
	l.Products[0].Stock, l.Products[0].MinStock = 2, 5
	l.Products[1].Stock, l.Products[1].MinStock = 9, 5
	l.Config.BusinessName = "Doces da Ana"

	tests := []struct {
		path string
		want any
	}{
		{path: "$.config.businessName", want: "Doces da Ana"},
		{path: "$.products[*].name", want: []any{"Brigadeiro", "Beijinho", "Bolo de pote"}},
		{path: "$.products[?(@.stock < @.minStock)].name", want: []any{"Brigadeiro"}},
		{path: "$.products[?(@.stock <= @.minStock)].name", want: []any{"Brigadeiro", "Bolo de pote"}},
		{path: "$.products[?(@.name == \"Beijinho\")].stock", want: []any{float64(9)}},
		{path: "$.achievements[0].title", want: lucro.Catalog()[0].Title},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := selectPath(l, tt.path)
			if err != nil {
				t.Fatalf("selectPath(%q) error = %v", tt.path, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("selectPath(%q) mismatch (-want +got):\n%s", tt.path, diff)
			}
		})
	}
}

func TestSelectPath_Invalid(t *testing.T) {
	if _, err := selectPath(lucro.NewLedger(), "$.products[?("); err == nil {
		t.Error("selectPath() of a malformed expression succeeded, want an error")
	}
}
