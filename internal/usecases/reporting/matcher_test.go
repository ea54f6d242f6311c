package reporting

import (
	"testing"
	"time"

	"github.com/mvcarvalho/sales-target-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func salesRecord(isFinal bool, start, end time.Time, lines ...domain.SalesLine) *domain.UserSales {
	return &domain.UserSales{
		ID:        "ver001",
		UserID:    1,
		IsFinal:   isFinal,
		StartDate: start,
		EndDate:   end,
		SalesData: lines,
	}
}

func TestMatchFinalSales(t *testing.T) {
	period, err := ResolveMonth(1, 2025)
	require.NoError(t, err)

	jan10 := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	jan20 := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		sales []*domain.UserSales
		want  []MatchedSale
	}{
		{
			name: "Versão final contida no período é casada",
			sales: []*domain.UserSales{
				salesRecord(true, jan10, jan20, domain.SalesLine{ProductID: "prd001", Quantity: 100, UnitPrice: 10}),
			},
			want: []MatchedSale{{ProductID: "prd001", SoldQuantity: 100, SalesValue: 1000}},
		},
		{
			name: "Rascunho nunca é casado",
			sales: []*domain.UserSales{
				salesRecord(false, jan10, jan20, domain.SalesLine{ProductID: "prd001", Quantity: 100, UnitPrice: 10}),
			},
			want: []MatchedSale{},
		},
		{
			name: "Registro que atravessa a borda do período fica de fora",
			sales: []*domain.UserSales{
				salesRecord(true,
					time.Date(2024, 12, 28, 0, 0, 0, 0, time.UTC),
					jan10,
					domain.SalesLine{ProductID: "prd001", Quantity: 100, UnitPrice: 10},
				),
				salesRecord(true,
					jan20,
					time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC),
					domain.SalesLine{ProductID: "prd001", Quantity: 50, UnitPrice: 10},
				),
			},
			want: []MatchedSale{},
		},
		{
			name: "Registro exatamente nos limites do período é casado",
			sales: []*domain.UserSales{
				salesRecord(true,
					time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
					time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
					domain.SalesLine{ProductID: "prd001", Quantity: 10, UnitPrice: 5},
				),
			},
			want: []MatchedSale{{ProductID: "prd001", SoldQuantity: 10, SalesValue: 50}},
		},
		{
			name: "Linhas duplicadas do mesmo produto são somadas uma única vez",
			sales: []*domain.UserSales{
				salesRecord(true, jan10, jan20,
					domain.SalesLine{ProductID: "prd001", Quantity: 100, UnitPrice: 10},
					domain.SalesLine{ProductID: "prd001", Quantity: 50, UnitPrice: 10},
				),
			},
			want: []MatchedSale{{ProductID: "prd001", SoldQuantity: 150, SalesValue: 1500}},
		},
		{
			name: "Produtos distintos saem ordenados por ID",
			sales: []*domain.UserSales{
				salesRecord(true, jan10, jan20,
					domain.SalesLine{ProductID: "prd002", Quantity: 1, UnitPrice: 30},
					domain.SalesLine{ProductID: "prd001", Quantity: 2, UnitPrice: 10},
				),
			},
			want: []MatchedSale{
				{ProductID: "prd001", SoldQuantity: 2, SalesValue: 20},
				{ProductID: "prd002", SoldQuantity: 1, SalesValue: 30},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchFinalSales(tt.sales, period, "")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchFinalSales_ProductFilter(t *testing.T) {
	period, err := ResolveMonth(1, 2025)
	require.NoError(t, err)

	sales := []*domain.UserSales{
		salesRecord(true,
			time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 25, 0, 0, 0, 0, time.UTC),
			domain.SalesLine{ProductID: "prd001", Quantity: 10, UnitPrice: 10},
			domain.SalesLine{ProductID: "prd002", Quantity: 5, UnitPrice: 20},
		),
	}

	got := MatchFinalSales(sales, period, "prd002")
	require.Len(t, got, 1)
	assert.Equal(t, "prd002", got[0].ProductID)
	assert.Equal(t, 100.0, got[0].SalesValue)
}

func TestMatchFinalSales_Idempotent(t *testing.T) {
	period, err := ResolveMonth(1, 2025)
	require.NoError(t, err)

	sales := []*domain.UserSales{
		salesRecord(true,
			time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 25, 0, 0, 0, 0, time.UTC),
			domain.SalesLine{ProductID: "prd001", Quantity: 100, UnitPrice: 10},
		),
	}

	first := MatchFinalSales(sales, period, "")
	second := MatchFinalSales(sales, period, "")

	// Reprocessar a mesma entrada nunca infla quantidades
	assert.Equal(t, first, second)
}
