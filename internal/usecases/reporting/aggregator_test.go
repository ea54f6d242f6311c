package reporting

import (
	"testing"

	"github.com/mvcarvalho/sales-target-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthTarget(units int, value float64) domain.MonthTarget {
	return domain.MonthTarget{Month: "January", TargetUnits: units, TargetValue: value}
}

func TestComputeAchievement(t *testing.T) {
	tests := []struct {
		name    string
		matched []MatchedSale
		targets []ProductMonthTarget
		want    []domain.ProductAchievement
	}{
		{
			name:    "Venda e meta do mesmo produto",
			matched: []MatchedSale{{ProductID: "prd001", SoldQuantity: 150, SalesValue: 1500}},
			targets: []ProductMonthTarget{{ProductID: "prd001", Target: monthTarget(120, 1200)}},
			want: []domain.ProductAchievement{
				{ProductID: "prd001", SoldQuantity: 150, SalesValue: 1500, TargetUnits: 120, TargetValue: 1200, AchievementPercent: 125},
			},
		},
		{
			name:    "Venda sem meta aparece com meta zerada e percentual zero",
			matched: []MatchedSale{{ProductID: "prd001", SoldQuantity: 10, SalesValue: 100}},
			targets: nil,
			want: []domain.ProductAchievement{
				{ProductID: "prd001", SoldQuantity: 10, SalesValue: 100, AchievementPercent: 0},
			},
		},
		{
			name:    "Meta sem venda aparece com venda zerada",
			matched: nil,
			targets: []ProductMonthTarget{{ProductID: "prd001", Target: monthTarget(120, 1200)}},
			want: []domain.ProductAchievement{
				{ProductID: "prd001", TargetUnits: 120, TargetValue: 1200, AchievementPercent: 0},
			},
		},
		{
			name:    "Fatias mensais do mesmo produto são somadas antes de dividir",
			matched: []MatchedSale{{ProductID: "prd001", SoldQuantity: 30, SalesValue: 300}},
			targets: []ProductMonthTarget{
				{ProductID: "prd001", Target: monthTarget(10, 100)},
				{ProductID: "prd001", Target: monthTarget(20, 200)},
			},
			want: []domain.ProductAchievement{
				{ProductID: "prd001", SoldQuantity: 30, SalesValue: 300, TargetUnits: 30, TargetValue: 300, AchievementPercent: 100},
			},
		},
		{
			name: "União dos dois lados ordenada por produto",
			matched: []MatchedSale{
				{ProductID: "prd002", SoldQuantity: 1, SalesValue: 10},
			},
			targets: []ProductMonthTarget{
				{ProductID: "prd001", Target: monthTarget(5, 50)},
			},
			want: []domain.ProductAchievement{
				{ProductID: "prd001", TargetUnits: 5, TargetValue: 50, AchievementPercent: 0},
				{ProductID: "prd002", SoldQuantity: 1, SalesValue: 10, AchievementPercent: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeAchievement(tt.matched, tt.targets)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRollUp_SumThenDivide(t *testing.T) {
	// Produto A: 500/1000 = 50%; produto B: 1500/500 = 300%.
	// O agregado correto é (500+1500)/(1000+500) = 133,33%, nunca a média
	// dos percentuais (175%).
	items := []domain.ProductAchievement{
		{ProductID: "prdA", SalesValue: 500, TargetValue: 1000, AchievementPercent: 50},
		{ProductID: "prdB", SalesValue: 1500, TargetValue: 500, AchievementPercent: 300},
	}

	totals := Totals(items)
	assert.InDelta(t, 133.3333, totals.AchievementPercent, 0.001)
	assert.Equal(t, 2000.0, totals.SalesValue)
	assert.Equal(t, 1500.0, totals.TargetValue)
}

func TestRollUp_GroupsByKey(t *testing.T) {
	items := []domain.ProductAchievement{
		{ProductID: "prdA", SoldQuantity: 1, SalesValue: 100, TargetValue: 200},
		{ProductID: "prdA", SoldQuantity: 2, SalesValue: 300, TargetValue: 200},
		{ProductID: "prdB", SoldQuantity: 3, SalesValue: 50, TargetValue: 0},
	}

	grouped := RollUp(items, func(a domain.ProductAchievement) string { return a.ProductID })
	require.Len(t, grouped, 2)

	a := grouped["prdA"]
	assert.Equal(t, 3, a.SoldQuantity)
	assert.Equal(t, 400.0, a.SalesValue)
	assert.Equal(t, 100.0, a.AchievementPercent)

	// Meta zero resulta em percentual zero, nunca NaN ou infinito
	b := grouped["prdB"]
	assert.Equal(t, 0.0, b.AchievementPercent)
}

func TestTotals_Empty(t *testing.T) {
	totals := Totals(nil)
	assert.Equal(t, domain.AchievementTotals{}, totals)
}
