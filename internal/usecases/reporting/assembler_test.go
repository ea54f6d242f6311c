package reporting

import (
	"testing"

	"github.com/mvcarvalho/sales-target-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBusiness() *domain.Business {
	return &domain.Business{
		ID:       "biz001",
		Name:     "Ótica Central",
		Currency: domain.Currency{Code: "BRL", Symbol: "R$"},
	}
}

func TestAssembleMonthlyReport(t *testing.T) {
	period, err := ResolveMonth(1, 2025)
	require.NoError(t, err)

	achievements := []domain.ProductAchievement{
		{ProductID: "prd002", SalesValue: 100.123, TargetValue: 300.456, AchievementPercent: 33.3219},
		{ProductID: "prd001", SalesValue: 1500, TargetValue: 1200, AchievementPercent: 125},
	}
	names := map[string]string{"prd001": "Armação X", "prd002": "Lente Y"}

	report := AssembleMonthlyReport(7, testBusiness(), period, achievements, names)

	assert.Equal(t, 7, report.UserID)
	assert.Equal(t, "biz001", report.BusinessID)
	assert.Equal(t, "Ótica Central", report.BusinessName)
	assert.Equal(t, "R$", report.CurrencySymbol)
	assert.Equal(t, "January", report.Month)
	assert.Equal(t, 2025, report.Year)

	// Ordenação determinística por nome do produto
	require.Len(t, report.Products, 2)
	assert.Equal(t, "Armação X", report.Products[0].ProductName)
	assert.Equal(t, "Lente Y", report.Products[1].ProductName)

	// Arredondamento para duas casas apenas na exposição
	assert.Equal(t, 100.12, report.Products[1].SalesValue)
	assert.Equal(t, 300.46, report.Products[1].TargetValue)
	assert.Equal(t, 33.32, report.Products[1].AchievementPercent)

	// Totais soma-depois-divide: (1500+100.123)/(1200+300.456)
	assert.Equal(t, 1600.12, report.Totals.SalesValue)
	assert.InDelta(t, 106.64, report.Totals.AchievementPercent, 0.01)
}

func TestAssembleMonthlyReport_NoData(t *testing.T) {
	period, err := ResolveMonth(6, 2025)
	require.NoError(t, err)

	// Sem vendas nem metas o relatório sai vazio, nunca nil
	report := AssembleMonthlyReport(7, nil, period, nil, nil)

	require.NotNil(t, report)
	assert.Empty(t, report.Products)
	assert.Equal(t, domain.AchievementTotals{}, report.Totals)
	assert.Empty(t, report.BusinessID)
}

func TestAssembleMonthlyReport_UnknownProductKeepsID(t *testing.T) {
	period, err := ResolveMonth(1, 2025)
	require.NoError(t, err)

	achievements := []domain.ProductAchievement{
		{ProductID: "prd999", SalesValue: 10, TargetValue: 20, AchievementPercent: 50},
	}

	report := AssembleMonthlyReport(7, nil, period, achievements, nil)
	require.Len(t, report.Products, 1)
	assert.Equal(t, "prd999", report.Products[0].ProductName)
}

func TestAssembleYTDReport(t *testing.T) {
	period, err := ResolvePeriod(1, 3, 2025)
	require.NoError(t, err)

	report := AssembleYTDReport(7, testBusiness(), period, nil, nil)

	assert.Equal(t, []string{"January", "February", "March"}, report.Months)
	assert.Equal(t, 2025, report.Year)
	assert.Empty(t, report.Products)
}

func TestAssembleTeamReport(t *testing.T) {
	period, err := ResolvePeriod(1, 2, 2025)
	require.NoError(t, err)

	memberAchievements := map[int][]domain.ProductAchievement{
		1: {
			{ProductID: "prd001", SoldQuantity: 10, SalesValue: 500, TargetValue: 1000, AchievementPercent: 50},
		},
		2: {
			{ProductID: "prd001", SoldQuantity: 30, SalesValue: 1500, TargetValue: 500, AchievementPercent: 300},
		},
	}
	memberNames := map[int]string{1: "Ana Silva", 2: "Bruno Costa"}
	productNames := map[string]string{"prd001": "Armação X"}

	report := AssembleTeamReport(testBusiness(), period, memberAchievements, memberNames, productNames)

	require.Len(t, report.Members, 2)
	assert.Equal(t, "Ana Silva", report.Members[0].UserName)
	assert.Equal(t, "Bruno Costa", report.Members[1].UserName)
	assert.Equal(t, 50.0, report.Members[0].Totals.AchievementPercent)
	assert.Equal(t, 300.0, report.Members[1].Totals.AchievementPercent)

	// O produto agrega os dois membros: (500+1500)/(1000+500) = 133,33%
	require.Len(t, report.Products, 1)
	assert.Equal(t, "Armação X", report.Products[0].ProductName)
	assert.Equal(t, 40, report.Products[0].SoldQuantity)
	assert.Equal(t, 133.33, report.Products[0].AchievementPercent)

	// O total do negócio é recalculado das somas, nunca média dos membros
	assert.Equal(t, 133.33, report.Totals.AchievementPercent)
}

func TestAssembleProfitReport(t *testing.T) {
	period, err := ResolveMonth(1, 2025)
	require.NoError(t, err)

	achievements := []domain.ProductAchievement{
		{ProductID: "prd001", SoldQuantity: 100, SalesValue: 1500, TargetValue: 1200, AchievementPercent: 125},
	}
	products := map[string]*domain.Product{
		"prd001": {ID: "prd001", Name: "Armação X", CostPrice: 6},
	}
	expenses := map[string]float64{"prd001": 200}

	report := AssembleProfitReport(7, testBusiness(), period, achievements, products, expenses)

	require.Len(t, report.Products, 1)
	row := report.Products[0]

	// lucro = 1500 - (100 x 6) - 200 = 700
	assert.Equal(t, 600.0, row.CostValue)
	assert.Equal(t, 200.0, row.MarketingExpense)
	assert.Equal(t, 700.0, row.Profit)
	assert.Equal(t, "Armação X", row.ProductName)

	assert.Equal(t, 1500.0, report.Totals.SalesValue)
	assert.Equal(t, 700.0, report.Totals.Profit)
}

func TestAssembleProfitReport_UnknownProduct(t *testing.T) {
	period, err := ResolveMonth(1, 2025)
	require.NoError(t, err)

	achievements := []domain.ProductAchievement{
		{ProductID: "prd001", SoldQuantity: 10, SalesValue: 100},
	}

	// Produto sem cadastro: custo zero e nome igual ao ID
	report := AssembleProfitReport(7, nil, period, achievements, nil, nil)
	require.Len(t, report.Products, 1)
	assert.Equal(t, "prd001", report.Products[0].ProductName)
	assert.Equal(t, 0.0, report.Products[0].CostValue)
	assert.Equal(t, 100.0, report.Products[0].Profit)
}
