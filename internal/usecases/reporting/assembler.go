package reporting

import (
	"sort"

	"github.com/mvcarvalho/sales-target-api/internal/domain"
	"github.com/mvcarvalho/sales-target-api/pkg/utils"
)

// Os montadores são transformações puras: saída do agregador + metadados das
// entidades (nomes, logo, símbolo de moeda) no formato fixo de cada endpoint.
// Toda lista é ordenada de forma determinística (nome do produto ascendente)
// porque os clientes renderizam na ordem do servidor. Valores monetários e
// percentuais são arredondados para duas casas apenas aqui, na exposição.

// AssembleMonthlyReport monta o relatório mensal de atingimento de um usuário
func AssembleMonthlyReport(
	userID int,
	business *domain.Business,
	period *domain.Period,
	achievements []domain.ProductAchievement,
	productNames map[string]string,
) *domain.MonthlyAchievementReport {
	report := &domain.MonthlyAchievementReport{
		UserID:   userID,
		Month:    period.MonthNames[0],
		Year:     period.Year,
		Products: decorateProducts(achievements, productNames),
		Totals:   roundTotals(Totals(achievements)),
	}

	if business != nil {
		report.BusinessID = business.ID
		report.BusinessName = business.Name
		report.CurrencySymbol = business.Currency.Symbol
	}

	return report
}

// AssembleYTDReport monta o relatório acumulado de um usuário no intervalo
func AssembleYTDReport(
	userID int,
	business *domain.Business,
	period *domain.Period,
	achievements []domain.ProductAchievement,
	productNames map[string]string,
) *domain.YTDAchievementReport {
	report := &domain.YTDAchievementReport{
		UserID:   userID,
		Year:     period.Year,
		Months:   period.MonthNames,
		Products: decorateProducts(achievements, productNames),
		Totals:   roundTotals(Totals(achievements)),
	}

	if business != nil {
		report.BusinessID = business.ID
		report.BusinessName = business.Name
		report.CurrencySymbol = business.Currency.Symbol
	}

	return report
}

// AssembleTeamReport monta o consolidado do negócio: membros não donos e o
// agrupamento por produto, com o atingimento do negócio recalculado a partir
// das somas (nunca média dos percentuais dos membros)
func AssembleTeamReport(
	business *domain.Business,
	period *domain.Period,
	memberAchievements map[int][]domain.ProductAchievement,
	memberNames map[int]string,
	productNames map[string]string,
) *domain.TeamAchievementReport {
	report := &domain.TeamAchievementReport{
		Year:   period.Year,
		Months: period.MonthNames,
	}

	if business != nil {
		report.BusinessID = business.ID
		report.BusinessName = business.Name
		report.LogoURL = business.LogoURL
		report.CurrencySymbol = business.Currency.Symbol
	}

	// Achatar os atingimentos de todos os membros para os agrupamentos
	all := make([]domain.ProductAchievement, 0)
	members := make([]domain.MemberAchievement, 0, len(memberAchievements))
	for userID, achievements := range memberAchievements {
		all = append(all, achievements...)
		members = append(members, domain.MemberAchievement{
			UserID:   userID,
			UserName: memberNames[userID],
			Totals:   roundTotals(Totals(achievements)),
		})
	}
	sort.Slice(members, func(i, j int) bool {
		if members[i].UserName != members[j].UserName {
			return members[i].UserName < members[j].UserName
		}
		return members[i].UserID < members[j].UserID
	})
	report.Members = members

	// Agrupar por produto dentro do negócio: soma-depois-divide por produto
	perProduct := RollUp(all, func(a domain.ProductAchievement) string { return a.ProductID })
	products := make([]domain.ProductAchievement, 0, len(perProduct))
	for productID, totals := range perProduct {
		products = append(products, domain.ProductAchievement{
			ProductID:          productID,
			SoldQuantity:       totals.SoldQuantity,
			SalesValue:         totals.SalesValue,
			TargetUnits:        totals.TargetUnits,
			TargetValue:        totals.TargetValue,
			AchievementPercent: totals.AchievementPercent,
		})
	}
	report.Products = decorateProducts(products, productNames)
	report.Totals = roundTotals(Totals(all))

	return report
}

// AssembleProfitReport monta a visão de lucro pessoal: atingimento
// enriquecido com custo do produto e despesa de marketing do período.
// lucro = valor vendido - (quantidade x preço de custo) - despesa atribuível
func AssembleProfitReport(
	userID int,
	business *domain.Business,
	period *domain.Period,
	achievements []domain.ProductAchievement,
	products map[string]*domain.Product,
	expensesByProduct map[string]float64,
) *domain.ProfitReport {
	report := &domain.ProfitReport{
		UserID: userID,
		Year:   period.Year,
		Months: period.MonthNames,
	}

	if business != nil {
		report.BusinessID = business.ID
		report.BusinessName = business.Name
		report.CurrencySymbol = business.Currency.Symbol
	}

	var totals domain.ProfitTotals

	rows := make([]domain.ProductProfit, 0, len(achievements))
	for _, achievement := range achievements {
		costPrice := 0.0
		name := achievement.ProductID
		if product, ok := products[achievement.ProductID]; ok && product != nil {
			costPrice = product.CostPrice
			name = product.DisplayName()
		}

		costValue := float64(achievement.SoldQuantity) * costPrice
		expense := expensesByProduct[achievement.ProductID]
		profit := achievement.SalesValue - costValue - expense

		totals.SalesValue += achievement.SalesValue
		totals.CostValue += costValue
		totals.MarketingExpense += expense
		totals.Profit += profit

		achievement.ProductName = name
		rows = append(rows, domain.ProductProfit{
			ProductAchievement: roundAchievement(achievement),
			CostValue:          utils.RoundWithTwoDecimalPlace(costValue),
			MarketingExpense:   utils.RoundWithTwoDecimalPlace(expense),
			Profit:             utils.RoundWithTwoDecimalPlace(profit),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].ProductName != rows[j].ProductName {
			return rows[i].ProductName < rows[j].ProductName
		}
		return rows[i].ProductID < rows[j].ProductID
	})

	report.Products = rows
	report.Totals = domain.ProfitTotals{
		SalesValue:       utils.RoundWithTwoDecimalPlace(totals.SalesValue),
		CostValue:        utils.RoundWithTwoDecimalPlace(totals.CostValue),
		MarketingExpense: utils.RoundWithTwoDecimalPlace(totals.MarketingExpense),
		Profit:           utils.RoundWithTwoDecimalPlace(totals.Profit),
	}

	return report
}

// decorateProducts aplica os nomes de exibição, arredonda na exposição e
// ordena pelo nome do produto
func decorateProducts(achievements []domain.ProductAchievement, names map[string]string) []domain.ProductAchievement {
	decorated := make([]domain.ProductAchievement, 0, len(achievements))
	for _, achievement := range achievements {
		if name, ok := names[achievement.ProductID]; ok && name != "" {
			achievement.ProductName = name
		} else {
			achievement.ProductName = achievement.ProductID
		}
		decorated = append(decorated, roundAchievement(achievement))
	}

	sort.Slice(decorated, func(i, j int) bool {
		if decorated[i].ProductName != decorated[j].ProductName {
			return decorated[i].ProductName < decorated[j].ProductName
		}
		return decorated[i].ProductID < decorated[j].ProductID
	})

	return decorated
}

func roundAchievement(a domain.ProductAchievement) domain.ProductAchievement {
	a.SalesValue = utils.RoundWithTwoDecimalPlace(a.SalesValue)
	a.TargetValue = utils.RoundWithTwoDecimalPlace(a.TargetValue)
	a.AchievementPercent = utils.RoundWithTwoDecimalPlace(a.AchievementPercent)
	return a
}

func roundTotals(t domain.AchievementTotals) domain.AchievementTotals {
	t.SalesValue = utils.RoundWithTwoDecimalPlace(t.SalesValue)
	t.TargetValue = utils.RoundWithTwoDecimalPlace(t.TargetValue)
	t.AchievementPercent = utils.RoundWithTwoDecimalPlace(t.AchievementPercent)
	return t
}
