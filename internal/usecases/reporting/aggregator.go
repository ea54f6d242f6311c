package reporting

import (
	"sort"

	"github.com/mvcarvalho/sales-target-api/internal/domain"
)

// ProductMonthTarget associa uma fatia mensal de meta ao seu produto para a
// junção relacional (linhas de venda ⋈ metas mensais por produto)
type ProductMonthTarget struct {
	ProductID string
	Target    domain.MonthTarget
}

// achievementAccumulator acumula valores não arredondados por produto em uma
// única passada, substituindo o padrão reduce-com-findOrPush dos endpoints
type achievementAccumulator struct {
	soldQuantity int
	salesValue   float64
	targetUnits  int
	targetValue  float64
}

// ComputeAchievement junta as vendas casadas com as metas mensais faseadas
// por produto e calcula o percentual de atingimento. Um produto com venda e
// sem meta (ou vice-versa) ainda aparece na saída com o lado ausente zerado.
// A acumulação interna usa valores não arredondados; o arredondamento para
// duas casas acontece apenas na exposição, nos montadores.
func ComputeAchievement(matched []MatchedSale, targets []ProductMonthTarget) []domain.ProductAchievement {
	byProduct := make(map[string]*achievementAccumulator)

	accumulator := func(productID string) *achievementAccumulator {
		acc, ok := byProduct[productID]
		if !ok {
			acc = &achievementAccumulator{}
			byProduct[productID] = acc
		}
		return acc
	}

	for _, sale := range matched {
		acc := accumulator(sale.ProductID)
		acc.soldQuantity += sale.SoldQuantity
		acc.salesValue += sale.SalesValue
	}

	for _, target := range targets {
		acc := accumulator(target.ProductID)
		acc.targetUnits += target.Target.TargetUnits
		acc.targetValue += target.Target.TargetValue
	}

	achievements := make([]domain.ProductAchievement, 0, len(byProduct))
	for productID, acc := range byProduct {
		achievements = append(achievements, domain.ProductAchievement{
			ProductID:          productID,
			SoldQuantity:       acc.soldQuantity,
			SalesValue:         acc.salesValue,
			TargetUnits:        acc.targetUnits,
			TargetValue:        acc.targetValue,
			AchievementPercent: achievementPercent(acc.salesValue, acc.targetValue),
		})
	}

	sort.Slice(achievements, func(i, j int) bool {
		return achievements[i].ProductID < achievements[j].ProductID
	})

	return achievements
}

// achievementPercent calcula vendas sobre meta. Meta zero resulta em zero,
// nunca em divisão por zero, NaN ou infinito.
func achievementPercent(salesValue, targetValue float64) float64 {
	if targetValue == 0 {
		return 0
	}
	return salesValue / targetValue * 100
}

// GroupKeyFn extrai a chave de agrupamento de um atingimento
type GroupKeyFn func(a domain.ProductAchievement) string

// RollUp agrega atingimentos por chave. O percentual agregado é sempre
// soma-depois-divide: soma dos valores vendidos sobre a soma das metas dos
// filhos, nunca a média dos percentuais filhos. Vale para todos os níveis
// de agrupamento (produto→usuário, usuário→equipe, equipe→negócio).
func RollUp(items []domain.ProductAchievement, key GroupKeyFn) map[string]domain.AchievementTotals {
	groups := make(map[string]*achievementAccumulator)

	for _, item := range items {
		k := key(item)
		acc, ok := groups[k]
		if !ok {
			acc = &achievementAccumulator{}
			groups[k] = acc
		}
		acc.soldQuantity += item.SoldQuantity
		acc.salesValue += item.SalesValue
		acc.targetUnits += item.TargetUnits
		acc.targetValue += item.TargetValue
	}

	totals := make(map[string]domain.AchievementTotals, len(groups))
	for k, acc := range groups {
		totals[k] = domain.AchievementTotals{
			SoldQuantity:       acc.soldQuantity,
			SalesValue:         acc.salesValue,
			TargetUnits:        acc.targetUnits,
			TargetValue:        acc.targetValue,
			AchievementPercent: achievementPercent(acc.salesValue, acc.targetValue),
		}
	}

	return totals
}

// Totals agrega todos os atingimentos em um único total soma-depois-divide
func Totals(items []domain.ProductAchievement) domain.AchievementTotals {
	rolled := RollUp(items, func(domain.ProductAchievement) string { return "" })
	return rolled[""]
}
