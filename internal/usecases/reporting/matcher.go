package reporting

import (
	"sort"
	"time"

	"github.com/mvcarvalho/sales-target-api/internal/domain"
)

// MatchedSale representa o consolidado vendido de um produto dentro do
// conjunto casado: linhas duplicadas do mesmo produto já somadas
type MatchedSale struct {
	ProductID    string
	SoldQuantity int
	SalesValue   float64
}

// MatchFinalSales seleciona as versões de vendas autoritativas do período e
// achata as linhas por produto. Uma versão casa quando IsFinal é verdadeiro e
// a janela [startDate, endDate] do registro está inteiramente contida no
// período (checagem de contenção; registros que atravessam a borda do
// período ficam de fora). Linhas do mesmo produto são
// somadas uma única vez por registro físico, nunca por linha de junção.
func MatchFinalSales(sales []*domain.UserSales, period *domain.Period, productID string) []MatchedSale {
	byProduct := make(map[string]*MatchedSale)

	for _, record := range sales {
		if record == nil || !record.IsFinal {
			continue
		}

		if !period.Contains(normalizeDate(record.StartDate), normalizeDate(record.EndDate)) {
			continue
		}

		for _, line := range record.SalesData {
			if productID != "" && line.ProductID != productID {
				continue
			}

			matched, ok := byProduct[line.ProductID]
			if !ok {
				matched = &MatchedSale{ProductID: line.ProductID}
				byProduct[line.ProductID] = matched
			}

			matched.SoldQuantity += line.Quantity
			matched.SalesValue += line.Value()
		}
	}

	result := make([]MatchedSale, 0, len(byProduct))
	for _, matched := range byProduct {
		result = append(result, *matched)
	}

	// Ordenação estável para saída determinística entre execuções
	sort.Slice(result, func(i, j int) bool { return result[i].ProductID < result[j].ProductID })

	return result
}

// normalizeDate descarta a hora do dia para a checagem de contenção
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
