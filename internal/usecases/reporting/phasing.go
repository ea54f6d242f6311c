package reporting

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/mvcarvalho/sales-target-api/internal/domain"
)

// ResolveMonthlyTargets resolve uma definição de meta em fatias mensais
// agrupadas por ano. Caminho de criação: a divisão igualitária arredonda para
// cima (round + 1) para garantir cobertura do ano inteiro mesmo com resto.
func ResolveMonthlyTargets(def domain.TargetDefinition) ([]domain.YearTarget, error) {
	return resolveMonthlyTargets(def, func(perMonth float64) int {
		return int(math.Round(perMonth)) + 1
	})
}

// ResolveMonthlyTargetsForUpdate resolve fatias mensais para o caminho de
// atualização de uma meta existente (floor + 1 em vez de round + 1)
func ResolveMonthlyTargetsForUpdate(def domain.TargetDefinition) ([]domain.YearTarget, error) {
	return resolveMonthlyTargets(def, func(perMonth float64) int {
		return int(math.Floor(perMonth)) + 1
	})
}

func resolveMonthlyTargets(def domain.TargetDefinition, evenSplit func(float64) int) ([]domain.YearTarget, error) {
	now := time.Now()

	// Bulk: o valor inteiro vai para um único balde sintético rotulado pelo ano
	if def.TargetType == domain.TargetTypeBulk {
		year := def.StartDate.Year()
		month := domain.MonthTarget{
			Month:        strconv.Itoa(year),
			TargetUnits:  def.TargetUnits,
			UnitPrice:    def.UnitPrice,
			TargetValue:  def.TargetValue,
			Phased:       false,
			TargetPhases: "100%",
			AddedIn:      now,
		}
		return groupByYear(map[string]int{month.Month: year}, []domain.MonthTarget{month}), nil
	}

	months := coveredMonths(def.TargetType, def.StartDate)
	if len(months) == 0 {
		return nil, &ReportError{
			Err:     ErrInvalidRange,
			Year:    def.StartDate.Year(),
			Details: "meta sem meses cobertos",
		}
	}

	if def.Phased {
		return resolvePhased(def, months, now)
	}

	return resolveEvenSplit(def, months, evenSplit, now), nil
}

// coveredMonths determina os meses cobertos pela meta a partir do tipo e da
// data de início: mensal cobre um mês, trimestral até o fim do trimestre,
// anual até o fim do ano calendário
func coveredMonths(targetType domain.TargetType, startDate time.Time) []time.Time {
	start := time.Date(startDate.Year(), startDate.Month(), 1, 0, 0, 0, 0, time.UTC)

	var count int
	switch targetType {
	case domain.TargetTypeMonthly:
		count = 1
	case domain.TargetTypeQuarterly:
		count = 3 - (int(start.Month())-1)%3
	case domain.TargetTypeYearly:
		count = 12 - int(start.Month()) + 1
	default:
		return nil
	}

	months := make([]time.Time, 0, count)
	for i := 0; i < count; i++ {
		months = append(months, start.AddDate(0, i, 0))
	}
	return months
}

// resolvePhased distribui a meta conforme a curva de faseamento. Falha se a
// curva não cobrir algum mês necessário; nunca assume zero silenciosamente.
func resolvePhased(def domain.TargetDefinition, months []time.Time, now time.Time) ([]domain.YearTarget, error) {
	if def.PhasingTable == nil {
		return nil, &ReportError{
			Err:     ErrPhasingTableIncomplete,
			Year:    months[0].Year(),
			Details: "meta faseada sem curva de faseamento",
		}
	}

	monthYears := make(map[string]int, len(months))
	resolved := make([]domain.MonthTarget, 0, len(months))

	var tableID *string
	if def.PhasingTable.ID != "" {
		id := def.PhasingTable.ID
		tableID = &id
	}

	for _, m := range months {
		name := domain.MonthName(m.Month())

		entry := def.PhasingTable.FindEntry(name)
		if entry == nil {
			return nil, &ReportError{
				Err:     ErrPhasingTableIncomplete,
				Month:   name,
				Year:    m.Year(),
				Details: fmt.Sprintf("curva %q não cobre o mês", def.PhasingTable.Name),
			}
		}

		percentage, err := domain.ParsePercentage(entry.Percentage)
		if err != nil {
			return nil, &ReportError{
				Err:     ErrInvalidPhasingFormat,
				Month:   name,
				Year:    m.Year(),
				Details: err.Error(),
			}
		}

		monthYears[name] = m.Year()
		resolved = append(resolved, domain.MonthTarget{
			Month:        name,
			TargetUnits:  int(math.Round(percentage.Of(float64(def.TargetUnits)))),
			UnitPrice:    def.UnitPrice,
			TargetValue:  math.Round(percentage.Of(def.TargetValue)),
			Phased:       true,
			PhasingTable: tableID,
			TargetPhases: percentage.String(),
			AddedIn:      now,
		})
	}

	return groupByYear(monthYears, resolved), nil
}

// resolveEvenSplit divide a meta igualmente entre os meses cobertos. A
// sobre-alocação de uma unidade por mês é intencional: garante que a soma das
// fatias nunca fique abaixo da meta do ano.
func resolveEvenSplit(def domain.TargetDefinition, months []time.Time, split func(float64) int, now time.Time) []domain.YearTarget {
	n := len(months)
	perMonthUnits := split(float64(def.TargetUnits) / float64(n))
	perMonthValue := def.TargetValue / float64(n)
	phases := strconv.FormatFloat(100.0/float64(n), 'f', -1, 64) + "%"

	monthYears := make(map[string]int, n)
	resolved := make([]domain.MonthTarget, 0, n)
	for _, m := range months {
		name := domain.MonthName(m.Month())
		monthYears[name] = m.Year()
		resolved = append(resolved, domain.MonthTarget{
			Month:        name,
			TargetUnits:  perMonthUnits,
			UnitPrice:    def.UnitPrice,
			TargetValue:  perMonthValue,
			Phased:       false,
			TargetPhases: phases,
			AddedIn:      now,
		})
	}

	return groupByYear(monthYears, resolved)
}

// groupByYear agrupa fatias mensais em contêineres anuais com totais somados
func groupByYear(monthYears map[string]int, months []domain.MonthTarget) []domain.YearTarget {
	byYear := make(map[int]*domain.YearTarget)

	for _, month := range months {
		year := monthYears[month.Month]
		bucket, ok := byYear[year]
		if !ok {
			bucket = &domain.YearTarget{Year: year}
			byYear[year] = bucket
		}
		bucket.TotalUnits += month.TargetUnits
		bucket.TotalValue += month.TargetValue
		bucket.Months = append(bucket.Months, month)
	}

	years := make([]domain.YearTarget, 0, len(byYear))
	for _, bucket := range byYear {
		years = append(years, *bucket)
	}
	sort.Slice(years, func(i, j int) bool { return years[i].Year < years[j].Year })

	return years
}

// MergeYearTargets aplica fatias recém-resolvidas sobre uma meta existente.
// Com replace o balde do ano é substituído por inteiro; sem replace, meses
// novos são adicionados e meses já cobertos têm os valores atualizados
// preservando o addedIn original, com updatedIn marcado para agora.
func MergeYearTargets(existing, incoming []domain.YearTarget, replace bool, now time.Time) []domain.YearTarget {
	merged := make([]domain.YearTarget, len(existing))
	copy(merged, existing)

	for _, in := range incoming {
		idx := -1
		for i := range merged {
			if merged[i].Year == in.Year {
				idx = i
				break
			}
		}

		if idx == -1 {
			merged = append(merged, in)
			continue
		}

		if replace {
			merged[idx] = in
			continue
		}

		bucket := merged[idx]
		for _, month := range in.Months {
			current := bucket.FindMonth(month.Month)
			if current == nil {
				bucket.Months = append(bucket.Months, month)
				continue
			}

			added := current.AddedIn
			*current = month
			current.AddedIn = added
			updated := now
			current.UpdatedIn = &updated
		}

		// Recalcular os totais do ano após o merge
		bucket.TotalUnits = 0
		bucket.TotalValue = 0
		for _, month := range bucket.Months {
			bucket.TotalUnits += month.TargetUnits
			bucket.TotalValue += month.TargetValue
		}
		merged[idx] = bucket
	}

	sort.Slice(merged, func(i, j int) bool { return merged[i].Year < merged[j].Year })

	return merged
}

// ResolveUserMonthlyTargets calcula as metas mensais de um usuário para um
// produto: a alocação anual do usuário multiplicada pelo percentual de
// faseamento de cada mês da meta do produto
func ResolveUserMonthlyTargets(alloc domain.ProductAllocation, productYear *domain.YearTarget, period *domain.Period) ([]domain.MonthTarget, error) {
	if productYear == nil {
		return nil, nil
	}

	targets := make([]domain.MonthTarget, 0, len(period.MonthNames))
	for _, name := range period.MonthNames {
		month := productYear.FindMonth(name)
		if month == nil {
			continue
		}

		percentage, err := domain.ParsePercentage(month.TargetPhases)
		if err != nil {
			return nil, &ReportError{
				Err:     ErrInvalidPhasingFormat,
				Product: alloc.ProductID,
				Month:   name,
				Year:    period.Year,
				Details: err.Error(),
			}
		}

		targets = append(targets, domain.MonthTarget{
			Month:        name,
			TargetUnits:  int(math.Round(percentage.Of(float64(alloc.TargetUnits)))),
			UnitPrice:    month.UnitPrice,
			TargetValue:  percentage.Of(alloc.TargetValue),
			Phased:       month.Phased,
			PhasingTable: month.PhasingTable,
			TargetPhases: month.TargetPhases,
			AddedIn:      month.AddedIn,
		})
	}

	return targets, nil
}
