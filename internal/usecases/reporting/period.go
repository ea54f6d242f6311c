package reporting

import (
	"fmt"
	"time"

	"github.com/mvcarvalho/sales-target-api/internal/domain"
)

// ResolvePeriod converte um intervalo (mêsInicial, mêsFinal, ano) em limites
// concretos de calendário. A aritmética acontece sobre pares inteiros
// (ano, mês); os nomes dos meses só são materializados na borda, o que evita
// a ambiguidade de listas de nomes quando o intervalo atravessa o ano.
// Intervalos invertidos ou fora de domínio falham com ErrInvalidRange.
func ResolvePeriod(startMonth, endMonth, year int) (*domain.Period, error) {
	if year < 1 {
		return nil, &ReportError{
			Err:     ErrInvalidRange,
			Year:    year,
			Details: "ano fora de domínio",
		}
	}

	if startMonth < 1 || startMonth > 12 || endMonth < 1 || endMonth > 12 {
		return nil, &ReportError{
			Err:     ErrInvalidRange,
			Year:    year,
			Details: fmt.Sprintf("mês fora de domínio (início: %d, fim: %d)", startMonth, endMonth),
		}
	}

	if startMonth > endMonth {
		return nil, &ReportError{
			Err:     ErrInvalidRange,
			Year:    year,
			Details: fmt.Sprintf("mês final (%d) anterior ao mês inicial (%d)", endMonth, startMonth),
		}
	}

	startDate := time.Date(year, time.Month(startMonth), 1, 0, 0, 0, 0, time.UTC)

	// Truque do dia zero: o dia 0 do mês seguinte é o último dia do mês final
	endDate := time.Date(year, time.Month(endMonth)+1, 0, 0, 0, 0, 0, time.UTC)

	months := make([]time.Month, 0, endMonth-startMonth+1)
	monthNames := make([]string, 0, endMonth-startMonth+1)
	for m := startMonth; m <= endMonth; m++ {
		months = append(months, time.Month(m))
		monthNames = append(monthNames, domain.MonthName(time.Month(m)))
	}

	return &domain.Period{
		Year:       year,
		StartMonth: time.Month(startMonth),
		EndMonth:   time.Month(endMonth),
		StartDate:  startDate,
		EndDate:    endDate,
		Months:     months,
		MonthNames: monthNames,
	}, nil
}

// ResolveMonth resolve o período de um único mês
func ResolveMonth(month, year int) (*domain.Period, error) {
	return ResolvePeriod(month, month, year)
}
