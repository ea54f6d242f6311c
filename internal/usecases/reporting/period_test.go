package reporting

import (
	"errors"
	"testing"
	"time"

	"github.com/mvcarvalho/sales-target-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePeriod(t *testing.T) {
	tests := []struct {
		name       string
		startMonth int
		endMonth   int
		year       int
		wantErr    error
		validate   func(t *testing.T, got *domain.Period)
	}{
		{
			name:       "Mês único - limites do próprio mês",
			startMonth: 3,
			endMonth:   3,
			year:       2025,
			validate: func(t *testing.T, got *domain.Period) {
				assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), got.StartDate)
				assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), got.EndDate)
				assert.Equal(t, []string{"March"}, got.MonthNames)
			},
		},
		{
			name:       "Fevereiro em ano bissexto - último dia 29",
			startMonth: 2,
			endMonth:   2,
			year:       2024,
			validate: func(t *testing.T, got *domain.Period) {
				assert.Equal(t, 29, got.EndDate.Day())
			},
		},
		{
			name:       "Fevereiro em ano não bissexto - último dia 28",
			startMonth: 2,
			endMonth:   2,
			year:       2025,
			validate: func(t *testing.T, got *domain.Period) {
				assert.Equal(t, 28, got.EndDate.Day())
			},
		},
		{
			name:       "Dezembro - último dia 31, sem vazar para o ano seguinte",
			startMonth: 12,
			endMonth:   12,
			year:       2025,
			validate: func(t *testing.T, got *domain.Period) {
				assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), got.EndDate)
			},
		},
		{
			name:       "Ano inteiro - doze nomes de meses",
			startMonth: 1,
			endMonth:   12,
			year:       2025,
			validate: func(t *testing.T, got *domain.Period) {
				assert.Len(t, got.MonthNames, 12)
				assert.Equal(t, "January", got.MonthNames[0])
				assert.Equal(t, "December", got.MonthNames[11])
			},
		},
		{
			name:       "Intervalo invertido - erro",
			startMonth: 5,
			endMonth:   2,
			year:       2025,
			wantErr:    ErrInvalidRange,
		},
		{
			name:       "Mês fora de domínio - erro",
			startMonth: 0,
			endMonth:   13,
			year:       2025,
			wantErr:    ErrInvalidRange,
		},
		{
			name:       "Ano fora de domínio - erro",
			startMonth: 1,
			endMonth:   1,
			year:       0,
			wantErr:    ErrInvalidRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePeriod(tt.startMonth, tt.endMonth, tt.year)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))

				var reportErr *ReportError
				assert.True(t, errors.As(err, &reportErr))
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			tt.validate(t, got)
		})
	}
}

func TestResolveMonth(t *testing.T) {
	period, err := ResolveMonth(1, 2025)
	require.NoError(t, err)

	assert.Equal(t, time.January, period.StartMonth)
	assert.Equal(t, time.January, period.EndMonth)
	assert.Equal(t, []string{"January"}, period.MonthNames)
}
