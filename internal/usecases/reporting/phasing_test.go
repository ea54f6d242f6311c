package reporting

import (
	"errors"
	"testing"
	"time"

	"github.com/mvcarvalho/sales-target-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMonthlyTargets_EvenSplit(t *testing.T) {
	def := domain.TargetDefinition{
		TargetUnits: 1200,
		TargetValue: 12000,
		UnitPrice:   10,
		TargetType:  domain.TargetTypeYearly,
		StartDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	years, err := ResolveMonthlyTargets(def)
	require.NoError(t, err)
	require.Len(t, years, 1)

	year := years[0]
	assert.Equal(t, 2025, year.Year)
	require.Len(t, year.Months, 12)

	// round(1200/12) + 1 = 101 unidades por mês
	total := 0
	for _, month := range year.Months {
		assert.Equal(t, 101, month.TargetUnits)
		assert.InDelta(t, 1000.0, month.TargetValue, 0.001)
		assert.False(t, month.Phased)
		total += month.TargetUnits
	}

	// A sobre-alocação garante que a soma nunca fique abaixo da meta
	assert.GreaterOrEqual(t, total, def.TargetUnits)
	assert.LessOrEqual(t, total, def.TargetUnits+12)
	assert.Equal(t, total, year.TotalUnits)
}

func TestResolveMonthlyTargets_StartMidYear(t *testing.T) {
	tests := []struct {
		name       string
		targetType domain.TargetType
		start      time.Time
		wantMonths []string
	}{
		{
			name:       "Mensal cobre um único mês",
			targetType: domain.TargetTypeMonthly,
			start:      time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC),
			wantMonths: []string{"May"},
		},
		{
			name:       "Trimestral cobre até o fim do trimestre",
			targetType: domain.TargetTypeQuarterly,
			start:      time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
			wantMonths: []string{"May", "June"},
		},
		{
			name:       "Anual cobre até o fim do ano calendário",
			targetType: domain.TargetTypeYearly,
			start:      time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
			wantMonths: []string{"October", "November", "December"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := domain.TargetDefinition{
				TargetUnits: 300,
				TargetValue: 3000,
				TargetType:  tt.targetType,
				StartDate:   tt.start,
			}

			years, err := ResolveMonthlyTargets(def)
			require.NoError(t, err)
			require.Len(t, years, 1)

			names := make([]string, 0, len(years[0].Months))
			for _, month := range years[0].Months {
				names = append(names, month.Month)
			}
			assert.ElementsMatch(t, tt.wantMonths, names)
		})
	}
}

func TestResolveMonthlyTargets_Bulk(t *testing.T) {
	def := domain.TargetDefinition{
		TargetUnits: 500,
		TargetValue: 50000,
		UnitPrice:   100,
		TargetType:  domain.TargetTypeBulk,
		StartDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	years, err := ResolveMonthlyTargets(def)
	require.NoError(t, err)
	require.Len(t, years, 1)
	require.Len(t, years[0].Months, 1)

	// Bulk vira um único balde sintético rotulado pelo ano
	bucket := years[0].Months[0]
	assert.Equal(t, "2025", bucket.Month)
	assert.Equal(t, 500, bucket.TargetUnits)
	assert.Equal(t, 50000.0, bucket.TargetValue)
	assert.Equal(t, "100%", bucket.TargetPhases)
}

func TestResolveMonthlyTargets_Phased(t *testing.T) {
	table := &domain.PhasingTable{
		ID:   "crv001",
		Name: "Sazonal",
		Entries: []domain.PhasingEntry{
			{Month: "January", Percentage: "10%"},
			{Month: "February", Percentage: "30%"},
			{Month: "March", Percentage: "60%"},
		},
	}

	def := domain.TargetDefinition{
		TargetUnits:  1000,
		TargetValue:  10000,
		TargetType:   domain.TargetTypeQuarterly,
		Phased:       true,
		PhasingTable: table,
		StartDate:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	years, err := ResolveMonthlyTargets(def)
	require.NoError(t, err)
	require.Len(t, years, 1)

	year := years[0]
	require.Len(t, year.Months, 3)

	january := year.FindMonth("January")
	require.NotNil(t, january)
	assert.Equal(t, 100, january.TargetUnits)
	assert.Equal(t, 1000.0, january.TargetValue)
	assert.True(t, january.Phased)
	assert.Equal(t, "10%", january.TargetPhases)
	require.NotNil(t, january.PhasingTable)
	assert.Equal(t, "crv001", *january.PhasingTable)

	march := year.FindMonth("March")
	require.NotNil(t, march)
	assert.Equal(t, 600, march.TargetUnits)
	assert.Equal(t, 6000.0, march.TargetValue)
}

func TestResolveMonthlyTargets_PhasedErrors(t *testing.T) {
	tests := []struct {
		name    string
		table   *domain.PhasingTable
		wantErr error
	}{
		{
			name:    "Meta faseada sem curva",
			table:   nil,
			wantErr: ErrPhasingTableIncomplete,
		},
		{
			name: "Curva não cobre o mês - falha, nunca assume zero",
			table: &domain.PhasingTable{
				Name: "Incompleta",
				Entries: []domain.PhasingEntry{
					{Month: "January", Percentage: "50%"},
				},
			},
			wantErr: ErrPhasingTableIncomplete,
		},
		{
			name: "Percentual malformado",
			table: &domain.PhasingTable{
				Name: "Malformada",
				Entries: []domain.PhasingEntry{
					{Month: "January", Percentage: "dez"},
					{Month: "February", Percentage: "30%"},
					{Month: "March", Percentage: "60%"},
				},
			},
			wantErr: ErrInvalidPhasingFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := domain.TargetDefinition{
				TargetUnits:  1000,
				TargetValue:  10000,
				TargetType:   domain.TargetTypeQuarterly,
				Phased:       true,
				PhasingTable: tt.table,
				StartDate:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			}

			_, err := ResolveMonthlyTargets(def)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))

			var reportErr *ReportError
			require.True(t, errors.As(err, &reportErr))
			assert.NotZero(t, reportErr.Year)
		})
	}
}

func TestResolveMonthlyTargetsForUpdate_FloorSplit(t *testing.T) {
	def := domain.TargetDefinition{
		TargetUnits: 1000,
		TargetValue: 12000,
		TargetType:  domain.TargetTypeYearly,
		StartDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	years, err := ResolveMonthlyTargetsForUpdate(def)
	require.NoError(t, err)
	require.Len(t, years, 1)

	// floor(1000/12) + 1 = 84 no caminho de atualização
	// (o de criação daria round(1000/12) + 1 = 84 também; com 1001 divergem)
	assert.Equal(t, 84, years[0].Months[0].TargetUnits)

	def.TargetUnits = 1006
	created, err := ResolveMonthlyTargets(def)
	require.NoError(t, err)
	updated, err := ResolveMonthlyTargetsForUpdate(def)
	require.NoError(t, err)

	// round(1006/12)+1 = 85, floor(1006/12)+1 = 84
	assert.Equal(t, 85, created[0].Months[0].TargetUnits)
	assert.Equal(t, 84, updated[0].Months[0].TargetUnits)
}

func TestMergeYearTargets(t *testing.T) {
	addedIn := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	existing := []domain.YearTarget{
		{
			Year:       2025,
			TotalUnits: 200,
			TotalValue: 2000,
			Months: []domain.MonthTarget{
				{Month: "January", TargetUnits: 100, TargetValue: 1000, AddedIn: addedIn},
				{Month: "February", TargetUnits: 100, TargetValue: 1000, AddedIn: addedIn},
			},
		},
	}

	t.Run("Merge preserva addedIn e marca updatedIn", func(t *testing.T) {
		incoming := []domain.YearTarget{
			{
				Year: 2025,
				Months: []domain.MonthTarget{
					{Month: "February", TargetUnits: 150, TargetValue: 1500, AddedIn: now},
					{Month: "March", TargetUnits: 50, TargetValue: 500, AddedIn: now},
				},
			},
		}

		merged := MergeYearTargets(existing, incoming, false, now)
		require.Len(t, merged, 1)

		year := merged[0]
		require.Len(t, year.Months, 3)

		february := year.FindMonth("February")
		require.NotNil(t, february)
		assert.Equal(t, 150, february.TargetUnits)
		assert.Equal(t, addedIn, february.AddedIn)
		require.NotNil(t, february.UpdatedIn)
		assert.Equal(t, now, *february.UpdatedIn)

		january := year.FindMonth("January")
		require.NotNil(t, january)
		assert.Equal(t, 100, january.TargetUnits)
		assert.Nil(t, january.UpdatedIn)

		// Totais do ano recalculados após o merge
		assert.Equal(t, 300, year.TotalUnits)
		assert.Equal(t, 3000.0, year.TotalValue)
	})

	t.Run("Replace substitui o balde do ano por inteiro", func(t *testing.T) {
		incoming := []domain.YearTarget{
			{
				Year:       2025,
				TotalUnits: 50,
				TotalValue: 500,
				Months: []domain.MonthTarget{
					{Month: "March", TargetUnits: 50, TargetValue: 500, AddedIn: now},
				},
			},
		}

		merged := MergeYearTargets(existing, incoming, true, now)
		require.Len(t, merged, 1)
		require.Len(t, merged[0].Months, 1)
		assert.Equal(t, "March", merged[0].Months[0].Month)
		assert.Equal(t, 50, merged[0].TotalUnits)
	})

	t.Run("Ano novo é adicionado e ordenado", func(t *testing.T) {
		incoming := []domain.YearTarget{
			{Year: 2024, Months: []domain.MonthTarget{{Month: "December", TargetUnits: 10, AddedIn: now}}},
		}

		merged := MergeYearTargets(existing, incoming, false, now)
		require.Len(t, merged, 2)
		assert.Equal(t, 2024, merged[0].Year)
		assert.Equal(t, 2025, merged[1].Year)
	})
}

func TestResolveUserMonthlyTargets(t *testing.T) {
	period, err := ResolvePeriod(1, 2, 2025)
	require.NoError(t, err)

	productYear := &domain.YearTarget{
		Year: 2025,
		Months: []domain.MonthTarget{
			{Month: "January", TargetUnits: 120, UnitPrice: 10, TargetValue: 1200, TargetPhases: "10%", AddedIn: time.Now()},
			{Month: "February", TargetUnits: 240, UnitPrice: 10, TargetValue: 2400, TargetPhases: "20%", AddedIn: time.Now()},
		},
	}

	alloc := domain.ProductAllocation{ProductID: "prd001", TargetUnits: 600, TargetValue: 6000}

	targets, err := ResolveUserMonthlyTargets(alloc, productYear, period)
	require.NoError(t, err)
	require.Len(t, targets, 2)

	// Alocação do usuário multiplicada pelo faseamento do mês
	assert.Equal(t, "January", targets[0].Month)
	assert.Equal(t, 60, targets[0].TargetUnits)
	assert.InDelta(t, 600.0, targets[0].TargetValue, 0.001)

	assert.Equal(t, "February", targets[1].Month)
	assert.Equal(t, 120, targets[1].TargetUnits)
	assert.InDelta(t, 1200.0, targets[1].TargetValue, 0.001)
}

func TestResolveUserMonthlyTargets_MissingYear(t *testing.T) {
	period, err := ResolveMonth(1, 2025)
	require.NoError(t, err)

	targets, err := ResolveUserMonthlyTargets(domain.ProductAllocation{ProductID: "prd001"}, nil, period)
	require.NoError(t, err)
	assert.Nil(t, targets)
}
