package targeting

import (
	"errors"
	"testing"
	"time"

	"github.com/mvcarvalho/sales-target-api/infrastructure/repository/mocks"
	"github.com/mvcarvalho/sales-target-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	productRepo       *mocks.MockProductRepository
	productTargetRepo *mocks.MockProductTargetRepository
	userTargetRepo    *mocks.MockUserTargetRepository
	phasingTableRepo  *mocks.MockPhasingTableRepository
}

func newServiceWithMocks(ctrl *gomock.Controller) (TargetService, *serviceMocks) {
	m := &serviceMocks{
		productRepo:       mocks.NewMockProductRepository(ctrl),
		productTargetRepo: mocks.NewMockProductTargetRepository(ctrl),
		userTargetRepo:    mocks.NewMockUserTargetRepository(ctrl),
		phasingTableRepo:  mocks.NewMockPhasingTableRepository(ctrl),
	}

	service := NewService(m.productRepo, m.productTargetRepo, m.userTargetRepo, m.phasingTableRepo)
	return service, m
}

func TestSetProductTarget_CreatePhased(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	product := &domain.Product{
		ID:       "prd001",
		Name:     "Armação X",
		Currency: domain.Currency{Code: "BRL", Symbol: "R$"},
	}

	table := &domain.PhasingTable{
		ID:   "crv001",
		Name: "Sazonal",
		Entries: []domain.PhasingEntry{
			{Month: "October", Percentage: "20%"},
			{Month: "November", Percentage: "30%"},
			{Month: "December", Percentage: "50%"},
		},
	}

	m.productRepo.EXPECT().GetProduct("prd001").Return(product, nil)
	m.phasingTableRepo.EXPECT().GetPhasingTable("crv001").Return(table, nil)
	m.productTargetRepo.EXPECT().GetByProductAndBusiness("prd001", "biz001").Return(nil, nil)

	var saved *domain.ProductTarget
	m.productTargetRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(target *domain.ProductTarget) error {
			saved = target
			return nil
		})

	tableID := "crv001"
	target, err := service.SetProductTarget(&domain.SetProductTargetRequest{
		ProductID:      "prd001",
		BusinessID:     "biz001",
		TargetUnits:    1000,
		TargetValue:    10000,
		UnitPrice:      10,
		TargetType:     domain.TargetTypeYearly,
		Phased:         true,
		PhasingTableID: &tableID,
		StartDate:      time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NotNil(t, target)
	require.NotNil(t, saved)

	assert.NotEmpty(t, target.ID)
	assert.Equal(t, "BRL", target.Currency.Code)
	require.Len(t, target.YearTargets, 1)

	year := target.YearTargets[0]
	assert.Equal(t, 2025, year.Year)
	require.Len(t, year.Months, 3)

	october := year.FindMonth("October")
	require.NotNil(t, october)
	assert.Equal(t, 200, october.TargetUnits)
	assert.Equal(t, 2000.0, october.TargetValue)
	assert.Equal(t, "20%", october.TargetPhases)
}

func TestSetProductTarget_UpdateMergesYearBucket(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	addedIn := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	existing := &domain.ProductTarget{
		ID:         "tgt001",
		ProductID:  "prd001",
		BusinessID: "biz001",
		YearTargets: []domain.YearTarget{
			{
				Year:       2025,
				TotalUnits: 100,
				TotalValue: 1000,
				Months: []domain.MonthTarget{
					{Month: "March", TargetUnits: 100, TargetValue: 1000, AddedIn: addedIn},
				},
			},
		},
	}

	m.productRepo.EXPECT().GetProduct("prd001").Return(&domain.Product{ID: "prd001"}, nil)
	m.productTargetRepo.EXPECT().GetByProductAndBusiness("prd001", "biz001").Return(existing, nil)
	m.productTargetRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

	target, err := service.SetProductTarget(&domain.SetProductTargetRequest{
		ProductID:   "prd001",
		BusinessID:  "biz001",
		TargetUnits: 50,
		TargetValue: 500,
		TargetType:  domain.TargetTypeMonthly,
		StartDate:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// O ID existente é preservado e o mês atualizado mantém o addedIn original
	assert.Equal(t, "tgt001", target.ID)
	require.Len(t, target.YearTargets, 1)

	march := target.YearTargets[0].FindMonth("March")
	require.NotNil(t, march)
	// floor(50/1) + 1 = 51 no caminho de atualização
	assert.Equal(t, 51, march.TargetUnits)
	assert.Equal(t, addedIn, march.AddedIn)
	require.NotNil(t, march.UpdatedIn)
}

func TestSetProductTarget_Errors(t *testing.T) {
	tests := []struct {
		name    string
		request *domain.SetProductTargetRequest
		setup   func(m *serviceMocks)
		wantErr error
	}{
		{
			name: "Tipo de meta desconhecido",
			request: &domain.SetProductTargetRequest{
				ProductID:  "prd001",
				TargetType: domain.TargetType("weekly"),
			},
			setup:   func(m *serviceMocks) {},
			wantErr: ErrInvalidTargetType,
		},
		{
			name: "Produto inexistente",
			request: &domain.SetProductTargetRequest{
				ProductID:  "prd404",
				BusinessID: "biz001",
				TargetType: domain.TargetTypeMonthly,
				StartDate:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			setup: func(m *serviceMocks) {
				m.productRepo.EXPECT().GetProduct("prd404").Return(nil, nil)
			},
			wantErr: ErrProductNotFound,
		},
		{
			name: "Meta faseada sem curva",
			request: &domain.SetProductTargetRequest{
				ProductID:  "prd001",
				BusinessID: "biz001",
				TargetType: domain.TargetTypeYearly,
				Phased:     true,
				StartDate:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			setup: func(m *serviceMocks) {
				m.productRepo.EXPECT().GetProduct("prd001").Return(&domain.Product{ID: "prd001"}, nil)
			},
			wantErr: ErrPhasingTableRequired,
		},
		{
			name: "Curva inexistente",
			request: func() *domain.SetProductTargetRequest {
				tableID := "crv404"
				return &domain.SetProductTargetRequest{
					ProductID:      "prd001",
					BusinessID:     "biz001",
					TargetType:     domain.TargetTypeYearly,
					Phased:         true,
					PhasingTableID: &tableID,
					StartDate:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
				}
			}(),
			setup: func(m *serviceMocks) {
				m.productRepo.EXPECT().GetProduct("prd001").Return(&domain.Product{ID: "prd001"}, nil)
				m.phasingTableRepo.EXPECT().GetPhasingTable("crv404").Return(nil, nil)
			},
			wantErr: ErrPhasingTableNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newServiceWithMocks(ctrl)
			tt.setup(m)

			_, err := service.SetProductTarget(tt.request)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestSetUserTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	existing := &domain.UserTarget{
		ID:         "utg001",
		UserID:     7,
		BusinessID: "biz001",
		Years: []domain.YearlyUserTargets{
			{
				Year: 2025,
				Products: []domain.ProductAllocation{
					{ProductID: "prd001", TargetUnits: 100, TargetValue: 1000},
					{ProductID: "prd002", TargetUnits: 50, TargetValue: 500},
				},
			},
		},
	}

	m.userTargetRepo.EXPECT().GetByUserAndBusiness(7, "biz001").Return(existing, nil)
	m.userTargetRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

	target, err := service.SetUserTarget(&domain.SetUserTargetRequest{
		UserID:     7,
		BusinessID: "biz001",
		Year:       2025,
		Products: []domain.ProductAllocation{
			{ProductID: "prd001", TargetUnits: 200, TargetValue: 2000},
			{ProductID: "prd003", TargetUnits: 10, TargetValue: 100},
		},
	})
	require.NoError(t, err)

	// Sem replace: alocações existentes atualizadas e novas adicionadas
	yearly := target.FindYear(2025)
	require.NotNil(t, yearly)
	require.Len(t, yearly.Products, 3)
	assert.Equal(t, 200, yearly.Products[0].TargetUnits)
	assert.Equal(t, "prd002", yearly.Products[1].ProductID)
	assert.Equal(t, "prd003", yearly.Products[2].ProductID)
}

func TestSetUserTarget_Replace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	existing := &domain.UserTarget{
		ID:         "utg001",
		UserID:     7,
		BusinessID: "biz001",
		Years: []domain.YearlyUserTargets{
			{Year: 2025, Products: []domain.ProductAllocation{{ProductID: "prd001", TargetUnits: 100}}},
		},
	}

	m.userTargetRepo.EXPECT().GetByUserAndBusiness(7, "biz001").Return(existing, nil)
	m.userTargetRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

	target, err := service.SetUserTarget(&domain.SetUserTargetRequest{
		UserID:     7,
		BusinessID: "biz001",
		Year:       2025,
		Products:   []domain.ProductAllocation{{ProductID: "prd009", TargetUnits: 1}},
		Replace:    true,
	})
	require.NoError(t, err)

	yearly := target.FindYear(2025)
	require.NotNil(t, yearly)
	require.Len(t, yearly.Products, 1)
	assert.Equal(t, "prd009", yearly.Products[0].ProductID)
}

func TestSavePhasingTable_NormalizesEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	m.phasingTableRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

	table, err := service.SavePhasingTable(&domain.SavePhasingTableRequest{
		BusinessID: "biz001",
		Name:       "Sazonal",
		Entries: []domain.PhasingEntry{
			{Month: "January", Percentage: "0.25"},
			{Month: "February", Percentage: " 75% "},
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, table.ID)
	// Frações e percentuais são normalizados para o formato com sufixo
	assert.Equal(t, "25%", table.Entries[0].Percentage)
	assert.Equal(t, "75%", table.Entries[1].Percentage)
}

func TestSavePhasingTable_RejectsMalformedEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newServiceWithMocks(ctrl)

	_, err := service.SavePhasingTable(&domain.SavePhasingTableRequest{
		BusinessID: "biz001",
		Name:       "Quebrada",
		Entries: []domain.PhasingEntry{
			{Month: "January", Percentage: "vinte"},
		},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPhasingEntry))
}
