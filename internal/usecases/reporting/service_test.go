package reporting

import (
	"context"
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
	businessRepo      *mocks.MockBusinessRepository
	productRepo       *mocks.MockProductRepository
	productTargetRepo *mocks.MockProductTargetRepository
	userTargetRepo    *mocks.MockUserTargetRepository
	userSalesRepo     *mocks.MockUserSalesRepository
	expenseRepo       *mocks.MockExpenseRepository
	userRepo          *mocks.MockUserRepository
}

func newServiceWithMocks(ctrl *gomock.Controller) (Reporter, *serviceMocks) {
	m := &serviceMocks{
		businessRepo:      mocks.NewMockBusinessRepository(ctrl),
		productRepo:       mocks.NewMockProductRepository(ctrl),
		productTargetRepo: mocks.NewMockProductTargetRepository(ctrl),
		userTargetRepo:    mocks.NewMockUserTargetRepository(ctrl),
		userSalesRepo:     mocks.NewMockUserSalesRepository(ctrl),
		expenseRepo:       mocks.NewMockExpenseRepository(ctrl),
		userRepo:          mocks.NewMockUserRepository(ctrl),
	}

	service := NewService(
		m.businessRepo,
		m.productRepo,
		m.productTargetRepo,
		m.userTargetRepo,
		m.userSalesRepo,
		m.expenseRepo,
		m.userRepo,
	)

	return service, m
}

func TestService_MonthlyUserAchievement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	business := &domain.Business{
		ID:       "biz001",
		Name:     "Ótica Central",
		Currency: domain.Currency{Code: "BRL", Symbol: "R$"},
	}

	m.businessRepo.EXPECT().
		GetBusiness("biz001").
		Return(business, nil)

	// Versão final de janeiro: 150 unidades a R$ 10
	m.userSalesRepo.EXPECT().
		ListFinalByUserAndPeriod(7, gomock.Any(), gomock.Any()).
		Return([]*domain.UserSales{
			{
				ID:          "ver001",
				UserID:      7,
				BusinessIDs: []string{"biz001"},
				IsFinal:     true,
				StartDate:   time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
				EndDate:     time.Date(2025, 1, 28, 0, 0, 0, 0, time.UTC),
				SalesData: []domain.SalesLine{
					{ProductID: "prd001", Quantity: 150, UnitPrice: 10},
				},
			},
		}, nil)

	// Meta anual de 1200 unidades / R$ 12.000 faseada com 10% em janeiro
	m.productTargetRepo.EXPECT().
		ListByBusinessIDs([]string{"biz001"}).
		Return([]*domain.ProductTarget{
			{
				ID:         "tgt001",
				ProductID:  "prd001",
				BusinessID: "biz001",
				YearTargets: []domain.YearTarget{
					{
						Year: 2025,
						Months: []domain.MonthTarget{
							{Month: "January", TargetUnits: 120, UnitPrice: 10, TargetValue: 1200, Phased: true, TargetPhases: "10%"},
							{Month: "February", TargetUnits: 240, UnitPrice: 10, TargetValue: 2400, Phased: true, TargetPhases: "20%"},
						},
					},
				},
			},
		}, nil)

	m.userTargetRepo.EXPECT().
		ListByUser(7).
		Return(nil, nil)

	m.productRepo.EXPECT().
		ListByBusinessIDs([]string{"biz001"}).
		Return([]*domain.Product{
			{ID: "prd001", BusinessID: "biz001", Name: "Armação X"},
		}, nil)

	report, err := service.MonthlyUserAchievement(context.Background(), 7, "biz001", 1, 2025)
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, "biz001", report.BusinessID)
	assert.Equal(t, "R$", report.CurrencySymbol)
	assert.Equal(t, "January", report.Month)

	// Só a fatia de janeiro entra: 1500 vendidos sobre 1200 de meta = 125%
	require.Len(t, report.Products, 1)
	product := report.Products[0]
	assert.Equal(t, "Armação X", product.ProductName)
	assert.Equal(t, 150, product.SoldQuantity)
	assert.Equal(t, 1500.0, product.SalesValue)
	assert.Equal(t, 120, product.TargetUnits)
	assert.Equal(t, 1200.0, product.TargetValue)
	assert.Equal(t, 125.0, product.AchievementPercent)
}

func TestService_MonthlyUserAchievement_UserAllocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	m.businessRepo.EXPECT().
		GetBusiness("biz001").
		Return(&domain.Business{ID: "biz001"}, nil)

	m.userSalesRepo.EXPECT().
		ListFinalByUserAndPeriod(7, gomock.Any(), gomock.Any()).
		Return(nil, nil)

	m.productTargetRepo.EXPECT().
		ListByBusinessIDs([]string{"biz001"}).
		Return([]*domain.ProductTarget{
			{
				ProductID:  "prd001",
				BusinessID: "biz001",
				YearTargets: []domain.YearTarget{
					{
						Year: 2025,
						Months: []domain.MonthTarget{
							{Month: "January", TargetUnits: 120, TargetValue: 1200, TargetPhases: "10%"},
						},
					},
				},
			},
		}, nil)

	// Alocação anual do usuário: 600 unidades / R$ 6.000 para o produto
	m.userTargetRepo.EXPECT().
		ListByUser(7).
		Return([]*domain.UserTarget{
			{
				UserID:     7,
				BusinessID: "biz001",
				Years: []domain.YearlyUserTargets{
					{
						Year: 2025,
						Products: []domain.ProductAllocation{
							{ProductID: "prd001", TargetUnits: 600, TargetValue: 6000},
						},
					},
				},
			},
		}, nil)

	m.productRepo.EXPECT().
		ListByBusinessIDs([]string{"biz001"}).
		Return(nil, nil)

	report, err := service.MonthlyUserAchievement(context.Background(), 7, "biz001", 1, 2025)
	require.NoError(t, err)

	// A meta do usuário é a alocação multiplicada pelos 10% de janeiro
	require.Len(t, report.Products, 1)
	assert.Equal(t, 60, report.Products[0].TargetUnits)
	assert.Equal(t, 600.0, report.Products[0].TargetValue)
}

func TestService_MonthlyUserAchievement_NoData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	m.businessRepo.EXPECT().
		GetBusiness("biz001").
		Return(&domain.Business{ID: "biz001"}, nil)
	m.userSalesRepo.EXPECT().
		ListFinalByUserAndPeriod(7, gomock.Any(), gomock.Any()).
		Return(nil, nil)
	m.productTargetRepo.EXPECT().
		ListByBusinessIDs([]string{"biz001"}).
		Return(nil, nil)
	m.userTargetRepo.EXPECT().
		ListByUser(7).
		Return(nil, nil)
	m.productRepo.EXPECT().
		ListByBusinessIDs([]string{"biz001"}).
		Return(nil, nil)

	// Sem dados o relatório sai vazio, nunca erro
	report, err := service.MonthlyUserAchievement(context.Background(), 7, "biz001", 1, 2025)
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Empty(t, report.Products)
	assert.Equal(t, domain.AchievementTotals{}, report.Totals)
}

func TestService_MonthlyUserAchievement_InvalidPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newServiceWithMocks(ctrl)

	_, err := service.MonthlyUserAchievement(context.Background(), 7, "biz001", 13, 2025)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRange))
}

func TestService_MonthlyUserAchievement_RetriesLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	m.businessRepo.EXPECT().
		GetBusiness("biz001").
		Return(&domain.Business{ID: "biz001"}, nil)

	m.userSalesRepo.EXPECT().
		ListFinalByUserAndPeriod(7, gomock.Any(), gomock.Any()).
		Return(nil, nil)
	m.userTargetRepo.EXPECT().
		ListByUser(7).
		Return(nil, nil)
	m.productRepo.EXPECT().
		ListByBusinessIDs([]string{"biz001"}).
		Return(nil, nil)

	// A consulta de metas falha nas três tentativas
	m.productTargetRepo.EXPECT().
		ListByBusinessIDs([]string{"biz001"}).
		Return(nil, errors.New("connection refused")).
		Times(3)

	_, err := service.MonthlyUserAchievement(context.Background(), 7, "biz001", 1, 2025)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpstreamLookup))
}

func TestService_MonthlyUserAchievement_RecoversAfterRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	m.businessRepo.EXPECT().
		GetBusiness("biz001").
		Return(&domain.Business{ID: "biz001"}, nil)
	m.userSalesRepo.EXPECT().
		ListFinalByUserAndPeriod(7, gomock.Any(), gomock.Any()).
		Return(nil, nil)
	m.userTargetRepo.EXPECT().
		ListByUser(7).
		Return(nil, nil)
	m.productRepo.EXPECT().
		ListByBusinessIDs([]string{"biz001"}).
		Return(nil, nil)

	gomock.InOrder(
		m.productTargetRepo.EXPECT().
			ListByBusinessIDs([]string{"biz001"}).
			Return(nil, errors.New("connection refused")),
		m.productTargetRepo.EXPECT().
			ListByBusinessIDs([]string{"biz001"}).
			Return(nil, nil),
	)

	_, err := service.MonthlyUserAchievement(context.Background(), 7, "biz001", 1, 2025)
	require.NoError(t, err)
}

func TestService_MonthlyUserAchievement_ScopeAllUserBusinesses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	// Sem businessID explícito o escopo são os negócios do usuário; com mais
	// de um negócio o cabeçalho fica sem metadados
	m.businessRepo.EXPECT().
		ListBusinessesByUser(7).
		Return([]*domain.Business{
			{ID: "biz001"},
			{ID: "biz002"},
		}, nil)

	m.userSalesRepo.EXPECT().
		ListFinalByUserAndPeriod(7, gomock.Any(), gomock.Any()).
		Return([]*domain.UserSales{
			{
				UserID:      7,
				BusinessIDs: []string{"biz002"},
				IsFinal:     true,
				StartDate:   time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
				EndDate:     time.Date(2025, 1, 28, 0, 0, 0, 0, time.UTC),
				SalesData:   []domain.SalesLine{{ProductID: "prd002", Quantity: 5, UnitPrice: 100}},
			},
		}, nil)
	m.productTargetRepo.EXPECT().
		ListByBusinessIDs([]string{"biz001", "biz002"}).
		Return(nil, nil)
	m.userTargetRepo.EXPECT().
		ListByUser(7).
		Return(nil, nil)
	m.productRepo.EXPECT().
		ListByBusinessIDs([]string{"biz001", "biz002"}).
		Return(nil, nil)

	report, err := service.MonthlyUserAchievement(context.Background(), 7, "", 1, 2025)
	require.NoError(t, err)

	assert.Empty(t, report.BusinessID)
	require.Len(t, report.Products, 1)
	assert.Equal(t, 500.0, report.Products[0].SalesValue)
}

func TestService_TeamAchievement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	business := &domain.Business{ID: "biz001", Name: "Ótica Central", Currency: domain.Currency{Symbol: "R$"}}

	m.businessRepo.EXPECT().
		GetBusiness("biz001").
		Return(business, nil)

	// O dono não entra no consolidado da equipe
	m.businessRepo.EXPECT().
		ListMembers("biz001").
		Return([]*domain.BusinessMembership{
			{UserID: 1, BusinessID: "biz001", IsOwner: true},
			{UserID: 2, BusinessID: "biz001"},
		}, nil)

	m.productRepo.EXPECT().
		ListByBusiness("biz001").
		Return([]*domain.Product{{ID: "prd001", Name: "Armação X"}}, nil)

	// Buscas do membro 2
	m.userSalesRepo.EXPECT().
		ListFinalByUserAndPeriod(2, gomock.Any(), gomock.Any()).
		Return([]*domain.UserSales{
			{
				UserID:      2,
				BusinessIDs: []string{"biz001"},
				IsFinal:     true,
				StartDate:   time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
				EndDate:     time.Date(2025, 1, 30, 0, 0, 0, 0, time.UTC),
				SalesData:   []domain.SalesLine{{ProductID: "prd001", Quantity: 10, UnitPrice: 50}},
			},
		}, nil)
	m.productTargetRepo.EXPECT().
		ListByBusinessIDs([]string{"biz001"}).
		Return([]*domain.ProductTarget{
			{
				ProductID:  "prd001",
				BusinessID: "biz001",
				YearTargets: []domain.YearTarget{
					{Year: 2025, Months: []domain.MonthTarget{{Month: "January", TargetUnits: 20, TargetValue: 1000}}},
				},
			},
		}, nil)
	m.userTargetRepo.EXPECT().
		ListByUser(2).
		Return(nil, nil)
	m.productRepo.EXPECT().
		ListByBusinessIDs([]string{"biz001"}).
		Return([]*domain.Product{{ID: "prd001", Name: "Armação X"}}, nil)

	m.userRepo.EXPECT().
		GetUserByID(2).
		Return(&domain.User{ID: 2, Name: "Bruno", Lastname: "Costa"}, nil)

	report, err := service.TeamAchievement(context.Background(), "biz001", 1, 1, 2025)
	require.NoError(t, err)

	require.Len(t, report.Members, 1)
	assert.Equal(t, "Bruno Costa", report.Members[0].UserName)
	assert.Equal(t, 50.0, report.Members[0].Totals.AchievementPercent)

	require.Len(t, report.Products, 1)
	assert.Equal(t, "Armação X", report.Products[0].ProductName)
	assert.Equal(t, 50.0, report.Totals.AchievementPercent)
}

func TestService_PersonalProfit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	m.businessRepo.EXPECT().
		GetBusiness("biz001").
		Return(&domain.Business{ID: "biz001", Currency: domain.Currency{Symbol: "R$"}}, nil)

	m.userSalesRepo.EXPECT().
		ListFinalByUserAndPeriod(7, gomock.Any(), gomock.Any()).
		Return([]*domain.UserSales{
			{
				UserID:      7,
				BusinessIDs: []string{"biz001"},
				IsFinal:     true,
				StartDate:   time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
				EndDate:     time.Date(2025, 1, 30, 0, 0, 0, 0, time.UTC),
				SalesData:   []domain.SalesLine{{ProductID: "prd001", Quantity: 100, UnitPrice: 15}},
			},
		}, nil)
	m.productTargetRepo.EXPECT().
		ListByBusinessIDs([]string{"biz001"}).
		Return(nil, nil)
	m.userTargetRepo.EXPECT().
		ListByUser(7).
		Return(nil, nil)

	// Duas buscas de produtos: uma no cálculo, outra para custo e nome
	m.productRepo.EXPECT().
		ListByBusinessIDs([]string{"biz001"}).
		Return([]*domain.Product{{ID: "prd001", Name: "Armação X", CostPrice: 6}}, nil).
		Times(2)

	m.expenseRepo.EXPECT().
		ListByBusinessAndPeriod("biz001", gomock.Any(), gomock.Any()).
		Return([]*domain.Expense{
			{BusinessID: "biz001", ProductID: stringPtr("prd001"), Amount: 200},
			{BusinessID: "biz001", Amount: 999}, // Sem produto: fora da visão
		}, nil)

	report, err := service.PersonalProfit(context.Background(), 7, "biz001", 1, 1, 2025)
	require.NoError(t, err)

	require.Len(t, report.Products, 1)
	row := report.Products[0]

	// lucro = 1500 - (100 x 6) - 200 = 700
	assert.Equal(t, 600.0, row.CostValue)
	assert.Equal(t, 200.0, row.MarketingExpense)
	assert.Equal(t, 700.0, row.Profit)
	assert.Equal(t, 700.0, report.Totals.Profit)
}

func stringPtr(s string) *string {
	return &s
}
