package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/mvcarvalho/sales-target-api/infrastructure/repository/mocks"
	"github.com/mvcarvalho/sales-target-api/internal/domain"
	reportingmocks "github.com/mvcarvalho/sales-target-api/internal/usecases/reporting/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMonthlyAchievementSyncService_processBusinessAchievement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusinessRepo := mocks.NewMockBusinessRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockAchievementSnapshotRepository(ctrl)
	mockReporter := reportingmocks.NewMockReporter(ctrl)

	service := &MonthlyAchievementSyncService{
		businessRepo: mockBusinessRepo,
		snapshotRepo: mockSnapshotRepo,
		reporter:     mockReporter,
	}

	business := &domain.Business{ID: "biz001", Name: "Ótica Central"}

	tests := []struct {
		name    string
		setup   func()
		wantErr bool
	}{
		{
			name: "Consolida e salva snapshot do mês anterior",
			setup: func() {
				report := &domain.TeamAchievementReport{
					BusinessID: "biz001",
					Totals:     domain.AchievementTotals{SalesValue: 2500, TargetValue: 2000, AchievementPercent: 125},
				}

				mockReporter.EXPECT().
					TeamAchievement(gomock.Any(), "biz001", 1, 1, 2024).
					Return(report, nil)

				mockSnapshotRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					DoAndReturn(func(snapshot *domain.AchievementSnapshot) error {
						assert.Equal(t, "biz001", snapshot.BusinessID)
						assert.Equal(t, "01-2024", snapshot.Period)
						assert.Equal(t, report, snapshot.Report)
						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "Erro no cálculo não persiste snapshot",
			setup: func() {
				mockReporter.EXPECT().
					TeamAchievement(gomock.Any(), "biz001", 1, 1, 2024).
					Return(nil, errors.New("falha ao consultar vendas"))
			},
			wantErr: true,
		},
		{
			name: "Erro ao salvar snapshot é propagado",
			setup: func() {
				mockReporter.EXPECT().
					TeamAchievement(gomock.Any(), "biz001", 1, 1, 2024).
					Return(&domain.TeamAchievementReport{BusinessID: "biz001"}, nil)

				mockSnapshotRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					Return(errors.New("erro de banco"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			err := service.processBusinessAchievement(context.Background(), business, 1, 2024)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMonthlyAchievementSyncService_processMonthlyAchievements(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusinessRepo := mocks.NewMockBusinessRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockAchievementSnapshotRepository(ctrl)
	mockReporter := reportingmocks.NewMockReporter(ctrl)

	service := &MonthlyAchievementSyncService{
		businessRepo: mockBusinessRepo,
		snapshotRepo: mockSnapshotRepo,
		reporter:     mockReporter,
		config: MonthlyAchievementSyncConfig{
			MaxConcurrentJobs: 2,
		},
	}

	businesses := []*domain.Business{
		{ID: "biz001", Name: "Ótica Central"},
		{ID: "biz002", Name: "Ótica Norte"},
	}

	// Cada negócio gera um cálculo e um snapshot para o período
	mockReporter.EXPECT().
		TeamAchievement(gomock.Any(), "biz001", 3, 3, 2024).
		Return(&domain.TeamAchievementReport{BusinessID: "biz001"}, nil)
	mockReporter.EXPECT().
		TeamAchievement(gomock.Any(), "biz002", 3, 3, 2024).
		Return(&domain.TeamAchievementReport{BusinessID: "biz002"}, nil)

	mockSnapshotRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		Return(nil).
		Times(2)

	service.processMonthlyAchievements(context.Background(), businesses, 3, 2024)
}

func TestMonthlyAchievementSyncService_GetStatus(t *testing.T) {
	service := &MonthlyAchievementSyncService{
		config: MonthlyAchievementSyncConfig{
			CronSchedule: "0 5 1 * *",
			SyncEnabled:  true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "0 5 1 * *", status["sync_cron"])
	assert.Equal(t, true, status["sync_enabled"])
}
