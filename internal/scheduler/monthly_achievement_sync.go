package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/mvcarvalho/sales-target-api/infrastructure/repository"
	"github.com/mvcarvalho/sales-target-api/internal/config"
	"github.com/mvcarvalho/sales-target-api/internal/domain"
	"github.com/mvcarvalho/sales-target-api/internal/usecases/reporting"
	"github.com/mvcarvalho/sales-target-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// MonthlyAchievementSyncConfig representa a configuração do agendador de consolidação mensal
type MonthlyAchievementSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
	MonthLookBack     int
}

// MonthlyAchievementSyncService gerencia o agendamento e a execução da consolidação
// mensal de atingimento de metas por negócio
type MonthlyAchievementSyncService struct {
	scheduler           *gocron.Scheduler
	config              MonthlyAchievementSyncConfig
	appConfig           *config.Config
	businessRepo        repository.BusinessRepository
	snapshotRepo        repository.AchievementSnapshotRepository
	reporter            reporting.Reporter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewMonthlyAchievementSyncService cria uma nova instância do serviço de consolidação mensal
func NewMonthlyAchievementSyncService(
	businessRepo repository.BusinessRepository,
	snapshotRepo repository.AchievementSnapshotRepository,
	reporter reporting.Reporter,
	appConfig *config.Config,
) *MonthlyAchievementSyncService {
	syncConfig := MonthlyAchievementSyncConfig{
		CronSchedule:      appConfig.MonthlyAchievementSync.CronSchedule,
		MaxConcurrentJobs: appConfig.MonthlyAchievementSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.MonthlyAchievementSync.Enabled,
		MonthLookBack:     appConfig.MonthlyAchievementSync.MonthLookBack,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
		"month_lookback":      syncConfig.MonthLookBack,
	}).Info("Configuração do agendador de consolidação mensal de atingimento carregada")

	return &MonthlyAchievementSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		appConfig:    appConfig,
		businessRepo: businessRepo,
		snapshotRepo: snapshotRepo,
		reporter:     reporter,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *MonthlyAchievementSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Consolidação mensal de atingimento desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de consolidação mensal de atingimento")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncMonthlyAchievements(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar consolidação mensal de atingimento: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de consolidação mensal de atingimento")
		s.scheduler.Stop()
	}()

	return nil
}

// syncMonthlyAchievements consolida o atingimento do período para todos os negócios
func (s *MonthlyAchievementSyncService) syncMonthlyAchievements(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Consolidação mensal de atingimento já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando consolidação mensal de atingimento para todos os negócios")

	businesses, err := s.businessRepo.ListBusinesses()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de negócios para consolidação mensal")
		return
	}

	if len(businesses) == 0 {
		logrus.Info("Nenhum negócio encontrado para consolidação mensal de atingimento")
		return
	}

	for i := 1; i <= s.config.MonthLookBack; i++ {
		month := time.Now().AddDate(0, -i, 0)

		logrus.WithFields(logrus.Fields{
			"month": int(month.Month()),
			"year":  month.Year(),
		}).Info("Período para consolidação mensal de atingimento")

		s.processMonthlyAchievements(ctx, businesses, int(month.Month()), month.Year())
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":   duration.String(),
		"businesses": len(businesses),
	}).Info("Consolidação mensal de atingimento concluída")

	s.lastSyncCompletedAt = time.Now()
}

// processMonthlyAchievements consolida o mês informado para todos os negócios
func (s *MonthlyAchievementSyncService) processMonthlyAchievements(ctx context.Context, businesses []*domain.Business, month, year int) {
	// Canal para controlar o número de workers concorrentes
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, business := range businesses {
		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(biz *domain.Business) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			err := s.processBusinessAchievement(ctx, biz, month, year)
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"business_id":   biz.ID,
					"business_name": biz.Name,
					"month":         month,
					"year":          year,
				}).Error("Erro ao consolidar atingimento mensal do negócio")
			}
		}(business)
	}

	wg.Wait()
}

// processBusinessAchievement calcula e persiste o snapshot de atingimento de um negócio
func (s *MonthlyAchievementSyncService) processBusinessAchievement(ctx context.Context, business *domain.Business, month, year int) error {
	report, err := s.reporter.TeamAchievement(ctx, business.ID, month, month, year)
	if err != nil {
		return fmt.Errorf("erro ao calcular atingimento do negócio: %w", err)
	}

	period := fmt.Sprintf("%02d-%04d", month, year)

	snapshot := &domain.AchievementSnapshot{
		BusinessID: business.ID,
		Period:     period,
		Report:     report,
	}

	logrus.Debugf("Snapshot consolidado para %s: %s", business.ID, utils.PrettyJson(report))

	err = s.snapshotRepo.SaveOrUpdate(snapshot)
	if err != nil {
		return fmt.Errorf("erro ao salvar snapshot de atingimento: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"business_id": business.ID,
		"period":      period,
	}).Info("Snapshot de atingimento mensal salvo com sucesso")

	return nil
}

// TriggerManualSync inicia manualmente uma consolidação de atingimento
func (s *MonthlyAchievementSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Consolidação mensal de atingimento já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando consolidação manual de atingimento mensal")
	go s.syncMonthlyAchievements(context.Background())
}

// GetStatus retorna o status atual da consolidação
func (s *MonthlyAchievementSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
