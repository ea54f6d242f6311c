package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/mvcarvalho/sales-target-api/infrastructure/database/postgres"
	"github.com/mvcarvalho/sales-target-api/infrastructure/repository"
	"github.com/mvcarvalho/sales-target-api/internal/api"
	"github.com/mvcarvalho/sales-target-api/internal/config"
	"github.com/mvcarvalho/sales-target-api/internal/scheduler"
	"github.com/mvcarvalho/sales-target-api/internal/usecases/authenticating"
	"github.com/mvcarvalho/sales-target-api/internal/usecases/reporting"
	"github.com/mvcarvalho/sales-target-api/internal/usecases/targeting"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	businessRepo := repository.NewBusinessRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	productTargetRepo := repository.NewProductTargetRepository(pgConn)
	userTargetRepo := repository.NewUserTargetRepository(pgConn)
	phasingTableRepo := repository.NewPhasingTableRepository(pgConn)
	userSalesRepo := repository.NewUserSalesRepository(pgConn)
	expenseRepo := repository.NewExpenseRepository(pgConn)
	snapshotRepo := repository.NewAchievementSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, businessRepo, cfg)

	reportService := reporting.NewService(
		businessRepo,
		productRepo,
		productTargetRepo,
		userTargetRepo,
		userSalesRepo,
		expenseRepo,
		userRepo,
	)

	targetService := targeting.NewService(
		productRepo,
		productTargetRepo,
		userTargetRepo,
		phasingTableRepo,
	)

	// Inicializa o agendador de consolidação mensal de atingimento
	monthlyAchievementSyncService := scheduler.NewMonthlyAchievementSyncService(
		businessRepo,
		snapshotRepo,
		reportService,
		cfg,
	)

	if err := monthlyAchievementSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de consolidação mensal de atingimento")
	} else {
		logrus.Info("Agendador de consolidação mensal de atingimento iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportService,
		targetService,
		authenticator,
		api.Repositories{
			Business: businessRepo,
			Product:  productRepo,
			Sales:    userSalesRepo,
			Expense:  expenseRepo,
		},
		monthlyAchievementSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
