package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/mvcarvalho/sales-target-api/infrastructure/repository"
	"github.com/mvcarvalho/sales-target-api/internal/api/handler"
	"github.com/mvcarvalho/sales-target-api/internal/api/handler/router"
	"github.com/mvcarvalho/sales-target-api/internal/config"
	"github.com/mvcarvalho/sales-target-api/internal/scheduler"
	"github.com/mvcarvalho/sales-target-api/internal/usecases/authenticating"
	"github.com/mvcarvalho/sales-target-api/internal/usecases/reporting"
	"github.com/mvcarvalho/sales-target-api/internal/usecases/targeting"
	"github.com/mvcarvalho/sales-target-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

// Repositories agrupa os repositórios expostos diretamente aos handlers de CRUD
type Repositories struct {
	Business repository.BusinessRepository
	Product  repository.ProductRepository
	Sales    repository.UserSalesRepository
	Expense  repository.ExpenseRepository
}

func New(
	config *config.Config,
	reportService reporting.Reporter,
	targetService targeting.TargetService,
	authenticator authenticating.Authenticator,
	repos Repositories,
	monthlyAchievementSyncService *scheduler.MonthlyAchievementSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		MonthlyAchievementSyncService: monthlyAchievementSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator)...),
		router.WithRoutes(handler.UserBusinesses(authenticator)...),
		router.WithRoutes(handler.Businesses(repos.Business)...),
		router.WithRoutes(handler.Products(repos.Product)...),
		router.WithRoutes(handler.Targets(targetService)...),
		router.WithRoutes(handler.PhasingTables(targetService)...),
		router.WithRoutes(handler.Sales(repos.Sales)...),
		router.WithRoutes(handler.Expenses(repos.Expense)...),
		router.WithRoutes(handler.Reports(reportService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
