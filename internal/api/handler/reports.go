package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mvcarvalho/sales-target-api/internal/domain"
	"github.com/mvcarvalho/sales-target-api/internal/usecases/reporting"
	"github.com/mvcarvalho/sales-target-api/pkg/apiErrors"
	"github.com/mvcarvalho/sales-target-api/pkg/log"
	"github.com/mvcarvalho/sales-target-api/pkg/middleware"
	"github.com/pkg/errors"
)

// MonthlyAchievementReport retorna o atingimento mensal do usuário logado
func MonthlyAchievementReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		month, year, ok := parseMonthYear(w, r.URL.Query().Get("month"), r.URL.Query().Get("year"))
		if !ok {
			return
		}

		businessID := r.URL.Query().Get("business_id")

		logger.WithFields(log.Fields{
			"user_id":     userClaims.UserID,
			"business_id": businessID,
			"month":       month,
			"year":        year,
		}).Info("reports: calculando atingimento mensal")

		report, err := service.MonthlyUserAchievement(r.Context(), userClaims.UserID, businessID, month, year)
		if err != nil {
			handleReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("reports: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// YTDAchievementReport retorna o atingimento acumulado do ano do usuário logado
func YTDAchievementReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		endMonth, year, ok := parseMonthYear(w, r.URL.Query().Get("end_month"), r.URL.Query().Get("year"))
		if !ok {
			return
		}

		businessID := r.URL.Query().Get("business_id")

		logger.WithFields(log.Fields{
			"user_id":     userClaims.UserID,
			"business_id": businessID,
			"end_month":   endMonth,
			"year":        year,
		}).Info("reports: calculando atingimento acumulado do ano")

		report, err := service.YTDUserAchievement(r.Context(), userClaims.UserID, businessID, endMonth, year)
		if err != nil {
			handleReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("reports: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// TeamAchievementReport retorna o atingimento consolidado da equipe de um negócio
func TeamAchievementReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		businessID := r.URL.Query().Get("business_id")
		if businessID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar o negócio nos parâmetros", nil)
			return
		}

		startMonth, year, ok := parseMonthYear(w, r.URL.Query().Get("start_month"), r.URL.Query().Get("year"))
		if !ok {
			return
		}

		endMonth, err := strconv.Atoi(r.URL.Query().Get("end_month"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês final inválido", nil)
			return
		}

		logger.WithFields(log.Fields{
			"business_id": businessID,
			"start_month": startMonth,
			"end_month":   endMonth,
			"year":        year,
		}).Info("reports: calculando atingimento da equipe")

		report, err := service.TeamAchievement(r.Context(), businessID, startMonth, endMonth, year)
		if err != nil {
			handleReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("reports: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// ProfitReport retorna o relatório de lucro do usuário logado
func ProfitReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		startMonth, year, ok := parseMonthYear(w, r.URL.Query().Get("start_month"), r.URL.Query().Get("year"))
		if !ok {
			return
		}

		endMonth, err := strconv.Atoi(r.URL.Query().Get("end_month"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês final inválido", nil)
			return
		}

		businessID := r.URL.Query().Get("business_id")

		logger.WithFields(log.Fields{
			"user_id":     userClaims.UserID,
			"business_id": businessID,
			"start_month": startMonth,
			"end_month":   endMonth,
			"year":        year,
		}).Info("reports: calculando relatório de lucro")

		report, err := service.PersonalProfit(r.Context(), userClaims.UserID, businessID, startMonth, endMonth, year)
		if err != nil {
			handleReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("reports: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// parseMonthYear valida mês e ano dos parâmetros de consulta
func parseMonthYear(w http.ResponseWriter, monthStr, yearStr string) (int, int, bool) {
	if monthStr == "" || yearStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar mês e ano nos parâmetros", nil)
		return 0, 0, false
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido", nil)
		return 0, 0, false
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido", nil)
		return 0, 0, false
	}

	return month, year, true
}

// handleReportError traduz erros do motor de relatórios para respostas HTTP
func handleReportError(w http.ResponseWriter, err error) {
	var reportErr *reporting.ReportError
	hasContext := errors.As(err, &reportErr)

	details := map[string]any{}
	if hasContext {
		if reportErr.Product != "" {
			details["product_id"] = reportErr.Product
		}
		if reportErr.Month != "" {
			details["month"] = reportErr.Month
		}
		if reportErr.Details != "" {
			details["details"] = reportErr.Details
		}
	}

	switch {
	case errors.Is(err, reporting.ErrInvalidRange):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Período inválido para o relatório", details)

	case errors.Is(err, reporting.ErrPhasingTableIncomplete),
		errors.Is(err, reporting.ErrInvalidPhasingFormat):
		apiErrors.WriteError(w, apiErrors.ErrPhasingIncomplete, err.Error(), details)

	case errors.Is(err, reporting.ErrUpstreamLookup):
		apiErrors.WriteError(w, apiErrors.ErrUpstreamLookup, "Falha ao consultar dados para o relatório", details)

	case errors.Is(err, reporting.ErrNoData):
		apiErrors.WriteError(w, apiErrors.ErrBusinessNotFound, err.Error(), details)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar relatório", details)
	}
}
