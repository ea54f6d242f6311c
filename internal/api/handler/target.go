package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/mvcarvalho/sales-target-api/internal/domain"
	"github.com/mvcarvalho/sales-target-api/internal/usecases/reporting"
	"github.com/mvcarvalho/sales-target-api/internal/usecases/targeting"
	"github.com/mvcarvalho/sales-target-api/pkg/apiErrors"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// SetProductTarget cria ou atualiza a meta de um produto
func SetProductTarget(service targeting.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SetProductTarget")

		var req domain.SetProductTargetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.ProductID == "" || req.BusinessID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Produto e negócio são obrigatórios", nil)
			return
		}

		target, err := service.SetProductTarget(&req)
		if err != nil {
			handleTargetError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(target); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetProductTarget retorna a meta de um produto para um negócio
func GetProductTarget(service targeting.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID := httprouter.ParamsFromContext(r.Context()).ByName("product_id")
		businessID := r.URL.Query().Get("business_id")

		if productID == "" || businessID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Produto e negócio são obrigatórios", nil)
			return
		}

		target, err := service.GetProductTarget(productID, businessID)
		if err != nil {
			handleTargetError(w, err)
			return
		}

		if target == nil {
			apiErrors.WriteError(w, apiErrors.ErrTargetNotFound, "Meta não encontrada para o produto", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(target); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// ListProductTargets lista as metas dos negócios informados
func ListProductTargets(service targeting.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		businessID := r.URL.Query().Get("business_id")
		if businessID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar o negócio nos parâmetros", nil)
			return
		}

		targets, err := service.ListProductTargets([]string{businessID})
		if err != nil {
			handleTargetError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(targets); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// DeleteProductTarget remove a meta de um produto
func DeleteProductTarget(service targeting.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteProductTarget")

		productID := httprouter.ParamsFromContext(r.Context()).ByName("product_id")
		businessID := r.URL.Query().Get("business_id")

		if productID == "" || businessID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Produto e negócio são obrigatórios", nil)
			return
		}

		if err := service.DeleteProductTarget(productID, businessID); err != nil {
			handleTargetError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// SetUserTarget define as alocações de meta de um usuário em um negócio
func SetUserTarget(service targeting.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SetUserTarget")

		var req domain.SetUserTargetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.UserID == 0 || req.BusinessID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Usuário e negócio são obrigatórios", nil)
			return
		}

		target, err := service.SetUserTarget(&req)
		if err != nil {
			handleTargetError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(target); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetUserTarget retorna as alocações de meta de um usuário em um negócio
func GetUserTarget(service targeting.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userIDStr := httprouter.ParamsFromContext(r.Context()).ByName("user_id")
		businessID := r.URL.Query().Get("business_id")

		if userIDStr == "" || businessID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Usuário e negócio são obrigatórios", nil)
			return
		}

		userID, err := strconv.Atoi(userIDStr)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
			return
		}

		target, err := service.GetUserTarget(userID, businessID)
		if err != nil {
			handleTargetError(w, err)
			return
		}

		if target == nil {
			apiErrors.WriteError(w, apiErrors.ErrTargetNotFound, "Meta não encontrada para o usuário", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(target); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// handleTargetError traduz erros de metas para respostas HTTP padronizadas
func handleTargetError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	var targetErr *targeting.TargetError
	if errors.As(err, &targetErr) {
		apiErrors.WriteError(w, targetErr.Code, targetErr.Error(), map[string]any{
			"product_id": targetErr.ProductID,
		})
		return
	}

	switch {
	case errors.Is(err, targeting.ErrProductNotFound):
		apiErrors.WriteError(w, apiErrors.ErrProductNotFound, "Produto não encontrado", nil)

	case errors.Is(err, targeting.ErrBusinessNotFound):
		apiErrors.WriteError(w, apiErrors.ErrBusinessNotFound, "Negócio não encontrado", nil)

	case errors.Is(err, targeting.ErrPhasingTableNotFound):
		apiErrors.WriteError(w, apiErrors.ErrPhasingTableNotFound, "Tabela de fases não encontrada", nil)

	case errors.Is(err, targeting.ErrPhasingTableRequired),
		errors.Is(err, targeting.ErrInvalidTargetType),
		errors.Is(err, targeting.ErrInvalidAllocation),
		errors.Is(err, targeting.ErrInvalidPhasingEntry):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	case errors.Is(err, reporting.ErrPhasingTableIncomplete),
		errors.Is(err, reporting.ErrInvalidPhasingFormat):
		apiErrors.WriteError(w, apiErrors.ErrPhasingIncomplete, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar meta", nil)
	}
}
