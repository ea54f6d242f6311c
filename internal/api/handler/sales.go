package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/mvcarvalho/sales-target-api/infrastructure/repository"
	"github.com/mvcarvalho/sales-target-api/internal/domain"
	"github.com/mvcarvalho/sales-target-api/pkg/apiErrors"
	"github.com/mvcarvalho/sales-target-api/pkg/middleware"
	"github.com/mvcarvalho/sales-target-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type SalesRequest struct {
	BusinessIDs []string           `json:"business_ids"`
	VersionName string             `json:"version_name"`
	SalesData   []domain.SalesLine `json:"sales_data"`
	StartDate   time.Time          `json:"start_date"`
	EndDate     time.Time          `json:"end_date"`
}

// ListUserSales lista as versões de vendas do usuário logado
func ListUserSales(repo repository.UserSalesRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		sales, err := repo.ListByUser(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar versões de vendas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(sales); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetSales retorna uma versão de vendas por ID
func GetSales(repo repository.UserSalesRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		salesID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if salesID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da venda não fornecido", nil)
			return
		}

		sales, err := repo.GetByID(salesID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar venda", nil)
			return
		}

		if sales == nil {
			apiErrors.WriteError(w, apiErrors.ErrSaleNotFound, "Venda não encontrada", nil)
			return
		}

		// O dono da versão ou um administrador podem consultá-la
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || (userClaims.UserID != sales.UserID && userClaims.UserRoleID != 1) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para ver esta venda", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(sales); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// CreateSales cria uma nova versão de vendas em rascunho
func CreateSales(repo repository.UserSalesRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateSales")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req SalesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if len(req.BusinessIDs) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "A venda precisa estar vinculada a pelo menos um negócio", nil)
			return
		}

		if req.StartDate.IsZero() || req.EndDate.IsZero() || req.EndDate.Before(req.StartDate) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período da venda inválido", nil)
			return
		}

		id, err := utils.GenerateID()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar identificador da venda", nil)
			return
		}

		sales := &domain.UserSales{
			ID:          id,
			UserID:      userClaims.UserID,
			BusinessIDs: req.BusinessIDs,
			VersionName: req.VersionName,
			SalesData:   req.SalesData,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			IsFinal:     false,
		}

		if err := repo.Create(sales); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar venda", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(sales); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// UpdateSales atualiza uma versão de vendas ainda em rascunho
func UpdateSales(repo repository.UserSalesRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateSales")

		salesID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if salesID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da venda não fornecido", nil)
			return
		}

		sales, err := repo.GetByID(salesID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar venda", nil)
			return
		}
		if sales == nil {
			apiErrors.WriteError(w, apiErrors.ErrSaleNotFound, "Venda não encontrada", nil)
			return
		}

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserID != sales.UserID {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para editar esta venda", nil)
			return
		}

		// Versões finalizadas são imutáveis
		if sales.IsFinal {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Venda finalizada não pode ser editada", nil)
			return
		}

		var req SalesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if len(req.BusinessIDs) > 0 {
			sales.BusinessIDs = req.BusinessIDs
		}
		if req.VersionName != "" {
			sales.VersionName = req.VersionName
		}
		if req.SalesData != nil {
			sales.SalesData = req.SalesData
		}
		if !req.StartDate.IsZero() {
			sales.StartDate = req.StartDate
		}
		if !req.EndDate.IsZero() {
			sales.EndDate = req.EndDate
		}

		if sales.EndDate.Before(sales.StartDate) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período da venda inválido", nil)
			return
		}

		if err := repo.Update(sales); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar venda", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(sales); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// FinalizeSales marca uma versão de vendas como final. A partir daí ela passa
// a contar nos relatórios de atingimento e não pode mais ser editada.
func FinalizeSales(repo repository.UserSalesRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - FinalizeSales")

		salesID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if salesID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da venda não fornecido", nil)
			return
		}

		sales, err := repo.GetByID(salesID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar venda", nil)
			return
		}
		if sales == nil {
			apiErrors.WriteError(w, apiErrors.ErrSaleNotFound, "Venda não encontrada", nil)
			return
		}

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserID != sales.UserID {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para finalizar esta venda", nil)
			return
		}

		if sales.IsFinal {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Venda já finalizada", nil)
			return
		}

		if err := repo.Finalize(salesID); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao finalizar venda", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		response := map[string]any{
			"message":  "Venda finalizada com sucesso",
			"sales_id": salesID,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
