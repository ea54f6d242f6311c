package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/mvcarvalho/sales-target-api/infrastructure/repository"
	"github.com/mvcarvalho/sales-target-api/internal/domain"
	"github.com/mvcarvalho/sales-target-api/pkg/apiErrors"
	"github.com/mvcarvalho/sales-target-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type CreateBusinessRequest struct {
	Name     string          `json:"name"`
	LogoURL  *string         `json:"logo_url,omitempty"`
	Currency domain.Currency `json:"currency"`
}

// ListBusinesses lista todos os negócios cadastrados
func ListBusinesses(repo repository.BusinessRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		businesses, err := repo.ListBusinesses()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar negócios", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(businesses); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetBusiness retorna um negócio por ID
func GetBusiness(repo repository.BusinessRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		businessID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if businessID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do negócio não fornecido", nil)
			return
		}

		business, err := repo.GetBusiness(businessID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar negócio", nil)
			return
		}

		if business == nil {
			apiErrors.WriteError(w, apiErrors.ErrBusinessNotFound, "Negócio não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(business); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// CreateBusiness cadastra um novo negócio
func CreateBusiness(repo repository.BusinessRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateBusiness")

		var req CreateBusinessRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.Name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do negócio é obrigatório", nil)
			return
		}

		if req.Currency.Code == "" {
			req.Currency = domain.Currency{Code: "BRL", Symbol: "R$"}
		}

		id, err := utils.GenerateID()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar identificador do negócio", nil)
			return
		}

		business := &domain.Business{
			ID:       id,
			Name:     req.Name,
			LogoURL:  req.LogoURL,
			Currency: req.Currency,
		}

		if err := repo.CreateBusiness(business); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar negócio", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(business); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// UpdateBusiness atualiza dados de um negócio existente
func UpdateBusiness(repo repository.BusinessRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateBusiness")

		businessID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if businessID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do negócio não fornecido", nil)
			return
		}

		business, err := repo.GetBusiness(businessID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar negócio", nil)
			return
		}
		if business == nil {
			apiErrors.WriteError(w, apiErrors.ErrBusinessNotFound, "Negócio não encontrado", nil)
			return
		}

		var req CreateBusinessRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.Name != "" {
			business.Name = req.Name
		}
		if req.LogoURL != nil {
			business.LogoURL = req.LogoURL
		}
		if req.Currency.Code != "" {
			business.Currency = req.Currency
		}

		if err := repo.UpdateBusiness(business); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar negócio", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(business); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// ListBusinessMembers lista os membros de um negócio
func ListBusinessMembers(repo repository.BusinessRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		businessID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if businessID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do negócio não fornecido", nil)
			return
		}

		members, err := repo.ListMembers(businessID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar membros do negócio", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(members); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
