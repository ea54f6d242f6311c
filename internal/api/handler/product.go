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

type ProductRequest struct {
	BusinessID   string          `json:"business_id"`
	Name         string          `json:"name"`
	Nickname     *string         `json:"nickname,omitempty"`
	CostPrice    float64         `json:"cost_price"`
	RetailPrice  float64         `json:"retail_price"`
	SellingPrice float64         `json:"selling_price"`
	Currency     domain.Currency `json:"currency"`
}

// ListProducts lista os produtos de um negócio
func ListProducts(repo repository.ProductRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		businessID := r.URL.Query().Get("business_id")
		if businessID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar o negócio nos parâmetros", nil)
			return
		}

		products, err := repo.ListByBusiness(businessID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar produtos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(products); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetProduct retorna um produto por ID
func GetProduct(repo repository.ProductRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if productID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do produto não fornecido", nil)
			return
		}

		product, err := repo.GetProduct(productID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar produto", nil)
			return
		}

		if product == nil {
			apiErrors.WriteError(w, apiErrors.ErrProductNotFound, "Produto não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(product); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// CreateProduct cadastra um novo produto
func CreateProduct(repo repository.ProductRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateProduct")

		var req ProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.BusinessID == "" || req.Name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Negócio e nome do produto são obrigatórios", nil)
			return
		}

		id, err := utils.GenerateID()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar identificador do produto", nil)
			return
		}

		product := &domain.Product{
			ID:           id,
			BusinessID:   req.BusinessID,
			Name:         req.Name,
			Nickname:     req.Nickname,
			CostPrice:    req.CostPrice,
			RetailPrice:  req.RetailPrice,
			SellingPrice: req.SellingPrice,
			Currency:     req.Currency,
		}

		if err := repo.CreateProduct(product); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar produto", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(product); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// UpdateProduct atualiza dados de um produto existente
func UpdateProduct(repo repository.ProductRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateProduct")

		productID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if productID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do produto não fornecido", nil)
			return
		}

		product, err := repo.GetProduct(productID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar produto", nil)
			return
		}
		if product == nil {
			apiErrors.WriteError(w, apiErrors.ErrProductNotFound, "Produto não encontrado", nil)
			return
		}

		var req ProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.Name != "" {
			product.Name = req.Name
		}
		if req.Nickname != nil {
			product.Nickname = req.Nickname
		}
		if req.CostPrice > 0 {
			product.CostPrice = req.CostPrice
		}
		if req.RetailPrice > 0 {
			product.RetailPrice = req.RetailPrice
		}
		if req.SellingPrice > 0 {
			product.SellingPrice = req.SellingPrice
		}
		if req.Currency.Code != "" {
			product.Currency = req.Currency
		}

		if err := repo.UpdateProduct(product); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar produto", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(product); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
