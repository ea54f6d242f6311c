package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/mvcarvalho/sales-target-api/infrastructure/repository"
	"github.com/mvcarvalho/sales-target-api/internal/domain"
	"github.com/mvcarvalho/sales-target-api/pkg/apiErrors"
	"github.com/mvcarvalho/sales-target-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type ExpenseRequest struct {
	BusinessID  string    `json:"business_id"`
	ProductID   *string   `json:"product_id,omitempty"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
}

// ListExpenses lista despesas de um negócio em um período
func ListExpenses(repo repository.ExpenseRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		businessID := r.URL.Query().Get("business_id")
		startStr := r.URL.Query().Get("start_date")
		endStr := r.URL.Query().Get("end_date")

		if businessID == "" || startStr == "" || endStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar negócio e período nos parâmetros", nil)
			return
		}

		startDate, err := utils.ParseDate(startStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida. Use o formato aaaa-mm-dd", nil)
			return
		}

		endDate, err := utils.ParseDate(endStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida. Use o formato aaaa-mm-dd", nil)
			return
		}

		expenses, err := repo.ListByBusinessAndPeriod(businessID, *startDate, *endDate)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar despesas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(expenses); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// CreateExpense registra uma despesa de marketing
func CreateExpense(repo repository.ExpenseRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateExpense")

		var req ExpenseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.BusinessID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Negócio é obrigatório", nil)
			return
		}

		if req.Amount <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Valor da despesa deve ser maior que zero", nil)
			return
		}

		if req.Date.IsZero() {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Data da despesa é obrigatória", nil)
			return
		}

		id, err := utils.GenerateID()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar identificador da despesa", nil)
			return
		}

		expense := &domain.Expense{
			ID:          id,
			BusinessID:  req.BusinessID,
			ProductID:   req.ProductID,
			Description: req.Description,
			Amount:      req.Amount,
			Date:        req.Date,
		}

		if err := repo.Create(expense); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar despesa", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(expense); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// DeleteExpense remove uma despesa
func DeleteExpense(repo repository.ExpenseRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteExpense")

		expenseID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if expenseID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da despesa não fornecido", nil)
			return
		}

		if err := repo.Delete(expenseID); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover despesa", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}
