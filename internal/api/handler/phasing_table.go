package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/mvcarvalho/sales-target-api/internal/domain"
	"github.com/mvcarvalho/sales-target-api/internal/usecases/targeting"
	"github.com/mvcarvalho/sales-target-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// SavePhasingTable cria ou atualiza uma tabela de fases
func SavePhasingTable(service targeting.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SavePhasingTable")

		var req domain.SavePhasingTableRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.BusinessID == "" || req.Name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Negócio e nome da tabela são obrigatórios", nil)
			return
		}

		if len(req.Entries) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "A tabela de fases precisa de pelo menos uma entrada", nil)
			return
		}

		table, err := service.SavePhasingTable(&req)
		if err != nil {
			handleTargetError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(table); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetPhasingTable retorna uma tabela de fases por ID
func GetPhasingTable(service targeting.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tableID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if tableID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da tabela não fornecido", nil)
			return
		}

		table, err := service.GetPhasingTable(tableID)
		if err != nil {
			handleTargetError(w, err)
			return
		}

		if table == nil {
			apiErrors.WriteError(w, apiErrors.ErrPhasingTableNotFound, "Tabela de fases não encontrada", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(table); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// ListPhasingTables lista as tabelas de fases de um negócio
func ListPhasingTables(service targeting.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		businessID := r.URL.Query().Get("business_id")
		if businessID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar o negócio nos parâmetros", nil)
			return
		}

		tables, err := service.ListPhasingTables(businessID)
		if err != nil {
			handleTargetError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(tables); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// DeletePhasingTable remove uma tabela de fases
func DeletePhasingTable(service targeting.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeletePhasingTable")

		tableID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if tableID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da tabela não fornecido", nil)
			return
		}

		if err := service.DeletePhasingTable(tableID); err != nil {
			handleTargetError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}
