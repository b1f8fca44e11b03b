package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/stmbudget/sales-planning-api/internal/domain"
	"github.com/stmbudget/sales-planning-api/internal/usecases/budgeting"
	"github.com/stmbudget/sales-planning-api/pkg/apiErrors"
)

// budgetFilterFromQuery monta o filtro de listagem a partir da query string
func budgetFilterFromQuery(r *http.Request) domain.BudgetFilter {
	filter := domain.BudgetFilter{
		Year:          queryInt(r, "year"),
		Month:         queryInt(r, "month"),
		Quarter:       queryInt(r, "quarter"),
		CustomerID:    queryString(r, "customer_id"),
		ItemID:        queryString(r, "item_id"),
		SalespersonID: queryInt(r, "salesperson_id"),
		IsManualEntry: queryBool(r, "is_manual_entry"),
	}

	if raw := queryString(r, "status"); raw != nil {
		status := domain.EntryStatus(*raw)
		filter.Status = &status
	}

	if raw := queryString(r, "distribution_type"); raw != nil {
		distribution := domain.DistributionType(*raw)
		filter.DistributionType = &distribution
	}

	return filter
}

// writeBudgetError converte erros do caso de uso na resposta HTTP padronizada
func writeBudgetError(w http.ResponseWriter, err error) {
	var budgetErr *budgeting.BudgetError
	if errors.As(err, &budgetErr) {
		var details map[string]any
		if budgetErr.EntryID != "" {
			details = map[string]any{"entry_id": budgetErr.EntryID}
		}
		apiErrors.WriteError(w, budgetErr.Code, budgetErr.Error(), details)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar orçamento", nil)
}

// ListBudgetEntries lista entradas de orçamento com filtros opcionais
func ListBudgetEntries(service budgeting.BudgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromRequest(w, r)
		if !ok {
			return
		}

		entries, err := service.ListEntries(actor, budgetFilterFromQuery(r))
		if err != nil {
			logrus.Error(err)
			writeBudgetError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetBudgetEntry retorna uma entrada de orçamento por ID
func GetBudgetEntry(service budgeting.BudgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromRequest(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		entry, err := service.GetEntry(actor, id)
		if err != nil {
			logrus.Error(err)
			writeBudgetError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entry); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreateBudgetEntry cria uma entrada avulsa de orçamento
func CreateBudgetEntry(service budgeting.BudgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateBudgetEntry")

		actor, ok := actorFromRequest(w, r)
		if !ok {
			return
		}

		var request domain.CreateBudgetEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		entry, err := service.CreateEntry(r.Context(), actor, &request)
		if err != nil {
			logrus.Error(err)
			writeBudgetError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(entry); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpdateBudgetEntry atualiza parcialmente uma entrada de orçamento
func UpdateBudgetEntry(service budgeting.BudgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateBudgetEntry")

		actor, ok := actorFromRequest(w, r)
		if !ok {
			return
		}

		var request domain.UpdateBudgetEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		// O ID da URL prevalece sobre o do corpo
		request.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		entry, err := service.UpdateEntry(r.Context(), actor, &request)
		if err != nil {
			logrus.Error(err)
			writeBudgetError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entry); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// DeleteBudgetEntry remove uma entrada de orçamento
func DeleteBudgetEntry(service budgeting.BudgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteBudgetEntry")

		actor, ok := actorFromRequest(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteEntry(r.Context(), actor, id); err != nil {
			logrus.Error(err)
			writeBudgetError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// BulkCreateBudget distribui um valor anual em entradas mensais por item
func BulkCreateBudget(service budgeting.BudgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - BulkCreateBudget")

		actor, ok := actorFromRequest(w, r)
		if !ok {
			return
		}

		var request domain.BulkCreateBudgetRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		response, err := service.BulkCreate(r.Context(), actor, &request)
		if err != nil {
			logrus.Error(err)
			writeBudgetError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ApproveBudgetEntries aprova em lote as entradas submetidas informadas
func ApproveBudgetEntries(service budgeting.BudgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ApproveBudgetEntries")

		actor, ok := actorFromRequest(w, r)
		if !ok {
			return
		}

		var request domain.ApproveEntriesRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		response, err := service.ApproveEntries(r.Context(), actor, &request)
		if err != nil {
			logrus.Error(err)
			writeBudgetError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ApplySeasonalDistribution redistribui a entrada pelo calendário sazonal
func ApplySeasonalDistribution(service budgeting.BudgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ApplySeasonalDistribution")

		actor, ok := actorFromRequest(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		entry, err := service.ApplySeasonalDistribution(r.Context(), actor, id)
		if err != nil {
			logrus.Error(err)
			writeBudgetError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entry); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
