package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/stmbudget/sales-planning-api/internal/domain"
	"github.com/stmbudget/sales-planning-api/internal/usecases/forecasting"
	"github.com/stmbudget/sales-planning-api/pkg/apiErrors"
)

// forecastFilterFromQuery monta o filtro de listagem a partir da query string
func forecastFilterFromQuery(r *http.Request) domain.ForecastFilter {
	filter := domain.ForecastFilter{
		Year:          queryInt(r, "year"),
		Month:         queryInt(r, "month"),
		Quarter:       queryInt(r, "quarter"),
		CustomerID:    queryString(r, "customer_id"),
		ItemID:        queryString(r, "item_id"),
		SalespersonID: queryInt(r, "salesperson_id"),
		IsLatest:      queryBool(r, "is_latest"),
	}

	if raw := queryString(r, "status"); raw != nil {
		status := domain.EntryStatus(*raw)
		filter.Status = &status
	}

	if raw := queryString(r, "forecast_type"); raw != nil {
		forecastType := domain.ForecastType(*raw)
		filter.ForecastType = &forecastType
	}

	return filter
}

// writeForecastError converte erros do caso de uso na resposta HTTP padronizada
func writeForecastError(w http.ResponseWriter, err error) {
	var forecastErr *forecasting.ForecastError
	if errors.As(err, &forecastErr) {
		var details map[string]any
		if forecastErr.EntryID != "" {
			details = map[string]any{"entry_id": forecastErr.EntryID}
		}
		apiErrors.WriteError(w, forecastErr.Code, forecastErr.Error(), details)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar forecast", nil)
}

// ListForecastEntries lista entradas de forecast com filtros opcionais
func ListForecastEntries(service forecasting.ForecastService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromRequest(w, r)
		if !ok {
			return
		}

		entries, err := service.ListEntries(actor, forecastFilterFromQuery(r))
		if err != nil {
			logrus.Error(err)
			writeForecastError(w, err)
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

// GetForecastEntry retorna uma entrada de forecast por ID
func GetForecastEntry(service forecasting.ForecastService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromRequest(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		entry, err := service.GetEntry(actor, id)
		if err != nil {
			logrus.Error(err)
			writeForecastError(w, err)
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

// CreateForecastEntry grava uma nova versão de forecast para a célula
func CreateForecastEntry(service forecasting.ForecastService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateForecastEntry")

		actor, ok := actorFromRequest(w, r)
		if !ok {
			return
		}

		var request domain.CreateForecastEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		entry, err := service.CreateEntry(r.Context(), actor, &request)
		if err != nil {
			logrus.Error(err)
			writeForecastError(w, err)
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

// UpdateForecastEntry atualiza parcialmente uma entrada de forecast
func UpdateForecastEntry(service forecasting.ForecastService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateForecastEntry")

		actor, ok := actorFromRequest(w, r)
		if !ok {
			return
		}

		var request domain.UpdateForecastEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		request.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		entry, err := service.UpdateEntry(r.Context(), actor, &request)
		if err != nil {
			logrus.Error(err)
			writeForecastError(w, err)
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

// DeleteForecastEntry remove uma entrada de forecast
func DeleteForecastEntry(service forecasting.ForecastService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteForecastEntry")

		actor, ok := actorFromRequest(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteEntry(r.Context(), actor, id); err != nil {
			logrus.Error(err)
			writeForecastError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// BulkCreateForecast cria versões de forecast para vários meses e itens
func BulkCreateForecast(service forecasting.ForecastService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - BulkCreateForecast")

		actor, ok := actorFromRequest(w, r)
		if !ok {
			return
		}

		var request domain.BulkCreateForecastRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		response, err := service.BulkCreate(r.Context(), actor, &request)
		if err != nil {
			logrus.Error(err)
			writeForecastError(w, err)
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

// ApproveForecastEntries aprova em lote as entradas submetidas informadas
func ApproveForecastEntries(service forecasting.ForecastService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ApproveForecastEntries")

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
			writeForecastError(w, err)
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
