package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/stmbudget/sales-planning-api/internal/domain"
	"github.com/stmbudget/sales-planning-api/internal/usecases/reporting"
	"github.com/stmbudget/sales-planning-api/pkg/apiErrors"
	"github.com/stmbudget/sales-planning-api/pkg/utils"
)

// writeReportError converte erros do caso de uso na resposta HTTP padronizada
func writeReportError(w http.ResponseWriter, err error) {
	var reportErr *reporting.ReportError
	if errors.As(err, &reportErr) {
		apiErrors.WriteError(w, reportErr.Code, reportErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao gerar relatório", nil)
}

// requireYear lê o parâmetro obrigatório year da query string
func requireYear(w http.ResponseWriter, r *http.Request) (int, bool) {
	year := queryInt(r, "year")
	if year == nil {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe o ano do relatório", nil)
		return 0, false
	}

	return *year, true
}

// GetVarianceAnalysis retorna a análise de variação forecast x orçamento do ano
func GetVarianceAnalysis(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromRequest(w, r)
		if !ok {
			return
		}

		year, ok := requireYear(w, r)
		if !ok {
			return
		}

		analysis, err := service.VarianceAnalysis(r.Context(), actor, year, forecastFilterFromQuery(r))
		if err != nil {
			logrus.Error(err)
			writeReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(analysis); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetBudgetSummary retorna o resumo anual do orçamento
func GetBudgetSummary(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromRequest(w, r)
		if !ok {
			return
		}

		year, ok := requireYear(w, r)
		if !ok {
			return
		}

		summary, err := service.BudgetSummary(r.Context(), actor, year, budgetFilterFromQuery(r))
		if err != nil {
			logrus.Error(err)
			writeReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetForecastSummary retorna o resumo anual do forecast
func GetForecastSummary(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromRequest(w, r)
		if !ok {
			return
		}

		year, ok := requireYear(w, r)
		if !ok {
			return
		}

		summary, err := service.ForecastSummary(r.Context(), actor, year, forecastFilterFromQuery(r))
		if err != nil {
			logrus.Error(err)
			writeReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// requireYearMonth lê os parâmetros obrigatórios year e month da query string
func requireYearMonth(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	year := queryInt(r, "year")
	month := queryInt(r, "month")
	if year == nil || month == nil {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe ano e mês do relatório", nil)
		return 0, 0, false
	}

	return *year, *month, true
}

// GetMonthlyBudgetDetail retorna o detalhamento do orçamento de um mês
func GetMonthlyBudgetDetail(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromRequest(w, r)
		if !ok {
			return
		}

		year, month, ok := requireYearMonth(w, r)
		if !ok {
			return
		}

		detail, err := service.MonthlyBudgetDetail(r.Context(), actor, year, month)
		if err != nil {
			logrus.Error(err)
			writeReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(detail); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetMonthlyForecastDetail retorna o detalhamento do forecast de um mês
func GetMonthlyForecastDetail(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromRequest(w, r)
		if !ok {
			return
		}

		year, month, ok := requireYearMonth(w, r)
		if !ok {
			return
		}

		detail, err := service.MonthlyForecastDetail(r.Context(), actor, year, month)
		if err != nil {
			logrus.Error(err)
			writeReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(detail); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ExportBudgetReport gera e devolve a planilha anual do orçamento
func ExportBudgetReport(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ExportBudgetReport")

		actor, ok := actorFromRequest(w, r)
		if !ok {
			return
		}

		year, ok := requireYear(w, r)
		if !ok {
			return
		}

		data, err := service.ExportBudgetReport(r.Context(), actor, year)
		if err != nil {
			logrus.Error(err)
			writeReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="orcamento_%d.xlsx"`, year))
		if _, err := bytes.NewReader(data).WriteTo(w); err != nil {
			logrus.Error(err)
		}
	}
}

// GetKPIDashboard lista as métricas do painel para o período informado
func GetKPIDashboard(service reporting.KPIService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := actorFromRequest(w, r); !ok {
			return
		}

		periodType := domain.PeriodMonthly
		if raw := queryString(r, "period_type"); raw != nil {
			periodType = domain.PeriodType(*raw)
		}

		from, err := utils.ParseDate(r.URL.Query().Get("from"))
		if err != nil || from.IsZero() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		to, err := utils.ParseDate(r.URL.Query().Get("to"))
		if err != nil || to.IsZero() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		metrics, err := service.Dashboard(r.Context(), periodType, *from, *to)
		if err != nil {
			logrus.Error(err)
			writeReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(metrics); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
