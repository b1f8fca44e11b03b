package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/stmbudget/sales-planning-api/internal/domain"
	"github.com/stmbudget/sales-planning-api/internal/scheduler"
	"github.com/stmbudget/sales-planning-api/internal/usecases/reporting"
	"github.com/stmbudget/sales-planning-api/pkg/apiErrors"
	"github.com/stmbudget/sales-planning-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeKPI = "kpi"
	CronJobTypeAll = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	KPIMetricsSyncService *scheduler.KPIMetricsSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Verificar permissões - apenas administradores podem executar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		// Validar o tipo de cron job
		switch cronType {
		case CronJobTypeKPI, CronJobTypeAll:
			if services.KPIMetricsSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de KPIs não disponível", nil)
				return
			}
			services.KPIMetricsSyncService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: kpi, all", nil)
			return
		}

		// Responder com sucesso
		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		// Verificar permissões - apenas administradores podem ver status das crons
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"kpi": services.KPIMetricsSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}

// RecalculateKPIMetrics recalcula as métricas de um período específico sob demanda
func RecalculateKPIMetrics(service reporting.KPIService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RecalculateKPIMetrics")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem recalcular métricas", nil)
			return
		}

		params := httprouter.ParamsFromContext(r.Context())

		year, err := strconv.Atoi(params.ByName("year"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido", nil)
			return
		}

		month, err := strconv.Atoi(params.ByName("month"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido", nil)
			return
		}

		count, err := service.CalculateMonthlyMetrics(r.Context(), year, month)
		if err != nil {
			logrus.Error(err)
			writeReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message":         "Métricas recalculadas com sucesso",
			"metrics_written": count,
		})
	}
}
