package reporting

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stmbudget/sales-planning-api/infrastructure/cache"
	"github.com/stmbudget/sales-planning-api/infrastructure/repository"
	"github.com/stmbudget/sales-planning-api/internal/domain"
	"github.com/stmbudget/sales-planning-api/pkg/apiErrors"
	"github.com/stmbudget/sales-planning-api/pkg/money"
	"github.com/stmbudget/sales-planning-api/pkg/utils"
)

// KPIService calcula e consulta os snapshots periódicos de métricas.
// Roda pelo agendador mensal e sob demanda pelo endpoint de cron.
type KPIService interface {
	CalculateMonthlyMetrics(ctx context.Context, year, month int) (int, error)
	Dashboard(ctx context.Context, periodType domain.PeriodType, from, to time.Time) ([]*domain.KPIMetric, error)
}

type KPICalculator struct {
	kpiRepository      repository.KPIMetricRepository
	budgetRepository   repository.BudgetEntryRepository
	forecastRepository repository.ForecastEntryRepository
	cache              cache.Cache
	dashboardTTL       time.Duration
}

func NewKPICalculator(
	kpiRepository repository.KPIMetricRepository,
	budgetRepository repository.BudgetEntryRepository,
	forecastRepository repository.ForecastEntryRepository,
	cacheClient cache.Cache,
	dashboardTTLSeconds int,
) KPIService {
	return &KPICalculator{
		kpiRepository:      kpiRepository,
		budgetRepository:   budgetRepository,
		forecastRepository: forecastRepository,
		cache:              cacheClient,
		dashboardTTL:       time.Duration(dashboardTTLSeconds) * time.Second,
	}
}

// CalculateMonthlyMetrics recalcula os snapshots mensais do período:
// total de vendas orçado aprovado, crescimento sobre o mês anterior,
// acurácia do forecast e variação total contra o orçamento. Cada métrica
// é gravada por upsert, então reexecutar o período é idempotente.
func (s *KPICalculator) CalculateMonthlyMetrics(ctx context.Context, year, month int) (int, error) {
	if month < 1 || month > 12 {
		return 0, NewReportError(ErrInvalidMonth, apiErrors.ErrInvalidRequest, "Mês deve estar entre 1 e 12")
	}

	periodDate := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)

	salesTotal, err := s.approvedBudgetTotal(year, month)
	if err != nil {
		return 0, err
	}

	previousYear, previousMonth := year, month-1
	if previousMonth == 0 {
		previousYear, previousMonth = year-1, 12
	}

	previousTotal, err := s.approvedBudgetTotal(previousYear, previousMonth)
	if err != nil {
		return 0, err
	}

	forecastTotal, budgetTotal, varianceTotal, err := s.forecastTotals(year, month)
	if err != nil {
		return 0, err
	}

	metrics := []*domain.KPIMetric{
		{
			MetricType:    domain.MetricSalesTotal,
			PeriodType:    domain.PeriodMonthly,
			PeriodDate:    periodDate,
			Value:         salesTotal,
			PreviousValue: &previousTotal,
			GrowthRate:    money.GrowthRate(salesTotal, previousTotal),
		},
		{
			MetricType: domain.MetricSalesGrowth,
			PeriodType: domain.PeriodMonthly,
			PeriodDate: periodDate,
			Value:      money.GrowthRate(salesTotal, previousTotal),
		},
		{
			MetricType: domain.MetricForecastAccuracy,
			PeriodType: domain.PeriodMonthly,
			PeriodDate: periodDate,
			Value:      money.AccuracyScore(forecastTotal, budgetTotal),
		},
		{
			MetricType: domain.MetricBudgetVariance,
			PeriodType: domain.PeriodMonthly,
			PeriodDate: periodDate,
			Value:      varianceTotal,
		},
	}

	for _, metric := range metrics {
		id, err := utils.GenerateID()
		if err != nil {
			return 0, NewReportError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador da métrica")
		}
		metric.ID = id

		method := "monthly_batch"
		metric.CalculationMethod = &method

		if metric.TargetValue != nil {
			metric.VarianceFromTarget = metric.Value.Sub(*metric.TargetValue)
		}

		if err := s.kpiRepository.Upsert(metric); err != nil {
			logrus.Error("Error upserting KPI metric on the repository:", err)
			return 0, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao gravar métrica de KPI")
		}
	}

	s.cache.DeleteByPrefix(ctx, cache.KPIPrefix())

	logrus.Infof("%d KPI metrics were successfully calculated for %d-%02d", len(metrics), year, month)

	return len(metrics), nil
}

func (s *KPICalculator) Dashboard(ctx context.Context, periodType domain.PeriodType, from, to time.Time) ([]*domain.KPIMetric, error) {
	key := cache.KPIPrefix() + string(periodType) + ":" + from.Format("2006-01-02") + ":" + to.Format("2006-01-02")

	cached := make([]*domain.KPIMetric, 0)
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	metrics, err := s.kpiRepository.ListByPeriod(periodType, from, to)
	if err != nil {
		logrus.Error("Error listing KPI metrics on the repository:", err)
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao listar métricas de KPI")
	}

	s.cache.Set(ctx, key, metrics, s.dashboardTTL)

	return metrics, nil
}

func (s *KPICalculator) approvedBudgetTotal(year, month int) (decimal.Decimal, error) {
	status := domain.StatusApproved
	filter := domain.BudgetFilter{Year: &year, Month: &month, Status: &status}

	entries, err := s.budgetRepository.List(filter, nil)
	if err != nil {
		logrus.Error("Error listing budget entries on the repository:", err)
		return decimal.Zero, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao listar entradas de orçamento")
	}

	total := decimal.Zero
	for _, entry := range entries {
		total = total.Add(entry.TotalAmount)
	}

	return total, nil
}

func (s *KPICalculator) forecastTotals(year, month int) (forecastTotal, budgetTotal, varianceTotal decimal.Decimal, err error) {
	filter := domain.ForecastFilter{Year: &year, Month: &month}

	entries, err := s.forecastRepository.ListLatest(filter, nil)
	if err != nil {
		logrus.Error("Error listing latest forecast entries on the repository:", err)
		return decimal.Zero, decimal.Zero, decimal.Zero, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao listar entradas de forecast")
	}

	for _, entry := range entries {
		forecastTotal = forecastTotal.Add(entry.ForecastedAmount)
		budgetTotal = budgetTotal.Add(entry.BudgetAmount)
		varianceTotal = varianceTotal.Add(entry.AmountVariance)
	}

	return forecastTotal, budgetTotal, varianceTotal, nil
}
