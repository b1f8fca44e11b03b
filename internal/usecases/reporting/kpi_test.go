package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stmbudget/sales-planning-api/infrastructure/cache"
	"github.com/stmbudget/sales-planning-api/infrastructure/repository/mocks"
	"github.com/stmbudget/sales-planning-api/internal/domain"
)

func newTestCalculator(t *testing.T) (*KPICalculator, *mocks.MockKPIMetricRepository, *mocks.MockBudgetEntryRepository, *mocks.MockForecastEntryRepository) {
	ctrl := gomock.NewController(t)

	kpiRepo := mocks.NewMockKPIMetricRepository(ctrl)
	budgetRepo := mocks.NewMockBudgetEntryRepository(ctrl)
	forecastRepo := mocks.NewMockForecastEntryRepository(ctrl)

	calculator := &KPICalculator{
		kpiRepository:      kpiRepo,
		budgetRepository:   budgetRepo,
		forecastRepository: forecastRepo,
		cache:              cache.NewNoopCache(),
		dashboardTTL:       time.Minute,
	}

	return calculator, kpiRepo, budgetRepo, forecastRepo
}

func TestCalculateMonthlyMetrics(t *testing.T) {
	t.Run("GravaAsQuatroMetricasDoPeriodo", func(t *testing.T) {
		calculator, kpiRepo, budgetRepo, forecastRepo := newTestCalculator(t)

		// orçamento aprovado do mês corrente e do anterior
		budgetRepo.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(filter domain.BudgetFilter, _ squirrel.Sqlizer) ([]*domain.BudgetEntry, error) {
				if *filter.Month == 3 {
					return []*domain.BudgetEntry{
						{TotalAmount: d("7000"), Status: domain.StatusApproved},
						{TotalAmount: d("5000"), Status: domain.StatusApproved},
					}, nil
				}
				return []*domain.BudgetEntry{
					{TotalAmount: d("10000"), Status: domain.StatusApproved},
				}, nil
			}).Times(2)

		forecastRepo.EXPECT().ListLatest(gomock.Any(), gomock.Any()).Return([]*domain.ForecastEntry{
			forecastEntry("11400", "12000", "-600", "-5", 80),
		}, nil)

		recorded := make(map[domain.MetricType]*domain.KPIMetric)
		kpiRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(metric *domain.KPIMetric) error {
			recorded[metric.MetricType] = metric
			return nil
		}).Times(4)

		count, err := calculator.CalculateMonthlyMetrics(context.Background(), 2025, 3)
		require.NoError(t, err)
		assert.Equal(t, 4, count)

		salesTotal := recorded[domain.MetricSalesTotal]
		require.NotNil(t, salesTotal)
		assert.Equal(t, "12000", salesTotal.Value.String())
		assert.Equal(t, "10000", salesTotal.PreviousValue.String())
		// (12000 - 10000) / 10000 * 100 = 20
		assert.Equal(t, "20", salesTotal.GrowthRate.String())
		assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), salesTotal.PeriodDate)
		assert.NotEmpty(t, salesTotal.ID)
		assert.Equal(t, "monthly_batch", *salesTotal.CalculationMethod)

		assert.Equal(t, "20", recorded[domain.MetricSalesGrowth].Value.String())
		// 100 - |11400-12000|/12000*100 = 95
		assert.Equal(t, "95", recorded[domain.MetricForecastAccuracy].Value.String())
		assert.Equal(t, "-600", recorded[domain.MetricBudgetVariance].Value.String())
	})

	t.Run("JaneiroBuscaDezembroDoAnoAnterior", func(t *testing.T) {
		calculator, kpiRepo, budgetRepo, forecastRepo := newTestCalculator(t)

		previousPeriods := make(map[int]int)
		budgetRepo.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(filter domain.BudgetFilter, _ squirrel.Sqlizer) ([]*domain.BudgetEntry, error) {
				previousPeriods[*filter.Year] = *filter.Month
				return []*domain.BudgetEntry{}, nil
			}).Times(2)

		forecastRepo.EXPECT().ListLatest(gomock.Any(), gomock.Any()).Return([]*domain.ForecastEntry{}, nil)
		kpiRepo.EXPECT().Upsert(gomock.Any()).Return(nil).Times(4)

		_, err := calculator.CalculateMonthlyMetrics(context.Background(), 2025, 1)
		require.NoError(t, err)

		assert.Equal(t, 1, previousPeriods[2025])
		assert.Equal(t, 12, previousPeriods[2024])
	})

	t.Run("MesInvalidoFalha", func(t *testing.T) {
		calculator, _, _, _ := newTestCalculator(t)

		_, err := calculator.CalculateMonthlyMetrics(context.Background(), 2025, 13)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidMonth)
	})
}

func TestDashboard(t *testing.T) {
	t.Run("ListaMetricasDoPeriodo", func(t *testing.T) {
		calculator, kpiRepo, _, _ := newTestCalculator(t)

		from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

		kpiRepo.EXPECT().ListByPeriod(domain.PeriodMonthly, from, to).Return([]*domain.KPIMetric{
			{MetricType: domain.MetricSalesTotal, Value: d("12000")},
		}, nil)

		metrics, err := calculator.Dashboard(context.Background(), domain.PeriodMonthly, from, to)
		require.NoError(t, err)

		require.Len(t, metrics, 1)
		assert.Equal(t, domain.MetricSalesTotal, metrics[0].MetricType)
	})
}
