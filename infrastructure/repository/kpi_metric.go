package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/stmbudget/sales-planning-api/infrastructure/database/postgres"
	"github.com/stmbudget/sales-planning-api/internal/domain"
)

const (
	kpiMetricsTable = "kpi_metrics"

	kpiMetricColumns = `id, metric_type, period_type, period_date, value, target_value,
		previous_value, variance_from_target, growth_rate, dimension_customer_id,
		dimension_item_id, dimension_salesperson_id, calculation_method,
		created_at, updated_at`
)

type KPIMetricRepository interface {
	Upsert(metric *domain.KPIMetric) error
	ListByPeriod(periodType domain.PeriodType, from, to time.Time) ([]*domain.KPIMetric, error)
	GetLatest(metricType domain.MetricType, periodType domain.PeriodType) (*domain.KPIMetric, error)
}

type kpiMetricRepository struct {
	conn *postgres.Connection
}

func NewKPIMetricRepository(conn *postgres.Connection) KPIMetricRepository {
	return &kpiMetricRepository{
		conn: conn,
	}
}

// Upsert grava a métrica do período, sobrescrevendo o snapshot anterior
// da mesma combinação (tipo, período, data, dimensões). O índice único
// usa COALESCE nas dimensões para tratar NULL como valor comparável.
func (r *kpiMetricRepository) Upsert(metric *domain.KPIMetric) error {
	query, args, err := squirrel.
		Insert(kpiMetricsTable).
		Columns(
			"id", "metric_type", "period_type", "period_date", "value",
			"target_value", "previous_value", "variance_from_target", "growth_rate",
			"dimension_customer_id", "dimension_item_id", "dimension_salesperson_id",
			"calculation_method",
		).
		Values(
			metric.ID, metric.MetricType, metric.PeriodType, metric.PeriodDate,
			metric.Value, metric.TargetValue, metric.PreviousValue,
			metric.VarianceFromTarget, metric.GrowthRate,
			metric.DimensionCustomerID, metric.DimensionItemID,
			metric.DimensionSalesperson, metric.CalculationMethod,
		).
		Suffix(`ON CONFLICT (metric_type, period_type, period_date,
			COALESCE(dimension_customer_id, ''), COALESCE(dimension_item_id, ''),
			COALESCE(dimension_salesperson_id, 0))
			DO UPDATE SET
				value = EXCLUDED.value,
				target_value = EXCLUDED.target_value,
				previous_value = EXCLUDED.previous_value,
				variance_from_target = EXCLUDED.variance_from_target,
				growth_rate = EXCLUDED.growth_rate,
				calculation_method = EXCLUDED.calculation_method,
				updated_at = NOW()`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *kpiMetricRepository) ListByPeriod(periodType domain.PeriodType, from, to time.Time) ([]*domain.KPIMetric, error) {
	query, args, err := squirrel.
		Select(kpiMetricColumns).
		From(kpiMetricsTable).
		Where(squirrel.Eq{"period_type": periodType}).
		Where(squirrel.GtOrEq{"period_date": from}).
		Where(squirrel.LtOrEq{"period_date": to}).
		OrderBy("period_date DESC", "metric_type ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	metrics := make([]*domain.KPIMetric, 0)
	for rows.Next() {
		metric, err := scanKPIMetric(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear métricas: %w", err)
		}
		metrics = append(metrics, metric)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return metrics, nil
}

func (r *kpiMetricRepository) GetLatest(metricType domain.MetricType, periodType domain.PeriodType) (*domain.KPIMetric, error) {
	query, args, err := squirrel.
		Select(kpiMetricColumns).
		From(kpiMetricsTable).
		Where(squirrel.Eq{"metric_type": metricType, "period_type": periodType}).
		OrderBy("period_date DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	metric, err := scanKPIMetric(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear métrica: %w", err)
	}

	return metric, nil
}

func scanKPIMetric(row rowScanner) (*domain.KPIMetric, error) {
	metric := &domain.KPIMetric{}

	err := row.Scan(
		&metric.ID,
		&metric.MetricType,
		&metric.PeriodType,
		&metric.PeriodDate,
		&metric.Value,
		&metric.TargetValue,
		&metric.PreviousValue,
		&metric.VarianceFromTarget,
		&metric.GrowthRate,
		&metric.DimensionCustomerID,
		&metric.DimensionItemID,
		&metric.DimensionSalesperson,
		&metric.CalculationMethod,
		&metric.CreatedAt,
		&metric.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return metric, nil
}
