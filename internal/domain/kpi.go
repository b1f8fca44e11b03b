package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de métrica calculados pela rotina de KPIs
type MetricType string

const (
	MetricSalesTotal       MetricType = "sales_total"
	MetricSalesGrowth      MetricType = "sales_growth"
	MetricForecastAccuracy MetricType = "forecast_accuracy"
	MetricBudgetVariance   MetricType = "budget_variance"
)

// Granularidade do período da métrica
type PeriodType string

const (
	PeriodDaily     PeriodType = "daily"
	PeriodWeekly    PeriodType = "weekly"
	PeriodMonthly   PeriodType = "monthly"
	PeriodQuarterly PeriodType = "quarterly"
	PeriodYearly    PeriodType = "yearly"
)

// KPIMetric é um snapshot periódico derivado dos dados de orçamento e
// forecast. Uma linha por (tipo, período, data, dimensões) - upsert.
type KPIMetric struct {
	ID                   string           `json:"id"`
	MetricType           MetricType       `json:"metric_type"`
	PeriodType           PeriodType       `json:"period_type"`
	PeriodDate           time.Time        `json:"period_date"`
	Value                decimal.Decimal  `json:"value"`
	TargetValue          *decimal.Decimal `json:"target_value"`
	PreviousValue        *decimal.Decimal `json:"previous_value"`
	VarianceFromTarget   decimal.Decimal  `json:"variance_from_target"`
	GrowthRate           decimal.Decimal  `json:"growth_rate"`
	DimensionCustomerID  *string          `json:"dimension_customer_id"`
	DimensionItemID      *string          `json:"dimension_item_id"`
	DimensionSalesperson *int             `json:"dimension_salesperson_id"`
	CalculationMethod    *string          `json:"calculation_method"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

// IsAboveTarget indica se a métrica superou a meta (nil quando não há meta)
func (k *KPIMetric) IsAboveTarget() *bool {
	if k.TargetValue == nil {
		return nil
	}

	above := k.Value.GreaterThan(*k.TargetValue)
	return &above
}

// PerformanceIndicator devolve a cor do indicador usado no dashboard
func (k *KPIMetric) PerformanceIndicator() string {
	if k.TargetValue == nil || k.TargetValue.IsZero() {
		return "neutral"
	}

	variancePct := k.VarianceFromTarget.Abs().Div(*k.TargetValue).Mul(decimal.NewFromInt(100))

	if k.Value.GreaterThanOrEqual(*k.TargetValue) {
		if variancePct.LessThanOrEqual(decimal.NewFromInt(5)) {
			return "excellent"
		}
		return "good"
	}

	if variancePct.LessThanOrEqual(decimal.NewFromInt(10)) {
		return "warning"
	}
	return "danger"
}
