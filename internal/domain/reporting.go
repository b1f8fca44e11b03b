package domain

import "github.com/shopspring/decimal"

// VarianceAnalysis é o resultado da análise anual de variação
// forecast x orçamento (somente versões mais recentes)
type VarianceAnalysis struct {
	Period                string          `json:"period"`
	TotalForecastAmount   decimal.Decimal `json:"total_forecast_amount"`
	TotalBudgetAmount     decimal.Decimal `json:"total_budget_amount"`
	TotalVariance         decimal.Decimal `json:"total_variance"`
	AvgVariancePercentage decimal.Decimal `json:"variance_percentage"`
	PositiveVariances     int             `json:"positive_variances"`
	NegativeVariances     int             `json:"negative_variances"`
	TotalEntries          int             `json:"total_entries"`
	AccuracyScore         decimal.Decimal `json:"accuracy_score"`
	AvgConfidence         decimal.Decimal `json:"avg_confidence"`
}

// MonthlyBreakdownRow é uma linha do detalhamento mensal dos sumários
type MonthlyBreakdownRow struct {
	Month         int             `json:"month"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	BudgetAmount  decimal.Decimal `json:"budget_amount,omitempty"`
	Variance      decimal.Decimal `json:"variance,omitempty"`
	EntryCount    int             `json:"entry_count"`
}

// BudgetSummary agrega as estatísticas anuais de orçamento
type BudgetSummary struct {
	Year               int                   `json:"year"`
	TotalAmount        decimal.Decimal       `json:"total_amount"`
	TotalQuantity      decimal.Decimal       `json:"total_quantity"`
	EntryCount         int                   `json:"entry_count"`
	AvgUnitPrice       decimal.Decimal       `json:"avg_unit_price"`
	ApprovedAmount     decimal.Decimal       `json:"approved_amount"`
	DraftAmount        decimal.Decimal       `json:"draft_amount"`
	ApprovedPercentage decimal.Decimal       `json:"approved_percentage"`
	DraftPercentage    decimal.Decimal       `json:"draft_percentage"`
	MonthlyBreakdown   []MonthlyBreakdownRow `json:"monthly_breakdown"`
}

// ForecastSummary agrega as estatísticas anuais de forecast
type ForecastSummary struct {
	Year             int                   `json:"year"`
	TotalAmount      decimal.Decimal       `json:"total_forecast_amount"`
	EntryCount       int                   `json:"total_entries"`
	AvgConfidence    decimal.Decimal       `json:"avg_confidence"`
	ApprovedAmount   decimal.Decimal       `json:"approved_amount"`
	DraftAmount      decimal.Decimal       `json:"draft_amount"`
	MonthlyBreakdown []MonthlyBreakdownRow `json:"monthly_breakdown"`
}

// TopEntity é um item/cliente destacado no detalhamento mensal
type TopEntity struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// MonthlyBudgetDetail é a visão detalhada de um mês de orçamento
type MonthlyBudgetDetail struct {
	Month         int             `json:"month"`
	MonthName     string          `json:"month_name"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	EntryCount    int             `json:"entry_count"`
	TopItems      []TopEntity     `json:"top_items"`
	TopCustomers  []TopEntity     `json:"top_customers"`
}

// MonthlyForecastDetail é a visão detalhada de um mês de forecast
type MonthlyForecastDetail struct {
	Month              int             `json:"month"`
	MonthName          string          `json:"month_name"`
	TotalForecast      decimal.Decimal `json:"total_forecast"`
	TotalBudget        decimal.Decimal `json:"total_budget"`
	Variance           decimal.Decimal `json:"variance"`
	VariancePercentage decimal.Decimal `json:"variance_percentage"`
	AvgConfidence      decimal.Decimal `json:"confidence_avg"`
	EntryCount         int             `json:"entry_count"`
}

// MonthNames indexado por mês (1-12); posição 0 vazia
var MonthNames = [13]string{
	"", "January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}
