package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipo de cenário do forecast
type ForecastType string

const (
	ForecastOptimistic  ForecastType = "optimistic"
	ForecastRealistic   ForecastType = "realistic"
	ForecastPessimistic ForecastType = "pessimistic"
)

// Categorias de variação, por faixa do percentual absoluto
const (
	VarianceMinimal     = "minimal"
	VarianceModerate    = "moderate"
	VarianceSignificant = "significant"
	VarianceMajor       = "major"
)

// ForecastEntry representa uma versão de forecast para uma célula
// (cliente, item, ano, mês). Exatamente uma versão por célula tem
// IsLatest=true, sempre a de maior número.
type ForecastEntry struct {
	ID                         string          `json:"id"`
	CustomerID                 string          `json:"customer_id"`
	ItemID                     string          `json:"item_id"`
	Year                       int             `json:"year"`
	Month                      int             `json:"month"`
	ForecastedQuantity         decimal.Decimal `json:"forecasted_quantity"`
	ForecastedAmount           decimal.Decimal `json:"forecasted_amount"`
	BudgetQuantity             decimal.Decimal `json:"budget_quantity"`
	BudgetAmount               decimal.Decimal `json:"budget_amount"`
	QuantityVariance           decimal.Decimal `json:"quantity_variance"`
	AmountVariance             decimal.Decimal `json:"amount_variance"`
	QuantityVariancePercentage decimal.Decimal `json:"quantity_variance_percentage"`
	AmountVariancePercentage   decimal.Decimal `json:"amount_variance_percentage"`
	ForecastType               ForecastType    `json:"forecast_type"`
	ConfidenceLevel            int             `json:"confidence_level"`
	IsLatest                   bool            `json:"is_latest"`
	Version                    int             `json:"version"`
	Status                     EntryStatus     `json:"status"`
	SalespersonID              *int            `json:"salesperson_id"`
	CreatedBy                  *int            `json:"created_by"`
	ApprovedBy                 *int            `json:"approved_by"`
	ApprovedAt                 *time.Time      `json:"approved_at"`
	Notes                      *string         `json:"notes"`
	ForecastReasoning          *string         `json:"forecast_reasoning"`
	MarketConditions           *string         `json:"market_conditions"`
	CreatedAt                  time.Time       `json:"created_at"`
	UpdatedAt                  time.Time       `json:"updated_at"`
}

// Quarter retorna o trimestre do mês da entrada (1-4)
func (f *ForecastEntry) Quarter() int {
	return (f.Month-1)/3 + 1
}

// IsFavorableVariance indica variação favorável (forecast acima do orçamento)
func (f *ForecastEntry) IsFavorableVariance() bool {
	return f.AmountVariance.GreaterThan(decimal.Zero)
}

// VarianceCategory classifica a variação pelo percentual absoluto do valor
func (f *ForecastEntry) VarianceCategory() string {
	abs := f.AmountVariancePercentage.Abs()

	switch {
	case abs.LessThanOrEqual(decimal.NewFromInt(5)):
		return VarianceMinimal
	case abs.LessThanOrEqual(decimal.NewFromInt(15)):
		return VarianceModerate
	case abs.LessThanOrEqual(decimal.NewFromInt(30)):
		return VarianceSignificant
	default:
		return VarianceMajor
	}
}

// IsMutable indica se a entrada ainda pode ser alterada pelo fluxo normal
func (f *ForecastEntry) IsMutable() bool {
	return f.Status == StatusDraft || f.Status == StatusSubmitted
}

// ForecastFilter define os filtros aplicáveis à listagem de forecasts
type ForecastFilter struct {
	Year          *int
	Month         *int
	Quarter       *int
	CustomerID    *string
	ItemID        *string
	SalespersonID *int
	Status        *EntryStatus
	ForecastType  *ForecastType
	IsLatest      *bool
}

// Months resolve mês/trimestre em uma lista de meses, como no BudgetFilter
func (f ForecastFilter) Months() []int {
	return BudgetFilter{Month: f.Month, Quarter: f.Quarter}.Months()
}

// CreateForecastEntryRequest é o payload de criação de uma versão de forecast
type CreateForecastEntryRequest struct {
	CustomerID         string          `json:"customer_id"`
	ItemID             string          `json:"item_id"`
	Year               int             `json:"year"`
	Month              int             `json:"month"`
	ForecastedQuantity decimal.Decimal `json:"forecasted_quantity"`
	ForecastedAmount   decimal.Decimal `json:"forecasted_amount"`
	ForecastType       ForecastType    `json:"forecast_type"`
	ConfidenceLevel    *int            `json:"confidence_level"`
	Notes              *string         `json:"notes"`
	ForecastReasoning  *string         `json:"forecast_reasoning"`
	MarketConditions   *string         `json:"market_conditions"`
}

// UpdateForecastEntryRequest é o payload de atualização parcial
type UpdateForecastEntryRequest struct {
	ID                 string           `json:"id"`
	ForecastedQuantity *decimal.Decimal `json:"forecasted_quantity"`
	ForecastedAmount   *decimal.Decimal `json:"forecasted_amount"`
	ForecastType       *ForecastType    `json:"forecast_type"`
	ConfidenceLevel    *int             `json:"confidence_level"`
	Status             *EntryStatus     `json:"status"`
	Notes              *string          `json:"notes"`
	ForecastReasoning  *string          `json:"forecast_reasoning"`
}

// MonthForecastData carrega os valores de um mês no bulk create
type MonthForecastData struct {
	Month            int             `json:"month"`
	ForecastedAmount decimal.Decimal `json:"forecasted_amount"`
	ForecastType     ForecastType    `json:"forecast_type"`
}

// BulkCreateForecastRequest cria forecasts para vários meses e itens de uma vez
type BulkCreateForecastRequest struct {
	CustomerID   string              `json:"customer_id"`
	ItemIDs      []string            `json:"item_ids"`
	Year         int                 `json:"year"`
	ForecastData []MonthForecastData `json:"forecast_data"`
}

// BulkCreateForecastResponse reporta o resultado do lote
type BulkCreateForecastResponse struct {
	EntriesCreated int    `json:"entries_created"`
	Message        string `json:"message"`
}
