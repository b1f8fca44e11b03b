package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status do fluxo de aprovação de uma entrada de orçamento
type EntryStatus string

const (
	StatusDraft     EntryStatus = "draft"
	StatusSubmitted EntryStatus = "submitted"
	StatusApproved  EntryStatus = "approved"
	StatusRejected  EntryStatus = "rejected"
)

// Tipo de distribuição do orçamento anual entre os meses
type DistributionType string

const (
	DistributionEqual      DistributionType = "equal"
	DistributionPercentage DistributionType = "percentage"
	DistributionSeasonal   DistributionType = "seasonal"
	DistributionManual     DistributionType = "manual"
)

// BudgetEntry representa uma célula de orçamento (cliente, item, ano, mês).
// No máximo uma entrada por célula - garantido por constraint de unicidade.
type BudgetEntry struct {
	ID                 string           `json:"id"`
	CustomerID         string           `json:"customer_id"`
	ItemID             string           `json:"item_id"`
	Year               int              `json:"year"`
	Month              int              `json:"month"`
	Quantity           decimal.Decimal  `json:"quantity"`
	UnitPrice          decimal.Decimal  `json:"unit_price"`
	DiscountPercentage decimal.Decimal  `json:"discount_percentage"`
	TotalAmount        decimal.Decimal  `json:"total_amount"`
	DistributionType   DistributionType `json:"distribution_type"`
	SeasonalMultiplier decimal.Decimal  `json:"seasonal_multiplier"`
	IsManualEntry      bool             `json:"is_manual_entry"`
	Status             EntryStatus      `json:"status"`
	SalespersonID      *int             `json:"salesperson_id"`
	CreatedBy          *int             `json:"created_by"`
	ApprovedBy         *int             `json:"approved_by"`
	ApprovedAt         *time.Time       `json:"approved_at"`
	Notes              *string          `json:"notes"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// Quarter retorna o trimestre do mês da entrada (1-4)
func (b *BudgetEntry) Quarter() int {
	return (b.Month-1)/3 + 1
}

// IsMutable indica se a entrada ainda pode ser alterada pelo fluxo normal
func (b *BudgetEntry) IsMutable() bool {
	return b.Status == StatusDraft || b.Status == StatusSubmitted
}

// BudgetFilter define os filtros aplicáveis à listagem de orçamentos
type BudgetFilter struct {
	Year             *int
	Month            *int
	Quarter          *int
	CustomerID       *string
	ItemID           *string
	SalespersonID    *int
	Status           *EntryStatus
	DistributionType *DistributionType
	IsManualEntry    *bool
}

// Months resolve o filtro de período em uma lista de meses. Trimestre só é
// considerado quando o mês não foi informado.
func (f BudgetFilter) Months() []int {
	if f.Month != nil {
		return []int{*f.Month}
	}

	if f.Quarter != nil && *f.Quarter >= 1 && *f.Quarter <= 4 {
		first := (*f.Quarter-1)*3 + 1
		return []int{first, first + 1, first + 2}
	}

	return nil
}

// CreateBudgetEntryRequest é o payload de criação de uma entrada avulsa
type CreateBudgetEntryRequest struct {
	CustomerID         string          `json:"customer_id"`
	ItemID             string          `json:"item_id"`
	Year               int             `json:"year"`
	Month              int             `json:"month"`
	Quantity           decimal.Decimal `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	IsManualEntry      bool            `json:"is_manual_entry"`
	Notes              *string         `json:"notes"`
}

// UpdateBudgetEntryRequest é o payload de atualização parcial de uma entrada
type UpdateBudgetEntryRequest struct {
	ID                 string           `json:"id"`
	Quantity           *decimal.Decimal `json:"quantity"`
	UnitPrice          *decimal.Decimal `json:"unit_price"`
	DiscountPercentage *decimal.Decimal `json:"discount_percentage"`
	Status             *EntryStatus     `json:"status"`
	Notes              *string          `json:"notes"`
}

// BulkCreateBudgetRequest dispara o motor de distribuição: espalha um valor
// anual em 12 meses por item do cliente
type BulkCreateBudgetRequest struct {
	CustomerID       string           `json:"customer_id"`
	ItemIDs          []string         `json:"item_ids"`
	Year             int              `json:"year"`
	TotalAmount      decimal.Decimal  `json:"total_amount"`
	DistributionType DistributionType `json:"distribution_type"`
	// Quantidades por mês informadas pelo usuário (distribuição manual/percentual)
	ManualQuantities map[int]decimal.Decimal `json:"manual_quantities,omitempty"`
}

// BulkCreateBudgetResponse reporta o resultado do lote
type BulkCreateBudgetResponse struct {
	EntriesCreated int    `json:"entries_created"`
	Message        string `json:"message"`
}

// ApproveEntriesRequest é o payload de aprovação em lote
type ApproveEntriesRequest struct {
	EntryIDs []string `json:"entry_ids"`
}

// ApproveEntriesResponse reporta quantas entradas foram de fato aprovadas
type ApproveEntriesResponse struct {
	ApprovedCount int    `json:"approved_count"`
	Message       string `json:"message"`
}
