package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Situação do estoque
type InventoryStatus string

const (
	InventoryAvailable InventoryStatus = "available"
	InventoryReserved  InventoryStatus = "reserved"
	InventoryDamaged   InventoryStatus = "damaged"
	InventoryExpired   InventoryStatus = "expired"
)

// InventoryRecord acompanha o estoque de um item por localização
type InventoryRecord struct {
	ID                string          `json:"id"`
	ItemID            string          `json:"item_id"`
	Location          string          `json:"location"`
	CurrentStock      decimal.Decimal `json:"current_stock"`
	MinimumStockLevel decimal.Decimal `json:"minimum_stock_level"`
	MaximumStockLevel decimal.Decimal `json:"maximum_stock_level"`
	Status            InventoryStatus `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// IsLowStock indica estoque atual abaixo do nível mínimo
func (i *InventoryRecord) IsLowStock() bool {
	return i.CurrentStock.LessThanOrEqual(i.MinimumStockLevel)
}

// IsOutOfStock indica estoque zerado
func (i *InventoryRecord) IsOutOfStock() bool {
	return i.CurrentStock.IsZero()
}
