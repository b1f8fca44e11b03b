package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa um produto planejável, com categoria e marca achatadas
// como código/nome (a hierarquia completa vive fora deste serviço)
type Item struct {
	ID                 string          `json:"id"`
	Code               string          `json:"code"`
	Name               string          `json:"name"`
	CategoryCode       *string         `json:"category_code"`
	CategoryName       *string         `json:"category_name"`
	BrandCode          *string         `json:"brand_code"`
	BrandName          *string         `json:"brand_name"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	Cost               decimal.Decimal `json:"cost"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	IsActive           bool            `json:"is_active"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// UpdateItemRequest é o payload de atualização parcial de item
type UpdateItemRequest struct {
	ID                 string           `json:"id"`
	Name               *string          `json:"name"`
	CategoryCode       *string          `json:"category_code"`
	CategoryName       *string          `json:"category_name"`
	BrandCode          *string          `json:"brand_code"`
	BrandName          *string          `json:"brand_name"`
	UnitPrice          *decimal.Decimal `json:"unit_price"`
	Cost               *decimal.Decimal `json:"cost"`
	DiscountPercentage *decimal.Decimal `json:"discount_percentage"`
	IsActive           *bool            `json:"is_active"`
}
