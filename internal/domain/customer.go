package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status comercial do cliente
type CustomerStatus string

const (
	CustomerActive    CustomerStatus = "active"
	CustomerInactive  CustomerStatus = "inactive"
	CustomerProspect  CustomerStatus = "prospect"
	CustomerSuspended CustomerStatus = "suspended"
)

// Customer representa um cliente contra o qual o planejamento é feito
type Customer struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Status        CustomerStatus  `json:"status"`
	Category      string          `json:"category"`
	Email         *string         `json:"email"`
	Phone         *string         `json:"phone"`
	Address       *string         `json:"address"`
	CreditLimit   decimal.Decimal `json:"credit_limit"`
	PaymentTerms  int             `json:"payment_terms"`
	SalespersonID *int            `json:"salesperson_id"`
	TotalSalesYTD decimal.Decimal `json:"total_sales_ytd"`
	LastOrderDate *time.Time      `json:"last_order_date"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// UpdateCustomerRequest é o payload de atualização parcial de cliente
type UpdateCustomerRequest struct {
	ID            string           `json:"id"`
	Name          *string          `json:"name"`
	Status        *CustomerStatus  `json:"status"`
	Category      *string          `json:"category"`
	Email         *string          `json:"email"`
	Phone         *string          `json:"phone"`
	Address       *string          `json:"address"`
	CreditLimit   *decimal.Decimal `json:"credit_limit"`
	PaymentTerms  *int             `json:"payment_terms"`
	SalespersonID *int             `json:"salesperson_id"`
	IsActive      *bool            `json:"is_active"`
}
