package budgeting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de orçamento
var (
	// Erros de validação
	ErrEntryIDRequired     = errors.New("budget entry ID is required")
	ErrEntryNotFound       = errors.New("budget entry not found")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrItemNotFound        = errors.New("item not found")
	ErrNoItems             = errors.New("item list is empty")
	ErrInvalidMonth        = errors.New("month must be between 1 and 12")
	ErrInvalidYear         = errors.New("year is in the past")
	ErrNegativeQuantity    = errors.New("quantity must not be negative")
	ErrNegativeUnitPrice   = errors.New("unit price must not be negative")
	ErrInvalidDiscount     = errors.New("discount percentage must be between 0 and 100")
	ErrInvalidDistribution = errors.New("unknown distribution type")
	ErrMissingQuantities   = errors.New("manual distribution requires quantities for all 12 months")
	ErrInvalidStatusChange = errors.New("invalid status transition")
	ErrMultiplierChanged   = errors.New("seasonal multiplier differs from the stored one")
	ErrNotSeasonal         = errors.New("entry does not use seasonal distribution")

	// Erros de regra de negócio
	ErrDuplicateCell     = errors.New("budget entry already exists for this cell")
	ErrApprovedImmutable = errors.New("approved entries can only be changed by an admin")
	ErrApprovalForbidden = errors.New("actor is not allowed to approve entries")

	// Erros de infraestrutura
	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating entry ID")
)

// BudgetError é um erro com contexto adicional para orçamento
type BudgetError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	EntryID string // ID da entrada envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *BudgetError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError cria um novo BudgetError
func NewBudgetError(err error, code string, details string) *BudgetError {
	return &BudgetError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewBudgetErrorWithID cria um novo BudgetError com ID da entrada
func NewBudgetErrorWithID(err error, code string, entryID string, details string) *BudgetError {
	return &BudgetError{
		Err:     err,
		Code:    code,
		EntryID: entryID,
		Details: details,
	}
}
