package forecasting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de forecast
var (
	// Erros de validação
	ErrEntryIDRequired   = errors.New("forecast entry ID is required")
	ErrEntryNotFound     = errors.New("forecast entry not found")
	ErrBudgetNotFound    = errors.New("budget entry not found for the cell")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrItemNotFound      = errors.New("item not found")
	ErrNoItems           = errors.New("item list is empty")
	ErrNoForecastData    = errors.New("forecast data is empty")
	ErrInvalidMonth      = errors.New("month must be between 1 and 12")
	ErrNegativeQuantity  = errors.New("forecasted quantity must not be negative")
	ErrNegativeAmount    = errors.New("forecasted amount must not be negative")
	ErrInvalidConfidence = errors.New("confidence level must be between 0 and 100")
	ErrInvalidType       = errors.New("unknown forecast type")
	ErrInvalidStatus     = errors.New("invalid status transition")

	// Erros de regra de negócio
	ErrApprovedImmutable = errors.New("approved entries can only be changed by an admin")
	ErrApprovalForbidden = errors.New("actor is not allowed to approve entries")
	ErrVersionConflict   = errors.New("concurrent version creation for the cell")

	// Erros de infraestrutura
	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating entry ID")
)

// ForecastError é um erro com contexto adicional para forecast
type ForecastError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	EntryID string // ID da entrada envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ForecastError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ForecastError) Unwrap() error {
	return e.Err
}

// NewForecastError cria um novo ForecastError
func NewForecastError(err error, code string, details string) *ForecastError {
	return &ForecastError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewForecastErrorWithID cria um novo ForecastError com ID da entrada
func NewForecastErrorWithID(err error, code string, entryID string, details string) *ForecastError {
	return &ForecastError{
		Err:     err,
		Code:    code,
		EntryID: entryID,
		Details: details,
	}
}
