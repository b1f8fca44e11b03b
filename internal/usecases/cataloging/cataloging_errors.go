package cataloging

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de cadastro
var (
	ErrIDRequired        = errors.New("ID is required")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrItemNotFound      = errors.New("item not found")
	ErrMissingData       = errors.New("required data is missing")
	ErrNegativePrice     = errors.New("unit price cannot be negative")
	ErrNegativeStock     = errors.New("stock levels cannot be negative")
	ErrDuplicateCode     = errors.New("code already registered")
	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating ID")
)

// CatalogError é um erro com contexto adicional para o cadastro
type CatalogError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *CatalogError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *CatalogError) Unwrap() error {
	return e.Err
}

// NewCatalogError cria um novo CatalogError
func NewCatalogError(err error, code string, details string) *CatalogError {
	return &CatalogError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
