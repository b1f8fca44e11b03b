package repository

import (
	"errors"

	"github.com/lib/pq"
)

// ErrUniqueViolation sinaliza violação de constraint de unicidade
// (célula de orçamento duplicada, versão de forecast em corrida).
// Os usecases traduzem para o erro de conflito da API.
var ErrUniqueViolation = errors.New("unique constraint violation")

const pqUniqueViolationCode = "23505"

// translateUniqueViolation converte o código 23505 do Postgres no erro
// sentinela do repositório; outros erros passam intactos
func translateUniqueViolation(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolationCode {
		return ErrUniqueViolation
	}

	return err
}
