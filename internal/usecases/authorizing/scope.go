package authorizing

import (
	"github.com/Masterminds/squirrel"
	"github.com/stmbudget/sales-planning-api/internal/domain"
)

// ScopeFilter traduz a visibilidade do ator em um predicado SQL aplicado
// pelas listagens. Admin e gerente enxergam tudo (predicado nulo);
// vendedor e visualizador ficam restritos às entradas próprias ou dos
// clientes da sua carteira.
func ScopeFilter(actor domain.Actor) squirrel.Sqlizer {
	if actor.SeesAllEntries() {
		return nil
	}

	return squirrel.Or{
		squirrel.Eq{"salesperson_id": actor.UserID},
		squirrel.Expr(
			"customer_id IN (SELECT id FROM customers WHERE salesperson_id = ?)",
			actor.UserID,
		),
	}
}

// CanMutate verifica se o ator pode alterar ou excluir a entrada da
// célula: aprovadas são imutáveis para quem não é admin
func CanMutate(actor domain.Actor, status domain.EntryStatus) bool {
	if actor.IsAdmin() {
		return true
	}

	return status != domain.StatusApproved
}
