package authorizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stmbudget/sales-planning-api/internal/domain"
)

func TestScopeFilter(t *testing.T) {
	t.Run("AdminEGerenteSemRestricao", func(t *testing.T) {
		assert.Nil(t, ScopeFilter(domain.Actor{UserID: 1, RoleID: domain.RoleAdmin}))
		assert.Nil(t, ScopeFilter(domain.Actor{UserID: 2, RoleID: domain.RoleManager}))
	})

	t.Run("VendedorRestritoAoProprioEscopo", func(t *testing.T) {
		scope := ScopeFilter(domain.Actor{UserID: 7, RoleID: domain.RoleSalesperson})
		require.NotNil(t, scope)

		sql, args, err := scope.ToSql()
		require.NoError(t, err)

		assert.Contains(t, sql, "salesperson_id = ?")
		assert.Contains(t, sql, "customer_id IN")
		assert.Equal(t, []interface{}{7, 7}, args)
	})

	t.Run("VisualizadorTambemRestrito", func(t *testing.T) {
		scope := ScopeFilter(domain.Actor{UserID: 9, RoleID: domain.RoleViewer})
		require.NotNil(t, scope)
	})
}

func TestCanMutate(t *testing.T) {
	admin := domain.Actor{UserID: 1, RoleID: domain.RoleAdmin}
	manager := domain.Actor{UserID: 2, RoleID: domain.RoleManager}
	salesperson := domain.Actor{UserID: 3, RoleID: domain.RoleSalesperson}

	t.Run("AprovadaImutavelParaNaoAdmin", func(t *testing.T) {
		assert.False(t, CanMutate(manager, domain.StatusApproved))
		assert.False(t, CanMutate(salesperson, domain.StatusApproved))
	})

	t.Run("AdminPodeAlterarAprovada", func(t *testing.T) {
		assert.True(t, CanMutate(admin, domain.StatusApproved))
	})

	t.Run("DemaisStatusSaoMutaveis", func(t *testing.T) {
		assert.True(t, CanMutate(salesperson, domain.StatusDraft))
		assert.True(t, CanMutate(salesperson, domain.StatusSubmitted))
		assert.True(t, CanMutate(manager, domain.StatusRejected))
	})
}
