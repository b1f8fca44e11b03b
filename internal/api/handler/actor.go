package handler

import (
	"net/http"
	"strconv"

	"github.com/stmbudget/sales-planning-api/internal/domain"
	"github.com/stmbudget/sales-planning-api/pkg/apiErrors"
	"github.com/stmbudget/sales-planning-api/pkg/middleware"
)

// actorFromRequest resolve o ator autenticado a partir das claims do token.
// Escreve a resposta de erro e retorna false quando não há usuário no contexto.
func actorFromRequest(w http.ResponseWriter, r *http.Request) (domain.Actor, bool) {
	userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return domain.Actor{}, false
	}

	return domain.ActorFromClaims(userClaims), true
}

// queryInt lê um parâmetro inteiro opcional da query string
func queryInt(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}

	return &value
}

// queryString lê um parâmetro textual opcional da query string
func queryString(r *http.Request, name string) *string {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}

	return &raw
}

// queryBool lê um parâmetro booleano opcional da query string
func queryBool(r *http.Request, name string) *bool {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}

	return &value
}
