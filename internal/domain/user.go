package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identificadores de role do usuário
const (
	RoleAdmin       = 1
	RoleManager     = 2
	RoleSalesperson = 3
	RoleViewer      = 4
)

type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Lastname     string     `json:"lastname"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password"`
	Active       bool       `json:"active"`
	RoleID       int        `json:"role_id"`
	Department   *string    `json:"department"`
	Phone        *string    `json:"phone"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type UpdateUserRequest struct {
	ID         int     `json:"id"`
	Name       *string `json:"name"`
	Lastname   *string `json:"lastname"`
	Email      *string `json:"email"`
	Active     *bool   `json:"active"`
	RoleID     *int    `json:"role_id"`
	Department *string `json:"department"`
	Deleted    *bool   `json:"deleted"`
}

type Claims struct {
	UserID       int
	UserName     string
	UserLastname string
	UserEmail    string
	UserActive   bool
	UserRoleID   int
	jwt.RegisteredClaims
}

// Actor é a identidade resolvida que chega aos usecases. As regras de
// autorização do núcleo (imutabilidade de aprovados, aprovação em lote)
// são verificadas contra ele, nunca assumidas pré-filtradas.
type Actor struct {
	UserID int
	RoleID int
}

// IsAdmin indica se o ator tem privilégio total
func (a Actor) IsAdmin() bool {
	return a.RoleID == RoleAdmin
}

// CanApprove indica se o ator pode aprovar entradas (admin ou gerente)
func (a Actor) CanApprove() bool {
	return a.RoleID == RoleAdmin || a.RoleID == RoleManager
}

// SeesAllEntries indica se o ator enxerga todas as entradas; vendedores e
// visualizadores ficam limitados ao próprio escopo pelo ScopeFilter
func (a Actor) SeesAllEntries() bool {
	return a.RoleID == RoleAdmin || a.RoleID == RoleManager
}

// ActorFromClaims converte as claims autenticadas no ator dos usecases
func ActorFromClaims(claims *Claims) Actor {
	return Actor{
		UserID: claims.UserID,
		RoleID: claims.UserRoleID,
	}
}
