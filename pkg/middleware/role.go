package middleware

import (
	"net/http"

	"github.com/jpilocastillo/m8bizz-sub002/internal/domain"
	"github.com/jpilocastillo/m8bizz-sub002/pkg/apiErrors"
)

const (
	RoleAdmin   = 1
	RoleAdvisor = 2
)

// ClaimsFromContext reads the authenticated user's claims placed in the
// context by AuthMiddleware.
func ClaimsFromContext(r *http.Request) *domain.Claims {
	claims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
	if !ok {
		return nil
	}
	return claims
}

func requireRoles(roles ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := ClaimsFromContext(r)
			if claims == nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authentication required", nil)
				return
			}

			for _, role := range roles {
				if claims.UserRoleID == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Insufficient privileges", nil)
		})
	}
}

// AdminOnly restricts a route to administrators.
func AdminOnly() func(http.Handler) http.Handler {
	return requireRoles(RoleAdmin)
}

// AllRoles requires an authenticated user of any role.
func AllRoles() func(http.Handler) http.Handler {
	return requireRoles(RoleAdmin, RoleAdvisor)
}
