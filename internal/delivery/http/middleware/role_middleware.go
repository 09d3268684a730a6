package middleware

import (
	"net/http"

	"go-hospital-management/internal/authz"
	"go-hospital-management/internal/domain/entity"
	"go-hospital-management/pkg/response"
)

// RequirePermission gates a route on the capability table: the
// actor's role must permit the action on the resource. Ownership of
// own-scoped resources is still checked inside the usecase.
func RequirePermission(resource authz.Resource, action authz.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roleID, ok := GetRoleIDFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			if !authz.Can(entity.RoleNameByID(roleID), resource, action) {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		roleID, ok := GetRoleIDFromContext(r.Context())
		if !ok {
			response.Unauthorized(w, "Role information not found")
			return
		}
		if roleID != entity.RoleIDAdmin {
			response.Forbidden(w, "You don't have permission to access this resource")
			return
		}
		next.ServeHTTP(w, r)
	})
}
