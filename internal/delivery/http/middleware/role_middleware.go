package middleware

import (
	"net/http"

	"rhu-patient-portal/internal/domain/entity"
	"rhu-patient-portal/pkg/response"
)

// RequireRole creates a middleware that checks if the user has any of the
// required roles. Role is read from context (set by AuthMiddleware).
func RequireRole(allowedRoleIDs ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roleID, ok := GetRoleIDFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRoleID := range allowedRoleIDs {
				if roleID == allowedRoleID {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequirePatient restricts an endpoint to patient accounts
func RequirePatient(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDPatient)(next)
}

// RequireStaff restricts an endpoint to any clinic staff role
func RequireStaff(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDRHUAdmin, entity.RoleIDBHSAdmin, entity.RoleIDPharmacyAdmin, entity.RoleIDSuperAdmin)(next)
}

// RequireFrontDesk restricts an endpoint to roles allowed to register patients
func RequireFrontDesk(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDRHUAdmin, entity.RoleIDBHSAdmin, entity.RoleIDSuperAdmin)(next)
}
