package middleware

import (
	"net/http"

	"hospital-management/internal/domain/entity"
)

// RoleMiddleware admits an authenticated request only when its role has the
// capability a route asks for; anything else gets the forbidden page.
type RoleMiddleware struct {
	forbidden http.Handler
}

func NewRoleMiddleware(forbidden http.Handler) *RoleMiddleware {
	return &RoleMiddleware{forbidden: forbidden}
}

// Require creates a middleware that lets the request through when allow
// accepts the role set by AuthMiddleware, e.g. Require(entity.Role.CanBook).
func (m *RoleMiddleware) Require(allow func(entity.Role) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok || !allow(role) {
				m.forbidden.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin gates the /admin area.
func (m *RoleMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return m.Require(entity.Role.CanManageAccounts)(next)
}

// RequireDoctor gates the doctor area.
func (m *RoleMiddleware) RequireDoctor(next http.Handler) http.Handler {
	return m.Require(entity.Role.CanTreatPatients)(next)
}

// RequirePatient gates the patient area.
func (m *RoleMiddleware) RequirePatient(next http.Handler) http.Handler {
	return m.Require(entity.Role.CanBook)(next)
}
