package middleware

import (
	"context"
	"net/http"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/service"
	"hospital-management/internal/usecase"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	UserKey   contextKey = "user"
	RoleKey   contextKey = "role"
)

const (
	LoginPath        = "/login"
	MessageLoginNeed = "Please log in to access this page."
)

type AuthMiddleware struct {
	sessions    *service.SessionService
	authUsecase usecase.AuthUsecase
	flasher     *Flasher
	cookieName  string
	log         *logrus.Logger
}

func NewAuthMiddleware(
	sessions *service.SessionService,
	authUsecase usecase.AuthUsecase,
	flasher *Flasher,
	cookieName string,
	log *logrus.Logger,
) *AuthMiddleware {
	return &AuthMiddleware{
		sessions:    sessions,
		authUsecase: authUsecase,
		flasher:     flasher,
		cookieName:  cookieName,
		log:         log,
	}
}

// Authenticate resolves the session cookie to a stored user. Requests without
// a live session are sent to the login page.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			m.deny(w, r)
			return
		}

		claims, err := m.sessions.Validate(r.Context(), cookie.Value)
		if err != nil {
			m.deny(w, r)
			return
		}

		// The account may have been deleted or re-roled since login
		user, err := m.authUsecase.GetCurrentUser(r.Context(), claims.UserID)
		if err != nil {
			m.deny(w, r)
			return
		}
		role, err := entity.ParseRole(user.Role)
		if err != nil {
			m.log.Warnf("Session for user %d carries unknown role %q", user.ID, user.Role)
			m.deny(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, user.ID)
		ctx = context.WithValue(ctx, UserKey, user)
		ctx = context.WithValue(ctx, RoleKey, role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) deny(w http.ResponseWriter, r *http.Request) {
	m.flasher.Redirect(w, r, LoginPath, MessageLoginNeed)
}

// GetUserIDFromContext extracts user ID from context
func GetUserIDFromContext(ctx context.Context) (uint, bool) {
	userID, ok := ctx.Value(UserIDKey).(uint)
	return userID, ok
}

// GetCurrentUserFromContext extracts the authenticated user from context
func GetCurrentUserFromContext(ctx context.Context) (*dto.UserResponse, bool) {
	user, ok := ctx.Value(UserKey).(*dto.UserResponse)
	return user, ok
}

// GetRoleFromContext extracts role from context
func GetRoleFromContext(ctx context.Context) (entity.Role, bool) {
	role, ok := ctx.Value(RoleKey).(entity.Role)
	return role, ok
}
