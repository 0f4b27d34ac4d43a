package handler

import (
	"errors"
	"net/http"

	"hospital-management/config"
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/delivery/http/middleware"
	"hospital-management/internal/delivery/http/view"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/usecase"
)

type AuthHandler struct {
	*Base
	authUsecase usecase.AuthUsecase
	session     config.SessionConfig
}

func NewAuthHandler(base *Base, authUsecase usecase.AuthUsecase, session config.SessionConfig) *AuthHandler {
	return &AuthHandler{
		Base:        base,
		authUsecase: authUsecase,
		session:     session,
	}
}

// Index is the landing page for any signed-in user.
func (h *AuthHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageIndex, "Home", nil)
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageLogin, "Login", nil)
}

// Login checks the credentials, opens a session and sends the user to the
// dashboard of their role.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := h.decode(r, &req); err != nil {
		h.redirect(w, r, middleware.LoginPath, MessageLoginFailed)
		return
	}

	session, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			h.redirect(w, r, middleware.LoginPath, MessageLoginFailed)
		case errors.Is(err, usecase.ErrUnknownRole):
			h.redirect(w, r, middleware.LoginPath, MessageUnknownRole)
		default:
			h.redirect(w, r, middleware.LoginPath, MessageStoreError)
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.session.CookieName,
		Value:    session.Token,
		Path:     "/",
		MaxAge:   int(session.Expiry.Seconds()),
		HttpOnly: true,
		Secure:   h.session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, session.Dashboard, http.StatusSeeOther)
}

// Logout revokes the session, if any, and always lands on the login page.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.session.CookieName); err == nil {
		if err := h.authUsecase.Logout(r.Context(), cookie.Value); err != nil {
			h.log.Warnf("Failed to revoke session: %+v", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, middleware.LoginPath, http.StatusSeeOther)
}

func (h *AuthHandler) SignupPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageSignup, "Sign up", nil)
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := h.decode(r, &req); err != nil {
		h.redirect(w, r, "/signup", h.formFailureMessage(err))
		return
	}

	if _, err := h.authUsecase.Signup(r.Context(), &req); err != nil {
		h.redirect(w, r, "/signup", signupFailureMessage(err))
		return
	}

	h.redirect(w, r, middleware.LoginPath, MessageAccountCreated)
}

func (h *AuthHandler) AdminSignupPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageAdminSignup, "Create admin", nil)
}

func (h *AuthHandler) AdminSignup(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminSignupRequest
	if err := h.decode(r, &req); err != nil {
		h.redirect(w, r, "/admin", h.formFailureMessage(err))
		return
	}

	if _, err := h.authUsecase.SignupWithRole(r.Context(), &req, entity.RoleAdmin); err != nil {
		h.redirect(w, r, "/admin", signupFailureMessage(err))
		return
	}

	h.redirect(w, r, middleware.LoginPath, MessageAccountCreated)
}

func (h *AuthHandler) ForgetPasswordPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageForgetPassword, "Reset password", nil)
}

func (h *AuthHandler) ForgetPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ForgetPasswordRequest
	if err := h.decode(r, &req); err != nil {
		h.redirect(w, r, "/forgetpassword", h.formFailureMessage(err))
		return
	}

	if err := h.authUsecase.ForgetPassword(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, usecase.ErrPasswordMismatch):
			h.redirect(w, r, "/forgetpassword", MessagePasswordMismatch)
		case errors.Is(err, usecase.ErrUserNotFound):
			h.redirect(w, r, "/forgetpassword", MessageNoAccount)
		default:
			h.redirect(w, r, "/forgetpassword", MessageStoreError)
		}
		return
	}

	h.redirect(w, r, middleware.LoginPath, MessagePasswordUpdated)
}

func signupFailureMessage(err error) string {
	switch {
	case errors.Is(err, usecase.ErrPasswordMismatch):
		return MessagePasswordMismatch
	case errors.Is(err, usecase.ErrEmailAlreadyExists):
		return MessageUserExists
	case errors.Is(err, usecase.ErrUnknownRole):
		return MessageInvalidRole
	default:
		return MessageStoreError
	}
}
