package handler

import (
	"errors"
	"net/http"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/delivery/http/middleware"
	"hospital-management/internal/delivery/http/view"
	"hospital-management/internal/usecase"
)

// ProfileHandler serves /editdoctorprofile and /editpatientprofile; the
// role gate on the route decides who reaches it.
type ProfileHandler struct {
	*Base
	profileUsecase usecase.ProfileUsecase
}

func NewProfileHandler(base *Base, profileUsecase usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{
		Base:           base,
		profileUsecase: profileUsecase,
	}
}

func (h *ProfileHandler) EditPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageEditProfile, "Edit profile", nil)
}

func (h *ProfileHandler) Edit(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	target := r.URL.Path

	var req dto.ProfileUpdateRequest
	if err := h.decoder.Decode(r, &req); err != nil {
		h.redirect(w, r, target, MessageMissingFields)
		return
	}

	if _, err := h.profileUsecase.Update(r.Context(), userID, &req); err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			h.redirect(w, r, target, MessageUserExists)
		case errors.Is(err, usecase.ErrUserNotFound):
			h.redirect(w, r, middleware.LoginPath, middleware.MessageLoginNeed)
		default:
			h.redirect(w, r, target, MessageStoreError)
		}
		return
	}

	h.redirect(w, r, target, MessageProfileUpdated)
}
