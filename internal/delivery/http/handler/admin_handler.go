package handler

import (
	"errors"
	"net/http"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/delivery/http/view"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/usecase"
)

type AdminHandler struct {
	*Base
	accountUsecase     usecase.AccountUsecase
	appointmentUsecase usecase.AppointmentUsecase
	authUsecase        usecase.AuthUsecase
}

func NewAdminHandler(
	base *Base,
	accountUsecase usecase.AccountUsecase,
	appointmentUsecase usecase.AppointmentUsecase,
	authUsecase usecase.AuthUsecase,
) *AdminHandler {
	return &AdminHandler{
		Base:               base,
		accountUsecase:     accountUsecase,
		appointmentUsecase: appointmentUsecase,
		authUsecase:        authUsecase,
	}
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	counts, err := h.accountUsecase.AdminDashboard(r.Context())
	if err != nil {
		h.render(w, r, http.StatusOK, view.PageAdminDashboard, "Admin dashboard", &dto.AdminDashboardResponse{}, MessageStoreError)
		return
	}
	h.render(w, r, http.StatusOK, view.PageAdminDashboard, "Admin dashboard", counts)
}

func (h *AdminHandler) Doctors(w http.ResponseWriter, r *http.Request) {
	h.accounts(w, r, entity.RoleDoctor, view.PageDoctors, "Doctors")
}

func (h *AdminHandler) Patients(w http.ResponseWriter, r *http.Request) {
	h.accounts(w, r, entity.RolePatient, view.PagePatients, "Patients")
}

// accounts lists the accounts of role; a POST first deletes the posted id.
func (h *AdminHandler) accounts(w http.ResponseWriter, r *http.Request, role entity.Role, page, title string) {
	var (
		users []dto.UserResponse
		err   error
	)

	if r.Method == http.MethodPost {
		var req dto.DeleteRequest
		_ = h.decoder.Decode(r, &req)
		users, err = h.accountUsecase.Delete(r.Context(), role, req.ID)
	} else {
		users, err = h.accountUsecase.List(r.Context(), role)
	}

	if err != nil {
		h.render(w, r, http.StatusOK, page, title, users, MessageStoreError)
		return
	}
	h.render(w, r, http.StatusOK, page, title, users)
}

func (h *AdminHandler) Appointments(w http.ResponseWriter, r *http.Request) {
	var notices []string

	if r.Method == http.MethodPost {
		var req dto.DeleteRequest
		_ = h.decoder.Decode(r, &req)
		if err := h.appointmentUsecase.Delete(r.Context(), req.ID, entity.AppointmentScope{}); err != nil {
			notices = append(notices, MessageStoreError)
		}
	}

	appointments, err := h.appointmentUsecase.ListAll(r.Context())
	if err != nil {
		notices = append(notices, MessageStoreError)
	}
	h.render(w, r, http.StatusOK, view.PageAppointments, "Appointments", appointments, notices...)
}

func (h *AdminHandler) NewDoctorPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageNewDoctor, "Add doctor", nil)
}

// NewDoctor creates a doctor account on behalf of the signed-in admin.
func (h *AdminHandler) NewDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminSignupRequest
	if err := h.decode(r, &req); err != nil {
		h.redirect(w, r, "/admin/doctors/new", h.formFailureMessage(err))
		return
	}

	if _, err := h.authUsecase.SignupWithRole(r.Context(), &req, entity.RoleDoctor); err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) || errors.Is(err, usecase.ErrPasswordMismatch) {
			h.redirect(w, r, "/admin/doctors/new", signupFailureMessage(err))
			return
		}
		h.redirect(w, r, "/admin/doctors/new", MessageStoreError)
		return
	}

	h.redirect(w, r, "/admin/doctors", MessageAccountCreated)
}
