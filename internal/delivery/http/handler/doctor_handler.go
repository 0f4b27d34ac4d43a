package handler

import (
	"errors"
	"net/http"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/delivery/http/middleware"
	"hospital-management/internal/delivery/http/view"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/usecase"
)

type DoctorHandler struct {
	*Base
	accountUsecase      usecase.AccountUsecase
	appointmentUsecase  usecase.AppointmentUsecase
	prescriptionUsecase usecase.PrescriptionUsecase
}

func NewDoctorHandler(
	base *Base,
	accountUsecase usecase.AccountUsecase,
	appointmentUsecase usecase.AppointmentUsecase,
	prescriptionUsecase usecase.PrescriptionUsecase,
) *DoctorHandler {
	return &DoctorHandler{
		Base:                base,
		accountUsecase:      accountUsecase,
		appointmentUsecase:  appointmentUsecase,
		prescriptionUsecase: prescriptionUsecase,
	}
}

func (h *DoctorHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	doctorID, _ := middleware.GetUserIDFromContext(r.Context())

	counts, err := h.accountUsecase.DoctorDashboard(r.Context(), doctorID)
	if err != nil {
		h.render(w, r, http.StatusOK, view.PageDoctorDashboard, "Doctor dashboard", &dto.DoctorDashboardResponse{}, MessageStoreError)
		return
	}
	h.render(w, r, http.StatusOK, view.PageDoctorDashboard, "Doctor dashboard", counts)
}

// Appointments lists the doctor's appointments; a POST first cancels one of them.
func (h *DoctorHandler) Appointments(w http.ResponseWriter, r *http.Request) {
	doctorID, _ := middleware.GetUserIDFromContext(r.Context())
	var notices []string

	if r.Method == http.MethodPost {
		var req dto.DeleteRequest
		_ = h.decoder.Decode(r, &req)
		if err := h.appointmentUsecase.Delete(r.Context(), req.ID, entity.AppointmentScope{DoctorID: doctorID}); err != nil {
			notices = append(notices, MessageStoreError)
		}
	}

	appointments, err := h.appointmentUsecase.ListForDoctor(r.Context(), doctorID)
	if err != nil {
		notices = append(notices, MessageStoreError)
	}
	h.render(w, r, http.StatusOK, view.PageDoctorAppointments, "My appointments", appointments, notices...)
}

func (h *DoctorHandler) AddPrescriptionPage(w http.ResponseWriter, r *http.Request) {
	h.renderPrescriptionForm(w, r)
}

func (h *DoctorHandler) AddPrescription(w http.ResponseWriter, r *http.Request) {
	doctorID, _ := middleware.GetUserIDFromContext(r.Context())

	var req dto.PrescriptionRequest
	if err := h.decode(r, &req); err != nil {
		h.renderPrescriptionForm(w, r, h.formFailureMessage(err))
		return
	}

	if err := h.prescriptionUsecase.Add(r.Context(), doctorID, &req); err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			h.renderPrescriptionForm(w, r, MessagePatientNotFound)
			return
		}
		h.renderPrescriptionForm(w, r, MessageStoreError)
		return
	}

	h.renderPrescriptionForm(w, r, MessagePrescriptionAdded)
}

func (h *DoctorHandler) renderPrescriptionForm(w http.ResponseWriter, r *http.Request, notices ...string) {
	patients, err := h.prescriptionUsecase.ListPatients(r.Context())
	if err != nil {
		notices = append(notices, MessageStoreError)
	}
	h.render(w, r, http.StatusOK, view.PageAddPrescription, "Add prescription", patients, notices...)
}
