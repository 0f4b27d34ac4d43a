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

type PatientHandler struct {
	*Base
	appointmentUsecase  usecase.AppointmentUsecase
	prescriptionUsecase usecase.PrescriptionUsecase
}

func NewPatientHandler(
	base *Base,
	appointmentUsecase usecase.AppointmentUsecase,
	prescriptionUsecase usecase.PrescriptionUsecase,
) *PatientHandler {
	return &PatientHandler{
		Base:                base,
		appointmentUsecase:  appointmentUsecase,
		prescriptionUsecase: prescriptionUsecase,
	}
}

// Dashboard lists the patient's appointments; a POST first cancels one of them.
func (h *PatientHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	patientID, _ := middleware.GetUserIDFromContext(r.Context())
	var notices []string

	if r.Method == http.MethodPost {
		var req dto.DeleteRequest
		_ = h.decoder.Decode(r, &req)
		if err := h.appointmentUsecase.Delete(r.Context(), req.ID, entity.AppointmentScope{PatientID: patientID}); err != nil {
			notices = append(notices, MessageStoreError)
		}
	}

	appointments, err := h.appointmentUsecase.ListForPatient(r.Context(), patientID)
	if err != nil {
		notices = append(notices, MessageStoreError)
	}
	h.render(w, r, http.StatusOK, view.PagePatientDashboard, "My appointments", appointments, notices...)
}

func (h *PatientHandler) BookAppointmentPage(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.appointmentUsecase.ListDoctors(r.Context())
	if err != nil {
		h.render(w, r, http.StatusOK, view.PageBookAppointment, "Book appointment", doctors, MessageStoreError)
		return
	}
	h.render(w, r, http.StatusOK, view.PageBookAppointment, "Book appointment", doctors)
}

func (h *PatientHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	patientID, _ := middleware.GetUserIDFromContext(r.Context())

	var req dto.BookAppointmentRequest
	if err := h.decode(r, &req); err != nil {
		h.redirect(w, r, "/bookappointment", h.formFailureMessage(err))
		return
	}

	if _, err := h.appointmentUsecase.Book(r.Context(), patientID, &req); err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			h.redirect(w, r, "/bookappointment", MessageDoctorNotFound)
			return
		}
		h.redirect(w, r, "/bookappointment", MessageStoreError)
		return
	}

	h.redirect(w, r, "/patientdashboard", MessageAppointmentBooked)
}

func (h *PatientHandler) Prescriptions(w http.ResponseWriter, r *http.Request) {
	patientID, _ := middleware.GetUserIDFromContext(r.Context())

	prescriptions, err := h.prescriptionUsecase.ListForPatient(r.Context(), patientID)
	if err != nil {
		h.render(w, r, http.StatusOK, view.PagePrescriptions, "My prescriptions", prescriptions, MessageStoreError)
		return
	}
	h.render(w, r, http.StatusOK, view.PagePrescriptions, "My prescriptions", prescriptions)
}
