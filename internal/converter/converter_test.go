package converter

import (
	"testing"

	"hospital-management/internal/domain/entity"
)

func TestUserToResponse(t *testing.T) {
	if UserToResponse(nil) != nil {
		t.Error("nil user must convert to nil")
	}

	got := UserToResponse(&entity.User{ID: 3, FirstName: "Ada", LastName: "Obi", Password: "digest", Status: entity.RoleDoctor})
	if got.FullName != "Ada Obi" || got.Role != "doctor" {
		t.Errorf("unexpected response: %+v", got)
	}
}

func TestAppointmentsToResponse_DanglingReference(t *testing.T) {
	doctor := entity.User{ID: 1, FirstName: "Doc", Status: entity.RoleDoctor}
	appointments := []entity.Appointment{
		{ID: 10, DoctorID: 1, PatientID: 2},
		{ID: 11, DoctorID: 9, PatientID: 2},
	}

	ids := AppointmentUserIDs(appointments)
	if len(ids) != 3 {
		t.Errorf("expected 3 distinct ids, got %v", ids)
	}

	got := AppointmentsToResponse(appointments, UsersByID([]entity.User{doctor}))
	if len(got) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(got))
	}
	if got[0].Doctor == nil || got[0].Doctor.ID != 1 {
		t.Errorf("expected doctor joined, got %+v", got[0].Doctor)
	}
	if got[1].Doctor != nil || got[1].Patient != nil {
		t.Errorf("missing users must stay nil, got %+v", got[1])
	}
}

func TestPrescriptionsToResponse(t *testing.T) {
	prescriptions := []entity.Prescription{
		{ID: 1, Drug: "Ibuprofen", DoctorID: 4},
		{ID: 2, Drug: "Aspirin", DoctorID: 4},
	}
	if ids := PrescriptionDoctorIDs(prescriptions); len(ids) != 1 || ids[0] != 4 {
		t.Errorf("unexpected doctor ids: %v", ids)
	}

	doctors := UsersByID([]entity.User{{ID: 4, FirstName: "House"}})
	got := PrescriptionsToResponse(prescriptions, doctors)
	if got[1].Doctor == nil || got[1].Doctor.FirstName != "House" {
		t.Errorf("expected doctor on prescription, got %+v", got[1])
	}
}
