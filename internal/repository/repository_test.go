package repository

import (
	"testing"

	"hospital-management/internal/domain/entity"
	"hospital-management/internal/testutil"

	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, email string, role entity.Role) *entity.User {
	t.Helper()
	user := &entity.User{
		FirstName: "First",
		LastName:  "Last",
		Email:     email,
		Password:  "digest",
		Status:    role,
	}
	if err := NewUserRepository().Create(db, user); err != nil {
		t.Fatalf("failed to seed user %s: %v", email, err)
	}
	return user
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserRepository()
	created := seedUser(t, db, "doc@example.com", entity.RoleDoctor)

	found, err := repo.FindByEmail(db, "doc@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found == nil || found.ID != created.ID {
		t.Fatalf("expected user %d, got %+v", created.ID, found)
	}
	if found.Status != entity.RoleDoctor {
		t.Errorf("expected doctor role, got %v", found.Status)
	}

	missing, err := repo.FindByEmail(db, "nobody@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown email, got %+v", missing)
	}
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserRepository()
	seedUser(t, db, "p@example.com", entity.RolePatient)

	exists, err := repo.ExistsByEmail(db, "p@example.com")
	if err != nil || !exists {
		t.Errorf("expected existing email, got %v, %v", exists, err)
	}
	exists, err = repo.ExistsByEmail(db, "q@example.com")
	if err != nil || exists {
		t.Errorf("expected absent email, got %v, %v", exists, err)
	}
}

func TestUserRepository_UniqueEmail(t *testing.T) {
	db := testutil.NewDB(t)
	seedUser(t, db, "dup@example.com", entity.RolePatient)

	err := NewUserRepository().Create(db, &entity.User{Email: "dup@example.com", Password: "x", Status: entity.RolePatient})
	if err == nil {
		t.Fatal("expected unique index violation")
	}
}

func TestUserRepository_RoleFilter(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserRepository()
	seedUser(t, db, "d1@example.com", entity.RoleDoctor)
	seedUser(t, db, "d2@example.com", entity.RoleDoctor)
	seedUser(t, db, "p1@example.com", entity.RolePatient)
	seedUser(t, db, "a1@example.com", entity.RoleAdmin)

	doctors, err := repo.FindByRole(db, entity.RoleDoctor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doctors) != 2 {
		t.Fatalf("expected 2 doctors, got %d", len(doctors))
	}
	for _, d := range doctors {
		if d.Status != entity.RoleDoctor {
			t.Errorf("non-doctor in doctor list: %+v", d)
		}
	}

	count, err := repo.CountByRole(db, entity.RolePatient)
	if err != nil || count != 1 {
		t.Errorf("expected 1 patient, got %d (%v)", count, err)
	}
}

func TestUserRepository_DeleteByIDAndRole(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserRepository()
	doctor := seedUser(t, db, "d@example.com", entity.RoleDoctor)
	patient := seedUser(t, db, "p@example.com", entity.RolePatient)

	affected, err := repo.DeleteByIDAndRole(db, patient.ID, entity.RoleDoctor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if affected != 0 {
		t.Errorf("patient must not be deleted through the doctor filter, affected=%d", affected)
	}

	affected, err = repo.DeleteByIDAndRole(db, doctor.ID, entity.RoleDoctor)
	if err != nil || affected != 1 {
		t.Fatalf("expected 1 row deleted, got %d (%v)", affected, err)
	}

	affected, err = repo.DeleteByIDAndRole(db, 9999, entity.RoleDoctor)
	if err != nil || affected != 0 {
		t.Errorf("expected no-op for unknown id, got %d (%v)", affected, err)
	}

	gone, err := repo.FindByID(db, doctor.ID)
	if err != nil || gone != nil {
		t.Errorf("expected deleted doctor to be gone, got %+v (%v)", gone, err)
	}
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserRepository()
	user := seedUser(t, db, "u@example.com", entity.RolePatient)

	if err := repo.UpdatePassword(db, user.ID, "new-digest"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reloaded, _ := repo.FindByID(db, user.ID)
	if reloaded.Password != "new-digest" {
		t.Errorf("expected updated digest, got %s", reloaded.Password)
	}
}

func TestAppointmentRepository_RoundTrip(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewAppointmentRepository()

	in := entity.Appointment{
		FirstName:   "Ada",
		LastName:    "Obi",
		Gender:      "female",
		Date:        "2026-11-02",
		Time:        "09:30",
		PhoneNumber: "0800000000",
		DoctorID:    7,
		PatientID:   3,
		Condition:   "fever",
	}
	created := in
	if err := repo.Create(db, &created); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected generated id")
	}

	list, err := repo.FindByPatientID(db, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 appointment, got %d", len(list))
	}

	got := list[0]
	got.ID, got.CreatedAt, got.UpdatedAt = 0, in.CreatedAt, in.UpdatedAt
	if got != in {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, in)
	}
}

func TestAppointmentRepository_ScopedDelete(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewAppointmentRepository()

	a := &entity.Appointment{DoctorID: 1, PatientID: 2}
	b := &entity.Appointment{DoctorID: 5, PatientID: 6}
	for _, appt := range []*entity.Appointment{a, b} {
		if err := repo.Create(db, appt); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	affected, err := repo.Delete(db, b.ID, entity.AppointmentScope{DoctorID: 1})
	if err != nil || affected != 0 {
		t.Errorf("doctor 1 must not delete doctor 5's appointment, affected=%d err=%v", affected, err)
	}

	affected, err = repo.Delete(db, a.ID, entity.AppointmentScope{PatientID: 2})
	if err != nil || affected != 1 {
		t.Errorf("expected owner delete, affected=%d err=%v", affected, err)
	}

	affected, err = repo.Delete(db, 12345, entity.AppointmentScope{})
	if err != nil || affected != 0 {
		t.Errorf("expected no-op for unknown id, affected=%d err=%v", affected, err)
	}

	total, err := repo.Count(db)
	if err != nil || total != 1 {
		t.Errorf("expected 1 remaining, got %d (%v)", total, err)
	}
	byDoctor, err := repo.CountByDoctorID(db, 5)
	if err != nil || byDoctor != 1 {
		t.Errorf("expected 1 for doctor 5, got %d (%v)", byDoctor, err)
	}
}

func TestPrescriptionRepository_FindByPatientID(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPrescriptionRepository()

	for _, p := range []*entity.Prescription{
		{Drug: "Amoxicillin", Quantity: "10", Condition: "infection", PatientID: 1, DoctorID: 9},
		{Drug: "Ibuprofen", Quantity: "20", Condition: "pain", PatientID: 2, DoctorID: 9},
	} {
		if err := repo.Create(db, p); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	list, err := repo.FindByPatientID(db, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].Drug != "Amoxicillin" {
		t.Errorf("expected only patient 1's prescription, got %+v", list)
	}
}
