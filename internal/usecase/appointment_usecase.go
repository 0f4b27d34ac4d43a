package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"hospital-management/internal/converter"
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrDoctorNotFound = errors.New("selected doctor does not exist")

type AppointmentUsecase interface {
	Book(ctx context.Context, patientID uint, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	ListDoctors(ctx context.Context) ([]dto.UserResponse, error)
	ListForPatient(ctx context.Context, patientID uint) ([]dto.AppointmentResponse, error)
	ListForDoctor(ctx context.Context, doctorID uint) ([]dto.AppointmentResponse, error)
	ListAll(ctx context.Context) ([]dto.AppointmentResponse, error)
	Delete(ctx context.Context, rawID string, scope entity.AppointmentScope) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	userRepo        repository.UserRepository
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	userRepo repository.UserRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
	}
}

// Book stores an appointment for patientID with the doctor selected in req.
func (u *appointmentUsecase) Book(ctx context.Context, patientID uint, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	doctorID, ok := parseID(req.DoctorID)
	if !ok {
		return nil, ErrDoctorNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.userRepo.FindByID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil || doctor.Status != entity.RoleDoctor {
		return nil, ErrDoctorNotFound
	}

	appointment := &entity.Appointment{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Gender:      req.Gender,
		Date:        req.Date,
		Time:        req.Time,
		PhoneNumber: req.PhoneNumber,
		DoctorID:    doctor.ID,
		PatientID:   patientID,
		Condition:   req.Condition,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment, doctor, nil), nil
}

func (u *appointmentUsecase) ListDoctors(ctx context.Context) ([]dto.UserResponse, error) {
	doctors, err := u.userRepo.FindByRole(u.db.WithContext(ctx), entity.RoleDoctor)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}
	return converter.UsersToResponse(doctors), nil
}

func (u *appointmentUsecase) ListForPatient(ctx context.Context, patientID uint) ([]dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)
	appointments, err := u.appointmentRepo.FindByPatientID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient appointments: %+v", err)
		return nil, err
	}
	return u.join(db, appointments)
}

func (u *appointmentUsecase) ListForDoctor(ctx context.Context, doctorID uint) ([]dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)
	appointments, err := u.appointmentRepo.FindByDoctorID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor appointments: %+v", err)
		return nil, err
	}
	return u.join(db, appointments)
}

func (u *appointmentUsecase) ListAll(ctx context.Context) ([]dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)
	appointments, err := u.appointmentRepo.FindAll(db)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}
	return u.join(db, appointments)
}

// Delete removes the appointment with rawID inside scope. Malformed, unknown
// and foreign ids are silently ignored.
func (u *appointmentUsecase) Delete(ctx context.Context, rawID string, scope entity.AppointmentScope) error {
	id, ok := parseID(rawID)
	if !ok {
		return nil
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.appointmentRepo.Delete(tx, id, scope)
	if err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Debugf("Deleted %d appointment(s) with id %d", affected, id)
	return nil
}

func (u *appointmentUsecase) join(db *gorm.DB, appointments []entity.Appointment) ([]dto.AppointmentResponse, error) {
	users, err := u.userRepo.FindByIDs(db, converter.AppointmentUserIDs(appointments))
	if err != nil {
		u.log.Warnf("Failed to load appointment users: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToResponse(appointments, converter.UsersByID(users)), nil
}

// parseID reads a positive decimal id posted by a form.
func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 0)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
