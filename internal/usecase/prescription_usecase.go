package usecase

import (
	"context"
	"errors"

	"hospital-management/internal/converter"
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrPatientNotFound = errors.New("selected patient does not exist")

type PrescriptionUsecase interface {
	Add(ctx context.Context, doctorID uint, req *dto.PrescriptionRequest) error
	ListPatients(ctx context.Context) ([]dto.UserResponse, error)
	ListForPatient(ctx context.Context, patientID uint) ([]dto.PrescriptionResponse, error)
}

type prescriptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	userRepo         repository.UserRepository
}

func NewPrescriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	userRepo repository.UserRepository,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:               db,
		log:              log,
		prescriptionRepo: prescriptionRepo,
		userRepo:         userRepo,
	}
}

func (u *prescriptionUsecase) Add(ctx context.Context, doctorID uint, req *dto.PrescriptionRequest) error {
	patientID, ok := parseID(req.PatientID)
	if !ok {
		return ErrPatientNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.userRepo.FindByID(tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil || patient.Status != entity.RolePatient {
		return ErrPatientNotFound
	}

	prescription := &entity.Prescription{
		Drug:      req.Drug,
		Quantity:  req.Quantity,
		Condition: req.Condition,
		PatientID: patient.ID,
		DoctorID:  doctorID,
	}

	if err := u.prescriptionRepo.Create(tx, prescription); err != nil {
		u.log.Warnf("Failed to create prescription: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *prescriptionUsecase) ListPatients(ctx context.Context) ([]dto.UserResponse, error) {
	patients, err := u.userRepo.FindByRole(u.db.WithContext(ctx), entity.RolePatient)
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}
	return converter.UsersToResponse(patients), nil
}

func (u *prescriptionUsecase) ListForPatient(ctx context.Context, patientID uint) ([]dto.PrescriptionResponse, error) {
	db := u.db.WithContext(ctx)

	prescriptions, err := u.prescriptionRepo.FindByPatientID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find prescriptions: %+v", err)
		return nil, err
	}

	doctors, err := u.userRepo.FindByIDs(db, converter.PrescriptionDoctorIDs(prescriptions))
	if err != nil {
		u.log.Warnf("Failed to load prescribing doctors: %+v", err)
		return nil, err
	}

	return converter.PrescriptionsToResponse(prescriptions, converter.UsersByID(doctors)), nil
}
