package usecase

import (
	"context"

	"hospital-management/internal/converter"
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AccountUsecase backs the admin pages: role-filtered account lists with
// deletion, and the dashboard counters.
type AccountUsecase interface {
	List(ctx context.Context, role entity.Role) ([]dto.UserResponse, error)
	Delete(ctx context.Context, role entity.Role, rawID string) ([]dto.UserResponse, error)
	AdminDashboard(ctx context.Context) (*dto.AdminDashboardResponse, error)
	DoctorDashboard(ctx context.Context, doctorID uint) (*dto.DoctorDashboardResponse, error)
}

type accountUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	userRepo        repository.UserRepository
	appointmentRepo repository.AppointmentRepository
}

func NewAccountUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	appointmentRepo repository.AppointmentRepository,
) AccountUsecase {
	return &accountUsecase{
		db:              db,
		log:             log,
		userRepo:        userRepo,
		appointmentRepo: appointmentRepo,
	}
}

func (u *accountUsecase) List(ctx context.Context, role entity.Role) ([]dto.UserResponse, error) {
	users, err := u.userRepo.FindByRole(u.db.WithContext(ctx), role)
	if err != nil {
		u.log.Warnf("Failed to find %s accounts: %+v", role, err)
		return nil, err
	}
	return converter.UsersToResponse(users), nil
}

// Delete removes the account rawID if it has role and returns the list of
// that role without it. A malformed or unknown id leaves the list as is.
func (u *accountUsecase) Delete(ctx context.Context, role entity.Role, rawID string) ([]dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	users, err := u.userRepo.FindByRole(tx, role)
	if err != nil {
		u.log.Warnf("Failed to find %s accounts: %+v", role, err)
		return nil, err
	}

	id, ok := parseID(rawID)
	if !ok {
		return converter.UsersToResponse(users), nil
	}

	if _, err := u.userRepo.DeleteByIDAndRole(tx, id, role); err != nil {
		u.log.Warnf("Failed to delete %s account: %+v", role, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	remaining := make([]entity.User, 0, len(users))
	for _, user := range users {
		if user.ID != id {
			remaining = append(remaining, user)
		}
	}
	return converter.UsersToResponse(remaining), nil
}

func (u *accountUsecase) AdminDashboard(ctx context.Context) (*dto.AdminDashboardResponse, error) {
	db := u.db.WithContext(ctx)

	doctors, err := u.userRepo.CountByRole(db, entity.RoleDoctor)
	if err != nil {
		u.log.Warnf("Failed to count doctors: %+v", err)
		return nil, err
	}
	patients, err := u.userRepo.CountByRole(db, entity.RolePatient)
	if err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}
	appointments, err := u.appointmentRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count appointments: %+v", err)
		return nil, err
	}

	return &dto.AdminDashboardResponse{
		Doctors:      doctors,
		Patients:     patients,
		Appointments: appointments,
	}, nil
}

func (u *accountUsecase) DoctorDashboard(ctx context.Context, doctorID uint) (*dto.DoctorDashboardResponse, error) {
	count, err := u.appointmentRepo.CountByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to count doctor appointments: %+v", err)
		return nil, err
	}
	return &dto.DoctorDashboardResponse{Appointments: count}, nil
}
