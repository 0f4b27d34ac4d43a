package usecase

import (
	"context"

	"hospital-management/internal/converter"
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/repository"
	"hospital-management/pkg/password"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ProfileUsecase interface {
	Update(ctx context.Context, userID uint, req *dto.ProfileUpdateRequest) (*dto.UserResponse, error)
}

type profileUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	userRepo repository.UserRepository
	hasher   *password.Hasher
}

func NewProfileUsecase(db *gorm.DB, log *logrus.Logger, userRepo repository.UserRepository, hasher *password.Hasher) ProfileUsecase {
	return &profileUsecase{
		db:       db,
		log:      log,
		userRepo: userRepo,
		hasher:   hasher,
	}
}

// Update overwrites the contact fields of userID with the posted values.
// The password changes only when it is non-empty and confirmed; a mismatch
// keeps the old digest without failing the update.
func (u *profileUsecase) Update(ctx context.Context, userID uint, req *dto.ProfileUpdateRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Email != user.Email {
		other, err := u.userRepo.FindByEmail(tx, req.Email)
		if err != nil {
			u.log.Warnf("Failed to find user by email: %+v", err)
			return nil, err
		}
		if other != nil {
			return nil, ErrEmailAlreadyExists
		}
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Email = req.Email
	user.PhoneNumber = req.PhoneNumber
	user.Gender = req.Gender

	if req.Password != "" && req.Password == req.ConfirmPassword {
		hashedPassword, err := u.hasher.Hash(req.Password)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		user.Password = hashedPassword
	}

	if err := u.userRepo.Update(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}
