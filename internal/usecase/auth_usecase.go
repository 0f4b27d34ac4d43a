package usecase

import (
	"context"
	"errors"
	"strings"

	"hospital-management/internal/converter"
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/domain/repository"
	"hospital-management/internal/service"
	"hospital-management/pkg/password"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPasswordMismatch   = errors.New("password mismatch")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnknownRole        = errors.New("account has an unknown role")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthUsecase interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error)
	SignupWithRole(ctx context.Context, req *dto.AdminSignupRequest, role entity.Role) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error)
	Logout(ctx context.Context, token string) error
	ForgetPassword(ctx context.Context, req *dto.ForgetPasswordRequest) error
	GetCurrentUser(ctx context.Context, userID uint) (*dto.UserResponse, error)
}

type authUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	userRepo repository.UserRepository
	hasher   *password.Hasher
	sessions *service.SessionService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	hasher *password.Hasher,
	sessions *service.SessionService,
) AuthUsecase {
	return &authUsecase{
		db:       db,
		log:      log,
		userRepo: userRepo,
		hasher:   hasher,
		sessions: sessions,
	}
}

func (u *authUsecase) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error) {
	role, err := entity.ParseRole(req.Status)
	if err != nil {
		return nil, ErrUnknownRole
	}

	return u.createUser(ctx, &entity.User{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Gender:      req.Gender,
		Status:      role,
	}, req.Password, req.ConfirmPassword)
}

func (u *authUsecase) SignupWithRole(ctx context.Context, req *dto.AdminSignupRequest, role entity.Role) (*dto.UserResponse, error) {
	if !role.Valid() {
		return nil, ErrUnknownRole
	}

	return u.createUser(ctx, &entity.User{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Gender:      req.Gender,
		Status:      role,
	}, req.Password, req.ConfirmPassword)
}

func (u *authUsecase) createUser(ctx context.Context, user *entity.User, plaintext, confirm string) (*dto.UserResponse, error) {
	if plaintext != confirm {
		return nil, ErrPasswordMismatch
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	exists, err := u.userRepo.ExistsByEmail(tx, user.Email)
	if err != nil {
		u.log.Warnf("Failed to check email: %+v", err)
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := u.hasher.Hash(plaintext)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}
	user.Password = hashedPassword

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error) {
	// Read-only, no transaction needed
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !u.hasher.Verify(user.Password, req.Password) {
		return nil, ErrInvalidCredentials
	}

	if !user.Status.Valid() {
		u.log.Warnf("User %d has unknown role, login refused", user.ID)
		return nil, ErrUnknownRole
	}

	token, err := u.sessions.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.SessionResponse{
		Token:     token,
		Dashboard: user.Status.Dashboard(),
		Expiry:    u.sessions.Expiry(),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return u.sessions.Destroy(ctx, token)
}

// ForgetPassword replaces the password of the account with req.Email and
// revokes all of its sessions.
func (u *authUsecase) ForgetPassword(ctx context.Context, req *dto.ForgetPasswordRequest) error {
	if req.Password != req.ConfirmPassword {
		return ErrPasswordMismatch
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByEmail(tx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	hashedPassword, err := u.hasher.Hash(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return err
	}

	if err := u.userRepo.UpdatePassword(tx, user.ID, hashedPassword); err != nil {
		u.log.Warnf("Failed to update password: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	// The new password is already committed; a stale session only lives
	// until its own expiry.
	if err := u.sessions.RevokeUser(ctx, user.ID); err != nil {
		u.log.Warnf("Failed to revoke sessions of user %d after password reset: %+v", user.ID, err)
	}
	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

// isDuplicateKeyError checks if the error is a unique constraint violation
// on a constraint whose name contains constraintName.
func isDuplicateKeyError(err error, constraintName string) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
