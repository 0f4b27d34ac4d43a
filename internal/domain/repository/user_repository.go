package repository

import (
	"hospital-management/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByID(db *gorm.DB, id uint) (*entity.User, error)
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	ExistsByEmail(db *gorm.DB, email string) (bool, error)
	FindByRole(db *gorm.DB, role entity.Role) ([]entity.User, error)
	FindByIDs(db *gorm.DB, ids []uint) ([]entity.User, error)
	CountByRole(db *gorm.DB, role entity.Role) (int64, error)
	Update(db *gorm.DB, user *entity.User) error
	UpdatePassword(db *gorm.DB, id uint, hashedPassword string) error
	DeleteByIDAndRole(db *gorm.DB, id uint, role entity.Role) (int64, error)
}
