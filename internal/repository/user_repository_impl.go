package repository

import (
	"errors"

	"hospital-management/internal/domain/entity"
	domainRepo "hospital-management/internal/domain/repository"

	"gorm.io/gorm"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(db *gorm.DB, user *entity.User) error {
	return db.Create(user).Error
}

func (r *userRepository) FindByID(db *gorm.DB, id uint) (*entity.User, error) {
	var user entity.User
	err := db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	var user entity.User
	err := db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ExistsByEmail(db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) FindByRole(db *gorm.DB, role entity.Role) ([]entity.User, error) {
	var users []entity.User
	err := db.Where("status = ?", role).Order("id").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindByIDs(db *gorm.DB, ids []uint) ([]entity.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []entity.User
	err := db.Where("id IN ?", ids).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) CountByRole(db *gorm.DB, role entity.Role) (int64, error) {
	var count int64
	err := db.Model(&entity.User{}).Where("status = ?", role).Count(&count).Error
	return count, err
}

func (r *userRepository) Update(db *gorm.DB, user *entity.User) error {
	return db.Save(user).Error
}

func (r *userRepository) UpdatePassword(db *gorm.DB, id uint, hashedPassword string) error {
	return db.Model(&entity.User{}).Where("id = ?", id).Update("password", hashedPassword).Error
}

// DeleteByIDAndRole only removes the row when it carries the given role.
// Zero rows affected is not an error.
func (r *userRepository) DeleteByIDAndRole(db *gorm.DB, id uint, role entity.Role) (int64, error) {
	result := db.Where("id = ? AND status = ?", id, role).Delete(&entity.User{})
	return result.RowsAffected, result.Error
}
