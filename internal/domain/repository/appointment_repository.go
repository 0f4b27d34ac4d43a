package repository

import (
	"hospital-management/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uint) ([]entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID uint) ([]entity.Appointment, error)
	Count(db *gorm.DB) (int64, error)
	CountByDoctorID(db *gorm.DB, doctorID uint) (int64, error)
	Delete(db *gorm.DB, id uint, scope entity.AppointmentScope) (int64, error)
}
