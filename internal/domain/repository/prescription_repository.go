package repository

import (
	"hospital-management/internal/domain/entity"

	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(db *gorm.DB, prescription *entity.Prescription) error
	FindByPatientID(db *gorm.DB, patientID uint) ([]entity.Prescription, error)
}
