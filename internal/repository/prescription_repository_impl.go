package repository

import (
	"hospital-management/internal/domain/entity"
	domainRepo "hospital-management/internal/domain/repository"

	"gorm.io/gorm"
)

type prescriptionRepository struct{}

func NewPrescriptionRepository() domainRepo.PrescriptionRepository {
	return &prescriptionRepository{}
}

func (r *prescriptionRepository) Create(db *gorm.DB, prescription *entity.Prescription) error {
	return db.Create(prescription).Error
}

func (r *prescriptionRepository) FindByPatientID(db *gorm.DB, patientID uint) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	err := db.Where("patient_id = ?", patientID).Order("id").Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}
