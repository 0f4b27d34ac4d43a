package repository

import (
	"hospital-management/internal/domain/entity"
	domainRepo "hospital-management/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Order("id").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID uint) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("patient_id = ?", patientID).Order("id").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctorID(db *gorm.DB, doctorID uint) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("doctor_id = ?", doctorID).Order("id").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).Count(&count).Error
	return count, err
}

func (r *appointmentRepository) CountByDoctorID(db *gorm.DB, doctorID uint) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).Where("doctor_id = ?", doctorID).Count(&count).Error
	return count, err
}

// Delete removes one appointment, narrowed to the owner set in scope.
// Returns affected rows: 0 when the id is unknown or owned by someone else.
func (r *appointmentRepository) Delete(db *gorm.DB, id uint, scope entity.AppointmentScope) (int64, error) {
	query := db.Where("id = ?", id)
	if scope.DoctorID != 0 {
		query = query.Where("doctor_id = ?", scope.DoctorID)
	}
	if scope.PatientID != 0 {
		query = query.Where("patient_id = ?", scope.PatientID)
	}
	result := query.Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}
