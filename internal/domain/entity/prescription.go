package entity

import (
	"time"
)

// Prescription is written once by a doctor for a patient and never changed.
type Prescription struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Drug      string    `gorm:"type:varchar(100)" json:"drug"`
	Quantity  string    `gorm:"type:varchar(100)" json:"quantity"`
	Condition string    `gorm:"type:varchar(100)" json:"condition"`
	PatientID uint      `gorm:"not null;index" json:"patient_id"`
	DoctorID  uint      `gorm:"not null;index" json:"doctor_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
