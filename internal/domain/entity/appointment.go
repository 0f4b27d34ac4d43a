package entity

import (
	"time"
)

// Appointment is a booking between a patient and a doctor. DoctorID and
// PatientID are plain user ids, no foreign key is declared.
type Appointment struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName   string    `gorm:"column:firstname;type:varchar(100)" json:"firstname"`
	LastName    string    `gorm:"column:lastname;type:varchar(100)" json:"lastname"`
	Gender      string    `gorm:"type:varchar(50)" json:"gender"`
	Date        string    `gorm:"type:varchar(50)" json:"date"`
	Time        string    `gorm:"type:varchar(50)" json:"time"`
	PhoneNumber string    `gorm:"column:phone_number;type:varchar(20)" json:"phone_number"`
	DoctorID    uint      `gorm:"not null;index" json:"doctor_id"`
	PatientID   uint      `gorm:"not null;index" json:"patient_id"`
	Condition   string    `gorm:"type:varchar(50)" json:"condition"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// AppointmentScope restricts a delete to rows owned by a doctor or a patient.
// The zero value matches any appointment.
type AppointmentScope struct {
	DoctorID  uint
	PatientID uint
}
