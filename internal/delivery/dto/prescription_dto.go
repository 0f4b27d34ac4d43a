package dto

import "time"

type PrescriptionRequest struct {
	Drug      string `form:"drug" validate:"required"`
	Quantity  string `form:"quantity" validate:"required"`
	Condition string `form:"condition" validate:"required"`
	PatientID string `form:"patient" validate:"required"`
}

type PrescriptionResponse struct {
	ID        uint          `json:"id"`
	Drug      string        `json:"drug"`
	Quantity  string        `json:"quantity"`
	Condition string        `json:"condition"`
	DoctorID  uint          `json:"doctor_id"`
	PatientID uint          `json:"patient_id"`
	Doctor    *UserResponse `json:"doctor,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}
