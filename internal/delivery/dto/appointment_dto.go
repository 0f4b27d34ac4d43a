package dto

import "time"

type BookAppointmentRequest struct {
	FirstName   string `form:"firstname" validate:"required"`
	LastName    string `form:"lastname" validate:"required"`
	Gender      string `form:"gender" validate:"required"`
	Date        string `form:"date" validate:"required"`
	Time        string `form:"time" validate:"required"`
	PhoneNumber string `form:"phonenumber" validate:"required"`
	DoctorID    string `form:"select-doctor" validate:"required"`
	Condition   string `form:"injury-condition" validate:"required"`
}

// DeleteRequest carries the row id posted by the list pages.
type DeleteRequest struct {
	ID string `form:"id"`
}

type AppointmentResponse struct {
	ID          uint          `json:"id"`
	FirstName   string        `json:"firstname"`
	LastName    string        `json:"lastname"`
	Gender      string        `json:"gender"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	PhoneNumber string        `json:"phone_number"`
	Condition   string        `json:"condition"`
	DoctorID    uint          `json:"doctor_id"`
	PatientID   uint          `json:"patient_id"`
	Doctor      *UserResponse `json:"doctor,omitempty"`
	Patient     *UserResponse `json:"patient,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}
