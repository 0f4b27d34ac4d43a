package converter

import (
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment. doctor and patient may be
// nil when the referenced account no longer exists.
func AppointmentToResponse(appointment *entity.Appointment, doctor, patient *entity.User) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:          appointment.ID,
		FirstName:   appointment.FirstName,
		LastName:    appointment.LastName,
		Gender:      appointment.Gender,
		Date:        appointment.Date,
		Time:        appointment.Time,
		PhoneNumber: appointment.PhoneNumber,
		Condition:   appointment.Condition,
		DoctorID:    appointment.DoctorID,
		PatientID:   appointment.PatientID,
		Doctor:      UserToResponse(doctor),
		Patient:     UserToResponse(patient),
		CreatedAt:   appointment.CreatedAt,
	}
}

// AppointmentsToResponse joins each appointment with its doctor and patient
// from users.
func AppointmentsToResponse(appointments []entity.Appointment, users map[uint]*entity.User) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		a := &appointments[i]
		responses = append(responses, *AppointmentToResponse(a, users[a.DoctorID], users[a.PatientID]))
	}
	return responses
}

// AppointmentUserIDs collects the distinct doctor and patient ids referenced.
func AppointmentUserIDs(appointments []entity.Appointment) []uint {
	seen := make(map[uint]struct{})
	ids := make([]uint, 0, len(appointments)*2)
	for _, a := range appointments {
		for _, id := range []uint{a.DoctorID, a.PatientID} {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}
	return ids
}
