package converter

import (
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
)

func PrescriptionsToResponse(prescriptions []entity.Prescription, doctors map[uint]*entity.User) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, 0, len(prescriptions))
	for _, p := range prescriptions {
		responses = append(responses, dto.PrescriptionResponse{
			ID:        p.ID,
			Drug:      p.Drug,
			Quantity:  p.Quantity,
			Condition: p.Condition,
			DoctorID:  p.DoctorID,
			PatientID: p.PatientID,
			Doctor:    UserToResponse(doctors[p.DoctorID]),
			CreatedAt: p.CreatedAt,
		})
	}
	return responses
}

func PrescriptionDoctorIDs(prescriptions []entity.Prescription) []uint {
	seen := make(map[uint]struct{})
	ids := make([]uint, 0, len(prescriptions))
	for _, p := range prescriptions {
		if _, ok := seen[p.DoctorID]; !ok {
			seen[p.DoctorID] = struct{}{}
			ids = append(ids, p.DoctorID)
		}
	}
	return ids
}
