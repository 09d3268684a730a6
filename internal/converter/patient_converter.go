package converter

import (
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"

	"github.com/google/uuid"
)

// PatientToResponse converts a PatientProfile entity to PatientResponse DTO
func PatientToResponse(profile *entity.PatientProfile) *dto.PatientResponse {
	if profile == nil {
		return nil
	}

	response := &dto.PatientResponse{
		ID:               profile.UserID,
		DateOfBirth:      profile.DateOfBirth.Format("2006-01-02"),
		Gender:           profile.Gender,
		ContactInfo:      profile.ContactInfo,
		MedicalHistory:   profile.MedicalHistory,
		AssignedDoctorID: profile.AssignedDoctorID,
	}

	if profile.User.ID != uuid.Nil {
		response.Email = profile.User.Email
		response.FullName = profile.User.FullName
		response.CreatedAt = profile.User.CreatedAt
	}

	return response
}

// PatientsToResponses converts a slice of PatientProfile entities
func PatientsToResponses(profiles []entity.PatientProfile) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(profiles))
	for i, profile := range profiles {
		resp := PatientToResponse(&profile)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
