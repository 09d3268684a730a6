package converter

import (
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"

	"github.com/google/uuid"
)

// DoctorToResponse converts a DoctorProfile entity to DoctorResponse DTO
func DoctorToResponse(profile *entity.DoctorProfile) *dto.DoctorResponse {
	if profile == nil {
		return nil
	}

	response := &dto.DoctorResponse{
		ID:              profile.UserID,
		Specialization:  profile.Specialization,
		DepartmentID:    profile.DepartmentID,
		ContactInfo:     profile.ContactInfo,
		ConsultationFee: profile.ConsultationFee,
		WorkingSchedule: profile.WorkingSchedule,
		Biography:       profile.Biography,
	}

	if profile.User.ID != uuid.Nil {
		response.Email = profile.User.Email
		response.FullName = profile.User.FullName
		response.IsActive = profile.User.IsActive
		response.CreatedAt = profile.User.CreatedAt
	}
	if profile.Department.ID != 0 {
		response.DepartmentName = profile.Department.Name
	}

	return response
}

// DoctorsToResponses converts a slice of DoctorProfile entities
func DoctorsToResponses(profiles []entity.DoctorProfile) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(profiles))
	for i, profile := range profiles {
		resp := DoctorToResponse(&profile)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
