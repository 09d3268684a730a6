package converter

import (
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"

	"github.com/google/uuid"
)

// MedicalRecordToResponse converts a MedicalRecord entity to its DTO
func MedicalRecordToResponse(record *entity.MedicalRecord) *dto.MedicalRecordResponse {
	if record == nil {
		return nil
	}

	response := &dto.MedicalRecordResponse{
		ID:            record.ID,
		PatientID:     record.PatientID,
		DoctorID:      record.DoctorID,
		VisitDate:     record.VisitDate.Format("2006-01-02"),
		VisitNotes:    record.VisitNotes,
		Diagnosis:     record.Diagnosis,
		Prescriptions: record.Prescriptions,
		LabResults:    record.LabResults,
		CreatedAt:     record.CreatedAt,
		UpdatedAt:     record.UpdatedAt,
	}

	if record.Doctor.UserID != uuid.Nil {
		response.DoctorName = record.Doctor.User.FullName
	}

	return response
}

// MedicalRecordsToResponses converts a slice of MedicalRecord entities
func MedicalRecordsToResponses(records []entity.MedicalRecord) []dto.MedicalRecordResponse {
	responses := make([]dto.MedicalRecordResponse, len(records))
	for i, record := range records {
		resp := MedicalRecordToResponse(&record)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
