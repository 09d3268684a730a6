package converter

import (
	"time"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
	"go-hospital-management/internal/scheduling"

	"github.com/google/uuid"
)

var appointmentStatusLabels = map[entity.AppointmentStatus]string{
	entity.AppointmentStatusScheduled: "scheduled",
	entity.AppointmentStatusCompleted: "completed",
	entity.AppointmentStatusCancelled: "cancelled",
}

// AppointmentToResponse converts an Appointment entity to its DTO.
// Timestamps are normalized to UTC RFC3339.
func AppointmentToResponse(appointment *entity.Appointment, now time.Time) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		DoctorID:        appointment.DoctorID,
		PatientID:       appointment.PatientID,
		StartTime:       appointment.StartTime.UTC().Format(time.RFC3339),
		EndTime:         appointment.EndTime().UTC().Format(time.RFC3339),
		DurationMinutes: appointment.DurationMinutes,
		Status:          appointmentStatusLabels[appointment.Status],
		Reason:          appointment.Reason,
		Notes:           appointment.Notes,
		CanCancel:       appointment.CanCancel(now),
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}

	if appointment.Doctor.UserID != uuid.Nil {
		response.DoctorName = appointment.Doctor.User.FullName
	}
	if appointment.Patient.UserID != uuid.Nil {
		response.PatientName = appointment.Patient.User.FullName
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities
func AppointmentsToResponses(appointments []entity.Appointment, now time.Time) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment, now)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// SlotsToResponses converts scheduling slots to their wire format
func SlotsToResponses(slots []scheduling.Slot) []dto.SlotResponse {
	responses := make([]dto.SlotResponse, len(slots))
	for i, slot := range slots {
		responses[i] = dto.SlotResponse{
			StartTime: slot.Start.UTC().Format(time.RFC3339),
			EndTime:   slot.End.UTC().Format(time.RFC3339),
		}
	}
	return responses
}
