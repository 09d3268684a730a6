package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/delivery/http/middleware"
	"go-hospital-management/internal/usecase"
	"go-hospital-management/pkg/response"
	"go-hospital-management/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const (
	defaultSlotDurationMinutes = 30
	defaultDaysToScan          = 1
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// GetAvailability lists a doctor's free slots
// @Summary Get doctor availability
// @Description List bookable slots for a doctor starting from a date
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Doctor ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param duration_minutes query int false "Slot duration in minutes (default 30)"
// @Param days_to_scan query int false "Consecutive days to scan (default 1, max 30)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/{id}/availability [get]
func (h *AppointmentHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	req := dto.AvailabilityRequest{
		Date:            r.URL.Query().Get("date"),
		DurationMinutes: defaultSlotDurationMinutes,
		DaysToScan:      defaultDaysToScan,
	}

	if v := r.URL.Query().Get("duration_minutes"); v != "" {
		req.DurationMinutes, err = strconv.Atoi(v)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid duration_minutes", nil)
			return
		}
	}
	if v := r.URL.Query().Get("days_to_scan"); v != "" {
		req.DaysToScan, err = strconv.Atoi(v)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid days_to_scan", nil)
			return
		}
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	availability, err := h.appointmentUsecase.GetAvailability(r.Context(), doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to get availability")
		}
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", availability)
}

// Book creates an appointment
// @Summary Book an appointment
// @Description Book a slot with a doctor at a specific start time
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.BookAppointmentRequest true "Book Appointment Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Book(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	roleID, ok := middleware.GetRoleIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Book(r.Context(), actorID, roleID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrPatientRequired:
			response.Error(w, http.StatusBadRequest, "patient_id is required for staff bookings", nil)
		case usecase.ErrInvalidStartTime:
			response.Error(w, http.StatusBadRequest, "Invalid start_time, use RFC3339", nil)
		case usecase.ErrSlotUnavailable:
			response.Error(w, http.StatusConflict, "Slot is not available", nil)
		case usecase.ErrSlotTaken:
			response.Error(w, http.StatusConflict, "Slot was just taken, re-query availability", nil)
		default:
			response.InternalServerError(w, "Failed to book appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

// Cancel cancels a scheduled appointment
// @Summary Cancel an appointment
// @Description Cancel a scheduled appointment more than 24 hours in advance
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /appointments/{id}/cancel [post]
func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	roleID, ok := middleware.GetRoleIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := h.appointmentUsecase.Cancel(r.Context(), actorID, roleID, appointmentID)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "Appointment does not belong to you")
		case usecase.ErrCancellationWindow:
			response.Error(w, http.StatusConflict, "Appointments can only be cancelled more than 24 hours in advance", nil)
		case usecase.ErrNotCancellable:
			response.Error(w, http.StatusConflict, "Appointment is not in a cancellable state", nil)
		default:
			response.InternalServerError(w, "Failed to cancel appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", appointment)
}

// Complete marks an appointment as completed
// @Summary Complete an appointment
// @Description Mark a scheduled appointment as completed, optionally with visit notes
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /appointments/{id}/complete [post]
func (h *AppointmentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	roleID, ok := middleware.GetRoleIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req struct {
		Notes string `json:"notes"`
	}
	json.NewDecoder(r.Body).Decode(&req)

	appointment, err := h.appointmentUsecase.Complete(r.Context(), actorID, roleID, appointmentID, req.Notes)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "Appointment does not belong to you")
		case usecase.ErrNotCompletable:
			response.Error(w, http.StatusConflict, "Appointment is not in a completable state", nil)
		default:
			response.InternalServerError(w, "Failed to complete appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment completed successfully", appointment)
}

// GetMyAppointments lists the caller's own appointments
// @Summary List my appointments
// @Description List appointments where the caller is the patient or the doctor
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /appointments/me [get]
func (h *AppointmentHandler) GetMyAppointments(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	roleID, ok := middleware.GetRoleIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointments, err := h.appointmentUsecase.GetMyAppointments(r.Context(), actorID, roleID)
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// ListAppointments lists appointments with filters
// @Summary List appointments
// @Description List appointments filtered by date range, status and doctor name
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param start_at query string false "Start date (YYYY-MM-DD)"
// @Param end_at query string false "End date (YYYY-MM-DD)"
// @Param status query string false "Status (S, C or X)"
// @Param doctor_name query string false "Doctor name filter"
// @Success 200 {object} response.Response
// @Router /appointments [get]
func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	req := dto.AppointmentFilterRequest{
		StartAt:    r.URL.Query().Get("start_at"),
		EndAt:      r.URL.Query().Get("end_at"),
		Status:     r.URL.Query().Get("status"),
		DoctorName: r.URL.Query().Get("doctor_name"),
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointments, err := h.appointmentUsecase.ListAppointments(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}
