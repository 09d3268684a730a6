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

type MedicalRecordHandler struct {
	medicalRecordUsecase usecase.MedicalRecordUsecase
	validator            *validator.CustomValidator
}

func NewMedicalRecordHandler(medicalRecordUsecase usecase.MedicalRecordUsecase, validator *validator.CustomValidator) *MedicalRecordHandler {
	return &MedicalRecordHandler{
		medicalRecordUsecase: medicalRecordUsecase,
		validator:            validator,
	}
}

// CreateRecord writes a medical record for a visit
// @Summary Create medical record
// @Description Record the clinical outcome of a visit
// @Tags MedicalRecords
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateMedicalRecordRequest true "Create Medical Record Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /medical-records [post]
func (h *MedicalRecordHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateMedicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.medicalRecordUsecase.CreateRecord(r.Context(), actorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid visit date, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to create medical record")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Medical record created successfully", record)
}

// UpdateRecord amends an existing medical record
// @Summary Update medical record
// @Description Amend notes, diagnosis, prescriptions or lab results
// @Tags MedicalRecords
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Record ID"
// @Param request body dto.UpdateMedicalRecordRequest true "Update Medical Record Request"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /medical-records/{id} [put]
func (h *MedicalRecordHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
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

	recordID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	var req dto.UpdateMedicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.medicalRecordUsecase.UpdateRecord(r.Context(), actorID, roleID, recordID, &req)
	if err != nil {
		switch err {
		case usecase.ErrMedicalRecordNotFound:
			response.NotFound(w, "Medical record not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "You can only amend your own records")
		default:
			response.InternalServerError(w, "Failed to update medical record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical record updated successfully", record)
}

// GetPatientRecords lists a patient's medical history
// @Summary Get patient medical records
// @Description List all medical records for a patient, newest first
// @Tags MedicalRecords
// @Security BearerAuth
// @Produce json
// @Param id path string true "Patient ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id}/medical-records [get]
func (h *MedicalRecordHandler) GetPatientRecords(w http.ResponseWriter, r *http.Request) {
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

	patientID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	records, err := h.medicalRecordUsecase.GetPatientRecords(r.Context(), actorID, roleID, patientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "You can only read your own medical records")
		default:
			response.InternalServerError(w, "Failed to list medical records")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical records retrieved successfully", records)
}
