package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/usecase"
	"go-hospital-management/pkg/response"
	"go-hospital-management/pkg/validator"

	"github.com/gorilla/mux"
)

type DepartmentHandler struct {
	departmentUsecase usecase.DepartmentUsecase
	validator         *validator.CustomValidator
}

func NewDepartmentHandler(departmentUsecase usecase.DepartmentUsecase, validator *validator.CustomValidator) *DepartmentHandler {
	return &DepartmentHandler{
		departmentUsecase: departmentUsecase,
		validator:         validator,
	}
}

// CreateDepartment creates a department
// @Summary Create department
// @Description Create a hospital department
// @Tags Departments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateDepartmentRequest true "Create Department Request"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /departments [post]
func (h *DepartmentHandler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	department, err := h.departmentUsecase.CreateDepartment(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDepartmentAlreadyExists:
			response.Error(w, http.StatusConflict, "Department already exists", nil)
		default:
			response.InternalServerError(w, "Failed to create department")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Department created successfully", department)
}

// GetDepartment returns one department
// @Summary Get department
// @Description Get a department by ID
// @Tags Departments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /departments/{id} [get]
func (h *DepartmentHandler) GetDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid department ID", nil)
		return
	}

	department, err := h.departmentUsecase.GetDepartment(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrDepartmentNotFound:
			response.NotFound(w, "Department not found")
		default:
			response.InternalServerError(w, "Failed to get department")
		}
		return
	}

	response.Success(w, http.StatusOK, "Department retrieved successfully", department)
}

// ListDepartments lists all departments
// @Summary List departments
// @Description List all hospital departments
// @Tags Departments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /departments [get]
func (h *DepartmentHandler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.departmentUsecase.ListDepartments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list departments")
		return
	}

	response.Success(w, http.StatusOK, "Departments retrieved successfully", departments)
}
