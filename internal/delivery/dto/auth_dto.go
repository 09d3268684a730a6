package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RegisterPatientRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	FullName       string `json:"full_name" validate:"required,min=2"`
	DateOfBirth    string `json:"date_of_birth" validate:"required"` // Format: YYYY-MM-DD
	Gender         string `json:"gender" validate:"required,oneof=M F O"`
	ContactInfo    string `json:"contact_info" validate:"omitempty,max=100"`
	MedicalHistory string `json:"medical_history" validate:"omitempty"`
}

// RegisterStaffRequest creates staff accounts (admin only). Doctor
// accounts additionally require specialization and department.
type RegisterStaffRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	FullName        string `json:"full_name" validate:"required,min=2"`
	Role            string `json:"role" validate:"required,oneof=doctor nurse receptionist admin"`
	Specialization  string `json:"specialization" validate:"required_if=Role doctor"`
	DepartmentID    int    `json:"department_id" validate:"required_if=Role doctor"`
	ContactInfo     string `json:"contact_info" validate:"omitempty,max=100"`
	ConsultationFee string `json:"consultation_fee" validate:"omitempty"`
	Biography       string `json:"biography" validate:"omitempty"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID             uuid.UUID        `json:"id"`
	Email          string           `json:"email"`
	FullName       string           `json:"full_name"`
	Role           string           `json:"role"`
	DoctorProfile  *DoctorResponse  `json:"doctor_profile,omitempty"`
	PatientProfile *PatientResponse `json:"patient_profile,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}
