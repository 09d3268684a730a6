package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatientProfile represents patient-specific profile data
type PatientProfile struct {
	UserID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	DateOfBirth      time.Time  `gorm:"type:date;not null" json:"date_of_birth"`
	Gender           string     `gorm:"type:char(1);not null" json:"gender"`
	ContactInfo      string     `gorm:"type:varchar(100)" json:"contact_info,omitempty"`
	MedicalHistory   string     `gorm:"type:text" json:"medical_history,omitempty"`
	AssignedDoctorID *uuid.UUID `gorm:"type:uuid;index" json:"assigned_doctor_id,omitempty"`

	// Relationships
	User           User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	AssignedDoctor *DoctorProfile `gorm:"foreignKey:AssignedDoctorID" json:"assigned_doctor,omitempty"`
	Appointments   []Appointment  `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "O"
)
