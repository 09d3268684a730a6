package entity

import (
	"go-hospital-management/internal/scheduling"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DoctorProfile represents doctor-specific profile data.
// WorkingSchedule is the weekly availability template the scheduling
// core resolves against; days without an entry fall back to the
// configured default hours.
type DoctorProfile struct {
	UserID          uuid.UUID                 `gorm:"type:uuid;primaryKey" json:"user_id"`
	Specialization  string                    `gorm:"type:varchar(100);not null;index" json:"specialization"`
	DepartmentID    int                       `gorm:"not null;index" json:"department_id"`
	ContactInfo     string                    `gorm:"type:varchar(100)" json:"contact_info,omitempty"`
	ConsultationFee decimal.Decimal           `gorm:"type:decimal(10,2);default:0" json:"consultation_fee"`
	WorkingSchedule scheduling.WeeklySchedule `gorm:"type:jsonb" json:"working_schedule,omitempty"`
	Biography       string                    `gorm:"type:text" json:"biography,omitempty"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Department   Department    `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
