package entity

import (
	"time"

	"github.com/google/uuid"
)

// MedicalRecord captures the clinical outcome of a visit
type MedicalRecord struct {
	ID            int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"doctor_id"`
	VisitDate     time.Time  `gorm:"type:date;not null;index" json:"visit_date"`
	VisitNotes    string     `gorm:"type:text" json:"visit_notes,omitempty"`
	Diagnosis     string     `gorm:"type:text;not null" json:"diagnosis"`
	Prescriptions string     `gorm:"type:text" json:"prescriptions,omitempty"`
	LabResults    string     `gorm:"type:text" json:"lab_results,omitempty"`
	CreatedBy     *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  DoctorProfile  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}
