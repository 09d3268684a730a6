package repository

import (
	"time"

	"go-hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error)
	// FindScheduledByDoctorBetween returns scheduled appointments whose
	// start_time lies in [from, to), ascending by start_time.
	FindScheduledByDoctorBetween(db *gorm.DB, doctorID uuid.UUID, from, to time.Time) ([]entity.Appointment, error)
	FindAllWithFilter(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	// UpdateStatus transitions only from the expected status and reports
	// affected rows, so concurrent transitions lose cleanly.
	UpdateStatus(db *gorm.DB, id uuid.UUID, from, to entity.AppointmentStatus) (int64, error)
	// LockDoctor takes a transaction-scoped advisory lock serializing
	// validate-then-insert per doctor. Must run inside a transaction.
	LockDoctor(db *gorm.DB, doctorID uuid.UUID) error
}
