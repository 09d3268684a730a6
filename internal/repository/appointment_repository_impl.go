package repository

import (
	"errors"
	"time"

	"go-hospital-management/internal/domain/entity"
	domainRepo "go-hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Doctor.User").Preload("Patient.User").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Doctor.User").
		Where("patient_id = ?", patientID).
		Order("start_time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Patient.User").
		Where("doctor_id = ?", doctorID).
		Order("start_time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindScheduledByDoctorBetween(db *gorm.DB, doctorID uuid.UUID, from, to time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Where("doctor_id = ? AND status = ? AND start_time >= ? AND start_time < ?",
			doctorID, entity.AppointmentStatusScheduled, from, to).
		Order("start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// FindAllWithFilter returns appointments for active doctors only.
// Supports optional filters: date range, status, and doctor name.
func (r *appointmentRepository) FindAllWithFilter(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	query := db.
		Joins("JOIN doctor_profiles ON doctor_profiles.user_id = appointments.doctor_id").
		Joins("JOIN users ON users.id = doctor_profiles.user_id").
		Where("users.is_active = ?", true)

	if filter != nil {
		if filter.StartAt != "" {
			query = query.Where("appointments.start_time >= ?", filter.StartAt)
		}
		if filter.EndAt != "" {
			query = query.Where("appointments.start_time < (?::date + interval '1 day')", filter.EndAt)
		}
		if filter.Status != "" {
			query = query.Where("appointments.status = ?", filter.Status)
		}
		if filter.DoctorName != "" {
			query = query.Where("users.full_name ILIKE ?", "%"+filter.DoctorName+"%")
		}
	}

	err := query.
		Preload("Doctor.User").Preload("Patient.User").
		Order("appointments.start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// UpdateStatus atomically transitions status ONLY from the expected
// current value. Returns affected rows: 0 means another request
// transitioned the appointment first.
func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, from, to entity.AppointmentStatus) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}

// LockDoctor serializes booking per doctor with a transaction-scoped
// advisory lock, released automatically at commit or rollback. This
// closes the read-then-insert race the unique index alone cannot:
// the index only catches identical start times, not partial overlaps.
func (r *appointmentRepository) LockDoctor(db *gorm.DB, doctorID uuid.UUID) error {
	return db.Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", doctorID.String()).Error
}
