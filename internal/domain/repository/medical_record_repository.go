package repository

import (
	"go-hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedicalRecordRepository interface {
	Create(db *gorm.DB, record *entity.MedicalRecord) error
	FindByID(db *gorm.DB, id int64) (*entity.MedicalRecord, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.MedicalRecord, error)
	Update(db *gorm.DB, record *entity.MedicalRecord) error
}
