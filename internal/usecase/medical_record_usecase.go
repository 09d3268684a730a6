package usecase

import (
	"context"
	"errors"
	"time"

	"go-hospital-management/internal/authz"
	"go-hospital-management/internal/converter"
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
	"go-hospital-management/internal/domain/repository"
	"go-hospital-management/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrMedicalRecordNotFound = errors.New("medical record not found")

type MedicalRecordUsecase interface {
	CreateRecord(ctx context.Context, doctorID uuid.UUID, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	UpdateRecord(ctx context.Context, actorID uuid.UUID, actorRoleID int, recordID int64, req *dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	GetPatientRecords(ctx context.Context, actorID uuid.UUID, actorRoleID int, patientID uuid.UUID) (*dto.MedicalRecordListResponse, error)
}

type medicalRecordUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	medicalRecordRepo  repository.MedicalRecordRepository
	patientProfileRepo repository.PatientProfileRepository
	auditService       service.AuditService
}

func NewMedicalRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	medicalRecordRepo repository.MedicalRecordRepository,
	patientProfileRepo repository.PatientProfileRepository,
	auditService service.AuditService,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		db:                 db,
		log:                log,
		medicalRecordRepo:  medicalRecordRepo,
		patientProfileRepo: patientProfileRepo,
		auditService:       auditService,
	}
}

func (u *medicalRecordUsecase) CreateRecord(ctx context.Context, doctorID uuid.UUID, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	visitDate, err := time.Parse("2006-01-02", req.VisitDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientProfileRepo.FindByUserID(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	record := &entity.MedicalRecord{
		PatientID:     req.PatientID,
		DoctorID:      doctorID,
		VisitDate:     visitDate,
		VisitNotes:    req.VisitNotes,
		Diagnosis:     req.Diagnosis,
		Prescriptions: req.Prescriptions,
		LabResults:    req.LabResults,
		CreatedBy:     &doctorID,
	}

	if err := u.medicalRecordRepo.Create(tx, record); err != nil {
		u.log.Warnf("Failed to create medical record: %+v", err)
		return nil, err
	}

	u.auditService.LogAction(ctx, tx, &doctorID, entity.AuditActionMedicalRecordWrite, "medical_record", record.PatientID.String(), map[string]interface{}{"record_id": record.ID})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) UpdateRecord(ctx context.Context, actorID uuid.UUID, actorRoleID int, recordID int64, req *dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	record, err := u.medicalRecordRepo.FindByID(tx, recordID)
	if err != nil {
		u.log.Warnf("Failed to find medical record: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrMedicalRecordNotFound
	}

	// Doctors amend only their own records
	if actorRoleID == entity.RoleIDDoctor && record.DoctorID != actorID {
		return nil, ErrForbidden
	}

	if req.VisitNotes != nil {
		record.VisitNotes = *req.VisitNotes
	}
	if req.Diagnosis != nil {
		record.Diagnosis = *req.Diagnosis
	}
	if req.Prescriptions != nil {
		record.Prescriptions = *req.Prescriptions
	}
	if req.LabResults != nil {
		record.LabResults = *req.LabResults
	}

	if err := u.medicalRecordRepo.Update(tx, record); err != nil {
		u.log.Warnf("Failed to update medical record: %+v", err)
		return nil, err
	}

	u.auditService.LogAction(ctx, tx, &actorID, entity.AuditActionMedicalRecordWrite, "medical_record", record.PatientID.String(), map[string]interface{}{"record_id": record.ID})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) GetPatientRecords(ctx context.Context, actorID uuid.UUID, actorRoleID int, patientID uuid.UUID) (*dto.MedicalRecordListResponse, error) {
	// Clinical readers see any patient's history; patients only their own
	role := entity.RoleNameByID(actorRoleID)
	if !authz.Can(role, authz.ResourceMedicalRecords, authz.ActionRead) {
		if !authz.Can(role, authz.ResourceMedicalRecords, authz.ActionReadOwn) || actorID != patientID {
			return nil, ErrForbidden
		}
	}

	db := u.db.WithContext(ctx)

	patient, err := u.patientProfileRepo.FindByUserID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	records, err := u.medicalRecordRepo.FindByPatientID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to list medical records: %+v", err)
		return nil, err
	}

	responses := converter.MedicalRecordsToResponses(records)
	return &dto.MedicalRecordListResponse{
		Records: responses,
		Total:   len(responses),
	}, nil
}
