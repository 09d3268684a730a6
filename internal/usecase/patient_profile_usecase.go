package usecase

import (
	"context"
	"errors"

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

// ErrForbidden covers capability failures that cannot be expressed as
// a route-level middleware gate, like own-scoped access.
var ErrForbidden = errors.New("insufficient permissions")

type PatientProfileUsecase interface {
	GetPatient(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, error)
	ListPatients(ctx context.Context) (*dto.PatientListResponse, error)
	UpdatePatient(ctx context.Context, actorID uuid.UUID, actorRoleID int, patientID uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
}

type patientProfileUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	patientProfileRepo repository.PatientProfileRepository
	doctorProfileRepo  repository.DoctorProfileRepository
	auditService       service.AuditService
}

func NewPatientProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientProfileRepo repository.PatientProfileRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
) PatientProfileUsecase {
	return &patientProfileUsecase{
		db:                 db,
		log:                log,
		patientProfileRepo: patientProfileRepo,
		doctorProfileRepo:  doctorProfileRepo,
		auditService:       auditService,
	}
}

func (u *patientProfileUsecase) GetPatient(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, error) {
	profile, err := u.patientProfileRepo.FindByUserID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(profile), nil
}

func (u *patientProfileUsecase) ListPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	profiles, err := u.patientProfileRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list patient profiles: %+v", err)
		return nil, err
	}

	responses := converter.PatientsToResponses(profiles)
	return &dto.PatientListResponse{
		Patients: responses,
		Total:    len(responses),
	}, nil
}

func (u *patientProfileUsecase) UpdatePatient(ctx context.Context, actorID uuid.UUID, actorRoleID int, patientID uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	// Roles with a patients write capability edit anyone; patients
	// edit only their own profile.
	role := entity.RoleNameByID(actorRoleID)
	if !authz.Can(role, authz.ResourcePatients, authz.ActionWrite) {
		if actorRoleID != entity.RoleIDPatient || actorID != patientID {
			return nil, ErrForbidden
		}
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.patientProfileRepo.FindByUserID(tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientNotFound
	}

	if req.ContactInfo != nil {
		profile.ContactInfo = *req.ContactInfo
	}
	if req.MedicalHistory != nil {
		profile.MedicalHistory = *req.MedicalHistory
	}
	if req.AssignedDoctorID != nil {
		doctorID, err := uuid.Parse(*req.AssignedDoctorID)
		if err != nil {
			return nil, ErrDoctorNotFound
		}
		doctor, err := u.doctorProfileRepo.FindByUserID(tx, doctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor profile: %+v", err)
			return nil, err
		}
		if doctor == nil || !doctor.User.IsActive {
			return nil, ErrDoctorNotFound
		}
		profile.AssignedDoctorID = &doctorID
	}

	if err := u.patientProfileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update patient profile: %+v", err)
		return nil, err
	}

	u.auditService.LogAction(ctx, tx, &actorID, entity.AuditActionProfileUpdate, "patient", patientID.String(), nil)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(profile), nil
}
