package usecase

import (
	"context"
	"errors"
	"fmt"

	"go-hospital-management/internal/authz"
	"go-hospital-management/internal/converter"
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
	"go-hospital-management/internal/domain/repository"
	"go-hospital-management/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrInvalidSchedule wraps the concrete validation failure so handlers
// can report which entry was rejected.
var ErrInvalidSchedule = errors.New("invalid working schedule")

type DoctorProfileUsecase interface {
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	ListDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	UpdateDoctor(ctx context.Context, actorID uuid.UUID, actorRoleID int, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	UpdateWorkingSchedule(ctx context.Context, actorID uuid.UUID, actorRoleID int, doctorID uuid.UUID, req *dto.UpdateWorkingScheduleRequest) (*dto.DoctorResponse, error)
	DeactivateDoctor(ctx context.Context, actorID uuid.UUID, doctorID uuid.UUID) error
}

type doctorProfileUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	doctorProfileRepo repository.DoctorProfileRepository
	userRepo          repository.UserRepository
	auditService      service.AuditService
}

func NewDoctorProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorProfileRepo repository.DoctorProfileRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) DoctorProfileUsecase {
	return &doctorProfileUsecase{
		db:                db,
		log:               log,
		doctorProfileRepo: doctorProfileRepo,
		userRepo:          userRepo,
		auditService:      auditService,
	}
}

func (u *doctorProfileUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	profile, err := u.doctorProfileRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil || !profile.User.IsActive {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(profile), nil
}

func (u *doctorProfileUsecase) ListDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	profiles, err := u.doctorProfileRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list doctor profiles: %+v", err)
		return nil, err
	}

	responses := converter.DoctorsToResponses(profiles)
	return &dto.DoctorListResponse{
		Doctors: responses,
		Total:   len(responses),
	}, nil
}

func (u *doctorProfileUsecase) UpdateDoctor(ctx context.Context, actorID uuid.UUID, actorRoleID int, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	// Admins edit anyone; doctors edit only their own profile
	if !authz.Can(entity.RoleNameByID(actorRoleID), authz.ResourceDoctors, authz.ActionWrite) {
		if actorRoleID != entity.RoleIDDoctor || actorID != doctorID {
			return nil, ErrForbidden
		}
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.doctorProfileRepo.FindByUserID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	if req.Specialization != "" {
		profile.Specialization = req.Specialization
	}
	if req.DepartmentID != nil {
		profile.DepartmentID = *req.DepartmentID
	}
	if req.ContactInfo != nil {
		profile.ContactInfo = *req.ContactInfo
	}
	if req.ConsultationFee != nil {
		fee, err := decimal.NewFromString(*req.ConsultationFee)
		if err != nil {
			return nil, ErrInvalidFeeFormat
		}
		profile.ConsultationFee = fee
	}
	if req.Biography != nil {
		profile.Biography = *req.Biography
	}

	if err := u.doctorProfileRepo.Update(tx, profile); err != nil {
		if isForeignKeyError(err, "department") {
			return nil, ErrDepartmentNotFound
		}
		u.log.Warnf("Failed to update doctor profile: %+v", err)
		return nil, err
	}

	u.auditService.LogAction(ctx, tx, &actorID, entity.AuditActionDoctorUpdate, "doctor", doctorID.String(), nil)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(profile), nil
}

func (u *doctorProfileUsecase) UpdateWorkingSchedule(ctx context.Context, actorID uuid.UUID, actorRoleID int, doctorID uuid.UUID, req *dto.UpdateWorkingScheduleRequest) (*dto.DoctorResponse, error) {
	// Doctors manage only their own schedule
	if actorRoleID == entity.RoleIDDoctor && actorID != doctorID {
		return nil, ErrForbidden
	}

	// Writes are validated strictly even though reads fall back
	// leniently on malformed stored entries.
	if err := req.WorkingSchedule.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.doctorProfileRepo.FindByUserID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	oldSchedule := profile.WorkingSchedule
	profile.WorkingSchedule = req.WorkingSchedule

	if err := u.doctorProfileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update working schedule: %+v", err)
		return nil, err
	}

	u.auditService.LogTransition(ctx, tx, &actorID, entity.AuditActionScheduleUpdate, "doctor", doctorID.String(), oldSchedule, req.WorkingSchedule)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(profile), nil
}

// DeactivateDoctor disables the account instead of deleting rows, so
// past appointments and medical records keep their references.
func (u *doctorProfileUsecase) DeactivateDoctor(ctx context.Context, actorID uuid.UUID, doctorID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.doctorProfileRepo.FindByUserID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return err
	}
	if profile == nil {
		return ErrDoctorNotFound
	}

	user := profile.User
	user.IsActive = false
	if err := u.userRepo.Update(tx, &user); err != nil {
		u.log.Warnf("Failed to deactivate doctor account: %+v", err)
		return err
	}

	u.auditService.LogAction(ctx, tx, &actorID, entity.AuditActionDoctorDelete, "doctor", doctorID.String(), nil)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
