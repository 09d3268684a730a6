package usecase

import (
	"context"
	"errors"
	"time"

	"go-hospital-management/internal/converter"
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
	"go-hospital-management/internal/domain/repository"
	"go-hospital-management/internal/scheduling"
	"go-hospital-management/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrPatientRequired     = errors.New("patient_id is required")
	ErrInvalidStartTime    = errors.New("invalid start time, use RFC3339")
	// ErrSlotUnavailable means the candidate failed validation against
	// the working day or current bookings. Re-query availability.
	ErrSlotUnavailable = errors.New("slot is not available")
	// ErrSlotTaken means a concurrent booking won the same start time
	// between validation and insert.
	ErrSlotTaken           = errors.New("slot was just taken, re-query availability")
	ErrCancellationWindow  = errors.New("appointments can only be cancelled more than 24 hours in advance")
	ErrNotCancellable      = errors.New("appointment is not in a cancellable state")
	ErrNotCompletable      = errors.New("appointment is not in a completable state")
	ErrAppointmentNotOwned = errors.New("appointment does not belong to you")
)

type AppointmentUsecase interface {
	GetAvailability(ctx context.Context, doctorID uuid.UUID, req *dto.AvailabilityRequest) (*dto.AvailabilityResponse, error)
	Book(ctx context.Context, actorID uuid.UUID, actorRoleID int, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, actorID uuid.UUID, actorRoleID int, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	Complete(ctx context.Context, actorID uuid.UUID, actorRoleID int, appointmentID uuid.UUID, notes string) (*dto.AppointmentResponse, error)
	GetMyAppointments(ctx context.Context, actorID uuid.UUID, actorRoleID int) (*dto.AppointmentListResponse, error)
	ListAppointments(ctx context.Context, req *dto.AppointmentFilterRequest) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	resolver           *scheduling.Resolver
	appointmentRepo    repository.AppointmentRepository
	doctorProfileRepo  repository.DoctorProfileRepository
	patientProfileRepo repository.PatientProfileRepository
	auditService       service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	resolver *scheduling.Resolver,
	appointmentRepo repository.AppointmentRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	patientProfileRepo repository.PatientProfileRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:                 db,
		log:                log,
		resolver:           resolver,
		appointmentRepo:    appointmentRepo,
		doctorProfileRepo:  doctorProfileRepo,
		patientProfileRepo: patientProfileRepo,
		auditService:       auditService,
	}
}

func (u *appointmentUsecase) GetAvailability(ctx context.Context, doctorID uuid.UUID, req *dto.AvailabilityRequest) (*dto.AvailabilityResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorProfileRepo.FindByUserID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if doctor == nil || !doctor.User.IsActive {
		return nil, ErrDoctorNotFound
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, u.resolver.Location())
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	duration := time.Duration(req.DurationMinutes) * time.Minute
	now := time.Now()

	var slots []scheduling.Slot
	for day := 0; day < req.DaysToScan; day++ {
		window, ok := u.resolver.Resolve(doctor.WorkingSchedule, date.AddDate(0, 0, day))
		if !ok {
			continue
		}

		busy, err := u.busySpans(db, doctorID, window.Start.Add(-scheduling.OverlapLookback), window.End)
		if err != nil {
			return nil, err
		}

		slots = append(slots, scheduling.AvailableSlots(window, busy, duration, now)...)
	}

	return &dto.AvailabilityResponse{
		DoctorID:        doctorID,
		DurationMinutes: req.DurationMinutes,
		Slots:           converter.SlotsToResponses(slots),
		Total:           len(slots),
	}, nil
}

func (u *appointmentUsecase) Book(ctx context.Context, actorID uuid.UUID, actorRoleID int, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	// Patients always book for themselves; staff must name the patient.
	patientID := actorID
	if actorRoleID != entity.RoleIDPatient {
		if req.PatientID == nil {
			return nil, ErrPatientRequired
		}
		patientID = *req.PatientID
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, ErrInvalidStartTime
	}
	duration := time.Duration(req.DurationMinutes) * time.Minute
	now := time.Now()

	var appointment *entity.Appointment

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		doctor, err := u.doctorProfileRepo.FindByUserID(tx, req.DoctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor profile: %+v", err)
			return err
		}
		if doctor == nil || !doctor.User.IsActive {
			return ErrDoctorNotFound
		}

		patient, err := u.patientProfileRepo.FindByUserID(tx, patientID)
		if err != nil {
			u.log.Warnf("Failed to find patient profile: %+v", err)
			return err
		}
		if patient == nil {
			return ErrPatientNotFound
		}

		// Serialize validate-then-insert per doctor so two concurrent
		// bookings cannot both pass validation.
		if err := u.appointmentRepo.LockDoctor(tx, req.DoctorID); err != nil {
			u.log.Warnf("Failed to acquire doctor lock: %+v", err)
			return err
		}

		window, ok := u.resolver.Resolve(doctor.WorkingSchedule, start.In(u.resolver.Location()))
		if !ok {
			return ErrSlotUnavailable
		}

		busy, err := u.busySpans(tx, req.DoctorID, start.Add(-scheduling.OverlapLookback), start.Add(duration))
		if err != nil {
			return err
		}

		if !scheduling.IsSlotAvailable(window, busy, start, duration, now) {
			return ErrSlotUnavailable
		}

		appointment = &entity.Appointment{
			DoctorID:        req.DoctorID,
			PatientID:       patientID,
			StartTime:       start,
			DurationMinutes: req.DurationMinutes,
			Status:          entity.AppointmentStatusScheduled,
			Reason:          req.Reason,
		}

		if err := u.appointmentRepo.Create(tx, appointment); err != nil {
			// The unique (doctor_id, start_time) index is the backstop
			// for bookings racing past the advisory lock boundary.
			if isDuplicateKeyError(err, "idx_appointments_doctor_start") {
				return ErrSlotTaken
			}
			u.log.Warnf("Failed to create appointment: %+v", err)
			return err
		}

		u.auditService.LogAction(ctx, tx, &actorID, entity.AuditActionAppointmentBook, "appointment", appointment.ID.String(), map[string]interface{}{
			"doctor_id":  req.DoctorID.String(),
			"patient_id": patientID.String(),
			"start_time": start.UTC().Format(time.RFC3339),
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return converter.AppointmentToResponse(appointment, now), nil
}

func (u *appointmentUsecase) Cancel(ctx context.Context, actorID uuid.UUID, actorRoleID int, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)
	now := time.Now()

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if err := u.checkOwnership(appointment, actorID, actorRoleID); err != nil {
		return nil, err
	}

	if !appointment.IsScheduled() {
		return nil, ErrNotCancellable
	}

	// Admins may cancel inside the notice window, nobody else may
	if actorRoleID != entity.RoleIDAdmin && !appointment.CanCancel(now) {
		return nil, ErrCancellationWindow
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		rows, err := u.appointmentRepo.UpdateStatus(tx, appointmentID, entity.AppointmentStatusScheduled, entity.AppointmentStatusCancelled)
		if err != nil {
			u.log.Warnf("Failed to cancel appointment: %+v", err)
			return err
		}
		if rows == 0 {
			// Lost the race against another transition
			return ErrNotCancellable
		}

		u.auditService.LogTransition(ctx, tx, &actorID, entity.AuditActionAppointmentCancel, "appointment", appointmentID.String(),
			string(entity.AppointmentStatusScheduled), string(entity.AppointmentStatusCancelled))

		return nil
	})
	if err != nil {
		return nil, err
	}

	appointment.Status = entity.AppointmentStatusCancelled
	return converter.AppointmentToResponse(appointment, now), nil
}

func (u *appointmentUsecase) Complete(ctx context.Context, actorID uuid.UUID, actorRoleID int, appointmentID uuid.UUID, notes string) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)
	now := time.Now()

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	// Only the attending doctor or an admin marks visits complete
	if actorRoleID == entity.RoleIDDoctor && appointment.DoctorID != actorID {
		return nil, ErrAppointmentNotOwned
	}

	if !appointment.IsScheduled() {
		return nil, ErrNotCompletable
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		rows, err := u.appointmentRepo.UpdateStatus(tx, appointmentID, entity.AppointmentStatusScheduled, entity.AppointmentStatusCompleted)
		if err != nil {
			u.log.Warnf("Failed to complete appointment: %+v", err)
			return err
		}
		if rows == 0 {
			return ErrNotCompletable
		}

		if notes != "" {
			appointment.Notes = notes
			if err := tx.Model(&entity.Appointment{}).Where("id = ?", appointmentID).Update("notes", notes).Error; err != nil {
				u.log.Warnf("Failed to save appointment notes: %+v", err)
				return err
			}
		}

		u.auditService.LogTransition(ctx, tx, &actorID, entity.AuditActionAppointmentDone, "appointment", appointmentID.String(),
			string(entity.AppointmentStatusScheduled), string(entity.AppointmentStatusCompleted))

		return nil
	})
	if err != nil {
		return nil, err
	}

	appointment.Status = entity.AppointmentStatusCompleted
	return converter.AppointmentToResponse(appointment, now), nil
}

func (u *appointmentUsecase) GetMyAppointments(ctx context.Context, actorID uuid.UUID, actorRoleID int) (*dto.AppointmentListResponse, error) {
	db := u.db.WithContext(ctx)

	var (
		appointments []entity.Appointment
		err          error
	)
	if actorRoleID == entity.RoleIDDoctor {
		appointments, err = u.appointmentRepo.FindByDoctorID(db, actorID)
	} else {
		appointments, err = u.appointmentRepo.FindByPatientID(db, actorID)
	}
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	responses := converter.AppointmentsToResponses(appointments, time.Now())
	return &dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}, nil
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context, req *dto.AppointmentFilterRequest) (*dto.AppointmentListResponse, error) {
	filter := &entity.AppointmentFilter{
		StartAt:    req.StartAt,
		EndAt:      req.EndAt,
		Status:     entity.AppointmentStatus(req.Status),
		DoctorName: req.DoctorName,
	}

	appointments, err := u.appointmentRepo.FindAllWithFilter(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments with filter: %+v", err)
		return nil, err
	}

	responses := converter.AppointmentsToResponses(appointments, time.Now())
	return &dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}, nil
}

// busySpans loads the scheduled intervals overlapping the probe range.
// The lookback widens the fetch window so long appointments starting
// earlier still count against the range.
func (u *appointmentUsecase) busySpans(db *gorm.DB, doctorID uuid.UUID, from, to time.Time) ([]scheduling.Span, error) {
	booked, err := u.appointmentRepo.FindScheduledByDoctorBetween(db, doctorID, from, to)
	if err != nil {
		u.log.Warnf("Failed to load booked appointments: %+v", err)
		return nil, err
	}

	spans := make([]scheduling.Span, len(booked))
	for i, a := range booked {
		spans[i] = scheduling.Span{Start: a.StartTime, End: a.EndTime()}
	}
	return spans, nil
}

func (u *appointmentUsecase) checkOwnership(appointment *entity.Appointment, actorID uuid.UUID, actorRoleID int) error {
	switch actorRoleID {
	case entity.RoleIDPatient:
		if appointment.PatientID != actorID {
			return ErrAppointmentNotOwned
		}
	case entity.RoleIDDoctor:
		if appointment.DoctorID != actorID {
			return ErrAppointmentNotOwned
		}
	}
	return nil
}
