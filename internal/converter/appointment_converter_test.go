package converter

import (
	"testing"
	"time"

	"go-hospital-management/internal/domain/entity"
	"go-hospital-management/internal/scheduling"

	"github.com/google/uuid"
)

func TestAppointmentToResponse(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	start := now.Add(48 * time.Hour)

	a := &entity.Appointment{
		ID:              uuid.New(),
		DoctorID:        uuid.New(),
		PatientID:       uuid.New(),
		StartTime:       start,
		DurationMinutes: 30,
		Status:          entity.AppointmentStatusScheduled,
	}

	resp := AppointmentToResponse(a, now)
	if resp.Status != "scheduled" {
		t.Errorf("Status = %q, want %q", resp.Status, "scheduled")
	}
	if resp.StartTime != start.Format(time.RFC3339) {
		t.Errorf("StartTime = %q, want %q", resp.StartTime, start.Format(time.RFC3339))
	}
	if resp.EndTime != start.Add(30*time.Minute).Format(time.RFC3339) {
		t.Errorf("EndTime = %q, want %q", resp.EndTime, start.Add(30*time.Minute).Format(time.RFC3339))
	}
	if !resp.CanCancel {
		t.Error("appointment 48h away should be cancellable")
	}

	a.Status = entity.AppointmentStatusCancelled
	resp = AppointmentToResponse(a, now)
	if resp.Status != "cancelled" {
		t.Errorf("Status = %q, want %q", resp.Status, "cancelled")
	}
	if resp.CanCancel {
		t.Error("cancelled appointment should not be cancellable")
	}
}

func TestSlotsToResponses(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}

	start := time.Date(2026, 3, 2, 16, 0, 0, 0, loc)
	slots := []scheduling.Slot{{Start: start, End: start.Add(30 * time.Minute)}}

	responses := SlotsToResponses(slots)
	if len(responses) != 1 {
		t.Fatalf("got %d responses, want 1", len(responses))
	}
	// Wire format is always UTC
	if responses[0].StartTime != "2026-03-02T09:00:00Z" {
		t.Errorf("StartTime = %q, want %q", responses[0].StartTime, "2026-03-02T09:00:00Z")
	}
	if responses[0].EndTime != "2026-03-02T09:30:00Z" {
		t.Errorf("EndTime = %q, want %q", responses[0].EndTime, "2026-03-02T09:30:00Z")
	}
}
