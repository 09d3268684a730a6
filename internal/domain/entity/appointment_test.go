package entity

import (
	"testing"
	"time"
)

func TestAppointmentEndTime(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	a := Appointment{StartTime: start, DurationMinutes: 45}

	want := start.Add(45 * time.Minute)
	if got := a.EndTime(); !got.Equal(want) {
		t.Errorf("EndTime() = %v, want %v", got, want)
	}
}

func TestAppointmentCanCancel(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		start  time.Time
		status AppointmentStatus
		want   bool
	}{
		{"more than 24h ahead", now.Add(25 * time.Hour), AppointmentStatusScheduled, true},
		{"exactly 24h ahead", now.Add(24 * time.Hour), AppointmentStatusScheduled, false},
		{"less than 24h ahead", now.Add(23 * time.Hour), AppointmentStatusScheduled, false},
		{"in the past", now.Add(-time.Hour), AppointmentStatusScheduled, false},
		{"already cancelled", now.Add(48 * time.Hour), AppointmentStatusCancelled, false},
		{"already completed", now.Add(48 * time.Hour), AppointmentStatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Appointment{StartTime: tt.start, DurationMinutes: 30, Status: tt.status}
			if got := a.CanCancel(now); got != tt.want {
				t.Errorf("CanCancel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppointmentIsUpcoming(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	future := Appointment{StartTime: now.Add(time.Hour), Status: AppointmentStatusScheduled}
	if !future.IsUpcoming(now) {
		t.Error("scheduled future appointment should be upcoming")
	}

	past := Appointment{StartTime: now.Add(-time.Hour), Status: AppointmentStatusScheduled}
	if past.IsUpcoming(now) {
		t.Error("past appointment should not be upcoming")
	}

	cancelled := Appointment{StartTime: now.Add(time.Hour), Status: AppointmentStatusCancelled}
	if cancelled.IsUpcoming(now) {
		t.Error("cancelled appointment should not be upcoming")
	}
}
