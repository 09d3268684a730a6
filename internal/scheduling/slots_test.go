package scheduling

import (
	"testing"
	"time"
)

var defaultHours = DayHours{Start: "09:00", End: "17:00", BreakStart: "12:00", BreakEnd: "13:00"}

func testResolver() *Resolver {
	return NewResolver(defaultHours, time.UTC)
}

// Monday in the future relative to the fixed "now" used below.
var testDay = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func at(t *testing.T, hour, minute int) time.Time {
	t.Helper()
	return time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC)
}

func resolveTestDay(t *testing.T) DayWindow {
	t.Helper()
	window, ok := testResolver().Resolve(nil, testDay)
	if !ok {
		t.Fatalf("expected default window for %v", testDay)
	}
	return window
}

func TestAvailableSlotsDefaultDayNoAppointments(t *testing.T) {
	window := resolveTestDay(t)
	now := at(t, 8, 0)

	slots := AvailableSlots(window, nil, 30*time.Minute, now)

	// 09:00-12:00 gives 6 half-hour slots, 13:00-17:00 gives 8.
	if len(slots) != 14 {
		t.Fatalf("expected 14 slots, got %d: %v", len(slots), slots)
	}
	if !slots[0].Start.Equal(at(t, 9, 0)) {
		t.Errorf("first slot should start 09:00, got %v", slots[0].Start)
	}
	if !slots[5].End.Equal(at(t, 12, 0)) {
		t.Errorf("last morning slot should end 12:00, got %v", slots[5].End)
	}
	if !slots[6].Start.Equal(at(t, 13, 0)) {
		t.Errorf("first afternoon slot should start 13:00, got %v", slots[6].Start)
	}
	if !slots[13].Start.Equal(at(t, 16, 30)) {
		t.Errorf("last slot should start 16:30, got %v", slots[13].Start)
	}
	for i := 1; i < len(slots); i++ {
		if !slots[i-1].Start.Before(slots[i].Start) {
			t.Fatalf("slots not in ascending order at %d: %v", i, slots)
		}
	}
}

func TestAvailableSlotsSkipsBookedSpan(t *testing.T) {
	window := resolveTestDay(t)
	now := at(t, 8, 0)
	busy := []Span{{Start: at(t, 10, 0), End: at(t, 10, 30)}}

	slots := AvailableSlots(window, busy, 30*time.Minute, now)

	if len(slots) != 13 {
		t.Fatalf("expected 13 slots, got %d", len(slots))
	}
	for _, s := range slots {
		if s.Start.Equal(at(t, 10, 0)) {
			t.Fatalf("booked slot 10:00 should be excluded")
		}
	}
}

func TestAvailableSlotsExcludesPast(t *testing.T) {
	window := resolveTestDay(t)
	now := at(t, 11, 0)

	slots := AvailableSlots(window, nil, 30*time.Minute, now)

	// 11:00 itself is excluded (start must be strictly in the future),
	// leaving 11:30 plus the 8 afternoon slots.
	if len(slots) != 9 {
		t.Fatalf("expected 9 slots, got %d: %v", len(slots), slots)
	}
	if !slots[0].Start.Equal(at(t, 11, 30)) {
		t.Errorf("first slot should be 11:30, got %v", slots[0].Start)
	}
}

func TestAvailableSlotsTrailingPartialWindowUnbooked(t *testing.T) {
	resolver := NewResolver(DayHours{Start: "09:00", End: "10:45"}, time.UTC)
	window, ok := resolver.Resolve(nil, testDay)
	if !ok {
		t.Fatal("expected window")
	}

	slots := AvailableSlots(window, nil, 30*time.Minute, at(t, 8, 0))

	// 09:00, 09:30, 10:00 fit; 10:30-11:00 would overflow 10:45.
	if len(slots) != 3 {
		t.Fatalf("expected 3 slots, got %d: %v", len(slots), slots)
	}
}

func TestAvailableSlotsNonPositiveDuration(t *testing.T) {
	window := resolveTestDay(t)
	if got := AvailableSlots(window, nil, 0, at(t, 8, 0)); got != nil {
		t.Fatalf("expected no slots for zero duration, got %v", got)
	}
	if got := AvailableSlots(window, nil, -time.Hour, at(t, 8, 0)); got != nil {
		t.Fatalf("expected no slots for negative duration, got %v", got)
	}
}

func TestIsSlotAvailableMatchesCalculator(t *testing.T) {
	window := resolveTestDay(t)
	now := at(t, 8, 0)
	busy := []Span{
		{Start: at(t, 9, 30), End: at(t, 10, 15)},
		{Start: at(t, 14, 0), End: at(t, 15, 0)},
	}

	for _, d := range []time.Duration{15 * time.Minute, 30 * time.Minute, 45 * time.Minute} {
		for _, slot := range AvailableSlots(window, busy, d, now) {
			if !IsSlotAvailable(window, busy, slot.Start, d, now) {
				t.Errorf("calculator offered %v (+%v) but validator rejected it", slot.Start, d)
			}
		}
	}
}

func TestIsSlotAvailableRejectsOverlap(t *testing.T) {
	window := resolveTestDay(t)
	now := at(t, 8, 0)
	busy := []Span{{Start: at(t, 10, 0), End: at(t, 10, 30)}}

	if IsSlotAvailable(window, busy, at(t, 10, 0), 30*time.Minute, now) {
		t.Error("10:00-10:30 overlaps an existing appointment")
	}
	if IsSlotAvailable(window, busy, at(t, 9, 45), 30*time.Minute, now) {
		t.Error("9:45-10:15 partially overlaps an existing appointment")
	}
	if !IsSlotAvailable(window, busy, at(t, 9, 30), 30*time.Minute, now) {
		t.Error("9:30-10:00 ends exactly at the appointment start and should be free")
	}
	if !IsSlotAvailable(window, busy, at(t, 10, 30), 30*time.Minute, now) {
		t.Error("10:30 starts exactly at the appointment end and should be free")
	}
}

func TestIsSlotAvailableBreakBoundaries(t *testing.T) {
	window := resolveTestDay(t)
	now := at(t, 8, 0)

	if !IsSlotAvailable(window, nil, at(t, 11, 30), 30*time.Minute, now) {
		t.Error("slot ending exactly at break start should be free")
	}
	if !IsSlotAvailable(window, nil, at(t, 13, 0), 30*time.Minute, now) {
		t.Error("slot starting exactly at break end should be free")
	}
	if IsSlotAvailable(window, nil, at(t, 11, 45), 30*time.Minute, now) {
		t.Error("slot reaching into the break should be rejected")
	}
	if IsSlotAvailable(window, nil, at(t, 12, 30), 30*time.Minute, now) {
		t.Error("slot inside the break should be rejected")
	}
}

func TestIsSlotAvailableRejectsPast(t *testing.T) {
	window := resolveTestDay(t)
	now := at(t, 10, 1)

	if IsSlotAvailable(window, nil, now.Add(-time.Minute), 30*time.Minute, now) {
		t.Error("slot one minute in the past must be rejected")
	}
	if IsSlotAvailable(window, nil, now, 30*time.Minute, now) {
		t.Error("slot starting exactly now must be rejected")
	}
}

func TestIsSlotAvailableWorkingHourEdges(t *testing.T) {
	window := resolveTestDay(t)
	now := at(t, 8, 0)

	if IsSlotAvailable(window, nil, at(t, 8, 30), 30*time.Minute, now) {
		t.Error("slot before opening should be rejected")
	}
	if IsSlotAvailable(window, nil, at(t, 17, 0), 30*time.Minute, now) {
		t.Error("slot starting at closing should be rejected")
	}
	if IsSlotAvailable(window, nil, at(t, 16, 45), 30*time.Minute, now) {
		t.Error("slot running past closing should be rejected")
	}
	if !IsSlotAvailable(window, nil, at(t, 16, 30), 30*time.Minute, now) {
		t.Error("last slot ending exactly at closing should be free")
	}
}
