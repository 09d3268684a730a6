package scheduling

import (
	"testing"
	"time"
)

func TestResolveMissingEntryUsesDefault(t *testing.T) {
	window, ok := testResolver().Resolve(WeeklySchedule{}, testDay)
	if !ok {
		t.Fatal("expected default window")
	}
	if !window.Start.Equal(at(t, 9, 0)) || !window.End.Equal(at(t, 17, 0)) {
		t.Errorf("unexpected window %v - %v", window.Start, window.End)
	}
	if !window.HasBreak() || !window.BreakStart.Equal(at(t, 12, 0)) || !window.BreakEnd.Equal(at(t, 13, 0)) {
		t.Errorf("unexpected break %v - %v", window.BreakStart, window.BreakEnd)
	}
}

func TestResolveExplicitEntry(t *testing.T) {
	ws := WeeklySchedule{
		"monday": {Start: "08:00", End: "14:00"},
	}

	window, ok := testResolver().Resolve(ws, testDay)
	if !ok {
		t.Fatal("expected window")
	}
	if !window.Start.Equal(at(t, 8, 0)) || !window.End.Equal(at(t, 14, 0)) {
		t.Errorf("unexpected window %v - %v", window.Start, window.End)
	}
	if window.HasBreak() {
		t.Error("entry without break fields should resolve to no break")
	}
}

func TestResolveMalformedEntryFallsBack(t *testing.T) {
	for _, ws := range []WeeklySchedule{
		{"monday": {Start: "9am", End: "17:00"}},
		{"monday": {Start: "17:00", End: "09:00"}},
		{"monday": {Start: "09:00", End: "17:00", BreakStart: "noon", BreakEnd: "13:00"}},
	} {
		window, ok := testResolver().Resolve(ws, testDay)
		if !ok {
			t.Fatalf("expected fallback window for %v", ws)
		}
		if !window.Start.Equal(at(t, 9, 0)) || !window.End.Equal(at(t, 17, 0)) {
			t.Errorf("malformed entry %v should resolve to default, got %v - %v", ws, window.Start, window.End)
		}
	}
}

func TestResolveNoEntryNoDefault(t *testing.T) {
	resolver := NewResolver(DayHours{}, time.UTC)
	if _, ok := resolver.Resolve(nil, testDay); ok {
		t.Error("no entry and no default should yield no window")
	}
}

func TestResolveUsesWeekdayOfDate(t *testing.T) {
	ws := WeeklySchedule{
		"monday":  {Start: "08:00", End: "12:00"},
		"tuesday": {Start: "10:00", End: "16:00"},
	}
	tuesday := testDay.AddDate(0, 0, 1)

	window, ok := testResolver().Resolve(ws, tuesday)
	if !ok {
		t.Fatal("expected window")
	}
	if window.Start.Hour() != 10 || window.End.Hour() != 16 {
		t.Errorf("expected tuesday hours, got %v - %v", window.Start, window.End)
	}
}

func TestValidateAcceptsWellFormedSchedule(t *testing.T) {
	ws := WeeklySchedule{
		"monday":   {Start: "09:00", End: "17:00", BreakStart: "12:00", BreakEnd: "13:00"},
		"saturday": {Start: "09:00", End: "12:00"},
		"sunday":   {},
	}
	if err := ws.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestValidateRejectsMalformedSchedules(t *testing.T) {
	cases := map[string]WeeklySchedule{
		"unknown weekday": {"funday": {Start: "09:00", End: "17:00"}},
		"bad clock":       {"monday": {Start: "25:00", End: "17:00"}},
		"inverted window": {"monday": {Start: "17:00", End: "09:00"}},
		"half break":      {"monday": {Start: "09:00", End: "17:00", BreakStart: "12:00"}},
		"break outside":   {"monday": {Start: "09:00", End: "17:00", BreakStart: "17:30", BreakEnd: "18:00"}},
		"inverted break":  {"monday": {Start: "09:00", End: "17:00", BreakStart: "13:00", BreakEnd: "12:00"}},
	}
	for name, ws := range cases {
		if err := ws.Validate(); err == nil {
			t.Errorf("%s: expected validation error for %v", name, ws)
		}
	}
}

func TestWeeklyScheduleScanRoundTrip(t *testing.T) {
	ws := WeeklySchedule{"friday": {Start: "08:30", End: "15:00", BreakStart: "11:30", BreakEnd: "12:00"}}

	value, err := ws.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var decoded WeeklySchedule
	if err := decoded.Scan(value); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if decoded["friday"] != ws["friday"] {
		t.Errorf("round trip mismatch: %v != %v", decoded["friday"], ws["friday"])
	}
}
