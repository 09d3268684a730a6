package scheduling

import "time"

// OverlapLookback bounds how far back the booking flow must fetch
// existing appointments when validating a single candidate slot.
// Appointments cannot cross midnight in this model, so a full day is
// conservative for any allowed duration.
const OverlapLookback = 24 * time.Hour

// Slot is a bookable window of fixed duration. Ephemeral, never stored.
type Slot struct {
	Start time.Time
	End   time.Time
}

// Span is the occupied interval of an existing scheduled appointment.
type Span struct {
	Start time.Time
	End   time.Time
}

// overlaps is the half-open interval intersection test shared by the
// availability calculator and the slot validator. Touching intervals
// do not overlap: a slot ending exactly at a break or appointment
// start is free, as is one starting exactly at its end.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// AvailableSlots walks candidate slots of length d across the working
// window, stepping by d, and keeps those that clear the break window,
// every busy span, and the current moment. Results are ascending by
// start time and recomputed fresh on every call. A duration that does
// not evenly divide the window leaves the trailing remainder unbooked.
func AvailableSlots(window DayWindow, busy []Span, d time.Duration, now time.Time) []Slot {
	if d <= 0 {
		return nil
	}

	var slots []Slot
	for start := window.Start; !start.Add(d).After(window.End); start = start.Add(d) {
		end := start.Add(d)

		if window.HasBreak() && overlaps(start, end, window.BreakStart, window.BreakEnd) {
			continue
		}
		if !start.After(now) {
			continue
		}
		if anyOverlap(start, end, busy) {
			continue
		}

		slots = append(slots, Slot{Start: start, End: end})
	}
	return slots
}

// IsSlotAvailable decides a single booking candidate against the same
// constraints the calculator enforces: strictly in the future, inside
// working hours, clear of the break, and clear of every busy span.
// Callers must supply every scheduled appointment whose interval could
// reach the candidate (see OverlapLookback).
func IsSlotAvailable(window DayWindow, busy []Span, start time.Time, d time.Duration, now time.Time) bool {
	if d <= 0 {
		return false
	}
	if !start.After(now) {
		return false
	}

	end := start.Add(d)
	if start.Before(window.Start) || !start.Before(window.End) || end.After(window.End) {
		return false
	}
	if window.HasBreak() && overlaps(start, end, window.BreakStart, window.BreakEnd) {
		return false
	}
	return !anyOverlap(start, end, busy)
}

func anyOverlap(start, end time.Time, busy []Span) bool {
	for _, span := range busy {
		if overlaps(start, end, span.Start, span.End) {
			return true
		}
	}
	return false
}
