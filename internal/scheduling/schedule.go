package scheduling

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrUnknownWeekday  = errors.New("unknown weekday name")
	ErrInvalidClock    = errors.New("invalid time of day, use HH:MM")
	ErrInvalidWindow   = errors.New("working hours start must be before end")
	ErrInvalidBreak    = errors.New("break must lie within working hours")
	ErrIncompleteBreak = errors.New("break requires both break_start and break_end")
)

// DayHours is the stored working-hours template for a single weekday.
// Times are wall-clock "HH:MM" strings in the clinic's configured zone.
// An empty BreakStart/BreakEnd pair means the day has no break.
type DayHours struct {
	Start      string `json:"start"`
	End        string `json:"end"`
	BreakStart string `json:"break_start,omitempty"`
	BreakEnd   string `json:"break_end,omitempty"`
}

// IsZero reports whether the entry carries no usable working hours.
func (h DayHours) IsZero() bool {
	return h.Start == "" && h.End == ""
}

// WeeklySchedule maps lowercase weekday names ("monday" ... "sunday")
// to working hours. Stored as JSONB on the doctor profile.
type WeeklySchedule map[string]DayHours

var weekdayNames = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// Value implements driver.Valuer for GORM JSONB support.
func (ws WeeklySchedule) Value() (driver.Value, error) {
	if len(ws) == 0 {
		return nil, nil
	}
	return json.Marshal(ws)
}

// Scan implements sql.Scanner for GORM JSONB support.
func (ws *WeeklySchedule) Scan(value interface{}) error {
	if value == nil {
		*ws = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal weekly schedule value: %v", value)
	}

	result := map[string]DayHours{}
	err := json.Unmarshal(bytes, &result)
	*ws = WeeklySchedule(result)
	return err
}

// Validate rejects malformed schedules at write time: unknown weekday
// keys, unparseable clock values, inverted windows, and breaks outside
// working hours. Rows stored before validation existed are still read
// leniently by the Resolver.
func (ws WeeklySchedule) Validate() error {
	for day, hours := range ws {
		if !weekdayNames[strings.ToLower(day)] {
			return fmt.Errorf("%w: %q", ErrUnknownWeekday, day)
		}
		if hours.IsZero() {
			continue
		}

		start, err := parseClock(hours.Start)
		if err != nil {
			return fmt.Errorf("%s start: %w", day, err)
		}
		end, err := parseClock(hours.End)
		if err != nil {
			return fmt.Errorf("%s end: %w", day, err)
		}
		if start >= end {
			return fmt.Errorf("%s: %w", day, ErrInvalidWindow)
		}

		hasBreakStart := hours.BreakStart != ""
		hasBreakEnd := hours.BreakEnd != ""
		if hasBreakStart != hasBreakEnd {
			return fmt.Errorf("%s: %w", day, ErrIncompleteBreak)
		}
		if hasBreakStart {
			breakStart, err := parseClock(hours.BreakStart)
			if err != nil {
				return fmt.Errorf("%s break_start: %w", day, err)
			}
			breakEnd, err := parseClock(hours.BreakEnd)
			if err != nil {
				return fmt.Errorf("%s break_end: %w", day, err)
			}
			if breakStart >= breakEnd || breakStart < start || breakEnd > end {
				return fmt.Errorf("%s: %w", day, ErrInvalidBreak)
			}
		}
	}
	return nil
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, ErrInvalidClock
	}
	return t.Hour()*60 + t.Minute(), nil
}

// DayWindow is a weekday template resolved onto a concrete calendar
// date: absolute working hours [Start, End) and an optional break
// [BreakStart, BreakEnd). A zero BreakStart means no break.
type DayWindow struct {
	Start      time.Time
	End        time.Time
	BreakStart time.Time
	BreakEnd   time.Time
}

// HasBreak reports whether the day carries a break window.
func (w DayWindow) HasBreak() bool {
	return !w.BreakStart.IsZero()
}

// Resolver maps (weekly schedule, calendar date) to the concrete
// working window for that date's weekday. The fallback hours are
// injected from configuration rather than hidden as a package constant
// so deployments can override them and tests can pin them.
type Resolver struct {
	fallback DayHours
	location *time.Location
}

func NewResolver(fallback DayHours, location *time.Location) *Resolver {
	if location == nil {
		location = time.UTC
	}
	return &Resolver{fallback: fallback, location: location}
}

// Location returns the clinic zone all wall-clock times resolve in.
func (r *Resolver) Location() *time.Location {
	return r.location
}

// Resolve returns the working window for the date's weekday. A missing
// or malformed entry falls back to the configured default hours; if
// the default itself is absent the day is not bookable and ok is false.
func (r *Resolver) Resolve(ws WeeklySchedule, date time.Time) (DayWindow, bool) {
	date = date.In(r.location)
	dayKey := strings.ToLower(date.Weekday().String())

	entry, found := ws[dayKey]
	if !found || entry.IsZero() {
		entry = r.fallback
	}
	if entry.IsZero() {
		return DayWindow{}, false
	}

	window, err := r.window(entry, date)
	if err != nil {
		// Lenient read: a malformed stored entry degrades to the default.
		window, err = r.window(r.fallback, date)
		if err != nil {
			return DayWindow{}, false
		}
	}
	return window, true
}

func (r *Resolver) window(hours DayHours, date time.Time) (DayWindow, error) {
	if hours.IsZero() {
		return DayWindow{}, ErrInvalidClock
	}

	start, err := parseClock(hours.Start)
	if err != nil {
		return DayWindow{}, err
	}
	end, err := parseClock(hours.End)
	if err != nil {
		return DayWindow{}, err
	}
	if start >= end {
		return DayWindow{}, ErrInvalidWindow
	}

	window := DayWindow{
		Start: r.at(date, start),
		End:   r.at(date, end),
	}

	if hours.BreakStart != "" && hours.BreakEnd != "" {
		breakStart, err := parseClock(hours.BreakStart)
		if err != nil {
			return DayWindow{}, err
		}
		breakEnd, err := parseClock(hours.BreakEnd)
		if err != nil {
			return DayWindow{}, err
		}
		window.BreakStart = r.at(date, breakStart)
		window.BreakEnd = r.at(date, breakEnd)
	}

	return window, nil
}

func (r *Resolver) at(date time.Time, minutes int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, r.location)
}
