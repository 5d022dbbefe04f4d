package hours

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DayHours describes one day's opening interval. When NextDay is set the
// closing time falls on the following calendar day.
type DayHours struct {
	Open    string `json:"open"`
	Close   string `json:"close"`
	NextDay bool   `json:"nextDay"`
}

// WeeklySchedule holds the opening hours for each weekday. A nil day
// means closed all day.
type WeeklySchedule struct {
	Monday    *DayHours `json:"monday"`
	Tuesday   *DayHours `json:"tuesday"`
	Wednesday *DayHours `json:"wednesday"`
	Thursday  *DayHours `json:"thursday"`
	Friday    *DayHours `json:"friday"`
	Saturday  *DayHours `json:"saturday"`
	Sunday    *DayHours `json:"sunday"`
}

// Day returns the hours for the given weekday.
func (s *WeeklySchedule) Day(d time.Weekday) *DayHours {
	switch d {
	case time.Monday:
		return s.Monday
	case time.Tuesday:
		return s.Tuesday
	case time.Wednesday:
		return s.Wednesday
	case time.Thursday:
		return s.Thursday
	case time.Friday:
		return s.Friday
	case time.Saturday:
		return s.Saturday
	case time.Sunday:
		return s.Sunday
	}
	return nil
}

// SetDay replaces the hours for the given weekday.
func (s *WeeklySchedule) SetDay(d time.Weekday, h *DayHours) {
	switch d {
	case time.Monday:
		s.Monday = h
	case time.Tuesday:
		s.Tuesday = h
	case time.Wednesday:
		s.Wednesday = h
	case time.Thursday:
		s.Thursday = h
	case time.Friday:
		s.Friday = h
	case time.Saturday:
		s.Saturday = h
	case time.Sunday:
		s.Sunday = h
	}
}

// OpenStatus is the result of evaluating a schedule at a point in time.
type OpenStatus struct {
	IsOpen bool      `json:"isOpen"`
	AsOf   time.Time `json:"asOf"`
}

// Evaluator computes open/closed status in a fixed business timezone,
// regardless of where the request came from.
type Evaluator struct {
	loc *time.Location
}

func NewEvaluator(loc *time.Location) *Evaluator {
	return &Evaluator{loc: loc}
}

// Evaluate reports whether the business is open at the given instant.
// Missing or malformed schedule entries evaluate to closed rather than
// returning an error.
func (e *Evaluator) Evaluate(schedule *WeeklySchedule, now time.Time) OpenStatus {
	local := now.In(e.loc)
	status := OpenStatus{AsOf: local}

	if schedule == nil {
		return status
	}
	today := schedule.Day(local.Weekday())
	if today == nil || today.Open == "" {
		return status
	}

	openMin, err := clockMinutes(today.Open)
	if err != nil {
		return status
	}
	closeMin, err := clockMinutes(today.Close)
	if err != nil {
		return status
	}

	cur := local.Hour()*60 + local.Minute()

	// A closing time numerically before the opening time can only mean
	// the interval runs past midnight, even when nextDay was not set.
	if today.NextDay || closeMin < openMin {
		status.IsOpen = cur >= openMin || cur < closeMin
	} else {
		status.IsOpen = openMin <= cur && cur < closeMin
	}
	return status
}

// clockMinutes parses an "HH:MM" clock string into minutes since midnight.
func clockMinutes(clock string) (int, error) {
	hh, mm, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, fmt.Errorf("invalid clock %q", clock)
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("invalid clock %q: %w", clock, err)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("invalid clock %q: %w", clock, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock %q out of range", clock)
	}
	return h*60 + m, nil
}
