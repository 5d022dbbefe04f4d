package hours

import (
	"testing"
	"time"
)

// 2026-08-28 is a Friday.
func friday(hour, min int, loc *time.Location) time.Time {
	return time.Date(2026, time.August, 28, hour, min, 0, 0, loc)
}

func lateNightSchedule() *WeeklySchedule {
	return &WeeklySchedule{
		Friday:   &DayHours{Open: "10:00", Close: "03:00", NextDay: true},
		Saturday: &DayHours{Open: "10:00", Close: "03:00", NextDay: true},
	}
}

func TestEvaluate(t *testing.T) {
	eval := NewEvaluator(time.UTC)

	tests := []struct {
		name     string
		schedule *WeeklySchedule
		now      time.Time
		wantOpen bool
	}{
		{
			name:     "overnight hours after midnight before close",
			schedule: lateNightSchedule(),
			now:      friday(1, 30, time.UTC),
			wantOpen: true,
		},
		{
			name:     "overnight hours before opening",
			schedule: lateNightSchedule(),
			now:      friday(9, 0, time.UTC),
			wantOpen: false,
		},
		{
			name:     "overnight hours at opening minute",
			schedule: lateNightSchedule(),
			now:      friday(10, 0, time.UTC),
			wantOpen: true,
		},
		{
			name:     "overnight hours late evening",
			schedule: lateNightSchedule(),
			now:      friday(23, 45, time.UTC),
			wantOpen: true,
		},
		{
			name:     "overnight hours dead zone between close and open",
			schedule: lateNightSchedule(),
			now:      friday(5, 0, time.UTC),
			wantOpen: false,
		},
		{
			name: "same day hours before open",
			schedule: &WeeklySchedule{
				Friday: &DayHours{Open: "09:00", Close: "17:00"},
			},
			now:      friday(8, 59, time.UTC),
			wantOpen: false,
		},
		{
			name: "same day hours at open",
			schedule: &WeeklySchedule{
				Friday: &DayHours{Open: "09:00", Close: "17:00"},
			},
			now:      friday(9, 0, time.UTC),
			wantOpen: true,
		},
		{
			name: "same day hours last open minute",
			schedule: &WeeklySchedule{
				Friday: &DayHours{Open: "09:00", Close: "17:00"},
			},
			now:      friday(16, 59, time.UTC),
			wantOpen: true,
		},
		{
			name: "same day hours at close",
			schedule: &WeeklySchedule{
				Friday: &DayHours{Open: "09:00", Close: "17:00"},
			},
			now:      friday(17, 0, time.UTC),
			wantOpen: false,
		},
		{
			name: "close before open without nextDay treated as overnight",
			schedule: &WeeklySchedule{
				Friday: &DayHours{Open: "18:00", Close: "02:00"},
			},
			now:      friday(23, 0, time.UTC),
			wantOpen: true,
		},
		{
			name: "close before open without nextDay after midnight",
			schedule: &WeeklySchedule{
				Friday: &DayHours{Open: "18:00", Close: "02:00"},
			},
			now:      friday(1, 0, time.UTC),
			wantOpen: true,
		},
		{
			name: "close before open without nextDay afternoon",
			schedule: &WeeklySchedule{
				Friday: &DayHours{Open: "18:00", Close: "02:00"},
			},
			now:      friday(17, 0, time.UTC),
			wantOpen: false,
		},
		{
			name:     "day with no hours is closed",
			schedule: &WeeklySchedule{Monday: &DayHours{Open: "10:00", Close: "22:00"}},
			now:      friday(12, 0, time.UTC),
			wantOpen: false,
		},
		{
			name:     "empty open time is closed",
			schedule: &WeeklySchedule{Friday: &DayHours{Open: "", Close: "22:00"}},
			now:      friday(12, 0, time.UTC),
			wantOpen: false,
		},
		{
			name:     "malformed open clock is closed",
			schedule: &WeeklySchedule{Friday: &DayHours{Open: "ten", Close: "22:00"}},
			now:      friday(12, 0, time.UTC),
			wantOpen: false,
		},
		{
			name:     "out of range close clock is closed",
			schedule: &WeeklySchedule{Friday: &DayHours{Open: "10:00", Close: "25:99"}},
			now:      friday(12, 0, time.UTC),
			wantOpen: false,
		},
		{
			name:     "nil schedule is closed",
			schedule: nil,
			now:      friday(12, 0, time.UTC),
			wantOpen: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := eval.Evaluate(tt.schedule, tt.now)
			if status.IsOpen != tt.wantOpen {
				t.Errorf("Evaluate() isOpen = %v, want %v", status.IsOpen, tt.wantOpen)
			}
		})
	}
}

func TestEvaluateUsesBusinessTimezone(t *testing.T) {
	// Business runs six hours behind UTC. 15:30 UTC is 09:30 local,
	// before the 10:00 opening; an hour later the doors are open.
	eval := NewEvaluator(time.FixedZone("CST", -6*60*60))
	schedule := lateNightSchedule()

	if status := eval.Evaluate(schedule, friday(15, 30, time.UTC)); status.IsOpen {
		t.Error("expected closed at 09:30 business-local time")
	}
	if status := eval.Evaluate(schedule, friday(16, 30, time.UTC)); !status.IsOpen {
		t.Error("expected open at 10:30 business-local time")
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	eval := NewEvaluator(time.UTC)
	schedule := lateNightSchedule()
	now := friday(1, 30, time.UTC)

	first := eval.Evaluate(schedule, now)
	second := eval.Evaluate(schedule, now)
	if first != second {
		t.Errorf("Evaluate() is not idempotent: %+v vs %+v", first, second)
	}
}

func TestScheduleDay(t *testing.T) {
	schedule := lateNightSchedule()
	if schedule.Day(time.Friday) == nil {
		t.Error("expected Friday hours")
	}
	if schedule.Day(time.Monday) != nil {
		t.Error("expected no Monday hours")
	}

	schedule.SetDay(time.Monday, &DayHours{Open: "12:00", Close: "20:00"})
	if schedule.Day(time.Monday) == nil {
		t.Error("expected Monday hours after SetDay")
	}
}
