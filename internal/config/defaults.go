package config

import (
	"github.com/rustlersclub/club-api/internal/hours"
	"github.com/rustlersclub/club-api/internal/reviews"
)

// defaultHours is the posted schedule, used whenever the live Places
// lookup is unavailable. Update when the hours change.
func defaultHours() *hours.WeeklySchedule {
	return &hours.WeeklySchedule{
		Monday:    &hours.DayHours{Open: "10:00", Close: "02:00", NextDay: true},
		Tuesday:   &hours.DayHours{Open: "10:00", Close: "02:00", NextDay: true},
		Wednesday: &hours.DayHours{Open: "10:00", Close: "02:00", NextDay: true},
		Thursday:  &hours.DayHours{Open: "10:00", Close: "02:00", NextDay: true},
		Friday:    &hours.DayHours{Open: "10:00", Close: "03:00", NextDay: true},
		Saturday:  &hours.DayHours{Open: "10:00", Close: "03:00", NextDay: true},
		Sunday:    &hours.DayHours{Open: "12:00", Close: "02:00", NextDay: true},
	}
}

// Fallback review data, shown when the Places lookup is unavailable.
// Update these values when checking the live reviews.
const (
	fallbackRating       = 4.8
	fallbackTotalReviews = 127
)

func fallbackReview() reviews.Highlight {
	return reviews.Highlight{
		Text:   "Best poker room in San Antonio! No time charges and the biggest jackpots. Staff is super friendly and professional.",
		Author: "Michael R.",
		Rating: 5,
		Time:   "2 weeks ago",
	}
}
