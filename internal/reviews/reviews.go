package reviews

import (
	"fmt"
	"time"

	"github.com/rustlersclub/club-api/internal/places"
)

const (
	// minPositiveRating is the lowest rating worth surfacing on the site.
	minPositiveRating = 4
	// maxTextLength caps the review text shown on the site.
	maxTextLength = 200
)

// Highlight is the single review surfaced on the website.
type Highlight struct {
	Text   string `json:"text"`
	Author string `json:"author"`
	Rating int    `json:"rating"`
	Time   string `json:"time"`
}

// PickRecentPositive returns the newest review rated minPositiveRating or
// higher, or nil when none qualifies.
func PickRecentPositive(list []places.Review) *places.Review {
	var best *places.Review
	for i := range list {
		r := &list[i]
		if r.Rating < minPositiveRating {
			continue
		}
		if best == nil || r.Time > best.Time {
			best = r
		}
	}
	return best
}

// NewHighlight converts a raw review into its website form.
func NewHighlight(r places.Review, now time.Time) Highlight {
	return Highlight{
		Text:   TruncateText(r.Text, maxTextLength),
		Author: r.Author,
		Rating: r.Rating,
		Time:   FormatTimeAgo(r.Time, now),
	}
}

// TruncateText cuts s down to max characters, appending an ellipsis when
// anything was dropped.
func TruncateText(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// FormatTimeAgo renders a unix timestamp as a rough human age like
// "2 weeks ago".
func FormatTimeAgo(ts int64, now time.Time) string {
	seconds := now.Unix() - ts
	minutes := seconds / 60
	hours := minutes / 60
	days := hours / 24
	weeks := days / 7
	months := days / 30

	switch {
	case months > 0:
		return plural(months, "month")
	case weeks > 0:
		return plural(weeks, "week")
	case days > 0:
		return plural(days, "day")
	case hours > 0:
		return plural(hours, "hour")
	case minutes > 0:
		return plural(minutes, "minute")
	}
	return "Just now"
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
