package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/rustlersclub/club-api/internal/hours"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/place"

// Review is one customer review from the place-details lookup.
type Review struct {
	Author string
	Text   string
	Rating int
	Time   int64
}

// OpeningHours is the live schedule for the configured place.
type OpeningHours struct {
	Schedule *hours.WeeklySchedule
	OpenNow  bool
}

// ReviewSummary is the aggregate review data for the configured place.
type ReviewSummary struct {
	Rating       float64
	TotalRatings int
	Reviews      []Review
}

// Client reads opening hours and review data for one place from the
// Google Places details API.
type Client struct {
	baseURL    string
	apiKey     string
	placeID    string
	httpClient *http.Client
	log        zerolog.Logger
}

func NewClient(apiKey, placeID string, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		placeID:    placeID,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        log,
	}
}

// SetBaseURL overrides the API base URL. Used by tests.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = u
}

// Configured reports whether a key and place ID are present. When false
// the handlers serve the manual fallback data instead.
func (c *Client) Configured() bool {
	return c.apiKey != "" && c.placeID != ""
}

// detailsResult mirrors the slice of the Places details payload we read.
type detailsResult struct {
	Status string `json:"status"`
	Result struct {
		Name         string  `json:"name"`
		Rating       float64 `json:"rating"`
		TotalRatings int     `json:"user_ratings_total"`
		Reviews      []struct {
			AuthorName string `json:"author_name"`
			Rating     int    `json:"rating"`
			Text       string `json:"text"`
			Time       int64  `json:"time"`
		} `json:"reviews"`
		OpeningHours *struct {
			OpenNow bool `json:"open_now"`
			Periods []struct {
				Open *struct {
					Day  int    `json:"day"`
					Time string `json:"time"`
				} `json:"open"`
				Close *struct {
					Day  int    `json:"day"`
					Time string `json:"time"`
				} `json:"close"`
			} `json:"periods"`
		} `json:"opening_hours"`
	} `json:"result"`
}

// OpeningHours fetches the place's weekly schedule and open-now flag.
func (c *Client) OpeningHours(ctx context.Context) (*OpeningHours, error) {
	details, err := c.fetchDetails(ctx, "opening_hours,name")
	if err != nil {
		return nil, err
	}
	oh := details.Result.OpeningHours
	if oh == nil {
		return nil, fmt.Errorf("place details for %s contain no opening hours", c.placeID)
	}

	schedule := &hours.WeeklySchedule{}
	for _, period := range oh.Periods {
		if period.Open == nil {
			continue
		}
		day := hours.DayHours{
			Open:  formatClock(period.Open.Time),
			Close: "00:00",
		}
		if period.Close != nil {
			day.Close = formatClock(period.Close.Time)
			day.NextDay = period.Close.Day != period.Open.Day
		}
		schedule.SetDay(googleWeekday(period.Open.Day), &day)
	}

	return &OpeningHours{Schedule: schedule, OpenNow: oh.OpenNow}, nil
}

// ReviewSummary fetches the place's rating and recent reviews.
func (c *Client) ReviewSummary(ctx context.Context) (*ReviewSummary, error) {
	details, err := c.fetchDetails(ctx, "rating,user_ratings_total,reviews")
	if err != nil {
		return nil, err
	}

	summary := &ReviewSummary{
		Rating:       details.Result.Rating,
		TotalRatings: details.Result.TotalRatings,
	}
	for _, r := range details.Result.Reviews {
		summary.Reviews = append(summary.Reviews, Review{
			Author: r.AuthorName,
			Text:   r.Text,
			Rating: r.Rating,
			Time:   r.Time,
		})
	}
	return summary, nil
}

func (c *Client) fetchDetails(ctx context.Context, fields string) (*detailsResult, error) {
	endpoint := fmt.Sprintf("%s/details/json?place_id=%s&fields=%s&key=%s",
		c.baseURL, url.QueryEscape(c.placeID), url.QueryEscape(fields), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	c.log.Debug().Str("fields", fields).Msg("place details request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("place details: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("place details: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("place details: unexpected status %d", resp.StatusCode)
	}

	var details detailsResult
	if err := json.Unmarshal(data, &details); err != nil {
		return nil, fmt.Errorf("place details: decode: %w", err)
	}
	if details.Status != "OK" {
		return nil, fmt.Errorf("place details: status %s", details.Status)
	}
	return &details, nil
}

// formatClock converts Google's HHMM time into HH:MM. Anything malformed
// comes back as midnight, which the evaluator treats as closed territory.
func formatClock(t string) string {
	if len(t) != 4 {
		return "00:00"
	}
	return t[:2] + ":" + t[2:]
}

// googleWeekday maps Google's day index (0 = Sunday) to time.Weekday.
func googleWeekday(day int) time.Weekday {
	return time.Weekday(day % 7)
}
