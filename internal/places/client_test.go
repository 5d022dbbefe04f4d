package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const detailsPayload = `{
  "status": "OK",
  "result": {
    "name": "Rustlers Club",
    "rating": 4.8,
    "user_ratings_total": 127,
    "reviews": [
      {"author_name": "Michael R.", "rating": 5, "text": "Great spot", "time": 1755000000},
      {"author_name": "Sam T.", "rating": 2, "text": "Too loud", "time": 1756000000}
    ],
    "opening_hours": {
      "open_now": true,
      "periods": [
        {"open": {"day": 5, "time": "1000"}, "close": {"day": 6, "time": "0300"}},
        {"open": {"day": 0, "time": "1200"}, "close": {"day": 1, "time": "0200"}},
        {"open": {"day": 2, "time": "1000"}, "close": {"day": 2, "time": "2200"}}
      ]
    }
  }
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("test-key", "PLACE1", zerolog.Nop())
	c.SetBaseURL(srv.URL)
	return c
}

func TestConfigured(t *testing.T) {
	assert.True(t, NewClient("key", "place", zerolog.Nop()).Configured())
	assert.False(t, NewClient("", "place", zerolog.Nop()).Configured())
	assert.False(t, NewClient("key", "", zerolog.Nop()).Configured())
}

func TestOpeningHours(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/details/json", r.URL.Path)
		assert.Equal(t, "PLACE1", r.URL.Query().Get("place_id"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		_, _ = w.Write([]byte(detailsPayload))
	})

	oh, err := c.OpeningHours(context.Background())
	require.NoError(t, err)
	assert.True(t, oh.OpenNow)

	friday := oh.Schedule.Day(time.Friday)
	require.NotNil(t, friday)
	assert.Equal(t, "10:00", friday.Open)
	assert.Equal(t, "03:00", friday.Close)
	assert.True(t, friday.NextDay)

	sunday := oh.Schedule.Day(time.Sunday)
	require.NotNil(t, sunday)
	assert.Equal(t, "12:00", sunday.Open)
	assert.True(t, sunday.NextDay)

	tuesday := oh.Schedule.Day(time.Tuesday)
	require.NotNil(t, tuesday)
	assert.Equal(t, "22:00", tuesday.Close)
	assert.False(t, tuesday.NextDay)

	assert.Nil(t, oh.Schedule.Day(time.Monday))
}

func TestOpeningHoursMissing(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "OK", "result": {"name": "Rustlers Club"}}`))
	})

	_, err := c.OpeningHours(context.Background())
	require.Error(t, err)
}

func TestReviewSummary(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(detailsPayload))
	})

	summary, err := c.ReviewSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4.8, summary.Rating)
	assert.Equal(t, 127, summary.TotalRatings)
	require.Len(t, summary.Reviews, 2)
	assert.Equal(t, "Michael R.", summary.Reviews[0].Author)
	assert.Equal(t, 5, summary.Reviews[0].Rating)
}

func TestNonOKStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "REQUEST_DENIED"}`))
	})

	_, err := c.ReviewSummary(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQUEST_DENIED")
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "10:00", formatClock("1000"))
	assert.Equal(t, "03:30", formatClock("0330"))
	assert.Equal(t, "00:00", formatClock(""))
	assert.Equal(t, "00:00", formatClock("930"))
}
