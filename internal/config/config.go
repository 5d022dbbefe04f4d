package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rustlersclub/club-api/internal/hours"
	"github.com/rustlersclub/club-api/internal/reviews"
)

type Config struct {
	// HTTP
	Port          string
	AllowedOrigin string

	// Business locale
	Timezone *time.Location

	// Google Places
	PlacesAPIKey string
	PlaceID      string

	// OpenPhone
	OpenPhoneAPIKey string
	SenderNumber    string
	StaffPhones     []string

	// Manual fallback data, served when the Places lookup is not
	// configured or fails
	Hours                *hours.WeeklySchedule
	FallbackRating       float64
	FallbackTotalReviews int
	FallbackReview       reviews.Highlight
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		AllowedOrigin:   getEnv("ALLOWED_ORIGIN", "https://rustlersclub.com"),
		PlacesAPIKey:    getEnv("GOOGLE_PLACES_API_KEY", ""),
		PlaceID:         getEnv("GOOGLE_PLACE_ID", ""),
		OpenPhoneAPIKey: getEnv("OPENPHONE_API_KEY", ""),
		SenderNumber:    getEnv("OPENPHONE_NUMBER", ""),
	}

	// Business-local timezone, not request-local
	tzName := getEnv("BUSINESS_TIMEZONE", "America/Chicago")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("invalid BUSINESS_TIMEZONE %q: %w", tzName, err)
	}
	cfg.Timezone = loc

	// Parse staff phone list
	staffStr := getEnv("STAFF_PHONES", "")
	if staffStr != "" {
		cfg.StaffPhones = strings.Split(staffStr, ",")
		for i := range cfg.StaffPhones {
			cfg.StaffPhones[i] = strings.TrimSpace(cfg.StaffPhones[i])
		}
	}

	cfg.Hours = defaultHours()
	cfg.FallbackRating = fallbackRating
	cfg.FallbackTotalReviews = fallbackTotalReviews
	cfg.FallbackReview = fallbackReview()

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
