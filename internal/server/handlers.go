package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rustlersclub/club-api/internal/hours"
	"github.com/rustlersclub/club-api/internal/reviews"
	"github.com/rustlersclub/club-api/internal/signup"
)

type hoursResponse struct {
	Success     bool                  `json:"success"`
	Source      string                `json:"source"`
	Hours       *hours.WeeklySchedule `json:"hours"`
	IsOpen      bool                  `json:"isOpen"`
	LastUpdated time.Time             `json:"lastUpdated"`
}

func (s *Server) handleHours(w http.ResponseWriter, r *http.Request) {
	now := time.Now()

	if s.places.Configured() {
		oh, err := s.places.OpeningHours(r.Context())
		if err != nil {
			s.log.Error().Err(err).Msg("opening-hours lookup failed, serving manual hours")
		} else {
			writeJSON(w, http.StatusOK, hoursResponse{
				Success:     true,
				Source:      "google",
				Hours:       oh.Schedule,
				IsOpen:      oh.OpenNow,
				LastUpdated: now.UTC(),
			})
			return
		}
	}

	status := s.evaluator.Evaluate(s.config.Hours, now)
	writeJSON(w, http.StatusOK, hoursResponse{
		Success:     true,
		Source:      "manual",
		Hours:       s.config.Hours,
		IsOpen:      status.IsOpen,
		LastUpdated: now.UTC(),
	})
}

type reviewsResponse struct {
	Success      bool               `json:"success"`
	Source       string             `json:"source"`
	Rating       float64            `json:"rating"`
	TotalReviews int                `json:"totalReviews"`
	RecentReview *reviews.Highlight `json:"recentReview"`
	LastUpdated  time.Time          `json:"lastUpdated"`
}

func (s *Server) handleReviews(w http.ResponseWriter, r *http.Request) {
	now := time.Now()

	if s.places.Configured() {
		summary, err := s.places.ReviewSummary(r.Context())
		if err != nil {
			s.log.Error().Err(err).Msg("review lookup failed, serving fallback data")
		} else {
			var highlight *reviews.Highlight
			if pick := reviews.PickRecentPositive(summary.Reviews); pick != nil {
				h := reviews.NewHighlight(*pick, now)
				highlight = &h
			}
			writeJSON(w, http.StatusOK, reviewsResponse{
				Success:      true,
				Source:       "google",
				Rating:       summary.Rating,
				TotalReviews: summary.TotalRatings,
				RecentReview: highlight,
				LastUpdated:  now.UTC(),
			})
			return
		}
	}

	fallback := s.config.FallbackReview
	writeJSON(w, http.StatusOK, reviewsResponse{
		Success:      true,
		Source:       "manual",
		Rating:       s.config.FallbackRating,
		TotalReviews: s.config.FallbackTotalReviews,
		RecentReview: &fallback,
		LastUpdated:  now.UTC(),
	})
}

type signupResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signup.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	outcome, err := s.notifier.Process(r.Context(), req)
	if err != nil {
		var verr *signup.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":    verr.Error(),
				"required": []string{"name", "phone", "email"},
			})
			return
		}
		s.log.Error().Err(err).Msg("signup processing failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// Downstream failures are logged but never bounce the signup.
	if err := outcome.Err(); err != nil {
		s.log.Warn().Err(err).Str("contact_id", outcome.ContactID).Msg("signup notifications degraded")
	}

	writeJSON(w, http.StatusOK, signupResponse{
		Success: true,
		Message: "Signup successful! Check your phone for a welcome message.",
	})
}
