package server

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/rustlersclub/club-api/internal/config"
	"github.com/rustlersclub/club-api/internal/hours"
	"github.com/rustlersclub/club-api/internal/places"
	"github.com/rustlersclub/club-api/internal/signup"
)

// PlaceDirectory is the slice of the place-details API the handlers use.
type PlaceDirectory interface {
	Configured() bool
	OpeningHours(ctx context.Context) (*places.OpeningHours, error)
	ReviewSummary(ctx context.Context) (*places.ReviewSummary, error)
}

// SignupProcessor runs the signup notification workflow.
type SignupProcessor interface {
	Process(ctx context.Context, req signup.Request) (*signup.Outcome, error)
}

type Server struct {
	config    *config.Config
	places    PlaceDirectory
	notifier  SignupProcessor
	evaluator *hours.Evaluator
	router    *http.ServeMux
	log       zerolog.Logger
}

func New(cfg *config.Config, dir PlaceDirectory, notifier SignupProcessor, log zerolog.Logger) *Server {
	s := &Server{
		config:    cfg,
		places:    dir,
		notifier:  notifier,
		evaluator: hours.NewEvaluator(cfg.Timezone),
		router:    http.NewServeMux(),
		log:       log,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.HandleFunc("/api/hours", s.cors(s.handleHours, http.MethodGet))
	s.router.HandleFunc("/api/reviews", s.cors(s.handleReviews, http.MethodGet))
	s.router.HandleFunc("/api/signup", s.cors(s.handleSignup, http.MethodPost))
}

func (s *Server) Start(addr string) error {
	return http.ListenAndServe(addr, s.router)
}

// Handler exposes the root handler for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// cors sets the response CORS headers, answers preflight requests, and
// rejects every method other than the one the endpoint serves.
func (s *Server) cors(next http.HandlerFunc, method string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.config.AllowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", method+", OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		if r.Method != method {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}

		next(w, r)
	}
}
