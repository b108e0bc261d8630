// Package httpapi exposes the odds simulator over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lox/pokercarlo/internal/deck"
	"github.com/lox/pokercarlo/internal/montecarlo"
)

// OddsRequest is the body of POST /v1/odds
type OddsRequest struct {
	Hands  []string `json:"hands"`
	Board  string   `json:"board"`
	Trials int      `json:"trials,omitempty"`
	Seed   int64    `json:"seed,omitempty"`
}

// OddsResponse reports the percentages of one run
type OddsResponse struct {
	RunID      string  `json:"run_id"`
	Trials     int     `json:"trials"`
	Hand1      float64 `json:"hand1"`
	Hand2      float64 `json:"hand2"`
	Tie        float64 `json:"tie"`
	DurationMS int64   `json:"duration_ms"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server handles odds requests using a base set of simulator options
type Server struct {
	options   []montecarlo.Option
	maxTrials int
	logger    *log.Logger
}

// NewServer creates a server. Request trials and seed override the base
// options; maxTrials caps the trials a single request may ask for.
func NewServer(options []montecarlo.Option, maxTrials int, logger *log.Logger) *Server {
	return &Server{options: options, maxTrials: maxTrials, logger: logger}
}

// Handler returns the router
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	r.Post("/v1/odds", s.handleOdds)
	return r
}

// ListenAndServe serves on addr until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleOdds(w http.ResponseWriter, r *http.Request) {
	var req OddsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	hands, board, err := parseRequest(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Trials > s.maxTrials {
		writeError(w, http.StatusBadRequest, fmt.Errorf("trials %d exceeds limit of %d", req.Trials, s.maxTrials))
		return
	}

	opts := append([]montecarlo.Option{}, s.options...)
	opts = append(opts, montecarlo.WithLogger(s.logger))
	if req.Trials != 0 {
		opts = append(opts, montecarlo.WithTrials(req.Trials))
	}
	if req.Seed != 0 {
		opts = append(opts, montecarlo.WithSeed(req.Seed))
	}

	result, err := montecarlo.New(opts...).Run(r.Context(), hands, board)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	p1, p2, tie := result.Percentages()
	writeJSON(w, http.StatusOK, OddsResponse{
		RunID:      result.RunID,
		Trials:     result.Trials,
		Hand1:      p1,
		Hand2:      p2,
		Tie:        tie,
		DurationMS: result.Duration.Milliseconds(),
	})
}

func parseRequest(req OddsRequest) ([2]deck.Hand, []deck.Card, error) {
	var hands [2]deck.Hand
	if len(req.Hands) != 2 {
		return hands, nil, fmt.Errorf("exactly 2 hands are required, got %d", len(req.Hands))
	}
	for i, s := range req.Hands {
		hand, err := deck.ParseHand(s)
		if err != nil {
			return hands, nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		hands[i] = hand
	}

	board, err := deck.ParseCards(req.Board)
	if err != nil {
		return hands, nil, fmt.Errorf("board: %w", err)
	}
	return hands, board, nil
}

func statusFor(err error) int {
	var integrity *deck.DeckIntegrityError
	var exhausted *montecarlo.SamplingExhaustionError
	switch {
	case errors.As(err, &integrity),
		errors.As(err, &exhausted),
		errors.Is(err, montecarlo.ErrCommunitySize),
		errors.Is(err, montecarlo.ErrInvalidTrials):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"request_id", middleware.GetReqID(r.Context()),
			"elapsed", time.Since(start))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
