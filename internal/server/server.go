// Package server exposes a read-only HTTP surface over one planning
// session: capacity figures, time slots, the computed week plan and the
// allocation statistics.
package server

import (
	"errors"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/lmoretti/vaxweek/pkg/core/model"
	"github.com/lmoretti/vaxweek/pkg/core/services"
	"github.com/lmoretti/vaxweek/pkg/core/stats"
)

// Server serves the planning session over HTTP. Allocation state is shared
// mutable data, so every request holds one exclusive lock: a plan run is
// never observed half-done.
type Server struct {
	session *services.Session
	logger  *zap.Logger

	mu sync.Mutex
}

// ErrorResponse is the JSON body of a failed request.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// New creates a server over the given session.
func New(session *services.Session, logger *zap.Logger) *Server {
	return &Server{
		session: session,
		logger:  logger,
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("HTTP server starting", zap.String("addr", addr))
	return fasthttp.ListenAndServe(addr, s.Handler)
}

// Handler routes a single request.
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		s.writeError(ctx, fasthttp.StatusMethodNotAllowed, "only GET is supported")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch string(ctx.Path()) {
	case "/capacity":
		s.handleCapacity(ctx)
	case "/slots":
		s.handleSlots(ctx)
	case "/plan":
		s.handlePlan(ctx)
	case "/stats":
		s.handleStats(ctx)
	default:
		s.writeError(ctx, fasthttp.StatusNotFound, "unknown path")
	}
}

// handleCapacity reports hourly capacity and weekly availability per hub.
func (s *Server) handleCapacity(ctx *fasthttp.RequestCtx) {
	weekly, err := s.session.Capacity.WeeklyAvailability()
	if err != nil {
		s.writeFailure(ctx, err)
		return
	}

	hourly := make(map[string]int, len(weekly))
	for _, hub := range s.session.Registry.HubNames() {
		c, err := s.session.Capacity.HourlyCapacity(hub)
		if err != nil {
			if errors.Is(err, model.ErrNotConfigured) {
				continue
			}
			s.writeFailure(ctx, err)
			return
		}
		hourly[hub] = c
	}

	s.writeJSON(ctx, map[string]any{
		"hourlyCapacity":     hourly,
		"weeklyAvailability": weekly,
	})
}

func (s *Server) handleSlots(ctx *fasthttp.RequestCtx) {
	slots, err := s.session.Capacity.TimeSlots()
	if err != nil {
		s.writeFailure(ctx, err)
		return
	}
	s.writeJSON(ctx, map[string]any{"timeSlots": slots})
}

// handlePlan computes a fresh week plan and returns the full report.
func (s *Server) handlePlan(ctx *fasthttp.RequestCtx) {
	result, err := services.BuildPlan(s.session, s.logger)
	if err != nil {
		s.writeFailure(ctx, err)
		return
	}
	s.writeJSON(ctx, result)
}

// handleStats reports the statistics over the current allocation state.
func (s *Server) handleStats(ctx *fasthttp.RequestCtx) {
	proportion := stats.Ratio{}
	p, err := s.session.Stats.ProportionAllocated()
	if err != nil && !errors.Is(err, model.ErrNoData) {
		s.writeFailure(ctx, err)
		return
	}
	if err == nil {
		proportion = stats.Ratio{Value: p, Valid: true}
	}

	byInterval, err := s.session.Stats.ProportionAllocatedByInterval()
	if err != nil {
		s.writeFailure(ctx, err)
		return
	}
	distribution, err := s.session.Stats.DistributionByInterval()
	if err != nil {
		s.writeFailure(ctx, err)
		return
	}

	s.writeJSON(ctx, map[string]any{
		"peopleCount":            s.session.Registry.CountPeople(),
		"proportionAllocated":    proportion,
		"proportionByInterval":   byInterval,
		"distributionByInterval": distribution,
	})
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, body any) {
	ctx.SetContentType("application/json")
	if err := json.NewEncoder(ctx).Encode(body); err != nil {
		s.logger.Error("Failed to encode response", zap.Error(err))
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
	}
}

// writeFailure maps core errors onto HTTP statuses.
func (s *Server) writeFailure(ctx *fasthttp.RequestCtx, err error) {
	status := fasthttp.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrNotFound):
		status = fasthttp.StatusNotFound
	case errors.Is(err, model.ErrNotConfigured), errors.Is(err, model.ErrInvalidConfiguration):
		status = fasthttp.StatusConflict
	case errors.Is(err, model.ErrInvalidArgument):
		status = fasthttp.StatusBadRequest
	}
	s.writeError(ctx, status, err.Error())
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	if err := json.NewEncoder(ctx).Encode(ErrorResponse{Status: status, Message: message}); err != nil {
		s.logger.Error("Failed to encode error response", zap.Error(err))
	}
}
