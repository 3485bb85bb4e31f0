package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lmoretti/vaxweek/pkg/core/allocator"
	"github.com/lmoretti/vaxweek/pkg/core/model"
	"github.com/lmoretti/vaxweek/pkg/core/stats"
)

// PlanResult is the full outcome of one week-allocation run.
type PlanResult struct {
	PlanID      string    `json:"planId"`
	GeneratedAt time.Time `json:"generatedAt"`
	PeopleCount int       `json:"peopleCount"`

	// Availability maps hub name to per-day slot counts, Monday first.
	Availability map[string][]int `json:"availability"`

	// Plan maps each weekday to hub name to the selected SSNs.
	Plan allocator.WeekPlan `json:"plan"`

	ProportionAllocated    stats.Ratio            `json:"proportionAllocated"`
	ProportionByInterval   map[string]stats.Ratio `json:"proportionByInterval"`
	DistributionByInterval map[string]stats.Ratio `json:"distributionByInterval"`
}

// BuildPlan computes a fresh week plan: it resets all allocation state,
// runs the week allocation in the fixed day-major, hub-lexicographic
// order, and derives the allocation statistics. Given the same session
// contents, repeated calls produce identical plans.
func BuildPlan(s *Session, logger *zap.Logger) (*PlanResult, error) {
	planID := uuid.New().String()
	logger.Info("Building week plan",
		zap.String("plan_id", planID),
		zap.Int("people", s.Registry.CountPeople()),
		zap.Strings("hubs", s.Registry.HubNames()))

	availability, err := s.Capacity.WeeklyAvailability()
	if err != nil {
		return nil, fmt.Errorf("failed to compute weekly availability: %w", err)
	}

	s.Planner.Reset()
	plan, err := s.Planner.AllocateWeek()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate week: %w", err)
	}

	result := &PlanResult{
		PlanID:       planID,
		GeneratedAt:  time.Now().UTC(),
		PeopleCount:  s.Registry.CountPeople(),
		Availability: availability,
		Plan:         plan,
	}

	proportion, err := s.Stats.ProportionAllocated()
	switch {
	case errors.Is(err, model.ErrNoData):
		result.ProportionAllocated = stats.Ratio{}
	case err != nil:
		return nil, fmt.Errorf("failed to compute allocation proportion: %w", err)
	default:
		result.ProportionAllocated = stats.Ratio{Value: proportion, Valid: true}
	}

	if result.ProportionByInterval, err = s.Stats.ProportionAllocatedByInterval(); err != nil {
		return nil, fmt.Errorf("failed to compute per-interval proportions: %w", err)
	}
	if result.DistributionByInterval, err = s.Stats.DistributionByInterval(); err != nil {
		return nil, fmt.Errorf("failed to compute allocation distribution: %w", err)
	}

	logger.Info("Week plan built",
		zap.String("plan_id", planID),
		zap.Float64("proportion_allocated", result.ProportionAllocated.Value))

	return result, nil
}
