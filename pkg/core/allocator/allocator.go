package allocator

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/lmoretti/vaxweek/pkg/core/ages"
	"github.com/lmoretti/vaxweek/pkg/core/capacity"
	"github.com/lmoretti/vaxweek/pkg/core/model"
	"github.com/lmoretti/vaxweek/pkg/core/registry"
)

// quotaShare is the fraction of remaining capacity reserved for each age
// interval during the quota pass.
const quotaShare = 0.4

// WeekPlan maps each weekday (0 = Monday) to the allocation of every hub:
// hub name -> SSNs selected for that hub on that day.
type WeekPlan []map[string][]string

// Planner assigns unallocated people to hub/day slots following the tiered
// age-quota policy. Allocation is global and exclusive: once a person holds
// a slot they are never reselected until a reset.
type Planner struct {
	registry  *registry.Registry
	partition *ages.Partition
	capacity  *capacity.Model
	logger    *zap.Logger
}

// NewPlanner creates an allocation planner over the given registry,
// age partition and capacity model.
func NewPlanner(reg *registry.Registry, partition *ages.Partition, capModel *capacity.Model, logger *zap.Logger) *Planner {
	return &Planner{
		registry:  reg,
		partition: partition,
		capacity:  capModel,
		logger:    logger,
	}
}

// AllocateDay computes the allocation plan for one hub on one weekday and
// returns the SSNs of the selected people in selection order.
//
// The available capacity n is filled in two passes over the age intervals,
// both from the oldest interval down:
//
//   - quota pass: each interval may take up to floor(0.4*n) people, where n
//     is the capacity still remaining when that interval's turn comes;
//   - fill pass: whatever capacity is left is handed to the intervals in
//     the same order, each taking up to the entire remainder.
//
// All configuration errors surface before any allocation state changes.
func (p *Planner) AllocateDay(hub string, day int) ([]string, error) {
	if p.partition == nil {
		return nil, fmt.Errorf("%w: age intervals not set", model.ErrNotConfigured)
	}

	n, err := p.capacity.DailyAvailable(hub, day)
	if err != nil {
		return nil, err
	}

	selected := []string{}
	if n <= 0 {
		return selected, nil
	}

	oldestFirst := p.partition.OldestFirst()

	// Quota pass.
	for _, iv := range oldestFirst {
		if n <= 0 {
			break
		}
		quota := int(float64(n) * quotaShare)
		n -= p.takeFromInterval(iv, quota, day, hub, &selected)
	}

	// Fill pass.
	for _, iv := range oldestFirst {
		if n <= 0 {
			break
		}
		n -= p.takeFromInterval(iv, n, day, hub, &selected)
	}

	p.logger.Debug("Allocated day",
		zap.String("hub", hub),
		zap.Int("day", day),
		zap.Int("selected", len(selected)))

	return selected, nil
}

// takeFromInterval allocates up to limit unallocated people whose age falls
// in the interval, ascending by SSN, and returns how many were taken.
func (p *Planner) takeFromInterval(iv ages.Interval, limit int, day int, hub string, selected *[]string) int {
	if limit <= 0 {
		return 0
	}
	taken := 0
	currentYear := p.registry.CurrentYear()
	for _, person := range p.registry.People() {
		if taken == limit {
			break
		}
		if person.IsAllocated() || !iv.Contains(person.AgeIn(currentYear)) {
			continue
		}
		person.Allocate(day, hub)
		*selected = append(*selected, person.SSN)
		taken++
	}
	return taken
}

// AllocateWeek computes the allocation plan for the whole week. Days are
// processed 0..6 in order and hubs in ascending name order; this fixed
// processing order makes repeated runs from a freshly reset state
// reproducible. A hub whose capacity cannot be estimated is treated as
// having zero availability instead of aborting the week.
func (p *Planner) AllocateWeek() (WeekPlan, error) {
	if p.partition == nil {
		return nil, fmt.Errorf("%w: age intervals not set", model.ErrNotConfigured)
	}
	if _, err := p.capacity.WeeklyHours(); err != nil {
		return nil, err
	}

	plan := make(WeekPlan, capacity.DaysPerWeek)
	for day := 0; day < capacity.DaysPerWeek; day++ {
		plan[day] = make(map[string][]string)
		for _, hub := range p.registry.HubNames() {
			if _, err := p.capacity.HourlyCapacity(hub); err != nil {
				if errors.Is(err, model.ErrNotConfigured) {
					p.logger.Warn("Skipping hub with no staffing",
						zap.String("hub", hub),
						zap.Int("day", day))
					plan[day][hub] = []string{}
					continue
				}
				return nil, err
			}

			selected, err := p.AllocateDay(hub, day)
			if err != nil {
				return nil, err
			}
			plan[day][hub] = selected
		}
	}
	return plan, nil
}

// Reset clears every person's allocation state. It is idempotent and is
// the only mutation path besides AllocateDay/AllocateWeek.
func (p *Planner) Reset() {
	p.registry.ResetAllocations()
}
