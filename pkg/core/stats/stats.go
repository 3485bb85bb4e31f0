package stats

import (
	"fmt"

	"github.com/lmoretti/vaxweek/pkg/core/ages"
	"github.com/lmoretti/vaxweek/pkg/core/model"
	"github.com/lmoretti/vaxweek/pkg/core/registry"
)

// Ratio is a proportion with an explicit no-data marker: Valid is false
// when the denominator is zero, instead of propagating a division error.
type Ratio struct {
	Value float64 `json:"value"`
	Valid bool    `json:"valid"`
}

// Calculator derives aggregate proportions over the allocation state.
type Calculator struct {
	registry  *registry.Registry
	partition *ages.Partition
}

// NewCalculator creates a statistics calculator over the registry and
// age partition.
func NewCalculator(reg *registry.Registry, partition *ages.Partition) *Calculator {
	return &Calculator{
		registry:  reg,
		partition: partition,
	}
}

// ProportionAllocated returns allocated people / total people, in [0,1].
// An empty registry yields ErrNoData.
func (c *Calculator) ProportionAllocated() (float64, error) {
	total := c.registry.CountPeople()
	if total == 0 {
		return 0, fmt.Errorf("%w: no people registered", model.ErrNoData)
	}

	allocated := 0
	for _, p := range c.registry.People() {
		if p.IsAllocated() {
			allocated++
		}
	}
	return float64(allocated) / float64(total), nil
}

// ProportionAllocatedByInterval returns, per age-interval label, the
// proportion of allocated people among the people in that interval. An
// interval with no people yields an invalid Ratio.
func (c *Calculator) ProportionAllocatedByInterval() (map[string]Ratio, error) {
	if c.partition == nil {
		return nil, fmt.Errorf("%w: age intervals not set", model.ErrNotConfigured)
	}

	out := make(map[string]Ratio, c.partition.Len())
	for _, iv := range c.partition.Intervals() {
		inInterval, allocated := c.countInterval(iv)
		if inInterval == 0 {
			out[iv.Label()] = Ratio{}
			continue
		}
		out[iv.Label()] = Ratio{
			Value: float64(allocated) / float64(inInterval),
			Valid: true,
		}
	}
	return out, nil
}

// DistributionByInterval returns, per age-interval label, the share of all
// allocated people that falls in that interval. With nobody allocated every
// Ratio is invalid.
func (c *Calculator) DistributionByInterval() (map[string]Ratio, error) {
	if c.partition == nil {
		return nil, fmt.Errorf("%w: age intervals not set", model.ErrNotConfigured)
	}

	totalAllocated := 0
	for _, p := range c.registry.People() {
		if p.IsAllocated() {
			totalAllocated++
		}
	}

	out := make(map[string]Ratio, c.partition.Len())
	for _, iv := range c.partition.Intervals() {
		if totalAllocated == 0 {
			out[iv.Label()] = Ratio{}
			continue
		}
		_, allocated := c.countInterval(iv)
		out[iv.Label()] = Ratio{
			Value: float64(allocated) / float64(totalAllocated),
			Valid: true,
		}
	}
	return out, nil
}

// countInterval returns the number of people in the interval and how many
// of them are allocated.
func (c *Calculator) countInterval(iv ages.Interval) (total, allocated int) {
	currentYear := c.registry.CurrentYear()
	for _, p := range c.registry.People() {
		if !iv.Contains(p.AgeIn(currentYear)) {
			continue
		}
		total++
		if p.IsAllocated() {
			allocated++
		}
	}
	return total, allocated
}
