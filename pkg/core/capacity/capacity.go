package capacity

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/lmoretti/vaxweek/pkg/core/model"
	"github.com/lmoretti/vaxweek/pkg/core/registry"
)

// Per-person hourly throughput factors by staff role.
const (
	doctorFactor = 10
	nurseFactor  = 12
	otherFactor  = 20
)

// DaysPerWeek is the number of weekday slots in a plan, Monday first.
const DaysPerWeek = 7

// maxDailyHours bounds the working hours of a single day.
const maxDailyHours = 12

// Model converts hub staffing into hourly vaccination capacity and
// combines it with the weekly working-hours schedule into per-day
// availability.
type Model struct {
	registry *registry.Registry
	logger   *zap.Logger

	weeklyHours []int
}

// NewModel creates a capacity model over the registry's hubs. Weekly hours
// start unconfigured.
func NewModel(reg *registry.Registry, logger *zap.Logger) *Model {
	return &Model{
		registry: reg,
		logger:   logger,
	}
}

// SetWeeklyHours configures the working hours for the 7 days of the week,
// Monday first. Each value must be in [0, 12).
func (m *Model) SetWeeklyHours(hours []int) error {
	if len(hours) != DaysPerWeek {
		return fmt.Errorf("%w: expected %d daily hour values, got %d",
			model.ErrInvalidConfiguration, DaysPerWeek, len(hours))
	}
	for day, h := range hours {
		if h < 0 || h >= maxDailyHours {
			return fmt.Errorf("%w: hours for day %d must be in [0,%d), got %d",
				model.ErrInvalidConfiguration, day, maxDailyHours, h)
		}
	}
	m.weeklyHours = append([]int(nil), hours...)
	return nil
}

// WeeklyHours returns the configured schedule.
func (m *Model) WeeklyHours() ([]int, error) {
	if m.weeklyHours == nil {
		return nil, fmt.Errorf("%w: weekly hours not set", model.ErrNotConfigured)
	}
	return append([]int(nil), m.weeklyHours...), nil
}

// HourlyCapacity estimates the hourly vaccination throughput of a hub as
// min(10*doctors, 12*nurses, 20*other).
func (m *Model) HourlyCapacity(hub string) (int, error) {
	h, err := m.registry.Hub(hub)
	if err != nil {
		return 0, err
	}
	staffing, ok := h.Staffing()
	if !ok {
		return 0, fmt.Errorf("%w: hub %q has no staffing", model.ErrNotConfigured, hub)
	}

	capacity := staffing.Doctors * doctorFactor
	if c := staffing.Nurses * nurseFactor; c < capacity {
		capacity = c
	}
	if c := staffing.Other * otherFactor; c < capacity {
		capacity = c
	}
	return capacity, nil
}

// DailyAvailable returns the number of vaccination slots a hub offers on
// the given weekday: workingHours[day] * hourlyCapacity.
func (m *Model) DailyAvailable(hub string, day int) (int, error) {
	if day < 0 || day >= DaysPerWeek {
		return 0, fmt.Errorf("%w: day must be in [0,6], got %d", model.ErrInvalidArgument, day)
	}
	if m.weeklyHours == nil {
		return 0, fmt.Errorf("%w: weekly hours not set", model.ErrNotConfigured)
	}
	hourly, err := m.HourlyCapacity(hub)
	if err != nil {
		return 0, err
	}
	return m.weeklyHours[day] * hourly, nil
}

// WeeklyAvailability returns the per-day availability of every hub. A hub
// whose capacity cannot be estimated (unknown or unstaffed) contributes
// zero availability for every day rather than failing the whole week.
func (m *Model) WeeklyAvailability() (map[string][]int, error) {
	if m.weeklyHours == nil {
		return nil, fmt.Errorf("%w: weekly hours not set", model.ErrNotConfigured)
	}

	available := make(map[string][]int, len(m.registry.HubNames()))
	for _, name := range m.registry.HubNames() {
		days := make([]int, DaysPerWeek)
		hourly, err := m.HourlyCapacity(name)
		if err != nil {
			if errors.Is(err, model.ErrNotConfigured) {
				m.logger.Warn("Hub has no staffing, treating availability as zero",
					zap.String("hub", name))
				available[name] = days
				continue
			}
			return nil, err
		}
		for day := 0; day < DaysPerWeek; day++ {
			days[day] = m.weeklyHours[day] * hourly
		}
		available[name] = days
	}
	return available, nil
}

// TimeSlots returns the standard time-slot labels for the 7 days of the
// week. Slots start at 09:00 and occur every 15 minutes, 4 per working
// hour, formatted as "HH:MM".
func (m *Model) TimeSlots() ([][]string, error) {
	if m.weeklyHours == nil {
		return nil, fmt.Errorf("%w: weekly hours not set", model.ErrNotConfigured)
	}

	week := make([][]string, DaysPerWeek)
	for day := 0; day < DaysPerWeek; day++ {
		slots := make([]string, 0, m.weeklyHours[day]*4)
		for h := 0; h < m.weeklyHours[day]; h++ {
			for q := 0; q < 4; q++ {
				slots = append(slots, fmt.Sprintf("%02d:%02d", 9+h, q*15))
			}
		}
		week[day] = slots
	}
	return week, nil
}
