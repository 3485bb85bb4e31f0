package services

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/lmoretti/vaxweek/internal/config"
	"github.com/lmoretti/vaxweek/pkg/core/ages"
	"github.com/lmoretti/vaxweek/pkg/core/allocator"
	"github.com/lmoretti/vaxweek/pkg/core/capacity"
	"github.com/lmoretti/vaxweek/pkg/core/model"
	"github.com/lmoretti/vaxweek/pkg/core/registry"
	"github.com/lmoretti/vaxweek/pkg/core/stats"
	"github.com/lmoretti/vaxweek/pkg/ingest"
)

// Session bundles the core components of one planning session, built from
// configuration and kept entirely in memory.
type Session struct {
	Registry  *registry.Registry
	Partition *ages.Partition
	Capacity  *capacity.Model
	Planner   *allocator.Planner
	Stats     *stats.Calculator
}

// BuildSession constructs the registry, age partition, capacity model,
// planner and statistics calculator from the configuration, and loads the
// people CSV if one is configured.
func BuildSession(cfg *config.Config, logger *zap.Logger) (*Session, error) {
	reg := registry.New(time.Now().Year())

	partition, err := ages.NewPartition(cfg.AgeBreakpoints...)
	if err != nil {
		return nil, fmt.Errorf("failed to build age partition: %w", err)
	}

	for _, hub := range cfg.Hubs {
		if err := reg.DefineHub(hub.Name); err != nil {
			return nil, fmt.Errorf("failed to define hub %q: %w", hub.Name, err)
		}
		staffing := model.Staffing{Doctors: hub.Doctors, Nurses: hub.Nurses, Other: hub.Other}
		if err := reg.SetStaff(hub.Name, staffing); err != nil {
			return nil, fmt.Errorf("failed to set staff for hub %q: %w", hub.Name, err)
		}
	}
	logger.Debug("Hubs registered", zap.Int("count", len(cfg.Hubs)))

	capModel := capacity.NewModel(reg, logger)
	if err := capModel.SetWeeklyHours(cfg.WeeklyHours); err != nil {
		return nil, fmt.Errorf("failed to set weekly hours: %w", err)
	}

	if cfg.PeopleCSV != "" {
		added, err := loadPeopleFile(cfg.PeopleCSV, reg, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("People loaded", zap.String("file", cfg.PeopleCSV), zap.Int("added", added))
	}

	return &Session{
		Registry:  reg,
		Partition: partition,
		Capacity:  capModel,
		Planner:   allocator.NewPlanner(reg, partition, capModel, logger),
		Stats:     stats.NewCalculator(reg, partition),
	}, nil
}

// loadPeopleFile loads a people CSV into the registry, reporting rejected
// lines through the logger.
func loadPeopleFile(path string, reg *registry.Registry, logger *zap.Logger) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open people CSV: %w", err)
	}
	defer f.Close()

	reporter := ingest.ErrorReporterFunc(func(line int, raw string) {
		logger.Warn("Skipping invalid people line",
			zap.Int("line", line),
			zap.String("raw", raw))
	})

	added, err := ingest.LoadPeople(f, reg, reporter)
	if err != nil {
		return added, fmt.Errorf("failed to load people from %q: %w", path, err)
	}
	return added, nil
}
