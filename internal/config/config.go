package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// HubConfig declares a vaccination hub and its staffing.
type HubConfig struct {
	Name    string `yaml:"name" validate:"required"`
	Doctors int    `yaml:"doctors" validate:"required,min=1"`
	Nurses  int    `yaml:"nurses" validate:"required,min=1"`
	Other   int    `yaml:"other" validate:"required,min=1"`
}

// Config represents the planner configuration.
type Config struct {
	// AgeBreakpoints are the strictly ascending breaks between age
	// intervals, e.g. [40, 60] for "[0,40)", "[40,60)", "[60,+)".
	AgeBreakpoints []int `yaml:"ageBreakpoints" validate:"required,min=1,dive,gt=0"`

	// WeeklyHours are the working hours for the 7 weekdays, Monday first.
	WeeklyHours []int `yaml:"weeklyHours" validate:"required,len=7,dive,min=0,max=11"`

	// Hubs lists every vaccination hub with its staffing.
	Hubs []HubConfig `yaml:"hubs" validate:"required,min=1,dive"`

	// PeopleCSV is an optional path to a people CSV file to load at startup.
	PeopleCSV string `yaml:"peopleCSV,omitempty"`

	// ListenAddr is the address of the read-only HTTP surface.
	ListenAddr string `yaml:"listenAddr,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from vaxweek.yaml, looking in
// the current directory first and then in the user's home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct plus the cross-field rules
// the tag language cannot express.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	prev := 0
	for i, b := range cfg.AgeBreakpoints {
		if b <= prev {
			return fmt.Errorf("ageBreakpoints must be strictly ascending, got %d at position %d", b, i)
		}
		prev = b
	}

	seen := make(map[string]bool, len(cfg.Hubs))
	for _, hub := range cfg.Hubs {
		if seen[hub.Name] {
			return fmt.Errorf("duplicate hub name %q", hub.Name)
		}
		seen[hub.Name] = true
	}

	return nil
}

// findConfigFile searches for vaxweek.yaml in the current directory and
// the home directory.
func findConfigFile() (string, error) {
	configFileName := "vaxweek.yaml"

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
