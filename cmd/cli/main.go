package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lmoretti/vaxweek/cmd/cli/commands"
	"github.com/lmoretti/vaxweek/internal/config"
	"github.com/lmoretti/vaxweek/pkg/core/services"
	"github.com/lmoretti/vaxweek/pkg/utils/logging"
)

var (
	configPath string
	verbose    bool
	app        *commands.AppContext
)

func main() {
	app = &commands.AppContext{}

	rootCmd := &cobra.Command{
		Use:   "vaxweek",
		Short: "Vaxweek - plan weekly vaccination allocations",
		Long: `Vaxweek computes a fair weekly allocation of registered people to
vaccination hub/day slots, following a tiered age-quota policy.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: vaxweek.yaml in cwd or home)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on the console")

	rootCmd.AddCommand(commands.PlanCmd(app))
	rootCmd.AddCommand(commands.CapacityCmd(app))
	rootCmd.AddCommand(commands.SlotsCmd(app))
	rootCmd.AddCommand(commands.PeopleCmd(app))
	rootCmd.AddCommand(commands.ServeCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up the logger, loads configuration and builds the planning
// session every command runs against.
func initApp() error {
	var err error

	app.Logger, err = logging.InitLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if configPath != "" {
		app.Cfg, err = config.LoadFromPath(configPath)
	} else {
		app.Cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded")

	app.Session, err = services.BuildSession(app.Cfg, app.Logger)
	if err != nil {
		return fmt.Errorf("failed to build planning session: %w", err)
	}

	return nil
}
