package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmoretti/vaxweek/pkg/core/model"
)

// CapacityCmd creates the capacity command.
func CapacityCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "capacity",
		Short: "Show hourly capacity and weekly availability per hub",
		RunE: func(cmd *cobra.Command, args []string) error {
			weekly, err := app.Session.Capacity.WeeklyAvailability()
			if err != nil {
				return fmt.Errorf("failed to compute weekly availability: %w", err)
			}

			for _, hub := range app.Session.Registry.HubNames() {
				hourly, err := app.Session.Capacity.HourlyCapacity(hub)
				if err != nil {
					if errors.Is(err, model.ErrNotConfigured) {
						fmt.Printf("%s: no staffing configured\n", hub)
						continue
					}
					return err
				}

				fmt.Printf("%s: %d vaccinations/hour\n", hub, hourly)
				for day, available := range weekly[hub] {
					fmt.Printf("  %-9s %d\n", weekdayNames[day], available)
				}
			}
			return nil
		},
	}
}
