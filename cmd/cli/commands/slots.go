package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// SlotsCmd creates the slots command.
func SlotsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "slots",
		Short: "Show the 15-minute time slots for each weekday",
		RunE: func(cmd *cobra.Command, args []string) error {
			slots, err := app.Session.Capacity.TimeSlots()
			if err != nil {
				return fmt.Errorf("failed to compute time slots: %w", err)
			}

			for day, daySlots := range slots {
				if len(daySlots) == 0 {
					fmt.Printf("%-9s closed\n", weekdayNames[day])
					continue
				}
				fmt.Printf("%-9s %s\n", weekdayNames[day], strings.Join(daySlots, " "))
			}
			return nil
		},
	}
}
