package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// PeopleCmd creates the people command.
func PeopleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "people",
		Short: "Show registered people per age interval",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, _ := cmd.Flags().GetBool("list")

			fmt.Printf("Registered people: %d\n", app.Session.Registry.CountPeople())

			for _, iv := range app.Session.Partition.Intervals() {
				ssns := app.Session.Registry.PeopleInInterval(iv)
				fmt.Printf("%-10s %d\n", iv.Label(), len(ssns))
				if list && len(ssns) > 0 {
					fmt.Printf("  %s\n", strings.Join(ssns, " "))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolP("list", "l", false, "List the SSNs in each interval")

	return cmd
}
