package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lmoretti/vaxweek/pkg/core/services"
)

// PlanCmd creates the plan command.
func PlanCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute the week allocation plan",
		Long: `Allocate every registered person to hub/day slots for the week and
print the plan report as JSON. Days are processed Monday to Sunday, hubs
in name order, oldest age brackets first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			outPath, _ := cmd.Flags().GetString("out")

			result, err := services.BuildPlan(app.Session, app.Logger)
			if err != nil {
				return fmt.Errorf("failed to build plan: %w", err)
			}

			out := os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer f.Close()
				out = f
			}

			if err := services.WriteReport(out, result); err != nil {
				return err
			}

			if outPath != "" {
				fmt.Printf("Plan %s written to %s\n", result.PlanID, outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringP("out", "o", "", "Write the JSON report to a file instead of stdout")

	return cmd
}
