package commands

import (
	"github.com/spf13/cobra"

	"github.com/lmoretti/vaxweek/internal/server"
)

// ServeCmd creates the serve command.
func ServeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve capacity, plan and statistics over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			if addr == "" {
				addr = app.Cfg.ListenAddr
			}
			if addr == "" {
				addr = ":8080"
			}

			srv := server.New(app.Session, app.Logger)
			return srv.ListenAndServe(addr)
		},
	}

	cmd.Flags().StringP("addr", "a", "", "Listen address (default from config, else :8080)")

	return cmd
}
