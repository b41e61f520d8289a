package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/app"
)

// runApp resolves the drill defaults and launches the TUI.
func runApp(cmd *cobra.Command) error {
	plan, _, err := resolvePlan(cmd)
	if err != nil {
		return err
	}
	return app.Run(app.Options{Defaults: plan})
}
