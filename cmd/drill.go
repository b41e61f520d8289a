package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/console"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Run drills in plain line mode",
	Long: `Ask tasks one per line and print Right!/Wrong after each answer.

With --add, --sub, --mul or --preset the drill starts right away. Without them
a menu walks through choosing operations.`,
	Example: `  mathdrill drill
  mathdrill drill --add 20 --sub 20 --count 15
  mathdrill drill --mul 9 --negative --seed 42`,
	RunE: runDrill,
}

func init() {
	addOperationFlags(drillCmd)
	drillCmd.Flags().Bool("no-color", false, "Disable colored output (overrides MATHDRILL_NO_COLOR)")
}

func runDrill(cmd *cobra.Command, args []string) error {
	plan, cfg, err := resolvePlan(cmd)
	if err != nil {
		return err
	}

	noColor := cfg.NoColor
	if cmd.Flags().Changed("no-color") {
		noColor, _ = cmd.Flags().GetBool("no-color")
	}
	c := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), noColor)

	if len(plan.Operations) == 0 {
		err = c.MainMenu(plan)
	} else {
		err = c.Loop(plan)
	}
	if console.IsInputClosed(err) {
		fmt.Fprintln(os.Stderr, "Input closed, exiting.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("drill: %w", err)
	}
	return nil
}
