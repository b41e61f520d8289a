package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var rootCmd = &cobra.Command{
	Use:   "mathdrill",
	Short: "Arithmetic drills in the terminal",
	Long: `Mathdrill generates random addition, subtraction and multiplication tasks
and checks your answers.

Run without a subcommand for the full-screen app, or use "mathdrill drill" for
the plain line-based version.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addPlanFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(versionCmd)
}

// addPlanFlags registers the flags shared by every command that builds a
// drill plan.
func addPlanFlags(flags *pflag.FlagSet) {
	flags.Int("count", 0, "Number of tasks per drill (overrides MATHDRILL_COUNT)")
	flags.Uint64("seed", 0, "Seed for reproducible drills (overrides MATHDRILL_SEED)")
	flags.Int("max-attempts", 0, "Rejection cap per task (overrides MATHDRILL_MAX_ATTEMPTS)")
	flags.String("preset", "", "Path to a JSON drill preset")
}
