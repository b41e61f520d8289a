package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/console"
	"github.com/abhisek/mathdrill/internal/drill"
	"github.com/abhisek/mathdrill/internal/taskgen"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print generated tasks with their answers",
	Long: `Generate tasks for the chosen operations and print them as a table.

This is a stateless developer tool for checking what a drill configuration
produces. Nothing is asked.`,
	Example: `  mathdrill sample --add 10 --count 5
  mathdrill sample --sub 5 --negative --seed 1`,
	RunE: runSample,
}

func init() {
	addOperationFlags(sampleCmd)
}

func runSample(cmd *cobra.Command, args []string) error {
	plan, _, err := resolvePlan(cmd)
	if err != nil {
		return err
	}

	gen, err := plan.Generator()
	if err != nil {
		return fmt.Errorf("build generator: %w", err)
	}

	tasks := make([]taskgen.Task[drill.Number], plan.Count)
	for i := range tasks {
		tasks[i] = gen.Next()
	}
	return console.RenderTasks(cmd.OutOrStdout(), tasks)
}
