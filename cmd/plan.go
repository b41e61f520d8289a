package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/config"
	"github.com/abhisek/mathdrill/internal/drill"
	"github.com/abhisek/mathdrill/internal/preset"
)

// addOperationFlags registers the flags that pick operations directly.
func addOperationFlags(cmd *cobra.Command) {
	cmd.Flags().Int64("add", 0, "Add addition tasks with results up to N")
	cmd.Flags().Int64("sub", 0, "Add subtraction tasks with results up to N")
	cmd.Flags().Int64("mul", 0, "Add multiplication tasks with factors up to N")
	cmd.Flags().Bool("negative", false, "Include negative numbers in the operations above")
}

// resolvePlan builds the drill plan from, in increasing priority, the
// environment, the --preset file and the command-line flags.
func resolvePlan(cmd *cobra.Command) (drill.Plan, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return drill.Plan{}, cfg, fmt.Errorf("load config: %w", err)
	}
	plan := cfg.Plan()

	if path, _ := cmd.Flags().GetString("preset"); path != "" {
		p, err := preset.Load(path)
		if err != nil {
			return drill.Plan{}, cfg, err
		}
		if plan, err = p.Apply(plan); err != nil {
			return drill.Plan{}, cfg, err
		}
	}

	if cmd.Flags().Changed("count") {
		plan.Count, _ = cmd.Flags().GetInt("count")
	}
	if cmd.Flags().Changed("seed") {
		plan.Seed, _ = cmd.Flags().GetUint64("seed")
	}
	if cmd.Flags().Changed("max-attempts") {
		plan.MaxAttempts, _ = cmd.Flags().GetInt("max-attempts")
	}

	ops, err := operationsFromFlags(cmd)
	if err != nil {
		return drill.Plan{}, cfg, err
	}
	if len(ops) > 0 {
		plan.Operations = ops
	}
	return plan, cfg, nil
}

// operationsFromFlags returns the operations named by --add, --sub and --mul,
// in that order. Commands without those flags get none.
func operationsFromFlags(cmd *cobra.Command) ([]drill.OperationSpec, error) {
	if cmd.Flags().Lookup("add") == nil {
		return nil, nil
	}
	negative, _ := cmd.Flags().GetBool("negative")

	var ops []drill.OperationSpec
	for _, op := range drill.Operations {
		if !cmd.Flags().Changed(string(op)) {
			continue
		}
		limit, _ := cmd.Flags().GetInt64(string(op))
		spec := drill.OperationSpec{Op: op, Max: limit, Negative: negative}
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("--%s: %w", op, err)
		}
		ops = append(ops, spec)
	}
	return ops, nil
}
