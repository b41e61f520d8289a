package console

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/abhisek/mathdrill/internal/drill"
	"github.com/abhisek/mathdrill/internal/taskgen"
)

// RenderTasks writes tasks and their answers as a table.
func RenderTasks(w io.Writer, tasks []taskgen.Task[drill.Number]) error {
	table := tablewriter.NewWriter(w)
	table.Header("#", "Task", "Answer")
	for i, task := range tasks {
		if err := table.Append(
			fmt.Sprintf("%d", i+1),
			task.Text,
			taskgen.FormatNumber(task.Answer()),
		); err != nil {
			return fmt.Errorf("append row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}
