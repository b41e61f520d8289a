package console

import (
	"errors"
	"fmt"

	"github.com/abhisek/mathdrill/internal/drill"
	"github.com/abhisek/mathdrill/internal/taskgen"
)

// RunDrill asks every task of run in turn and prints the score when done.
func (c *Console) RunDrill(run *drill.Run) (drill.Summary, error) {
	for !run.Done() {
		task, err := run.Next()
		if err != nil {
			return run.Summary(), fmt.Errorf("next task: %w", err)
		}

		answer, err := c.askAnswer(task.Text)
		if err != nil {
			return run.Summary(), err
		}

		correct, err := run.Answer(answer)
		if err != nil {
			return run.Summary(), fmt.Errorf("check answer: %w", err)
		}
		if correct {
			c.right.Fprintln(c.out, "Right!")
		} else {
			c.wrong.Fprint(c.out, "Wrong")
			c.dim.Fprintf(c.out, " (%s = %s)\n", task.Text, taskgen.FormatNumber(task.Answer()))
		}
	}

	sum := run.Summary()
	fmt.Fprintln(c.out)
	c.bold.Fprintln(c.out, sum.Score())
	fmt.Fprintln(c.out, sum.TimeTaken())
	return sum, nil
}

// askAnswer prompts with the task text until the reply parses as a number.
func (c *Console) askAnswer(text string) (drill.Number, error) {
	for {
		line, err := c.readLine(text + " = ")
		if err != nil {
			return 0, err
		}
		n, err := taskgen.ParseNumber[drill.Number](line)
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(c.out, "Please enter a whole number.")
	}
}

// Loop runs drills from plan until the user goes back. Each pass reuses the
// same generator.
func (c *Console) Loop(plan drill.Plan) error {
	gen, err := plan.Generator()
	if err != nil {
		return err
	}
	run := drill.NewRun(gen, plan.Count)
	for {
		if _, err := c.RunDrill(run); err != nil {
			return err
		}
		if err := c.Pause(); err != nil {
			return err
		}
		choice, err := c.Menu("What do you want to do now", []string{"Run the drill again", "Back to main menu"})
		if err != nil {
			return err
		}
		if choice == 2 {
			return nil
		}
		run.Restart()
	}
}

// Setup walks through choosing operations and the task count. It returns
// false when the user backs out to the main menu.
func (c *Console) Setup(defaults drill.Plan) (drill.Plan, bool, error) {
	plan := defaults
	plan.Operations = nil

	for {
		title := fmt.Sprintf("Setup tasks.\nYou have selected %d mathematical operations.", len(plan.Operations))
		for _, spec := range plan.Operations {
			title += "\n  - " + spec.String()
		}

		choice, err := c.Menu(title, []string{"Add operation", "Done", "Back to main menu"})
		if err != nil {
			return plan, false, err
		}

		switch choice {
		case 1:
			spec, ok, err := c.chooseOperation()
			if err != nil {
				return plan, false, err
			}
			if ok {
				plan.Operations = append(plan.Operations, spec)
			}
		case 2:
			if len(plan.Operations) == 0 {
				c.Println("You need to select at least one type of mathematical operation.")
				c.Println()
				continue
			}
			def := int64(defaults.Count)
			if def <= 0 {
				def = drill.DefaultTaskCount
			}
			count, err := c.PositiveInt("Number of tasks", &def)
			if err != nil {
				return plan, false, err
			}
			plan.Count = int(count)
			return plan, true, nil
		case 3:
			return plan, false, nil
		}
	}
}

// chooseOperation asks for one operation and its bounds.
func (c *Console) chooseOperation() (drill.OperationSpec, bool, error) {
	negative, err := c.Confirm("Do you want to include negative numbers?", false)
	if err != nil {
		return drill.OperationSpec{}, false, err
	}

	labels := make([]string, 0, len(drill.Operations)+1)
	for _, op := range drill.Operations {
		labels = append(labels, op.Label())
	}
	labels = append(labels, "Cancel")

	choice, err := c.Menu("Select mathematical operation", labels)
	if err != nil {
		return drill.OperationSpec{}, false, err
	}
	if choice > len(drill.Operations) {
		return drill.OperationSpec{}, false, nil
	}
	op := drill.Operations[choice-1]

	for {
		limit, err := c.PositiveInt(op.MaxPrompt(), nil)
		if err != nil {
			return drill.OperationSpec{}, false, err
		}
		spec := drill.OperationSpec{Op: op, Max: limit, Negative: negative}
		if err := spec.Validate(); err != nil {
			fmt.Fprintf(c.out, "Error: %v\n", err)
			continue
		}
		return spec, true, nil
	}
}

// MainMenu is the line-mode entry point: set up and run drills until quit.
func (c *Console) MainMenu(defaults drill.Plan) error {
	c.Println("Hello and Welcome!")
	c.Println()
	for {
		choice, err := c.Menu("Main menu", []string{"New drill", "Quit"})
		if err != nil {
			return err
		}
		if choice == 2 {
			break
		}

		plan, ok, err := c.Setup(defaults)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := c.Loop(plan); err != nil {
			return err
		}
	}
	c.Println("Goodbye!")
	return nil
}

// IsInputClosed reports whether err means the user closed the input.
func IsInputClosed(err error) bool {
	return errors.Is(err, ErrInputClosed)
}
