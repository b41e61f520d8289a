package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// ErrInputClosed is returned when the input ends while a prompt is waiting.
var ErrInputClosed = errors.New("input closed")

// Console runs prompts over a line-based reader and writer.
type Console struct {
	in  *bufio.Scanner
	out io.Writer

	bold  *color.Color
	right *color.Color
	wrong *color.Color
	dim   *color.Color
}

// New returns a Console reading lines from in and writing to out.
func New(in io.Reader, out io.Writer, noColor bool) *Console {
	c := &Console{
		in:    bufio.NewScanner(in),
		out:   out,
		bold:  color.New(color.Bold),
		right: color.New(color.FgGreen, color.Bold),
		wrong: color.New(color.FgRed, color.Bold),
		dim:   color.New(color.FgHiBlack),
	}
	if noColor {
		for _, col := range []*color.Color{c.bold, c.right, c.wrong, c.dim} {
			col.DisableColor()
		}
	}
	return c
}

// readLine prints prompt and returns the next line without surrounding
// whitespace.
func (c *Console) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		fmt.Fprintln(c.out)
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// Menu shows title and numbered choices until a valid number is entered.
// It returns the 1-based index of the chosen item.
func (c *Console) Menu(title string, choices []string) (int, error) {
	for {
		c.bold.Fprintln(c.out, title)
		fmt.Fprintln(c.out)
		for i, choice := range choices {
			fmt.Fprintf(c.out, "%d) %s\n", i+1, choice)
		}
		fmt.Fprintln(c.out)

		line, err := c.readLine("> ")
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil && n > 0 && n <= len(choices) {
			return n, nil
		}
		fmt.Fprintln(c.out, "Number not in valid range. Please try again.")
		fmt.Fprintln(c.out)
	}
}

// Confirm asks a yes/no question. An empty answer returns def.
func (c *Console) Confirm(question string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	for {
		line, err := c.readLine(fmt.Sprintf("%s %s ", question, hint))
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(c.out, "Please answer y or n.")
	}
}

// Int asks for an integer. With a default, an empty answer returns it.
func (c *Console) Int(prompt string, def *int64) (int64, error) {
	text := prompt + ": "
	if def != nil {
		text = fmt.Sprintf("%s [%d]: ", prompt, *def)
	}
	for {
		line, err := c.readLine(text)
		if err != nil {
			return 0, err
		}
		if line == "" && def != nil {
			return *def, nil
		}
		n, err := strconv.ParseInt(line, 10, 64)
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(c.out, "Please enter a whole number.")
	}
}

// PositiveInt asks for an integer greater than zero.
func (c *Console) PositiveInt(prompt string, def *int64) (int64, error) {
	for {
		n, err := c.Int(prompt, def)
		if err != nil {
			return 0, err
		}
		if n > 0 {
			return n, nil
		}
		fmt.Fprintln(c.out, "Error: Must be greater than zero.")
	}
}

// Pause waits for the enter key.
func (c *Console) Pause() error {
	_, err := c.readLine("(Press enter to continue) ")
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out)
	return nil
}

// Println writes a plain line.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}
