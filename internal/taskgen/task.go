package taskgen

import "fmt"

// Operator is the arithmetic operation of a task.
type Operator string

const (
	OpAdd Operator = "+"
	OpSub Operator = "-"
	OpMul Operator = "*"
)

// Task is one generated problem.
type Task[T Number] struct {
	// Text is the problem statement, e.g. "3 + 4".
	Text string

	// Op is the operation shown in Text.
	Op Operator

	// Left and Right are the operands shown in Text.
	Left  T
	Right T

	answer T
}

func newTask[T Number](op Operator, left, right, answer T) Task[T] {
	return Task[T]{
		Text:   fmt.Sprintf("%s %s %s", FormatNumber(left), op, FormatNumber(right)),
		Op:     op,
		Left:   left,
		Right:  right,
		answer: answer,
	}
}

// Check reports whether answer equals the task's result.
func (t Task[T]) Check(answer T) bool {
	return answer == t.answer
}

// Answer returns the correct result.
func (t Task[T]) Answer() T {
	return t.answer
}
