package drill

import (
	"errors"
	"time"

	"github.com/abhisek/mathdrill/internal/taskgen"
	"github.com/google/uuid"
)

var (
	// ErrRunComplete is returned by Next once every task has been served.
	ErrRunComplete = errors.New("drill complete")

	// ErrUnanswered is returned by Next while the current task is open.
	ErrUnanswered = errors.New("current task has not been answered")

	// ErrNoTask is returned by Answer before the first Next.
	ErrNoTask = errors.New("no task to answer")

	// ErrAlreadyAnswered is returned by Answer for a task that was checked.
	ErrAlreadyAnswered = errors.New("task already answered")
)

// Run tracks one pass through a drill: the tasks served, the score and the
// time taken. Each task accepts exactly one answer.
type Run struct {
	// ID identifies this pass. It changes on Restart.
	ID string

	// Total is the number of tasks in the pass.
	Total int

	// Served is the number of tasks handed out so far.
	Served int

	// Right is the number of correct answers so far.
	Right int

	// LastCorrect records whether the most recent answer was right.
	LastCorrect bool

	// StartTime is when the pass began.
	StartTime time.Time

	gen      taskgen.Generator[Number]
	current  *taskgen.Task[Number]
	answered bool
	finished time.Time
	clock    func() time.Time
}

// NewRun starts a pass of total tasks drawn from gen.
func NewRun(gen taskgen.Generator[Number], total int) *Run {
	r := &Run{gen: gen, Total: total, clock: time.Now}
	r.Restart()
	return r
}

// Restart begins a new pass with the same generator and task count.
func (r *Run) Restart() {
	r.ID = uuid.New().String()
	r.Served = 0
	r.Right = 0
	r.LastCorrect = false
	r.current = nil
	r.answered = false
	r.finished = time.Time{}
	r.StartTime = r.clock()
}

// Next serves the next task.
func (r *Run) Next() (taskgen.Task[Number], error) {
	if r.current != nil && !r.answered {
		return taskgen.Task[Number]{}, ErrUnanswered
	}
	if r.Served >= r.Total {
		return taskgen.Task[Number]{}, ErrRunComplete
	}

	task := r.gen.Next()
	r.current = &task
	r.answered = false
	r.Served++
	return task, nil
}

// Current returns the task being answered, or nil between tasks.
func (r *Run) Current() *taskgen.Task[Number] {
	if r.current == nil || r.answered {
		return nil
	}
	return r.current
}

// Answer checks answer against the current task and records the result.
func (r *Run) Answer(answer Number) (bool, error) {
	if r.current == nil {
		return false, ErrNoTask
	}
	if r.answered {
		return false, ErrAlreadyAnswered
	}

	correct := r.current.Check(answer)
	r.answered = true
	r.LastCorrect = correct
	if correct {
		r.Right++
	}
	if r.Served >= r.Total {
		r.finished = r.clock()
	}
	return correct, nil
}

// Done reports whether every task has been answered.
func (r *Run) Done() bool {
	return !r.finished.IsZero()
}

// Elapsed returns the time taken so far, frozen once the pass is done.
func (r *Run) Elapsed() time.Duration {
	if r.Done() {
		return r.finished.Sub(r.StartTime)
	}
	return r.clock().Sub(r.StartTime)
}

// Summary reports the pass result.
func (r *Run) Summary() Summary {
	return Summary{
		RunID:    r.ID,
		Right:    r.Right,
		Total:    r.Total,
		Answered: r.answeredCount(),
		Duration: r.Elapsed(),
	}
}

func (r *Run) answeredCount() int {
	if r.current != nil && !r.answered {
		return r.Served - 1
	}
	return r.Served
}
