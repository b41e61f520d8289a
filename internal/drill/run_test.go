package drill

import (
	"testing"
	"time"

	"github.com/abhisek/mathdrill/internal/taskgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances by step on every call.
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func testRun(t *testing.T, total int) (*Run, *fakeClock) {
	t.Helper()
	gen, err := taskgen.NewAdd[Number](0, 10, taskgen.WithSeed(1))
	require.NoError(t, err)

	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), step: time.Second}
	r := NewRun(gen, total)
	r.clock = clock.Now
	r.Restart()
	return r, clock
}

func TestRun_ScoresAnswers(t *testing.T) {
	r, _ := testRun(t, 3)

	task, err := r.Next()
	require.NoError(t, err)
	correct, err := r.Answer(task.Answer())
	require.NoError(t, err)
	assert.True(t, correct)
	assert.True(t, r.LastCorrect)

	task, err = r.Next()
	require.NoError(t, err)
	correct, err = r.Answer(task.Answer() + 1)
	require.NoError(t, err)
	assert.False(t, correct)

	task, err = r.Next()
	require.NoError(t, err)
	_, err = r.Answer(task.Answer())
	require.NoError(t, err)

	assert.True(t, r.Done())
	sum := r.Summary()
	assert.Equal(t, 2, sum.Right)
	assert.Equal(t, 3, sum.Total)
	assert.Equal(t, 3, sum.Answered)
	assert.Equal(t, "You got 2/3", sum.Score())

	_, err = r.Next()
	assert.ErrorIs(t, err, ErrRunComplete)
}

func TestRun_SingleAnswerPerTask(t *testing.T) {
	r, _ := testRun(t, 2)

	_, err := r.Answer(1)
	assert.ErrorIs(t, err, ErrNoTask)

	task, err := r.Next()
	require.NoError(t, err)
	require.NotNil(t, r.Current())

	_, err = r.Next()
	assert.ErrorIs(t, err, ErrUnanswered)

	_, err = r.Answer(task.Answer())
	require.NoError(t, err)
	assert.Nil(t, r.Current())

	_, err = r.Answer(task.Answer())
	assert.ErrorIs(t, err, ErrAlreadyAnswered)
	assert.Equal(t, 1, r.Right)
}

func TestRun_ElapsedFreezesWhenDone(t *testing.T) {
	r, _ := testRun(t, 1)

	task, err := r.Next()
	require.NoError(t, err)
	_, err = r.Answer(task.Answer())
	require.NoError(t, err)

	first := r.Elapsed()
	assert.Equal(t, first, r.Elapsed())
	assert.Positive(t, first)
}

func TestRun_Restart(t *testing.T) {
	r, _ := testRun(t, 1)
	firstID := r.ID

	task, err := r.Next()
	require.NoError(t, err)
	_, err = r.Answer(task.Answer())
	require.NoError(t, err)
	require.True(t, r.Done())

	r.Restart()
	assert.NotEqual(t, firstID, r.ID)
	assert.False(t, r.Done())
	assert.Equal(t, 0, r.Served)
	assert.Equal(t, 0, r.Right)

	_, err = r.Next()
	assert.NoError(t, err)
}

func TestRun_SummaryMidway(t *testing.T) {
	r, _ := testRun(t, 5)

	task, err := r.Next()
	require.NoError(t, err)
	_, err = r.Answer(task.Answer())
	require.NoError(t, err)
	_, err = r.Next()
	require.NoError(t, err)

	sum := r.Summary()
	assert.Equal(t, 1, sum.Answered)
	assert.Equal(t, 1.0, sum.Accuracy())
	assert.False(t, r.Done())
}
