package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler-sim/internal/core"
)

func TestRoundRobinTextbook(t *testing.T) {
	input := textbook()
	rr, err := NewRoundRobin(freshCopies(input), Options{TimeQuantum: 4})
	require.NoError(t, err)
	assert.Equal(t, "Round Robin (TQ=4)", rr.Name())

	completed := rr.Run()
	checkSchedule(t, input, completed)
	assert.Equal(t, []int{2, 1, 4, 3}, completionOrder(completed))

	byPID := map[int]*core.Process{}
	for _, p := range completed {
		byPID[p.PID] = p
	}
	assert.Equal(t, [][2]int{{0, 4}, {16, 20}}, segments(byPID[1]))
	assert.Equal(t, [][2]int{{4, 8}}, segments(byPID[2]))
	assert.Equal(t, [][2]int{{8, 12}, {20, 24}, {25, 26}}, segments(byPID[3]))
	assert.Equal(t, [][2]int{{12, 16}, {24, 25}}, segments(byPID[4]))
}

func TestRoundRobinArrivalQueuedBeforePreempted(t *testing.T) {
	// P2 arrives exactly when P1's slice ends and must run before P1 resumes.
	input := []*core.Process{
		core.NewProcess(1, 0, 4),
		core.NewProcess(2, 2, 2),
	}
	rr, err := NewRoundRobin(freshCopies(input), Options{TimeQuantum: 2})
	require.NoError(t, err)

	completed := rr.Run()
	checkSchedule(t, input, completed)
	assert.Equal(t, []int{2, 1}, completionOrder(completed))
	assert.Equal(t, [][2]int{{2, 4}}, segments(completed[0]))
	assert.Equal(t, [][2]int{{0, 2}, {4, 6}}, segments(completed[1]))
}

func TestRoundRobinSegmentsNeverExceedQuantum(t *testing.T) {
	for _, quantum := range []int{1, 2, 5, 13} {
		input := randomProcesses(int64(quantum), 25)
		rr, err := NewRoundRobin(freshCopies(input), Options{TimeQuantum: quantum})
		require.NoError(t, err)
		for _, p := range rr.Run() {
			for _, s := range p.ExecutionSegments {
				assert.LessOrEqual(t, s.Duration(), quantum)
			}
		}
	}
}

func TestRoundRobinTiesKeepInputOrder(t *testing.T) {
	input := []*core.Process{
		core.NewProcess(7, 0, 1),
		core.NewProcess(3, 0, 1),
		core.NewProcess(5, 0, 1),
	}
	rr, err := NewRoundRobin(freshCopies(input), Options{TimeQuantum: 4})
	require.NoError(t, err)
	assert.Equal(t, []int{7, 3, 5}, completionOrder(rr.Run()))
}

func TestRoundRobinIdleGap(t *testing.T) {
	input := []*core.Process{core.NewProcess(1, 3, 2)}
	rr, err := NewRoundRobin(freshCopies(input), Options{TimeQuantum: 4})
	require.NoError(t, err)

	completed := rr.Run()
	require.Len(t, completed, 1)
	assert.Equal(t, 3, completed[0].StartTime)
	assert.Equal(t, 5, completed[0].CompletionTime)
	assert.Zero(t, completed[0].WaitingTime)
}

func TestRoundRobinTimeQuantum(t *testing.T) {
	rr, err := NewRoundRobin(textbook(), Options{})
	require.NoError(t, err)
	assert.Equal(t, "Round Robin (TQ=10)", rr.Name(), "zero falls back to the default")

	_, err = NewRoundRobin(textbook(), Options{TimeQuantum: -2})
	assert.ErrorIs(t, err, ErrInvalidTimeQuantum)
}
