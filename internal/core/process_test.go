package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProcess(t *testing.T) {
	p := NewProcess(3, 2, 7)

	assert.Equal(t, 3, p.PID)
	assert.Equal(t, 7, p.RemainingTime)
	assert.Equal(t, NotStarted, p.StartTime)
	assert.Empty(t, p.ExecutionSegments)
	assert.False(t, p.Done())
}

func TestExecuteCapsAtRemainingTime(t *testing.T) {
	p := NewProcess(1, 0, 5)

	assert.Equal(t, 4, p.Execute(0, 4))
	assert.Equal(t, 1, p.Execute(6, 4))
	assert.Equal(t, 0, p.Execute(7, 4))

	assert.True(t, p.Done())
	assert.Equal(t, 0, p.StartTime, "start time is fixed at first dispatch")
	require.Len(t, p.ExecutionSegments, 2)
	assert.Equal(t, ExecutionSegment{PID: 1, Start: 0, End: 4}, p.ExecutionSegments[0])
	assert.Equal(t, ExecutionSegment{PID: 1, Start: 6, End: 7}, p.ExecutionSegments[1])
}

func TestExecuteZeroBurst(t *testing.T) {
	p := NewProcess(1, 3, 0)

	assert.Equal(t, 0, p.Execute(3, 10))
	assert.True(t, p.Done())
	assert.Equal(t, 3, p.StartTime)
	assert.Empty(t, p.ExecutionSegments, "zero-length slices are not recorded")
}

func TestComplete(t *testing.T) {
	p := NewProcess(2, 1, 4)
	p.Execute(4, 4)
	p.Complete(8)

	assert.Equal(t, 8, p.CompletionTime)
	assert.Equal(t, 7, p.TurnaroundTime)
	assert.Equal(t, 3, p.WaitingTime)
	assert.Equal(t, 3, p.ResponseTime())
}

func TestResponseTimeBeforeDispatch(t *testing.T) {
	assert.Equal(t, 0, NewProcess(1, 5, 3).ResponseTime())
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "P12", Label(12))
	assert.Equal(t, 3, ExecutionSegment{Start: 4, End: 7}.Duration())
}
