package predictor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler-sim/internal/requests"
)

func intPtr(v int) *int { return &v }

func TestFeaturesFromJob(t *testing.T) {
	f := FeaturesFromJob(requests.Job{
		ProcessId: 4, ArrivalTime: 9, UserID: 11, GroupID: 3, ReqTime: 120, ReqMemory: 2048,
	})
	assert.Equal(t, Features{
		JobID: 4, SubmitTime: 9, WaitTime: 0, UsedMemory: 2048,
		ReqTime: 120, UserID: 11, GroupID: 3, QueueID: 3,
	}, f)
}

func TestLinearModelPredict(t *testing.T) {
	model, err := NewLinearModel(0.4, map[string]float64{"ReqTime": 1, "queueid": 2})
	require.NoError(t, err)

	got, err := model.Predict(Features{ReqTime: 2.5, QueueID: 1})
	require.NoError(t, err)
	assert.Equal(t, 4, got, "0.4 + 2.5 + 2 truncates to 4")
}

func TestLinearModelRejectsNegativeEstimate(t *testing.T) {
	model, err := NewLinearModel(-10, map[string]float64{"ReqTime": 1})
	require.NoError(t, err)

	_, err = model.Predict(Features{ReqTime: 3})
	assert.ErrorIs(t, err, ErrPrediction)
}

func TestNewLinearModelUnknownFeature(t *testing.T) {
	_, err := NewLinearModel(0, map[string]float64{"CPUCount": 1})
	assert.ErrorContains(t, err, "CPUCount")
}

func TestResolveBursts(t *testing.T) {
	model, err := NewLinearModel(1, map[string]float64{"ReqTime": 0.5})
	require.NoError(t, err)

	jobs := []requests.Job{
		{ProcessId: 1, BurstTime: intPtr(7)},
		{ProcessId: 2, ReqTime: 10},
		{ProcessId: 3, BurstTime: intPtr(0), ReqTime: 99},
	}
	bursts, err := ResolveBursts(model, jobs)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 6, 0}, bursts)
}

func TestResolveBurstsWithoutPredictor(t *testing.T) {
	bursts, err := ResolveBursts(nil, []requests.Job{{ProcessId: 1, BurstTime: intPtr(3)}})
	require.NoError(t, err)
	assert.Equal(t, []int{3}, bursts)

	_, err = ResolveBursts(nil, []requests.Job{{ProcessId: 2}})
	assert.ErrorIs(t, err, ErrPrediction)
}
