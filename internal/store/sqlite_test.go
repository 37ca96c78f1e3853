package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler-sim/internal/logging"
	"cpu-scheduler-sim/internal/requests"
	"cpu-scheduler-sim/internal/responses"
)

func testStore(t *testing.T) *SQLiteStore {
	t.Helper()
	st, err := NewSQLiteStore(":memory:", logging.Discard())
	require.NoError(t, err)
	require.NoError(t, st.Migrate(context.Background()))
	t.Cleanup(func() { st.Close() })
	return st
}

func sampleRecord(id string, createdAt time.Time) *Record {
	burst := 5
	return &Record{
		ID:        id,
		CreatedAt: createdAt,
		Request: requests.ScheduleRequests{
			Algorithms: []string{"SJF"},
			Jobs:       []requests.Job{{ProcessId: 1, BurstTime: &burst}},
		},
		Response: responses.ScheduleResponse{
			Status:    "success",
			RequestID: id,
			Results: []responses.SimulationResult{{
				Algorithm:             "Shortest Job First (Non-Preemptive)",
				AverageTurnAroundTime: 5,
				GanttChart:            []responses.GanttSegment{{PID: "P1", Start: 0, End: 5}},
			}},
			Predictions: []int{5},
		},
	}
}

func TestSaveAndGet(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	want := sampleRecord("sim-1", now)
	require.NoError(t, st.Save(ctx, want))

	got, err := st.Get(ctx, "sim-1")
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, want.Request, got.Request)
	assert.Equal(t, want.Response, got.Response)
}

func TestGetMissing(t *testing.T) {
	_, err := testStore(t).Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveDuplicateID(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()
	require.NoError(t, st.Save(ctx, sampleRecord("dup", time.Now())))
	assert.Error(t, st.Save(ctx, sampleRecord("dup", time.Now())))
}

func TestListNewestFirst(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, st.Save(ctx, sampleRecord(fmt.Sprintf("sim-%d", i), base.Add(time.Duration(i)*time.Second))))
	}

	records, err := st.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "sim-4", records[0].ID)
	assert.Equal(t, "sim-3", records[1].ID)
	assert.Equal(t, "sim-2", records[2].ID)

	all, err := st.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}
