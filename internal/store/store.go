package store

import (
	"context"
	"errors"
	"time"

	"cpu-scheduler-sim/internal/requests"
	"cpu-scheduler-sim/internal/responses"
)

var ErrNotFound = errors.New("simulation not found")

// Record is one served simulation request and its response.
type Record struct {
	ID        string                     `json:"id"`
	CreatedAt time.Time                  `json:"created_at"`
	Request   requests.ScheduleRequests  `json:"request"`
	Response  responses.ScheduleResponse `json:"response"`
}

// Store keeps the history of simulation runs.
type Store interface {
	Save(ctx context.Context, rec *Record) error
	Get(ctx context.Context, id string) (*Record, error)
	List(ctx context.Context, limit int) ([]*Record, error)

	Close() error
	Migrate(ctx context.Context) error
}
