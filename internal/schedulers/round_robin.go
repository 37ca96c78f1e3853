package schedulers

import (
	"fmt"

	"cpu-scheduler-sim/internal/core"
)

// RoundRobin is preemptive FIFO scheduling with a fixed time quantum.
type RoundRobin struct {
	base
	timeQuantum int
}

func NewRoundRobin(processes []*core.Process, opts Options) (*RoundRobin, error) {
	timeQuantum := opts.TimeQuantum
	if timeQuantum == 0 {
		timeQuantum = DefaultTimeQuantum
	}
	if timeQuantum < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTimeQuantum, timeQuantum)
	}
	return &RoundRobin{
		base:        newBase(processes, opts, AlgorithmRR),
		timeQuantum: timeQuantum,
	}, nil
}

func (r *RoundRobin) Name() string {
	return fmt.Sprintf("Round Robin (TQ=%d)", r.timeQuantum)
}

func (r *RoundRobin) Run() []*core.Process {
	r.logger.Debug("running round robin", "time_quantum", r.timeQuantum)
	for r.running() {
		r.admit()
		if len(r.ready) == 0 {
			r.idle()
			continue
		}
		r.dispatch(r.popReady(), r.timeQuantum)
	}
	return r.completed
}
