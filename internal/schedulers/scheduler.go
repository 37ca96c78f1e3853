package schedulers

import (
	"fmt"
	"log/slog"
	"sort"

	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/logging"
)

const (
	AlgorithmADRR = "ADRR"
	AlgorithmRR   = "RR"
	AlgorithmSJF  = "SJF"

	DefaultTimeQuantum = 10
)

// Scheduler runs a policy to completion and returns the processes in the
// order they completed.
type Scheduler interface {
	Name() string
	Run() []*core.Process
}

// Options carries the policy parameters a Factory may need.
type Options struct {
	// TimeQuantum is only read by round robin. Zero means DefaultTimeQuantum.
	TimeQuantum int
	// SkipIdle jumps the clock straight to the next arrival instead of
	// stepping one unit at a time. Results are identical either way.
	SkipIdle bool
	Logger   *slog.Logger
}

type Factory func(processes []*core.Process, opts Options) (Scheduler, error)

var registry = map[string]Factory{
	AlgorithmADRR: func(processes []*core.Process, opts Options) (Scheduler, error) {
		return NewADRR(processes, opts), nil
	},
	AlgorithmRR: func(processes []*core.Process, opts Options) (Scheduler, error) {
		return NewRoundRobin(processes, opts)
	},
	AlgorithmSJF: func(processes []*core.Process, opts Options) (Scheduler, error) {
		return NewShortestJobFirst(processes, opts), nil
	},
}

// Algorithms lists the registered policy names.
func Algorithms() []string {
	return []string{AlgorithmADRR, AlgorithmRR, AlgorithmSJF}
}

func Lookup(name string) (Factory, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return factory, nil
}

// base holds the clock and queues every policy shares.
type base struct {
	time      int
	pending   []*core.Process // not yet arrived, ordered by arrival
	ready     []*core.Process
	completed []*core.Process
	skipIdle  bool
	logger    *slog.Logger
}

func newBase(processes []*core.Process, opts Options, name string) base {
	pending := make([]*core.Process, len(processes))
	copy(pending, processes)
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].ArrivalTime < pending[j].ArrivalTime
	})

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	return base{
		pending:   pending,
		ready:     make([]*core.Process, 0, len(processes)),
		completed: make([]*core.Process, 0, len(processes)),
		skipIdle:  opts.SkipIdle,
		logger:    logger.With("component", "scheduler", "algorithm", name),
	}
}

func (b *base) running() bool {
	return len(b.pending) > 0 || len(b.ready) > 0
}

// admit moves every process that has arrived by now to the ready queue tail.
func (b *base) admit() {
	for len(b.pending) > 0 && b.pending[0].ArrivalTime <= b.time {
		b.ready = append(b.ready, b.pending[0])
		b.pending = b.pending[1:]
	}
}

func (b *base) idle() {
	if b.skipIdle && len(b.pending) > 0 && b.pending[0].ArrivalTime > b.time {
		b.time = b.pending[0].ArrivalTime
		return
	}
	b.time++
}

func (b *base) popReady() *core.Process {
	p := b.ready[0]
	b.ready = b.ready[1:]
	return p
}

// dispatch runs p for up to quantum units. Arrivals during the slice are
// queued before p goes back to the tail.
func (b *base) dispatch(p *core.Process, quantum int) {
	start := b.time
	exec := p.Execute(b.time, quantum)
	b.time += exec
	b.logger.Debug("dispatch", "pid", p.PID, "start", start, "exec", exec, "quantum", quantum)

	b.admit()

	if p.Done() {
		p.Complete(b.time)
		b.completed = append(b.completed, p)
		return
	}
	b.ready = append(b.ready, p)
}
