package schedulers

import (
	"cpu-scheduler-sim/internal/core"
)

// ADRR is adaptive dynamic round robin. Dispatch order is FIFO like
// RoundRobin, but the quantum is recomputed before every dispatch as the
// spread between the largest and smallest burst time in the ready queue.
type ADRR struct {
	base
	previousTimeQuantum int
	quanta              []int
}

func NewADRR(processes []*core.Process, opts Options) *ADRR {
	return &ADRR{
		base:                newBase(processes, opts, AlgorithmADRR),
		previousTimeQuantum: 1,
	}
}

func (a *ADRR) Name() string {
	return "ADRR (AI-Powered)"
}

func (a *ADRR) Run() []*core.Process {
	a.logger.Debug("running adrr")
	for a.running() {
		a.admit()
		if len(a.ready) == 0 {
			a.idle()
			continue
		}
		quantum := a.nextTimeQuantum()
		a.quanta = append(a.quanta, quantum)
		a.dispatch(a.popReady(), quantum)
	}
	return a.completed
}

// Quanta returns the quantum chosen for each dispatch, in dispatch order.
func (a *ADRR) Quanta() []int {
	return a.quanta
}

// nextTimeQuantum works on burst time, not remaining time. When every ready
// process has the same burst the spread is zero: a lone process runs to
// completion, several fall back to the previous quantum.
func (a *ADRR) nextTimeQuantum() int {
	minBurst, maxBurst := a.ready[0].BurstTime, a.ready[0].BurstTime
	for _, p := range a.ready[1:] {
		minBurst = min(minBurst, p.BurstTime)
		maxBurst = max(maxBurst, p.BurstTime)
	}

	quantum := maxBurst - minBurst
	if quantum == 0 {
		if len(a.ready) == 1 {
			quantum = a.ready[0].RemainingTime
		} else {
			quantum = a.previousTimeQuantum
		}
	}

	// a zero-burst process yields a zero quantum; keeping it would stall
	// later equal-burst fallbacks forever
	if quantum > 0 {
		a.previousTimeQuantum = quantum
	}
	return quantum
}
