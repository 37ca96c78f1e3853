package schedulers

import (
	"sort"

	"cpu-scheduler-sim/internal/core"
)

// ShortestJobFirst is non-preemptive: the shortest ready burst runs to
// completion, even if a shorter job arrives meanwhile.
type ShortestJobFirst struct {
	base
}

func NewShortestJobFirst(processes []*core.Process, opts Options) *ShortestJobFirst {
	return &ShortestJobFirst{base: newBase(processes, opts, AlgorithmSJF)}
}

func (s *ShortestJobFirst) Name() string {
	return "Shortest Job First (Non-Preemptive)"
}

func (s *ShortestJobFirst) Run() []*core.Process {
	s.logger.Debug("running sjf")
	for s.running() {
		s.admit()
		if len(s.ready) == 0 {
			s.idle()
			continue
		}
		sortShortestJob(s.ready)
		shortest := s.popReady()
		s.dispatch(shortest, shortest.BurstTime)
	}
	return s.completed
}

// ties keep arrival order
func sortShortestJob(processes []*core.Process) {
	sort.SliceStable(processes, func(i, j int) bool {
		return processes[i].BurstTime < processes[j].BurstTime
	})
}
