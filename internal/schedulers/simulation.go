package schedulers

import (
	"fmt"
	"sync"

	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/logging"
	"cpu-scheduler-sim/internal/responses"
)

// Simulate runs the policy built by factory on fresh copies of processes
// and aggregates the outcome. The caller's processes are never touched, so
// concurrent calls on the same slice are safe.
func Simulate(factory Factory, processes []*core.Process, opts Options) (responses.SimulationResult, error) {
	if err := ValidateProcesses(processes); err != nil {
		return responses.SimulationResult{}, err
	}

	scheduler, err := factory(freshCopies(processes), opts)
	if err != nil {
		return responses.SimulationResult{}, err
	}

	completed := scheduler.Run()
	if len(completed) != len(processes) {
		return responses.SimulationResult{}, fmt.Errorf("%s completed %d of %d processes", scheduler.Name(), len(completed), len(processes))
	}

	result := generateResult(scheduler.Name(), completed)

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	logger.Info("simulation finished",
		"algorithm", result.Algorithm,
		"processes", len(completed),
		"average_waiting_time", result.AverageWaitingTime,
		"average_turnaround_time", result.AverageTurnAroundTime,
	)
	return result, nil
}

// RunSimulation is Simulate with the policy looked up by name.
func RunSimulation(algorithm string, processes []*core.Process, opts Options) (responses.SimulationResult, error) {
	factory, err := Lookup(algorithm)
	if err != nil {
		return responses.SimulationResult{}, err
	}
	return Simulate(factory, processes, opts)
}

// RunAll simulates every requested policy concurrently and returns the
// results in request order. Names are checked before anything runs;
// repeated names run once.
func RunAll(algorithms []string, processes []*core.Process, opts Options) ([]responses.SimulationResult, error) {
	names := make([]string, 0, len(algorithms))
	seen := make(map[string]bool, len(algorithms))
	for _, name := range algorithms {
		if _, err := Lookup(name); err != nil {
			return nil, err
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	if err := ValidateProcesses(processes); err != nil {
		return nil, err
	}

	results := make([]responses.SimulationResult, len(names))
	errs := make([]error, len(names))

	var wg sync.WaitGroup
	wg.Add(len(names))
	for i, name := range names {
		go func(i int, name string) {
			defer wg.Done()
			results[i], errs[i] = RunSimulation(name, processes, opts)
		}(i, name)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// ValidateProcesses rejects input that cannot be simulated.
func ValidateProcesses(processes []*core.Process) error {
	if len(processes) == 0 {
		return ErrNoProcesses
	}
	seen := make(map[int]bool, len(processes))
	for i, p := range processes {
		switch {
		case p == nil:
			return fmt.Errorf("%w: entry %d is nil", ErrInvalidProcess, i)
		case p.PID <= 0:
			return fmt.Errorf("%w: pid must be positive, got %d", ErrInvalidProcess, p.PID)
		case p.ArrivalTime < 0:
			return fmt.Errorf("%w: pid %d has negative arrival time %d", ErrInvalidProcess, p.PID, p.ArrivalTime)
		case p.BurstTime < 0:
			return fmt.Errorf("%w: pid %d has negative burst time %d", ErrInvalidProcess, p.PID, p.BurstTime)
		case seen[p.PID]:
			return fmt.Errorf("%w: %d", ErrDuplicatePID, p.PID)
		}
		seen[p.PID] = true
	}
	return nil
}

// freshCopies rebuilds each process from its inputs only, so leftover
// state from an earlier run cannot leak in.
func freshCopies(processes []*core.Process) []*core.Process {
	copies := make([]*core.Process, len(processes))
	for i, p := range processes {
		copies[i] = core.NewProcess(p.PID, p.ArrivalTime, p.BurstTime)
	}
	return copies
}
