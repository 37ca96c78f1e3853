package schedulers

import (
	"sort"

	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/responses"
	"cpu-scheduler-sim/internal/util"
)

func generateResult(name string, completed []*core.Process) responses.SimulationResult {
	processDetails := make([]responses.ProcessResponse, 0, len(completed))
	var busyTime, totalTime int
	for _, process := range completed {
		processDetails = append(processDetails, generateProcessDetails(process))
		busyTime += process.BurstTime
		totalTime = max(totalTime, process.CompletionTime)
	}

	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(processDetails)

	return responses.SimulationResult{
		Algorithm:             name,
		AverageWaitingTime:    averageWaitingTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		AverageResponseTime:   averageResponseTime,
		TotalTime:             totalTime,
		IdleTime:              totalTime - busyTime,
		CpuUtilization:        util.Ratio(float64(busyTime), float64(totalTime)),
		CpuThroughput:         util.Ratio(float64(len(completed)), float64(totalTime)),
		GanttChart:            generateGanttChart(completed),
		Details:               processDetails,
	}
}

func generateProcessDetails(process *core.Process) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      process.PID,
		ArrivalTime:    process.ArrivalTime,
		BurstTime:      process.BurstTime,
		StartTime:      process.StartTime,
		CompletionTime: process.CompletionTime,
		ResponseTime:   process.ResponseTime(),
		TurnAroundTime: process.TurnaroundTime,
		WaitingTime:    process.WaitingTime,
	}
}

// generateGanttChart merges every segment in completion order, then sorts
// by start. The sort is stable so equal starts keep that order.
func generateGanttChart(completed []*core.Process) []responses.GanttSegment {
	segments := make([]core.ExecutionSegment, 0, len(completed))
	for _, process := range completed {
		segments = append(segments, process.ExecutionSegments...)
	}
	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].Start < segments[j].Start
	})

	chart := make([]responses.GanttSegment, 0, len(segments))
	for _, s := range segments {
		chart = append(chart, responses.GanttSegment{
			PID:   core.Label(s.PID),
			Start: s.Start,
			End:   s.End,
		})
	}
	return chart
}
