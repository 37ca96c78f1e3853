package core

import "fmt"

// NotStarted marks a process that has never been dispatched.
const NotStarted = -1

// ExecutionSegment is one contiguous slice of CPU time given to a process.
type ExecutionSegment struct {
	PID   int
	Start int
	End   int
}

func (s ExecutionSegment) Duration() int {
	return s.End - s.Start
}

// Process is the mutable simulation record of one task. Schedulers own it
// for the length of a run; nothing else writes to it.
type Process struct {
	PID         int
	ArrivalTime int
	BurstTime   int

	RemainingTime  int
	StartTime      int
	CompletionTime int

	TurnaroundTime int
	WaitingTime    int

	ExecutionSegments []ExecutionSegment
}

func NewProcess(pid, arrivalTime, burstTime int) *Process {
	return &Process{
		PID:               pid,
		ArrivalTime:       arrivalTime,
		BurstTime:         burstTime,
		RemainingTime:     burstTime,
		StartTime:         NotStarted,
		ExecutionSegments: make([]ExecutionSegment, 0),
	}
}

// Execute runs the process for up to slice units starting at now and
// returns how long it actually ran. The first call fixes StartTime.
func (p *Process) Execute(now, slice int) int {
	if p.StartTime == NotStarted {
		p.StartTime = now
	}
	exec := min(slice, p.RemainingTime)
	if exec <= 0 {
		return 0
	}
	p.ExecutionSegments = append(p.ExecutionSegments, ExecutionSegment{
		PID:   p.PID,
		Start: now,
		End:   now + exec,
	})
	p.RemainingTime -= exec
	return exec
}

func (p *Process) Done() bool {
	return p.RemainingTime == 0
}

// Complete fixes the completion time and derives turnaround and waiting time.
func (p *Process) Complete(now int) {
	p.CompletionTime = now
	p.TurnaroundTime = p.CompletionTime - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
}

// ResponseTime is the delay between arrival and first dispatch.
func (p *Process) ResponseTime() int {
	if p.StartTime == NotStarted {
		return 0
	}
	return p.StartTime - p.ArrivalTime
}

func (p *Process) String() string {
	return fmt.Sprintf("P%d(arrival=%d, burst=%d, remaining=%d)", p.PID, p.ArrivalTime, p.BurstTime, p.RemainingTime)
}

// Label is the display name used in Gantt charts.
func Label(pid int) string {
	return fmt.Sprintf("P%d", pid)
}
