package responses

type GanttSegment struct {
	PID   string `json:"pid" yaml:"pid"`
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
}

type ProcessResponse struct {
	ProcessId      int `json:"pid" yaml:"pid"`
	ArrivalTime    int `json:"arrival_time" yaml:"arrival_time"`
	BurstTime      int `json:"burst_time" yaml:"burst_time"`
	StartTime      int `json:"start_time" yaml:"start_time"`
	CompletionTime int `json:"completion_time" yaml:"completion_time"`
	ResponseTime   int `json:"response_time" yaml:"response_time"`
	TurnAroundTime int `json:"turnaround_time" yaml:"turnaround_time"`
	WaitingTime    int `json:"waiting_time" yaml:"waiting_time"`
}

// SimulationResult is the outcome of running one policy.
type SimulationResult struct {
	Algorithm             string            `json:"algorithm_name" yaml:"algorithm_name"`
	AverageWaitingTime    float64           `json:"average_waiting_time" yaml:"average_waiting_time"`
	AverageTurnAroundTime float64           `json:"average_turnaround_time" yaml:"average_turnaround_time"`
	AverageResponseTime   float64           `json:"average_response_time" yaml:"average_response_time"`
	TotalTime             int               `json:"total_time" yaml:"total_time"`
	IdleTime              int               `json:"idle_time" yaml:"idle_time"`
	CpuUtilization        float64           `json:"cpu_utilization" yaml:"cpu_utilization"`
	CpuThroughput         float64           `json:"throughput" yaml:"throughput"`
	GanttChart            []GanttSegment    `json:"gantt_chart" yaml:"gantt_chart"`
	Details               []ProcessResponse `json:"details" yaml:"details"`
}

type ScheduleResponse struct {
	Status      string             `json:"status" yaml:"status"`
	RequestID   string             `json:"request_id" yaml:"request_id"`
	Results     []SimulationResult `json:"results" yaml:"results"`
	Predictions []int              `json:"predictions" yaml:"predictions"`
}

type ErrorResponse struct {
	Status    string `json:"status"`
	RequestID string `json:"request_id,omitempty"`
	Error     string `json:"error"`
}
