package requests

// Job describes one process as submitted by a client. BurstTime may be left
// out, in which case it is predicted from the remaining attributes.
type Job struct {
	ProcessId   int  `json:"pid" yaml:"pid"`
	ArrivalTime int  `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   *int `json:"burst_time,omitempty" yaml:"burst_time,omitempty"`
	UserID      int  `json:"UserID" yaml:"UserID"`
	GroupID     int  `json:"GroupID" yaml:"GroupID"`
	ReqTime     int  `json:"ReqTime" yaml:"ReqTime"`
	ReqMemory   int  `json:"ReqMemory" yaml:"ReqMemory"`
}

type ScheduleRequests struct {
	Algorithms  []string `json:"algorithms" yaml:"algorithms"`
	Jobs        []Job    `json:"processes" yaml:"processes"`
	TimeQuantum *int     `json:"time_quantum,omitempty" yaml:"time_quantum,omitempty"`
}
