package requests

type Job struct {
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
}

type ScheduleRequest struct {
	Jobs        []Job `json:"jobs"`
	TimeQuantum int   `json:"time_quantum,omitempty"`
}
