package responses

type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	ArrivalTime    int `json:"arrival_time"`
	BurstTime      int `json:"burst_time"`
	CompletionTime int `json:"completion_time"`
	ResponseTime   int `json:"response_time"`
	TurnAroundTime int `json:"turn_around_time"`
	WaitingTime    int `json:"waiting_time"`
}

type TimelineSlice struct {
	ProcessId int `json:"process_id"`
	Start     int `json:"start"`
	Stop      int `json:"stop"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	Details               []ProcessResponse `json:"details"`
	Timeline              []TimelineSlice   `json:"timeline"`
}

type ScheduleAllResponse struct {
	RunId           string             `json:"run_id,omitempty"`
	MeanTurnarounds map[string]float64 `json:"mean_turnarounds"`
	Results         []ScheduleResponse `json:"results"`
}
