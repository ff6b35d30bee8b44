package schedulers

import (
	"schedsim/internal/core"
	"schedsim/internal/responses"
	"schedsim/internal/util"
)

// GenerateResponse projects a finished result onto the API response shape,
// deriving the run-level analytics the result itself does not carry: busy
// and idle CPU time, utilization, and throughput over the full makespan.
func GenerateResponse(res Result) responses.ScheduleResponse {
	details := make([]responses.ProcessResponse, len(res.Processes))
	firstStart := firstAllocations(res.Timeline)
	for i, p := range res.Processes {
		details[i] = generateProcessDetails(p, firstStart[p.ID])
	}
	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(details)

	totalTime := 0
	busyTime := 0
	for _, p := range res.Processes {
		if p.CompletionTime > totalTime {
			totalTime = p.CompletionTime
		}
		busyTime += p.BurstTime
	}

	timeline := make([]responses.TimelineSlice, len(res.Timeline))
	for i, s := range res.Timeline {
		timeline[i] = responses.TimelineSlice{ProcessId: s.ProcessID, Start: s.Start, Stop: s.Stop}
	}

	return responses.ScheduleResponse{
		Algorithm:             res.Algorithm,
		TotalTime:             totalTime,
		IdleTime:              totalTime - busyTime,
		CpuUtilization:        float64(busyTime) / float64(totalTime),
		CpuThroughput:         float64(len(res.Processes)) / float64(totalTime),
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		Details:               details,
		Timeline:              timeline,
	}
}

// GenerateAllResponse bundles a full driver pass into one response body.
func GenerateAllResponse(results []Result) responses.ScheduleAllResponse {
	out := responses.ScheduleAllResponse{
		MeanTurnarounds: MeanTurnarounds(results),
		Results:         make([]responses.ScheduleResponse, len(results)),
	}
	for i, res := range results {
		out.Results[i] = GenerateResponse(res)
	}
	return out
}

func generateProcessDetails(p core.Process, firstStart int) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      p.ID,
		ArrivalTime:    p.ArrivalTime,
		BurstTime:      p.BurstTime,
		CompletionTime: p.CompletionTime,
		ResponseTime:   firstStart - p.ArrivalTime,
		TurnAroundTime: p.TurnaroundTime(),
		WaitingTime:    p.WaitingTime(),
	}
}

// firstAllocations maps each process to the start of its first CPU slice.
func firstAllocations(timeline []core.Slice) map[int]int {
	out := make(map[int]int, len(timeline))
	for _, s := range timeline {
		if _, seen := out[s.ProcessID]; !seen {
			out[s.ProcessID] = s.Start
		}
	}
	return out
}
