// Package schedulers implements the five scheduling disciplines on top of
// the shared simulation core, plus the driver that runs them all.
package schedulers

import (
	"schedsim/internal/core"
)

// Canonical algorithm names, as they appear in result sets and reports.
const (
	AlgorithmFCFS           = "FCFS"
	AlgorithmLCFS           = "LCFS (NP)"
	AlgorithmLCFSPreemptive = "LCFS (P)"
	AlgorithmRoundRobin     = "RR"
	AlgorithmSJF            = "SJF"
)

// AlgorithmNames lists every discipline in canonical report order, exactly
// as ScheduleAll runs them.
func AlgorithmNames() []string {
	names := make([]string, len(disciplines))
	for i, d := range disciplines {
		names[i] = d.name
	}
	return names
}

// Result is the outcome of one discipline over one table: the completed
// working set in input order, the mean turnaround, and the CPU timeline.
type Result struct {
	Algorithm      string
	Processes      []core.Process
	MeanTurnaround float64
	Timeline       []core.Slice
}

// MeanTurnarounds projects results onto algorithm name -> mean turnaround.
func MeanTurnarounds(results []Result) map[string]float64 {
	out := make(map[string]float64, len(results))
	for _, r := range results {
		out[r.Algorithm] = r.MeanTurnaround
	}
	return out
}

// newResult finalizes a completed run into a Result.
func newResult(algorithm string, run *core.Run) (Result, error) {
	procs := run.Results()
	mean, err := core.MeanTurnaround(procs)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Algorithm:      algorithm,
		Processes:      procs,
		MeanTurnaround: mean,
		Timeline:       run.Timeline(),
	}, nil
}
