package core

import "fmt"

// DefaultMaxProcesses caps the table size when no explicit limit is
// configured.
const DefaultMaxProcesses = 100

// Job describes one process to simulate: when it arrives and how much CPU
// time it needs.
type Job struct {
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
}

// Table is the validated, immutable process set for one simulation run.
// Disciplines never touch it directly; they work on snapshots.
type Table struct {
	procs []Process
}

// NewTable validates the jobs and builds a table. Process IDs follow input
// order. A maxProcesses of zero or less falls back to DefaultMaxProcesses.
func NewTable(jobs []Job, maxProcesses int) (*Table, error) {
	if maxProcesses <= 0 {
		maxProcesses = DefaultMaxProcesses
	}
	if len(jobs) > maxProcesses {
		return nil, fmt.Errorf("%w: %d processes, limit %d", ErrCapacityExceeded, len(jobs), maxProcesses)
	}
	procs := make([]Process, len(jobs))
	for i, job := range jobs {
		if job.ArrivalTime < 0 {
			return nil, fmt.Errorf("%w: process %d: negative arrival time %d", ErrInvalidProcessSpec, i, job.ArrivalTime)
		}
		if job.BurstTime <= 0 {
			return nil, fmt.Errorf("%w: process %d: burst time %d must be positive", ErrInvalidProcessSpec, i, job.BurstTime)
		}
		procs[i] = Process{
			ID:            i,
			ArrivalTime:   job.ArrivalTime,
			BurstTime:     job.BurstTime,
			RemainingTime: job.BurstTime,
		}
	}
	return &Table{procs: procs}, nil
}

// Len reports the number of processes in the table.
func (t *Table) Len() int {
	return len(t.procs)
}

// Snapshot returns a fresh working copy of every process, in input order.
func (t *Table) Snapshot() []Process {
	out := make([]Process, len(t.procs))
	copy(out, t.procs)
	return out
}

// Jobs returns the arrival/burst pairs the table was built from, in input
// order.
func (t *Table) Jobs() []Job {
	out := make([]Job, len(t.procs))
	for i, p := range t.procs {
		out[i] = Job{ArrivalTime: p.ArrivalTime, BurstTime: p.BurstTime}
	}
	return out
}
