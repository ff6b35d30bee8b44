package schedulers

import (
	"schedsim/internal/core"
)

// ScheduleShortestJobFirst picks the ready process with the least CPU time
// left and runs it to completion. Ties go to the earliest arrival, then
// input order. Non-preemptive: a long job that already holds the CPU is
// never interrupted by a shorter arrival.
func ScheduleShortestJobFirst(table *core.Table) (Result, error) {
	run := core.NewRun(table)

	var ready []int
	for !run.Done() {
		ready = append(ready, run.Admit(run.Clock())...)
		if len(ready) == 0 {
			if err := run.AdvanceIdle(); err != nil {
				return Result{}, err
			}
			continue
		}

		// A ready process has never run here, so its burst is its time
		// left. ready stays arrival-ordered and the strict < scan
		// settles burst ties on the earliest arrival.
		best := 0
		for j := 1; j < len(ready); j++ {
			if core.ByBurst(run.Process(ready[j])) < core.ByBurst(run.Process(ready[best])) {
				best = j
			}
		}
		i := ready[best]
		ready = append(ready[:best], ready[best+1:]...)

		if err := run.RunSlice(i, run.Process(i).RemainingTime); err != nil {
			return Result{}, err
		}
		if err := run.Complete(i); err != nil {
			return Result{}, err
		}
	}
	return newResult(AlgorithmSJF, run)
}
