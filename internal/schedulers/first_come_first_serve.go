package schedulers

import (
	"schedsim/internal/core"
)

// ScheduleFirstComeFirstServe runs processes to completion in strict
// arrival order, ties broken by input order. Non-preemptive.
func ScheduleFirstComeFirstServe(table *core.Table) (Result, error) {
	run := core.NewRun(table)

	var queue []int
	for !run.Done() {
		queue = append(queue, run.Admit(run.Clock())...)
		if len(queue) == 0 {
			if err := run.AdvanceIdle(); err != nil {
				return Result{}, err
			}
			continue
		}

		i := queue[0]
		queue = queue[1:]
		if err := run.RunSlice(i, run.Process(i).RemainingTime); err != nil {
			return Result{}, err
		}
		if err := run.Complete(i); err != nil {
			return Result{}, err
		}
	}
	return newResult(AlgorithmFCFS, run)
}
