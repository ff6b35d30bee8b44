package schedulers

import (
	"schedsim/internal/core"
)

// ScheduleLastComeFirstServe runs the most recently arrived ready process
// to completion first. Non-preemptive: once dispatched, a process keeps
// the CPU until it finishes, even if something newer arrives meanwhile.
func ScheduleLastComeFirstServe(table *core.Table) (Result, error) {
	run := core.NewRun(table)

	var stack []int
	for !run.Done() {
		// admitted batches are arrival-ordered, so the latest arrival
		// ends up on top
		stack = append(stack, run.Admit(run.Clock())...)
		if len(stack) == 0 {
			if err := run.AdvanceIdle(); err != nil {
				return Result{}, err
			}
			continue
		}

		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := run.RunSlice(i, run.Process(i).RemainingTime); err != nil {
			return Result{}, err
		}
		if err := run.Complete(i); err != nil {
			return Result{}, err
		}
	}
	return newResult(AlgorithmLCFS, run)
}
