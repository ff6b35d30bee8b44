package schedulers

import (
	"schedsim/internal/core"
)

// ScheduleLastComeFirstServePreemptive advances the clock one unit at a
// time, always running the top of the ready stack. A new arrival is pushed
// above whatever is running and takes the CPU at the next unit, so later
// arrivals preempt earlier ones.
func ScheduleLastComeFirstServePreemptive(table *core.Table) (Result, error) {
	run := core.NewRun(table)

	var stack []int
	for !run.Done() {
		if batch := run.Admit(run.Clock()); len(batch) > 0 {
			if n := len(stack); n > 0 && run.State(stack[n-1]) == core.StateRunning {
				if err := run.Preempt(stack[n-1]); err != nil {
					return Result{}, err
				}
			}
			stack = append(stack, batch...)
		}
		if len(stack) == 0 {
			if err := run.AdvanceIdle(); err != nil {
				return Result{}, err
			}
			continue
		}

		top := stack[len(stack)-1]
		if err := run.RunSlice(top, 1); err != nil {
			return Result{}, err
		}
		if run.Process(top).RemainingTime == 0 {
			if err := run.Complete(top); err != nil {
				return Result{}, err
			}
			stack = stack[:len(stack)-1]
		}
	}
	return newResult(AlgorithmLCFSPreemptive, run)
}
