package schedulers

import (
	"fmt"

	"schedsim/internal/core"
)

// DefaultTimeQuantum is the round robin slice length used when nothing is
// configured.
const DefaultTimeQuantum = 2

// ScheduleRoundRobin cycles the CPU through a FIFO ready queue in slices of
// timeQuantum units. A process that outlives its slice goes to the rear of
// the queue, behind anything that arrived during the slice: a process
// preempted at time t never queues ahead of one that arrived at or before t.
func ScheduleRoundRobin(table *core.Table, timeQuantum int) (Result, error) {
	if timeQuantum <= 0 {
		return Result{}, fmt.Errorf("%w: %d", core.ErrInvalidQuantum, timeQuantum)
	}
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

		if remaining := run.Process(i).RemainingTime; remaining <= timeQuantum {
			if err := run.RunSlice(i, remaining); err != nil {
				return Result{}, err
			}
			if err := run.Complete(i); err != nil {
				return Result{}, err
			}
			continue
		}

		if err := run.RunSlice(i, timeQuantum); err != nil {
			return Result{}, err
		}
		if err := run.Preempt(i); err != nil {
			return Result{}, err
		}
		// arrivals during the slice enter the queue ahead of the
		// preempted process
		queue = append(queue, run.Admit(run.Clock())...)
		queue = append(queue, i)
	}
	return newResult(AlgorithmRoundRobin, run)
}
