package schedulers

import (
	"fmt"
	"sync"

	"schedsim/internal/core"
)

// disciplines is the driver's dispatch table: every discipline in canonical
// report order, adapted to one signature. ScheduleAll and AlgorithmNames
// both derive from it.
var disciplines = []struct {
	name     string
	schedule func(*core.Table, int) (Result, error)
}{
	{AlgorithmFCFS, func(t *core.Table, _ int) (Result, error) { return ScheduleFirstComeFirstServe(t) }},
	{AlgorithmLCFS, func(t *core.Table, _ int) (Result, error) { return ScheduleLastComeFirstServe(t) }},
	{AlgorithmLCFSPreemptive, func(t *core.Table, _ int) (Result, error) { return ScheduleLastComeFirstServePreemptive(t) }},
	{AlgorithmRoundRobin, ScheduleRoundRobin},
	{AlgorithmSJF, func(t *core.Table, _ int) (Result, error) { return ScheduleShortestJobFirst(t) }},
}

// ScheduleAll runs every discipline against the same table and returns the
// results in canonical order. Each discipline works on its own snapshot, so
// the runs share nothing and execute concurrently. The first failure wins;
// no partial result set is returned.
func ScheduleAll(table *core.Table, timeQuantum int) ([]Result, error) {
	results := make([]Result, len(disciplines))
	errs := make([]error, len(disciplines))

	var wg sync.WaitGroup
	wg.Add(len(disciplines))
	for idx, d := range disciplines {
		go func() {
			defer wg.Done()
			results[idx], errs[idx] = d.schedule(table, timeQuantum)
		}()
	}
	wg.Wait()

	for idx, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%s: %w", disciplines[idx].name, err)
		}
	}
	return results, nil
}
