package core

import "fmt"

// MeanTurnaround returns the arithmetic mean of completion time minus
// arrival time over all processes. Every completion time must already be
// set. Zero processes is an error, never a division by zero.
func MeanTurnaround(procs []Process) (float64, error) {
	if len(procs) == 0 {
		return 0, fmt.Errorf("%w: no processes to average", ErrEmptyInput)
	}
	var total int
	for _, p := range procs {
		total += p.TurnaroundTime()
	}
	return float64(total) / float64(len(procs)), nil
}
