package core

import "sort"

// SortKey selects the ordering key for a process.
type SortKey func(Process) int

// ByArrival orders processes by arrival time.
func ByArrival(p Process) int { return p.ArrivalTime }

// ByBurst orders processes by total burst time.
func ByBurst(p Process) int { return p.BurstTime }

// SortedBy returns a new slice ordered ascending by the key. The sort is
// stable, so processes with equal keys keep their input order. The input
// slice is not modified.
func SortedBy(procs []Process, key SortKey) []Process {
	out := make([]Process, len(procs))
	copy(out, procs)
	sort.SliceStable(out, func(i, j int) bool {
		return key(out[i]) < key(out[j])
	})
	return out
}
