// Package core implements the deterministic simulation primitives shared by
// every scheduling discipline: the immutable process table, the stable
// ordering utility, the per-run state machine with its discrete clock, and
// the turnaround metric.
//
// A simulation run never mutates the table it was built from. Each
// discipline works on a private snapshot tracked by a Run, which enforces
// the admission and completion invariants (a process enters the ready
// structure exactly once per arrival and completes exactly once) and records
// the execution timeline as it goes.
package core
