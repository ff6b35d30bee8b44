package core

import "fmt"

// Slice records one contiguous CPU allocation on the timeline.
type Slice struct {
	ProcessID int
	Start     int
	Stop      int
}

// Run carries the mutable bookkeeping of a single discipline pass: a
// private working copy of the table, the per-process state machine, the
// discrete simulation clock, and the execution timeline. The arrival order
// is fixed once at construction and admission walks it with a cursor, so
// the admit-once and complete-once invariants hold no matter which
// discipline drives the run.
type Run struct {
	procs    []Process
	state    []State
	order    []int // table positions in arrival order, ties in input order
	cursor   int   // first position in order not yet admitted
	clock    int
	finished int
	timeline []Slice
}

// NewRun snapshots the table into a fresh run at clock zero.
func NewRun(t *Table) *Run {
	procs := t.Snapshot()
	order := make([]int, len(procs))
	for i, p := range SortedBy(procs, ByArrival) {
		order[i] = p.ID
	}
	return &Run{
		procs: procs,
		state: make([]State, len(procs)),
		order: order,
	}
}

// Clock reports the current simulation time.
func (r *Run) Clock() int { return r.clock }

// Done reports whether every process has completed.
func (r *Run) Done() bool { return r.finished == len(r.procs) }

// Process returns a copy of the working state of process i.
func (r *Run) Process(i int) Process { return r.procs[i] }

// State reports where process i is in its lifecycle.
func (r *Run) State(i int) State { return r.state[i] }

// Admit moves every process that has arrived by now from NotArrived to
// Ready, exactly once per arrival. The returned indices are ordered by
// arrival time with ties in input order, so callers can feed them straight
// into a queue or stack.
func (r *Run) Admit(now int) []int {
	var batch []int
	for r.cursor < len(r.order) {
		i := r.order[r.cursor]
		if r.procs[i].ArrivalTime > now {
			break
		}
		r.state[i] = StateReady
		batch = append(batch, i)
		r.cursor++
	}
	return batch
}

// RunSlice gives process i the CPU for units of time: the clock advances,
// the remaining time drops, and the timeline grows. The process must be
// ready or already running, and must have enough remaining time.
func (r *Run) RunSlice(i, units int) error {
	if units <= 0 {
		return fmt.Errorf("%w: slice of %d units", ErrInvariantViolation, units)
	}
	switch r.state[i] {
	case StateReady:
		r.state[i] = StateRunning
	case StateRunning:
	default:
		return fmt.Errorf("%w: process %d ran while %s", ErrInvariantViolation, r.procs[i].ID, r.state[i])
	}
	if units > r.procs[i].RemainingTime {
		return fmt.Errorf("%w: process %d ran %d units with %d remaining",
			ErrInvariantViolation, r.procs[i].ID, units, r.procs[i].RemainingTime)
	}
	start := r.clock
	r.clock += units
	r.procs[i].RemainingTime -= units
	r.record(Slice{ProcessID: r.procs[i].ID, Start: start, Stop: r.clock})
	return nil
}

// record appends to the timeline, merging back-to-back slices of the same
// process into one span.
func (r *Run) record(s Slice) {
	if n := len(r.timeline); n > 0 {
		last := &r.timeline[n-1]
		if last.ProcessID == s.ProcessID && last.Stop == s.Start {
			last.Stop = s.Stop
			return
		}
	}
	r.timeline = append(r.timeline, s)
}

// Preempt takes the CPU away from a running process and returns it to the
// ready state.
func (r *Run) Preempt(i int) error {
	if r.state[i] != StateRunning {
		return fmt.Errorf("%w: process %d preempted while %s", ErrInvariantViolation, r.procs[i].ID, r.state[i])
	}
	r.state[i] = StateReady
	return nil
}

// Complete finalizes process i at the current clock. Completing a process
// twice, or one that still has CPU time left, aborts the run.
func (r *Run) Complete(i int) error {
	if r.state[i] != StateRunning {
		return fmt.Errorf("%w: process %d completed while %s", ErrInvariantViolation, r.procs[i].ID, r.state[i])
	}
	if left := r.procs[i].RemainingTime; left != 0 {
		return fmt.Errorf("%w: process %d completed with %d units remaining", ErrInvariantViolation, r.procs[i].ID, left)
	}
	r.state[i] = StateCompleted
	r.procs[i].CompletionTime = r.clock
	r.finished++
	return nil
}

// AdvanceIdle jumps the clock to the next arrival among processes that
// have not arrived yet. Going idle with nothing left to arrive, or past a
// process that could be admitted right now, means admissions were lost, so
// the run aborts.
func (r *Run) AdvanceIdle() error {
	if r.cursor == len(r.order) {
		return fmt.Errorf("%w: idle at time %d with %d of %d processes incomplete",
			ErrInvariantViolation, r.clock, len(r.procs)-r.finished, len(r.procs))
	}
	next := r.procs[r.order[r.cursor]]
	if next.ArrivalTime <= r.clock {
		return fmt.Errorf("%w: idle at time %d while process %d is admissible",
			ErrInvariantViolation, r.clock, next.ID)
	}
	r.clock = next.ArrivalTime
	return nil
}

// Results returns the working set in input order, completion times
// included. Meaningful once Done reports true.
func (r *Run) Results() []Process {
	out := make([]Process, len(r.procs))
	copy(out, r.procs)
	return out
}

// Timeline returns the recorded CPU allocations in execution order.
func (r *Run) Timeline() []Slice {
	out := make([]Slice, len(r.timeline))
	copy(out, r.timeline)
	return out
}
