package core

// Process is one schedulable unit. ID is the position in the original
// input order and is used for bookkeeping only, never for scheduling
// decisions. CompletionTime stays 0 until the process finishes.
type Process struct {
	ID             int
	ArrivalTime    int
	BurstTime      int
	RemainingTime  int
	CompletionTime int
}

// TurnaroundTime is the total time the process spent in the system.
// Only meaningful once CompletionTime has been set.
func (p Process) TurnaroundTime() int {
	return p.CompletionTime - p.ArrivalTime
}

// WaitingTime is the time the process spent ready but not running.
func (p Process) WaitingTime() int {
	return p.TurnaroundTime() - p.BurstTime
}

// State tracks where a process is in its lifecycle during one run.
type State uint8

const (
	StateNotArrived State = iota
	StateReady
	StateRunning
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateNotArrived:
		return "not-arrived"
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}
