package cache

import (
	"strings"
	"testing"

	"schedsim/internal/core"
)

func TestKeyDeterministic(t *testing.T) {
	jobs := []core.Job{{ArrivalTime: 0, BurstTime: 3}, {ArrivalTime: 2, BurstTime: 6}}

	a := Key(jobs, 2)
	b := Key(jobs, 2)
	if a != b {
		t.Errorf("same workload produced different keys: %q vs %q", a, b)
	}
	if !strings.HasPrefix(a, "schedsim:result:") {
		t.Errorf("Key() = %q, want schedsim:result: prefix", a)
	}
}

func TestKeyDiscriminates(t *testing.T) {
	base := []core.Job{{ArrivalTime: 0, BurstTime: 3}, {ArrivalTime: 2, BurstTime: 6}}

	tests := []struct {
		name    string
		jobs    []core.Job
		quantum int
	}{
		{"different quantum", base, 3},
		{"different burst", []core.Job{{ArrivalTime: 0, BurstTime: 4}, {ArrivalTime: 2, BurstTime: 6}}, 2},
		{"different arrival", []core.Job{{ArrivalTime: 1, BurstTime: 3}, {ArrivalTime: 2, BurstTime: 6}}, 2},
		{"reordered jobs", []core.Job{{ArrivalTime: 2, BurstTime: 6}, {ArrivalTime: 0, BurstTime: 3}}, 2},
		{"extra job", append(append([]core.Job{}, base...), core.Job{ArrivalTime: 5, BurstTime: 1}), 2},
	}

	want := Key(base, 2)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(tt.jobs, tt.quantum); got == want {
				t.Errorf("Key collision with base workload: %q", got)
			}
		})
	}
}

// Job order matters for identity: processes are numbered by input position,
// so [A B] and [B A] are different workloads even with identical members.
func TestKeyOrderSensitive(t *testing.T) {
	ab := Key([]core.Job{{ArrivalTime: 0, BurstTime: 3}, {ArrivalTime: 0, BurstTime: 6}}, 2)
	ba := Key([]core.Job{{ArrivalTime: 0, BurstTime: 6}, {ArrivalTime: 0, BurstTime: 3}}, 2)
	if ab == ba {
		t.Error("reordering jobs should change the cache key")
	}
}
