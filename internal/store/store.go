// Package store persists simulation runs so past results can be listed and
// fetched. Because the engine is deterministic, a stored workload and
// quantum are enough to reproduce every number in a run.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"schedsim/internal/core"
)

// SimulationRun is one recorded driver pass: the input workload, the
// quantum it ran with, and the mean turnaround per discipline.
type SimulationRun struct {
	ID              string             `json:"id"`
	Workload        []core.Job         `json:"workload"`
	ProcessCount    int                `json:"process_count"`
	TimeQuantum     int                `json:"time_quantum"`
	MeanTurnarounds map[string]float64 `json:"mean_turnarounds"`
	CreatedAt       time.Time          `json:"created_at"`
}

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return "run_" + uuid.New().String()
}

// ListOptions paginates list queries.
type ListOptions struct {
	Limit  int
	Offset int
}

// Clamp enforces limits (max 100, default 20).
func (o *ListOptions) Clamp() {
	if o.Limit <= 0 {
		o.Limit = 20
	}
	if o.Limit > 100 {
		o.Limit = 100
	}
	if o.Offset < 0 {
		o.Offset = 0
	}
}

// Store is the persistence boundary for simulation runs.
type Store interface {
	SaveRun(ctx context.Context, run *SimulationRun) error
	GetRun(ctx context.Context, id string) (*SimulationRun, error)
	ListRuns(ctx context.Context, opts ListOptions) ([]*SimulationRun, int, error)

	Migrate(ctx context.Context) error
	Close() error
}
