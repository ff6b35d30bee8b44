package api

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"schedsim/config"
	"schedsim/internal/cache"
	"schedsim/internal/core"
	"schedsim/internal/metrics"
	"schedsim/internal/requests"
	"schedsim/internal/responses"
	"schedsim/internal/schedulers"
	"schedsim/internal/store"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	LastComeFirstServe(ctx *fiber.Ctx) error
	LastComeFirstServePreemptive(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	GetRun(ctx *fiber.Ctx) error
	ListRuns(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

// SchedulerHandlerImpl serves the scheduling endpoints. The store, cache and
// metrics registry are optional; a nil value disables that concern.
type SchedulerHandlerImpl struct {
	config  *config.SchedulerConfig
	logger  *slog.Logger
	store   store.Store
	cache   *cache.ResultCache
	metrics *metrics.Registry
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *slog.Logger, st store.Store, rc *cache.ResultCache, m *metrics.Registry) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{
		config:  config,
		logger:  logger.With("component", "api"),
		store:   st,
		cache:   rc,
		metrics: m,
	}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.runOne(ctx, schedulers.AlgorithmFCFS, func(table *core.Table, _ int) (schedulers.Result, error) {
		return schedulers.ScheduleFirstComeFirstServe(table)
	})
}

func (s *SchedulerHandlerImpl) LastComeFirstServe(ctx *fiber.Ctx) error {
	return s.runOne(ctx, schedulers.AlgorithmLCFS, func(table *core.Table, _ int) (schedulers.Result, error) {
		return schedulers.ScheduleLastComeFirstServe(table)
	})
}

func (s *SchedulerHandlerImpl) LastComeFirstServePreemptive(ctx *fiber.Ctx) error {
	return s.runOne(ctx, schedulers.AlgorithmLCFSPreemptive, func(table *core.Table, _ int) (schedulers.Result, error) {
		return schedulers.ScheduleLastComeFirstServePreemptive(table)
	})
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.runOne(ctx, schedulers.AlgorithmRoundRobin, func(table *core.Table, quantum int) (schedulers.Result, error) {
		return schedulers.ScheduleRoundRobin(table, quantum)
	})
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.runOne(ctx, schedulers.AlgorithmSJF, func(table *core.Table, _ int) (schedulers.Result, error) {
		return schedulers.ScheduleShortestJobFirst(table)
	})
}

// AllAlgorithms runs every discipline over the submitted workload. Results
// for identical workloads are served from the cache when one is configured,
// and each invocation is recorded in the run history.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}

	table, err := core.NewTable(toJobs(request.Jobs), s.config.MaxProcesses)
	if err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	quantum := s.effectiveQuantum(request.TimeQuantum)

	// The validated table is the source of truth from here on: its jobs
	// feed the cache key and the persisted workload.
	jobs := table.Jobs()
	key := cache.Key(jobs, quantum)
	var response responses.ScheduleAllResponse
	cached := s.cache != nil && s.cache.Get(ctx.UserContext(), key, &response)
	if cached {
		s.metrics.CacheHit()
	} else {
		if s.cache != nil {
			s.metrics.CacheMiss()
		}
		start := time.Now()
		results, err := schedulers.ScheduleAll(table, quantum)
		if err != nil {
			return s.scheduleError(ctx, "all", err)
		}
		s.metrics.ObserveSimulation("all", table.Len(), time.Since(start))
		response = schedulers.GenerateAllResponse(results)
		// The run id is assigned per invocation below, so only the
		// workload-determined part of the response is cached.
		if s.cache != nil {
			s.cache.Set(ctx.UserContext(), key, response)
		}
	}

	if s.store != nil {
		run := &store.SimulationRun{
			ID:              store.NewRunID(),
			Workload:        jobs,
			ProcessCount:    table.Len(),
			TimeQuantum:     quantum,
			MeanTurnarounds: response.MeanTurnarounds,
			CreatedAt:       time.Now().UTC(),
		}
		if err := s.store.SaveRun(ctx.UserContext(), run); err != nil {
			s.logger.Warn("run not persisted", "run_id", run.ID, "error", err)
		} else {
			response.RunId = run.ID
		}
	}

	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) GetRun(ctx *fiber.Ctx) error {
	if s.store == nil {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "run history not available"})
	}
	run, err := s.store.GetRun(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		s.logger.Error("run lookup failed", "error", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "cannot process request"})
	}
	if run == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "run not found"})
	}
	return ctx.JSON(run)
}

func (s *SchedulerHandlerImpl) ListRuns(ctx *fiber.Ctx) error {
	if s.store == nil {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "run history not available"})
	}
	opts := store.ListOptions{
		Limit:  ctx.QueryInt("limit"),
		Offset: ctx.QueryInt("offset"),
	}
	runs, total, err := s.store.ListRuns(ctx.UserContext(), opts)
	if err != nil {
		s.logger.Error("run listing failed", "error", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "cannot process request"})
	}
	return ctx.JSON(fiber.Map{"total": total, "runs": runs})
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

type scheduleFunc func(table *core.Table, quantum int) (schedulers.Result, error)

func (s *SchedulerHandlerImpl) runOne(ctx *fiber.Ctx, algorithm string, schedule scheduleFunc) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}

	table, err := core.NewTable(toJobs(request.Jobs), s.config.MaxProcesses)
	if err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	start := time.Now()
	result, err := schedule(table, s.effectiveQuantum(request.TimeQuantum))
	if err != nil {
		return s.scheduleError(ctx, algorithm, err)
	}
	s.metrics.ObserveSimulation(algorithm, table.Len(), time.Since(start))

	return ctx.JSON(schedulers.GenerateResponse(result))
}

func (s *SchedulerHandlerImpl) scheduleError(ctx *fiber.Ctx, algorithm string, err error) error {
	s.metrics.ObserveError(algorithm)
	if core.IsInputError(err) {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	s.logger.Error("simulation failed", "algorithm", algorithm, "error", err)
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "cannot process request"})
}

// effectiveQuantum substitutes the configured default when the request does
// not carry a quantum. Negative values pass through so they are rejected by
// the scheduler rather than silently replaced.
func (s *SchedulerHandlerImpl) effectiveQuantum(requested int) int {
	if requested == 0 {
		return s.config.RoundRobinTimeQuantum
	}
	return requested
}

func toJobs(jobs []requests.Job) []core.Job {
	out := make([]core.Job, len(jobs))
	for i, j := range jobs {
		out[i] = core.Job{ArrivalTime: j.ArrivalTime, BurstTime: j.BurstTime}
	}
	return out
}
