package api

import "github.com/gofiber/fiber/v2"

// RegisterRoutes wires the scheduling endpoints onto the fiber app.
func RegisterRoutes(app *fiber.App, handler SchedulerHandler) {
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/lcfs", handler.LastComeFirstServe)
		v1.Post("/lcfs-preemptive", handler.LastComeFirstServePreemptive)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/all", handler.AllAlgorithms)

		v1.Get("/runs", handler.ListRuns)
		v1.Get("/runs/:id", handler.GetRun)
	}

	app.Get("/healthz", handler.Health)
}
