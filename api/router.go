package api

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"cpu-scheduler-sim/config"
	"cpu-scheduler-sim/internal/responses"
)

// NewRouter builds the fiber app with every route registered.
func NewRouter(handler SchedulerHandler, cfg *config.SchedulerConfig, logger *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowCredentials: cfg.AllowOrigins != "*",
	}))
	app.Use(requestLogger(logger.With("component", "http")))

	// unversioned alias of /api/v1/simulate
	app.Post("/simulate", handler.Simulate)

	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Get("/health", handler.Health)
		v1.Get("/algorithms", handler.Algorithms)
		v1.Post("/simulate", handler.Simulate)
		v1.Post("/adrr", handler.ADRR)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Get("/simulations", handler.ListSimulations)
		v1.Get("/simulations/:id", handler.GetSimulation)
	}

	return app
}

func requestLogger(logger *slog.Logger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()
		logger.Info("request",
			"method", ctx.Method(),
			"path", ctx.Path(),
			"status", ctx.Response().StatusCode(),
			"duration", time.Since(start),
		)
		return err
	}
}

func errorHandler(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
	}
	return ctx.Status(status).JSON(responses.ErrorResponse{
		Status: "error",
		Error:  err.Error(),
	})
}
