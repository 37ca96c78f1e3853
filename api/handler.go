package api

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"cpu-scheduler-sim/config"
	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/predictor"
	"cpu-scheduler-sim/internal/requests"
	"cpu-scheduler-sim/internal/responses"
	"cpu-scheduler-sim/internal/schedulers"
	"cpu-scheduler-sim/internal/store"
)

var (
	errNoAlgorithms    = errors.New("no algorithms requested")
	errHistoryDisabled = errors.New("simulation history is disabled")
	errLimitExceeded   = errors.New("request exceeds configured limits")
)

type SchedulerHandler interface {
	Simulate(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ADRR(ctx *fiber.Ctx) error
	Algorithms(ctx *fiber.Ctx) error
	ListSimulations(ctx *fiber.Ctx) error
	GetSimulation(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config    *config.SchedulerConfig
	predictor predictor.Predictor
	store     store.Store // nil when history is disabled
	logger    *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, p predictor.Predictor, st store.Store, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{
		config:    config,
		predictor: p,
		store:     st,
		logger:    logger.With("component", "api"),
	}
}

// Simulate runs every algorithm named in the request body.
func (s *SchedulerHandlerImpl) Simulate(ctx *fiber.Ctx) error {
	return s.schedule(ctx, nil)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, []string{schedulers.AlgorithmRR})
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, []string{schedulers.AlgorithmSJF})
}

func (s *SchedulerHandlerImpl) ADRR(ctx *fiber.Ctx) error {
	return s.schedule(ctx, []string{schedulers.AlgorithmADRR})
}

func (s *SchedulerHandlerImpl) Algorithms(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"algorithms":           schedulers.Algorithms(),
		"default_time_quantum": s.config.RoundRobinTimeQuantum,
	})
}

func (s *SchedulerHandlerImpl) ListSimulations(ctx *fiber.Ctx) error {
	reqID := requestID()
	if s.store == nil {
		return respondError(ctx, fiber.StatusNotImplemented, reqID, errHistoryDisabled)
	}
	records, err := s.store.List(ctx.UserContext(), ctx.QueryInt("limit", 20))
	if err != nil {
		s.logger.Error("list simulations", "request_id", reqID, "error", err)
		return respondError(ctx, fiber.StatusInternalServerError, reqID, err)
	}
	if records == nil {
		records = []*store.Record{}
	}
	return ctx.JSON(records)
}

func (s *SchedulerHandlerImpl) GetSimulation(ctx *fiber.Ctx) error {
	reqID := requestID()
	if s.store == nil {
		return respondError(ctx, fiber.StatusNotImplemented, reqID, errHistoryDisabled)
	}
	rec, err := s.store.Get(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return respondError(ctx, statusFor(err), reqID, err)
	}
	return ctx.JSON(rec)
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

// schedule handles every simulation endpoint. A non-nil algorithms
// overrides whatever the body asks for.
func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithms []string) error {
	reqID := requestID()

	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		s.logger.Debug("bad request body", "request_id", reqID, "error", err)
		return respondError(ctx, fiber.StatusBadRequest, reqID, fmt.Errorf("invalid request format: %w", err))
	}
	if algorithms != nil {
		request.Algorithms = algorithms
	}

	response, err := s.run(request, reqID)
	if err != nil {
		status := statusFor(err)
		if status == fiber.StatusInternalServerError {
			s.logger.Error("simulation failed", "request_id", reqID, "error", err)
		}
		return respondError(ctx, status, reqID, err)
	}

	if s.store != nil {
		rec := &store.Record{
			ID:        reqID,
			CreatedAt: time.Now(),
			Request:   request,
			Response:  response,
		}
		if err := s.store.Save(ctx.UserContext(), rec); err != nil {
			s.logger.Warn("could not record simulation", "request_id", reqID, "error", err)
		}
	}

	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) run(request requests.ScheduleRequests, reqID string) (responses.ScheduleResponse, error) {
	if len(request.Algorithms) == 0 {
		return responses.ScheduleResponse{}, errNoAlgorithms
	}
	if len(request.Jobs) == 0 {
		return responses.ScheduleResponse{}, schedulers.ErrNoProcesses
	}
	if limit := s.config.MaxProcesses; limit > 0 && len(request.Jobs) > limit {
		return responses.ScheduleResponse{}, fmt.Errorf("%w: %d processes, at most %d allowed", errLimitExceeded, len(request.Jobs), limit)
	}

	opts := schedulers.Options{
		TimeQuantum: s.config.RoundRobinTimeQuantum,
		SkipIdle:    s.config.SkipIdle,
		Logger:      s.logger.With("request_id", reqID),
	}
	if request.TimeQuantum != nil {
		if *request.TimeQuantum <= 0 {
			return responses.ScheduleResponse{}, fmt.Errorf("%w: got %d", schedulers.ErrInvalidTimeQuantum, *request.TimeQuantum)
		}
		opts.TimeQuantum = *request.TimeQuantum
	}

	bursts, err := predictor.ResolveBursts(s.predictor, request.Jobs)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	if err := checkSimulatedTime(request.Jobs, bursts, s.config.MaxSimulatedTime); err != nil {
		return responses.ScheduleResponse{}, err
	}

	processes := make([]*core.Process, len(request.Jobs))
	for i, job := range request.Jobs {
		processes[i] = core.NewProcess(job.ProcessId, job.ArrivalTime, bursts[i])
	}

	results, err := schedulers.RunAll(request.Algorithms, processes, opts)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	return responses.ScheduleResponse{
		Status:      "success",
		RequestID:   reqID,
		Results:     results,
		Predictions: bursts,
	}, nil
}

// checkSimulatedTime bounds the clock a run can reach: the latest arrival
// plus every burst. The stepping schedulers tick once per unit, so this also
// bounds their work. A limit of zero disables the check.
func checkSimulatedTime(jobs []requests.Job, bursts []int, limit int) error {
	if limit <= 0 {
		return nil
	}
	latest, total := 0, 0
	for i, job := range jobs {
		if job.ArrivalTime > limit || bursts[i] > limit {
			return fmt.Errorf("%w: pid %d has arrival_time or burst_time above %d", errLimitExceeded, job.ProcessId, limit)
		}
		latest = max(latest, job.ArrivalTime)
		total += max(bursts[i], 0)
		if total > limit {
			return fmt.Errorf("%w: total burst time exceeds %d", errLimitExceeded, limit)
		}
	}
	if latest+total > limit {
		return fmt.Errorf("%w: simulation would run past time %d", errLimitExceeded, limit)
	}
	return nil
}

func requestID() string {
	return uuid.New().String()
}

func statusFor(err error) int {
	switch {
	case schedulers.IsValidationError(err),
		errors.Is(err, predictor.ErrPrediction),
		errors.Is(err, errNoAlgorithms):
		return fiber.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(ctx *fiber.Ctx, status int, reqID string, err error) error {
	return ctx.Status(status).JSON(responses.ErrorResponse{
		Status:    "error",
		RequestID: reqID,
		Error:     err.Error(),
	})
}
