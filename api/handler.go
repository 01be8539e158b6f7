package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"os-project/config"
	"os-project/internal/core"
	"os-project/internal/requests"
	"os-project/internal/responses"
	"os-project/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	Simulate(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Policies(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// NewApp builds the fiber application with every route registered under
// /api/v1.
func NewApp(handler SchedulerHandler) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Get("/health", func(ctx *fiber.Ctx) error {
			return ctx.JSON(fiber.Map{"status": "ok"})
		})
		v1.Get("/policies", handler.Policies)
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/srtf", handler.ShortestRemainingTimeFirst)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/priority", handler.Priority)
		v1.Post("/simulate", handler.Simulate)
		v1.Post("/all", handler.AllAlgorithms)
	}
	return app
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, func(*requests.ScheduleRequest) (schedulers.Policy, error) {
		return schedulers.FirstComeFirstServe(), nil
	})
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, func(*requests.ScheduleRequest) (schedulers.Policy, error) {
		return schedulers.ShortestRemainingTimeFirst(), nil
	})
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, func(*requests.ScheduleRequest) (schedulers.Policy, error) {
		return schedulers.ShortestJobFirst(), nil
	})
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, func(request *requests.ScheduleRequest) (schedulers.Policy, error) {
		return schedulers.PriorityScheduling(request.Preemptive != nil && *request.Preemptive), nil
	})
}

func (s *SchedulerHandlerImpl) Simulate(ctx *fiber.Ctx) error {
	return s.schedule(ctx, s.requestedPolicy)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request := new(requests.ScheduleRequest)
	if err := ctx.BodyParser(request); err != nil {
		return badRequest(ctx, "invalid request format")
	}

	processes := request.Processes()
	results := make(map[string]responses.ScheduleResponse, len(schedulers.PolicyNames()))
	for _, name := range schedulers.PolicyNames() {
		policy, err := schedulers.PolicyByName(name)
		if err != nil {
			return badRequest(ctx, err.Error())
		}
		result, err := schedulers.Run(processes, policy)
		if err != nil {
			return simulationError(ctx, err)
		}
		results[name] = responses.NewScheduleResponse(policy, result)
	}

	slog.Info("simulated all policies", "processes", len(processes))
	return ctx.JSON(results)
}

func (s *SchedulerHandlerImpl) Policies(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"policies": schedulers.PolicyNames(),
		"default":  s.config.DefaultPolicy,
	})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, choose func(*requests.ScheduleRequest) (schedulers.Policy, error)) error {
	request := new(requests.ScheduleRequest)
	if err := ctx.BodyParser(request); err != nil {
		return badRequest(ctx, "invalid request format")
	}

	policy, err := choose(request)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := schedulers.Run(request.Processes(), policy)
	if err != nil {
		return simulationError(ctx, err)
	}

	slog.Info("simulation finished",
		"policy", policy.Name,
		"preemptive", policy.Preemptive,
		"kind", result.Kind,
		"processes", len(request.Jobs),
		"total_time", result.Metrics.TotalTime,
	)
	return ctx.JSON(responses.NewScheduleResponse(policy, result))
}

// requestedPolicy resolves the policy named in the body, falling back to the
// configured default. An explicit preemptive flag wins over both.
func (s *SchedulerHandlerImpl) requestedPolicy(request *requests.ScheduleRequest) (schedulers.Policy, error) {
	name := request.Policy
	if name == "" {
		name = s.config.DefaultPolicy
	}
	policy, err := schedulers.PolicyByName(name)
	if err != nil {
		return schedulers.Policy{}, err
	}

	switch {
	case request.Preemptive != nil:
		policy = policy.WithPreemption(*request.Preemptive)
	case request.Policy == "" && s.config.Preemptive != nil:
		policy = policy.WithPreemption(*s.config.Preemptive)
	}
	return policy, nil
}

func simulationError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, core.ErrInvalidProcess) || errors.Is(err, core.ErrDuplicateIdentifier) {
		return badRequest(ctx, err.Error())
	}
	slog.Error("simulation failed", "error", err)
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
}

func badRequest(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}
