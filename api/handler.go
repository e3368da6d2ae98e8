package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// RegisterRoutes wires one POST route per algorithm under /api/v1.
func RegisterRoutes(app *fiber.App, handler SchedulerHandler) {
	v1 := app.Group("/api").Group("/v1")
	v1.Post("/fcfs", handler.FirstComeFirstServe)
	v1.Post("/sjf", handler.ShortestJobFirst)
	v1.Post("/priority", handler.Priority)
	v1.Post("/srtf", handler.ShortestRemainingTimeFirst)
	v1.Post("/rr", handler.RoundRobin)
	v1.Post("/all", handler.AllAlgorithms)
}

func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequest, error) {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return nil, ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	if err := request.Validate(); err != nil {
		return nil, ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return &request, nil
}

// timeQuantum resolves the round-robin quantum: the request value wins,
// the configured default fills in when the request leaves it out.
func (s *SchedulerHandlerImpl) timeQuantum(request *requests.ScheduleRequest) int {
	if request.TimeQuantum != 0 {
		return request.TimeQuantum
	}
	return s.config.RoundRobinTimeQuantum
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if request == nil {
		return err
	}
	response, err := schedulers.ScheduleFirstComeFirstServe(request)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if request == nil {
		return err
	}
	response, err := schedulers.ScheduleShortestJobFirst(request)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if request == nil {
		return err
	}
	response, err := schedulers.SchedulePriority(request)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if request == nil {
		return err
	}
	response, err := schedulers.ScheduleShortestRemainingTimeFirst(request)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if request == nil {
		return err
	}
	response, err := schedulers.ScheduleRoundRobin(request, s.timeQuantum(request))
	if err != nil {
		if errors.Is(err, requests.ErrInvalidQuantum) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if request == nil {
		return err
	}

	quantum := s.timeQuantum(request)
	algorithms := []struct {
		name string
		run  func() (responses.ScheduleResponse, error)
	}{
		{"fcfs", func() (responses.ScheduleResponse, error) { return schedulers.ScheduleFirstComeFirstServe(request) }},
		{"sjf", func() (responses.ScheduleResponse, error) { return schedulers.ScheduleShortestJobFirst(request) }},
		{"priority", func() (responses.ScheduleResponse, error) { return schedulers.SchedulePriority(request) }},
		{"srtf", func() (responses.ScheduleResponse, error) { return schedulers.ScheduleShortestRemainingTimeFirst(request) }},
		{"round_robin", func() (responses.ScheduleResponse, error) { return schedulers.ScheduleRoundRobin(request, quantum) }},
	}

	results := make(map[string]responses.ScheduleResponse, len(algorithms))
	for _, algorithm := range algorithms {
		response, err := algorithm.run()
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		results[algorithm.name] = response
	}

	return ctx.JSON(results)
}
