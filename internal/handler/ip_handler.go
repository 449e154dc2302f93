package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/cicorias/ipcalc/internal/calc"
	"github.com/cicorias/ipcalc/internal/model"
	"github.com/cicorias/ipcalc/internal/resolver"
	"github.com/cicorias/ipcalc/internal/service"
)

type CalcService interface {
	Describe(ctx context.Context, q model.Query) (*model.AddressInfo, error)
}

type Handler struct {
	service CalcService
	logger  *zap.Logger
}

func NewHandler(service CalcService, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/v1/info", h.AddressInfo)
	app.Get("/api/v1/health", h.HealthCheck)
}

// AddressInfo handles GET /api/v1/info?address=192.168.1.5/24. The address
// may carry its prefix or netmask after a slash; a separate netmask query
// parameter is also accepted. hostname=true attaches the reverse-DNS name.
func (h *Handler) AddressInfo(c *fiber.Ctx) error {
	address := c.Query("address")
	if address == "" {
		return c.Status(fiber.StatusBadRequest).JSON(model.Error{
			Message: "address query parameter is required",
		})
	}

	q, err := service.ParseQuery(address)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.Error{
			Message: err.Error(),
		})
	}
	if m := c.Query("netmask"); m != "" {
		q.Netmask = m
	}
	q.Hostname = c.QueryBool("hostname")

	info, err := h.service.Describe(c.Context(), q)
	if err != nil {
		switch {
		case errors.Is(err, calc.ErrMalformedAddress),
			errors.Is(err, calc.ErrInvalidPrefix),
			errors.Is(err, calc.ErrNonContiguousMask),
			errors.Is(err, calc.ErrAmbiguousInput):
			return c.Status(fiber.StatusBadRequest).JSON(model.Error{
				Message: err.Error(),
			})
		case errors.Is(err, resolver.ErrHostnameUnavailable):
			return c.Status(fiber.StatusNotFound).JSON(model.Error{
				Message: err.Error(),
			})
		}

		h.logger.Error("address info failed",
			zap.String("address", address),
			zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(model.Error{
			Message: "Failed to compute address information",
		})
	}

	return c.JSON(info)
}

func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "healthy",
	})
}
