package handlers

import (
	"context"

	"github.com/adpilot/dashboard/internal/http/dto"
	"github.com/adpilot/dashboard/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ABTestHandler struct {
	abtest *services.ABTestService
	log    *zap.Logger
}

func NewABTestHandler(abtest *services.ABTestService, log *zap.Logger) *ABTestHandler {
	return &ABTestHandler{abtest: abtest, log: log}
}

// RegisterVariant accepts either a multipart file upload or a JSON body
// with the file metadata (the UI uploads, the simulation only needs the
// metadata).
func (h *ABTestHandler) RegisterVariant(c *fiber.Ctx) error {
	slot := c.Params("slot")

	if file, err := c.FormFile("file"); err == nil {
		if err := h.abtest.RegisterVariant(slot, file.Filename, file.Size, file.Header.Get("Content-Type")); err != nil {
			return respondError(c, err)
		}
		return c.JSON(dto.SuccessResponse{OK: true})
	}

	var req dto.RegisterVariantRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}
	if err := h.abtest.RegisterVariant(slot, req.Name, req.Size, req.ContentType); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *ABTestHandler) Run(c *fiber.Ctx) error {
	// The simulation outlives this request, so it must not inherit the
	// request context.
	if err := h.abtest.Run(context.Background()); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(dto.SuccessResponse{OK: true})
}

func (h *ABTestHandler) Status(c *fiber.Ctx) error {
	variants, running := h.abtest.Status()
	return c.JSON(dto.SuccessResponse{OK: true, Data: dto.ABStatusResponse{
		Variants: variants,
		Running:  running,
		Result:   h.abtest.Result(),
	}})
}

func (h *ABTestHandler) Reset(c *fiber.Ctx) error {
	h.abtest.Reset()
	return c.JSON(dto.SuccessResponse{OK: true})
}
