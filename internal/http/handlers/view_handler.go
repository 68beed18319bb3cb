package handlers

import (
	"github.com/adpilot/dashboard/internal/http/dto"
	"github.com/adpilot/dashboard/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ViewHandler exposes the view-state controller to the rendering layer.
// Actions that reference a stale campaign id succeed with found=false and
// leave the state untouched.
type ViewHandler struct {
	viewState *services.ViewStateService
	log       *zap.Logger
}

func NewViewHandler(viewState *services.ViewStateService, log *zap.Logger) *ViewHandler {
	return &ViewHandler{viewState: viewState, log: log}
}

func (h *ViewHandler) GetView(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: h.viewState.Snapshot()})
}

func (h *ViewHandler) SelectView(c *fiber.Ctx) error {
	var req dto.SelectViewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}
	if err := h.viewState.SelectView(req.View); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: h.viewState.Snapshot()})
}

func (h *ViewHandler) OpenForm(c *fiber.Ctx) error {
	h.viewState.OpenCreateForm()
	return c.JSON(dto.SuccessResponse{OK: true, Data: h.viewState.Snapshot()})
}

func (h *ViewHandler) CancelForm(c *fiber.Ctx) error {
	h.viewState.CancelForm()
	return c.JSON(dto.SuccessResponse{OK: true, Data: h.viewState.Snapshot()})
}

func (h *ViewHandler) ViewCampaign(c *fiber.Ctx) error {
	found := h.viewState.ViewCampaign(c.Params("id"))
	return c.JSON(dto.SuccessResponse{OK: true, Data: fiber.Map{
		"found": found,
		"view":  h.viewState.Snapshot(),
	}})
}

func (h *ViewHandler) EditCampaign(c *fiber.Ctx) error {
	found := h.viewState.EditCampaign(c.Params("id"))
	return c.JSON(dto.SuccessResponse{OK: true, Data: fiber.Map{
		"found": found,
		"view":  h.viewState.Snapshot(),
	}})
}

func (h *ViewHandler) ViewReport(c *fiber.Ctx) error {
	found := h.viewState.ViewReport(c.Params("id"))
	return c.JSON(dto.SuccessResponse{OK: true, Data: fiber.Map{
		"found": found,
		"view":  h.viewState.Snapshot(),
	}})
}
