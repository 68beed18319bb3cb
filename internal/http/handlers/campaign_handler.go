package handlers

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/adpilot/dashboard/internal/forms"
	"github.com/adpilot/dashboard/internal/http/dto"
	"github.com/adpilot/dashboard/internal/models"
	"github.com/adpilot/dashboard/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CampaignHandler struct {
	campaigns *services.CampaignService
	viewState *services.ViewStateService
	log       *zap.Logger
}

func NewCampaignHandler(campaigns *services.CampaignService, viewState *services.ViewStateService, log *zap.Logger) *CampaignHandler {
	return &CampaignHandler{campaigns: campaigns, viewState: viewState, log: log}
}

// CreateCampaign goes through the view-state controller so the post-create
// navigation (select the new record, close the form, land on analysis)
// happens atomically with the creation.
func (h *CampaignHandler) CreateCampaign(c *fiber.Ctx) error {
	var req dto.CreateCampaignRequest
	if err := decodeCampaignBody(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	created, err := h.viewState.SubmitForm(c.Context(), req.Input())
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: created})
}

func (h *CampaignHandler) GetCampaign(c *fiber.Ctx) error {
	campaign, ok := h.campaigns.FindByID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "campaign not found"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func (h *CampaignHandler) ListCampaigns(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: h.campaigns.List()})
}

func (h *CampaignHandler) GetStats(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: h.campaigns.Aggregate()})
}

func (h *CampaignHandler) UpdateCampaign(c *fiber.Ctx) error {
	var patch models.CampaignPatch
	if err := decodeCampaignBody(c, &patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	updated, err := h.campaigns.Update(c.Context(), c.Params("id"), patch)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: updated})
}

// DeleteCampaign requires ?confirmed=true: deletion is irreversible and the
// UI asks the user first. The view-state controller clears the selection
// when the deleted campaign was the selected one.
func (h *CampaignHandler) DeleteCampaign(c *fiber.Ctx) error {
	confirmed := c.Query("confirmed") == "true"
	if !confirmed && len(c.Body()) > 0 {
		var req dto.DeleteCampaignRequest
		if err := c.BodyParser(&req); err == nil {
			confirmed = req.Confirmed
		}
	}
	if err := h.viewState.DeleteCampaign(c.Context(), c.Params("id"), confirmed); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}

// decodeCampaignBody accepts nested JSON or a flat urlencoded form with
// dotted field names, which is unflattened before decoding.
func decodeCampaignBody(c *fiber.Ctx, out any) error {
	ct := string(c.Request().Header.ContentType())
	if strings.HasPrefix(ct, fiber.MIMEApplicationForm) || strings.HasPrefix(ct, fiber.MIMEMultipartForm) {
		flat := make(map[string]string)
		c.Request().PostArgs().VisitAll(func(k, v []byte) {
			flat[string(k)] = string(v)
		})
		if form, err := c.MultipartForm(); err == nil && form != nil {
			for k, vs := range form.Value {
				if len(vs) > 0 {
					flat[k] = vs[0]
				}
			}
		}
		nested, err := json.Marshal(forms.Unflatten(flat))
		if err != nil {
			return err
		}
		return json.Unmarshal(nested, out)
	}
	return c.BodyParser(out)
}

// respondError maps the service error taxonomy onto HTTP statuses.
func respondError(c *fiber.Ctx, err error) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: verr.Error()})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrNotConfirmed):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
}
