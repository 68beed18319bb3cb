package handlers

import (
	"github.com/adpilot/dashboard/internal/http/dto"
	"github.com/adpilot/dashboard/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SessionHandler struct {
	sessions  *services.SessionService
	viewState *services.ViewStateService
	log       *zap.Logger
}

func NewSessionHandler(sessions *services.SessionService, viewState *services.ViewStateService, log *zap.Logger) *SessionHandler {
	return &SessionHandler{sessions: sessions, viewState: viewState, log: log}
}

func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	user, token, err := h.sessions.Login(c.Context(), req.Name, req.Email)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(dto.AuthResponse{Token: token, User: user})
}

// Logout clears the session and returns the view state to the dashboard.
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	h.sessions.Logout(c.Context())
	h.viewState.Reset()
	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *SessionHandler) Me(c *fiber.Ctx) error {
	user := h.sessions.Current()
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "not logged in"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: user})
}
