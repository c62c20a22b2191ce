package http

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/msull/emilytarot/internal/app"
	"github.com/msull/emilytarot/internal/domain"
	"github.com/msull/emilytarot/internal/ports"
)

// Handler wires the reading service to HTTP. It owns loading and
// persisting DialogueState around every controller call; the service
// itself never touches the store.
type Handler struct {
	svc      *app.ReadingService
	sessions ports.SessionStore
	logger   *slog.Logger
}

func NewHandler(svc *app.ReadingService, sessions ports.SessionStore, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, sessions: sessions, logger: logger}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/v1/reading", h.GetReading)
	e.POST("/v1/reading/:id/mode", h.SwitchMode)
	e.POST("/v1/reading/:id/turns", h.SubmitTurn)
	e.POST("/v1/reading/:id/draw", h.DrawCard)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// GetReading resumes the session named by the s query parameter, or
// starts a fresh one. A missing or unreadable session file silently
// falls back to a new session rather than erroring.
func (h *Handler) GetReading(c echo.Context) error {
	ctx := c.Request().Context()

	if id := c.QueryParam("s"); id != "" {
		state, err := h.sessions.Load(ctx, id)
		if err == nil {
			return c.JSON(http.StatusOK, toSessionResponse(state))
		}
		h.logger.InfoContext(ctx, "session not resumable, starting fresh", "session_id", id, "error", err)
	}

	state := h.svc.StartSession(ctx)
	if err := h.sessions.Save(ctx, state); err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, toSessionResponse(state))
}

func (h *Handler) SwitchMode(c echo.Context) error {
	var req ModeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	return h.withSession(c, func(state domain.DialogueState) (domain.DialogueState, error) {
		return h.svc.SwitchDrawMode(state, req.Mode)
	})
}

func (h *Handler) SubmitTurn(c echo.Context) error {
	var req TurnRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	return h.withSession(c, func(state domain.DialogueState) (domain.DialogueState, error) {
		return h.svc.SubmitTurn(c.Request().Context(), state, req.Answers, req.Cards)
	})
}

func (h *Handler) DrawCard(c echo.Context) error {
	var req DrawRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	seed := rand.Int64()
	if req.Seed != nil {
		seed = *req.Seed
	}

	return h.withSession(c, func(state domain.DialogueState) (domain.DialogueState, error) {
		return h.svc.DrawVirtualCard(c.Request().Context(), state, seed)
	})
}

// withSession loads the addressed session, applies op, and persists the
// returned state. The state is saved even when op fails: user-side
// transcript appends and a tripped moderation flag must survive a
// failed cycle.
func (h *Handler) withSession(c echo.Context, op func(domain.DialogueState) (domain.DialogueState, error)) error {
	ctx := c.Request().Context()

	state, err := h.sessions.Load(ctx, c.Param("id"))
	if err != nil {
		return h.mapError(c, err)
	}

	next, opErr := op(state)

	if err := h.sessions.Save(ctx, next); err != nil {
		h.logger.ErrorContext(ctx, "failed to persist session",
			"session_id", next.SessionID, "error", err)
		if opErr == nil {
			return h.mapError(c, err)
		}
	}

	if opErr != nil {
		return h.mapError(c, opErr)
	}
	return c.JSON(http.StatusOK, toSessionResponse(next))
}

func (h *Handler) mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "session not found"})
	case errors.Is(err, domain.ErrInvalidSubmission):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrSessionFlagged):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: domain.ErrSessionFlagged.Error()})
	case errors.Is(err, domain.ErrDrawComplete), errors.Is(err, domain.ErrAllCardsDrawn):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrDeckNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrUpstreamLLM), errors.Is(err, domain.ErrGenerationFailed):
		h.logger.Error("generation failure", "request_id", requestID, "error", err)
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "the reading could not continue, please try again"})
	default:
		h.logger.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
