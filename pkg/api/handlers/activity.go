package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	apierrors "github.com/jordanlanch/realtycrm/pkg/api/errors"
	"github.com/jordanlanch/realtycrm/pkg/domain"
	"github.com/jordanlanch/realtycrm/pkg/leads"
	"github.com/jordanlanch/realtycrm/pkg/models"
)

// ActivityHandler handles the per-lead activity surfaces: notes, calls,
// tasks and showings.
type ActivityHandler struct {
	service *leads.Service
}

// NewActivityHandler creates a new activity handler.
func NewActivityHandler(service *leads.Service) *ActivityHandler {
	return &ActivityHandler{service: service}
}

type noteRequest struct {
	Text string `json:"text"`
}

// AddNote appends a timestamped note to a lead.
func (h *ActivityHandler) AddNote(c echo.Context) error {
	var req noteRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BadRequestError(c, err)
	}
	if req.Text == "" {
		return apierrors.Respond(c, domain.NewValidationError("note text is required"))
	}

	ctx, cancel := timeout(c)
	defer cancel()

	lead, err := h.service.AddNote(ctx, c.Param("id"), req.Text)
	if err != nil {
		return apierrors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, lead)
}

// LogCall records a call against a lead's call history.
func (h *ActivityHandler) LogCall(c echo.Context) error {
	var call models.CallEntry
	if err := c.Bind(&call); err != nil {
		return apierrors.BadRequestError(c, err)
	}

	ctx, cancel := timeout(c)
	defer cancel()

	lead, err := h.service.LogCall(ctx, c.Param("id"), call)
	if err != nil {
		return apierrors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, lead)
}

type callPointRequest struct {
	Text string `json:"text"`
}

// AddCallPoint appends an annotation to one call in the history.
func (h *ActivityHandler) AddCallPoint(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return apierrors.Respond(c, domain.NewBadRequestError("call index must be an integer"))
	}

	var req callPointRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BadRequestError(c, err)
	}
	if req.Text == "" {
		return apierrors.Respond(c, domain.NewValidationError("point text is required"))
	}

	ctx, cancel := timeout(c)
	defer cancel()

	lead, err := h.service.AddCallPoint(ctx, c.Param("id"), index, req.Text)
	if err != nil {
		return apierrors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, lead)
}

// AddTask creates a pending follow-up task.
func (h *ActivityHandler) AddTask(c echo.Context) error {
	var task models.Task
	if err := c.Bind(&task); err != nil {
		return apierrors.BadRequestError(c, err)
	}

	ctx, cancel := timeout(c)
	defer cancel()

	lead, err := h.service.AddTask(ctx, c.Param("id"), task)
	if err != nil {
		return apierrors.Respond(c, err)
	}
	return c.JSON(http.StatusCreated, lead)
}

// ToggleTask flips a task between pending and completed.
func (h *ActivityHandler) ToggleTask(c echo.Context) error {
	ctx, cancel := timeout(c)
	defer cancel()

	lead, err := h.service.ToggleTask(ctx, c.Param("id"), c.Param("taskId"))
	if err != nil {
		return apierrors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, lead)
}

// CancelTask moves a pending task to its terminal cancelled state.
func (h *ActivityHandler) CancelTask(c echo.Context) error {
	ctx, cancel := timeout(c)
	defer cancel()

	lead, err := h.service.CancelTask(ctx, c.Param("id"), c.Param("taskId"))
	if err != nil {
		return apierrors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, lead)
}

// ScheduleShowing books a property visit for a lead.
func (h *ActivityHandler) ScheduleShowing(c echo.Context) error {
	var showing models.Showing
	if err := c.Bind(&showing); err != nil {
		return apierrors.BadRequestError(c, err)
	}

	ctx, cancel := timeout(c)
	defer cancel()

	lead, err := h.service.ScheduleShowing(ctx, c.Param("id"), showing)
	if err != nil {
		return apierrors.Respond(c, err)
	}
	return c.JSON(http.StatusCreated, lead)
}

func timeout(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 10*time.Second)
}
