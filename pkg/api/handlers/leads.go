package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apierrors "github.com/jordanlanch/realtycrm/pkg/api/errors"
	"github.com/jordanlanch/realtycrm/pkg/leads"
	"github.com/jordanlanch/realtycrm/pkg/metrics"
	"github.com/jordanlanch/realtycrm/pkg/models"
)

// LeadHandler handles lead-related HTTP requests.
type LeadHandler struct {
	service  *leads.Service
	validate *validator.Validate
	metrics  *metrics.Metrics
}

// NewLeadHandler creates a new lead handler.
func NewLeadHandler(service *leads.Service, m *metrics.Metrics) *LeadHandler {
	return &LeadHandler{
		service:  service,
		validate: validator.New(),
		metrics:  m,
	}
}

// ListLeads godoc
// @Summary List leads matching the active criteria
// @Description Filter the working set by search term, structured filters and toggles; segment counts derive from the filtered result
// @Tags Leads
// @Produce json
// @Param search query string false "Free-text search over visible fields"
// @Param status query string false "Lead status code"
// @Param no_calls_only query bool false "Only leads never called"
// @Success 200 {object} models.LeadListResponse
// @Router /api/v1/leads [get]
func (h *LeadHandler) ListLeads(c echo.Context) error {
	criteria, err := bindCriteria(c)
	if err != nil {
		return apierrors.BadRequestError(c, err)
	}

	resp := h.service.List(criteria)
	if h.metrics != nil && criteria.IsZero() {
		h.metrics.SetWorkingSetSize(resp.Total)
	}
	return c.JSON(http.StatusOK, resp)
}

// RefreshLeads godoc
// @Summary Refresh the working set from the lead store
// @Description Replaces the working set on success; on store failure the last known set stays visible and the response carries a notice
// @Tags Leads
// @Produce json
// @Success 200 {object} models.RefreshResponse
// @Router /api/v1/leads/refresh [post]
func (h *LeadHandler) RefreshLeads(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	resp, err := h.service.Refresh(ctx)
	if err != nil {
		return apierrors.Respond(c, err)
	}
	if h.metrics != nil {
		h.metrics.ObserveRefresh(resp.Source)
		h.metrics.SetWorkingSetSize(resp.Total)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetLead returns a single lead from the working set.
func (h *LeadHandler) GetLead(c echo.Context) error {
	lead, err := h.service.Get(c.Param("id"))
	if err != nil {
		return apierrors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, lead)
}

// CreateLead godoc
// @Summary Create a lead
// @Tags Leads
// @Accept json
// @Produce json
// @Success 201 {object} models.Lead
// @Failure 400 {object} models.ErrorResponse
// @Router /api/v1/leads [post]
func (h *LeadHandler) CreateLead(c echo.Context) error {
	var lead models.Lead
	if err := c.Bind(&lead); err != nil {
		return apierrors.BadRequestError(c, err)
	}
	lead.ID = ""

	if err := h.validate.Struct(lead); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	saved, err := h.service.Save(ctx, lead)
	if err != nil {
		return apierrors.Respond(c, err)
	}
	return c.JSON(http.StatusCreated, saved)
}

// UpdateLead replaces a lead's record.
func (h *LeadHandler) UpdateLead(c echo.Context) error {
	var lead models.Lead
	if err := c.Bind(&lead); err != nil {
		return apierrors.BadRequestError(c, err)
	}
	lead.ID = c.Param("id")

	if err := h.validate.Struct(lead); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	if _, err := h.service.Get(lead.ID); err != nil {
		return apierrors.Respond(c, err)
	}

	saved, err := h.service.Save(ctx, lead)
	if err != nil {
		return apierrors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, saved)
}

// DeleteLead removes a lead from the store and the working set.
func (h *LeadHandler) DeleteLead(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, c.Param("id")); err != nil {
		return apierrors.Respond(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// bindCriteria reads the flat query parameters plus the range filters.
func bindCriteria(c echo.Context) (models.Criteria, error) {
	var criteria models.Criteria
	if err := c.Bind(&criteria); err != nil {
		return models.Criteria{}, err
	}

	var err error
	if criteria.AgeRange.Min, err = intParam(c, "age_min"); err != nil {
		return models.Criteria{}, err
	}
	if criteria.AgeRange.Max, err = intParam(c, "age_max"); err != nil {
		return models.Criteria{}, err
	}
	if criteria.SalesRange.Min, err = intParam(c, "sales_min"); err != nil {
		return models.Criteria{}, err
	}
	if criteria.SalesRange.Max, err = intParam(c, "sales_max"); err != nil {
		return models.Criteria{}, err
	}
	if criteria.LastClosedDate.Start, err = dateParam(c, "closed_after"); err != nil {
		return models.Criteria{}, err
	}
	if criteria.LastClosedDate.End, err = dateParam(c, "closed_before"); err != nil {
		return models.Criteria{}, err
	}

	return criteria, nil
}

func intParam(c echo.Context, name string) (*int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", name)
	}
	return &v, nil
}

func dateParam(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be a YYYY-MM-DD date", name)
	}
	return &t, nil
}
