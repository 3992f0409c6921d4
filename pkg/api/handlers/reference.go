package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jordanlanch/realtycrm/pkg/reference"
)

// ReferenceHandler serves the immutable option tables the dashboard
// renders its dropdowns from.
type ReferenceHandler struct{}

// NewReferenceHandler creates a new reference handler.
func NewReferenceHandler() *ReferenceHandler {
	return &ReferenceHandler{}
}

type referenceResponse struct {
	Statuses    []reference.Option `json:"statuses"`
	LeadTypes   []reference.Option `json:"lead_types"`
	Sources     []reference.Option `json:"sources"`
	Responses   []reference.Option `json:"responses"`
	ClientTypes []reference.Option `json:"client_types"`
	Locations   []reference.Option `json:"locations"`
	Conversions []reference.Option `json:"conversions"`
	Languages   []reference.Option `json:"languages"`
	Religions   []reference.Option `json:"religions"`
}

// GetReferenceTables returns every option table in display order.
func (h *ReferenceHandler) GetReferenceTables(c echo.Context) error {
	return c.JSON(http.StatusOK, referenceResponse{
		Statuses:    reference.Statuses,
		LeadTypes:   reference.LeadTypes,
		Sources:     reference.Sources,
		Responses:   reference.Responses,
		ClientTypes: reference.ClientTypes,
		Locations:   reference.Locations,
		Conversions: reference.Conversions,
		Languages:   reference.Languages,
		Religions:   reference.Religions,
	})
}
