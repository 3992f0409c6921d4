package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apierrors "github.com/jordanlanch/realtycrm/pkg/api/errors"
	"github.com/jordanlanch/realtycrm/pkg/domain"
	importpkg "github.com/jordanlanch/realtycrm/pkg/import"
	"github.com/jordanlanch/realtycrm/pkg/leads"
)

// ImportHandler handles bulk lead uploads.
type ImportHandler struct {
	service  *leads.Service
	importer *importpkg.ExcelImportService
	config   importpkg.ExcelConfig
}

// NewImportHandler creates a new import handler.
func NewImportHandler(service *leads.Service, importer *importpkg.ExcelImportService, config importpkg.ExcelConfig) *ImportHandler {
	return &ImportHandler{
		service:  service,
		importer: importer,
		config:   config,
	}
}

type importResponse struct {
	*importpkg.ImportResult
	Imported int `json:"imported"`
}

// ImportLeads godoc
// @Summary Import leads from an .xlsx upload
// @Description Parses the workbook, reports per-row failures, and appends valid rows to the working set without deduplication
// @Tags Leads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Workbook with name, email and phone columns"
// @Success 200 {object} importpkg.ImportResult
// @Failure 400 {object} models.ErrorResponse
// @Router /api/v1/leads/import [post]
func (h *ImportHandler) ImportLeads(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apierrors.Respond(c, domain.NewBadRequestError("file upload is required"))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return apierrors.Respond(c, domain.NewImportMalformedError(err))
	}
	defer src.Close()

	result, err := h.importer.ImportFromExcel(src, h.config)
	if err != nil {
		return apierrors.Respond(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 60*time.Second)
	defer cancel()

	imported := h.service.Import(ctx, result.Leads)

	return c.JSON(http.StatusOK, importResponse{
		ImportResult: result,
		Imported:     imported,
	})
}
