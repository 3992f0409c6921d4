package importpkg

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jordanlanch/realtycrm/pkg/domain"
	"github.com/jordanlanch/realtycrm/pkg/logger"
	"github.com/jordanlanch/realtycrm/pkg/models"
	"github.com/jordanlanch/realtycrm/pkg/phone"
	"github.com/jordanlanch/realtycrm/pkg/reference"
)

// ExcelImportService parses bulk lead uploads from .xlsx workbooks.
type ExcelImportService struct {
	log logger.Logger
}

// NewExcelImportService creates a new Excel import service
func NewExcelImportService(log logger.Logger) *ExcelImportService {
	if log == nil {
		log = logger.Default()
	}
	return &ExcelImportService{log: log}
}

// ImportResult holds the result of an Excel import operation
type ImportResult struct {
	TotalRows    int           `json:"total_rows"`
	SuccessCount int           `json:"success_count"`
	FailureCount int           `json:"failure_count"`
	Errors       []ImportError `json:"errors,omitempty"`
	Duration     string        `json:"duration"`
	Leads        []models.Lead `json:"-"`
}

// ImportError represents an error during import
type ImportError struct {
	Row     int    `json:"row"`
	Field   string `json:"field,omitempty"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}

// ExcelConfig holds configuration for Excel import
type ExcelConfig struct {
	MaxRows      int    // Maximum data rows to import (0 = unlimited)
	PhoneRegion  string // Default region for phone normalization
	ValidateOnly bool   // Only validate, don't collect records
}

// DefaultExcelConfig returns default configuration
func DefaultExcelConfig() ExcelConfig {
	return ExcelConfig{
		MaxRows:     10000,
		PhoneRegion: "CA",
	}
}

// RequiredFields defines the required workbook columns
var RequiredFields = []string{
	"name",
	"email",
	"phone",
}

// OptionalFields defines optional workbook columns
var OptionalFields = []string{
	"property",
	"leadstatus",
	"leadtype",
	"leadsource",
	"leadresponse",
	"clienttype",
	"location",
	"age",
	"gender",
	"language",
	"religion",
	"notes",
}

// ImportFromExcel parses leads from an .xlsx reader. An unreadable
// workbook fails wholesale; a bad row only fails that row, and every row
// error is collected with its row number so the caller can report them
// all at once.
func (s *ExcelImportService) ImportFromExcel(r io.Reader, config ExcelConfig) (*ImportResult, error) {
	startTime := time.Now()

	result := &ImportResult{
		Errors: []ImportError{},
		Leads:  []models.Lead{},
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, domain.NewImportMalformedError(fmt.Errorf("failed to open workbook: %w", err))
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.NewImportMalformedError(fmt.Errorf("workbook has no sheets"))
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, domain.NewImportMalformedError(fmt.Errorf("failed to read sheet %q: %w", sheets[0], err))
	}
	if len(rows) == 0 {
		return nil, domain.NewImportMalformedError(fmt.Errorf("workbook has no header row"))
	}

	headerMap := make(map[string]int)
	for i, header := range rows[0] {
		headerMap[strings.ToLower(strings.TrimSpace(header))] = i
	}

	for _, field := range RequiredFields {
		if _, ok := headerMap[field]; !ok {
			return nil, domain.NewImportMalformedError(fmt.Errorf("missing required column: %s", field))
		}
	}

	for rowNum, row := range rows[1:] {
		if config.MaxRows > 0 && result.TotalRows >= config.MaxRows {
			s.log.Warn("reached max rows limit", "max_rows", config.MaxRows)
			break
		}
		if emptyRow(row) {
			continue
		}
		result.TotalRows++

		// Workbook rows are 1-based and row 1 is the header.
		lead, rowErr := s.parseRow(row, headerMap, rowNum+2, config.PhoneRegion)
		if rowErr != nil {
			result.Errors = append(result.Errors, *rowErr)
			result.FailureCount++
			continue
		}

		result.SuccessCount++
		if !config.ValidateOnly {
			result.Leads = append(result.Leads, *lead)
		}
	}

	result.Duration = time.Since(startTime).String()

	s.log.Info("excel import parsed",
		"success", result.SuccessCount,
		"failures", result.FailureCount,
		"duration", result.Duration)

	return result, nil
}

// parseRow converts one workbook row into a lead record.
func (s *ExcelImportService) parseRow(row []string, headerMap map[string]int, rowNum int, region string) (*models.Lead, *ImportError) {
	getField := func(fieldName string) string {
		if idx, ok := headerMap[fieldName]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	lead := &models.Lead{
		Name:     getField("name"),
		Email:    getField("email"),
		Phone:    getField("phone"),
		Property: getField("property"),
		Gender:   getField("gender"),
		Language: getField("language"),
		Religion: getField("religion"),
		Notes:    getField("notes"),
	}

	for _, required := range RequiredFields {
		if getField(required) == "" {
			return nil, &ImportError{
				Row:     rowNum,
				Field:   required,
				Message: fmt.Sprintf("%s is required", required),
			}
		}
	}

	if !strings.Contains(lead.Email, "@") {
		return nil, &ImportError{
			Row:     rowNum,
			Field:   "email",
			Value:   lead.Email,
			Message: "invalid email address",
		}
	}

	normalized, err := phone.Normalize(lead.Phone, region)
	if err != nil {
		return nil, &ImportError{
			Row:     rowNum,
			Field:   "phone",
			Value:   lead.Phone,
			Message: "invalid phone number",
		}
	}
	lead.Phone = normalized

	if v := getField("leadstatus"); v != "" {
		if !reference.ValidStatus(models.Status(v)) {
			return nil, &ImportError{Row: rowNum, Field: "leadstatus", Value: v, Message: "unknown lead status"}
		}
		lead.Status = models.Status(v)
	}
	if v := getField("location"); v != "" {
		if !reference.ValidLocation(models.Location(v)) {
			return nil, &ImportError{Row: rowNum, Field: "location", Value: v, Message: "unknown location"}
		}
		lead.Location = models.Location(v)
	}

	// Remaining classification columns are stored as-is; unknown codes
	// simply never match a structured filter.
	lead.Type = models.LeadType(getField("leadtype"))
	lead.Source = models.Source(getField("leadsource"))
	lead.Response = models.Response(getField("leadresponse"))
	lead.ClientType = models.ClientType(getField("clienttype"))

	if v := getField("age"); v != "" {
		age, err := strconv.Atoi(v)
		if err != nil || age < 0 {
			return nil, &ImportError{Row: rowNum, Field: "age", Value: v, Message: "invalid age"}
		}
		lead.Age = age
	}

	lead.AssignedTo = models.Unassigned
	lead.CreatedAt = time.Now().UTC()

	return lead, nil
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
