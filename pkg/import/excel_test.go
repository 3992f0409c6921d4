package importpkg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jordanlanch/realtycrm/pkg/domain"
	"github.com/jordanlanch/realtycrm/pkg/models"
)

// buildWorkbook writes rows into an in-memory .xlsx file.
func buildWorkbook(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, cell := range row {
			axis, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, axis, cell))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestImportFromExcel(t *testing.T) {
	svc := NewExcelImportService(nil)

	t.Run("parses valid rows", func(t *testing.T) {
		buf := buildWorkbook(t, [][]string{
			{"Name", "Email", "Phone", "LeadStatus", "Location", "Age"},
			{"Amira Haddad", "amira@example.com", "613-520-2600", "hot", "downtown", "42"},
			{"Noah Klein", "noah@example.com", "+16135202600", "", "", ""},
		})

		result, err := svc.ImportFromExcel(buf, DefaultExcelConfig())
		require.NoError(t, err)
		assert.Equal(t, 2, result.TotalRows)
		assert.Equal(t, 2, result.SuccessCount)
		assert.Zero(t, result.FailureCount)
		require.Len(t, result.Leads, 2)

		first := result.Leads[0]
		assert.Equal(t, "Amira Haddad", first.Name)
		assert.Equal(t, "+16135202600", first.Phone) // normalized
		assert.Equal(t, models.StatusHot, first.Status)
		assert.Equal(t, models.LocationDowntown, first.Location)
		assert.Equal(t, 42, first.Age)
		assert.Equal(t, models.Unassigned, first.AssignedTo)

		second := result.Leads[1]
		assert.Empty(t, second.Status) // stays missing, no default written
	})

	t.Run("bad rows fail individually with row numbers", func(t *testing.T) {
		buf := buildWorkbook(t, [][]string{
			{"Name", "Email", "Phone"},
			{"Good Row", "good@example.com", "613-520-2600"},
			{"", "missing@example.com", "613-520-2600"},
			{"Bad Phone", "bad@example.com", "not-a-phone"},
			{"Bad Email", "no-at-sign", "613-520-2600"},
		})

		result, err := svc.ImportFromExcel(buf, DefaultExcelConfig())
		require.NoError(t, err)
		assert.Equal(t, 4, result.TotalRows)
		assert.Equal(t, 1, result.SuccessCount)
		assert.Equal(t, 3, result.FailureCount)
		require.Len(t, result.Errors, 3)
		assert.Equal(t, 3, result.Errors[0].Row) // header is row 1
		assert.Equal(t, "name", result.Errors[0].Field)
		assert.Equal(t, "phone", result.Errors[1].Field)
		assert.Equal(t, "email", result.Errors[2].Field)
	})

	t.Run("unknown classification codes fail the row", func(t *testing.T) {
		buf := buildWorkbook(t, [][]string{
			{"Name", "Email", "Phone", "LeadStatus"},
			{"Odd Status", "odd@example.com", "613-520-2600", "volcanic"},
		})

		result, err := svc.ImportFromExcel(buf, DefaultExcelConfig())
		require.NoError(t, err)
		assert.Equal(t, 1, result.FailureCount)
		assert.Equal(t, "leadstatus", result.Errors[0].Field)
	})

	t.Run("missing required column fails wholesale", func(t *testing.T) {
		buf := buildWorkbook(t, [][]string{
			{"Name", "Email"},
			{"No Phone Column", "x@example.com"},
		})

		_, err := svc.ImportFromExcel(buf, DefaultExcelConfig())
		assert.True(t, domain.IsImportMalformed(err))
	})

	t.Run("unreadable file fails wholesale", func(t *testing.T) {
		_, err := svc.ImportFromExcel(strings.NewReader("this is not a workbook"), DefaultExcelConfig())
		assert.True(t, domain.IsImportMalformed(err))
	})

	t.Run("blank rows are skipped", func(t *testing.T) {
		buf := buildWorkbook(t, [][]string{
			{"Name", "Email", "Phone"},
			{"", "", ""},
			{"Real Row", "real@example.com", "613-520-2600"},
		})

		result, err := svc.ImportFromExcel(buf, DefaultExcelConfig())
		require.NoError(t, err)
		assert.Equal(t, 1, result.TotalRows)
		assert.Equal(t, 1, result.SuccessCount)
	})

	t.Run("validate only collects no records", func(t *testing.T) {
		buf := buildWorkbook(t, [][]string{
			{"Name", "Email", "Phone"},
			{"Row", "row@example.com", "613-520-2600"},
		})

		cfg := DefaultExcelConfig()
		cfg.ValidateOnly = true
		result, err := svc.ImportFromExcel(buf, cfg)
		require.NoError(t, err)
		assert.Equal(t, 1, result.SuccessCount)
		assert.Empty(t, result.Leads)
	})
}
