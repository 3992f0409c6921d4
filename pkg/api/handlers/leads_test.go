package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/realtycrm/pkg/domain"
	"github.com/jordanlanch/realtycrm/pkg/leads"
	"github.com/jordanlanch/realtycrm/pkg/models"
)

// fakeStore is an in-memory lead store for handler tests.
type fakeStore struct {
	leads  []models.Lead
	down   bool
	nextID int
}

func (s *fakeStore) FetchLeads(ctx context.Context) ([]models.Lead, error) {
	if s.down {
		return nil, domain.NewRemoteUnavailableError(fmt.Errorf("connection refused"))
	}
	out := make([]models.Lead, len(s.leads))
	copy(out, s.leads)
	return out, nil
}

func (s *fakeStore) SaveLead(ctx context.Context, lead models.Lead) (models.Lead, error) {
	if s.down {
		return models.Lead{}, domain.NewRemoteUnavailableError(fmt.Errorf("connection refused"))
	}
	if lead.ID == "" {
		s.nextID++
		lead.ID = fmt.Sprintf("lead-%d", s.nextID)
		s.leads = append(s.leads, lead)
		return lead, nil
	}
	for i := range s.leads {
		if s.leads[i].ID == lead.ID {
			s.leads[i] = lead
			return lead, nil
		}
	}
	s.leads = append(s.leads, lead)
	return lead, nil
}

func (s *fakeStore) DeleteLead(ctx context.Context, id string) error {
	for i := range s.leads {
		if s.leads[i].ID == id {
			s.leads = append(s.leads[:i], s.leads[i+1:]...)
			return nil
		}
	}
	return domain.NewNotFoundError("lead")
}

func (s *fakeStore) LookupUsers(ctx context.Context) ([]models.UserRef, error) {
	return []models.UserRef{{ID: "u1", DisplayName: "Priya Sharma"}}, nil
}

func setupLeadHandler(t *testing.T, store *fakeStore) (*echo.Echo, *LeadHandler, *leads.Service) {
	t.Helper()
	svc := leads.NewService(store, nil, nil)
	if len(store.leads) > 0 {
		_, err := svc.Refresh(context.Background())
		require.NoError(t, err)
	}
	return echo.New(), NewLeadHandler(svc, nil), svc
}

func seedLeads() []models.Lead {
	hot := models.Lead{ID: "1", Name: "Amira Haddad", Email: "amira@example.com", Phone: "+16135202600",
		Status: models.StatusHot, Source: models.SourceGoogleAds, Location: models.LocationDowntown}
	cold := models.Lead{ID: "2", Name: "Noah Klein", Email: "noah@example.com", Phone: "+16135202600",
		Status: models.StatusCold, Location: models.LocationMarkham}
	return []models.Lead{hot, cold}
}

func TestLeadHandler_ListLeads(t *testing.T) {
	e, h, _ := setupLeadHandler(t, &fakeStore{leads: seedLeads()})

	list := func(query string) models.LeadListResponse {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/leads"+query, nil)
		rec := httptest.NewRecorder()
		require.NoError(t, h.ListLeads(e.NewContext(req, rec)))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.LeadListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp
	}

	t.Run("no criteria returns everything with segments", func(t *testing.T) {
		resp := list("")
		assert.Equal(t, 2, resp.Total)
		assert.Equal(t, 1, resp.Segments.Temperature[models.StatusHot])
		assert.Equal(t, 1, resp.Segments.Location[models.LocationMarkham])
	})

	t.Run("status filter narrows set and segments", func(t *testing.T) {
		resp := list("?status=hot")
		assert.Equal(t, 1, resp.Total)
		assert.Zero(t, resp.Segments.Temperature[models.StatusCold])
	})

	t.Run("search by label", func(t *testing.T) {
		resp := list("?search=google%20ads")
		assert.Equal(t, 1, resp.Total)
		assert.Equal(t, "Amira Haddad", resp.Data[0].Name)
	})

	t.Run("age range params", func(t *testing.T) {
		resp := list("?age_min=10")
		assert.Zero(t, resp.Total) // no ages recorded
	})

	t.Run("bad range param is a 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/leads?age_min=abc", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, h.ListLeads(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLeadHandler_CreateLead(t *testing.T) {
	t.Run("valid lead is created", func(t *testing.T) {
		e, h, svc := setupLeadHandler(t, &fakeStore{})

		body := `{"name":"New Lead","email":"new@example.com","phone":"+16135202600"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/leads", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		require.NoError(t, h.CreateLead(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var lead models.Lead
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lead))
		assert.Equal(t, "lead-1", lead.ID)
		assert.Equal(t, models.Unassigned, lead.AssignedTo)
		assert.Equal(t, 1, svc.List(models.Criteria{}).Total)
	})

	t.Run("missing required fields is a validation error", func(t *testing.T) {
		e, h, _ := setupLeadHandler(t, &fakeStore{})

		body := `{"name":"No Contact Info"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/leads", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		require.NoError(t, h.CreateLead(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "validation_error")
	})

	t.Run("store outage is a 503", func(t *testing.T) {
		e, h, _ := setupLeadHandler(t, &fakeStore{down: true})

		body := `{"name":"New Lead","email":"new@example.com","phone":"+16135202600"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/leads", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		require.NoError(t, h.CreateLead(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "remote_unavailable")
	})
}

func TestLeadHandler_RefreshLeads(t *testing.T) {
	store := &fakeStore{leads: seedLeads()}
	e, h, _ := setupLeadHandler(t, store)

	t.Run("store failure still returns 200 with notice", func(t *testing.T) {
		store.down = true
		req := httptest.NewRequest(http.MethodPost, "/api/v1/leads/refresh", nil)
		rec := httptest.NewRecorder()

		require.NoError(t, h.RefreshLeads(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.RefreshResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "snapshot", resp.Source)
		assert.Equal(t, 2, resp.Total)
		assert.NotEmpty(t, resp.Notice)
	})
}

func TestLeadHandler_GetAndDelete(t *testing.T) {
	e, h, _ := setupLeadHandler(t, &fakeStore{leads: seedLeads()})

	t.Run("get existing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("1")

		require.NoError(t, h.GetLead(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("get missing is a 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("nope")

		require.NoError(t, h.GetLead(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete removes from working set", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("1")

		require.NoError(t, h.DeleteLead(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
