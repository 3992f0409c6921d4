package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/realtycrm/pkg/leads"
	"github.com/jordanlanch/realtycrm/pkg/models"
)

func TestReferenceHandler_GetReferenceTables(t *testing.T) {
	e := echo.New()
	h := NewReferenceHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reference", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.GetReferenceTables(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string][]struct {
		Value string `json:"value"`
		Label string `json:"label"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	t.Run("labels differ from legacy codes", func(t *testing.T) {
		var websiteLabel, referralLabel string
		for _, opt := range resp["sources"] {
			switch opt.Value {
			case "website":
				websiteLabel = opt.Label
			case "refferal":
				referralLabel = opt.Label
			}
		}
		assert.Equal(t, "Website Enquiry", websiteLabel)
		assert.Equal(t, "Referral", referralLabel)
	})

	t.Run("all tables present", func(t *testing.T) {
		for _, key := range []string{"statuses", "lead_types", "sources", "responses",
			"client_types", "locations", "conversions", "languages", "religions"} {
			assert.NotEmpty(t, resp[key], key)
		}
	})
}

func TestUserHandler_ListUsers(t *testing.T) {
	svc := leads.NewService(&fakeStore{leads: seedLeads()}, nil, nil)
	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	e := echo.New()
	h := NewUserHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.ListUsers(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var users []models.UserRef
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, "Priya Sharma", users[0].DisplayName)
}
