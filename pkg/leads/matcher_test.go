package leads

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jordanlanch/realtycrm/pkg/models"
)

func testLead(id, name string) models.Lead {
	return models.Lead{
		ID:        id,
		Name:      name,
		Email:     name + "@example.com",
		Phone:     "+14165550100",
		CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestMatches_EmptyCriteria(t *testing.T) {
	users := models.UserDirectory{}

	t.Run("empty criteria matches every lead", func(t *testing.T) {
		leads := []models.Lead{
			testLead("1", "Amira Haddad"),
			{ID: "2"}, // even a record with nothing filled in
		}
		for _, lead := range leads {
			assert.True(t, Matches(lead, models.Criteria{}, users))
		}
	})
}

func TestMatches_Search(t *testing.T) {
	users := models.NewUserDirectory([]models.UserRef{
		{ID: "u1", DisplayName: "Priya Sharma"},
	})

	lead := testLead("1", "José Álvarez")
	lead.Source = models.SourceGoogleAds
	lead.Status = models.StatusHot
	lead.AssignedTo = "u1"
	lead.Notes = "[2025-06-01 10:00] prefers lakefront condos"
	lead.PropertyPreferences.Features = []string{"parking", "balcony"}
	lead.CallHistory = []models.CallEntry{{
		Date:   time.Now(),
		Points: []models.CallPoint{{Text: "wants to close before September"}},
	}}

	t.Run("matches name accent-insensitively", func(t *testing.T) {
		assert.True(t, Matches(lead, models.Criteria{Search: "jose alvarez"}, users))
	})

	t.Run("matches source by display label", func(t *testing.T) {
		assert.True(t, Matches(lead, models.Criteria{Search: "Google Ads"}, users))
		assert.True(t, Matches(lead, models.Criteria{Search: "ads"}, users))
	})

	t.Run("matches assigned user display name", func(t *testing.T) {
		assert.True(t, Matches(lead, models.Criteria{Search: "priya"}, users))
	})

	t.Run("matches note text", func(t *testing.T) {
		assert.True(t, Matches(lead, models.Criteria{Search: "lakefront"}, users))
	})

	t.Run("matches preference features", func(t *testing.T) {
		assert.True(t, Matches(lead, models.Criteria{Search: "balcony"}, users))
	})

	t.Run("matches call point text", func(t *testing.T) {
		assert.True(t, Matches(lead, models.Criteria{Search: "close before september"}, users))
	})

	t.Run("no field containing the term means no match", func(t *testing.T) {
		assert.False(t, Matches(lead, models.Criteria{Search: "zzz-not-there"}, users))
	})

	t.Run("referral label matches despite stored code spelling", func(t *testing.T) {
		ref := testLead("2", "Dana Wells")
		ref.Source = models.SourceReferral // stored as "refferal"
		assert.True(t, Matches(ref, models.Criteria{Search: "referral"}, users))
	})
}

func TestMatches_UnsetClassifications(t *testing.T) {
	users := models.UserDirectory{}
	bare := testLead("1", "Noah Klein") // no status, no type

	t.Run("display defaults never match search", func(t *testing.T) {
		// "Cold" and "Buyer" are rendering fallbacks for unset fields,
		// not lead data; searching for them must not surface such leads.
		assert.False(t, Matches(bare, models.Criteria{Search: "cold"}, users))
		assert.False(t, Matches(bare, models.Criteria{Search: "buyer"}, users))
	})

	t.Run("stored classifications still match their labels", func(t *testing.T) {
		cold := testLead("2", "Lena Fischer")
		cold.Status = models.StatusCold
		assert.True(t, Matches(cold, models.Criteria{Search: "cold"}, users))

		buyer := testLead("3", "Omar Siddiqui")
		buyer.Type = models.TypeBuyer
		assert.True(t, Matches(buyer, models.Criteria{Search: "buyer"}, users))
	})

	t.Run("unset filter imposes no constraint", func(t *testing.T) {
		assert.True(t, Matches(bare, models.Criteria{}, users))
		assert.True(t, Matches(bare, models.Criteria{Search: "noah"}, users))
	})

	t.Run("specific filter value excludes the unset lead", func(t *testing.T) {
		assert.False(t, Matches(bare, models.Criteria{Status: models.StatusCold}, users))
		assert.False(t, Matches(bare, models.Criteria{Type: models.TypeBuyer}, users))
	})
}

func TestMatches_StructuredFilters(t *testing.T) {
	users := models.UserDirectory{}

	lead := testLead("1", "Amira Haddad")
	lead.Status = models.StatusHot
	lead.Type = models.TypeBuyer
	lead.Source = models.SourceWebsite
	lead.Location = models.LocationDowntown
	lead.Language = "French"
	lead.Age = 42
	lead.SalesHistory.ClosedSales = 3

	t.Run("filters combine with AND", func(t *testing.T) {
		assert.True(t, Matches(lead, models.Criteria{
			Status: models.StatusHot,
			Type:   models.TypeBuyer,
		}, users))
		assert.False(t, Matches(lead, models.Criteria{
			Status: models.StatusHot,
			Type:   models.TypeSeller,
		}, users))
	})

	t.Run("search ANDs with structured filters", func(t *testing.T) {
		assert.True(t, Matches(lead, models.Criteria{Search: "amira", Status: models.StatusHot}, users))
		assert.False(t, Matches(lead, models.Criteria{Search: "amira", Status: models.StatusCold}, users))
	})

	t.Run("lead without a field never matches a specific value", func(t *testing.T) {
		bare := testLead("2", "Noah Klein") // no status set
		assert.False(t, Matches(bare, models.Criteria{Status: models.StatusCold}, users))
		assert.True(t, Matches(bare, models.Criteria{}, users))
	})

	t.Run("demographic filters are case-insensitive", func(t *testing.T) {
		assert.True(t, Matches(lead, models.Criteria{Language: "french"}, users))
		assert.False(t, Matches(lead, models.Criteria{Language: "spanish"}, users))
	})

	t.Run("age range", func(t *testing.T) {
		min, max := 40, 50
		assert.True(t, Matches(lead, models.Criteria{AgeRange: models.IntRange{Min: &min, Max: &max}}, users))
		tooYoung := 45
		assert.False(t, Matches(lead, models.Criteria{AgeRange: models.IntRange{Min: &tooYoung}}, users))
	})

	t.Run("bounded last-closed-date range excludes leads with no closed sale", func(t *testing.T) {
		start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		assert.False(t, Matches(lead, models.Criteria{
			LastClosedDate: models.DateRange{Start: &start},
		}, users))

		closed := lead
		when := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		closed.SalesHistory.LastClosedDate = &when
		assert.True(t, Matches(closed, models.Criteria{
			LastClosedDate: models.DateRange{Start: &start},
		}, users))
	})
}

func TestMatches_Toggles(t *testing.T) {
	users := models.UserDirectory{}

	called := testLead("1", "Lena Fischer")
	called.CallHistory = []models.CallEntry{{Date: time.Now()}}
	uncalled := testLead("2", "Omar Siddiqui")

	t.Run("no-calls-only keeps leads without call history", func(t *testing.T) {
		c := models.Criteria{NoCallsOnly: true}
		assert.False(t, Matches(called, c, users))
		assert.True(t, Matches(uncalled, c, users))
	})

	t.Run("website-enquiries-only keeps website source", func(t *testing.T) {
		web := testLead("3", "Chen Wei")
		web.Source = models.SourceWebsite
		meta := testLead("4", "Ana Costa")
		meta.Source = models.SourceMeta

		c := models.Criteria{WebsiteEnquiriesOnly: true}
		assert.True(t, Matches(web, c, users))
		assert.False(t, Matches(meta, c, users))
		assert.False(t, Matches(uncalled, c, users)) // no source set
	})
}

func TestFilter(t *testing.T) {
	users := models.UserDirectory{}

	a := testLead("1", "Amira Haddad")
	a.Status = models.StatusHot
	b := testLead("2", "Noah Klein")
	b.Status = models.StatusCold
	c := testLead("3", "Chen Wei")
	c.Status = models.StatusHot

	all := []models.Lead{a, b, c}

	t.Run("preserves input order", func(t *testing.T) {
		got := Filter(all, models.Criteria{Status: models.StatusHot}, users)
		assert.Len(t, got, 2)
		assert.Equal(t, "1", got[0].ID)
		assert.Equal(t, "3", got[1].ID)
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		_ = Filter(all, models.Criteria{Status: models.StatusHot}, users)
		assert.Len(t, all, 3)
		assert.Equal(t, "2", all[1].ID)
	})
}
