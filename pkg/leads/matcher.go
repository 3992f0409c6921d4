package leads

import (
	"strings"

	"github.com/jordanlanch/realtycrm/pkg/models"
	"github.com/jordanlanch/realtycrm/pkg/reference"
)

// Matches evaluates one lead against the active criteria. The search term
// is OR-probed across the lead's individually checked fields (and the
// concatenated surface); structured filters AND against that result. An
// unset filter imposes no constraint; a set filter requires an exact
// match, so a lead missing that field never matches a specific value.
func Matches(lead models.Lead, c models.Criteria, users models.UserDirectory) bool {
	if c.Search != "" && !matchesSearch(lead, c.Search, users) {
		return false
	}

	if c.Status != "" && lead.Status != c.Status {
		return false
	}
	if c.Type != "" && lead.Type != c.Type {
		return false
	}
	if c.Source != "" && lead.Source != c.Source {
		return false
	}
	if c.Response != "" && lead.Response != c.Response {
		return false
	}
	if c.ClientType != "" && lead.ClientType != c.ClientType {
		return false
	}
	if c.AssignedTo != "" && lead.AssignedTo != c.AssignedTo {
		return false
	}
	if c.Location != "" && lead.Location != c.Location {
		return false
	}
	if c.Conversion != "" && lead.Conversion != c.Conversion {
		return false
	}

	if c.Language != "" && !strings.EqualFold(lead.Language, c.Language) {
		return false
	}
	if c.Gender != "" && !strings.EqualFold(lead.Gender, c.Gender) {
		return false
	}
	if c.Religion != "" && !strings.EqualFold(lead.Religion, c.Religion) {
		return false
	}

	if !c.AgeRange.Contains(lead.Age) {
		return false
	}
	if !c.SalesRange.Contains(lead.SalesHistory.ClosedSales) {
		return false
	}
	if !c.LastClosedDate.Contains(lead.SalesHistory.LastClosedDate) {
		return false
	}

	if c.NoCallsOnly && len(lead.CallHistory) > 0 {
		return false
	}
	if c.WebsiteEnquiriesOnly && lead.Source != models.SourceWebsite {
		return false
	}

	return true
}

// matchesSearch probes each searchable field independently, so a field
// containing the term is sufficient even where concatenation ordering
// could obscure it, and finally the full surface.
func matchesSearch(lead models.Lead, search string, users models.UserDirectory) bool {
	term := fold(search)
	if term == "" {
		return true
	}

	contains := func(v string) bool {
		return v != "" && strings.Contains(fold(v), term)
	}

	// Basic info
	if contains(lead.Name) || contains(lead.Email) || contains(lead.Phone) || contains(lead.Property) {
		return true
	}

	// Classification display labels, never the raw codes
	if contains(reference.StatusLabel(lead.Status)) ||
		contains(reference.TypeLabel(lead.Type)) ||
		contains(reference.SourceLabel(lead.Source)) ||
		contains(reference.ResponseLabel(lead.Response)) ||
		contains(reference.ClientTypeLabel(lead.ClientType)) ||
		contains(reference.LocationLabel(lead.Location)) ||
		contains(reference.ConversionLabel(lead.Conversion)) {
		return true
	}

	// Assigned user's display name
	if lead.Assigned() && contains(users.DisplayName(lead.AssignedTo)) {
		return true
	}

	// Notes
	if contains(lead.Notes) {
		return true
	}

	// Property preferences
	for _, pt := range lead.PropertyPreferences.PropertyTypes {
		if contains(pt) {
			return true
		}
	}
	for _, loc := range lead.PropertyPreferences.Locations {
		if contains(reference.LocationLabel(loc)) || contains(string(loc)) {
			return true
		}
	}
	for _, f := range lead.PropertyPreferences.Features {
		if contains(f) {
			return true
		}
	}

	// Call points
	for _, call := range lead.CallHistory {
		for _, point := range call.Points {
			if contains(point.Text) {
				return true
			}
		}
	}

	return strings.Contains(SearchableSurface(lead, users), term)
}

// Filter returns the subset of leads matching the criteria, in input
// order. The input slice is never mutated.
func Filter(all []models.Lead, c models.Criteria, users models.UserDirectory) []models.Lead {
	matched := make([]models.Lead, 0, len(all))
	for _, lead := range all {
		if Matches(lead, c, users) {
			matched = append(matched, lead)
		}
	}
	return matched
}
