package leads

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/jordanlanch/realtycrm/pkg/models"
	"github.com/jordanlanch/realtycrm/pkg/reference"
)

// removeAccents removes diacritical marks from Unicode strings
// Example: "Bogotá" → "Bogota", "São Paulo" → "Sao Paulo"
func removeAccents(s string) string {
	// NFD (Canonical Decomposition) breaks "é" into "e" + combining acute
	t := norm.NFD.String(s)

	// Filter out combining marks (accents)
	result := strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Mn, r) { // Mn = Mark, Nonspacing
			return -1
		}
		return r
	}, t)

	// NFC (Canonical Composition) recomposes characters
	return norm.NFC.String(result)
}

// fold case- and accent-folds a string for substring matching.
func fold(s string) string {
	return strings.ToLower(removeAccents(s))
}

// SearchableSurface flattens a lead into one folded string covering
// everything the user can see for it: basic contact info, the display
// labels of every classification (not the stored codes), the assigned
// user's name, notes, every preference list entry, and every call point.
// Search must match what the interface shows, so labels are resolved
// through the reference tables. Unset classifications contribute nothing;
// the display-only defaults ("Cold", "Buyer") never enter the surface.
func SearchableSurface(lead models.Lead, users models.UserDirectory) string {
	parts := make([]string, 0, 16)

	add := func(values ...string) {
		for _, v := range values {
			if v != "" {
				parts = append(parts, v)
			}
		}
	}

	add(lead.Name, lead.Email, lead.Phone, lead.Property)
	add(
		reference.StatusLabel(lead.Status),
		reference.TypeLabel(lead.Type),
		reference.SourceLabel(lead.Source),
		reference.ResponseLabel(lead.Response),
		reference.ClientTypeLabel(lead.ClientType),
		reference.LocationLabel(lead.Location),
		reference.ConversionLabel(lead.Conversion),
	)

	if lead.Assigned() {
		add(users.DisplayName(lead.AssignedTo))
	}

	add(lead.Notes)

	add(lead.PropertyPreferences.PropertyTypes...)
	for _, loc := range lead.PropertyPreferences.Locations {
		add(reference.LocationLabel(loc), string(loc))
	}
	add(lead.PropertyPreferences.Features...)

	for _, call := range lead.CallHistory {
		for _, point := range call.Points {
			add(point.Text)
		}
	}

	return fold(strings.Join(parts, " "))
}
