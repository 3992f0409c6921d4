// Package reference holds the immutable value-to-label tables the
// dashboard renders. Search matches against these labels, not the stored
// codes, so the matcher and normalizer resolve through here.
package reference

import "github.com/jordanlanch/realtycrm/pkg/models"

// Option pairs a stored value with its display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Ordered option lists, in the order the dashboard presents them.
var (
	Statuses = []Option{
		{Value: string(models.StatusCold), Label: "Cold"},
		{Value: string(models.StatusWarm), Label: "Warm"},
		{Value: string(models.StatusHot), Label: "Hot"},
		{Value: string(models.StatusMild), Label: "Mild"},
	}

	LeadTypes = []Option{
		{Value: string(models.TypePreConstruction), Label: "Pre Construction"},
		{Value: string(models.TypeResale), Label: "Resale"},
		{Value: string(models.TypeSeller), Label: "Seller"},
		{Value: string(models.TypeBuyer), Label: "Buyer"},
	}

	Sources = []Option{
		{Value: string(models.SourceWebsite), Label: "Website Enquiry"},
		{Value: string(models.SourceGoogleAds), Label: "Google Ads"},
		{Value: string(models.SourceMeta), Label: "Meta"},
		{Value: string(models.SourceReferral), Label: "Referral"},
		{Value: string(models.SourceLinkedIn), Label: "LinkedIn"},
		{Value: string(models.SourceYouTube), Label: "YouTube"},
	}

	Responses = []Option{
		{Value: string(models.ResponseActive), Label: "Active"},
		{Value: string(models.ResponseInactive), Label: "Inactive"},
		{Value: string(models.ResponseNotAnswering), Label: "Not Answering"},
		{Value: string(models.ResponseNotActivelyAnswering), Label: "Not Actively Answering"},
		{Value: string(models.ResponseAlwaysResponding), Label: "Always Responding"},
	}

	ClientTypes = []Option{
		{Value: string(models.ClientInvestor), Label: "Investor"},
		{Value: string(models.ClientCustomBuyer), Label: "Custom Buyer"},
		{Value: string(models.ClientFirstHomeBuyer), Label: "First Home Buyer"},
		{Value: string(models.ClientSeasonalInvestor), Label: "Seasonal Investor"},
		{Value: string(models.ClientCommercialBuyer), Label: "Commercial Buyer"},
	}

	Locations = []Option{
		{Value: string(models.LocationDowntown), Label: "Downtown"},
		{Value: string(models.LocationNorthYork), Label: "North York"},
		{Value: string(models.LocationScarborough), Label: "Scarborough"},
		{Value: string(models.LocationEtobicoke), Label: "Etobicoke"},
		{Value: string(models.LocationMississauga), Label: "Mississauga"},
		{Value: string(models.LocationBrampton), Label: "Brampton"},
		{Value: string(models.LocationMarkham), Label: "Markham"},
		{Value: string(models.LocationVaughan), Label: "Vaughan"},
	}

	Conversions = []Option{
		{Value: "initial_contact", Label: "Initial Contact"},
		{Value: "property_viewing", Label: "Property Viewing"},
		{Value: "offer_made", Label: "Offer Made"},
		{Value: "offer_accepted", Label: "Offer Accepted"},
		{Value: "deal_closed", Label: "Deal Closed"},
		{Value: "deal_lost", Label: "Deal Lost"},
	}

	Languages = []Option{
		{Value: "english", Label: "English"},
		{Value: "french", Label: "French"},
		{Value: "mandarin", Label: "Mandarin"},
		{Value: "hindi", Label: "Hindi"},
		{Value: "punjabi", Label: "Punjabi"},
	}

	Religions = []Option{
		{Value: "christianity", Label: "Christianity"},
		{Value: "islam", Label: "Islam"},
		{Value: "hinduism", Label: "Hinduism"},
		{Value: "sikhism", Label: "Sikhism"},
		{Value: "buddhism", Label: "Buddhism"},
		{Value: "jainism", Label: "Jainism"},
		{Value: "other", Label: "Other"},
	}
)

func labelMap(options []Option) map[string]string {
	m := make(map[string]string, len(options))
	for _, o := range options {
		m[o.Value] = o.Label
	}
	return m
}

var (
	statusLabels     = labelMap(Statuses)
	leadTypeLabels   = labelMap(LeadTypes)
	sourceLabels     = labelMap(Sources)
	responseLabels   = labelMap(Responses)
	clientTypeLabels = labelMap(ClientTypes)
	locationLabels   = labelMap(Locations)
	conversionLabels = labelMap(Conversions)
)

// StatusLabel resolves a status code to its display label. Missing or
// unknown codes resolve to "", so an unset status contributes nothing to
// search; DisplayStatusLabel carries the display-only default.
func StatusLabel(s models.Status) string {
	return statusLabels[string(s)]
}

// TypeLabel resolves a lead type code. Missing or unknown codes resolve
// to ""; DisplayTypeLabel carries the display-only default.
func TypeLabel(t models.LeadType) string {
	return leadTypeLabels[string(t)]
}

// DisplayStatusLabel resolves a status code for rendering, defaulting to
// "Cold" when the lead has no status. Display only; never feed this into
// matching.
func DisplayStatusLabel(s models.Status) string {
	if label, ok := statusLabels[string(s)]; ok {
		return label
	}
	return "Cold"
}

// DisplayTypeLabel resolves a lead type code for rendering, defaulting to
// "Buyer". Display only.
func DisplayTypeLabel(t models.LeadType) string {
	if label, ok := leadTypeLabels[string(t)]; ok {
		return label
	}
	return "Buyer"
}

// SourceLabel resolves a source code. Unknown codes resolve to "".
func SourceLabel(s models.Source) string {
	return sourceLabels[string(s)]
}

// ResponseLabel resolves a response code. Unknown codes resolve to "".
func ResponseLabel(r models.Response) string {
	return responseLabels[string(r)]
}

// ClientTypeLabel resolves a client type code. Unknown codes resolve to "".
func ClientTypeLabel(c models.ClientType) string {
	return clientTypeLabels[string(c)]
}

// LocationLabel resolves a location code. Unknown codes resolve to "".
func LocationLabel(l models.Location) string {
	return locationLabels[string(l)]
}

// ConversionLabel resolves a conversion stage code. Unknown codes resolve to "".
func ConversionLabel(c string) string {
	return conversionLabels[c]
}

// ValidStatus reports whether s is a known status code.
func ValidStatus(s models.Status) bool {
	_, ok := statusLabels[string(s)]
	return ok
}

// ValidLocation reports whether l is a known location code.
func ValidLocation(l models.Location) bool {
	_, ok := locationLabels[string(l)]
	return ok
}
