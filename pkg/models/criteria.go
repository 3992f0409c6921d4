package models

import "time"

// IntRange bounds a numeric filter. Nil bounds impose no constraint.
type IntRange struct {
	Min *int `json:"min,omitempty" query:"-"`
	Max *int `json:"max,omitempty" query:"-"`
}

// Contains reports whether v falls inside the range.
func (r IntRange) Contains(v int) bool {
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

// IsZero reports whether the range imposes no constraint.
func (r IntRange) IsZero() bool {
	return r.Min == nil && r.Max == nil
}

// DateRange bounds a timestamp filter. Nil bounds impose no constraint.
type DateRange struct {
	Start *time.Time `json:"start,omitempty" query:"-"`
	End   *time.Time `json:"end,omitempty" query:"-"`
}

// Contains reports whether t falls inside the range. A nil timestamp
// never matches a bounded range.
func (r DateRange) Contains(t *time.Time) bool {
	if r.IsZero() {
		return true
	}
	if t == nil {
		return false
	}
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}

// IsZero reports whether the range imposes no constraint.
func (r DateRange) IsZero() bool {
	return r.Start == nil && r.End == nil
}

// Criteria is the full set of ad-hoc filters the dashboard can apply.
// Empty/unset fields impose no constraint; set fields require an exact
// match and combine with AND. Search combines with the structured
// filters with AND, but probes the lead's fields with OR.
type Criteria struct {
	Search string `json:"search" query:"search"`

	Status     Status     `json:"status,omitempty" query:"status"`
	Type       LeadType   `json:"type,omitempty" query:"type"`
	Source     Source     `json:"source,omitempty" query:"source"`
	Response   Response   `json:"response,omitempty" query:"response"`
	ClientType ClientType `json:"client_type,omitempty" query:"client_type"`
	AssignedTo string     `json:"assigned_to,omitempty" query:"assigned_to"`
	Location   Location   `json:"location,omitempty" query:"location"`
	Conversion string     `json:"conversion,omitempty" query:"conversion"`

	Language string `json:"language,omitempty" query:"language"`
	Gender   string `json:"gender,omitempty" query:"gender"`
	Religion string `json:"religion,omitempty" query:"religion"`

	AgeRange       IntRange  `json:"age_range"`
	SalesRange     IntRange  `json:"sales_range"`
	LastClosedDate DateRange `json:"last_closed_date"`

	NoCallsOnly          bool `json:"no_calls_only" query:"no_calls_only"`
	WebsiteEnquiriesOnly bool `json:"website_enquiries_only" query:"website_enquiries_only"`
}

// IsZero reports whether no criterion is active, i.e. every lead matches.
func (c Criteria) IsZero() bool {
	return c.Search == "" &&
		c.Status == "" && c.Type == "" && c.Source == "" &&
		c.Response == "" && c.ClientType == "" && c.AssignedTo == "" &&
		c.Location == "" && c.Conversion == "" &&
		c.Language == "" && c.Gender == "" && c.Religion == "" &&
		c.AgeRange.IsZero() && c.SalesRange.IsZero() && c.LastClosedDate.IsZero() &&
		!c.NoCallsOnly && !c.WebsiteEnquiriesOnly
}
