package models

// ErrorResponse is the standard error envelope for API responses
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Segments carries the per-bucket counts derived from a filtered set.
type Segments struct {
	Temperature map[Status]int   `json:"temperature"`
	Location    map[Location]int `json:"location"`
}

// LeadListResponse is the dashboard's main payload: the filtered set,
// the segmentation counts over that same set, and the criteria applied.
type LeadListResponse struct {
	Data     []Lead   `json:"data"`
	Total    int      `json:"total"`
	Segments Segments `json:"segments"`
	Criteria Criteria `json:"criteria"`
}

// RefreshResponse reports the outcome of an authoritative refresh. Notice
// is set when the fetch failed and the snapshot remained visible.
type RefreshResponse struct {
	Total     int    `json:"total"`
	Source    string `json:"source"` // "store" or "snapshot"
	Notice    string `json:"notice,omitempty"`
	Refreshed bool   `json:"refreshed"`
}
