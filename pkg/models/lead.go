package models

import "time"

// Status is the lead temperature used for urgency segmentation.
type Status string

const (
	StatusCold Status = "cold"
	StatusWarm Status = "warm"
	StatusHot  Status = "hot"
	StatusMild Status = "mild"
)

// LeadType classifies the kind of deal a lead is interested in.
type LeadType string

const (
	TypePreConstruction LeadType = "Pre construction"
	TypeResale          LeadType = "resale"
	TypeSeller          LeadType = "seller"
	TypeBuyer           LeadType = "buyer"
)

// Source records where the lead came from. The stored codes predate the
// current labels ("refferal" included), so they are never shown directly.
type Source string

const (
	SourceWebsite   Source = "website"
	SourceGoogleAds Source = "google ads"
	SourceMeta      Source = "meta"
	SourceReferral  Source = "refferal"
	SourceLinkedIn  Source = "linkedin"
	SourceYouTube   Source = "youtube"
)

// Response captures how reachable the lead has been.
type Response string

const (
	ResponseActive               Response = "active"
	ResponseInactive             Response = "inactive"
	ResponseNotAnswering         Response = "not answering"
	ResponseNotActivelyAnswering Response = "not actively answering"
	ResponseAlwaysResponding     Response = "always responding"
)

// ClientType is the buyer/investor category of the lead.
type ClientType string

const (
	ClientInvestor         ClientType = "Investor"
	ClientCustomBuyer      ClientType = "custom buyer"
	ClientFirstHomeBuyer   ClientType = "first home buyer"
	ClientSeasonalInvestor ClientType = "seasonal investor"
	ClientCommercialBuyer  ClientType = "commercial buyer"
)

// Location is one of the regions the brokerage operates in.
type Location string

const (
	LocationDowntown    Location = "downtown"
	LocationNorthYork   Location = "north_york"
	LocationScarborough Location = "scarborough"
	LocationEtobicoke   Location = "etobicoke"
	LocationMississauga Location = "mississauga"
	LocationBrampton    Location = "brampton"
	LocationMarkham     Location = "markham"
	LocationVaughan     Location = "vaughan"
)

// Unassigned is the sentinel value for a lead with no assigned user.
const Unassigned = "unassigned"

// BudgetRange is a min/max budget pair, min <= max when both present.
type BudgetRange struct {
	Min int `json:"min" validate:"min=0"`
	Max int `json:"max" validate:"min=0,gtefield=Min"`
}

// PropertyPreferences holds what the lead is shopping for.
type PropertyPreferences struct {
	Budget        BudgetRange `json:"budget"`
	PropertyTypes []string    `json:"propertyType"`
	Bedrooms      int         `json:"bedrooms" validate:"min=0"`
	Bathrooms     int         `json:"bathrooms" validate:"min=0"`
	Locations     []Location  `json:"locations"`
	Features      []string    `json:"features"`
}

// SalesHistory tracks closed business with the lead.
type SalesHistory struct {
	ClosedSales    int        `json:"closedSales" validate:"min=0"`
	LastClosedDate *time.Time `json:"lastClosedDate,omitempty"`
}

// CallPoint is a short annotation taken during a call. Points are
// append-only and immutable once recorded.
type CallPoint struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// CallEntry records one call with the lead.
type CallEntry struct {
	Date      time.Time   `json:"date"`
	Duration  int         `json:"duration" validate:"min=0"` // minutes
	Recording string      `json:"recording,omitempty"`
	Points    []CallPoint `json:"points,omitempty"`
}

// TaskStatus is the three-state follow-up task machine.
type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskCompleted TaskStatus = "completed"
	TaskCancelled TaskStatus = "cancelled"
)

// TaskPriority orders follow-up urgency.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// Task is a unit of follow-up work belonging to a lead.
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title" validate:"required"`
	Date        string       `json:"date" validate:"required"` // ISO date
	Description string       `json:"description,omitempty"`
	Priority    TaskPriority `json:"priority"`
	Status      TaskStatus   `json:"status"`
}

// ShowingStatus is the lifecycle of a scheduled property visit.
type ShowingStatus string

const (
	ShowingScheduled ShowingStatus = "scheduled"
	ShowingCompleted ShowingStatus = "completed"
	ShowingCancelled ShowingStatus = "cancelled"
)

// Showing is a scheduled property visit tied to a lead.
type Showing struct {
	ID       string        `json:"id"`
	Date     time.Time     `json:"date"`
	Time     string        `json:"time"`
	Property string        `json:"property"`
	Notes    string        `json:"notes,omitempty"`
	Status   ShowingStatus `json:"status"`
}

// Lead is the central entity tracked by the dashboard. JSON field names
// follow the remote store's document shape.
type Lead struct {
	ID       string `json:"_id,omitempty"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Property string `json:"property,omitempty"`

	Status     Status     `json:"leadStatus,omitempty"`
	Type       LeadType   `json:"leadType,omitempty"`
	Source     Source     `json:"leadSource,omitempty"`
	Response   Response   `json:"leadResponse,omitempty"`
	ClientType ClientType `json:"clientType,omitempty"`
	Location   Location   `json:"location,omitempty"`
	Conversion string     `json:"conversion,omitempty"`

	Age      int    `json:"age,omitempty" validate:"min=0"`
	Gender   string `json:"gender,omitempty"`
	Language string `json:"language,omitempty"`
	Religion string `json:"religion,omitempty"`

	SalesHistory SalesHistory `json:"salesHistory"`

	AssignedTo string    `json:"assignedTo,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"date"`

	PropertyPreferences PropertyPreferences `json:"propertyPreferences"`

	CallHistory []CallEntry `json:"callHistory,omitempty"`
	Tasks       []Task      `json:"tasks,omitempty"`
	Showings    []Showing   `json:"showings,omitempty"`
}

// Assigned reports whether the lead has a real assignee. An empty value
// and the "unassigned" sentinel are equivalent.
func (l *Lead) Assigned() bool {
	return l.AssignedTo != "" && l.AssignedTo != Unassigned
}

// DisplayStatus returns the status to show for a lead, defaulting missing
// values for display only. Matching never uses this default.
func (l *Lead) DisplayStatus() Status {
	if l.Status == "" {
		return StatusCold
	}
	return l.Status
}

// DisplayType returns the lead type to show, defaulting missing values
// for display only.
func (l *Lead) DisplayType() LeadType {
	if l.Type == "" {
		return TypeBuyer
	}
	return l.Type
}
