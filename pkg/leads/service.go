package leads

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jordanlanch/realtycrm/pkg/cache"
	"github.com/jordanlanch/realtycrm/pkg/domain"
	"github.com/jordanlanch/realtycrm/pkg/logger"
	"github.com/jordanlanch/realtycrm/pkg/models"
)

// Store is the boundary to the authoritative remote lead store.
type Store interface {
	FetchLeads(ctx context.Context) ([]models.Lead, error)
	SaveLead(ctx context.Context, lead models.Lead) (models.Lead, error)
	DeleteLead(ctx context.Context, id string) error
	LookupUsers(ctx context.Context) ([]models.UserRef, error)
}

// Service owns the in-memory working set of leads, the criteria pass over
// it, and reconciliation against the remote store. The set and the user
// directory belong to a single logical session; the mutex only guards
// against concurrent HTTP handlers touching it.
type Service struct {
	store     Store
	snapshots *cache.SnapshotStore
	log       logger.Logger

	mu    sync.RWMutex
	leads []models.Lead
	users models.UserDirectory
}

// NewService creates a new working-set service
func NewService(store Store, snapshots *cache.SnapshotStore, log logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	return &Service{
		store:     store,
		snapshots: snapshots,
		log:       log,
		users:     models.UserDirectory{},
	}
}

// Refresh pulls the authoritative lead set. On success the working set is
// replaced wholesale and the snapshot overwritten. On a store failure the
// current set stays visible; if the set is still empty (cold start) the
// last snapshot is loaded instead. The failure surfaces only as a
// non-blocking notice, never as an error to the caller.
func (s *Service) Refresh(ctx context.Context) (models.RefreshResponse, error) {
	fetched, err := s.store.FetchLeads(ctx)
	if err != nil {
		if !domain.IsRemoteUnavailable(err) {
			return models.RefreshResponse{}, err
		}
		return s.fallback(ctx, err), nil
	}

	s.refreshUsers(ctx)

	s.mu.Lock()
	s.leads = Reconcile(s.leads, fetched, SourceFetch)
	total := len(s.leads)
	s.mu.Unlock()

	if s.snapshots != nil {
		if err := s.snapshots.Save(ctx, fetched); err != nil {
			s.log.Warn("failed to write lead snapshot", "error", err)
		}
	}

	s.log.Info("lead working set refreshed", "total", total)
	return models.RefreshResponse{Total: total, Source: "store", Refreshed: true}, nil
}

// fallback keeps the last reconciled set visible after a failed fetch.
func (s *Service) fallback(ctx context.Context, cause error) models.RefreshResponse {
	s.log.Warn("lead store unavailable, keeping last known set", "error", cause)

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.leads) == 0 && s.snapshots != nil {
		snapshot, ok, err := s.snapshots.Load(ctx)
		if err != nil {
			s.log.Error("failed to load lead snapshot", "error", err)
		} else if ok {
			s.leads = Reconcile(s.leads, snapshot, SourceFetch)
		}
	}

	return models.RefreshResponse{
		Total:     len(s.leads),
		Source:    "snapshot",
		Notice:    "Lead store is unavailable; showing the last saved leads.",
		Refreshed: false,
	}
}

func (s *Service) refreshUsers(ctx context.Context) {
	users, err := s.store.LookupUsers(ctx)
	if err != nil {
		s.log.Warn("failed to refresh user directory", "error", err)
		return
	}
	s.mu.Lock()
	s.users = models.NewUserDirectory(users)
	s.mu.Unlock()
}

// List runs the full criteria pass over the current working set and
// derives both segmentations from the filtered result. The matcher always
// re-runs over the whole set, so there is no stale-filter state. The set
// is copied element-wise under the lock: Save and Delete rewrite elements
// in place, so handing Filter the shared backing array would race.
func (s *Service) List(c models.Criteria) models.LeadListResponse {
	s.mu.RLock()
	all := make([]models.Lead, len(s.leads))
	copy(all, s.leads)
	users := s.users
	s.mu.RUnlock()

	filtered := Filter(all, c, users)
	return models.LeadListResponse{
		Data:     filtered,
		Total:    len(filtered),
		Segments: Segment(filtered),
		Criteria: c,
	}
}

// Get returns one lead from the working set by id.
func (s *Service) Get(id string) (models.Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, lead := range s.leads {
		if lead.ID == id {
			return cloneLead(lead), nil
		}
	}
	return models.Lead{}, domain.NewNotFoundError("lead")
}

// Users returns the current user directory.
func (s *Service) Users() models.UserDirectory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users
}

// Save persists a lead through the store and folds the authoritative
// result back into the working set (replace by id, or append for a new
// record).
func (s *Service) Save(ctx context.Context, lead models.Lead) (models.Lead, error) {
	if lead.AssignedTo == "" {
		lead.AssignedTo = models.Unassigned
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now().UTC()
	}

	saved, err := s.store.SaveLead(ctx, lead)
	if err != nil {
		return models.Lead{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.leads {
		if s.leads[i].ID == saved.ID {
			s.leads[i] = saved
			return saved, nil
		}
	}
	s.leads = append(s.leads, saved)
	return saved, nil
}

// Delete removes a lead from the store and the working set.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteLead(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.leads {
		if s.leads[i].ID == id {
			s.leads = append(s.leads[:i], s.leads[i+1:]...)
			return nil
		}
	}
	return nil
}

// Import appends validated records to the working set without id
// deduplication and persists them best-effort; a store outage keeps the
// records local until the next successful save. Returns how many records
// entered the working set.
func (s *Service) Import(ctx context.Context, incoming []models.Lead) int {
	persisted := make([]models.Lead, 0, len(incoming))
	for _, lead := range incoming {
		saved, err := s.store.SaveLead(ctx, lead)
		if err != nil {
			s.log.Warn("failed to persist imported lead", "name", lead.Name, "error", err)
			persisted = append(persisted, lead)
			continue
		}
		persisted = append(persisted, saved)
	}

	s.mu.Lock()
	s.leads = Reconcile(s.leads, persisted, SourceImport)
	total := len(s.leads)
	s.mu.Unlock()

	s.log.Info("imported leads into working set", "imported", len(persisted), "total", total)
	return len(persisted)
}

// update applies a mutation to a copy of one lead, persists it, and folds
// the authoritative result back into the set.
func (s *Service) update(ctx context.Context, id string, mutate func(*models.Lead) error) (models.Lead, error) {
	lead, err := s.Get(id)
	if err != nil {
		return models.Lead{}, err
	}
	if err := mutate(&lead); err != nil {
		return models.Lead{}, err
	}
	return s.Save(ctx, lead)
}

// AddNote appends a timestamp-prefixed note entry to a lead.
func (s *Service) AddNote(ctx context.Context, id, text string) (models.Lead, error) {
	return s.update(ctx, id, func(lead *models.Lead) error {
		lead.Notes = AppendNote(lead.Notes, text, time.Now())
		return nil
	})
}

// LogCall appends a call entry to a lead's call history.
func (s *Service) LogCall(ctx context.Context, id string, call models.CallEntry) (models.Lead, error) {
	if call.Duration < 0 {
		return models.Lead{}, domain.NewValidationError("call duration cannot be negative")
	}
	return s.update(ctx, id, func(lead *models.Lead) error {
		if call.Date.IsZero() {
			call.Date = time.Now().UTC()
		}
		lead.CallHistory = append(lead.CallHistory, call)
		return nil
	})
}

// AddCallPoint appends an annotation to an existing call entry.
func (s *Service) AddCallPoint(ctx context.Context, id string, callIndex int, text string) (models.Lead, error) {
	return s.update(ctx, id, func(lead *models.Lead) error {
		return AppendCallPoint(lead.CallHistory, callIndex, text, time.Now().UTC())
	})
}

// AddTask creates a pending follow-up task on a lead.
func (s *Service) AddTask(ctx context.Context, id string, task models.Task) (models.Lead, error) {
	if task.Title == "" || task.Date == "" {
		return models.Lead{}, domain.NewValidationError("task title and date are required")
	}
	return s.update(ctx, id, func(lead *models.Lead) error {
		task.ID = uuid.NewString()
		task.Status = models.TaskPending
		if task.Priority == "" {
			task.Priority = models.PriorityMedium
		}
		lead.Tasks = append(lead.Tasks, task)
		return nil
	})
}

// ToggleTask flips a task between pending and completed.
func (s *Service) ToggleTask(ctx context.Context, id, taskID string) (models.Lead, error) {
	return s.update(ctx, id, func(lead *models.Lead) error {
		return ToggleTask(lead.Tasks, taskID)
	})
}

// CancelTask moves a pending task to the terminal cancelled state.
func (s *Service) CancelTask(ctx context.Context, id, taskID string) (models.Lead, error) {
	return s.update(ctx, id, func(lead *models.Lead) error {
		return TransitionTask(lead.Tasks, taskID, models.TaskCancelled)
	})
}

// ScheduleShowing creates a scheduled property visit on a lead. Showings
// only come from explicit scheduling.
func (s *Service) ScheduleShowing(ctx context.Context, id string, showing models.Showing) (models.Lead, error) {
	if showing.Property == "" || showing.Date.IsZero() {
		return models.Lead{}, domain.NewValidationError("showing property and date are required")
	}
	return s.update(ctx, id, func(lead *models.Lead) error {
		showing.ID = uuid.NewString()
		showing.Status = models.ShowingScheduled
		lead.Showings = append(lead.Showings, showing)
		return nil
	})
}

// cloneLead deep-copies the slices a mutation could touch, so working-set
// records are never modified before the store confirms the write.
func cloneLead(lead models.Lead) models.Lead {
	clone := lead

	if lead.CallHistory != nil {
		clone.CallHistory = make([]models.CallEntry, len(lead.CallHistory))
		copy(clone.CallHistory, lead.CallHistory)
		for i, call := range lead.CallHistory {
			if call.Points != nil {
				clone.CallHistory[i].Points = make([]models.CallPoint, len(call.Points))
				copy(clone.CallHistory[i].Points, call.Points)
			}
		}
	}
	if lead.Tasks != nil {
		clone.Tasks = make([]models.Task, len(lead.Tasks))
		copy(clone.Tasks, lead.Tasks)
	}
	if lead.Showings != nil {
		clone.Showings = make([]models.Showing, len(lead.Showings))
		copy(clone.Showings, lead.Showings)
	}
	return clone
}
