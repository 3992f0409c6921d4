package leads

import (
	"fmt"
	"strings"
	"time"

	"github.com/jordanlanch/realtycrm/pkg/domain"
	"github.com/jordanlanch/realtycrm/pkg/models"
)

// taskTransitions is the allowed task status machine: completion is a
// toggle, cancellation is terminal.
var taskTransitions = map[models.TaskStatus]map[models.TaskStatus]bool{
	models.TaskPending:   {models.TaskCompleted: true, models.TaskCancelled: true},
	models.TaskCompleted: {models.TaskPending: true},
	models.TaskCancelled: {},
}

// CanTransitionTask reports whether a task may move between two statuses.
func CanTransitionTask(from, to models.TaskStatus) bool {
	nexts, ok := taskTransitions[from]
	if !ok {
		return false
	}
	return nexts[to]
}

// TransitionTask moves a task in the lead's task list to a new status,
// enforcing the machine. The list is modified in place.
func TransitionTask(tasks []models.Task, taskID string, to models.TaskStatus) error {
	for i := range tasks {
		if tasks[i].ID != taskID {
			continue
		}
		if !CanTransitionTask(tasks[i].Status, to) {
			return domain.NewBadRequestError(
				fmt.Sprintf("task cannot move from %s to %s", tasks[i].Status, to))
		}
		tasks[i].Status = to
		return nil
	}
	return domain.NewNotFoundError("task")
}

// ToggleTask flips a task between pending and completed.
func ToggleTask(tasks []models.Task, taskID string) error {
	for i := range tasks {
		if tasks[i].ID != taskID {
			continue
		}
		to := models.TaskCompleted
		if tasks[i].Status == models.TaskCompleted {
			to = models.TaskPending
		}
		return TransitionTask(tasks, taskID, to)
	}
	return domain.NewNotFoundError("task")
}

// AppendNote appends a timestamp-prefixed entry to a lead's notes. Entries
// are separated by a blank line and never rewritten.
func AppendNote(notes, text string, at time.Time) string {
	entry := fmt.Sprintf("[%s] %s", at.Format("2006-01-02 15:04"), strings.TrimSpace(text))
	if notes == "" {
		return entry
	}
	return notes + "\n\n" + entry
}

// AppendCallPoint appends an annotation to a call entry. Points are
// append-only; existing points are never reordered or edited.
func AppendCallPoint(calls []models.CallEntry, callIndex int, text string, at time.Time) error {
	if callIndex < 0 || callIndex >= len(calls) {
		return domain.NewNotFoundError("call entry")
	}
	calls[callIndex].Points = append(calls[callIndex].Points, models.CallPoint{
		Text:      strings.TrimSpace(text),
		Timestamp: at,
	})
	return nil
}
