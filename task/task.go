package task

import "time"

// Task represents a single tracked work item.
type Task struct {
	// ID is a unique identifier (8-char alphanumeric, derived from initial title + timestamp).
	ID string `json:"id"`

	// Title is the short summary of the task (max 500 chars).
	Title string `json:"title"`

	// Description provides additional context about the task.
	Description string `json:"description,omitempty"`

	// Status is the current state of the task.
	Status Status `json:"status"`

	// Priority is the importance level (0=critical, 4=backlog).
	Priority int `json:"priority"`

	// Blockers lists the IDs of tasks this task is waiting on, in insertion
	// order, without duplicates.
	Blockers []string `json:"blockers,omitempty"`

	// CreatedAt is when the task was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the task was last modified.
	UpdatedAt time.Time `json:"updated_at"`

	// StartedAt is when the task last became active (nil when not tracking).
	StartedAt *time.Time `json:"started_at,omitempty"`

	// CompletedAt is when the task completed (nil unless completed).
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// CancelledAt is when the task was cancelled (nil unless cancelled).
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	// CancelReason explains why the task was cancelled.
	CancelReason string `json:"cancel_reason,omitempty"`
}

// HasBlocker reports whether id is in the task's blocker list.
func (t *Task) HasBlocker(id string) bool {
	for _, blockerID := range t.Blockers {
		if blockerID == id {
			return true
		}
	}
	return false
}

// RemoveBlocker removes id from the task's blocker list, preserving order.
// Returns true if the id was present.
func (t *Task) RemoveBlocker(id string) bool {
	for i, blockerID := range t.Blockers {
		if blockerID == id {
			t.Blockers = append(t.Blockers[:i:i], t.Blockers[i+1:]...)
			return true
		}
	}
	return false
}
