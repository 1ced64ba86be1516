// Package task implements a personal tracker for concurrently running work
// items, typically coding-agent runs.
//
// Tasks are stored as JSONL files in a data directory. Each task carries an
// ordered list of blocker task IDs; the graph package derives dependency
// views from those lists.
//
// The public API mirrors the CLI commands:
//   - Create, Update, Pause, Resume, Complete, Cancel for task lifecycle
//   - Show, List, Ready for querying
package task

// Status represents the state of a task.
type Status string

const (
	// StatusActive indicates the task is currently being worked on.
	StatusActive Status = "active"

	// StatusPaused indicates the task is waiting for someone to pick it up.
	StatusPaused Status = "paused"

	// StatusBlocked indicates the task is waiting on unresolved blockers.
	StatusBlocked Status = "blocked"

	// StatusCompleted indicates the task finished successfully.
	StatusCompleted Status = "completed"

	// StatusCancelled indicates the task was abandoned.
	StatusCancelled Status = "cancelled"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusActive, StatusPaused, StatusBlocked, StatusCompleted, StatusCancelled}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// IsTerminal returns true when a status no longer contributes to blocking.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Priority constants for tasks.
const (
	PriorityCritical = 0
	PriorityHigh     = 1
	PriorityMedium   = 2 // default
	PriorityLow      = 3
	PriorityBacklog  = 4

	PriorityMin = 0
	PriorityMax = 4
)

// PriorityName returns a human-readable name for the priority level.
func PriorityName(p int) string {
	switch p {
	case PriorityCritical:
		return "critical"
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	case PriorityBacklog:
		return "backlog"
	default:
		return "unknown"
	}
}

// PriorityPtr returns a pointer to the provided priority.
func PriorityPtr(priority int) *int {
	return &priority
}

// MaxTitleLength is the maximum allowed length for a task title.
const MaxTitleLength = 500
