package task

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTitle is returned when a task title is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrTitleTooLong is returned when a task title exceeds MaxTitleLength.
	ErrTitleTooLong = errors.New("title exceeds maximum length")

	// ErrInvalidStatus is returned when an invalid status is provided.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidPriority is returned when priority is outside valid range.
	ErrInvalidPriority = errors.New("priority must be between 0 and 4")

	// ErrTaskNotFound is returned when a task with the given ID doesn't exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrAmbiguousTaskIDPrefix is returned when an ID prefix matches multiple tasks.
	ErrAmbiguousTaskIDPrefix = errors.New("ambiguous task ID prefix")

	// ErrSelfBlocker is returned when trying to make a task block itself.
	ErrSelfBlocker = errors.New("task cannot block itself")

	// ErrDuplicateBlocker is returned when a blocker list contains a duplicate.
	ErrDuplicateBlocker = errors.New("duplicate blocker")

	// ErrCancelledTaskMissingCancelledAt is returned when a cancelled task has no cancelled_at timestamp.
	ErrCancelledTaskMissingCancelledAt = errors.New("cancelled task must have cancelled_at timestamp")

	// ErrCompletedTaskMissingCompletedAt is returned when a completed task has no completed_at timestamp.
	ErrCompletedTaskMissingCompletedAt = errors.New("completed task must have completed_at timestamp")

	// ErrCancelReasonRequiresCancelledStatus is returned when a cancel reason is set without cancelled status.
	ErrCancelReasonRequiresCancelledStatus = errors.New("cancel reason requires cancelled status")
)

// ValidateTitle checks if the title is valid.
func ValidateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("%w: %d > %d", ErrTitleTooLong, len(title), MaxTitleLength)
	}
	return nil
}

// ValidatePriority checks if the priority is valid.
func ValidatePriority(priority int) error {
	if priority < PriorityMin || priority > PriorityMax {
		return fmt.Errorf("%w: got %d", ErrInvalidPriority, priority)
	}
	return nil
}

// ValidateTask checks cross-field consistency before persisting.
func ValidateTask(t *Task) error {
	if err := ValidateTitle(t.Title); err != nil {
		return err
	}
	if err := ValidatePriority(t.Priority); err != nil {
		return err
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}

	switch t.Status {
	case StatusCompleted:
		if t.CompletedAt == nil {
			return ErrCompletedTaskMissingCompletedAt
		}
	case StatusCancelled:
		if t.CancelledAt == nil {
			return ErrCancelledTaskMissingCancelledAt
		}
	default:
		if t.CancelReason != "" {
			return ErrCancelReasonRequiresCancelledStatus
		}
	}

	seen := make(map[string]struct{}, len(t.Blockers))
	for _, blockerID := range t.Blockers {
		if blockerID == t.ID {
			return ErrSelfBlocker
		}
		if _, ok := seen[blockerID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateBlocker, blockerID)
		}
		seen[blockerID] = struct{}{}
	}

	return nil
}
