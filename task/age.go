package task

import (
	"time"

	internalage "github.com/rfenaux/agentdeck/internal/age"
)

// AgeData computes the display age and whether timing data exists.
func AgeData(item Task, now time.Time) (time.Duration, bool) {
	return internalage.AgeData(item.CreatedAt, now)
}

// DurationData computes the display duration and whether timing data exists.
func DurationData(item Task, now time.Time) (time.Duration, bool) {
	startedAt := time.Time{}
	if item.StartedAt != nil {
		startedAt = *item.StartedAt
	}

	completedAt := time.Time{}
	if item.CompletedAt != nil {
		completedAt = *item.CompletedAt
	}

	if item.Status == StatusActive {
		return internalage.DurationData(startedAt, time.Time{}, true, now)
	}
	if item.Status == StatusCompleted {
		return internalage.DurationData(startedAt, completedAt, false, now)
	}
	return 0, false
}
