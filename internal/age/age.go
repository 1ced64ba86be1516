package age

import "time"

// AgeData computes display age and whether timing data exists.
// Negative ages are clamped to zero to tolerate clock skew.
func AgeData(startedAt time.Time, now time.Time) (time.Duration, bool) {
	if startedAt.IsZero() {
		return 0, false
	}

	age := now.Sub(startedAt)
	if age < 0 {
		age = 0
	}
	return age, true
}

// DurationData computes display duration and whether timing data exists.
func DurationData(startedAt time.Time, completedAt time.Time, active bool, now time.Time) (time.Duration, bool) {
	if active {
		if startedAt.IsZero() {
			return 0, false
		}
		duration := now.Sub(startedAt)
		if duration < 0 {
			duration = 0
		}
		return duration, true
	}

	if !completedAt.IsZero() && !startedAt.IsZero() {
		duration := completedAt.Sub(startedAt)
		if duration < 0 {
			duration = 0
		}
		return duration, true
	}

	return 0, false
}
