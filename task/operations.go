package task

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// CreateOptions configures a new task.
type CreateOptions struct {
	// Status is the initial status. Defaults to StatusPaused. A task created
	// with unresolved blockers starts as StatusBlocked regardless.
	Status Status

	// Priority is the importance level (0-4). Defaults to PriorityMedium (2) when nil.
	Priority *int

	// Description provides additional context.
	Description string

	// Blockers is a list of task IDs (or unique prefixes) this task waits on.
	Blockers []string
}

// Create creates a new task with the given title.
func (s *Store) Create(title string, opts CreateOptions) (*Task, error) {
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}

	if opts.Status == "" {
		opts.Status = StatusPaused
	}
	status, err := normalizeStatusInput(opts.Status)
	if err != nil {
		return nil, err
	}
	if status.IsTerminal() {
		return nil, fmt.Errorf("%w: cannot create task with terminal status %q", ErrInvalidStatus, status)
	}

	priority := opts.Priority
	if priority == nil {
		defaultPriority := PriorityMedium
		priority = &defaultPriority
	}
	// Note: Priority 0 is valid (critical), so nil indicates default.
	if err := ValidatePriority(*priority); err != nil {
		return nil, err
	}

	tasks, err := s.readTasksWithContext()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	t := Task{
		ID:          GenerateID(title, now),
		Title:       title,
		Description: opts.Description,
		Status:      status,
		Priority:    *priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if status == StatusActive {
		t.StartedAt = &now
	}

	if len(opts.Blockers) > 0 {
		resolved, err := resolveTaskIDsWithTasks(opts.Blockers, tasks)
		if err != nil {
			return nil, err
		}

		seen := make(map[string]struct{}, len(resolved))
		blocked := false
		for _, blockerID := range resolved {
			if blockerID == t.ID {
				return nil, ErrSelfBlocker
			}
			if _, ok := seen[blockerID]; ok {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateBlocker, blockerID)
			}
			seen[blockerID] = struct{}{}
			for i := range tasks {
				if tasks[i].ID == blockerID && !tasks[i].Status.IsTerminal() {
					blocked = true
				}
			}
		}
		t.Blockers = resolved
		if blocked {
			t.Status = StatusBlocked
			t.StartedAt = nil
		}
	}

	tasks = append(tasks, t)
	if err := s.writeTasks(tasks); err != nil {
		return nil, fmt.Errorf("write tasks: %w", err)
	}

	return &t, nil
}

// UpdateOptions configures fields to update on tasks.
// Nil pointers mean "don't update this field".
type UpdateOptions struct {
	Title        *string
	Description  *string
	Status       *Status
	Priority     *int
	CancelReason *string
}

// Update updates one or more tasks with the given options.
// Returns the updated tasks.
func (s *Store) Update(ids []string, opts UpdateOptions) ([]Task, error) {
	resolvedIDs, err := s.resolveTaskIDs(ids)
	if err != nil {
		return nil, err
	}

	if opts.Title != nil {
		if err := ValidateTitle(*opts.Title); err != nil {
			return nil, err
		}
	}
	if opts.Status != nil {
		normalized, err := normalizeStatusInput(*opts.Status)
		if err != nil {
			return nil, err
		}
		opts.Status = &normalized
	}
	if opts.Priority != nil {
		if err := ValidatePriority(*opts.Priority); err != nil {
			return nil, err
		}
	}

	tasks, err := s.readTasksWithContext()
	if err != nil {
		return nil, err
	}

	idSet := make(map[string]bool)
	for _, id := range resolvedIDs {
		idSet[id] = true
	}

	now := time.Now()
	var updated []Task

	for i := range tasks {
		if !idSet[tasks[i].ID] {
			continue
		}
		delete(idSet, tasks[i].ID)

		if opts.Title != nil {
			tasks[i].Title = *opts.Title
		}
		if opts.Description != nil {
			tasks[i].Description = *opts.Description
		}
		if opts.Status != nil {
			applyStatus(&tasks[i], *opts.Status, now)
		}
		if opts.Priority != nil {
			tasks[i].Priority = *opts.Priority
		}
		if opts.CancelReason != nil {
			tasks[i].CancelReason = *opts.CancelReason
		}
		tasks[i].UpdatedAt = now

		if err := ValidateTask(&tasks[i]); err != nil {
			return nil, fmt.Errorf("validate task %s: %w", tasks[i].ID, err)
		}

		updated = append(updated, tasks[i])
	}

	if len(idSet) > 0 {
		var missing []string
		for id := range idSet {
			missing = append(missing, id)
		}
		return nil, missingTaskIDsError(missing)
	}

	if err := s.writeTasks(tasks); err != nil {
		return nil, fmt.Errorf("write tasks: %w", err)
	}

	return updated, nil
}

func applyStatus(t *Task, newStatus Status, now time.Time) {
	if newStatus == t.Status {
		return
	}

	previous := t.Status
	t.Status = newStatus

	switch newStatus {
	case StatusCompleted:
		t.CompletedAt = &now
		t.CancelledAt = nil
		t.CancelReason = ""
	case StatusCancelled:
		t.CancelledAt = &now
		t.CompletedAt = nil
	case StatusActive:
		t.CompletedAt = nil
		t.CancelledAt = nil
		t.CancelReason = ""
		if previous != StatusActive {
			t.StartedAt = &now
		}
	case StatusPaused, StatusBlocked:
		t.CompletedAt = nil
		t.CancelledAt = nil
		t.CancelReason = ""
	}
}

// Pause pauses one or more tasks.
func (s *Store) Pause(ids []string) ([]Task, error) {
	status := StatusPaused
	return s.Update(ids, UpdateOptions{Status: &status})
}

// Resume marks one or more tasks as active.
func (s *Store) Resume(ids []string) ([]Task, error) {
	status := StatusActive
	return s.Update(ids, UpdateOptions{Status: &status})
}

// Complete marks one or more tasks as completed.
func (s *Store) Complete(ids []string) ([]Task, error) {
	status := StatusCompleted
	return s.Update(ids, UpdateOptions{Status: &status})
}

// Cancel cancels one or more tasks with an optional reason.
func (s *Store) Cancel(ids []string, reason string) ([]Task, error) {
	status := StatusCancelled
	opts := UpdateOptions{Status: &status}
	if reason != "" {
		opts.CancelReason = &reason
	}
	return s.Update(ids, opts)
}

// Show returns the full details of one or more tasks.
func (s *Store) Show(ids []string) ([]Task, error) {
	resolvedIDs, err := s.resolveTaskIDs(ids)
	if err != nil {
		return nil, err
	}

	tasks, err := s.readTasksWithContext()
	if err != nil {
		return nil, err
	}

	taskByID := taskMapByID(tasks)

	var result []Task
	seen := make(map[string]bool)
	var missing []string
	for _, id := range resolvedIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		t, ok := taskByID[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		result = append(result, *t)
	}

	if err := missingTaskIDsError(missing); err != nil {
		return nil, err
	}

	return result, nil
}

// ListFilter configures which tasks to return.
type ListFilter struct {
	// Status filters by exact status match.
	Status *Status

	// Priority filters by exact priority match.
	Priority *int

	// IDs filters to specific IDs.
	IDs []string

	// TitleSubstring filters to tasks with this substring in the title.
	TitleSubstring string

	// IncludeTerminal includes completed and cancelled tasks. Default is false.
	IncludeTerminal bool
}

// List returns tasks matching the filter.
func (s *Store) List(filter ListFilter) ([]Task, error) {
	if filter.Status != nil {
		normalized, err := normalizeStatusInput(*filter.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = &normalized
	}
	if filter.Priority != nil {
		if err := ValidatePriority(*filter.Priority); err != nil {
			return nil, err
		}
	}

	titleQuery := strings.ToLower(filter.TitleSubstring)

	tasks, err := s.readTasksWithContext()
	if err != nil {
		return nil, err
	}

	var idSet map[string]bool
	if len(filter.IDs) > 0 {
		resolvedIDs, err := resolveTaskIDsWithTasks(filter.IDs, tasks)
		if err != nil {
			return nil, err
		}
		idSet = make(map[string]bool)
		for _, id := range resolvedIDs {
			idSet[id] = true
		}
	}

	includeTerminal := filter.IncludeTerminal
	if filter.Status != nil && filter.Status.IsTerminal() {
		includeTerminal = true
	}

	var result []Task
	for _, t := range tasks {
		if t.Status.IsTerminal() && !includeTerminal {
			continue
		}

		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		if filter.Priority != nil && t.Priority != *filter.Priority {
			continue
		}
		if idSet != nil && !idSet[t.ID] {
			continue
		}
		if titleQuery != "" && !strings.Contains(strings.ToLower(t.Title), titleQuery) {
			continue
		}

		result = append(result, t)
	}

	return result, nil
}

// Ready returns paused tasks with no unresolved blockers, sorted by priority.
func (s *Store) Ready(limit int) ([]Task, error) {
	tasks, err := s.readTasksWithContext()
	if err != nil {
		return nil, err
	}

	taskMap := taskMapByID(tasks)

	var ready []Task
	for _, t := range tasks {
		if t.Status != StatusPaused {
			continue
		}

		hasOpenBlocker := false
		for _, blockerID := range t.Blockers {
			blocker, ok := taskMap[blockerID]
			if ok && !blocker.Status.IsTerminal() {
				hasOpenBlocker = true
				break
			}
		}

		if !hasOpenBlocker {
			ready = append(ready, t)
		}
	}

	// Sort by priority (0 = highest priority), then oldest first
	sort.Slice(ready, func(i, j int) bool {
		if ready[i].Priority != ready[j].Priority {
			return ready[i].Priority < ready[j].Priority
		}
		return ready[i].CreatedAt.Before(ready[j].CreatedAt)
	})

	if limit > 0 && len(ready) > limit {
		ready = ready[:limit]
	}

	return ready, nil
}

func taskMapByID(tasks []Task) map[string]*Task {
	taskMap := make(map[string]*Task, len(tasks))
	for i := range tasks {
		taskMap[tasks[i].ID] = &tasks[i]
	}
	return taskMap
}

func missingTaskIDsError(missing []string) error {
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("tasks not found: %s", strings.Join(missing, ", "))
}
