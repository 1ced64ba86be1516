package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rfenaux/agentdeck/task"
)

// DependencyInfo is the per-task dependency view. It is computed on demand
// and never stored.
type DependencyInfo struct {
	TaskID        string   `json:"task_id"`
	Blockers      []string `json:"blockers,omitempty"`
	Dependents    []string `json:"dependents,omitempty"`
	IsBlocked     bool     `json:"is_blocked"`
	BlockingCount int      `json:"blocking_count"`
}

// ImpactEntry pairs a blocking task with its dependent count.
type ImpactEntry struct {
	ID         string `json:"id"`
	Dependents int    `json:"dependents"`
}

// snapshot is one consistent read of all active tasks plus the derived
// dependents adjacency. It is built per query call and passed explicitly,
// never cached across calls.
type snapshot struct {
	order      []string
	tasks      map[string]*task.Task
	dependents map[string][]string
}

func (e *Engine) takeSnapshot() (*snapshot, error) {
	activeIDs, err := e.store.ListActiveIDs()
	if err != nil {
		return nil, err
	}

	snap := &snapshot{
		tasks:      make(map[string]*task.Task, len(activeIDs)),
		dependents: make(map[string][]string),
	}
	for _, id := range activeIDs {
		t, ok, err := e.store.Get(id)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		snap.order = append(snap.order, t.ID)
		snap.tasks[t.ID] = t
	}

	for _, id := range snap.order {
		for _, blockerID := range snap.tasks[id].Blockers {
			snap.dependents[blockerID] = append(snap.dependents[blockerID], id)
		}
	}

	return snap, nil
}

// isBlocked evaluates the blocked state against the snapshot: the active
// set excludes terminal tasks, so a blocker blocks iff it is in the set.
// Dangling IDs fall out naturally.
func (s *snapshot) isBlocked(t *task.Task) bool {
	for _, blockerID := range t.Blockers {
		if _, ok := s.tasks[blockerID]; ok {
			return true
		}
	}
	return false
}

// AllDependencyInfo computes the dependency view for every active task.
// The adjacency is built in a single pass over the store rather than one
// DependentsOf scan per task.
func (e *Engine) AllDependencyInfo() (map[string]DependencyInfo, error) {
	snap, err := e.takeSnapshot()
	if err != nil {
		return nil, err
	}

	info := make(map[string]DependencyInfo, len(snap.order))
	for _, id := range snap.order {
		t := snap.tasks[id]
		info[id] = DependencyInfo{
			TaskID:        id,
			Blockers:      append([]string(nil), t.Blockers...),
			Dependents:    append([]string(nil), snap.dependents[id]...),
			IsBlocked:     snap.isBlocked(t),
			BlockingCount: len(snap.dependents[id]),
		}
	}
	return info, nil
}

// DefaultImpactThreshold is the minimum dependent count for a task to rank
// as a high-impact blocker.
const DefaultImpactThreshold = 2

// HighImpactBlockers returns the active tasks with at least minDependents
// dependents, sorted descending by dependent count. Ties keep store
// iteration order; callers should not rely on tie order beyond that.
func (e *Engine) HighImpactBlockers(minDependents int) ([]ImpactEntry, error) {
	if minDependents <= 0 {
		minDependents = DefaultImpactThreshold
	}

	snap, err := e.takeSnapshot()
	if err != nil {
		return nil, err
	}

	var entries []ImpactEntry
	for _, id := range snap.order {
		count := len(snap.dependents[id])
		if count >= minDependents {
			entries = append(entries, ImpactEntry{ID: id, Dependents: count})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Dependents > entries[j].Dependents
	})

	return entries, nil
}

// DependencyTree renders id and, recursively, its dependents as an
// indented tree. Each task is expanded at most once; a task reached again
// through a second path (or a cycle) is printed without children.
func (e *Engine) DependencyTree(id string) (string, error) {
	snap, err := e.takeSnapshot()
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	expanded := map[string]bool{}

	var walk func(current string, depth int)
	walk = func(current string, depth int) {
		builder.WriteString(strings.Repeat("  ", depth))
		builder.WriteString(snap.label(current))
		builder.WriteByte('\n')

		if expanded[current] {
			return
		}
		expanded[current] = true

		for _, dependentID := range snap.dependents[current] {
			walk(dependentID, depth+1)
		}
	}
	walk(id, 0)

	return builder.String(), nil
}

func (s *snapshot) label(id string) string {
	t, ok := s.tasks[id]
	if !ok {
		return id
	}
	return fmt.Sprintf("%s  %s [%s]", id, t.Title, t.Status)
}
