package graph

import (
	"errors"
	"time"

	"github.com/rfenaux/agentdeck/task"
)

// AddBlocker inserts the edge "blockerID blocks taskID". Both IDs must
// resolve to existing tasks. The insertion is refused with a CycleError when
// blockerID's own blocker chain already reaches taskID, since the new edge
// would then close a cycle.
//
// Insertion is idempotent: adding an edge that already exists reports
// AlreadyBlocked. Either way, if the blocker is non-terminal the task's
// status is overwritten to blocked and the task is persisted.
func (e *Engine) AddBlocker(taskID, blockerID string) (AddOutcome, error) {
	t, ok, err := e.store.Get(taskID)
	if err != nil {
		return BlockerAdded, err
	}
	if !ok {
		return BlockerAdded, &NotFoundError{ID: taskID}
	}

	blocker, ok, err := e.store.Get(blockerID)
	if err != nil {
		return BlockerAdded, err
	}
	if !ok {
		return BlockerAdded, &NotFoundError{ID: blockerID}
	}

	path, err := e.findCycle(blockerID, taskID)
	if err != nil {
		return BlockerAdded, err
	}
	if path != nil {
		return BlockerAdded, &CycleError{Path: path}
	}

	outcome := BlockerAdded
	if t.HasBlocker(blockerID) {
		outcome = AlreadyBlocked
	} else {
		t.Blockers = append(t.Blockers, blockerID)
	}

	if !blocker.Status.IsTerminal() {
		t.Status = task.StatusBlocked
	}
	t.UpdatedAt = time.Now()

	if err := e.store.Save(t); err != nil {
		return outcome, err
	}
	return outcome, nil
}

// findCycle simulates inserting the edge blockerID -> taskID and searches
// blockerID's upstream chain for taskID. If found, the returned path runs
// from blockerID through its chain to taskID; a nil path means the edge is
// safe. The search is bounded by a visited set, so a pre-existing cycle
// elsewhere in the graph cannot cause non-termination.
func (e *Engine) findCycle(blockerID, taskID string) ([]string, error) {
	visited := map[string]bool{}
	parents := map[string]string{}
	frontier := []string{blockerID}

	for len(frontier) > 0 {
		current := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		if visited[current] {
			continue
		}
		visited[current] = true

		if current == taskID {
			var path []string
			for cursor := current; ; cursor = parents[cursor] {
				path = append([]string{cursor}, path...)
				if cursor == blockerID {
					break
				}
			}
			return path, nil
		}

		blockers, err := e.BlockersOf(current)
		if err != nil {
			return nil, err
		}
		for i := len(blockers) - 1; i >= 0; i-- {
			next := blockers[i]
			if visited[next] {
				continue
			}
			if _, seen := parents[next]; !seen {
				parents[next] = current
			}
			frontier = append(frontier, next)
		}
	}

	return nil, nil
}

// RemoveBlocker deletes the edge "blockerID blocks taskID". The task must
// exist; the blocker need not, so stale edges can always be removed. When
// the edge was present, the blocked state is recomputed against the
// remaining blockers and a task that is both no-longer-blocked and
// currently marked blocked moves to paused. Resuming active work is a
// separate decision left to the caller.
func (e *Engine) RemoveBlocker(taskID, blockerID string) (RemoveOutcome, error) {
	t, ok, err := e.store.Get(taskID)
	if err != nil {
		return BlockerRemoved, err
	}
	if !ok {
		return BlockerRemoved, &NotFoundError{ID: taskID}
	}

	if !t.RemoveBlocker(blockerID) {
		return NoSuchEdge, nil
	}

	blocked, err := e.blockedByList(t.Blockers)
	if err != nil {
		return BlockerRemoved, err
	}
	if !blocked && t.Status == task.StatusBlocked {
		t.Status = task.StatusPaused
	}
	t.UpdatedAt = time.Now()

	if err := e.store.Save(t); err != nil {
		return BlockerRemoved, err
	}
	return BlockerRemoved, nil
}

// UnblockResult records the effect of UnblockDependents on one dependent.
type UnblockResult struct {
	// ID is the dependent task.
	ID string

	// Unblocked is true when the dependent has no unresolved blockers left.
	Unblocked bool
}

// UnblockDependents removes completedID from the blocker list of every task
// that depends on it. Call it after a task reaches a terminal status. Each
// dependent that ends up with no unresolved blockers and was marked blocked
// moves to paused.
//
// Dependents are processed independently: a failure on one is recorded and
// the rest are still processed. The joined error reports any failures
// alongside the per-dependent results.
func (e *Engine) UnblockDependents(completedID string) ([]UnblockResult, error) {
	dependents, err := e.DependentsOf(completedID)
	if err != nil {
		return nil, err
	}

	var results []UnblockResult
	var errs []error
	now := time.Now()

	for _, dependentID := range dependents {
		t, ok, err := e.store.Get(dependentID)
		if err != nil {
			errs = append(errs, err)
			results = append(results, UnblockResult{ID: dependentID})
			continue
		}
		if !ok {
			continue
		}

		t.RemoveBlocker(completedID)

		blocked, err := e.blockedByList(t.Blockers)
		if err != nil {
			errs = append(errs, err)
			results = append(results, UnblockResult{ID: dependentID})
			continue
		}
		if !blocked && t.Status == task.StatusBlocked {
			t.Status = task.StatusPaused
		}
		t.UpdatedAt = now

		if err := e.store.Save(t); err != nil {
			errs = append(errs, err)
			results = append(results, UnblockResult{ID: dependentID})
			continue
		}

		results = append(results, UnblockResult{ID: dependentID, Unblocked: !blocked})
	}

	return results, errors.Join(errs...)
}

// PruneStaleBlockers removes blocker IDs that no longer resolve to any
// task. Stale IDs never contribute to the blocked state, but they linger in
// blocker lists forever unless explicitly cleaned up. Returns the pruned
// IDs; the task is only persisted when something was pruned.
func (e *Engine) PruneStaleBlockers(taskID string) ([]string, error) {
	t, ok, err := e.store.Get(taskID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &NotFoundError{ID: taskID}
	}

	var pruned []string
	kept := t.Blockers[:0:0]
	for _, blockerID := range t.Blockers {
		_, resolved, err := e.store.Get(blockerID)
		if err != nil {
			return nil, err
		}
		if !resolved {
			pruned = append(pruned, blockerID)
			continue
		}
		kept = append(kept, blockerID)
	}

	if len(pruned) == 0 {
		return nil, nil
	}

	t.Blockers = kept

	blocked, err := e.blockedByList(t.Blockers)
	if err != nil {
		return nil, err
	}
	if !blocked && t.Status == task.StatusBlocked {
		t.Status = task.StatusPaused
	}
	t.UpdatedAt = time.Now()

	if err := e.store.Save(t); err != nil {
		return nil, err
	}
	return pruned, nil
}
