package graph

// BlockersOf returns the task's own blocker list, or nil if the task does
// not exist. Absence is data, not an error.
func (e *Engine) BlockersOf(id string) ([]string, error) {
	t, ok, err := e.store.Get(id)
	if err != nil {
		return nil, err
	}
	if !ok || len(t.Blockers) == 0 {
		return nil, nil
	}
	return append([]string(nil), t.Blockers...), nil
}

// DependentsOf returns the IDs of all active tasks whose blocker list
// contains id, in store iteration order.
func (e *Engine) DependentsOf(id string) ([]string, error) {
	activeIDs, err := e.store.ListActiveIDs()
	if err != nil {
		return nil, err
	}

	var dependents []string
	for _, activeID := range activeIDs {
		t, ok, err := e.store.Get(activeID)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if t.HasBlocker(id) {
			dependents = append(dependents, t.ID)
		}
	}
	return dependents, nil
}

// IsBlocked reports whether at least one of the task's blockers resolves to
// a non-terminal task. A missing task has no blockers. A blocker ID that
// resolves to nothing contributes nothing.
func (e *Engine) IsBlocked(id string) (bool, error) {
	t, ok, err := e.store.Get(id)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	return e.blockedByList(t.Blockers)
}

// blockedByList recomputes the blocked state for an in-memory blocker list,
// so mutations can evaluate their pending edits before persisting.
func (e *Engine) blockedByList(blockers []string) (bool, error) {
	for _, blockerID := range blockers {
		blocker, ok, err := e.store.Get(blockerID)
		if err != nil {
			return false, err
		}
		if ok && !blocker.Status.IsTerminal() {
			return true, nil
		}
	}
	return false, nil
}

// BlockingChain returns the full upstream closure of id: every task
// reachable by repeatedly following blocker lists, in pre-order (a blocker
// is emitted before its own blockers). Each task is visited at most once,
// so the traversal terminates even if the stored graph contains a cycle.
func (e *Engine) BlockingChain(id string) ([]string, error) {
	return e.closure(id, e.BlockersOf)
}

// DependentChain returns the full downstream closure of id, walking
// dependents instead of blockers. Same ordering and cycle guarantees as
// BlockingChain.
func (e *Engine) DependentChain(id string) ([]string, error) {
	return e.closure(id, e.DependentsOf)
}

// closure runs an iterative depth-first expansion from id. An explicit
// frontier stack replaces recursion so arbitrarily deep graphs cannot
// exhaust the call stack.
func (e *Engine) closure(id string, expand func(string) ([]string, error)) ([]string, error) {
	visited := map[string]bool{id: true}

	first, err := expand(id)
	if err != nil {
		return nil, err
	}

	var chain []string
	frontier := make([]string, 0, len(first))
	pushReversed(&frontier, first)

	for len(frontier) > 0 {
		current := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		if visited[current] {
			continue
		}
		visited[current] = true
		chain = append(chain, current)

		next, err := expand(current)
		if err != nil {
			return nil, err
		}
		pushReversed(&frontier, next)
	}

	return chain, nil
}

// pushReversed pushes ids onto the stack in reverse so that the first id
// is expanded first, giving pre-order output.
func pushReversed(frontier *[]string, ids []string) {
	for i := len(ids) - 1; i >= 0; i-- {
		*frontier = append(*frontier, ids[i])
	}
}
