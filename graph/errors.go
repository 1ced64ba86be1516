package graph

import (
	"fmt"
	"strings"
)

// NotFoundError reports a mutation argument that does not resolve to a task.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task not found: %s", e.ID)
}

// CycleError reports an edge insertion that would close a cycle. Path is the
// discovered dependency chain, from the proposed blocker through its own
// blockers to the task being blocked.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("circular dependency: %s", strings.Join(e.Path, " -> "))
}

// AddOutcome distinguishes a fresh edge insertion from an idempotent no-op.
type AddOutcome int

const (
	// BlockerAdded means the edge was newly inserted.
	BlockerAdded AddOutcome = iota

	// AlreadyBlocked means the edge already existed; nothing was inserted.
	AlreadyBlocked
)

func (o AddOutcome) String() string {
	switch o {
	case BlockerAdded:
		return "added"
	case AlreadyBlocked:
		return "already blocked"
	default:
		return "unknown"
	}
}

// RemoveOutcome distinguishes a removal from a missing-edge no-op.
type RemoveOutcome int

const (
	// BlockerRemoved means the edge existed and was removed.
	BlockerRemoved RemoveOutcome = iota

	// NoSuchEdge means the edge was not present; nothing was removed.
	NoSuchEdge
)

func (o RemoveOutcome) String() string {
	switch o {
	case BlockerRemoved:
		return "removed"
	case NoSuchEdge:
		return "no such edge"
	default:
		return "unknown"
	}
}
