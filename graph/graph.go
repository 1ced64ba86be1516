// Package graph implements the dependency graph engine over the task store.
//
// Edges live inside each task's blocker list: "A blocks B" means A is in
// B's Blockers. The engine holds no graph state of its own; every
// operation re-derives the view it needs by reading from the store, so a
// fresh Engine call always reflects the latest persisted data.
//
// The blocker graph restricted to non-terminal tasks is kept acyclic by
// checking for cycles at edge insertion. Read paths are cycle-safe anyway:
// every traversal is bounded by a visited set, so a store that violates
// the invariant still yields finite results.
package graph

import "github.com/rfenaux/agentdeck/task"

// Store is the persistence contract the engine runs on. *task.Store
// satisfies it.
type Store interface {
	// Get returns the task with the given full ID, or found=false if absent.
	Get(id string) (*task.Task, bool, error)

	// Save persists a task.
	Save(t *task.Task) error

	// ListActiveIDs returns the IDs of all non-terminal tasks. The order is
	// stable for a given store state and defines the iteration order of all
	// scan-based queries.
	ListActiveIDs() ([]string, error)
}

// Engine derives dependency views and applies dependency mutations.
// It is stateless; construction is cheap.
type Engine struct {
	store Store
}

// New returns an Engine backed by store.
func New(store Store) *Engine {
	return &Engine{store: store}
}
