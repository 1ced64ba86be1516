package graph

import (
	"time"

	"github.com/rfenaux/agentdeck/task"
)

// memStore is an in-memory Store for engine tests. Get returns copies so
// engine mutations only take effect through Save, matching the file store.
type memStore struct {
	order   []string
	tasks   map[string]*task.Task
	saveErr map[string]error
	saves   []string
}

func newMemStore() *memStore {
	return &memStore{
		tasks:   map[string]*task.Task{},
		saveErr: map[string]error{},
	}
}

func (m *memStore) add(t *task.Task) {
	if _, ok := m.tasks[t.ID]; !ok {
		m.order = append(m.order, t.ID)
	}
	copied := *t
	m.tasks[t.ID] = &copied
}

func (m *memStore) Get(id string) (*task.Task, bool, error) {
	t, ok := m.tasks[id]
	if !ok {
		return nil, false, nil
	}
	copied := *t
	copied.Blockers = append([]string(nil), t.Blockers...)
	return &copied, true, nil
}

func (m *memStore) Save(t *task.Task) error {
	if err := m.saveErr[t.ID]; err != nil {
		return err
	}
	m.saves = append(m.saves, t.ID)
	m.add(t)
	return nil
}

func (m *memStore) ListActiveIDs() ([]string, error) {
	var active []string
	for _, id := range m.order {
		if m.tasks[id].Status.IsTerminal() {
			continue
		}
		active = append(active, id)
	}
	return active, nil
}

func newTask(id, title string, status task.Status, blockers ...string) *task.Task {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	t := &task.Task{
		ID:        id,
		Title:     title,
		Status:    status,
		Priority:  task.PriorityMedium,
		Blockers:  blockers,
		CreatedAt: now,
		UpdatedAt: now,
	}
	switch status {
	case task.StatusCompleted:
		t.CompletedAt = &now
	case task.StatusCancelled:
		t.CancelledAt = &now
	}
	return t
}

func equalIDs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
