package task

import "testing"

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	return store
}

func (s *Store) getTaskByID(t *testing.T, id string) *Task {
	t.Helper()

	tasks, err := s.readTasks()
	if err != nil {
		t.Fatalf("failed to read tasks: %v", err)
	}

	resolved, err := resolveTaskIDsWithTasks([]string{id}, tasks)
	if err != nil {
		t.Fatalf("failed to resolve %q: %v", id, err)
	}

	for i := range tasks {
		if tasks[i].ID == resolved[0] {
			return &tasks[i]
		}
	}

	t.Fatalf("task %q not found", id)
	return nil
}
