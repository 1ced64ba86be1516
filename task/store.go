package task

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
)

const (
	// TasksFile is the name of the JSONL file containing tasks.
	TasksFile = "tasks.jsonl"

	maxJSONLineBytes = 1024 * 1024
)

// Store provides access to the task data in a directory of JSONL files.
// File locking serializes concurrent CLI invocations at the file boundary;
// the store offers no cross-operation transactionality.
type Store struct {
	dir string
}

// Open opens the task store in dir, creating the directory if needed.
func Open(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("task store directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory holding the store files.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) tasksPath() string {
	return filepath.Join(s.dir, TasksFile)
}

// withFileLock executes fn while holding an exclusive lock on the file at path.
// Creates the file if it doesn't exist.
func withFileLock(path string, fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create parent dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("open file for locking: %w", err)
	}
	defer f.Close()

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer syscall.Flock(int(f.Fd()), syscall.LOCK_UN)

	return fn()
}

// readJSONL reads all JSON objects from a JSONL file into a slice.
func readJSONL[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return readJSONLFromReader[T](f)
}

func readJSONLFromReader[T any](reader io.Reader) ([]T, error) {
	var items []T
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxJSONLineBytes)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var item T
		if err := json.Unmarshal(line, &item); err != nil {
			return nil, fmt.Errorf("parse line %d: %w", lineNum, err)
		}
		items = append(items, item)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return items, nil
}

// writeJSONL writes a slice of items to a JSONL file, overwriting any existing content.
func writeJSONL[T any](path string, items []T) error {
	// Write to temp file first
	tmpPath := path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	encoder := json.NewEncoder(f)
	for i, item := range items {
		if err := encoder.Encode(item); err != nil {
			f.Close()
			os.Remove(tmpPath)
			return fmt.Errorf("encode item %d: %w", i, err)
		}
	}

	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	// Atomic rename
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// readTasks reads all tasks from the store.
func (s *Store) readTasks() ([]Task, error) {
	path := s.tasksPath()
	var tasks []Task
	err := withFileLock(path, func() error {
		var err error
		tasks, err = readJSONL[Task](path)
		return err
	})
	return tasks, err
}

func (s *Store) readTasksWithContext() ([]Task, error) {
	tasks, err := s.readTasks()
	if err != nil {
		return nil, fmt.Errorf("read tasks: %w", err)
	}
	return tasks, nil
}

// writeTasks writes all tasks to the store.
func (s *Store) writeTasks(tasks []Task) error {
	path := s.tasksPath()
	return withFileLock(path, func() error {
		return writeJSONL(path, tasks)
	})
}

// IDIndex returns an index of all task IDs in the store.
func (s *Store) IDIndex() (IDIndex, error) {
	tasks, err := s.readTasksWithContext()
	if err != nil {
		return IDIndex{}, err
	}
	return NewIDIndex(tasks), nil
}

// Get returns the task with the given full ID, or found=false if absent.
// The returned task is a copy; mutations take effect only via Save.
func (s *Store) Get(id string) (*Task, bool, error) {
	tasks, err := s.readTasksWithContext()
	if err != nil {
		return nil, false, err
	}

	for i := range tasks {
		if tasks[i].ID == id {
			t := tasks[i]
			return &t, true, nil
		}
	}

	return nil, false, nil
}

// Save persists a task, replacing any stored task with the same ID or
// appending it otherwise.
func (s *Store) Save(t *Task) error {
	if t == nil || t.ID == "" {
		return fmt.Errorf("save task: missing id")
	}

	tasks, err := s.readTasksWithContext()
	if err != nil {
		return err
	}

	replaced := false
	for i := range tasks {
		if tasks[i].ID == t.ID {
			tasks[i] = *t
			replaced = true
			break
		}
	}
	if !replaced {
		tasks = append(tasks, *t)
	}

	if err := s.writeTasks(tasks); err != nil {
		return fmt.Errorf("write tasks: %w", err)
	}
	return nil
}

// ListActiveIDs returns the IDs of all non-terminal tasks in file order.
func (s *Store) ListActiveIDs() ([]string, error) {
	tasks, err := s.readTasksWithContext()
	if err != nil {
		return nil, err
	}

	var active []string
	for _, t := range tasks {
		if t.Status.IsTerminal() {
			continue
		}
		active = append(active, t.ID)
	}
	return active, nil
}

func (s *Store) resolveTaskIDs(ids []string) ([]string, error) {
	tasks, err := s.readTasks()
	if err != nil {
		return nil, err
	}

	return resolveTaskIDsWithTasks(ids, tasks)
}

func resolveTaskIDsWithTasks(ids []string, tasks []Task) ([]string, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("no task IDs provided")
	}

	index := NewIDIndex(tasks)
	resolved := make([]string, 0, len(ids))
	for _, id := range ids {
		resolvedID, err := index.Resolve(id)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, resolvedID)
	}

	return resolved, nil
}
