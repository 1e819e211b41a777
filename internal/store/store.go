// Package store holds the board's shared task lists.
package store

import "github.com/thenoetrevino/tablero/internal/models"

// TaskListStore holds the three ordered task lists of the board.
// The lists are exported: views and the task service append,
// remove and move items directly. The store itself enforces no ordering,
// uniqueness or cross-list rule; keeping each task in exactly one list is
// the caller's job.
//
// A TaskListStore is owned by the app container and handed to whoever needs
// it. There is no package-level instance.
type TaskListStore struct {
	// ToDo holds tasks that have not been started
	ToDo []*models.Task

	// InProgress holds tasks that are being worked on
	InProgress []*models.Task

	// Done holds finished tasks
	Done []*models.Task
}

// New creates a store with all three lists empty.
func New() *TaskListStore {
	return &TaskListStore{
		ToDo:       []*models.Task{},
		InProgress: []*models.Task{},
		Done:       []*models.Task{},
	}
}

// ResetAllList empties all three lists. It cannot fail and calling it again
// on an empty store changes nothing.
func (s *TaskListStore) ResetAllList() {
	s.ToDo = []*models.Task{}
	s.InProgress = []*models.Task{}
	s.Done = []*models.Task{}
}

// List returns the list for the given status.
// Returns nil for an unknown status.
func (s *TaskListStore) List(status models.Status) []*models.Task {
	switch status {
	case models.StatusToDo:
		return s.ToDo
	case models.StatusInProgress:
		return s.InProgress
	case models.StatusDone:
		return s.Done
	default:
		return nil
	}
}

// SetList replaces the list for the given status.
// Unknown statuses are ignored.
func (s *TaskListStore) SetList(status models.Status, tasks []*models.Task) {
	if tasks == nil {
		tasks = []*models.Task{}
	}
	switch status {
	case models.StatusToDo:
		s.ToDo = tasks
	case models.StatusInProgress:
		s.InProgress = tasks
	case models.StatusDone:
		s.Done = tasks
	}
}

// Len returns the number of tasks across all three lists.
func (s *TaskListStore) Len() int {
	return len(s.ToDo) + len(s.InProgress) + len(s.Done)
}

// IsEmpty reports whether all three lists are empty.
func (s *TaskListStore) IsEmpty() bool {
	return s.Len() == 0
}
