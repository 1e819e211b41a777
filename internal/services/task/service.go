package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/store"
)

// MaxTitleLength is the longest title a task may have.
const MaxTitleLength = 255

// Service defines all task-related board operations.
// Tasks are addressed by the list they live in and their index in it.
type Service interface {
	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, status models.Status, index int) (*models.Task, error)
	ResetBoard(ctx context.Context)

	// Task movements. Each returns where the task ended up.
	MoveTaskToNextColumn(ctx context.Context, status models.Status, index int) (Position, error)
	MoveTaskToPrevColumn(ctx context.Context, status models.Status, index int) (Position, error)
	MoveTaskUp(ctx context.Context, status models.Status, index int) (Position, error)
	MoveTaskDown(ctx context.Context, status models.Status, index int) (Position, error)
}

// CreateTaskRequest encapsulates all data needed to create a task
type CreateTaskRequest struct {
	Title       string
	Description string
	Status      models.Status
}

// Position locates a task on the board.
type Position struct {
	Status models.Status
	Index  int
}

// service implements Service on top of the shared task-list store.
// It is the component that keeps every task in exactly one list.
type service struct {
	store  *store.TaskListStore
	logger *slog.Logger
}

// NewService creates a new task service
func NewService(st *store.TaskListStore, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		store:  st,
		logger: logger,
	}
}

// CreateTask validates the request and appends a new task to its list
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := validateCreateTask(req); err != nil {
		return nil, err
	}

	task := models.NewTask(req.Title, strings.TrimSpace(req.Description))
	s.store.SetList(req.Status, append(s.store.List(req.Status), task))

	s.logger.InfoContext(ctx, "task created",
		"task_id", task.ID,
		"status", req.Status.String(),
	)
	return task, nil
}

func validateCreateTask(req CreateTaskRequest) error {
	if req.Title == "" {
		return ErrEmptyTitle
	}
	if len(req.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if !req.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

// DeleteTask removes the task at index from its list
func (s *service) DeleteTask(ctx context.Context, status models.Status, index int) (*models.Task, error) {
	tasks, err := s.listAt(status, index)
	if err != nil {
		return nil, err
	}

	task := tasks[index]
	s.store.SetList(status, remove(tasks, index))

	s.logger.InfoContext(ctx, "task deleted",
		"task_id", task.ID,
		"status", status.String(),
	)
	return task, nil
}

// ResetBoard empties all three lists
func (s *service) ResetBoard(ctx context.Context) {
	cleared := s.store.Len()
	s.store.ResetAllList()
	s.logger.InfoContext(ctx, "board reset", "cleared", cleared)
}

// MoveTaskToNextColumn moves a task to the end of the list to its right
func (s *service) MoveTaskToNextColumn(ctx context.Context, status models.Status, index int) (Position, error) {
	if _, err := s.listAt(status, index); err != nil {
		return Position{}, err
	}
	target, err := status.Next()
	if err != nil {
		return Position{Status: status, Index: index}, err
	}
	return s.moveAcross(ctx, status, index, target), nil
}

// MoveTaskToPrevColumn moves a task to the end of the list to its left
func (s *service) MoveTaskToPrevColumn(ctx context.Context, status models.Status, index int) (Position, error) {
	if _, err := s.listAt(status, index); err != nil {
		return Position{}, err
	}
	target, err := status.Prev()
	if err != nil {
		return Position{Status: status, Index: index}, err
	}
	return s.moveAcross(ctx, status, index, target), nil
}

// MoveTaskUp swaps a task with the one above it
func (s *service) MoveTaskUp(ctx context.Context, status models.Status, index int) (Position, error) {
	tasks, err := s.listAt(status, index)
	if err != nil {
		return Position{}, err
	}
	if index == 0 {
		return Position{Status: status, Index: index}, ErrAlreadyFirstTask
	}

	tasks[index-1], tasks[index] = tasks[index], tasks[index-1]
	s.logger.DebugContext(ctx, "task moved up", "task_id", tasks[index-1].ID, "index", index-1)
	return Position{Status: status, Index: index - 1}, nil
}

// MoveTaskDown swaps a task with the one below it
func (s *service) MoveTaskDown(ctx context.Context, status models.Status, index int) (Position, error) {
	tasks, err := s.listAt(status, index)
	if err != nil {
		return Position{}, err
	}
	if index == len(tasks)-1 {
		return Position{Status: status, Index: index}, ErrAlreadyLastTask
	}

	tasks[index+1], tasks[index] = tasks[index], tasks[index+1]
	s.logger.DebugContext(ctx, "task moved down", "task_id", tasks[index+1].ID, "index", index+1)
	return Position{Status: status, Index: index + 1}, nil
}

func (s *service) moveAcross(ctx context.Context, from models.Status, index int, to models.Status) Position {
	source := s.store.List(from)
	task := source[index]

	s.store.SetList(from, remove(source, index))
	dest := append(s.store.List(to), task)
	s.store.SetList(to, dest)

	s.logger.InfoContext(ctx, "task moved",
		"task_id", task.ID,
		"from", from.String(),
		"to", to.String(),
	)
	return Position{Status: to, Index: len(dest) - 1}
}

// listAt returns the list for status after checking index is inside it
func (s *service) listAt(status models.Status, index int) ([]*models.Task, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	tasks := s.store.List(status)
	if index < 0 || index >= len(tasks) {
		return nil, fmt.Errorf("%w: %s[%d]", ErrTaskNotFound, status, index)
	}
	return tasks, nil
}

// remove returns tasks without the element at index, in a fresh slice so
// callers holding the old list are not affected
func remove(tasks []*models.Task, index int) []*models.Task {
	out := make([]*models.Task, 0, len(tasks)-1)
	out = append(out, tasks[:index]...)
	return append(out, tasks[index+1:]...)
}
