package models

import (
	"time"

	"github.com/google/uuid"
)

// Task is a single card on the board.
// The task-list store never looks inside it; only the views and the task
// service read its fields.
type Task struct {
	ID          string
	Title       string
	Description string
	CreatedAt   time.Time
}

// NewTask creates a task with a fresh random ID.
func NewTask(title, description string) *Task {
	return &Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		CreatedAt:   time.Now(),
	}
}
