package task

import (
	"errors"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Task-related errors
var (
	// Validation errors
	ErrEmptyTitle    = errors.New("task title cannot be empty")
	ErrTitleTooLong  = errors.New("task title cannot exceed 255 characters")
	ErrInvalidStatus = errors.New("invalid task status")
	ErrTaskNotFound  = errors.New("task not found")
)

// Movement-related errors, shared with the models package so callers can
// match either.
var (
	ErrAlreadyFirstTask   = models.ErrAlreadyFirstTask
	ErrAlreadyLastTask    = models.ErrAlreadyLastTask
	ErrAlreadyFirstColumn = models.ErrAlreadyFirstColumn
	ErrAlreadyLastColumn  = models.ErrAlreadyLastColumn
)
