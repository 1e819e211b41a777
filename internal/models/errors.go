package models

import "errors"

// Domain-specific errors for task movement operations
var (
	// ErrAlreadyFirstTask indicates that the task is already at the top of the column
	ErrAlreadyFirstTask = errors.New("task is already at the top of the column")

	// ErrAlreadyLastTask indicates that the task is already at the bottom of the column
	ErrAlreadyLastTask = errors.New("task is already at the bottom of the column")

	// ErrAlreadyFirstColumn indicates an attempt to move left from the first column
	ErrAlreadyFirstColumn = errors.New("task is already in the first column")

	// ErrAlreadyLastColumn indicates an attempt to move right from the last column
	ErrAlreadyLastColumn = errors.New("task is already in the last column")
)
