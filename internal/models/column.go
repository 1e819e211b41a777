package models

// Status identifies which of the three board lists a task lives in.
// The order of the constants is the left-to-right order of the kanban columns.
type Status int

const (
	StatusToDo Status = iota
	StatusInProgress
	StatusDone
)

// Statuses lists every status in column order.
var Statuses = []Status{StatusToDo, StatusInProgress, StatusDone}

// String returns the column heading for the status.
func (s Status) String() string {
	switch s {
	case StatusToDo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is one of the three board statuses.
func (s Status) Valid() bool {
	return s >= StatusToDo && s <= StatusDone
}

// Next returns the status to the right of s.
func (s Status) Next() (Status, error) {
	if s >= StatusDone {
		return s, ErrAlreadyLastColumn
	}
	return s + 1, nil
}

// Prev returns the status to the left of s.
func (s Status) Prev() (Status, error) {
	if s <= StatusToDo {
		return s, ErrAlreadyFirstColumn
	}
	return s - 1, nil
}
