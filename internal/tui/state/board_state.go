package state

// BoardState tracks the kanban view's cursor and horizontal viewport.
type BoardState struct {
	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedTask is the index of the currently selected task within the selected column
	selectedTask int

	// viewportOffset is the index of the leftmost visible column
	viewportOffset int

	// viewportSize is the number of columns that fit on the screen
	viewportSize int
}

// NewBoardState creates a BoardState with the first column selected.
func NewBoardState() *BoardState {
	return &BoardState{
		viewportSize: 1, // recalculated when the width is known
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *BoardState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index and keeps it visible.
func (s *BoardState) SetSelectedColumn(index int) {
	s.selectedColumn = index
	s.EnsureSelectionVisible()
}

// SelectedTask returns the index of the currently selected task.
func (s *BoardState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask updates the selected task index.
func (s *BoardState) SetSelectedTask(index int) {
	s.selectedTask = index
}

// ViewportOffset returns the index of the leftmost visible column.
func (s *BoardState) ViewportOffset() int {
	return s.viewportOffset
}

// ViewportSize returns the number of columns that fit on screen.
func (s *BoardState) ViewportSize() int {
	return s.viewportSize
}

// SetWidth recalculates how many columns fit in width.
//
// Column layout:
//   - Content width: 40 characters
//   - Padding: 2 characters (1 on each side)
//   - Border: 2 characters (1 on each side)
//   - Spacing: 2 characters (between columns)
//   - Total per column: 46 characters
//
// The calculation reserves 4 characters for margins and scroll indicators,
// and ensures at least 1 column is always visible.
func (s *BoardState) SetWidth(width int) {
	if width <= 0 {
		s.viewportSize = 1
		return
	}

	const columnWidth = 46  // 40 content + 2 padding + 2 border + 2 spacing
	const reservedWidth = 4 // margins and scroll indicators

	s.viewportSize = max(1, (width-reservedWidth)/columnWidth)
	s.EnsureSelectionVisible()
}

// EnsureSelectionVisible adjusts the viewport so the selected column is on screen.
func (s *BoardState) EnsureSelectionVisible() {
	if s.selectedColumn < s.viewportOffset {
		s.viewportOffset = s.selectedColumn
	}
	if s.selectedColumn >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = s.selectedColumn - s.viewportSize + 1
	}
}

// Clamp pulls the task selection back inside a column of length n.
// An empty column selects index 0.
func (s *BoardState) Clamp(n int) {
	if s.selectedTask >= n {
		s.selectedTask = n - 1
	}
	if s.selectedTask < 0 {
		s.selectedTask = 0
	}
}

// ResetSelection resets column, task and viewport to zero.
func (s *BoardState) ResetSelection() {
	s.selectedColumn = 0
	s.selectedTask = 0
	s.viewportOffset = 0
}
