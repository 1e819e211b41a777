package components

const (
	TaskCardHeight        = 4  // TaskCardHeight is the fixed height of the task card
	taskTitleMaxLength    = 30 // Maximum display length for task title before truncation
	taskTitlePaddedLength = 33 // Total padded length including ellipsis space
	columnBorderOverhead  = 3  // top border + bottom padding + bottom border
	headerLines           = 1  // column name and count
	topIndicatorLines     = 1  // empty line or "▲ more above"

	// InputFooter is shown under the add-task prompt
	InputFooter = "Enter: add  Esc: cancel"
)
