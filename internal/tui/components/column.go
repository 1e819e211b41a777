package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// RenderColumn renders a complete column with its title and tasks
//
// Layout:
//
//	{Column Name} ({count})
//	▲ (if scrolled down)
//	{Task 1}
//	{Task 2}
//	...
//	▼ (if more tasks below)
//
// Parameters:
//   - status: The list this column shows
//   - tasks: Tasks in this column
//   - selected: Whether this column is currently selected
//   - selectedTaskIdx: Index of selected task in this column
//   - height: Fixed height for the column
func RenderColumn(status models.Status, tasks []*models.Task, selected bool, selectedTaskIdx int, height int) string {
	header := fmt.Sprintf("%s (%d)", status, len(tasks))
	content := TitleStyle.Render(header) + "\n"

	if len(tasks) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Padding(1, 0)
		content += emptyStyle.Render("No tasks")
		return columnStyle(selected).Height(height).Render(content)
	}

	availableHeight := height - columnBorderOverhead - headerLines - topIndicatorLines - 1
	maxVisibleTasks := max(availableHeight/TaskCardHeight, 1)

	// Keep the selected task on screen
	scrollOffset := 0
	if selected && selectedTaskIdx >= maxVisibleTasks {
		scrollOffset = selectedTaskIdx - maxVisibleTasks + 1
	}

	indicatorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Align(lipgloss.Center)

	// Always reserve space for top indicator
	if scrollOffset > 0 {
		content += indicatorStyle.Render("▲ more above") + "\n"
	} else {
		content += "\n"
	}

	endIdx := min(scrollOffset+maxVisibleTasks, len(tasks))
	var cards []string
	for i, task := range tasks[scrollOffset:endIdx] {
		isTaskSelected := selected && scrollOffset+i == selectedTaskIdx
		cards = append(cards, RenderTask(task, isTaskSelected))
	}
	content += strings.Join(cards, "\n")

	if endIdx < len(tasks) {
		content += "\n" + indicatorStyle.Render("▼ more below")
	}

	return columnStyle(selected).Height(height).Render(content)
}

func columnStyle(selected bool) lipgloss.Style {
	if selected {
		return ColumnStyle.BorderForeground(lipgloss.Color(theme.Highlight))
	}
	return ColumnStyle
}
