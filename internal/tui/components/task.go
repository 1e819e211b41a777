package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// RenderTask renders a single task as a card
//
//		┏━━━━━━━━━━━━━━━━━━━━━┓
//		┃ {Task Title}        ┃
//		┃ #id · 3 minutes ago ┃
//		┗━━━━━━━━━━━━━━━━━━━━━┛
//	 This has a fixed width and length
func RenderTask(task *models.Task, selected bool) string {
	var bg string
	if selected {
		bg = theme.SelectedBg
	} else {
		bg = theme.TaskBg
	}

	content := renderTaskTitle(task, bg) + "\n" + renderTaskMeta(task, bg)

	style := TaskStyle.
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg))
	if selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}

	return style.Render(content)
}

func renderTaskTitle(task *models.Task, bg string) string {
	title := TruncateTitle(task.Title)
	if len(title) < taskTitlePaddedLength {
		title += strings.Repeat(" ", taskTitlePaddedLength-len(title))
	}

	return lipgloss.NewStyle().
		Bold(true).
		Background(lipgloss.Color(bg)).
		Render(" " + title)
}

func renderTaskMeta(task *models.Task, bg string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Background(lipgloss.Color(bg)).
		Render(" #" + ShortID(task.ID) + " · " + humanize.Time(task.CreatedAt))
}

// TruncateTitle shortens long titles for card and table display
func TruncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) > taskTitleMaxLength {
		return string(runes[:taskTitleMaxLength]) + "..."
	}
	return title
}

// ShortID is the first block of a task's UUID
func ShortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
