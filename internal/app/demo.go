package app

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/tablero/internal/models"
	taskservice "github.com/thenoetrevino/tablero/internal/services/task"
)

type demoTask struct {
	title       string
	description string
	status      models.Status
}

var demoTasks = []demoTask{
	{"A", "First thing on the list.", models.StatusToDo},
	{"B", "Second thing on the list.", models.StatusToDo},
	{"C", "Already under way.", models.StatusInProgress},
	{"Write release notes", "Summarize the **route table** and the reset flow.", models.StatusToDo},
	{"Review keymap defaults", "Check `H`/`L` and `K`/`J` against the help screen.", models.StatusInProgress},
	{"Set up config file", "`~/.config/tablero/config.yaml`", models.StatusDone},
}

// SeedDemo appends the demo tasks to the board through the task service.
// The first three give the smallest useful board: to-do [A, B], in-progress [C].
func (a *App) SeedDemo(ctx context.Context) error {
	for _, d := range demoTasks {
		_, err := a.TaskService.CreateTask(ctx, taskservice.CreateTaskRequest{
			Title:       d.title,
			Description: d.description,
			Status:      d.status,
		})
		if err != nil {
			return fmt.Errorf("seeding %q: %w", d.title, err)
		}
	}
	return nil
}
