package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask       string `yaml:"add_task"`
	DeleteTask    string `yaml:"delete_task"`
	MoveTaskLeft  string `yaml:"move_task_left"`
	MoveTaskRight string `yaml:"move_task_right"`
	MoveTaskUp    string `yaml:"move_task_up"`
	MoveTaskDown  string `yaml:"move_task_down"`

	// Board
	ResetBoard string `yaml:"reset_board"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevTask   string `yaml:"prev_task"`
	NextTask   string `yaml:"next_task"`

	// Routes
	NextRoute   string `yaml:"next_route"`
	PrevRoute   string `yaml:"prev_route"`
	TaskRoute   string `yaml:"task_route"`
	KanbanRoute string `yaml:"kanban_route"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Tasks
		AddTask:       "a",
		DeleteTask:    "d",
		MoveTaskLeft:  "H",
		MoveTaskRight: "L",
		MoveTaskUp:    "K",
		MoveTaskDown:  "J",

		// Board
		ResetBoard: "R",

		// Navigation
		PrevColumn: "h",
		NextColumn: "l",
		PrevTask:   "k",
		NextTask:   "j",

		// Routes
		NextRoute:   "tab",
		PrevRoute:   "shift+tab",
		TaskRoute:   "1",
		KanbanRoute: "2",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()
	theirs := defaults.fields()
	for i, field := range k.fields() {
		if *field == "" {
			*field = *theirs[i]
		}
	}
}

func (k *KeyMappings) fields() []*string {
	return []*string{
		&k.AddTask,
		&k.DeleteTask,
		&k.MoveTaskLeft,
		&k.MoveTaskRight,
		&k.MoveTaskUp,
		&k.MoveTaskDown,
		&k.ResetBoard,
		&k.PrevColumn,
		&k.NextColumn,
		&k.PrevTask,
		&k.NextTask,
		&k.NextRoute,
		&k.PrevRoute,
		&k.TaskRoute,
		&k.KanbanRoute,
		&k.ShowHelp,
		&k.Quit,
	}
}
