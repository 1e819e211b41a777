package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.AddTask != "a" {
		t.Errorf("Default AddTask key = %s, want a", defaults.AddTask)
	}
	if defaults.ResetBoard != "R" {
		t.Errorf("Default ResetBoard key = %s, want R", defaults.ResetBoard)
	}
	if defaults.TaskRoute != "1" || defaults.KanbanRoute != "2" {
		t.Errorf("Default route keys = %s/%s, want 1/2", defaults.TaskRoute, defaults.KanbanRoute)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", origXDG)

	// Set to a temp dir that doesn't have a config
	tempDir := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tempDir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.StartRoute != "/" {
		t.Errorf("Loaded config StartRoute = %s, want / (default)", cfg.StartRoute)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Loaded config LogLevel = %s, want info (default)", cfg.LogLevel)
	}
	if cfg.ColorScheme.Accent == "" {
		t.Error("Loaded config should have a default accent color")
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", origXDG)

	tempDir := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "tablero")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	configContent := `start_route: /kanban
log_level: debug
key_mappings:
  quit: "x"
  add_task: "n"
theme:
  preset: monochrome
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Loaded Quit key = %s, want x", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.AddTask != "n" {
		t.Errorf("Loaded AddTask key = %s, want n", cfg.KeyMappings.AddTask)
	}
	if cfg.StartRoute != "/kanban" {
		t.Errorf("Loaded StartRoute = %s, want /kanban", cfg.StartRoute)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Loaded LogLevel = %s, want debug", cfg.LogLevel)
	}

	// Unspecified values should use defaults
	if cfg.KeyMappings.DeleteTask != "d" {
		t.Errorf("Loaded DeleteTask key = %s, want d (default)", cfg.KeyMappings.DeleteTask)
	}

	// Colors come from the chosen preset
	if cfg.ColorScheme.Accent != MonochromeColorScheme().Accent {
		t.Errorf("Loaded Accent = %s, want monochrome accent", cfg.ColorScheme.Accent)
	}
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("key_mappings: [not, a, map"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() with invalid YAML should fail")
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom() with missing file failed: %v", err)
	}
	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("LoadFrom() missing file Quit key = %s, want q", cfg.KeyMappings.Quit)
	}
}

func TestSaveConfig(t *testing.T) {
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", origXDG)

	tempDir := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tempDir)

	cfg := &Config{
		KeyMappings: KeyMappings{
			Quit:    "x",
			AddTask: "n",
		},
		StartRoute: "/kanban",
	}
	cfg.applyDefaults()

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	configPath := filepath.Join(tempDir, "tablero", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatalf("Config file not created at %s", configPath)
	}

	cfg2, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}

	if cfg2.KeyMappings.Quit != "x" {
		t.Errorf("Reloaded Quit key = %s, want x", cfg2.KeyMappings.Quit)
	}
	if cfg2.KeyMappings.AddTask != "n" {
		t.Errorf("Reloaded AddTask key = %s, want n", cfg2.KeyMappings.AddTask)
	}
	if cfg2.StartRoute != "/kanban" {
		t.Errorf("Reloaded StartRoute = %s, want /kanban", cfg2.StartRoute)
	}
}
