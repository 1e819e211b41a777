package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/launcher"
	"github.com/thenoetrevino/tablero/internal/logging"
	"github.com/thenoetrevino/tablero/internal/router"
	"github.com/thenoetrevino/tablero/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "tablero",
	Short: "Tablero - A terminal kanban board",
	Long: `Tablero is a terminal kanban board with two views of the same three lists:
a task list at "/" and a kanban board at "/kanban".

Tasks live for the session only.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to an alternate config file")
	rootCmd.Flags().String("route", "", `Route to open at start ("/" or "/kanban"; default from config)`)
	rootCmd.Flags().Bool("demo", false, "Start with demo tasks on the board")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return cli.WithExitCode(cli.ExitUsage, err)
	})

	rootCmd.AddCommand(cli.RoutesCmd(buildRouteTable))
}

// Execute runs the root command and returns the exit code.
func Execute() int {
	err := rootCmd.Execute()
	if err != nil && !cli.IsReported(err) {
		fmt.Fprintln(rootCmd.ErrOrStderr(), styles.ErrorStyle.Render("Error")+" "+err.Error())
	}
	return cli.ExitCode(err)
}

// loadConfig reads the --config file, or the default location when unset.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFrom(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, cli.WithExitCode(cli.ExitError, fmt.Errorf("loading config: %w", err))
	}
	styles.Init(cfg.ColorScheme)
	return cfg, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.Init(cfg.LogLevel)
	if err != nil {
		return cli.WithExitCode(cli.ExitError, fmt.Errorf("initializing logging: %w", err))
	}

	route, _ := cmd.Flags().GetString("route")
	demo, _ := cmd.Flags().GetBool("demo")

	err = launcher.Launch(cmd.Context(), launcher.Options{
		Config:     cfg,
		Logger:     logger,
		StartRoute: route,
		Demo:       demo,
	})
	return cli.WithExitCode(cli.ExitError, err)
}

// buildRouteTable builds the same table the TUI uses, without building any view.
func buildRouteTable(cmd *cobra.Command) (*router.Table, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return tui.Routes(cmd.Context(), app.New(), cfg)
}
