package cli

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
	"github.com/thenoetrevino/tablero/internal/router"
)

// TableBuilder returns the route table the command describes.
type TableBuilder func(cmd *cobra.Command) (*router.Table, error)

// RouteInfo is one route as printed by the routes command.
type RouteInfo struct {
	Path string `json:"path"`
	Name string `json:"name"`
}

// RouteList renders as a lipgloss table and prints paths in quiet mode.
type RouteList []RouteInfo

// QuietKeys returns one path per route.
func (l RouteList) QuietKeys() []string {
	paths := make([]string, 0, len(l))
	for _, r := range l {
		paths = append(paths, r.Path)
	}
	return paths
}

func (l RouteList) String() string {
	rows := make([][]string, 0, len(l))
	for _, r := range l {
		rows = append(rows, []string{r.Path, r.Name})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.BorderStyle).
		Headers("PATH", "NAME").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.HeaderStyle
			}
			return styles.CellStyle
		}).
		String()
}

// RoutesCmd returns the routes subcommand
func RoutesCmd(build TableBuilder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routes [path]",
		Short: "List the board's routes",
		Long:  "List every route path and the view it opens. With a path, show only that route.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoutes(cmd, args, build)
		},
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (paths only)")

	return cmd
}

func runRoutes(cmd *cobra.Command, args []string, build TableBuilder) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}

	t, err := build(cmd)
	if err != nil {
		_ = formatter.Error("ROUTE_TABLE_ERROR", err.Error())
		return Reported(ExitCode(err), err)
	}

	var list RouteList
	if len(args) == 1 {
		r, err := t.Lookup(args[0])
		if err != nil {
			_ = formatter.ErrorWithSuggestion("ROUTE_NOT_FOUND", err.Error(),
				"Known paths: "+strings.Join(t.Paths(), ", "))
			if errors.Is(err, router.ErrRouteNotFound) {
				return Reported(ExitNotFound, err)
			}
			return Reported(ExitError, err)
		}
		list = RouteList{{Path: r.Path, Name: r.Name}}
	} else {
		for _, r := range t.Routes() {
			list = append(list, RouteInfo{Path: r.Path, Name: r.Name})
		}
	}

	if err := formatter.Success(list); err != nil {
		return fmt.Errorf("writing routes: %w", err)
	}
	return nil
}
