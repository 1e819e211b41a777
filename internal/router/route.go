// Package router maps board paths to the views that render them.
//
// Views are built lazily: a route carries a Loader, and the table only calls
// it the first time that route is resolved.
package router

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// View is a routed screen hosted by the TUI.
// Update mutates the view in place, so implementations use pointer receivers.
type View interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
	KeyBindings() []key.Binding
}

// Loader builds the view for a route.
type Loader func() View

// Route associates a path with a named view.
type Route struct {
	Path string
	Name string
	Load Loader
}

// Table is an immutable set of routes with lazily constructed views.
type Table struct {
	routes []Route
	byPath map[string]int
	byName map[string]int
	views  map[string]View
}

// NewTable validates the routes and freezes them into a table.
// Paths and names must be unique; declaration order is kept.
func NewTable(routes ...Route) (*Table, error) {
	if len(routes) == 0 {
		return nil, ErrEmptyTable
	}

	t := &Table{
		routes: make([]Route, 0, len(routes)),
		byPath: make(map[string]int, len(routes)),
		byName: make(map[string]int, len(routes)),
		views:  make(map[string]View, len(routes)),
	}

	for _, r := range routes {
		path := normalize(r.Path)
		if !strings.HasPrefix(path, "/") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, r.Path)
		}
		if r.Load == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingLoader, path)
		}
		if _, exists := t.byPath[path]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePath, path)
		}
		if _, exists := t.byName[r.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, r.Name)
		}

		r.Path = path
		t.byPath[path] = len(t.routes)
		t.byName[r.Name] = len(t.routes)
		t.routes = append(t.routes, r)
	}

	return t, nil
}

// Lookup returns the route registered for path.
// A trailing slash is ignored, so "/kanban/" matches "/kanban".
func (t *Table) Lookup(path string) (Route, error) {
	idx, ok := t.byPath[normalize(path)]
	if !ok {
		return Route{}, fmt.Errorf("%w: %s", ErrRouteNotFound, path)
	}
	return t.routes[idx], nil
}

// ByName returns the route with the given name.
func (t *Table) ByName(name string) (Route, error) {
	idx, ok := t.byName[name]
	if !ok {
		return Route{}, fmt.Errorf("%w: named %q", ErrRouteNotFound, name)
	}
	return t.routes[idx], nil
}

// Resolve returns the view for path, building it on first use.
// Later calls return the same instance.
func (t *Table) Resolve(path string) (View, error) {
	route, err := t.Lookup(path)
	if err != nil {
		return nil, err
	}

	if v, ok := t.views[route.Path]; ok {
		return v, nil
	}

	v := route.Load()
	if v == nil {
		return nil, fmt.Errorf("%w: %s", ErrNilView, route.Path)
	}
	t.views[route.Path] = v
	return v, nil
}

// Loaded reports whether the view for path has been built.
func (t *Table) Loaded(path string) bool {
	_, ok := t.views[normalize(path)]
	return ok
}

// Routes returns a copy of the routes in declaration order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Paths returns the route paths in declaration order.
func (t *Table) Paths() []string {
	out := make([]string, 0, len(t.routes))
	for _, r := range t.routes {
		out = append(out, r.Path)
	}
	return out
}

// Len returns the number of routes.
func (t *Table) Len() int {
	return len(t.routes)
}

func (t *Table) indexOf(path string) int {
	idx, ok := t.byPath[normalize(path)]
	if !ok {
		return -1
	}
	return idx
}

func normalize(path string) string {
	path = strings.TrimSpace(path)
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	return path
}
