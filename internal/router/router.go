package router

// Router tracks the current location within a Table.
// It keeps no history; navigating replaces the current route.
type Router struct {
	table   *Table
	current int
}

// NewRouter creates a router positioned at start.
// The start route's view is built immediately.
func NewRouter(table *Table, start string) (*Router, error) {
	r := &Router{table: table, current: -1}
	if _, err := r.Navigate(start); err != nil {
		return nil, err
	}
	return r, nil
}

// Navigate moves to path and returns its view.
// On error the current location is left unchanged.
func (r *Router) Navigate(path string) (View, error) {
	v, err := r.table.Resolve(path)
	if err != nil {
		return nil, err
	}
	r.current = r.table.indexOf(path)
	return v, nil
}

// Next moves to the route declared after the current one, wrapping around.
func (r *Router) Next() (View, error) {
	idx := (r.current + 1) % r.table.Len()
	return r.Navigate(r.table.routes[idx].Path)
}

// Prev moves to the route declared before the current one, wrapping around.
func (r *Router) Prev() (View, error) {
	idx := (r.current - 1 + r.table.Len()) % r.table.Len()
	return r.Navigate(r.table.routes[idx].Path)
}

// Current returns the active route.
func (r *Router) Current() Route {
	return r.table.routes[r.current]
}

// CurrentIndex returns the position of the active route in the table.
func (r *Router) CurrentIndex() int {
	return r.current
}

// CurrentView returns the view of the active route.
func (r *Router) CurrentView() View {
	return r.table.views[r.Current().Path]
}

// Table returns the route table.
func (r *Router) Table() *Table {
	return r.table
}
