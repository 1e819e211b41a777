package router

import "errors"

// Route table errors
var (
	// ErrRouteNotFound indicates that no route matches the requested path or name
	ErrRouteNotFound = errors.New("route not found")

	// ErrDuplicatePath indicates two routes were declared with the same path
	ErrDuplicatePath = errors.New("duplicate route path")

	// ErrDuplicateName indicates two routes were declared with the same name
	ErrDuplicateName = errors.New("duplicate route name")

	// ErrInvalidPath indicates a route path that is empty or does not start with "/"
	ErrInvalidPath = errors.New("route path must start with /")

	// ErrMissingLoader indicates a route declared without a component loader
	ErrMissingLoader = errors.New("route has no component loader")

	// ErrNilView indicates a loader that returned no view
	ErrNilView = errors.New("route loader returned nil view")

	// ErrEmptyTable indicates a table built with no routes
	ErrEmptyTable = errors.New("route table is empty")
)
