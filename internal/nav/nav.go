// Package nav routes between the application screens using an explicit
// history stack.
package nav

import "fmt"

// Route identifies a screen.
type Route int

const (
	// RouteMain is the calculation screen and the root of the history.
	RouteMain Route = iota
	// RouteAbout is the static about screen.
	RouteAbout
)

// String returns the route identifier ("main" or "about").
func (r Route) String() string {
	switch r {
	case RouteMain:
		return "main"
	case RouteAbout:
		return "about"
	default:
		return fmt.Sprintf("Route(%d)", int(r))
	}
}

// Valid reports whether r is a known route.
func (r Route) Valid() bool {
	return r == RouteMain || r == RouteAbout
}

// ParseRoute resolves a route identifier.
func ParseRoute(s string) (Route, error) {
	switch s {
	case "main":
		return RouteMain, nil
	case "about":
		return RouteAbout, nil
	default:
		return RouteMain, fmt.Errorf("%w: %q", ErrUnknownRoute, s)
	}
}

type constError string

func (e constError) Error() string { return string(e) }

// ErrUnknownRoute is returned for routes outside the navigation graph.
const ErrUnknownRoute = constError("unknown route")

// Navigator keeps the history of visited routes. The root route is never
// popped, so Current always has a value.
type Navigator struct {
	stack []Route
}

// New returns a Navigator positioned at RouteMain.
func New() *Navigator {
	return &Navigator{stack: []Route{RouteMain}}
}

// Current returns the route on top of the stack.
func (n *Navigator) Current() Route {
	return n.stack[len(n.stack)-1]
}

// Depth returns the number of routes on the stack.
func (n *Navigator) Depth() int {
	return len(n.stack)
}

// NavigateTo pushes route. Navigating to the current route is a no-op.
func (n *Navigator) NavigateTo(route Route) error {
	if !route.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownRoute, route)
	}
	if route == n.Current() {
		return nil
	}
	n.stack = append(n.stack, route)
	return nil
}

// NavigateBack pops the current route. It returns false when already at the
// root.
func (n *Navigator) NavigateBack() bool {
	if len(n.stack) <= 1 {
		return false
	}
	n.stack = n.stack[:len(n.stack)-1]
	return true
}

// History returns a copy of the stack, root first.
func (n *Navigator) History() []Route {
	out := make([]Route, len(n.stack))
	copy(out, n.stack)
	return out
}
