package navshell

import (
	"errors"
	"fmt"
	"path"
	"strings"
	"unicode"

	"github.com/a-h/templ"
)

var (
	ErrEmptyPattern     = errors.New("navshell: empty route pattern")
	ErrInvalidPattern   = errors.New("navshell: invalid route pattern")
	ErrDuplicatePattern = errors.New("navshell: duplicate route pattern")
	ErrDuplicateName    = errors.New("navshell: duplicate route name")
	ErrNilPage          = errors.New("navshell: route has no page component")
)

// Route binds an exact path to the page rendered for it.
type Route struct {
	Pattern string
	// Name identifies the route for URLFor. Defaults to the pattern.
	Name  string
	Title string
	Page  templ.Component
}

// RouteTable is an ordered, immutable set of routes with unique patterns.
type RouteTable struct {
	routes []Route
	byPath map[string]int
	byName map[string]int
}

// NewRouteTable validates routes and builds the table. Patterns are
// canonicalized before the uniqueness check, so "/menu" and "/menu/" collide.
func NewRouteTable(routes ...Route) (*RouteTable, error) {
	t := &RouteTable{
		routes: make([]Route, 0, len(routes)),
		byPath: make(map[string]int, len(routes)),
		byName: make(map[string]int, len(routes)),
	}
	for _, r := range routes {
		if r.Pattern == "" {
			return nil, ErrEmptyPattern
		}
		if !strings.HasPrefix(r.Pattern, "/") || strings.ContainsAny(r.Pattern, "{}*?#") ||
			strings.ContainsFunc(r.Pattern, unicode.IsSpace) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, r.Pattern)
		}
		if r.Page == nil {
			return nil, fmt.Errorf("%w: %q", ErrNilPage, r.Pattern)
		}
		r.Pattern = CanonicalPath(r.Pattern)
		if r.Name == "" {
			r.Name = r.Pattern
		}
		if _, ok := t.byPath[r.Pattern]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePattern, r.Pattern)
		}
		if _, ok := t.byName[r.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, r.Name)
		}
		t.byPath[r.Pattern] = len(t.routes)
		t.byName[r.Name] = len(t.routes)
		t.routes = append(t.routes, r)
	}
	return t, nil
}

// Match returns the route whose pattern equals the canonical form of p.
func (t *RouteTable) Match(p string) (Route, bool) {
	i, ok := t.byPath[CanonicalPath(p)]
	if !ok {
		return Route{}, false
	}
	return t.routes[i], true
}

// Lookup returns the route registered under name.
func (t *RouteTable) Lookup(name string) (Route, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Route{}, false
	}
	return t.routes[i], true
}

// Routes returns a copy of the routes in declaration order.
func (t *RouteTable) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Len reports the number of routes.
func (t *RouteTable) Len() int { return len(t.routes) }

// CanonicalPath cleans p, strips any query or fragment and drops the trailing
// slash. The empty path is "/".
func CanonicalPath(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		return "/"
	}
	if p[0] != '/' {
		p = "/" + p
	}
	return path.Clean(p)
}
