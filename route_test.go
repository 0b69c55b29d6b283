package navshell

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type testComponent struct {
	content string
}

func (t testComponent) Render(ctx context.Context, w io.Writer) error {
	_, err := w.Write([]byte(t.content))
	return err
}

func testTable(t *testing.T) *RouteTable {
	t.Helper()
	table, err := NewRouteTable(
		Route{Pattern: "/", Name: "home", Title: "Home", Page: testComponent{"<p>home page</p>"}},
		Route{Pattern: "/menu", Name: "menu", Title: "Menu", Page: testComponent{"<p>menu page</p>"}},
		Route{Pattern: "/about", Name: "about", Title: "About Us", Page: testComponent{"<p>about page</p>"}},
	)
	if err != nil {
		t.Fatalf("NewRouteTable failed: %v", err)
	}
	return table
}

func TestNewRouteTableErrors(t *testing.T) {
	page := testComponent{"x"}
	tests := []struct {
		name   string
		routes []Route
		want   error
	}{
		{"empty pattern", []Route{{Pattern: "", Page: page}}, ErrEmptyPattern},
		{"relative pattern", []Route{{Pattern: "menu", Page: page}}, ErrInvalidPattern},
		{"wildcard", []Route{{Pattern: "/menu/{id}", Page: page}}, ErrInvalidPattern},
		{"query", []Route{{Pattern: "/menu?x=1", Page: page}}, ErrInvalidPattern},
		{"space", []Route{{Pattern: "/a b", Page: page}}, ErrInvalidPattern},
		{"tab", []Route{{Pattern: "/menu\t", Page: page}}, ErrInvalidPattern},
		{"nil page", []Route{{Pattern: "/menu"}}, ErrNilPage},
		{
			"duplicate pattern",
			[]Route{{Pattern: "/menu", Page: page}, {Pattern: "/menu", Name: "other", Page: page}},
			ErrDuplicatePattern,
		},
		{
			"duplicate after canonicalization",
			[]Route{{Pattern: "/menu", Page: page}, {Pattern: "/menu/", Name: "other", Page: page}},
			ErrDuplicatePattern,
		},
		{
			"duplicate name",
			[]Route{{Pattern: "/a", Name: "x", Page: page}, {Pattern: "/b", Name: "x", Page: page}},
			ErrDuplicateName,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRouteTable(tt.routes...)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewRouteTable() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRouteTableMatch(t *testing.T) {
	table := testTable(t)
	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{"/", "home", true},
		{"", "home", true},
		{"/menu", "menu", true},
		{"/menu/", "menu", true},
		{"/about", "about", true},
		{"/about?lang=en", "about", true},
		{"//about", "about", true},
		{"/contact", "", false},
		{"/menu/extra", "", false},
		{"/Menu", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := table.Match(tt.path)
			if ok != tt.wantOK {
				t.Fatalf("Match(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if got.Name != tt.want {
				t.Errorf("Match(%q) = %q, want %q", tt.path, got.Name, tt.want)
			}
		})
	}
}

func TestRouteTableRoutes(t *testing.T) {
	table := testTable(t)
	var patterns []string
	for _, r := range table.Routes() {
		patterns = append(patterns, r.Pattern)
	}
	if diff := cmp.Diff(patterns, []string{"/", "/menu", "/about"}); diff != "" {
		t.Errorf("Routes() mismatch (-got +want):\n%s", diff)
	}

	// the returned slice is a copy
	routes := table.Routes()
	routes[0].Pattern = "/changed"
	if _, ok := table.Match("/"); !ok {
		t.Errorf("modifying Routes() result changed the table")
	}
}

func TestRouteTableDefaultName(t *testing.T) {
	table, err := NewRouteTable(Route{Pattern: "/menu/", Page: testComponent{"x"}})
	if err != nil {
		t.Fatalf("NewRouteTable failed: %v", err)
	}
	r, ok := table.Lookup("/menu")
	if !ok {
		t.Fatalf("expected route to be named after its canonical pattern")
	}
	if r.Pattern != "/menu" {
		t.Errorf("expected pattern %q, got %q", "/menu", r.Pattern)
	}
}

func TestCanonicalPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "/"},
		{"/", "/"},
		{"menu", "/menu"},
		{"/menu/", "/menu"},
		{"/a/../menu", "/menu"},
		{"/about#team", "/about"},
		{"?x=1", "/"},
	}
	for _, tt := range tests {
		if got := CanonicalPath(tt.in); got != tt.want {
			t.Errorf("CanonicalPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
