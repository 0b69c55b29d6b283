package chirouter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackielii/navshell"
)

func TestChiRouter(t *testing.T) {
	r := NewChiRouter(chi.NewRouter())
	r.HandleMethod(http.MethodGet, "/handle", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ChiRouter HandleMethod"))
	}))
	r.HandleMethod("ALL", "/any", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("any " + r.Method))
	}))
	r.NotFound(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("fallback"))
	}))

	tests := []struct {
		method, path string
		code         int
		body         string
	}{
		{http.MethodGet, "/handle", http.StatusOK, "ChiRouter HandleMethod"},
		{http.MethodHead, "/handle", http.StatusOK, "ChiRouter HandleMethod"},
		{http.MethodPut, "/any", http.StatusOK, "any PUT"},
		{http.MethodGet, "/missing", http.StatusNotFound, "fallback"},
		{http.MethodPost, "/handle", http.StatusNotFound, "fallback"},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != tt.code {
			t.Errorf("%s %s: expected status %d, got %d", tt.method, tt.path, tt.code, rec.Code)
		}
		if rec.Body.String() != tt.body {
			t.Errorf("%s %s: expected body %q, got %q", tt.method, tt.path, tt.body, rec.Body.String())
		}
	}
}

type textComponent string

func (c textComponent) Render(ctx context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(c))
	return err
}

func TestMountShell(t *testing.T) {
	table, err := navshell.NewRouteTable(
		navshell.Route{Pattern: "/", Name: "home", Page: textComponent("home page")},
		navshell.Route{Pattern: "/menu", Name: "menu", Page: textComponent("menu page")},
	)
	if err != nil {
		t.Fatalf("NewRouteTable failed: %v", err)
	}
	shell, err := navshell.New(table)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	mux := chi.NewRouter()
	mux.Use(middleware.StripSlashes)
	r := NewChiRouter(mux)
	shell.Mount(r)

	tests := []struct {
		method string
		path   string
		code   int
		body   string
	}{
		{http.MethodGet, "/", http.StatusOK, "home page"},
		{http.MethodGet, "/menu", http.StatusOK, "menu page"},
		{http.MethodGet, "/menu/", http.StatusOK, "menu page"},
		{http.MethodHead, "/menu", http.StatusOK, "menu page"},
		{http.MethodGet, "/contact", http.StatusNotFound, "Not Found"},
		{http.MethodPost, "/menu", http.StatusNotFound, "Not Found"},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
		req.Header.Set("HX-Request", "true")
		req.Header.Set("HX-Target", "content")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != tt.code {
			t.Errorf("%s %s: expected status %d, got %d", tt.method, tt.path, tt.code, rec.Code)
		}
		if got := rec.Body.String(); !strings.Contains(got, tt.body) {
			t.Errorf("%s %s: expected body to contain %q, got %q", tt.method, tt.path, tt.body, got)
		}
	}
}
