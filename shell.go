package navshell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/angelofallars/htmx-go"
)

// NotFoundName is the route name middlewares see for unmatched paths.
const NotFoundName = "not-found"

// navSlotID is the id of the element holding the navigation bar.
const navSlotID = "navshell-nav"

// MiddlewareFunc wraps the handler serving route.
type MiddlewareFunc = func(http.Handler, Route) http.Handler

// DocumentFunc builds the full page around the navigation bar and the content
// slot. It must render both nav and content exactly once.
type DocumentFunc func(title string, nav, content templ.Component) templ.Component

// Shell renders the pages of a RouteTable inside a persistent layout.
type Shell struct {
	table       *RouteTable
	nav         templ.Component
	hasNav      bool
	document    DocumentFunc
	notFound    templ.Component
	target      string
	onError     func(http.ResponseWriter, *http.Request, error)
	middlewares []MiddlewareFunc
	logger      *slog.Logger

	handlers        map[string]http.Handler
	notFoundHandler http.Handler
}

// Option configures a Shell in New.
type Option func(*Shell)

// New creates a shell for table. Handlers, including the middlewares given
// through WithMiddlewares, are built once here.
func New(table *RouteTable, options ...Option) (*Shell, error) {
	if table == nil {
		return nil, errors.New("navshell: nil route table")
	}
	s := &Shell{
		table:    table,
		nav:      templ.NopComponent,
		document: defaultDocument,
		notFound: defaultNotFound(),
		target:   "content",
		onError: func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		},
		logger: slog.Default(),
	}
	for _, opt := range options {
		opt(s)
	}
	if s.target == "" {
		return nil, errors.New("navshell: empty content target")
	}

	s.handlers = make(map[string]http.Handler, table.Len())
	for _, route := range table.Routes() {
		s.handlers[route.Pattern] = s.wrap(s.handler(route, true), route)
	}
	s.notFoundHandler = s.wrap(s.handler(s.notFoundRoute(), false), s.notFoundRoute())
	return s, nil
}

// WithNavigation sets the navigation bar rendered on every full page. Partial
// responses carry an out-of-band copy so the bar follows the current path.
func WithNavigation(nav templ.Component) Option {
	return func(s *Shell) {
		if nav != nil {
			s.nav, s.hasNav = nav, true
		}
	}
}

// WithDocument replaces the HTML document wrapping full pages.
func WithDocument(doc DocumentFunc) Option {
	return func(s *Shell) {
		if doc != nil {
			s.document = doc
		}
	}
}

// WithNotFound sets the component shown in the content slot for paths
// without a route. Those responses carry status 404.
func WithNotFound(c templ.Component) Option {
	return func(s *Shell) {
		if c != nil {
			s.notFound = c
		}
	}
}

// WithContentTarget sets the id of the content slot. htmx requests whose
// HX-Target equals it receive only the page fragment.
func WithContentTarget(id string) Option {
	return func(s *Shell) {
		s.target = id
	}
}

// WithErrorHandler sets the handler called when a page fails to render.
func WithErrorHandler(onError func(http.ResponseWriter, *http.Request, error)) Option {
	return func(s *Shell) {
		s.onError = onError
	}
}

// WithMiddlewares appends middlewares. The last one given runs outermost.
func WithMiddlewares(middlewares ...MiddlewareFunc) Option {
	return func(s *Shell) {
		s.middlewares = append(s.middlewares, middlewares...)
	}
}

// WithLogger sets the logger for render failures. The default is slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Shell) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Table returns the shell's route table.
func (s *Shell) Table() *RouteTable { return s.table }

// ContentTarget returns the id of the content slot.
func (s *Shell) ContentTarget() string { return s.target }

// Mount registers a GET handler for every route and the not-found fallback.
func (s *Shell) Mount(router Router) {
	for _, route := range s.table.Routes() {
		router.HandleMethod(http.MethodGet, route.Pattern, s.handlers[route.Pattern])
	}
	router.NotFound(s.notFoundHandler)
}

// ServeHTTP serves r without an external router.
func (s *Shell) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		if route, ok := s.table.Match(r.URL.Path); ok {
			s.handlers[route.Pattern].ServeHTTP(w, r)
			return
		}
	}
	s.notFoundHandler.ServeHTTP(w, r)
}

// Render writes the page bound to p. The result depends only on the table and
// p: the returned status is 404 when no route matches, 200 otherwise.
//
// ModeFull writes the document with the navigation bar and the content slot.
// ModePartial writes the page with its title, followed by the navigation bar
// marked hx-swap-oob so htmx replaces the bar in place.
func (s *Shell) Render(ctx context.Context, w io.Writer, p string, mode Mode) (int, error) {
	route, ok := s.table.Match(p)
	return s.render(ctx, w, p, route, ok, mode)
}

func (s *Shell) render(ctx context.Context, w io.Writer, p string, route Route, matched bool, mode Mode) (int, error) {
	status := http.StatusOK
	if matched {
		ctx = WithCurrentPath(ctx, p)
	} else {
		status = http.StatusNotFound
		route = s.notFoundRoute()
		ctx = withUnmatchedPath(ctx, p)
	}
	ctx = withTable(ctx, s.table)

	var c templ.Component
	switch mode {
	case ModePartial:
		var nav templ.Component
		if s.hasNav {
			nav = s.nav
		}
		c = fragment(route.Title, route.Page, nav)
	default:
		c = s.document(route.Title, navSlot(s.nav, false), contentSlot(s.target, route.Page))
	}
	if err := c.Render(ctx, w); err != nil {
		return status, fmt.Errorf("render %s (%s): %w", CanonicalPath(p), route.Name, err)
	}
	return status, nil
}

func (s *Shell) wrap(h http.Handler, route Route) http.Handler {
	for _, mw := range s.middlewares {
		h = mw(h, route)
	}
	return h
}

func (s *Shell) notFoundRoute() Route {
	return Route{Name: NotFoundName, Title: "Not Found", Page: s.notFound}
}

// handler serves route, or the not-found page when matched is false. The
// router has already matched the request, so the path is not looked up again.
func (s *Shell) handler(route Route, matched bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.serve(w, r, route, matched)
	})
}

func (s *Shell) serve(w http.ResponseWriter, r *http.Request, route Route, matched bool) {
	mode, retarget := requestMode(r, s.target)
	bw := newBuffered(w)
	status, err := s.render(r.Context(), bw, r.URL.Path, route, matched, mode)
	if err != nil {
		bw.discard()
		recordRender(r.Context(), mode, http.StatusInternalServerError)
		s.logger.ErrorContext(r.Context(), "render failed",
			slog.String("path", r.URL.Path), slog.String("mode", mode.String()), slog.Any("error", err))
		s.onError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	resp := htmx.NewResponse().StatusCode(status)
	if mode == ModePartial && status == http.StatusOK {
		resp = resp.PushURL(CanonicalPath(r.URL.Path))
	}
	if retarget {
		resp = resp.Retarget("body")
	}
	if err := resp.Write(bw); err != nil {
		bw.discard()
		s.onError(w, r, fmt.Errorf("write htmx headers: %w", err))
		return
	}
	recordRender(r.Context(), mode, status)
	if err := bw.close(); err != nil {
		s.logger.WarnContext(r.Context(), "write response", slog.String("path", r.URL.Path), slog.Any("error", err))
		return
	}
	s.logger.DebugContext(r.Context(), "rendered page",
		slog.String("path", r.URL.Path), slog.String("mode", mode.String()), slog.Int("status", status))
}
