package navshell

import (
	"net/http"
)

// Router is an interface for registering the shell's routes.
// Mount registers one handler per route plus a fallback for unmatched paths.
type Router interface {
	HandleMethod(method, path string, handler http.Handler)
	NotFound(handler http.Handler)
	ServeHTTP(http.ResponseWriter, *http.Request)
}

type stdRouter struct {
	router *http.ServeMux
}

// NewRouter creates a new router that wraps http.ServeMux.
// If router is nil, it uses http.DefaultServeMux.
//
// Patterns are exact: "/" is registered as "/{$}" so that it does not act as
// the mux's catch-all, which is reserved for NotFound.
//
//	mux := http.NewServeMux()
//	router := navshell.NewRouter(mux)
//	shell.Mount(router)
func NewRouter(router *http.ServeMux) *stdRouter {
	if router == nil {
		router = http.DefaultServeMux
	}
	return &stdRouter{router: router}
}

func (r *stdRouter) HandleMethod(method, pattern string, handler http.Handler) {
	if pattern == "/" {
		pattern = "/{$}"
	}
	if method != methodAll && method != "" {
		pattern = method + " " + pattern
	}
	r.router.Handle(pattern, handler)
}

func (r *stdRouter) NotFound(handler http.Handler) {
	r.router.Handle("/", handler)
}

func (r *stdRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

const methodAll = "ALL"
