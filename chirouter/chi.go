// Package chirouter adapts a chi router to navshell.Router.
package chirouter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackielii/navshell"
)

type chiRouter struct {
	router chi.Router
}

var _ navshell.Router = (*chiRouter)(nil)

func NewChiRouter(r chi.Router) *chiRouter {
	return &chiRouter{router: r}
}

// HandleMethod registers handler for method on path. A GET handler also
// answers HEAD, as it does on http.ServeMux.
func (r *chiRouter) HandleMethod(method, path string, handler http.Handler) {
	switch method {
	case "ALL", "":
		r.router.Handle(path, handler)
	case http.MethodGet:
		r.router.Method(http.MethodGet, path, handler)
		r.router.Method(http.MethodHead, path, handler)
	default:
		r.router.Method(method, path, handler)
	}
}

func (r *chiRouter) NotFound(handler http.Handler) {
	r.router.NotFound(handler.ServeHTTP)
	r.router.MethodNotAllowed(handler.ServeHTTP)
}

func (r *chiRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
