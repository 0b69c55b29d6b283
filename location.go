package navshell

import (
	"context"
	"net/http"

	"github.com/jackielii/ctxkey"
)

var (
	currentPathCtx  = ctxkey.New[string]("navshell.currentPath", "/")
	routeMatchedCtx = ctxkey.New[bool]("navshell.routeMatched", true)
)

// WithCurrentPath returns a context carrying the canonical form of p as the
// path being viewed.
func WithCurrentPath(ctx context.Context, p string) context.Context {
	return currentPathCtx.WithValue(ctx, CanonicalPath(p))
}

// CurrentPath returns the path being rendered, "/" if none was set.
func CurrentPath(ctx context.Context) string {
	return currentPathCtx.Value(ctx)
}

// withUnmatchedPath keeps p as requested. While the not-found page renders no
// pattern is current, even one p canonicalises to.
func withUnmatchedPath(ctx context.Context, p string) context.Context {
	return routeMatchedCtx.WithValue(currentPathCtx.WithValue(ctx, p), false)
}

// IsCurrent reports whether pattern is the path being rendered. It is false
// for every pattern on the not-found page.
func IsCurrent(ctx context.Context, pattern string) bool {
	return routeMatchedCtx.Value(ctx) && CurrentPath(ctx) == CanonicalPath(pattern)
}

// renderInfo lets middlewares see how the shell answered a request.
type renderInfo struct {
	mode   Mode
	status int
}

var renderInfoCtx = ctxkey.New[*renderInfo]("navshell.renderInfo", nil)

func withRenderInfo(ctx context.Context) (context.Context, *renderInfo) {
	info := &renderInfo{status: http.StatusInternalServerError}
	return renderInfoCtx.WithValue(ctx, info), info
}

func recordRender(ctx context.Context, mode Mode, status int) {
	if info := renderInfoCtx.Value(ctx); info != nil {
		info.mode, info.status = mode, status
	}
}
