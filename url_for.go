package navshell

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackielii/ctxkey"
)

var tableCtx = ctxkey.New[*RouteTable]("navshell.routeTable", nil)

func withTable(ctx context.Context, t *RouteTable) context.Context {
	return tableCtx.WithValue(ctx, t)
}

func routeTable(ctx context.Context) *RouteTable {
	return tableCtx.Value(ctx)
}

// URLFor returns the path of the route registered under name. It only works
// inside a render started by a Shell, which places the table in ctx.
func URLFor(ctx context.Context, name string) (string, error) {
	t := routeTable(ctx)
	if t == nil {
		return "", errors.New("urlfor: route table not found in context")
	}
	r, ok := t.Lookup(name)
	if !ok {
		return "", fmt.Errorf("urlfor: no route named %q", name)
	}
	return r.Pattern, nil
}
