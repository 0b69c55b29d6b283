package navshell

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"sync"
)

// ErrNoHistory is returned by Back and Forward at either end of the history.
var ErrNoHistory = errors.New("navshell: no history entry")

// Navigator holds the client side of a session: the current path, the
// back/forward history and the content slot as last rendered. Navigation
// events run one at a time.
type Navigator struct {
	shell *Shell

	mu      sync.Mutex
	history []string
	index   int
	content string
	status  int
}

// NewNavigator opens a session on start and renders it.
func NewNavigator(ctx context.Context, shell *Shell, start string) (*Navigator, error) {
	n := &Navigator{shell: shell}
	start = CanonicalPath(start)
	if err := n.render(ctx, start); err != nil {
		return nil, err
	}
	n.history = []string{start}
	return n, nil
}

// Navigate pushes p and renders it into the content slot, dropping forward
// history. Navigating to the current path does nothing.
func (n *Navigator) Navigate(ctx context.Context, p string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	p = CanonicalPath(p)
	if p == n.history[n.index] {
		return nil
	}
	if err := n.render(ctx, p); err != nil {
		return err
	}
	n.history = append(n.history[:n.index+1], p)
	n.index++
	return nil
}

func (n *Navigator) Back(ctx context.Context) error {
	return n.step(ctx, -1)
}

func (n *Navigator) Forward(ctx context.Context) error {
	return n.step(ctx, 1)
}

func (n *Navigator) step(ctx context.Context, delta int) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	i := n.index + delta
	if i < 0 || i >= len(n.history) {
		return ErrNoHistory
	}
	if err := n.render(ctx, n.history[i]); err != nil {
		return err
	}
	n.index = i
	return nil
}

// render replaces the content only when the whole render succeeds.
func (n *Navigator) render(ctx context.Context, p string) error {
	var buf bytes.Buffer
	status, err := n.shell.Render(ctx, &buf, p, ModePartial)
	if err != nil {
		return err
	}
	n.content = buf.String()
	n.status = status
	return nil
}

func (n *Navigator) CurrentPath() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.history[n.index]
}

// Content returns the last partial response: the page shown in the content
// slot and the out-of-band navigation bar.
func (n *Navigator) Content() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.content
}

// Status returns the status of the last render, 404 for an unmatched path.
func (n *Navigator) Status() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.status
}

// History returns the visited paths and the index of the current one.
func (n *Navigator) History() ([]string, int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Clone(n.history), n.index
}
