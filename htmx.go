package navshell

import (
	"net/http"

	"github.com/angelofallars/htmx-go"
)

// Mode selects how much of the layout a render produces.
type Mode int

const (
	// ModeFull renders the whole document: navigation and content slot.
	ModeFull Mode = iota
	// ModePartial renders only the routed page, for swapping into the
	// content slot of a document that is already on screen.
	ModePartial
)

func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModePartial:
		return "partial"
	default:
		return "unknown"
	}
}

// requestMode classifies r. Only an htmx request aimed at the content slot gets
// a fragment. History restores need the whole document because htmx replaces
// the body with the response; any other htmx target is retargeted to the body.
func requestMode(r *http.Request, target string) (mode Mode, retarget bool) {
	if !htmx.IsHTMX(r) || htmx.IsHistoryRestoreRequest(r) {
		return ModeFull, false
	}
	if t, ok := htmx.GetTarget(r); ok && t == target {
		return ModePartial, false
	}
	return ModeFull, true
}
