// Package navshell renders a small set of statically declared pages inside a
// persistent layout. Pages are [templ.Component] values bound to exact paths in
// a [RouteTable]; the [Shell] selects the page for the current path and renders
// it either as a full document or, for htmx link activations, as a fragment
// swapped into the content slot so the navigation bar is never reloaded.
//
// A [Navigator] models the browser side of the same contract: it owns the
// current path and the back/forward history and re-renders through the Shell.
package navshell
