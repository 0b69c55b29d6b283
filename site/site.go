// Package site holds the pages and layout of the restaurant website.
package site

import (
	"github.com/jackielii/navshell"
)

// ContentID is the id of the element page fragments are swapped into.
const ContentID = "content"

// Route names, usable with navshell.URLFor.
const (
	HomeRoute  = "home"
	MenuRoute  = "menu"
	AboutRoute = "about"
)

// Routes returns the site's route table.
func Routes() (*navshell.RouteTable, error) {
	return navshell.NewRouteTable(
		navshell.Route{Pattern: "/", Name: HomeRoute, Title: "Home", Page: Home()},
		navshell.Route{Pattern: "/menu", Name: MenuRoute, Title: "Menu", Page: Menu()},
		navshell.Route{Pattern: "/about", Name: AboutRoute, Title: "About Us", Page: AboutUs()},
	)
}

// NewShell wires the site's routes and layout into a navshell.Shell.
func NewShell(options ...navshell.Option) (*navshell.Shell, error) {
	table, err := Routes()
	if err != nil {
		return nil, err
	}
	opts := []navshell.Option{
		navshell.WithNavigation(NavigationBar()),
		navshell.WithDocument(Document),
		navshell.WithNotFound(NotFound()),
		navshell.WithContentTarget(ContentID),
	}
	return navshell.New(table, append(opts, options...)...)
}
