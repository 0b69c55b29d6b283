package site

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/jackielii/navshell"
)

const siteName = "Bistro"

var navLinks = []struct {
	route string
	label string
}{
	{HomeRoute, "Home"},
	{MenuRoute, "Menu"},
	{AboutRoute, "About Us"},
}

type navLink struct {
	href    string
	label   string
	current bool
}

// NavigationBar links every page. Links fetch the page fragment into the
// content slot and push the history entry; the plain href is the fallback
// without JavaScript.
func NavigationBar() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		links := make([]navLink, 0, len(navLinks))
		for _, l := range navLinks {
			href, err := navshell.URLFor(ctx, l.route)
			if err != nil {
				return err
			}
			links = append(links, navLink{href: href, label: l.label, current: navshell.IsCurrent(ctx, href)})
		}
		return navBar(links).Render(ctx, w)
	})
}
