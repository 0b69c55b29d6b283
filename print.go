package navshell

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// PrintRoutes lists the routes of t in declaration order, one per line.
func PrintRoutes(t *RouteTable) string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATTERN\tNAME\tTITLE")
	for _, r := range t.Routes() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Pattern, r.Name, r.Title)
	}
	_ = tw.Flush()
	return sb.String()
}
