package main

import (
	"fmt"

	"github.com/jackielii/navshell"
	"github.com/jackielii/navshell/site"
	"github.com/spf13/cobra"
)

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := site.Routes()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), navshell.PrintRoutes(table))
			return nil
		},
	}
}
