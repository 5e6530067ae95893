package main

import (
	"github.com/spf13/cobra"

	"github.com/deidaraiorek/launchboard/internal/query"
	"github.com/deidaraiorek/launchboard/internal/tui"
)

func runBrowse(cmd *cobra.Command, args []string) error {
	// Logs would draw over the alternate screen.
	_, s, closer, err := prepare(true)
	if err != nil {
		return err
	}
	defer closer.Close()

	return tui.Run(query.NewFacade(s))
}
