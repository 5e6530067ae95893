package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/deidaraiorek/launchboard/internal/export"
	"github.com/deidaraiorek/launchboard/internal/query"
	"github.com/deidaraiorek/launchboard/internal/storage"
)

func runExport(cmd *cobra.Command, args []string) error {
	state, err := stateFromFlags()
	if err != nil {
		return err
	}

	_, s, closer, err := prepare(false)
	if err != nil {
		return err
	}
	defer closer.Close()

	db, err := storage.NewExportDB(exportOut)
	if err != nil {
		return err
	}
	defer db.Close()

	launches := query.Compute(s, state)
	counts, err := export.New(db).Export(launches, s, state)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	log.Printf("Export saved to: %s", exportOut)
	fmt.Fprintf(cmd.OutOrStdout(), "%s, %d written to %s\n", query.Summary(len(launches)), counts.Launches, exportOut)
	return nil
}
