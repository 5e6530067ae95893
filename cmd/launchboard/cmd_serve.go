package main

import (
	"github.com/spf13/cobra"

	"github.com/deidaraiorek/launchboard/internal/api"
)

func runServe(cmd *cobra.Command, args []string) error {
	cfg, s, closer, err := prepare(false)
	if err != nil {
		return err
	}
	defer closer.Close()

	srv := api.NewServer(s, api.Config{
		Addr:           cfg.Server.Addr,
		RequestTimeout: cfg.Server.RequestTimeout,
	})

	ctx, cancel := signalContext()
	defer cancel()
	return srv.Run(ctx)
}
