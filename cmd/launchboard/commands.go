package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/deidaraiorek/launchboard/internal/config"
	"github.com/deidaraiorek/launchboard/internal/fetcher"
	"github.com/deidaraiorek/launchboard/internal/filter"
	"github.com/deidaraiorek/launchboard/internal/ingest"
	"github.com/deidaraiorek/launchboard/internal/query"
	"github.com/deidaraiorek/launchboard/internal/store"
)

var (
	configPath string

	outcomeFlag  string
	locationFlag string
	searchFlag   string
	exportOut    string

	rootCmd = &cobra.Command{
		Use:           "launchboard",
		Short:         "Browse and filter SpaceX launches",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	browseCmd = &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive launch browser",
		RunE:  runBrowse, // Defined in cmd_browse.go
	}

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "Print launches matching the given filters",
		RunE:  runList, // Defined in cmd_list.go
	}

	regionsCmd = &cobra.Command{
		Use:   "regions",
		Short: "Print the launch site regions usable with --location",
		RunE:  runRegions, // Defined in cmd_list.go
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the launch catalogue as a JSON API",
		RunE:  runServe, // Defined in cmd_serve.go
	}

	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Write launches matching the given filters to a SQLite file",
		RunE:  runExport, // Defined in cmd_export.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to launchboard.yaml")

	for _, cmd := range []*cobra.Command{listCmd, exportCmd} {
		cmd.Flags().StringVar(&outcomeFlag, "outcome", string(filter.OutcomeAll), "all, success, failed or upcoming")
		cmd.Flags().StringVar(&locationFlag, "location", filter.All, "launchpad region, or all")
		cmd.Flags().StringVar(&searchFlag, "search", "", "mission or rocket name contains")
	}

	exportCmd.Flags().StringVar(&exportOut, "out", "launches.db", "SQLite file to write")

	rootCmd.AddCommand(browseCmd, listCmd, regionsCmd, serveCmd, exportCmd)
}

// setupLogging points the standard logger at the configured log file, and
// also at stderr unless quiet is set.
func setupLogging(path string, quiet bool) (io.Closer, error) {
	if path == "" {
		if quiet {
			log.SetOutput(io.Discard)
		}
		return io.NopCloser(nil), nil
	}

	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	if quiet {
		log.SetOutput(logFile)
	} else {
		log.SetOutput(io.MultiWriter(os.Stderr, logFile))
	}
	return logFile, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// loadStore runs the startup sequence. On failure the user only ever sees
// query.FailureStatus; the cause goes to the log.
func loadStore(ctx context.Context, cfg *config.Config) (*store.Store, error) {
	f := fetcher.New(fetcher.Config{
		BaseURL:       cfg.APIBase,
		UserAgent:     cfg.Fetch.UserAgent,
		Timeout:       cfg.Fetch.Timeout,
		RespectRobots: cfg.Fetch.RespectRobots,
	})

	s, err := ingest.New(f, ingest.Config{Concurrent: cfg.Fetch.Concurrent}).Load(ctx)
	if err != nil {
		log.Printf("Error fetching data: %v", err)
		return nil, errors.New(query.FailureStatus)
	}
	return s, nil
}

// prepare loads config, sets up logging and ingests. The returned closer
// must be closed by the caller.
func prepare(quiet bool) (*config.Config, *store.Store, io.Closer, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	closer, err := setupLogging(cfg.LogFile, quiet)
	if err != nil {
		return nil, nil, nil, err
	}

	ctx, cancel := signalContext()
	defer cancel()

	s, err := loadStore(ctx, cfg)
	if err != nil {
		closer.Close()
		return nil, nil, nil, err
	}
	return cfg, s, closer, nil
}

func stateFromFlags() (filter.State, error) {
	outcome, err := filter.ParseOutcome(outcomeFlag)
	if err != nil {
		return filter.State{}, err
	}
	return filter.State{
		Location: locationFlag,
		Outcome:  outcome,
		Keyword:  searchFlag,
	}, nil
}
