// Package ingest runs the startup sequence: fetch launches, rockets and
// launchpads, then build the record store. Either every collection arrives
// and a store is returned, or nothing is published.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/deidaraiorek/launchboard/internal/model"
	"github.com/deidaraiorek/launchboard/internal/store"
)

const (
	EndpointLaunches   = "launches"
	EndpointRockets    = "rockets"
	EndpointLaunchpads = "launchpads"
)

var ErrUnavailable = errors.New("data source unavailable")

// Source decodes the JSON array served at endpoint into v.
type Source interface {
	FetchJSON(ctx context.Context, endpoint string, v any) error
}

type Config struct {
	// Concurrent issues the three reads at once instead of in sequence.
	Concurrent bool
}

type Loader struct {
	source Source
	config Config
}

func New(source Source, config Config) *Loader {
	return &Loader{source: source, config: config}
}

func (l *Loader) Load(ctx context.Context) (*store.Store, error) {
	var (
		launches   []model.Launch
		rockets    []model.Rocket
		launchpads []model.Launchpad
		err        error
	)

	if l.config.Concurrent {
		err = l.fetchConcurrent(ctx, &launches, &rockets, &launchpads)
	} else {
		err = l.fetchSequential(ctx, &launches, &rockets, &launchpads)
	}
	if err != nil {
		return nil, err
	}

	s := store.New(launches, rockets, launchpads)
	c := s.Counts()
	log.Printf("All data fetched: %d launches, %d rockets, %d launchpads", c.Launches, c.Rockets, c.Launchpads)
	return s, nil
}

func (l *Loader) fetchSequential(ctx context.Context, launches *[]model.Launch, rockets *[]model.Rocket, launchpads *[]model.Launchpad) error {
	steps := []struct {
		endpoint string
		dest     any
	}{
		{EndpointLaunches, launches},
		{EndpointRockets, rockets},
		{EndpointLaunchpads, launchpads},
	}

	for _, step := range steps {
		if err := l.fetch(ctx, step.endpoint, step.dest); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) fetchConcurrent(ctx context.Context, launches *[]model.Launch, rockets *[]model.Rocket, launchpads *[]model.Launchpad) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { return l.fetch(gctx, EndpointLaunches, launches) })
	g.Go(func() error { return l.fetch(gctx, EndpointRockets, rockets) })
	g.Go(func() error { return l.fetch(gctx, EndpointLaunchpads, launchpads) })

	return g.Wait()
}

func (l *Loader) fetch(ctx context.Context, endpoint string, dest any) error {
	log.Printf("Fetching %s...", endpoint)
	if err := l.source.FetchJSON(ctx, endpoint, dest); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUnavailable, endpoint, err)
	}
	return nil
}
