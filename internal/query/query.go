// Package query holds the current filter state for a browsing session and
// computes the visible launches from it.
//
// A Facade is meant to be driven from a single event loop: each input event
// sets one filter value and the caller then asks for Result or Status. It
// carries no locks.
package query

import (
	"fmt"

	"github.com/deidaraiorek/launchboard/internal/filter"
	"github.com/deidaraiorek/launchboard/internal/model"
	"github.com/deidaraiorek/launchboard/internal/store"
)

// FailureStatus is the only message shown when startup ingestion fails.
const FailureStatus = "Unable to fetch data at this time."

type Facade struct {
	store *store.Store
	state filter.State
}

func NewFacade(s *store.Store) *Facade {
	return &Facade{
		store: s,
		state: filter.DefaultState(),
	}
}

func (f *Facade) Store() *store.Store {
	return f.store
}

func (f *Facade) State() filter.State {
	return f.state
}

// SetOutcome rejects values outside filter.Outcomes and leaves the current
// outcome unchanged.
func (f *Facade) SetOutcome(o filter.Outcome) error {
	if !o.Valid() {
		return fmt.Errorf("%w: %q", filter.ErrUnknownOutcome, o)
	}
	f.state.Outcome = o
	return nil
}

func (f *Facade) SetLocation(region string) {
	if region == "" {
		region = filter.All
	}
	f.state.Location = region
}

func (f *Facade) SetSearch(text string) {
	f.state.Keyword = text
}

func (f *Facade) Result() []model.Launch {
	return Compute(f.store, f.state)
}

func (f *Facade) Status() string {
	return Summary(len(f.Result()))
}

// Compute is the stateless form of Facade.Result.
func Compute(s *store.Store, state filter.State) []model.Launch {
	return filter.Apply(s.Launches(), s, state)
}

func Summary(count int) string {
	msg := fmt.Sprintf("Showing %d launches", count)
	if count == 0 {
		msg += ", adjust filters"
	}
	return msg
}
