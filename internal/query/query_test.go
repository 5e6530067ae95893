package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deidaraiorek/launchboard/internal/filter"
	"github.com/deidaraiorek/launchboard/internal/model"
	"github.com/deidaraiorek/launchboard/internal/query"
	"github.com/deidaraiorek/launchboard/internal/store"
)

func boolPtr(b bool) *bool { return &b }

func newStore() *store.Store {
	return store.New(
		[]model.Launch{
			{ID: "1", Name: "Alpha", Success: boolPtr(true), Launchpad: "P1", Rocket: "R1"},
			{ID: "2", Name: "Beta", Success: boolPtr(false), Launchpad: "P2", Rocket: "R1"},
			{ID: "3", Name: "Gamma", Upcoming: true, Launchpad: "P1", Rocket: "R2"},
		},
		[]model.Rocket{{ID: "R1", Name: "Falcon 9"}, {ID: "R2", Name: "Starship"}},
		[]model.Launchpad{{ID: "P1", Region: "US"}, {ID: "P2", Region: "EU"}},
	)
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "Showing 3 launches", query.Summary(3))
	assert.Equal(t, "Showing 1 launches", query.Summary(1))

	zero := query.Summary(0)
	assert.Contains(t, zero, "0")
	assert.Contains(t, zero, "adjust filters")
	assert.Equal(t, "Showing 0 launches, adjust filters", zero)
}

func TestFacadeDefaults(t *testing.T) {
	f := query.NewFacade(newStore())

	assert.Equal(t, filter.DefaultState(), f.State())
	assert.Len(t, f.Result(), 3)
	assert.Equal(t, "Showing 3 launches", f.Status())
}

func TestFacadeRecomputesAfterEachEvent(t *testing.T) {
	f := query.NewFacade(newStore())

	f.SetLocation("US")
	require.Len(t, f.Result(), 2)

	require.NoError(t, f.SetOutcome(filter.OutcomeSuccess))
	got := f.Result()
	require.Len(t, got, 1)
	assert.Equal(t, "Alpha", got[0].Name)

	require.NoError(t, f.SetOutcome(filter.OutcomeAll))
	f.SetSearch("STAR")
	got = f.Result()
	require.Len(t, got, 1)
	assert.Equal(t, "Gamma", got[0].Name)

	f.SetLocation("")
	assert.Equal(t, filter.All, f.State().Location)
}

func TestFacadeZeroResult(t *testing.T) {
	f := query.NewFacade(newStore())
	f.SetLocation("EU")
	require.NoError(t, f.SetOutcome(filter.OutcomeUpcoming))

	assert.Empty(t, f.Result())
	assert.Equal(t, "Showing 0 launches, adjust filters", f.Status())
}

func TestComputeMatchesFacade(t *testing.T) {
	s := newStore()
	f := query.NewFacade(s)
	f.SetSearch("a")
	require.NoError(t, f.SetOutcome(filter.OutcomeFailed))

	assert.Equal(t, f.Result(), query.Compute(s, f.State()))
}

func TestSetOutcomeRejectsUnknownValue(t *testing.T) {
	f := query.NewFacade(newStore())
	require.NoError(t, f.SetOutcome(filter.OutcomeFailed))

	err := f.SetOutcome(filter.Outcome("partial"))
	assert.ErrorIs(t, err, filter.ErrUnknownOutcome)
	assert.Equal(t, filter.OutcomeFailed, f.State().Outcome)
	assert.Len(t, f.Result(), 1)
}
