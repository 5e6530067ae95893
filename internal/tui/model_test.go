package tui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deidaraiorek/launchboard/internal/filter"
	"github.com/deidaraiorek/launchboard/internal/model"
	"github.com/deidaraiorek/launchboard/internal/query"
	"github.com/deidaraiorek/launchboard/internal/store"
	"github.com/deidaraiorek/launchboard/internal/tui"
)

func boolPtr(b bool) *bool { return &b }

func newModel() tui.Model {
	s := store.New(
		[]model.Launch{
			{ID: "l1", Name: "Alpha", Success: boolPtr(true), Launchpad: "P1", Rocket: "R1"},
			{ID: "l2", Name: "Beta", Success: boolPtr(false), Launchpad: "P2", Rocket: "R1"},
			{ID: "l3", Name: "Starlink-15", Upcoming: true, Launchpad: "P1", Rocket: "R1"},
		},
		[]model.Rocket{{ID: "R1", Name: "Falcon 9"}},
		[]model.Launchpad{{ID: "P1", Region: "Florida"}, {ID: "P2", Region: "California"}},
	)
	return tui.New(query.NewFacade(s))
}

func send(t *testing.T, m tui.Model, msgs ...tea.Msg) tui.Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(tui.Model)
		require.True(t, ok)
	}
	return m
}

func cardIDs(m tui.Model) []string {
	ids := make([]string, 0)
	for _, c := range m.Cards() {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestInitialResult(t *testing.T) {
	m := newModel()

	assert.Equal(t, "Showing 3 launches", m.Status())
	assert.Equal(t, []string{"l1", "l2", "l3"}, cardIDs(m))
	assert.Equal(t, "Loading...\n", m.View())
}

func TestOutcomeCycle(t *testing.T) {
	m := newModel()

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, filter.OutcomeSuccess, m.State().Outcome)
	assert.Equal(t, []string{"l1"}, cardIDs(m))

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	assert.Equal(t, filter.OutcomeFailed, m.State().Outcome)
	assert.Equal(t, []string{"l2"}, cardIDs(m))

	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, filter.OutcomeSuccess, m.State().Outcome)
}

func TestLocationCycle(t *testing.T) {
	m := newModel()

	// Regions are sorted: all, California, Florida.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Equal(t, "California", m.State().Location)
	assert.Equal(t, []string{"l2"}, cardIDs(m))

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Equal(t, "Florida", m.State().Location)
	assert.Equal(t, []string{"l1", "l3"}, cardIDs(m))

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Equal(t, filter.All, m.State().Location)
	assert.Len(t, m.Cards(), 3)
}

func TestTypingSearches(t *testing.T) {
	m := newModel()

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("LINK")})
	assert.Equal(t, "LINK", m.State().Keyword)
	assert.Equal(t, []string{"l3"}, cardIDs(m))

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("zzz")})
	assert.Empty(t, m.Cards())
	assert.Equal(t, "Showing 0 launches, adjust filters", m.Status())
}

func TestViewAfterResize(t *testing.T) {
	m := send(t, newModel(), tea.WindowSizeMsg{Width: 100, Height: 40})

	out := m.View()
	assert.Contains(t, out, "Showing 3 launches")
	assert.Contains(t, out, "Alpha")
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		_, cmd := newModel().Update(tea.KeyMsg{Type: key})
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}
