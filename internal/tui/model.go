// Package tui provides the interactive launch browser.
//
// # Description
//
// The browser shows one card per visible launch under a search box and a
// status line. Each key press updates exactly one filter value on the
// query facade and recomputes the list.
//
// # Thread Safety
//
// The model is driven by the single bubbletea event loop and holds the
// facade without locks. Do not share a Model's facade across goroutines.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/deidaraiorek/launchboard/internal/filter"
	"github.com/deidaraiorek/launchboard/internal/query"
	"github.com/deidaraiorek/launchboard/internal/view"
)

const (
	headerHeight = 4
	footerHeight = 2
)

// Model is the bubbletea model for the launch browser.
type Model struct {
	facade *query.Facade

	// Selector options; index 0 of locations is filter.All.
	locations   []string
	locationIdx int
	outcomeIdx  int

	search   textinput.Model
	viewport viewport.Model

	width  int
	height int
	ready  bool

	cards  []view.Card
	status string
}

// New creates a browser over f with all filters at their defaults.
func New(f *query.Facade) Model {
	ti := textinput.New()
	ti.Prompt = "Search: "
	ti.Placeholder = "mission or rocket name"
	ti.Focus()

	m := Model{
		facade:    f,
		locations: append([]string{filter.All}, f.Store().Regions()...),
		search:    ti,
	}
	m.refresh()
	return m
}

// Run starts the browser in the alternate screen and blocks until quit.
func Run(f *query.Facade) error {
	_, err := tea.NewProgram(New(f), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Status() string {
	return m.status
}

func (m Model) Cards() []view.Card {
	return m.cards
}

func (m Model) State() filter.State {
	return m.facade.State()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := max(m.height-headerHeight-footerHeight, 1)

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}
		m.viewport.SetContent(m.renderCards())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "ctrl+o":
			m.cycleOutcome(1)
			return m, nil

		case "shift+tab":
			m.cycleOutcome(-1)
			return m, nil

		case "ctrl+l":
			m.locationIdx = (m.locationIdx + 1) % len(m.locations)
			m.facade.SetLocation(m.locations[m.locationIdx])
			m.refresh()
			return m, nil

		case "up":
			m.viewport.LineUp(1)
			return m, nil
		case "down":
			m.viewport.LineDown(1)
			return m, nil
		case "pgup":
			m.viewport.HalfViewUp()
			return m, nil
		case "pgdown":
			m.viewport.HalfViewDown()
			return m, nil
		}
	}

	// Everything else goes to the search box.
	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.facade.SetSearch(m.search.Value())
		m.refresh()
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading...\n"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m *Model) cycleOutcome(step int) {
	n := len(filter.Outcomes)
	m.outcomeIdx = (m.outcomeIdx + step + n) % n
	if err := m.facade.SetOutcome(filter.Outcomes[m.outcomeIdx]); err != nil {
		return
	}
	m.refresh()
}

func (m *Model) refresh() {
	launches := m.facade.Result()
	m.cards = view.NewCards(launches, m.facade.Store())
	m.status = query.Summary(len(launches))

	if m.ready {
		m.viewport.SetContent(m.renderCards())
		m.viewport.GotoTop()
	}
}
