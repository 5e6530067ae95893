package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/deidaraiorek/launchboard/internal/filter"
	"github.com/deidaraiorek/launchboard/internal/view"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#CFE8FF"))

	filterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CFE8FF")).
			Italic(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#2F3E4D")).
			Padding(0, 1).
			MarginBottom(1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	pillStyle = lipgloss.NewStyle().Padding(0, 1)

	toneColors = map[view.Tone]lipgloss.Color{
		view.ToneSuccess:  lipgloss.Color("#2E7D32"),
		view.ToneFailed:   lipgloss.Color("#C62828"),
		view.ToneUpcoming: lipgloss.Color("#1565C0"),
		view.ToneNeutral:  lipgloss.Color("#546E7A"),
	}
)

func toned(tone view.Tone, s string) string {
	return pillStyle.Background(toneColors[tone]).Render(s)
}

func (m Model) renderHeader() string {
	state := m.facade.State()
	location := state.Location
	if location == "" {
		location = filter.All
	}

	filters := fmt.Sprintf("Outcome: %s  |  Location: %s  |  tab: outcome  ctrl+l: location  esc: quit",
		state.Outcome, location)

	return strings.Join([]string{
		titleStyle.Render("SpaceX Launches"),
		filterStyle.Render(filters),
		m.search.View(),
	}, "\n")
}

func (m Model) renderFooter() string {
	return statusStyle.Render(m.status)
}

func (m Model) renderCards() string {
	width := m.width - 2
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	for _, c := range m.cards {
		b.WriteString(cardStyle.Width(width).Render(renderCard(c)))
		b.WriteString("\n")
	}
	return b.String()
}

func renderCard(c view.Card) string {
	lines := []string{
		titleStyle.Render(c.MissionName) + "  " + c.Date + "  " + toned(c.OutcomeTone, c.Outcome),
		"",
		sectionStyle.Render("Launch Info"),
		c.FlightNumber,
		lipgloss.NewStyle().Foreground(toneColors[c.DetailsTone]).Render(c.Details),
		"",
		sectionStyle.Render("Rocket Info"),
		"Rocket Name: " + c.Rocket.Name,
		"Mass: " + c.Rocket.Mass,
		"Height: " + c.Rocket.Height,
		"Cost per launch: " + c.Rocket.CostPerLaunch,
		"Company: " + c.Rocket.Company,
	}
	if c.Rocket.Description != "" {
		lines = append(lines, c.Rocket.Description)
	}
	lines = append(lines,
		"Image: "+c.Rocket.Image,
		"",
		sectionStyle.Render("Launchpad Info"),
		"Full Name: "+c.Launchpad.FullName,
		"Region: "+c.Launchpad.Region,
		"Locality: "+c.Launchpad.Locality,
	)
	if c.Launchpad.Details != "" {
		lines = append(lines, c.Launchpad.Details)
	}
	return strings.Join(lines, "\n")
}
