// Package view projects a launch and its linked rocket and launchpad into
// the flat, display-ready Card consumed by the terminal UI, the list
// command and the HTTP API.
//
// Building a card never fails. Missing optional fields and unresolvable
// foreign keys are replaced with placeholder text so one bad record cannot
// stop the rest of a listing from rendering.
package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/deidaraiorek/launchboard/internal/filter"
	"github.com/deidaraiorek/launchboard/internal/model"
)

const (
	UnnamedMission   = "Unnamed mission"
	NoDetails        = "No extra details available for this mission."
	Unknown          = "Unknown"
	UnknownRocket    = "Unknown rocket"
	UnknownLaunchpad = "Unknown launchpad"
	PlaceholderImage = "https://placehold.co/350x150/2F3E4D/CFE8FF?text=NO+IMAGE"

	DateLayout     = "Jan 2, 2006"
	DetailsExcerpt = 150
)

// Tone drives colouring of the outcome pill and the details block.
type Tone string

const (
	ToneNeutral  Tone = "neutral"
	ToneSuccess  Tone = "success"
	ToneFailed   Tone = "failed"
	ToneUpcoming Tone = "upcoming"
)

type Card struct {
	ID           string `json:"id"`
	MissionName  string `json:"mission_name"`
	Date         string `json:"date"`
	Outcome      string `json:"outcome"`
	OutcomeTone  Tone   `json:"outcome_tone"`
	FlightNumber string `json:"flight_number"`
	Details      string `json:"details"`
	DetailsTone  Tone   `json:"details_tone"`

	Rocket    RocketSection    `json:"rocket"`
	Launchpad LaunchpadSection `json:"launchpad"`
}

type RocketSection struct {
	Found         bool   `json:"found"`
	Name          string `json:"name"`
	Mass          string `json:"mass"`
	Height        string `json:"height"`
	CostPerLaunch string `json:"cost_per_launch"`
	Company       string `json:"company"`
	Description   string `json:"description"`
	Image         string `json:"image"`
	ImageAlt      string `json:"image_alt"`
}

type LaunchpadSection struct {
	Found    bool   `json:"found"`
	FullName string `json:"full_name"`
	Region   string `json:"region"`
	Locality string `json:"locality"`
	Details  string `json:"details"`
}

func NewCard(l model.Launch, lookup filter.Lookup) Card {
	outcome, outcomeTone := Outcome(l)

	card := Card{
		ID:           l.ID,
		MissionName:  MissionName(l),
		Date:         Date(l),
		Outcome:      outcome,
		OutcomeTone:  outcomeTone,
		FlightNumber: "Flight No: #" + strconv.Itoa(l.FlightNumber),
		Details:      DetailsExcerptText(l),
		DetailsTone:  DetailsTone(l),
	}

	if r, ok := lookup.Rocket(l.Rocket); ok {
		card.Rocket = rocketSection(r)
	} else {
		card.Rocket = RocketSection{
			Name:          UnknownRocket,
			Mass:          Unknown,
			Height:        Unknown,
			CostPerLaunch: Unknown,
			Company:       Unknown,
			Image:         PlaceholderImage,
			ImageAlt:      UnknownRocket + " image",
		}
	}

	if lp, ok := lookup.Launchpad(l.Launchpad); ok {
		card.Launchpad = LaunchpadSection{
			Found:    true,
			FullName: lp.FullName,
			Region:   lp.Region,
			Locality: lp.Locality,
			Details:  lp.Details,
		}
	} else {
		card.Launchpad = LaunchpadSection{
			FullName: UnknownLaunchpad,
			Region:   Unknown,
			Locality: Unknown,
		}
	}

	return card
}

func NewCards(launches []model.Launch, lookup filter.Lookup) []Card {
	cards := make([]Card, 0, len(launches))
	for _, l := range launches {
		cards = append(cards, NewCard(l, lookup))
	}
	return cards
}

func MissionName(l model.Launch) string {
	if strings.TrimSpace(l.Name) == "" {
		return UnnamedMission
	}
	return l.Name
}

func Date(l model.Launch) string {
	t, ok := l.Date()
	if !ok {
		return Unknown
	}
	return t.Format(DateLayout)
}

// Outcome labels a launch. Upcoming takes precedence over a recorded result.
func Outcome(l model.Launch) (string, Tone) {
	switch {
	case l.Upcoming:
		return "Upcoming", ToneUpcoming
	case l.Succeeded():
		return "Success", ToneSuccess
	case l.Failed():
		return "Failed", ToneFailed
	default:
		return Unknown, ToneNeutral
	}
}

func DetailsExcerptText(l model.Launch) string {
	text := NoDetails
	if l.HasDetails() {
		text = l.Details
	}
	runes := []rune(text)
	if len(runes) > DetailsExcerpt {
		runes = runes[:DetailsExcerpt]
	}
	return string(runes) + "..."
}

// DetailsTone marks failures always, and successes only when there is
// something written about them.
func DetailsTone(l model.Launch) Tone {
	switch {
	case l.Failed():
		return ToneFailed
	case l.Succeeded() && l.HasDetails():
		return ToneSuccess
	default:
		return ToneNeutral
	}
}

func rocketSection(r model.Rocket) RocketSection {
	image := PlaceholderImage
	if len(r.FlickrImages) > 0 && r.FlickrImages[0] != "" {
		image = r.FlickrImages[0]
	}

	return RocketSection{
		Found:         true,
		Name:          r.Name,
		Mass:          humanize.Comma(int64(r.Mass.Kg)) + " kg",
		Height:        strconv.FormatFloat(r.Height.Meters, 'f', -1, 64) + " m",
		CostPerLaunch: "$" + humanize.Comma(r.CostPerLaunch),
		Company:       r.Company,
		Description:   r.Description,
		Image:         image,
		ImageAlt:      fmt.Sprintf("%s Rocket image", r.Name),
	}
}
