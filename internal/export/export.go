// Package export writes a result set of launches into a standalone SQLite
// file: one flattened row per launch plus a tf-idf term index over mission,
// rocket and details text. The file is a report; launchboard never reads it
// back.
package export

import (
	"fmt"
	"log"
	"time"

	"github.com/deidaraiorek/launchboard/internal/filter"
	"github.com/deidaraiorek/launchboard/internal/model"
	"github.com/deidaraiorek/launchboard/internal/storage"
	"github.com/deidaraiorek/launchboard/internal/textprocessor"
	"github.com/deidaraiorek/launchboard/internal/view"
)

type Exporter struct {
	db        *storage.ExportDB
	processor *textprocessor.TextProcessor
	weights   textprocessor.Weights
}

func New(db *storage.ExportDB) *Exporter {
	return &Exporter{
		db:        db,
		processor: textprocessor.NewTextProcessor(),
		weights:   textprocessor.DefaultWeights(),
	}
}

// Export replaces the file's contents with launches and records the filter
// state that produced them in export_metadata.
func (e *Exporter) Export(launches []model.Launch, lookup filter.Lookup, state filter.State) (storage.Counts, error) {
	if err := e.db.Reset(); err != nil {
		return storage.Counts{}, fmt.Errorf("failed to reset export: %w", err)
	}

	tx, err := e.db.BeginTransaction()
	if err != nil {
		return storage.Counts{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, l := range launches {
		row, fields := e.flatten(l, lookup)
		doc := e.processor.ProcessLaunch(fields, e.weights)

		if err := e.db.SaveLaunchInTransaction(tx, row, doc.TermFrequencies, doc.TotalTerms); err != nil {
			return storage.Counts{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return storage.Counts{}, fmt.Errorf("failed to commit export: %w", err)
	}

	if err := e.db.RecalculateTFIDF(); err != nil {
		return storage.Counts{}, err
	}

	if err := e.saveMetadata(state); err != nil {
		return storage.Counts{}, err
	}

	counts, err := e.db.Counts()
	if err != nil {
		return storage.Counts{}, err
	}
	log.Printf("Exported %d launches (%d terms, %d postings)", counts.Launches, counts.Terms, counts.Postings)
	return counts, nil
}

func (e *Exporter) flatten(l model.Launch, lookup filter.Lookup) (storage.LaunchRow, textprocessor.LaunchFields) {
	card := view.NewCard(l, lookup)

	row := storage.LaunchRow{
		LaunchID:      l.ID,
		MissionName:   card.MissionName,
		DateUTC:       l.DateUTC,
		Outcome:       card.Outcome,
		Upcoming:      l.Upcoming,
		FlightNumber:  l.FlightNumber,
		Details:       l.Details,
		RocketID:      l.Rocket,
		RocketName:    card.Rocket.Name,
		LaunchpadID:   l.Launchpad,
		LaunchpadName: card.Launchpad.FullName,
		Region:        card.Launchpad.Region,
		Locality:      card.Launchpad.Locality,
	}

	fields := textprocessor.LaunchFields{
		Mission: l.Name,
		Details: l.Details,
	}
	if card.Rocket.Found {
		fields.Rocket = card.Rocket.Name
	}

	return row, fields
}

func (e *Exporter) saveMetadata(state filter.State) error {
	location := state.Location
	if location == "" {
		location = filter.All
	}
	outcome := string(state.Outcome)
	if outcome == "" {
		outcome = string(filter.OutcomeAll)
	}

	metadata := []struct{ key, value string }{
		{"filter_location", location},
		{"filter_outcome", outcome},
		{"filter_keyword", state.Keyword},
		{"exported_at", time.Now().UTC().Format(time.RFC3339)},
	}
	for _, m := range metadata {
		if err := e.db.SetMetadata(m.key, m.value); err != nil {
			return fmt.Errorf("failed to save %s: %w", m.key, err)
		}
	}
	return nil
}
