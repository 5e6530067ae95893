package store

import (
	"sort"

	"github.com/deidaraiorek/launchboard/internal/model"
)

// Store owns the fetched collections and the id-keyed indexes built from
// them. It is never mutated after New returns.
type Store struct {
	launches   []model.Launch
	rockets    []model.Rocket
	launchpads []model.Launchpad

	rocketsByID    map[string]model.Rocket
	launchpadsByID map[string]model.Launchpad
}

type Counts struct {
	Launches   int
	Rockets    int
	Launchpads int
}

func New(launches []model.Launch, rockets []model.Rocket, launchpads []model.Launchpad) *Store {
	s := &Store{
		launches:       launches,
		rockets:        rockets,
		launchpads:     launchpads,
		rocketsByID:    make(map[string]model.Rocket, len(rockets)),
		launchpadsByID: make(map[string]model.Launchpad, len(launchpads)),
	}

	// Records without an id are kept in the collections but never indexed.
	for _, r := range rockets {
		if r.ID == "" {
			continue
		}
		s.rocketsByID[r.ID] = r
	}
	for _, lp := range launchpads {
		if lp.ID == "" {
			continue
		}
		s.launchpadsByID[lp.ID] = lp
	}

	return s
}

func (s *Store) Launches() []model.Launch {
	return s.launches
}

func (s *Store) Rocket(id string) (model.Rocket, bool) {
	r, ok := s.rocketsByID[id]
	return r, ok
}

func (s *Store) Launchpad(id string) (model.Launchpad, bool) {
	lp, ok := s.launchpadsByID[id]
	return lp, ok
}

// Regions returns the distinct launchpad regions in sorted order.
func (s *Store) Regions() []string {
	seen := make(map[string]bool)
	regions := make([]string, 0)
	for _, lp := range s.launchpadsByID {
		if lp.Region == "" || seen[lp.Region] {
			continue
		}
		seen[lp.Region] = true
		regions = append(regions, lp.Region)
	}
	sort.Strings(regions)
	return regions
}

func (s *Store) Counts() Counts {
	return Counts{
		Launches:   len(s.launches),
		Rockets:    len(s.rockets),
		Launchpads: len(s.launchpads),
	}
}
