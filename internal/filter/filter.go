// Package filter implements the launch predicates (location, outcome,
// keyword) and the combinator that applies them in a fixed order.
//
// Every predicate is pure: it reads launches and the lookup indexes and
// never modifies either. Apply returns a new slice in input order.
package filter

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/deidaraiorek/launchboard/internal/model"
)

// All disables the location and outcome predicates.
const All = "all"

type Outcome string

const (
	OutcomeAll      Outcome = "all"
	OutcomeSuccess  Outcome = "success"
	OutcomeFailed   Outcome = "failed"
	OutcomeUpcoming Outcome = "upcoming"
)

// Outcomes lists the modes in selector order.
var Outcomes = []Outcome{OutcomeAll, OutcomeSuccess, OutcomeFailed, OutcomeUpcoming}

var ErrUnknownOutcome = errors.New("unknown outcome")

// Valid reports whether o is one of Outcomes.
func (o Outcome) Valid() bool {
	return slices.Contains(Outcomes, o)
}

// ParseOutcome accepts any casing and surrounding whitespace. Empty input
// means OutcomeAll.
func ParseOutcome(s string) (Outcome, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return OutcomeAll, nil
	}
	if o := Outcome(v); o.Valid() {
		return o, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOutcome, s)
}

// Lookup resolves a launch's foreign keys.
type Lookup interface {
	Rocket(id string) (model.Rocket, bool)
	Launchpad(id string) (model.Launchpad, bool)
}

type State struct {
	Location string
	Outcome  Outcome
	Keyword  string
}

func DefaultState() State {
	return State{Location: All, Outcome: OutcomeAll}
}

// Apply runs location, then outcome, then keyword over launches.
func Apply(launches []model.Launch, lookup Lookup, state State) []model.Launch {
	filtered := launches
	filtered = ByLocation(filtered, lookup, state.Location)
	filtered = ByOutcome(filtered, state.Outcome)
	filtered = ByKeyword(filtered, lookup, state.Keyword)

	// A no-op stage hands back its input; copy so callers never alias the
	// store's collection.
	if len(filtered) > 0 && &filtered[0] == &launches[0] {
		return slices.Clone(filtered)
	}
	if filtered == nil {
		return []model.Launch{}
	}
	return filtered
}

// ByLocation keeps launches whose launchpad region equals region. Launches
// with an unresolvable launchpad never match a concrete region.
func ByLocation(launches []model.Launch, lookup Lookup, region string) []model.Launch {
	if region == "" || region == All {
		return launches
	}
	return keep(launches, func(l model.Launch) bool {
		lp, ok := lookup.Launchpad(l.Launchpad)
		return ok && lp.Region == region
	})
}

// ByOutcome treats a null success as neither success nor failure. The
// outcome must already be valid (see ParseOutcome); any other value keeps
// every launch, the same as OutcomeAll.
func ByOutcome(launches []model.Launch, outcome Outcome) []model.Launch {
	switch outcome {
	case OutcomeSuccess:
		return keep(launches, model.Launch.Succeeded)
	case OutcomeFailed:
		return keep(launches, model.Launch.Failed)
	case OutcomeUpcoming:
		return keep(launches, func(l model.Launch) bool { return l.Upcoming })
	default:
		return launches
	}
}

// ByKeyword does a case-insensitive substring match against the mission
// name or the linked rocket's name. A blank keyword keeps everything.
func ByKeyword(launches []model.Launch, lookup Lookup, keyword string) []model.Launch {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return launches
	}
	return keep(launches, func(l model.Launch) bool {
		if strings.Contains(strings.ToLower(l.Name), kw) {
			return true
		}
		r, ok := lookup.Rocket(l.Rocket)
		if !ok {
			return false
		}
		return strings.Contains(strings.ToLower(r.Name), kw)
	})
}

func keep(launches []model.Launch, pred func(model.Launch) bool) []model.Launch {
	out := make([]model.Launch, 0, len(launches))
	for _, l := range launches {
		if pred(l) {
			out = append(out, l)
		}
	}
	return out
}
