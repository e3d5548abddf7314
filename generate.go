// Package counterpoint - the public generation entry point.
//
// This file wires the pipeline: input-contract validation → candidate
// lattice construction → genetic search → DP refinement.
package counterpoint

import (
	"errors"

	"github.com/rpalermodrums/counterpoint/genetic"
	"github.com/rpalermodrums/counterpoint/lattice"
	"github.com/rpalermodrums/counterpoint/music"
	"github.com/rpalermodrums/counterpoint/refine"
)

// Sentinel errors for Generate's input contract. Rule violations inside
// the search are never errors — they surface as fitness, not failures.
var (
	// ErrEmptyCantusFirmus indicates an empty cantus firmus.
	ErrEmptyCantusFirmus = errors.New("counterpoint: cantus firmus is empty")

	// ErrPositionsNotIncreasing indicates cantus-firmus note positions
	// that are not strictly increasing.
	ErrPositionsNotIncreasing = errors.New("counterpoint: cantus firmus positions must be strictly increasing")

	// ErrNonPositiveDuration indicates a cantus-firmus note with a zero
	// or negative duration.
	ErrNonPositiveDuration = errors.New("counterpoint: cantus firmus durations must be positive")
)

// Generate produces a counterpoint line against cantusFirmus under the
// given species and mode.
//
// Preconditions (fail fast with a sentinel; never silently coerced):
//   - cantusFirmus is non-empty;
//   - note positions are strictly increasing;
//   - note durations are positive.
//
// Postcondition: for the ratio species the returned line has
// ratio × len(cantusFirmus) notes when the search converged; a run that
// exhausts Options.MaxGenerations without converging still returns its
// best (possibly shorter or rule-violating) candidate rather than
// failing — there is no retry notion.
//
// The candidate lattice lives only for population seeding and is
// discarded before the search loop runs.
//
// Complexity: dominated by the search loop; see genetic.Evolve.
func Generate(cantusFirmus []music.Note, species music.Species, mode music.Mode, opts genetic.Options) ([]music.Note, error) {
	cf := music.Voice(cantusFirmus)

	// Stage 1 - input contract.
	if err := validateCantusFirmus(cf); err != nil {
		return nil, err
	}

	// Stage 2 - candidate lattice.
	lat, err := lattice.Build(cf, species, mode)
	if err != nil {
		return nil, err
	}

	// Stage 3 - genetic search (the lattice is consumed by seeding).
	res, err := genetic.Evolve(lat, cf, species, mode, opts)
	if err != nil {
		return nil, err
	}

	// Stage 4 - per-note DP refinement of the winner. An empty winner
	// cannot occur (every lattice layer holds at least the tonic
	// candidate); if it ever did, Refine fails with its own sentinel
	// rather than this call succeeding with no line.
	refined, err := refine.Refine(res.Line, cf, species, mode, opts)
	if err != nil {
		return nil, err
	}

	return refined, nil
}

// validateCantusFirmus enforces Generate's input contract.
func validateCantusFirmus(cf music.Voice) error {
	if len(cf) == 0 {
		return ErrEmptyCantusFirmus
	}
	for i, note := range cf {
		if !note.Duration.Positive() {
			return ErrNonPositiveDuration
		}
		if i > 0 && cf[i-1].Position.Cmp(note.Position) >= 0 {
			return ErrPositionsNotIncreasing
		}
	}
	return nil
}
