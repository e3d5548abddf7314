package rules

import (
	"fmt"

	"github.com/rpalermodrums/counterpoint/music"
)

// CheckFirstSpecies validates a 1:1 counterpoint line.
//
// Checks, in scan order:
//  1. note count equals the cantus firmus note count;
//  2. per-note duration match;
//  3. every vertical interval consonant;
//  4. no parallel perfect motion between consecutive verticals;
//  5. opening and closing verticals perfect consonances;
//  6. penultimate vertical a major sixth or minor third (the cadential
//     approach).
//
// Complexity: O(n).
func CheckFirstSpecies(counterpoint, cantusFirmus music.Voice) (bool, []string) {
	var violations []string

	if len(counterpoint) != len(cantusFirmus) {
		violations = append(violations, "Counterpoint should have the same number of notes as the cantus firmus")
	}
	if len(counterpoint) == 0 || len(cantusFirmus) == 0 {
		return verdict(violations)
	}

	// Pairwise scan over the aligned prefix.
	n := len(counterpoint)
	if len(cantusFirmus) < n {
		n = len(cantusFirmus)
	}
	var i int
	for i = 0; i < n; i++ {
		cpNote, cfNote := counterpoint[i], cantusFirmus[i]

		if !cpNote.Duration.Equal(cfNote.Duration) {
			violations = append(violations, fmt.Sprintf("Note duration mismatch at position %d", i))
		}

		interval := music.Interval(cpNote.Pitch, cfNote.Pitch)
		if !music.IsConsonant(interval) {
			violations = append(violations, fmt.Sprintf("Dissonant interval (%d) at position %d", interval, i))
		}

		if i > 0 && music.ParallelMotion(
			counterpoint[i-1].Pitch, cpNote.Pitch,
			cantusFirmus[i-1].Pitch, cfNote.Pitch,
		) {
			violations = append(violations, fmt.Sprintf("Parallel perfect consonance at position %d", i))
		}
	}

	violations = appendEndpointChecks(violations, counterpoint, cantusFirmus)

	// Cadential approach: the penultimate vertical must be a major sixth
	// or minor third.
	if len(counterpoint) > 1 && len(cantusFirmus) > 1 {
		penultimate := music.Interval(
			counterpoint[len(counterpoint)-2].Pitch,
			cantusFirmus[len(cantusFirmus)-2].Pitch,
		)
		if penultimate != music.MinorSixth && penultimate != music.MajorSixth {
			violations = append(violations, "Penultimate measure should be a major sixth or minor third")
		}
	}

	return verdict(violations)
}
