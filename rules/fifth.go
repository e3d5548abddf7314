package rules

import (
	"fmt"

	"github.com/rpalermodrums/counterpoint/music"
)

// halfBeat is the note spacing that triggers a suspension check in the
// florid species.
var halfBeat = music.MustRational(1, 2)

// CheckFifthSpecies validates a florid counterpoint line.
//
// The note count is free; instead the total duration must equal that of
// the cantus firmus. Each counterpoint note is matched to its governing
// cantus-firmus measure by position (a monotone two-pointer scan). Beat
// strength is derived from the note's own position: strong (whole-beat)
// onsets require consonance; weak onsets tolerate dissonance only as a
// passing tone between the melodic neighbors. Note pairs spaced exactly
// half a beat apart are additionally checked against the suspension
// discipline: a valid suspension interval resolving downward to a valid
// resolution interval silences the dissonance check.
//
// Complexity: O(n + m) for n counterpoint and m cantus-firmus notes.
func CheckFifthSpecies(counterpoint, cantusFirmus music.Voice) (bool, []string) {
	var violations []string

	if len(counterpoint) == 0 || len(cantusFirmus) == 0 {
		violations = append(violations, "Total duration of counterpoint should match the cantus firmus")
		return verdict(violations)
	}

	if !counterpoint.TotalDuration().Equal(cantusFirmus.TotalDuration()) {
		violations = append(violations, "Total duration of counterpoint should match the cantus firmus")
	}

	var (
		measure int // index one past the governing cantus-firmus note
		i       int
	)
	for i = 0; i < len(counterpoint); i++ {
		cpNote := counterpoint[i]

		// Advance to the measure whose onset is the latest not after the
		// counterpoint note.
		for measure < len(cantusFirmus) && cantusFirmus[measure].Position.Cmp(cpNote.Position) <= 0 {
			measure++
		}
		cfIdx := measure - 1
		if cfIdx < 0 {
			cfIdx = 0
		}
		cfNote := cantusFirmus[cfIdx]

		interval := music.Interval(cpNote.Pitch, cfNote.Pitch)

		if music.IsStrongBeat(cpNote.Position) {
			if !music.IsConsonant(interval) {
				violations = append(violations, fmt.Sprintf("Dissonant interval on strong beat at position %s", cpNote.Position))
			}
		} else if !music.IsConsonant(interval) {
			// Weak-beat dissonance is tolerated only as a passing or
			// neighbor tone; edge notes have no full neighbor context.
			if i > 0 && i < len(counterpoint)-1 {
				if !music.IsPassingTone(counterpoint[i-1].Pitch, cpNote.Pitch, counterpoint[i+1].Pitch) {
					violations = append(violations, fmt.Sprintf("Invalid dissonance on weak beat at position %s", cpNote.Position))
				}
			}
		}

		// Half-beat-spaced pairs are checked as suspensions.
		if i > 0 && cpNote.Position.Sub(counterpoint[i-1].Position).Equal(halfBeat) {
			prevInterval := music.Interval(counterpoint[i-1].Pitch, cfNote.Pitch)
			resolved := music.IsValidSuspension(prevInterval) &&
				music.IsValidSuspensionResolution(interval) &&
				music.IsDownwardResolution(counterpoint[i-1].Pitch, cpNote.Pitch)
			if !resolved && !music.IsConsonant(interval) {
				violations = append(violations, fmt.Sprintf("Invalid suspension or dissonance treatment at position %s", cpNote.Position))
			}
		}
	}

	violations = appendEndpointChecks(violations, counterpoint, cantusFirmus)

	return verdict(violations)
}
