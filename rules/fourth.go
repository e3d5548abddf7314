package rules

import (
	"fmt"

	"github.com/rpalermodrums/counterpoint/music"
)

// CheckFourthSpecies validates a syncopated 2:1 counterpoint line built
// from suspension chains.
//
// At every measure boundary after the first, three intervals are checked:
// the preparation (the previous weak note against its own measure's
// cantus-firmus note), the suspension itself (the strong note against the
// new measure), and the resolution (the following weak note against the
// same measure). The resolution must additionally descend in pitch.
// A unison resolution interval is tolerated.
//
// Complexity: O(n).
func CheckFourthSpecies(counterpoint, cantusFirmus music.Voice) (bool, []string) {
	var violations []string

	if len(counterpoint) != 2*len(cantusFirmus) {
		violations = append(violations, "Counterpoint should have twice as many notes as the cantus firmus")
	}
	if len(counterpoint) == 0 || len(cantusFirmus) == 0 {
		return verdict(violations)
	}

	var i int
	for i = 2; i < len(counterpoint); i += 2 {
		if i/2 >= len(cantusFirmus) {
			break
		}
		cfNote := cantusFirmus[i/2]
		prevCP := counterpoint[i-1]
		currCP := counterpoint[i]

		preparation := music.Interval(prevCP.Pitch, cantusFirmus[(i-1)/2].Pitch)
		suspension := music.Interval(currCP.Pitch, cfNote.Pitch)

		if !music.IsValidSuspensionPreparation(preparation) {
			violations = append(violations, fmt.Sprintf("Invalid preparation interval at position %d", i-1))
		}
		if !music.IsValidSuspension(suspension) {
			violations = append(violations, fmt.Sprintf("Invalid suspension interval at position %d", i))
		}

		if i+1 < len(counterpoint) {
			nextCP := counterpoint[i+1]
			resolution := music.Interval(nextCP.Pitch, cfNote.Pitch)
			// A unison resolution is tolerated.
			if resolution != music.Unison && !music.IsValidSuspensionResolution(resolution) {
				violations = append(violations, fmt.Sprintf("Invalid resolution interval at position %d", i+1))
			}
			if !music.IsDownwardResolution(currCP.Pitch, nextCP.Pitch) {
				violations = append(violations, fmt.Sprintf("Suspension not resolved downward at position %d", i+1))
			}
		}
	}

	violations = appendEndpointChecks(violations, counterpoint, cantusFirmus)

	return verdict(violations)
}
