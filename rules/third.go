package rules

import (
	"fmt"

	"github.com/rpalermodrums/counterpoint/music"
)

// CheckThirdSpecies validates a 4:1 counterpoint line.
//
// Each cantus-firmus measure carries four quarter subdivisions: the first
// must form a consonant vertical, the remaining three may be dissonant
// only as stepwise passing tones (interval restricted to a major second
// or major seventh against the cantus firmus). At the line end the
// passing-tone lookahead falls back to the current cantus-firmus pitch.
//
// Complexity: O(n).
func CheckThirdSpecies(counterpoint, cantusFirmus music.Voice) (bool, []string) {
	var violations []string

	if len(counterpoint) != 4*len(cantusFirmus) {
		violations = append(violations, "Counterpoint should have four times as many notes as the cantus firmus")
	}
	if len(counterpoint) == 0 || len(cantusFirmus) == 0 {
		return verdict(violations)
	}

	var i, j int
	for i = 0; i < len(counterpoint); i += 4 {
		if i/4 >= len(cantusFirmus) {
			break
		}
		cfNote := cantusFirmus[i/4]

		strongInterval := music.Interval(counterpoint[i].Pitch, cfNote.Pitch)
		if !music.IsConsonant(strongInterval) {
			violations = append(violations, fmt.Sprintf("Dissonant interval on strong beat at position %d", i))
		}

		// Second, third and fourth quarters.
		for j = 1; j < 4; j++ {
			if i+j >= len(counterpoint) {
				break
			}
			interval := music.Interval(counterpoint[i+j].Pitch, cfNote.Pitch)
			if music.IsConsonant(interval) {
				continue
			}
			next := cfNote.Pitch
			if i+j+1 < len(counterpoint) {
				next = counterpoint[i+j+1].Pitch
			}
			passing := (interval == music.MajorSecond || interval == music.MajorSeventh) &&
				music.IsPassingTone(counterpoint[i+j-1].Pitch, counterpoint[i+j].Pitch, next)
			if !passing {
				violations = append(violations, fmt.Sprintf("Invalid interval at position %d", i+j))
			}
		}
	}

	violations = appendEndpointChecks(violations, counterpoint, cantusFirmus)

	return verdict(violations)
}
