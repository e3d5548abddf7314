package rules

import (
	"fmt"

	"github.com/rpalermodrums/counterpoint/music"
)

// CheckSecondSpecies validates a 2:1 counterpoint line.
//
// Each cantus-firmus measure carries two counterpoint notes: the strong
// half must form a consonant vertical, the weak half may be dissonant
// only as a stepwise passing tone (interval restricted to a major second
// or major seventh against the cantus firmus). At the line end the
// passing-tone lookahead falls back to the current cantus-firmus pitch.
//
// Complexity: O(n).
func CheckSecondSpecies(counterpoint, cantusFirmus music.Voice) (bool, []string) {
	var violations []string

	if len(counterpoint) != 2*len(cantusFirmus) {
		violations = append(violations, "Counterpoint should have twice as many notes as the cantus firmus")
	}
	if len(counterpoint) == 0 || len(cantusFirmus) == 0 {
		return verdict(violations)
	}

	var i int
	for i = 0; i < len(counterpoint); i += 2 {
		if i/2 >= len(cantusFirmus) {
			break
		}
		cpStrong := counterpoint[i]
		cfNote := cantusFirmus[i/2]

		strongInterval := music.Interval(cpStrong.Pitch, cfNote.Pitch)
		if !music.IsConsonant(strongInterval) {
			violations = append(violations, fmt.Sprintf("Dissonant interval on strong beat at position %d", i))
		}

		if i+1 < len(counterpoint) {
			cpWeak := counterpoint[i+1]
			weakInterval := music.Interval(cpWeak.Pitch, cfNote.Pitch)

			next := cfNote.Pitch
			if i+2 < len(counterpoint) {
				next = counterpoint[i+2].Pitch
			}
			passing := (weakInterval == music.MajorSecond || weakInterval == music.MajorSeventh) &&
				music.IsPassingTone(cpStrong.Pitch, cpWeak.Pitch, next)
			if !music.IsConsonant(weakInterval) && !passing {
				violations = append(violations, fmt.Sprintf("Invalid weak beat interval at position %d", i+1))
			}
		}
	}

	violations = appendEndpointChecks(violations, counterpoint, cantusFirmus)

	return verdict(violations)
}
