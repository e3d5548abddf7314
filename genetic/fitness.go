package genetic

import (
	"github.com/rpalermodrums/counterpoint/music"
	"github.com/rpalermodrums/counterpoint/rules"
)

// Sub-score weights and the per-violation penalty of the fitness formula.
const (
	violationPenalty = 0.1
	melodicWeight    = 0.3
	harmonicWeight   = 0.3
	modeWeight       = 0.2
	musicalityWeight = 0.2
)

// Fitness scores a candidate counterpoint line in [0,1].
//
// Hard gates (score 0.0 when any fails):
//   - the species' note-count ratio — total-duration equality for the
//     florid fifth species;
//   - perfect-consonance opening and closing verticals.
//
// Past the gates the score starts at 1.0 − 0.1×(violation count from the
// species validator) and adds the four weighted sub-scores:
// 0.3×melodic + 0.3×harmonic + 0.2×mode + 0.2×musicality. The result is
// capped at 1.0 and floored at 0.0.
//
// Rule violations are partial-credit data here, never errors. An unknown
// species scores 0.0.
//
// Complexity: O(n) plus the evaluators' cost.
func Fitness(counterpoint, cantusFirmus music.Voice, species music.Species, mode music.Mode, opts Options) float64 {
	validator, err := rules.ValidatorFor(species)
	if err != nil {
		return 0
	}
	if !hardGatesPass(counterpoint, cantusFirmus, species) {
		return 0
	}

	_, violations := validator(counterpoint, cantusFirmus)
	score := 1.0 - violationPenalty*float64(len(violations))

	score += melodicWeight * evalMelodic(opts, counterpoint)
	score += harmonicWeight * evalHarmonic(opts, counterpoint, cantusFirmus)
	score += modeWeight * evalMode(opts, counterpoint, mode)
	score += musicalityWeight * evalMusicality(opts, counterpoint, cantusFirmus)

	if score > fitnessCeiling {
		score = fitnessCeiling
	}
	if score < 0 {
		score = 0
	}
	return score
}

// hardGatesPass checks the structural gates that zero the fitness
// outright: shape (ratio or total duration) and perfect-consonance
// endpoints.
func hardGatesPass(counterpoint, cantusFirmus music.Voice, species music.Species) bool {
	if len(counterpoint) == 0 || len(cantusFirmus) == 0 {
		return false
	}

	if ratio := species.Ratio(); ratio > 0 {
		if len(counterpoint) != ratio*len(cantusFirmus) {
			return false
		}
	} else { // florid: note count is free, duration is not
		if !counterpoint.TotalDuration().Equal(cantusFirmus.TotalDuration()) {
			return false
		}
	}

	if !music.IsPerfectConsonance(music.Interval(counterpoint[0].Pitch, cantusFirmus[0].Pitch)) {
		return false
	}
	return music.IsPerfectConsonance(music.Interval(
		counterpoint[len(counterpoint)-1].Pitch,
		cantusFirmus[len(cantusFirmus)-1].Pitch,
	))
}

// The eval* helpers apply the configured evaluator or the reference
// placeholder when nil.

func evalMelodic(opts Options, cp music.Voice) float64 {
	if opts.Melodic != nil {
		return opts.Melodic(cp)
	}
	return placeholderScore
}

func evalHarmonic(opts Options, cp, cf music.Voice) float64 {
	if opts.Harmonic != nil {
		return opts.Harmonic(cp, cf)
	}
	return placeholderScore
}

func evalMode(opts Options, cp music.Voice, mode music.Mode) float64 {
	if opts.ModeAdherence != nil {
		return opts.ModeAdherence(cp, mode)
	}
	return placeholderScore
}

func evalMusicality(opts Options, cp, cf music.Voice) float64 {
	if opts.Musicality != nil {
		return opts.Musicality(cp, cf)
	}
	return placeholderScore
}
