package refine

import (
	"errors"

	"github.com/rpalermodrums/counterpoint/genetic"
	"github.com/rpalermodrums/counterpoint/music"
)

// Sentinel errors for the refinement pass.
var (
	// ErrEmptyLine indicates Refine was given an empty counterpoint line.
	ErrEmptyLine = errors.New("refine: counterpoint line is empty")

	// ErrEmptyCantus indicates Refine was given an empty cantus firmus.
	ErrEmptyCantus = errors.New("refine: cantus firmus is empty")
)

// pitchDomain is the number of candidate pitches per table row.
const pitchDomain = music.MaxPitch + 1

// Refine runs the per-note DP pass over line and returns the
// pitch-refined copy. Durations and positions are preserved exactly;
// only pitches change. The input line is never modified.
//
// opts supplies the sub-score evaluators consumed by the local fitness;
// its search parameters are ignored here.
//
// Complexity: O(n·128) local fitness evaluations; O(n·128) table space.
func Refine(line music.Voice, cantusFirmus music.Voice, species music.Species, mode music.Mode, opts genetic.Options) (music.Voice, error) {
	if len(line) == 0 {
		return nil, ErrEmptyLine
	}
	if len(cantusFirmus) == 0 {
		return nil, ErrEmptyCantus
	}

	governing := governingNotes(line, cantusFirmus)

	// Forward pass. dp[i][p] = best previous row maximum + the singleton
	// fitness of pitch p against the governing cantus-firmus note.
	dp := make([][]float64, len(line))

	var (
		i, p     int
		prevBest float64
	)
	for i = 0; i < len(line); i++ {
		dp[i] = make([]float64, pitchDomain)
		for p = 0; p < pitchDomain; p++ {
			dp[i][p] = prevBest + localFitness(p, line[i], governing[i], species, mode, opts)
		}
		prevBest = rowMax(dp[i])
	}

	// Backtracking: each row's argmax independently; a zero-valued row
	// keeps the input pitch.
	refined := make(music.Voice, len(line))
	for i = len(line) - 1; i >= 0; i-- {
		note := line[i]
		if best := rowArgmax(dp[i]); dp[i][best] > dpRowFloor(dp, i) {
			note.Pitch = best
		}
		refined[i] = note
	}

	return refined, nil
}

// governingNotes maps each counterpoint note to the cantus-firmus note
// whose onset is the latest not after the counterpoint note's onset —
// the same two-pointer measure lookup the florid validator uses.
func governingNotes(line, cantusFirmus music.Voice) []music.Note {
	out := make([]music.Note, len(line))
	measure := 0
	for i, note := range line {
		for measure < len(cantusFirmus) && cantusFirmus[measure].Position.Cmp(note.Position) <= 0 {
			measure++
		}
		idx := measure - 1
		if idx < 0 {
			idx = 0
		}
		out[i] = cantusFirmus[idx]
	}
	return out
}

// localFitness scores candidate pitch p at the slot of template against
// its governing cantus-firmus note: the genetic fitness of the singleton
// voices. Duration and position are inherited from the template note.
func localFitness(p int, template, governing music.Note, species music.Species, mode music.Mode, opts genetic.Options) float64 {
	candidate := music.Note{Pitch: p, Duration: template.Duration, Position: template.Position}
	return genetic.Fitness(music.Voice{candidate}, music.Voice{governing}, species, mode, opts)
}

// rowMax returns the maximum value of a table row.
func rowMax(row []float64) float64 {
	best := row[0]
	for _, v := range row[1:] {
		if v > best {
			best = v
		}
	}
	return best
}

// rowArgmax returns the lowest pitch attaining the row maximum.
func rowArgmax(row []float64) int {
	best := 0
	for p := 1; p < len(row); p++ {
		if row[p] > row[best] {
			best = p
		}
	}
	return best
}

// dpRowFloor returns the row's carried-over base (the previous row's
// maximum): a row whose maximum equals it gained no positive local
// fitness at any pitch, so backtracking keeps the input pitch there.
func dpRowFloor(dp [][]float64, i int) float64 {
	if i == 0 {
		return 0
	}
	return rowMax(dp[i-1])
}
