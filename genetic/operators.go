package genetic

import (
	"math/rand"

	"github.com/rpalermodrums/counterpoint/music"
)

// mutationDeltas are the equally likely pitch perturbations applied when
// a mutation trial fires.
var mutationDeltas = [...]int{-2, -1, 1, 2}

// Mutate returns a copy of line in which each note independently mutates
// with probability rate: the pitch shifts by one of {−2,−1,+1,+2}
// semitones, clamped to the MIDI range. Duration and position are
// preserved exactly; the input line is never modified.
//
// Complexity: O(n).
func Mutate(line music.Voice, rate float64, rng *rand.Rand) music.Voice {
	mutated := make(music.Voice, len(line))
	for i, note := range line {
		if rng.Float64() < rate {
			pitch := note.Pitch + mutationDeltas[rng.Intn(len(mutationDeltas))]
			if pitch < music.MinPitch {
				pitch = music.MinPitch
			}
			if pitch > music.MaxPitch {
				pitch = music.MaxPitch
			}
			note.Pitch = pitch
		}
		mutated[i] = note
	}
	return mutated
}

// Crossover performs single-point crossover: the child is parent1's
// prefix up to a cut drawn uniformly from [1, n−1] followed by parent2's
// suffix.
//
// Contracts:
//   - parents of different lengths fail with ErrParentLengthMismatch,
//     never a silent truncation;
//   - parents shorter than 2 notes admit no interior cut and fail with
//     ErrParentTooShort.
//
// Complexity: O(n).
func Crossover(parent1, parent2 music.Voice, rng *rand.Rand) (music.Voice, error) {
	if len(parent1) != len(parent2) {
		return nil, ErrParentLengthMismatch
	}
	if len(parent1) < 2 {
		return nil, ErrParentTooShort
	}

	cut := 1 + rng.Intn(len(parent1)-1)
	child := make(music.Voice, len(parent1))
	copy(child, parent1[:cut])
	copy(child[cut:], parent2[cut:])
	return child, nil
}

// selectParents fills one parent slot per population member via
// tournament selection: each tournament samples TournamentSize distinct
// individuals (without replacement within the tournament, independent
// draws across tournaments) and keeps the fittest. The tournament size is
// clamped to the population size.
//
// Complexity: O(p·(p+k)) with p the population size and k the tournament
// size; the permutation draw dominates.
func selectParents(population []music.Voice, scores []float64, tournamentSize int, rng *rand.Rand) []music.Voice {
	k := tournamentSize
	if k > len(population) {
		k = len(population)
	}

	parents := make([]music.Voice, len(population))
	var slot int
	for slot = 0; slot < len(population); slot++ {
		sample := rng.Perm(len(population))[:k]
		winner := sample[0]
		for _, idx := range sample[1:] {
			if scores[idx] > scores[winner] {
				winner = idx
			}
		}
		parents[slot] = population[winner]
	}
	return parents
}
