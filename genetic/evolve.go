package genetic

import (
	"math/rand"

	"github.com/rpalermodrums/counterpoint/lattice"
	"github.com/rpalermodrums/counterpoint/music"
	"github.com/rpalermodrums/counterpoint/rules"
)

// Evolve runs the generational loop against the given candidate lattice
// and cantus firmus and returns the best counterpoint line found.
//
// Stages:
//  1. validate options and species;
//  2. seed PopulationSize individuals by uniform random walks over the
//     lattice (dead-end walks yield short, low-fitness lines);
//  3. loop for at most MaxGenerations rounds: score the population,
//     report the round's best via OnGeneration, stop early at the
//     fitness ceiling, otherwise select parents by tournament and refill
//     the next population via crossover + mutation;
//  4. return the maximum-fitness individual of the final population.
//
// The lattice is only read during seeding and may be discarded by the
// caller afterwards. The population is owned by this call for its whole
// duration; the returned line is an independent copy.
//
// A refill pairing whose parents differ in length (possible when seeding
// produced dead-end-truncated walks) degrades to cloning the first
// parent before mutation — search degeneracy is scored down, never
// crashed on.
//
// Complexity: O(G·P·(n + P)) for G generations, population P, line
// length n, plus evaluator cost.
func Evolve(lat *lattice.Lattice, cantusFirmus music.Voice, species music.Species, mode music.Mode, opts Options) (Result, error) {
	// Stage 1 - validation.
	if lat == nil {
		return Result{}, ErrNilLattice
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	if _, err := rules.ValidatorFor(species); err != nil {
		return Result{}, err
	}

	rng := rngFromSeed(opts.Seed)

	// Stage 2 - seed the population from lattice walks.
	population := make([]music.Voice, opts.PopulationSize)
	var i int
	for i = 0; i < opts.PopulationSize; i++ {
		population[i] = lat.Walk(rng)
	}

	// Stage 3 - generational loop.
	var (
		scores     = make([]float64, opts.PopulationSize)
		generation int
	)
	for generation = 0; generation < opts.MaxGenerations; generation++ {
		best := scorePopulation(population, scores, cantusFirmus, species, mode, opts)

		if opts.OnGeneration != nil {
			opts.OnGeneration(generation+1, best)
		}
		if best == fitnessCeiling {
			generation++
			break
		}

		parents := selectParents(population, scores, opts.TournamentSize, rng)
		population = refill(parents, opts, rng)
	}

	// Stage 4 - pick the best of the final population.
	bestIdx, bestScore := 0, Fitness(population[0], cantusFirmus, species, mode, opts)
	for i = 1; i < len(population); i++ {
		if s := Fitness(population[i], cantusFirmus, species, mode, opts); s > bestScore {
			bestIdx, bestScore = i, s
		}
	}

	return Result{
		Line:        population[bestIdx].Clone(),
		Fitness:     bestScore,
		Generations: generation,
	}, nil
}

// scorePopulation fills scores in place and returns the round's best.
func scorePopulation(population []music.Voice, scores []float64, cantusFirmus music.Voice, species music.Species, mode music.Mode, opts Options) float64 {
	best := 0.0
	for i, individual := range population {
		scores[i] = Fitness(individual, cantusFirmus, species, mode, opts)
		if scores[i] > best {
			best = scores[i]
		}
	}
	return best
}

// refill produces the next population from the selected parents:
// uniformly paired crossover followed by mutation, repeated until the
// population size is restored. Mismatched or too-short parent pairs
// degrade to a copy of the first parent.
func refill(parents []music.Voice, opts Options, rng *rand.Rand) []music.Voice {
	next := make([]music.Voice, 0, opts.PopulationSize)
	for len(next) < opts.PopulationSize {
		p1 := parents[rng.Intn(len(parents))]
		p2 := parents[rng.Intn(len(parents))]

		child, err := Crossover(p1, p2, rng)
		if err != nil {
			child = p1.Clone()
		}
		next = append(next, Mutate(child, opts.MutationRate, rng))
	}
	return next
}
