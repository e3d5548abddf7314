// Package genetic implements the population-based search that evolves a
// full counterpoint line against a fixed cantus firmus.
//
// The engine is a plain generational GA:
//
//	Seeding    — the initial population is drawn by uniform random walks
//	             over the candidate lattice (see package lattice); a walk
//	             that hits a dead end contributes a short, low-fitness
//	             line rather than failing.
//	Fitness    — the species rule validator is the backbone: lines that
//	             fail the hard gates (note-count ratio, or total duration
//	             for the florid species, plus perfect-consonance opening
//	             and closing) score 0.0; all others start at
//	             1.0 − 0.1×violations and add the four weighted sub-scores
//	             (0.3 melodic + 0.3 harmonic + 0.2 mode + 0.2 musicality),
//	             capped at 1.0.
//	Selection  — tournament of size 5 per population slot, sampled without
//	             replacement within a tournament and independently across
//	             tournaments.
//	Crossover  — single-point; requires equal-length parents and a cut
//	             drawn uniformly from [1, n−1].
//	Mutation   — independent per-note Bernoulli trial; a triggered note
//	             shifts pitch by one of {−2,−1,+1,+2} semitones, clamped
//	             to the MIDI range; duration and position never change.
//	Loop       — at most MaxGenerations evaluation rounds, ending early
//	             when any individual reaches the fitness ceiling 1.0; the
//	             result is the maximum-fitness individual of the final
//	             population.
//
// The four sub-score evaluators are extension points with a fixed
// contract (score in [0,1]); the defaults are the constant stubs of the
// reference behavior. See Options.
//
// Determinism: all randomness flows from Options.Seed through a single
// *rand.Rand; seed 0 selects a fixed default stream, so runs are
// reproducible by construction. No time-based entropy is used anywhere.
//
// The engine does no logging; attach Options.OnGeneration to observe
// per-generation best fitness.
package genetic
