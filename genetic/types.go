package genetic

import (
	"errors"

	"github.com/rpalermodrums/counterpoint/music"
)

// Sentinel errors for the genetic engine.
var (
	// ErrParentLengthMismatch indicates Crossover was given parents of
	// different lengths.
	ErrParentLengthMismatch = errors.New("genetic: parents must have the same length")

	// ErrParentTooShort indicates Crossover was given parents too short
	// to admit an interior cut point (length < 2).
	ErrParentTooShort = errors.New("genetic: parents too short for crossover")

	// ErrBadPopulationSize indicates Options.PopulationSize < 1.
	ErrBadPopulationSize = errors.New("genetic: population size must be at least 1")

	// ErrBadGenerationCount indicates Options.MaxGenerations < 0.
	ErrBadGenerationCount = errors.New("genetic: max generations must be non-negative")

	// ErrBadMutationRate indicates Options.MutationRate outside [0,1].
	ErrBadMutationRate = errors.New("genetic: mutation rate must be in [0,1]")

	// ErrBadTournamentSize indicates Options.TournamentSize < 1.
	ErrBadTournamentSize = errors.New("genetic: tournament size must be at least 1")

	// ErrNilLattice indicates Evolve was given a nil candidate lattice.
	ErrNilLattice = errors.New("genetic: candidate lattice is nil")
)

// Default search parameters.
const (
	// DefaultPopulationSize is the fixed population size per generation.
	DefaultPopulationSize = 100

	// DefaultMaxGenerations bounds the number of evaluation rounds.
	DefaultMaxGenerations = 50

	// DefaultMutationRate is the per-note Bernoulli mutation probability.
	DefaultMutationRate = 0.1

	// DefaultTournamentSize is the selection tournament size.
	DefaultTournamentSize = 5

	// fitnessCeiling is the perfect score that terminates the loop early.
	fitnessCeiling = 1.0
)

// MelodicEvaluator scores the melodic shape of a counterpoint line.
// Contract: the returned score lies in [0,1].
type MelodicEvaluator func(counterpoint music.Voice) float64

// HarmonicEvaluator scores the harmonic relation of a counterpoint line
// to the cantus firmus. Contract: the returned score lies in [0,1].
type HarmonicEvaluator func(counterpoint, cantusFirmus music.Voice) float64

// ModeEvaluator scores adherence of a counterpoint line to a mode.
// Contract: the returned score lies in [0,1].
type ModeEvaluator func(counterpoint music.Voice, mode music.Mode) float64

// MusicalityEvaluator scores variety and contour of a counterpoint line
// against the cantus firmus. Contract: the returned score lies in [0,1].
type MusicalityEvaluator func(counterpoint, cantusFirmus music.Voice) float64

// placeholderScore is the constant returned by the default evaluators.
// The reference behavior pins all four sub-scores to 0.5; real evaluators
// plug in via Options without touching the engine.
const placeholderScore = 0.5

// Options configures one Evolve run.
//
// PopulationSize — fixed population size across generations (≥ 1).
// MaxGenerations — upper bound on evaluation rounds (≥ 0).
// MutationRate   — per-note mutation probability in [0,1].
// TournamentSize — selection tournament size (≥ 1; clamped to the
//
//	population size when larger).
//
// Seed           — RNG seed; 0 selects the fixed default stream.
// OnGeneration   — optional per-generation observer, called once per
//
//	evaluation round with the 1-based generation number and
//	the round's best fitness.
//
// Melodic, Harmonic, ModeAdherence, Musicality — optional sub-score
// evaluators; nil selects the constant-0.5 reference stubs.
type Options struct {
	PopulationSize int
	MaxGenerations int
	MutationRate   float64
	TournamentSize int
	Seed           int64

	OnGeneration func(generation int, best float64)

	Melodic       MelodicEvaluator
	Harmonic      HarmonicEvaluator
	ModeAdherence ModeEvaluator
	Musicality    MusicalityEvaluator
}

// Option is a functional option for configuring Evolve.
type Option func(*Options)

// WithPopulationSize sets the population size. Panics on size < 1;
// invalid configuration surfaces early, at option-construction time.
func WithPopulationSize(size int) Option {
	if size < 1 {
		panic(ErrBadPopulationSize.Error())
	}
	return func(o *Options) { o.PopulationSize = size }
}

// WithMaxGenerations bounds the number of evaluation rounds.
// Panics on a negative bound.
func WithMaxGenerations(n int) Option {
	if n < 0 {
		panic(ErrBadGenerationCount.Error())
	}
	return func(o *Options) { o.MaxGenerations = n }
}

// WithMutationRate sets the per-note mutation probability.
// Panics on a rate outside [0,1].
func WithMutationRate(rate float64) Option {
	if rate < 0 || rate > 1 {
		panic(ErrBadMutationRate.Error())
	}
	return func(o *Options) { o.MutationRate = rate }
}

// WithTournamentSize sets the selection tournament size.
// Panics on size < 1.
func WithTournamentSize(size int) Option {
	if size < 1 {
		panic(ErrBadTournamentSize.Error())
	}
	return func(o *Options) { o.TournamentSize = size }
}

// WithSeed fixes the RNG seed; 0 selects the default deterministic stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithOnGeneration attaches a per-generation observer hook.
func WithOnGeneration(fn func(generation int, best float64)) Option {
	return func(o *Options) { o.OnGeneration = fn }
}

// DefaultOptions returns the reference search parameters: population 100,
// at most 50 generations, mutation rate 0.1, tournament size 5, the
// default deterministic seed, and the placeholder sub-score evaluators.
// Apply functional options on top for overrides.
func DefaultOptions(opts ...Option) Options {
	o := Options{
		PopulationSize: DefaultPopulationSize,
		MaxGenerations: DefaultMaxGenerations,
		MutationRate:   DefaultMutationRate,
		TournamentSize: DefaultTournamentSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Result holds the outcome of one Evolve run.
type Result struct {
	// Line is the maximum-fitness individual of the final population.
	Line music.Voice

	// Fitness is Line's score in [0,1].
	Fitness float64

	// Generations is the number of evaluation rounds performed.
	Generations int
}

// validateOptions checks internal consistency of Options for callers that
// build the struct directly instead of via DefaultOptions.
func validateOptions(o Options) error {
	if o.PopulationSize < 1 {
		return ErrBadPopulationSize
	}
	if o.MaxGenerations < 0 {
		return ErrBadGenerationCount
	}
	if o.MutationRate < 0 || o.MutationRate > 1 {
		return ErrBadMutationRate
	}
	if o.TournamentSize < 1 {
		return ErrBadTournamentSize
	}
	return nil
}
