// Package counterpoint generates a melodic counterpoint voice against a
// fixed reference melody (the cantus firmus) under the formal constraints
// of species counterpoint and a chosen diatonic mode.
//
// 🚀 What is counterpoint?
//
//	A pure-Go generation-and-validation engine that brings together:
//		• Music primitives: notes on an exact rational beat grid, modes, species
//		• Rule validators: the five species disciplines as pure pass/fail checks
//		• Candidate lattice: a position-layered DAG of legal notes & transitions
//		• Genetic search: seeded, reproducible population search over full lines
//		• DP refinement: a per-note pitch-choice post-pass on the winner
//
// ✨ Why choose counterpoint?
//
//   - Deterministic by construction – every random draw flows from one seed
//   - Rock-solid contracts – sentinel errors, no panics on user input
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – plug in melodic/harmonic/mode/musicality evaluators and
//     per-generation hooks without touching the engine
//
// Under the hood, everything is organized under five subpackages:
//
//	music/   — Note, Voice, Mode, Species, interval classification
//	rules/   — the five species rule validators + dispatch
//	lattice/ — candidate-transition graph construction & seeding walks
//	genetic/ — fitness, tournament selection, crossover, mutation, the loop
//	refine/  — per-note dynamic-programming pitch refinement
//
// Quick example:
//
//	cf := []music.Note{
//		{Pitch: 60, Duration: music.Whole(1), Position: music.Whole(0)},
//		{Pitch: 62, Duration: music.Whole(1), Position: music.Whole(1)},
//		{Pitch: 64, Duration: music.Whole(1), Position: music.Whole(2)},
//	}
//	line, err := counterpoint.Generate(cf, music.First, music.Ionian,
//		genetic.DefaultOptions(genetic.WithSeed(42)))
//
// The engine is single-threaded, synchronous and compute-bound: a
// generation run is one call that completes or fails outright, with no
// I/O, blocking or shared state inside the core.
package counterpoint
