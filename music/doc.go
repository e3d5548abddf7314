// Package music defines the value types and pure classification helpers
// that the counterpoint engine is built on: notes with exact rational
// durations and positions, voices, the seven diatonic modes, the five
// counterpoint species, and interval arithmetic.
//
// Everything in this package is a pure function over immutable values:
//
//	– Interval(a, b)        — pitch-class interval in [0,12), symmetric.
//	– IsPerfectConsonance / IsImperfectConsonance / IsConsonant / IsDissonant
//	                        — classification over the interval domain {0..12};
//	                          perfect = {0,7,12→0}, imperfect = {3,4,8,9},
//	                          consonant = union, dissonant = complement.
//	– IsPassingTone         — strictly monotone stepwise approach/departure.
//	– ParallelMotion        — both verticals perfect AND same direction.
//	– ContraryMotion        — signed melodic deltas of opposite sign.
//	– suspension sets       — preparation {3,4,5,7,8,9}, suspension {1,2,5,6},
//	                          resolution {3,4,7,8,9}, downward resolution.
//	– IsStrongBeat          — a position that falls on a whole beat.
//	– PossibleNotes         — the candidate counterpoint pitches for one
//	                          cantus-firmus note under a species and mode.
//
// Durations and positions are exact Rationals (no float drift between
// half- and quarter-note subdivisions), mirroring the beat grid that the
// species disciplines are defined on.
//
// The package has no dependencies and performs no allocation beyond the
// slices its enumeration helpers return by contract.
package music
