// Package lattice builds the candidate-transition graph that seeds the
// counterpoint search.
//
// The graph is a position-layered DAG: one layer per cantus-firmus note,
// one node per legal candidate counterpoint note at that position
// (enumerated by music.PossibleNotes), and directed weighted edges only
// between consecutive layers. There are no edges within a layer and
// none that skip a layer — every edge advances the position by exactly
// one.
//
// An edge from a candidate at layer i to one at layer i+1 exists iff:
//
//	– the melodic leap between the two candidate pitches is at most an
//	  octave (12 semitones), and
//	– the destination vertical interval (candidate against its
//	  cantus-firmus note) is consonant.
//
// Edge weights express soft preference, starting at 1.0 and compounding:
//
//	×1.2 when the voices move in contrary motion;
//	×1.1 when the destination vertical is an imperfect consonance.
//
// A contrary-motion move onto an imperfect consonance therefore scores
// 1.32. Weights are carried on each edge and summed by PathWeight; the
// seeding walk itself draws successors uniformly.
//
// A node with no outgoing edges is a dead end: a walk reaching one stops
// early and yields a shorter-than-required line, which downstream
// validation flags via its length check rather than failing the run.
//
// The lattice is built once per generation run, consumed to seed the
// initial population, and then discarded.
package lattice
