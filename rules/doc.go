// Package rules implements the legality validators for the five species
// of two-voice counterpoint.
//
// Each validator is a pure function over two voices:
//
//	func(counterpoint, cantusFirmus music.Voice) (valid bool, violations []string)
//
// A validator never fails with an error: harmonic and melodic illegality
// is not an error condition but data — every violated check appends one
// human-readable message, and valid is true exactly when the list is
// empty. Callers that score candidates (the genetic engine) consume the
// violation count for partial credit; callers that gate output consume
// the boolean.
//
// Checks shared by all species:
//
//	– note-count ratio (1:1, 2:1, 4:1, 2:1) or, for the florid fifth
//	  species, total-duration equality;
//	– opening and closing verticals must be perfect consonances.
//
// Per-species disciplines:
//
//	– First:  every vertical consonant; no parallel perfect motion;
//	          penultimate vertical a major sixth or minor third.
//	– Second: strong-beat consonance; weak-beat dissonance only as a
//	          passing tone between its stepwise neighbors.
//	– Third:  as Second, with three weak subdivisions per measure.
//	– Fourth: every measure boundary validated as a suspension chain —
//	          consonant preparation, dissonant suspension from the
//	          permitted set, downward resolution to a permitted interval.
//	– Fifth:  beat strength derived from the note position; strong beats
//	          require consonance, weak beats tolerate passing tones, and
//	          half-beat-spaced pairs are checked as suspensions.
//
// Species dispatch is a table over the Species enum (ValidatorFor), not
// inheritance.
package rules
