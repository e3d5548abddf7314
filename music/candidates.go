// Package music - candidate counterpoint note enumeration.
package music

// candidateSpan bounds the enumeration window around the cantus-firmus
// pitch: candidates lie within one octave either side.
const candidateSpan = 12

// PossibleNotes enumerates every counterpoint note that may sound against
// cfNote under the given species and mode.
//
// Candidate pitches span [cfNote.Pitch−12, cfNote.Pitch+12] and must be
// scale members of the mode rooted at the cantus-firmus pitch itself —
// the tonic tracks the reference note, not a fixed piece tonic.
//
// The candidate duration follows the species' subdivision of the
// cantus-firmus note: the full duration for First and Fourth, half for
// Second, a quarter for Third. Fifth (florid) candidates carry the full
// cantus-firmus duration; the florid rhythm is shaped downstream.
// Every candidate carries the cantus-firmus note's position.
//
// Complexity: O(1) — a fixed 25-pitch window; the returned slice is the
// only allocation.
func PossibleNotes(cfNote Note, species Species, mode Mode) []Note {
	var duration Rational
	switch species {
	case Second:
		duration = cfNote.Duration.Div(2)
	case Third:
		duration = cfNote.Duration.Div(4)
	default: // First, Fourth, Fifth
		duration = cfNote.Duration
	}

	out := make([]Note, 0, 2*candidateSpan+1)
	for pitch := cfNote.Pitch - candidateSpan; pitch <= cfNote.Pitch+candidateSpan; pitch++ {
		if !mode.Contains(pitch, cfNote.Pitch) {
			continue
		}
		out = append(out, Note{
			Pitch:    pitch,
			Duration: duration,
			Position: cfNote.Position,
		})
	}
	return out
}
