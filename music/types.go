// Package music - Note, Voice, Mode and Species value types.
//
// This file declares the data model shared by every other package:
//
//	Note    — immutable (pitch, duration, position) value.
//	Voice   — ordered note sequence, insertion order = temporal order.
//	Mode    — one of the seven diatonic modes (offset set + rotation).
//	Species — one of the five counterpoint disciplines.
//
// Notes are never mutated in place; every transformation (mutation,
// refinement) replaces a Note with a new value.
package music

// MIDI pitch bounds. All generated pitches are clamped into this range.
const (
	MinPitch = 0
	MaxPitch = 127
)

// Note is a single pitched event: a MIDI pitch, an exact duration in
// beats, and an exact offset from the start of the piece.
type Note struct {
	// Pitch is the MIDI pitch in [0,127].
	Pitch int

	// Duration is the length of the note in beats; always positive for
	// well-formed input.
	Duration Rational

	// Position is the offset of the note onset from the piece start,
	// non-negative and non-decreasing along a Voice.
	Position Rational
}

// Voice is an ordered sequence of Notes. It represents either the fixed
// cantus firmus or a candidate counterpoint line.
type Voice []Note

// Len returns the number of notes in the voice.
func (v Voice) Len() int { return len(v) }

// TotalDuration sums the durations of all notes.
//
// Complexity: O(n).
func (v Voice) TotalDuration() Rational {
	var sum Rational
	for _, n := range v {
		sum = sum.Add(n.Duration)
	}
	return sum
}

// PitchRange returns the span max(pitch)−min(pitch) of the voice,
// or 0 for an empty voice.
//
// Complexity: O(n).
func (v Voice) PitchRange() int {
	if len(v) == 0 {
		return 0
	}
	lo, hi := v[0].Pitch, v[0].Pitch
	for _, n := range v[1:] {
		if n.Pitch < lo {
			lo = n.Pitch
		}
		if n.Pitch > hi {
			hi = n.Pitch
		}
	}
	return hi - lo
}

// CountStepwise counts consecutive-note motions by a half or whole step
// (|Δpitch| ∈ {1,2}).
//
// Complexity: O(n).
func (v Voice) CountStepwise() int {
	var count int
	for i := 1; i < len(v); i++ {
		d := v[i].Pitch - v[i-1].Pitch
		if d < 0 {
			d = -d
		}
		if d == 1 || d == 2 {
			count++
		}
	}
	return count
}

// CountLeaps counts consecutive-note motions of a third or larger
// (|Δpitch| ≥ 4).
//
// Complexity: O(n).
func (v Voice) CountLeaps() int {
	var count int
	for i := 1; i < len(v); i++ {
		d := v[i].Pitch - v[i-1].Pitch
		if d < 0 {
			d = -d
		}
		if d >= 4 {
			count++
		}
	}
	return count
}

// CountRepeated counts immediate pitch repetitions.
//
// Complexity: O(n).
func (v Voice) CountRepeated() int {
	var count int
	for i := 1; i < len(v); i++ {
		if v[i].Pitch == v[i-1].Pitch {
			count++
		}
	}
	return count
}

// Clone returns an independent copy of the voice. Notes are values, so a
// shallow slice copy is a full copy.
func (v Voice) Clone() Voice {
	if v == nil {
		return nil
	}
	out := make(Voice, len(v))
	copy(out, v)
	return out
}

// Mode is one of the seven diatonic modes.
//
// Each mode is a set of seven scale-degree offsets (semitones from the
// tonic) and a rotation index identifying which degree of the major
// scale it starts on.
type Mode int

const (
	// Ionian is the major scale: offsets {0,2,4,5,7,9,11}, rotation 0.
	Ionian Mode = iota
	// Dorian — offsets {0,2,3,5,7,9,10}, rotation 1.
	Dorian
	// Phrygian — offsets {0,1,3,5,7,8,10}, rotation 2.
	Phrygian
	// Lydian — offsets {0,2,4,6,7,9,11}, rotation 3.
	Lydian
	// Mixolydian — offsets {0,2,4,5,7,9,10}, rotation 4.
	Mixolydian
	// Aeolian is the natural minor scale: offsets {0,2,3,5,7,8,10}, rotation 5.
	Aeolian
	// Locrian — offsets {0,1,3,5,6,8,10}, rotation 6.
	Locrian
)

// modeOffsets maps each Mode to its scale-degree offset set.
var modeOffsets = [...][7]int{
	Ionian:     {0, 2, 4, 5, 7, 9, 11},
	Dorian:     {0, 2, 3, 5, 7, 9, 10},
	Phrygian:   {0, 1, 3, 5, 7, 8, 10},
	Lydian:     {0, 2, 4, 6, 7, 9, 11},
	Mixolydian: {0, 2, 4, 5, 7, 9, 10},
	Aeolian:    {0, 2, 3, 5, 7, 8, 10},
	Locrian:    {0, 1, 3, 5, 6, 8, 10},
}

// modeNames maps each Mode to its display name.
var modeNames = [...]string{
	Ionian:     "Ionian",
	Dorian:     "Dorian",
	Phrygian:   "Phrygian",
	Lydian:     "Lydian",
	Mixolydian: "Mixolydian",
	Aeolian:    "Aeolian",
	Locrian:    "Locrian",
}

// Valid reports whether m is one of the seven defined modes.
func (m Mode) Valid() bool { return m >= Ionian && m <= Locrian }

// Offsets returns the seven semitone offsets of the mode's scale degrees.
func (m Mode) Offsets() [7]int { return modeOffsets[m] }

// Rotation returns the mode's rotation index (0 = Ionian … 6 = Locrian).
func (m Mode) Rotation() int { return int(m) }

// Contains reports whether pitch is a scale member of the mode rooted at
// tonic: (pitch − tonic) mod 12 must be one of the mode's offsets.
//
// Complexity: O(1) (seven-element scan).
func (m Mode) Contains(pitch, tonic int) bool {
	pc := (pitch - tonic) % 12
	if pc < 0 {
		pc += 12
	}
	for _, off := range modeOffsets[m] {
		if pc == off {
			return true
		}
	}
	return false
}

// String returns the mode's conventional name.
func (m Mode) String() string {
	if !m.Valid() {
		return "UnknownMode"
	}
	return modeNames[m]
}

// Species is one of the five counterpoint disciplines. Each species fixes
// the counterpoint-to-cantus-firmus note ratio and selects which rule
// validator applies.
type Species int

const (
	// First species: note against note (1:1), consonance throughout.
	First Species = iota + 1
	// Second species: two notes against one (2:1), passing-tone weak beats.
	Second
	// Third species: four notes against one (4:1).
	Third
	// Fourth species: syncopated 2:1 with prepared, downward-resolving
	// suspensions.
	Fourth
	// Fifth species (florid): free rhythm; note count varies, total
	// duration must match the cantus firmus.
	Fifth
)

// Valid reports whether s is one of the five defined species.
func (s Species) Valid() bool { return s >= First && s <= Fifth }

// Ratio returns the fixed counterpoint:cantus-firmus note-count ratio of
// the species, or 0 for Fifth (florid), whose note count is variable.
func (s Species) Ratio() int {
	switch s {
	case First:
		return 1
	case Second:
		return 2
	case Third:
		return 4
	case Fourth:
		return 2
	default:
		return 0
	}
}

// String returns the species' conventional ordinal name.
func (s Species) String() string {
	switch s {
	case First:
		return "First"
	case Second:
		return "Second"
	case Third:
		return "Third"
	case Fourth:
		return "Fourth"
	case Fifth:
		return "Fifth"
	default:
		return "UnknownSpecies"
	}
}
