// Package music - interval arithmetic and classification.
//
// The interval domain is {0..12}: a pitch-class interval as produced by
// Interval, plus the conventional synonym Octave (12), which classifies
// identically to Unison under the mod-12 reduction.
package music

// Named pitch-class intervals in semitones.
const (
	Unison        = 0
	MinorSecond   = 1
	MajorSecond   = 2
	MinorThird    = 3
	MajorThird    = 4
	PerfectFourth = 5
	Tritone       = 6
	PerfectFifth  = 7
	MinorSixth    = 8
	MajorSixth    = 9
	MinorSeventh  = 10
	MajorSeventh  = 11
	Octave        = 12
)

// Interval returns the pitch-class interval between two pitches:
// |p1 − p2| mod 12, in [0,12). Symmetric in its arguments; compound
// intervals reduce (an octave maps to 0).
//
// Complexity: O(1).
func Interval(p1, p2 int) int {
	d := p1 - p2
	if d < 0 {
		d = -d
	}
	return d % 12
}

// IsPerfectConsonance reports whether interval is a unison, perfect
// fifth, or octave.
func IsPerfectConsonance(interval int) bool {
	return interval == Unison || interval == PerfectFifth || interval == Octave
}

// IsImperfectConsonance reports whether interval is a minor/major third
// or minor/major sixth.
func IsImperfectConsonance(interval int) bool {
	return interval == MinorThird || interval == MajorThird ||
		interval == MinorSixth || interval == MajorSixth
}

// IsConsonant reports whether interval is a perfect or imperfect
// consonance.
func IsConsonant(interval int) bool {
	return IsPerfectConsonance(interval) || IsImperfectConsonance(interval)
}

// IsDissonant is the complement of IsConsonant over the interval domain.
func IsDissonant(interval int) bool {
	return !IsConsonant(interval)
}

// IsPassingTone reports whether curr lies strictly between prev and next:
// a monotone melodic step in either direction. This is the condition under
// which a weak-beat dissonance is tolerated in the second, third and
// fifth species.
func IsPassingTone(prev, curr, next int) bool {
	return (prev < curr && curr < next) || (prev > curr && curr > next)
}

// ParallelMotion reports whether the motion from the previous vertical
// (prevCP against prevCF) to the current one (currCP against currCF) is
// forbidden parallel perfect motion: both verticals are perfect
// consonances and both voices move in the same direction (the product of
// the signed melodic deltas is positive).
func ParallelMotion(prevCP, currCP, prevCF, currCF int) bool {
	return IsPerfectConsonance(Interval(prevCP, prevCF)) &&
		IsPerfectConsonance(Interval(currCP, currCF)) &&
		(currCP-prevCP)*(currCF-prevCF) > 0
}

// ContraryMotion reports whether the two voices move in opposite
// directions: the product of the signed melodic deltas is negative.
func ContraryMotion(prevCP, currCP, prevCF, currCF int) bool {
	return (currCP-prevCP)*(currCF-prevCF) < 0
}

// IsValidSuspensionPreparation reports whether interval may precede a
// fourth-species suspension: minor/major third, perfect fourth, perfect
// fifth, or minor/major sixth.
func IsValidSuspensionPreparation(interval int) bool {
	switch interval {
	case MinorThird, MajorThird, PerfectFourth, PerfectFifth, MinorSixth, MajorSixth:
		return true
	}
	return false
}

// IsValidSuspension reports whether interval may sound as the suspension
// itself: minor/major second, perfect fourth, or tritone.
func IsValidSuspension(interval int) bool {
	switch interval {
	case MinorSecond, MajorSecond, PerfectFourth, Tritone:
		return true
	}
	return false
}

// IsValidSuspensionResolution reports whether interval may resolve a
// suspension: minor/major third, perfect fifth, or minor/major sixth.
func IsValidSuspensionResolution(interval int) bool {
	switch interval {
	case MinorThird, MajorThird, PerfectFifth, MinorSixth, MajorSixth:
		return true
	}
	return false
}

// IsDownwardResolution reports whether the melodic motion prev → curr
// descends, as a suspension resolution must.
func IsDownwardResolution(prev, curr int) bool {
	return curr < prev
}

// IsStrongBeat reports whether pos falls on a whole-beat boundary. In
// normalized form an integral position is exactly one whose denominator
// is 1.
func IsStrongBeat(pos Rational) bool {
	return pos.IsInteger()
}
