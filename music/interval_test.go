package music_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rpalermodrums/counterpoint/music"
)

// TestInterval_SymmetricAndOctaveReducing sweeps a pitch window and
// confirms symmetry and the [0,12) range, plus the canonical octave case.
func TestInterval_SymmetricAndOctaveReducing(t *testing.T) {
	for a := 0; a <= 48; a++ {
		for b := 0; b <= 48; b++ {
			got := music.Interval(a, b)
			assert.Equal(t, got, music.Interval(b, a), "Interval must be symmetric")
			assert.GreaterOrEqual(t, got, 0)
			assert.Less(t, got, 12, "Interval must be pitch-class reduced")
		}
	}

	assert.Equal(t, 0, music.Interval(60, 72), "octave reduces to 0")
	assert.Equal(t, music.PerfectFifth, music.Interval(60, 67))
	assert.Equal(t, music.MajorThird, music.Interval(60, 64))
}

// TestConsonance_Partition confirms every interval in {0..12} is
// consonant XOR dissonant, with the expected members on each side.
func TestConsonance_Partition(t *testing.T) {
	for interval := 0; interval <= 12; interval++ {
		assert.NotEqual(t, music.IsConsonant(interval), music.IsDissonant(interval),
			"interval %d must be consonant XOR dissonant", interval)
	}

	assert.True(t, music.IsConsonant(music.Unison))
	assert.True(t, music.IsConsonant(music.MinorThird))
	assert.True(t, music.IsConsonant(music.MajorThird))
	assert.True(t, music.IsConsonant(music.PerfectFifth))
	assert.False(t, music.IsConsonant(music.MajorSecond))
	assert.False(t, music.IsConsonant(music.Tritone))
}

// TestPerfectAndImperfectConsonance pins the two classification sets.
func TestPerfectAndImperfectConsonance(t *testing.T) {
	assert.True(t, music.IsPerfectConsonance(music.Unison))
	assert.True(t, music.IsPerfectConsonance(music.PerfectFifth))
	assert.True(t, music.IsPerfectConsonance(music.Octave))
	assert.False(t, music.IsPerfectConsonance(music.MajorThird))

	for _, interval := range []int{music.MinorThird, music.MajorThird, music.MinorSixth, music.MajorSixth} {
		assert.True(t, music.IsImperfectConsonance(interval), "interval %d", interval)
		assert.False(t, music.IsPerfectConsonance(interval), "interval %d", interval)
	}
}

// TestIsPassingTone covers both directions and the non-monotone case.
func TestIsPassingTone(t *testing.T) {
	assert.True(t, music.IsPassingTone(60, 62, 64), "ascending step")
	assert.True(t, music.IsPassingTone(64, 62, 60), "descending step")
	assert.False(t, music.IsPassingTone(60, 62, 60), "neighbor figure is not passing")
	assert.False(t, music.IsPassingTone(60, 60, 62), "repetition is not passing")
}

// TestParallelMotion covers the forbidden-parallel predicate under the
// (prevCP, currCP, prevCF, currCF) argument order: the first two pitches
// are one voice across time, not one vertical.
func TestParallelMotion(t *testing.T) {
	assert.True(t, music.ParallelMotion(67, 69, 60, 62), "fifths at both verticals, both voices rising")
	assert.False(t, music.ParallelMotion(60, 67, 64, 71), "major-third verticals, not perfect motion")
	assert.False(t, music.ParallelMotion(60, 64, 64, 67), "imperfect verticals are not parallel perfect motion")
	assert.False(t, music.ParallelMotion(67, 62, 60, 62), "perfect verticals in contrary motion are legal")
}

// TestContraryMotion pins the signed-delta-product rule.
func TestContraryMotion(t *testing.T) {
	assert.True(t, music.ContraryMotion(60, 64, 64, 62), "voices diverge")
	assert.False(t, music.ContraryMotion(60, 64, 62, 64), "voices move together")
	assert.False(t, music.ContraryMotion(60, 60, 62, 64), "oblique motion is not contrary")
}

// TestSuspensionIntervalSets pins the fourth-species interval sets.
func TestSuspensionIntervalSets(t *testing.T) {
	for _, interval := range []int{3, 4, 5, 7, 8, 9} {
		assert.True(t, music.IsValidSuspensionPreparation(interval), "preparation %d", interval)
	}
	assert.False(t, music.IsValidSuspensionPreparation(music.Tritone))

	for _, interval := range []int{1, 2, 5, 6} {
		assert.True(t, music.IsValidSuspension(interval), "suspension %d", interval)
	}
	assert.False(t, music.IsValidSuspension(music.MinorThird))

	for _, interval := range []int{3, 4, 7, 8, 9} {
		assert.True(t, music.IsValidSuspensionResolution(interval), "resolution %d", interval)
	}
	assert.False(t, music.IsValidSuspensionResolution(music.PerfectFourth))

	assert.True(t, music.IsDownwardResolution(65, 64))
	assert.False(t, music.IsDownwardResolution(64, 65))
	assert.False(t, music.IsDownwardResolution(64, 64))
}

// TestIsStrongBeat confirms beat strength derives from position
// integrality.
func TestIsStrongBeat(t *testing.T) {
	assert.True(t, music.IsStrongBeat(music.Whole(0)))
	assert.True(t, music.IsStrongBeat(music.Whole(3)))
	assert.True(t, music.IsStrongBeat(music.MustRational(4, 2)), "normalized 4/2 is the whole beat 2")
	assert.False(t, music.IsStrongBeat(music.MustRational(1, 2)))
	assert.False(t, music.IsStrongBeat(music.MustRational(7, 4)))
}
