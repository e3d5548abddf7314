package music_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpalermodrums/counterpoint/music"
)

// TestNewRational_Normalizes verifies gcd reduction and sign placement.
func TestNewRational_Normalizes(t *testing.T) {
	r, err := music.NewRational(2, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(1), r.Num(), "2/4 should reduce to 1/2")
	assert.Equal(t, int64(2), r.Den())

	r, err = music.NewRational(3, -6)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), r.Num(), "sign moves to the numerator")
	assert.Equal(t, int64(2), r.Den(), "denominator stays positive")
}

// TestNewRational_ZeroDenominator verifies the sentinel.
func TestNewRational_ZeroDenominator(t *testing.T) {
	_, err := music.NewRational(1, 0)
	assert.ErrorIs(t, err, music.ErrZeroDenominator)
}

// TestMustRational_PanicsOnZeroDenominator confirms the Must variant
// panics instead of returning the sentinel.
func TestMustRational_PanicsOnZeroDenominator(t *testing.T) {
	assert.Panics(t, func() { music.MustRational(1, 0) })
}

// TestRational_Arithmetic exercises Add, Sub and Div on the beat-grid
// values the engine actually uses.
func TestRational_Arithmetic(t *testing.T) {
	half := music.MustRational(1, 2)
	quarter := music.MustRational(1, 4)

	assert.True(t, half.Add(half).Equal(music.Whole(1)), "1/2 + 1/2 == 1")
	assert.True(t, half.Sub(quarter).Equal(quarter), "1/2 − 1/4 == 1/4")
	assert.True(t, music.Whole(1).Div(2).Equal(half), "1 ÷ 2 == 1/2")
	assert.True(t, music.Whole(1).Div(4).Equal(quarter), "1 ÷ 4 == 1/4")
}

// TestRational_CmpAndPredicates covers ordering and the beat predicates.
func TestRational_CmpAndPredicates(t *testing.T) {
	half := music.MustRational(1, 2)
	threeHalves := music.MustRational(3, 2)

	assert.Equal(t, -1, half.Cmp(music.Whole(1)))
	assert.Equal(t, 1, threeHalves.Cmp(music.Whole(1)))
	assert.Equal(t, 0, half.Cmp(music.MustRational(2, 4)))

	assert.True(t, music.Whole(0).IsZero())
	assert.True(t, music.Whole(2).IsInteger())
	assert.False(t, half.IsInteger())
	assert.True(t, half.Positive())
	assert.False(t, music.Whole(0).Positive())
}

// TestRational_ZeroValue confirms the zero value behaves as 0/1.
func TestRational_ZeroValue(t *testing.T) {
	var r music.Rational
	assert.Equal(t, int64(0), r.Num())
	assert.Equal(t, int64(1), r.Den())
	assert.True(t, r.IsInteger())
	assert.True(t, r.Add(music.Whole(1)).Equal(music.Whole(1)))
}

// TestRational_String covers both render forms.
func TestRational_String(t *testing.T) {
	assert.Equal(t, "2", music.Whole(2).String())
	assert.Equal(t, "1/2", music.MustRational(1, 2).String())
}
