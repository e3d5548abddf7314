package counterpoint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	counterpoint "github.com/rpalermodrums/counterpoint"
	"github.com/rpalermodrums/counterpoint/genetic"
	"github.com/rpalermodrums/counterpoint/music"
)

// cantus builds a whole-note cantus firmus at integral positions.
func cantus(pitches ...int) []music.Note {
	line := make([]music.Note, len(pitches))
	for i, p := range pitches {
		line[i] = music.Note{
			Pitch:    p,
			Duration: music.Whole(1),
			Position: music.MustRational(int64(i), 1),
		}
	}
	return line
}

// testOptions keeps end-to-end runs cheap and reproducible.
func testOptions() genetic.Options {
	return genetic.DefaultOptions(
		genetic.WithPopulationSize(24),
		genetic.WithMaxGenerations(10),
		genetic.WithSeed(42),
	)
}

// TestGenerate_EmptyCantusFirmus fails fast on an empty input.
func TestGenerate_EmptyCantusFirmus(t *testing.T) {
	line, err := counterpoint.Generate(nil, music.First, music.Ionian, testOptions())
	assert.Nil(t, line)
	assert.ErrorIs(t, err, counterpoint.ErrEmptyCantusFirmus)
}

// TestGenerate_PositionsNotIncreasing rejects out-of-order onsets.
func TestGenerate_PositionsNotIncreasing(t *testing.T) {
	cf := cantus(60, 62)
	cf[1].Position = music.MustRational(0, 1)

	line, err := counterpoint.Generate(cf, music.First, music.Ionian, testOptions())
	assert.Nil(t, line)
	assert.ErrorIs(t, err, counterpoint.ErrPositionsNotIncreasing)
}

// TestGenerate_NonPositiveDuration rejects zero-length notes.
func TestGenerate_NonPositiveDuration(t *testing.T) {
	cf := cantus(60, 62)
	cf[0].Duration = music.MustRational(0, 1)

	line, err := counterpoint.Generate(cf, music.First, music.Ionian, testOptions())
	assert.Nil(t, line)
	assert.ErrorIs(t, err, counterpoint.ErrNonPositiveDuration)
}

// TestGenerate_PropagatesOptionErrors surfaces search-option sentinels.
func TestGenerate_PropagatesOptionErrors(t *testing.T) {
	opts := testOptions()
	opts.PopulationSize = 0

	_, err := counterpoint.Generate(cantus(60, 62, 64), music.First, music.Ionian, opts)
	assert.ErrorIs(t, err, genetic.ErrBadPopulationSize)
}

// TestGenerate_FirstSpeciesShape checks the end-to-end 1:1 contract: one
// counterpoint note per cantus-firmus note, sharing its duration and
// onset.
func TestGenerate_FirstSpeciesShape(t *testing.T) {
	cf := cantus(60, 62, 64, 62, 60)

	line, err := counterpoint.Generate(cf, music.First, music.Ionian, testOptions())
	require.NoError(t, err)
	require.Len(t, line, len(cf))

	for i, n := range line {
		assert.True(t, n.Duration.Equal(cf[i].Duration), "note %d", i)
		assert.True(t, n.Position.Equal(cf[i].Position), "note %d", i)
		assert.GreaterOrEqual(t, n.Pitch, music.MinPitch, "note %d", i)
		assert.LessOrEqual(t, n.Pitch, music.MaxPitch, "note %d", i)
	}
}

// TestGenerate_Deterministic reproduces the identical line under a fixed
// seed.
func TestGenerate_Deterministic(t *testing.T) {
	cf := cantus(60, 62, 64)

	a, err := counterpoint.Generate(cf, music.First, music.Ionian, testOptions())
	require.NoError(t, err)
	b, err := counterpoint.Generate(cf, music.First, music.Ionian, testOptions())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
