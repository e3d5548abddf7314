package rules_test

import (
	"github.com/rpalermodrums/counterpoint/music"
)

// wholeLine builds a voice of whole notes at consecutive integral
// positions, the canonical cantus-firmus shape.
func wholeLine(pitches ...int) music.Voice {
	v := make(music.Voice, len(pitches))
	for i, p := range pitches {
		v[i] = music.Note{Pitch: p, Duration: music.Whole(1), Position: music.Whole(int64(i))}
	}
	return v
}

// subdividedLine builds a counterpoint voice of notes with duration
// 1/div beats at consecutive 1/div positions.
func subdividedLine(div int64, pitches ...int) music.Voice {
	v := make(music.Voice, len(pitches))
	step := music.MustRational(1, div)
	for i, p := range pitches {
		v[i] = music.Note{
			Pitch:    p,
			Duration: step,
			Position: music.MustRational(int64(i), div),
		}
	}
	return v
}
