// Package counterpoint_test provides a runnable example for the public
// generation entry point. It is runnable via “go test -run Example”.
package counterpoint_test

import (
	"fmt"

	counterpoint "github.com/rpalermodrums/counterpoint"
	"github.com/rpalermodrums/counterpoint/genetic"
	"github.com/rpalermodrums/counterpoint/music"
)

// ExampleGenerate demonstrates the full pipeline on a five-note cantus
// firmus: lattice seeding, genetic search, then per-note refinement.
// Complexity: dominated by the search loop; see genetic.Evolve.
func ExampleGenerate() {
	// 1) A C4–D4–E4–D4–C4 cantus firmus of whole notes.
	cf := []music.Note{
		{Pitch: 60, Duration: music.Whole(1), Position: music.MustRational(0, 1)},
		{Pitch: 62, Duration: music.Whole(1), Position: music.MustRational(1, 1)},
		{Pitch: 64, Duration: music.Whole(1), Position: music.MustRational(2, 1)},
		{Pitch: 62, Duration: music.Whole(1), Position: music.MustRational(3, 1)},
		{Pitch: 60, Duration: music.Whole(1), Position: music.MustRational(4, 1)},
	}

	// 2) A small, seeded search keeps the example fast and reproducible.
	opts := genetic.DefaultOptions(
		genetic.WithPopulationSize(24),
		genetic.WithMaxGenerations(10),
		genetic.WithSeed(42),
	)

	// 3) Generate a first-species line in Ionian mode.
	line, err := counterpoint.Generate(cf, music.First, music.Ionian, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 4) The 1:1 species yields one counterpoint note per measure.
	fmt.Println(len(line))
	fmt.Println(line[0].Duration.Equal(music.Whole(1)))
	// Output:
	// 5
	// true
}
