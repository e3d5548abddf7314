package genetic_test

import (
	"math/rand"
	"testing"

	"github.com/rpalermodrums/counterpoint/genetic"
	"github.com/rpalermodrums/counterpoint/lattice"
	"github.com/rpalermodrums/counterpoint/music"
)

// benchCantus builds an n-measure cantus firmus oscillating around C4.
func benchCantus(n int) music.Voice {
	pitches := [...]int{60, 62, 64, 65, 64, 62}
	cf := make(music.Voice, n)
	for i := 0; i < n; i++ {
		cf[i] = music.Note{
			Pitch:    pitches[i%len(pitches)],
			Duration: music.Whole(1),
			Position: music.MustRational(int64(i), 1),
		}
	}
	return cf
}

// BenchmarkFitness measures one first-species fitness evaluation on an
// 8-measure line.
func BenchmarkFitness(b *testing.B) {
	cf := benchCantus(8)
	lat, err := lattice.Build(cf, music.First, music.Ionian)
	if err != nil {
		b.Fatalf("Build failed: %v", err)
	}
	line := lat.Walk(rand.New(rand.NewSource(1)))
	opts := genetic.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		genetic.Fitness(line, cf, music.First, music.Ionian, opts)
	}
}

// BenchmarkMutate measures the per-line mutation operator at the default
// rate.
func BenchmarkMutate(b *testing.B) {
	line := benchCantus(64)
	rng := rand.New(rand.NewSource(1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		genetic.Mutate(line, genetic.DefaultMutationRate, rng)
	}
}

// BenchmarkEvolve_Small measures a full small search: population 16 over
// 8 generations on an 8-measure cantus firmus.
func BenchmarkEvolve_Small(b *testing.B) {
	cf := benchCantus(8)
	lat, err := lattice.Build(cf, music.First, music.Ionian)
	if err != nil {
		b.Fatalf("Build failed: %v", err)
	}
	opts := genetic.DefaultOptions(
		genetic.WithPopulationSize(16),
		genetic.WithMaxGenerations(8),
		genetic.WithSeed(1),
	)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := genetic.Evolve(lat, cf, music.First, music.Ionian, opts); err != nil {
			b.Fatalf("Evolve failed: %v", err)
		}
	}
}
