// Package genetic - deterministic RNG policy.
//
// All stochastic operators (seeding walks, selection, crossover cuts,
// mutation trials) draw from a single *rand.Rand created here. The same
// seed therefore reproduces the identical run; no time-based or
// process-global entropy exists anywhere in the engine.
package genetic

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}
