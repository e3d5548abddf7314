// Package refine post-optimizes the pitch choices of a single
// counterpoint line with a per-note dynamic-programming pass.
//
// The table is indexed by [counterpoint note][candidate pitch 0..127];
// each cell holds the best cumulative fitness achievable ending at that
// pitch, where the per-note fitness is the genetic fitness of the
// singleton pair formed by the candidate note and its governing
// cantus-firmus note (a locally scoped legality check, not the
// whole-line validator).
//
// Recurrence:
//
//	dp[i][p] = max(dp[i−1]) + localFitness(p, cf[i])
//
// Deliberately, the "best previous" term does not track which prior
// pitch produced it, and backtracking likewise selects each row's
// best-scoring pitch independent of the chosen successor — the decoupled
// recurrence of the reference behavior, preserved as-is rather than
// upgraded to a path-tracking DP.
//
// Two guards keep the pass total:
//
//	– each counterpoint note maps to its governing cantus-firmus note by
//	  onset position, so the refined line always preserves the input
//	  line's length, durations and positions;
//	– a row whose maximum is 0 (no pitch achieves positive local
//	  fitness — the case for every species whose ratio gate cannot hold
//	  on singleton voices) keeps the input pitch, so refinement degrades
//	  to the identity instead of flattening the line.
//
// Refinement is effective for 1:1 textures; for the others it is a
// deliberate no-op under the singleton scoring above.
package refine
