package lattice

import (
	"math/rand"

	"github.com/rpalermodrums/counterpoint/music"
)

// Lattice is the layered candidate-transition DAG for one generation run.
// Layer i holds the candidate counterpoint notes against cantus-firmus
// note i; edges[i][j] lists the weighted transitions from candidate j of
// layer i into layer i+1.
type Lattice struct {
	cf     music.Voice
	layers []layer
}

// layer couples one position's candidates with their outgoing edges.
type layer struct {
	candidates []music.Note
	edges      [][]Edge // nil for the final layer
}

// Build constructs the lattice for the given cantus firmus, species and
// mode. Returns ErrEmptyCantus for an empty cantus firmus.
//
// Contracts:
//   - every node in layer i carries the position of cantus-firmus note i;
//   - edges connect consecutive layers only;
//   - an edge exists iff the melodic leap is ≤ 12 semitones and the
//     destination vertical is consonant.
//
// Complexity: O(m·k²) for m cantus-firmus notes and k ≤ 15 candidates
// per layer (the in-mode pitches of a ±12-semitone window).
func Build(cantusFirmus music.Voice, species music.Species, mode music.Mode) (*Lattice, error) {
	if len(cantusFirmus) == 0 {
		return nil, ErrEmptyCantus
	}

	l := &Lattice{
		cf:     cantusFirmus.Clone(),
		layers: make([]layer, len(cantusFirmus)),
	}

	// Stage 1 - enumerate candidates per layer.
	var i int
	for i = 0; i < len(cantusFirmus); i++ {
		l.layers[i].candidates = music.PossibleNotes(cantusFirmus[i], species, mode)
	}

	// Stage 2 - connect consecutive layers.
	for i = 0; i+1 < len(cantusFirmus); i++ {
		prevCF := cantusFirmus[i]
		currCF := cantusFirmus[i+1]
		prev := l.layers[i].candidates
		curr := l.layers[i+1].candidates

		edges := make([][]Edge, len(prev))
		var j, k int
		for j = 0; j < len(prev); j++ {
			for k = 0; k < len(curr); k++ {
				if !validTransition(prev[j], curr[k], currCF) {
					continue
				}
				edges[j] = append(edges[j], Edge{
					To:     k,
					Weight: transitionWeight(prev[j], curr[k], prevCF, currCF),
				})
			}
		}
		l.layers[i].edges = edges
	}

	return l, nil
}

// validTransition reports whether moving from candidate prev to candidate
// curr (sounding against cfCurr) is legal: melodic leap at most an octave
// and a consonant destination vertical.
func validTransition(prev, curr, cfCurr music.Note) bool {
	leap := curr.Pitch - prev.Pitch
	if leap < 0 {
		leap = -leap
	}
	if leap > maxMelodicLeap {
		return false
	}
	return music.IsConsonant(music.Interval(curr.Pitch, cfCurr.Pitch))
}

// transitionWeight computes the compounding preference weight of a legal
// transition: 1.0, ×1.2 for contrary motion, ×1.1 for an imperfect
// destination consonance.
func transitionWeight(prev, curr, cfPrev, cfCurr music.Note) float64 {
	w := baseWeight
	if music.ContraryMotion(prev.Pitch, curr.Pitch, cfPrev.Pitch, cfCurr.Pitch) {
		w *= contraryMotionBonus
	}
	if music.IsImperfectConsonance(music.Interval(curr.Pitch, cfCurr.Pitch)) {
		w *= imperfectConsonBonus
	}
	return w
}

// Layers returns the number of position layers (the cantus firmus length).
func (l *Lattice) Layers() int { return len(l.layers) }

// Candidates returns the candidate notes of one layer. The returned slice
// is shared; callers must not mutate it.
func (l *Lattice) Candidates(i int) []music.Note { return l.layers[i].candidates }

// Successors returns the outgoing edges of candidate j in layer i, or nil
// for the final layer and for dead ends. The returned slice is shared;
// callers must not mutate it.
func (l *Lattice) Successors(i, j int) []Edge {
	if l.layers[i].edges == nil {
		return nil
	}
	return l.layers[i].edges[j]
}

// Walk performs one uniform random walk from a uniformly chosen layer-0
// candidate, following outgoing edges until a dead end or the final
// layer, and returns the counterpoint notes visited.
//
// A dead-end walk returns a line shorter than the layer count; the
// species validators' length checks score such lines down, so the walk
// never fails. A lattice whose first layer is empty yields a nil line.
//
// rng must be non-nil; the caller owns seeding (see the genetic package).
//
// Complexity: O(m) draws for m layers.
func (l *Lattice) Walk(rng *rand.Rand) music.Voice {
	if len(l.layers) == 0 || len(l.layers[0].candidates) == 0 {
		return nil
	}

	var (
		line = make(music.Voice, 0, len(l.layers))
		pos  = 0
		node = rng.Intn(len(l.layers[0].candidates))
	)
	line = append(line, l.layers[0].candidates[node])

	for pos+1 < len(l.layers) {
		succ := l.Successors(pos, node)
		if len(succ) == 0 {
			break // dead end; propagate the short line
		}
		node = succ[rng.Intn(len(succ))].To
		pos++
		line = append(line, l.layers[pos].candidates[node])
	}

	return line
}

// PathWeight sums the edge weights along a full path through the lattice.
// path[i] is the candidate index chosen in layer i; its length must equal
// the layer count. Returns ErrBadPath for shape violations and ErrNoEdge
// when two consecutive choices are not connected.
//
// Complexity: O(m·k) with k the successor fan-out per node.
func (l *Lattice) PathWeight(path []int) (float64, error) {
	if len(path) != len(l.layers) {
		return 0, ErrBadPath
	}

	var (
		total float64
		i     int
	)
	for i = 0; i+1 < len(path); i++ {
		if path[i] < 0 || path[i] >= len(l.layers[i].candidates) {
			return 0, ErrBadPath
		}
		found := false
		for _, e := range l.Successors(i, path[i]) {
			if e.To == path[i+1] {
				total += e.Weight
				found = true
				break
			}
		}
		if !found {
			return 0, ErrNoEdge
		}
	}
	if len(path) > 0 {
		last := len(path) - 1
		if path[last] < 0 || path[last] >= len(l.layers[last].candidates) {
			return 0, ErrBadPath
		}
	}

	return total, nil
}
