package lattice

import "errors"

// Sentinel errors for lattice construction and queries.
var (
	// ErrEmptyCantus indicates Build was called with an empty cantus firmus.
	ErrEmptyCantus = errors.New("lattice: cantus firmus is empty")

	// ErrBadPath indicates a path query referenced a node index outside
	// its layer or a path whose length is not the layer count.
	ErrBadPath = errors.New("lattice: path does not fit the lattice")

	// ErrNoEdge indicates a path query crossed a layer boundary with no
	// edge between the named nodes.
	ErrNoEdge = errors.New("lattice: no edge between consecutive path nodes")
)

// Edge is a weighted transition to a node in the next layer.
type Edge struct {
	// To is the candidate index within the successor layer.
	To int

	// Weight is the preference weight of the transition (≥ 1.0).
	Weight float64
}

// Base and bonus factors for edge weights.
const (
	baseWeight           = 1.0
	contraryMotionBonus  = 1.2
	imperfectConsonBonus = 1.1
)

// maxMelodicLeap is the largest legal leap between consecutive
// counterpoint pitches, in semitones.
const maxMelodicLeap = 12
