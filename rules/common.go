package rules

import (
	"github.com/rpalermodrums/counterpoint/music"
)

// Shared violation messages for the begin/end gates.
const (
	msgBeginPerfect = "Counterpoint should begin with a perfect consonance"
	msgEndPerfect   = "Counterpoint should end with a perfect consonance"
)

// appendEndpointChecks verifies the opening and closing verticals are
// perfect consonances and appends one message per failed gate.
// Both voices must be non-empty; callers guard that.
func appendEndpointChecks(violations []string, cp, cf music.Voice) []string {
	if !music.IsPerfectConsonance(music.Interval(cp[0].Pitch, cf[0].Pitch)) {
		violations = append(violations, msgBeginPerfect)
	}
	if !music.IsPerfectConsonance(music.Interval(cp[len(cp)-1].Pitch, cf[len(cf)-1].Pitch)) {
		violations = append(violations, msgEndPerfect)
	}
	return violations
}

// verdict folds a violation list into the (valid, violations) pair every
// validator returns.
func verdict(violations []string) (bool, []string) {
	return len(violations) == 0, violations
}
