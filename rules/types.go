package rules

import (
	"errors"

	"github.com/rpalermodrums/counterpoint/music"
)

// ErrUnknownSpecies indicates a Species value outside First..Fifth was
// passed to ValidatorFor.
var ErrUnknownSpecies = errors.New("rules: unknown species")

// Validator checks a counterpoint line against a cantus firmus and
// returns whether the line is legal plus the ordered list of violated
// checks. Validators are pure and never return errors; an empty
// violation list is the only success state.
type Validator func(counterpoint, cantusFirmus music.Voice) (bool, []string)

// validators dispatches each species to its rule checker.
var validators = map[music.Species]Validator{
	music.First:  CheckFirstSpecies,
	music.Second: CheckSecondSpecies,
	music.Third:  CheckThirdSpecies,
	music.Fourth: CheckFourthSpecies,
	music.Fifth:  CheckFifthSpecies,
}

// ValidatorFor returns the rule validator for the given species, or
// ErrUnknownSpecies for values outside First..Fifth.
func ValidatorFor(species music.Species) (Validator, error) {
	v, ok := validators[species]
	if !ok {
		return nil, ErrUnknownSpecies
	}
	return v, nil
}
