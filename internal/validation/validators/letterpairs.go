package validators

import (
	"github.com/go-playground/validator/v10"

	"github.com/sergeii/enigma/pkg/enigma/plugboard"
)

// ValidateLetterPairs accepts a list of plugboard tokens the engine itself
// would accept: pairs of two distinct letters with no letter wired twice
func ValidateLetterPairs(fl validator.FieldLevel) bool {
	pairs, ok := fl.Field().Interface().([]string)
	if !ok {
		return false
	}
	// an absent plugboard is a valid plugboard
	if len(pairs) == 0 {
		return true
	}
	_, err := plugboard.New(pairs...)
	return err == nil
}
