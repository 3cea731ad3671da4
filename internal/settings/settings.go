package settings

import (
	"errors"

	"github.com/sergeii/enigma/pkg/enigma/machine"
	"github.com/sergeii/enigma/pkg/enigma/rotor"
)

var ErrThreeValuesRequired = errors.New("settings: exactly three values are required")

// Settings carries a single session's machine configuration the way it is
// collected from the outside world: plain integers and letter-pair tokens.
// Rotor order, positions and ring settings are listed left to right
type Settings struct {
	Rotors    [3]int   `validate:"dive,min=0,max=2"`
	Positions [3]int   `validate:"dive,min=0,max=25"`
	Rings     [3]int   `validate:"dive,min=0,max=25"`
	Pairs     []string `validate:"letterpairs"`
}

// Default selects wheels I, II, III at zero positions
// with zeroed ring settings and an empty plugboard
func Default() Settings {
	return Settings{
		Rotors: [3]int{0, 1, 2},
	}
}

// FromSlices assembles settings from loosely sized inputs, such as
// repeated command line flags. Each list must hold exactly three values
func FromSlices(rotors, positions, rings []int, pairs []string) (Settings, error) {
	if len(rotors) != 3 || len(positions) != 3 || len(rings) != 3 {
		return Settings{}, ErrThreeValuesRequired
	}
	s := Settings{Pairs: pairs}
	copy(s.Rotors[:], rotors)
	copy(s.Positions[:], positions)
	copy(s.Rings[:], rings)
	return s, nil
}

// MachineConfig converts the settings into an engine configuration
func (s Settings) MachineConfig() machine.Config {
	return machine.Config{
		Rotors: [3]rotor.ID{
			rotor.ID(s.Rotors[0]),
			rotor.ID(s.Rotors[1]),
			rotor.ID(s.Rotors[2]),
		},
		Positions: s.Positions,
		Rings:     s.Rings,
		Pairs:     s.Pairs,
	}
}

// HasDuplicateRotors reports whether the same wheel
// is mounted into more than one slot
func (s Settings) HasDuplicateRotors() bool {
	return s.Rotors[0] == s.Rotors[1] || s.Rotors[0] == s.Rotors[2] || s.Rotors[1] == s.Rotors[2]
}
