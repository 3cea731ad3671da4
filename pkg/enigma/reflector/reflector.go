package reflector

import (
	"github.com/sergeii/enigma/pkg/enigma/alphabet"
)

// Wiring of the standard UKW-B reflector.
// The table is its own inverse and maps no letter to itself,
// which is what guarantees a keystroke never encrypts to the same letter
const wiringB = "YRUHQSLDPXNGOKMIEBFZCWVJAT"

// Reflector terminates the forward signal path and
// sends the signal back through the rotors
type Reflector struct {
	wiring [alphabet.Size]int
}

// B returns the standard reflector used by the Enigma I machine
func B() Reflector {
	var rf Reflector
	for i := 0; i < alphabet.Size; i++ {
		rf.wiring[i] = alphabet.Index(wiringB[i])
	}
	return rf
}

func (rf Reflector) Reflect(in int) int {
	return rf.wiring[in]
}
