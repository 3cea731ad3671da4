package machine

import (
	"strings"

	"github.com/sergeii/enigma/pkg/enigma/alphabet"
	"github.com/sergeii/enigma/pkg/enigma/plugboard"
	"github.com/sergeii/enigma/pkg/enigma/reflector"
	"github.com/sergeii/enigma/pkg/enigma/rotor"
)

// Rotor slots, left to right as seen by the operator
const (
	left = iota
	middle
	right
)

// Config describes a single cryptographic session:
// the mounted wheel order, initial positions, ring settings and plugboard pairs.
// Positions and rings are listed left to right, matching the rotor order
type Config struct {
	Rotors    [3]rotor.ID
	Positions [3]int
	Rings     [3]int
	Pairs     []string
}

// Machine is a three-rotor Enigma I with a plugboard and the standard reflector.
// It owns all of its mutable state: every enciphered letter advances the
// rotors, so a machine is a single in-memory session and must not be shared
// between goroutines
type Machine struct {
	rotors    [3]rotor.Rotor
	plugboard plugboard.Plugboard
	reflector reflector.Reflector
}

// New assembles a machine from the given session settings.
// Invalid settings - an unknown wheel, an out-of-range position or
// ring setting, a malformed plugboard pair - are rejected outright
func New(cfg Config) (*Machine, error) {
	m := &Machine{
		reflector: reflector.B(),
	}
	for slot := left; slot <= right; slot++ {
		mounted, err := rotor.New(cfg.Rotors[slot], cfg.Positions[slot], cfg.Rings[slot])
		if err != nil {
			return nil, err
		}
		m.rotors[slot] = mounted
	}
	pb, err := plugboard.New(cfg.Pairs...)
	if err != nil {
		return nil, err
	}
	m.plugboard = pb
	return m, nil
}

func MustNew(cfg Config) *Machine {
	m, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return m
}

// step performs the keystroke state transition.
// Both notch checks read the positions as they were before this keystroke,
// so a rotor stepped here can never trigger another turnover within the
// same keystroke
func (m *Machine) step() {
	switch {
	case m.rotors[middle].AtNotch():
		// a middle rotor at its notch carries the left rotor over
		// and steps itself: the double-step anomaly
		m.rotors[left].Step()
		m.rotors[middle].Step()
	case m.rotors[right].AtNotch():
		m.rotors[middle].Step()
	}
	m.rotors[right].Step()
}

// EncryptChar runs a single character through the machine.
// Non-letters pass through untouched and do not advance the rotors.
// For letters, the signal path is: plugboard, rotors right to left,
// reflector, rotors left to right, plugboard again
func (m *Machine) EncryptChar(c byte) byte {
	if !alphabet.IsLetter(c) {
		return c
	}
	m.step()
	in := m.plugboard.Swap(alphabet.Index(c))
	for slot := right; slot >= left; slot-- {
		in = m.rotors[slot].Forward(in)
	}
	in = m.reflector.Reflect(in)
	for slot := left; slot <= right; slot++ {
		in = m.rotors[slot].Backward(in)
	}
	// the plugboard must be applied on the way out as well,
	// or the machine loses its ability to decrypt its own output
	return alphabet.Letter(m.plugboard.Swap(in))
}

// Process uppercases the text and enciphers it character by character.
// Rotor positions advance as a side effect: a second call continues the
// same session and produces different output for the same input
func (m *Machine) Process(text string) string {
	normalized := strings.ToUpper(text)
	var sb strings.Builder
	sb.Grow(len(normalized))
	for i := 0; i < len(normalized); i++ {
		sb.WriteByte(m.EncryptChar(normalized[i]))
	}
	return sb.String()
}

// Positions reports the current rotor positions, left to right
func (m *Machine) Positions() [3]int {
	return [3]int{
		m.rotors[left].Position(),
		m.rotors[middle].Position(),
		m.rotors[right].Position(),
	}
}
