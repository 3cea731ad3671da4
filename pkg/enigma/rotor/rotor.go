package rotor

import (
	"errors"

	"github.com/sergeii/enigma/pkg/enigma/alphabet"
)

// ID selects one of the historical Enigma I wheels
type ID int

const (
	I ID = iota
	II
	III
)

// Wiring and turnover notches of wheels I-III as they were manufactured.
// wiring[i] is the letter the i-th entry contact is soldered to
var wheels = [...]struct { // nolint: gochecknoglobals
	wiring string
	notch  byte
}{
	{wiring: "EKMFLGDQVZNTOWYHXUSPAIBRCJ", notch: 'Q'},
	{wiring: "AJDKSIRUXBLHWTMCQGZNPYFVOE", notch: 'E'},
	{wiring: "BDFHJLCPRTXVZNYEIWGAKMUSQO", notch: 'V'},
}

var (
	ErrUnknownWheel       = errors.New("rotor: unknown wheel")
	ErrPositionOutOfRange = errors.New("rotor: position out of range")
	ErrRingOutOfRange     = errors.New("rotor: ring setting out of range")
)

// Rotor is a single mounted wheel: fixed wiring plus the mutable
// rotational position and the session-fixed ring setting.
// The inverse permutation is precomputed at construction,
// so the backward pass is a table lookup rather than a search
type Rotor struct {
	forward  [alphabet.Size]int
	backward [alphabet.Size]int
	notch    int
	ring     int
	position int
}

// New mounts the selected wheel at the given initial position and ring setting.
// Out-of-range values are rejected rather than wrapped: silently reducing them
// would desynchronize two machines that are meant to share the same settings
func New(id ID, position, ring int) (Rotor, error) {
	if id < I || id > III {
		return Rotor{}, ErrUnknownWheel
	}
	if position < 0 || position >= alphabet.Size {
		return Rotor{}, ErrPositionOutOfRange
	}
	if ring < 0 || ring >= alphabet.Size {
		return Rotor{}, ErrRingOutOfRange
	}
	wheel := wheels[id]
	r := Rotor{
		notch:    alphabet.Index(wheel.notch),
		ring:     ring,
		position: position,
	}
	for i := 0; i < alphabet.Size; i++ {
		contact := alphabet.Index(wheel.wiring[i])
		r.forward[i] = contact
		r.backward[contact] = i
	}
	return r, nil
}

func MustNew(id ID, position, ring int) Rotor {
	r, err := New(id, position, ring)
	if err != nil {
		panic(err)
	}
	return r
}

// Forward substitutes a signal travelling towards the reflector.
// The entry contact is offset by the wheel's current rotation
// relative to its ring setting
func (r *Rotor) Forward(in int) int {
	return r.forward[alphabet.Mod(in+r.position-r.ring)]
}

// Backward substitutes a signal on its return path.
// Exact inverse of Forward for any fixed position and ring setting
func (r *Rotor) Backward(in int) int {
	return alphabet.Mod(r.backward[in] - r.position + r.ring)
}

// AtNotch reports whether the wheel currently sits at its turnover position
func (r *Rotor) AtNotch() bool {
	return r.position == r.notch
}

// Step advances the wheel by a single position
func (r *Rotor) Step() {
	r.position = (r.position + 1) % alphabet.Size
}

func (r *Rotor) Position() int {
	return r.position
}
