package plugboard

import (
	"errors"
	"strings"

	"github.com/sergeii/enigma/pkg/enigma/alphabet"
)

var (
	ErrMalformedPair = errors.New("plugboard: pair must be two distinct letters")
	ErrLetterReused  = errors.New("plugboard: letter wired into more than one pair")
)

// Plugboard is an involutive partial pairing over the alphabet:
// a letter is either wired to exactly one partner or maps to itself.
// Built once at machine construction, immutable afterwards
type Plugboard struct {
	wiring [alphabet.Size]int
}

// New builds a plugboard from letter-pair tokens such as "AB".
// Tokens are case-insensitive; no tokens yield the identity board.
// A letter wired into two pairs would silently double-map, so reuse is rejected
func New(pairs ...string) (Plugboard, error) {
	var pb Plugboard
	for i := range pb.wiring {
		pb.wiring[i] = i
	}
	for _, pair := range pairs {
		token := strings.ToUpper(strings.TrimSpace(pair))
		if len(token) != 2 || !alphabet.IsLetter(token[0]) || !alphabet.IsLetter(token[1]) {
			return Plugboard{}, ErrMalformedPair
		}
		a, b := alphabet.Index(token[0]), alphabet.Index(token[1])
		if a == b {
			return Plugboard{}, ErrMalformedPair
		}
		if pb.wiring[a] != a || pb.wiring[b] != b {
			return Plugboard{}, ErrLetterReused
		}
		pb.wiring[a], pb.wiring[b] = b, a
	}
	return pb, nil
}

func MustNew(pairs ...string) Plugboard {
	pb, err := New(pairs...)
	if err != nil {
		panic(err)
	}
	return pb
}

// Swap maps a letter to its plugged partner, or to itself when unplugged.
// The machine applies it on both the input and the output stage of the signal path
func (pb Plugboard) Swap(in int) int {
	return pb.wiring[in]
}
