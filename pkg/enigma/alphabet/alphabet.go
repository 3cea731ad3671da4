package alphabet

// Size is the number of contacts on every wheel of the machine
const Size = 26

// IsLetter reports whether b is an uppercase latin letter,
// the only kind of input the machine enciphers
func IsLetter(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

// Index converts an uppercase letter into its zero-based alphabet index
func Index(b byte) int {
	return int(b - 'A')
}

// Letter converts a zero-based alphabet index back into an uppercase letter
func Letter(i int) byte {
	return byte('A' + i)
}

// Mod reduces n into [0, Size).
// Unlike the % operator, the result is never negative
func Mod(n int) int {
	return ((n % Size) + Size) % Size
}
