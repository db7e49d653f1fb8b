package types

import "math"

const (
	// BitLength is the width of one packed word.
	BitLength = 17
	// WordSpan is the number of bytes a word accessor always touches.
	WordSpan = 3
	// MaxValue is the largest value a word can hold.
	MaxValue = 1<<BitLength - 1
)

// MaxWords is the longest array whose byte length fits an int.
const MaxWords = (math.MaxInt - 7) / BitLength

// ByteLen returns the number of bytes needed to hold n packed words,
// ceil(n*17/8).
func ByteLen(n int) int {
	return (n*BitLength + 7) >> 3
}

// Locate returns the anchor byte and the start bit of the i-th word.
// Bit 0 is the most significant bit of the anchor byte.
func Locate(i int) (pos int, bit uint8) {
	b := i * BitLength
	return b >> 3, uint8(b & 7)
}
