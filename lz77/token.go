package lz77

import "fmt"

// Token is one unit of compressed input: a back-reference of Length bytes
// starting Distance bytes back in the history, followed by one trailing
// literal. Length = 0 means a pure literal token (Distance is ignored and
// should be 0).
type Token struct {
	Distance int  // Bytes back from the current write position
	Length   int  // Bytes to copy before the trailing literal (0 = literal only)
	Literal  byte // Trailing literal byte
}

// ProducedBytes returns how many output bytes the token expands to:
// 1 for a pure literal, Length+1 otherwise. The admission controller uses
// this to reserve staging space before the engine starts a token.
func (t Token) ProducedBytes() int {
	if t.Length == 0 {
		return 1
	}
	return t.Length + 1
}

// Pack encodes the token into a fixed-width wire word.
//
// Bit layout, low to high: [7:0] literal, [7+L:8] length, top D bits
// distance. Pack returns an error when a field does not fit its width.
func (p Params) Pack(t Token) (uint32, error) {
	if t.Distance < 0 || t.Distance >= 1<<p.DistBits {
		return 0, fmt.Errorf("distance %d does not fit in %d bits", t.Distance, p.DistBits)
	}
	if t.Length < 0 || t.Length >= 1<<p.LenBits {
		return 0, fmt.Errorf("length %d does not fit in %d bits", t.Length, p.LenBits)
	}

	word := uint32(t.Distance)<<(p.LenBits+8) | uint32(t.Length)<<8 | uint32(t.Literal)
	return word, nil
}

// Unpack decodes a wire word into a token. Any bit pattern is structurally
// valid; semantic validity of the fields is the producer's responsibility.
func (p Params) Unpack(word uint32) Token {
	return Token{
		Distance: int(word>>(p.LenBits+8)) & (1<<p.DistBits - 1),
		Length:   int(word>>8) & (1<<p.LenBits - 1),
		Literal:  byte(word),
	}
}
