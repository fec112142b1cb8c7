package lz77

// Compress encodes data into a packed token stream decodable by Decompress.
func Compress(data []byte, p Params) ([]byte, error) {
	tokens, err := CompressToTokens(data, p)
	if err != nil {
		return nil, err
	}

	writer, err := NewTokenWriter(p)
	if err != nil {
		return nil, err
	}
	for _, t := range tokens {
		if err := writer.WriteToken(t); err != nil {
			return nil, err
		}
	}

	return writer.Bytes(), nil
}

// CompressToTokens encodes data as a token sequence using a greedy
// longest-match search over the sliding window, mirroring the reference
// vector generator: a match needs at least one following byte for the
// trailing literal, and an unmatched position emits a (0,0,literal) token.
func CompressToTokens(data []byte, p Params) ([]Token, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	maxLen := p.MaxLength()
	maxDist := p.MaxDistance()

	var tokens []Token
	i := 0
	for i < len(data) {
		bestLen := 0
		bestDist := 0

		start := i - maxDist
		if start < 0 {
			start = 0
		}
		for j := start; j < i; j++ {
			matchLen := 0
			// Match source stays strictly inside already-emitted data;
			// the decoder handles overlap, but the generator never emits it.
			for i+matchLen < len(data) &&
				j+matchLen < i &&
				matchLen < maxLen &&
				data[j+matchLen] == data[i+matchLen] {
				matchLen++
			}

			// Need at least one byte after the match for the literal.
			if matchLen > bestLen && i+matchLen < len(data) {
				bestLen = matchLen
				bestDist = i - j
			}
		}

		if bestLen > 0 {
			tokens = append(tokens, Token{
				Distance: bestDist,
				Length:   bestLen,
				Literal:  data[i+bestLen],
			})
			i += bestLen + 1
		} else {
			tokens = append(tokens, Token{Literal: data[i]})
			i++
		}
	}

	return tokens, nil
}
