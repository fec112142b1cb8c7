package lz77

import (
	"errors"
	"fmt"
)

// ErrTokenStreamEOF is returned when no complete token word remains.
var ErrTokenStreamEOF = errors.New("no complete token word remains")

// TokenWriter serializes tokens as a contiguous MSB-first bit stream of
// fixed-width words. Token words are DistBits+LenBits+8 bits wide and in
// general not byte aligned; the final byte is padded with zero bits.
// The padding is shorter than one word, so a reader never mistakes it for
// a token.
type TokenWriter struct {
	params  Params
	data    []byte
	numBits int
}

// NewTokenWriter creates an empty writer for the given parameters.
func NewTokenWriter(p Params) (*TokenWriter, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &TokenWriter{
		params: p,
		data:   make([]byte, 0, 256),
	}, nil
}

// NumBits returns the number of bits written so far.
func (tw *TokenWriter) NumBits() int {
	return tw.numBits
}

// WriteToken packs the token and appends its word to the stream.
func (tw *TokenWriter) WriteToken(t Token) error {
	word, err := tw.params.Pack(t)
	if err != nil {
		return err
	}

	// MSB-first within the word, first bit to bit position 7 of the byte.
	for i := tw.params.TokenWidth() - 1; i >= 0; i-- {
		byteIndex := tw.numBits / 8
		bitIndex := tw.numBits % 8
		if byteIndex >= len(tw.data) {
			tw.data = append(tw.data, 0)
		}
		if (word>>i)&1 != 0 {
			tw.data[byteIndex] |= 1 << (7 - bitIndex)
		}
		tw.numBits++
	}

	return nil
}

// Bytes returns the packed stream, zero-padded to a byte boundary.
func (tw *TokenWriter) Bytes() []byte {
	out := make([]byte, len(tw.data))
	copy(out, tw.data)
	return out
}

// Reset clears the writer.
func (tw *TokenWriter) Reset() {
	tw.data = tw.data[:0]
	tw.numBits = 0
}

// TokenReader sequentially decodes token words from a packed bit stream
// produced by TokenWriter.
type TokenReader struct {
	params    Params
	data      []byte
	totalBits int
	position  int
}

// NewTokenReader creates a reader over data.
func NewTokenReader(data []byte, p Params) (*TokenReader, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &TokenReader{
		params:    p,
		data:      data,
		totalBits: len(data) * 8,
	}, nil
}

// Remaining returns the number of complete token words left to read.
func (tr *TokenReader) Remaining() int {
	return (tr.totalBits - tr.position) / tr.params.TokenWidth()
}

// ReadToken reads and unpacks the next token word.
func (tr *TokenReader) ReadToken() (Token, error) {
	width := tr.params.TokenWidth()
	if tr.totalBits-tr.position < width {
		return Token{}, fmt.Errorf("%d bits remain, token word is %d: %w",
			tr.totalBits-tr.position, width, ErrTokenStreamEOF)
	}

	var word uint32
	for i := 0; i < width; i++ {
		byteIndex := tr.position / 8
		bitIndex := tr.position % 8
		bit := (tr.data[byteIndex] >> (7 - bitIndex)) & 1
		word = word<<1 | uint32(bit)
		tr.position++
	}

	return tr.params.Unpack(word), nil
}

// ReadAll reads every complete token word in the stream.
func (tr *TokenReader) ReadAll() ([]Token, error) {
	tokens := make([]Token, 0, tr.Remaining())
	for tr.Remaining() > 0 {
		t, err := tr.ReadToken()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, t)
	}
	return tokens, nil
}
