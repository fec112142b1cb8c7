package lz77

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Vector file names used by the hardware verification harness.
const (
	TokensMemFile   = "tokens.mem"   // Token words, one hex word per line
	ExpectedMemFile = "expected.mem" // Expected output bytes, one hex byte per line
	MetaMemFile     = "meta.mem"     // Token count and output length as 32-bit hex
)

// WriteVectors emits tokens.mem, expected.mem and meta.mem into dir in the
// harness's hex-line format: token words padded to the wire width, output
// bytes as two hex digits, and two 32-bit counts (tokens, output bytes).
func WriteVectors(dir string, p Params, tokens []Token, expected []byte) error {
	if err := p.Validate(); err != nil {
		return err
	}
	hexDigits := (p.TokenWidth() + 3) / 4

	var tb strings.Builder
	for i, t := range tokens {
		word, err := p.Pack(t)
		if err != nil {
			return fmt.Errorf("token %d: %w", i, err)
		}
		fmt.Fprintf(&tb, "%0*X\n", hexDigits, word)
	}
	if err := os.WriteFile(filepath.Join(dir, TokensMemFile), []byte(tb.String()), 0644); err != nil {
		return err
	}

	var eb strings.Builder
	for _, b := range expected {
		fmt.Fprintf(&eb, "%02X\n", b)
	}
	if err := os.WriteFile(filepath.Join(dir, ExpectedMemFile), []byte(eb.String()), 0644); err != nil {
		return err
	}

	meta := fmt.Sprintf("%08X\n%08X\n", len(tokens), len(expected))
	return os.WriteFile(filepath.Join(dir, MetaMemFile), []byte(meta), 0644)
}

// ReadVectors parses a vector directory written by WriteVectors (or the
// original harness generator) and returns the token sequence and the
// expected output bytes.
func ReadVectors(dir string, p Params) ([]Token, []byte, error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}

	meta, err := readHexLines(filepath.Join(dir, MetaMemFile))
	if err != nil {
		return nil, nil, err
	}
	if len(meta) != 2 {
		return nil, nil, fmt.Errorf("%s: expected 2 entries, got %d", MetaMemFile, len(meta))
	}
	numTokens := int(meta[0])
	expLen := int(meta[1])

	words, err := readHexLines(filepath.Join(dir, TokensMemFile))
	if err != nil {
		return nil, nil, err
	}
	if len(words) != numTokens {
		return nil, nil, fmt.Errorf("%s: expected %d tokens, got %d", TokensMemFile, numTokens, len(words))
	}
	tokens := make([]Token, len(words))
	for i, w := range words {
		tokens[i] = p.Unpack(uint32(w))
	}

	values, err := readHexLines(filepath.Join(dir, ExpectedMemFile))
	if err != nil {
		return nil, nil, err
	}
	if len(values) != expLen {
		return nil, nil, fmt.Errorf("%s: expected %d bytes, got %d", ExpectedMemFile, expLen, len(values))
	}
	expected := make([]byte, len(values))
	for i, v := range values {
		if v > 0xFF {
			return nil, nil, fmt.Errorf("%s: value %X exceeds one byte", ExpectedMemFile, v)
		}
		expected[i] = byte(v)
	}

	return tokens, expected, nil
}

// readHexLines parses one hex value per non-empty line.
func readHexLines(path string) ([]uint64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var values []uint64
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		v, err := strconv.ParseUint(line, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", filepath.Base(path), i+1, err)
		}
		values = append(values, v)
	}

	return values, nil
}
