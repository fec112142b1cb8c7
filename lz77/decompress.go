package lz77

import (
	"errors"
	"fmt"
)

// Validation errors reported by the one-shot helpers in strict mode.
var (
	ErrZeroDistance   = errors.New("back-reference with zero distance")
	ErrDistanceTooFar = errors.New("back-reference beyond decoded history")
	ErrTokenTooLarge  = errors.New("token expansion exceeds staging capacity")
)

// Options configures the one-shot Decompress helpers.
type Options struct {
	// ValidateBackrefs: if true, a length>0 token with distance 0, or a
	// distance reaching beyond the decoded history (or the window), is an
	// error. If false, such tokens decode to whatever the window holds,
	// matching the hardware's garbage-in/garbage-out contract.
	ValidateBackrefs bool
}

// DefaultOptions returns strict options: invalid back-references are errors.
func DefaultOptions() *Options {
	return &Options{ValidateBackrefs: true}
}

// LenientOptions returns options reproducing the raw hardware behavior:
// no back-reference validation.
func LenientOptions() *Options {
	return &Options{ValidateBackrefs: false}
}

// Decompress decodes a packed token stream produced by Compress.
// Options nil means DefaultOptions (strict back-reference validation).
func Decompress(data []byte, p Params, opts *Options) ([]byte, error) {
	reader, err := NewTokenReader(data, p)
	if err != nil {
		return nil, err
	}

	tokens, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	return DecompressTokens(tokens, p, opts)
}

// DecompressTokens expands a token sequence into bytes, driving the
// tick-level engine with an always-ready consumer. The last token is
// flagged as end of stream.
func DecompressTokens(tokens []Token, p Params, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	d, err := NewDecompressor(p)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(tokens)*2)
	drain := func() {
		for {
			e, ok := d.Pop()
			if !ok {
				break
			}
			out = append(out, e.Byte)
		}
	}

	windowSize := p.WindowSize()
	for i, t := range tokens {
		if opts.ValidateBackrefs && t.Length > 0 {
			if t.Distance == 0 {
				return nil, fmt.Errorf("token %d: %w", i, ErrZeroDistance)
			}
			history := len(out)
			if history > windowSize {
				history = windowSize
			}
			if t.Distance > history {
				return nil, fmt.Errorf("token %d: distance %d, history %d: %w",
					i, t.Distance, history, ErrDistanceTooFar)
			}
		}

		if !d.Offer(t, i == len(tokens)-1) {
			// The consumer drains fully between tokens, so the only way an
			// offer can fail here is a token bigger than the whole buffer.
			return nil, fmt.Errorf("token %d produces %d bytes, staging depth %d: %w",
				i, t.ProducedBytes(), d.Params().StagingDepth, ErrTokenTooLarge)
		}
		drain()
		for !d.Ready() {
			d.Step()
			drain()
		}
	}

	return out, nil
}
