package lz77

import (
	"errors"
	"fmt"
)

// Version is the current version of the Go implementation.
const Version = "1.0.0"

// Default field widths matching the reference hardware configuration:
// 4-bit distance, 4-bit length, 16-byte window, 16-entry staging buffer.
const (
	DefaultDistBits   = 4
	DefaultLenBits    = 4
	DefaultWindowBits = 4
)

// Width limits for construction-time validation.
const (
	MaxDistBits   = 12
	MaxLenBits    = 12
	MaxWindowBits = 16
)

// Params holds the construction-time constants of a decoder instance.
//
// A token word is DistBits+LenBits+8 bits wide; the history window holds
// 2^WindowBits bytes. StagingDepth is the output staging buffer capacity
// in bytes; zero selects 2^LenBits, the smallest depth that can admit a
// maximal-length token in one shot.
type Params struct {
	DistBits     int // Distance field width in bits
	LenBits      int // Length field width in bits
	WindowBits   int // Window address width: capacity is 2^WindowBits bytes
	StagingDepth int // Output staging buffer depth (0 = 2^LenBits)
}

// DefaultParams returns the reference hardware configuration.
func DefaultParams() Params {
	return Params{
		DistBits:   DefaultDistBits,
		LenBits:    DefaultLenBits,
		WindowBits: DefaultWindowBits,
	}
}

// Validate checks that all field widths are in range.
func (p Params) Validate() error {
	if p.DistBits < 1 || p.DistBits > MaxDistBits {
		return fmt.Errorf("DistBits must be between 1 and %d, got %d", MaxDistBits, p.DistBits)
	}
	if p.LenBits < 1 || p.LenBits > MaxLenBits {
		return fmt.Errorf("LenBits must be between 1 and %d, got %d", MaxLenBits, p.LenBits)
	}
	if p.WindowBits < 1 || p.WindowBits > MaxWindowBits {
		return fmt.Errorf("WindowBits must be between 1 and %d, got %d", MaxWindowBits, p.WindowBits)
	}
	if p.StagingDepth < 0 {
		return errors.New("StagingDepth must be non-negative")
	}
	return nil
}

// TokenWidth returns the wire width of one token word in bits.
func (p Params) TokenWidth() int {
	return p.DistBits + p.LenBits + 8
}

// WindowSize returns the history window capacity in bytes.
func (p Params) WindowSize() int {
	return 1 << p.WindowBits
}

// MaxLength returns the largest encodable copy length.
func (p Params) MaxLength() int {
	return 1<<p.LenBits - 1
}

// MaxDistance returns the largest usable back-reference distance: the
// distance field limit capped by the window capacity.
func (p Params) MaxDistance() int {
	maxDist := 1<<p.DistBits - 1
	if maxDist > p.WindowSize() {
		maxDist = p.WindowSize()
	}
	return maxDist
}

// stagingDepth returns the effective staging buffer depth.
func (p Params) stagingDepth() int {
	if p.StagingDepth == 0 {
		return 1 << p.LenBits
	}
	return p.StagingDepth
}
