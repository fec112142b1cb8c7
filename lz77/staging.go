package lz77

import "errors"

// StagedByte is one output staging buffer entry: a decoded byte plus the
// end-of-stream marker carried by the final byte of the final token.
type StagedByte struct {
	Byte        byte
	EndOfStream bool
}

// StagingBuffer is a bounded FIFO of staged bytes decoupling the engine's
// one-byte-per-tick production from a consumer that may apply backpressure.
// Entries drain strictly in production order.
type StagingBuffer struct {
	entries []StagedByte
	head    int
	count   int
}

// NewStagingBuffer creates a buffer holding up to depth entries.
func NewStagingBuffer(depth int) (*StagingBuffer, error) {
	if depth < 1 {
		return nil, errors.New("staging depth must be at least 1")
	}
	return &StagingBuffer{entries: make([]StagedByte, depth)}, nil
}

// Cap returns the buffer capacity.
func (sb *StagingBuffer) Cap() int {
	return len(sb.entries)
}

// Len returns the number of staged entries.
func (sb *StagingBuffer) Len() int {
	return sb.count
}

// Free returns the number of unoccupied slots.
func (sb *StagingBuffer) Free() int {
	return len(sb.entries) - sb.count
}

// Push appends an entry. It returns false when the buffer is full; the
// admission controller reserves space up front, so the engine never
// observes a failed push.
func (sb *StagingBuffer) Push(e StagedByte) bool {
	if sb.count == len(sb.entries) {
		return false
	}
	sb.entries[(sb.head+sb.count)%len(sb.entries)] = e
	sb.count++
	return true
}

// Pop removes and returns the oldest entry. ok is false when empty.
func (sb *StagingBuffer) Pop() (e StagedByte, ok bool) {
	if sb.count == 0 {
		return StagedByte{}, false
	}
	e = sb.entries[sb.head]
	sb.head = (sb.head + 1) % len(sb.entries)
	sb.count--
	return e, true
}

// Peek returns the oldest entry without removing it.
func (sb *StagingBuffer) Peek() (e StagedByte, ok bool) {
	if sb.count == 0 {
		return StagedByte{}, false
	}
	return sb.entries[sb.head], true
}

// Reset discards all staged entries.
func (sb *StagingBuffer) Reset() {
	sb.head = 0
	sb.count = 0
}
