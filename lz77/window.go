package lz77

import "fmt"

// HistoryWindow is a fixed-capacity circular buffer holding the most
// recently emitted bytes, used to resolve back-references.
//
// Capacity is a power of two so the write cursor wraps with a mask.
// Writing past capacity silently overwrites the oldest byte; bounded
// lookback is the intended behavior, not an overflow condition.
type HistoryWindow struct {
	data   []byte
	mask   int
	cursor int
}

// NewHistoryWindow creates a window of 2^bits bytes.
func NewHistoryWindow(bits int) (*HistoryWindow, error) {
	if bits < 1 || bits > MaxWindowBits {
		return nil, fmt.Errorf("window bits must be between 1 and %d, got %d", MaxWindowBits, bits)
	}
	return &HistoryWindow{
		data: make([]byte, 1<<bits),
		mask: 1<<bits - 1,
	}, nil
}

// Size returns the window capacity in bytes.
func (hw *HistoryWindow) Size() int {
	return len(hw.data)
}

// Write appends one byte at the write cursor and advances it.
func (hw *HistoryWindow) Write(b byte) {
	hw.data[hw.cursor&hw.mask] = b
	hw.cursor = (hw.cursor + 1) & hw.mask
}

// ReadBack returns the byte written distance steps ago. Valid for
// 1 <= distance <= Size() when that many bytes have been written since
// the last reset; otherwise it returns whatever occupies the slot.
func (hw *HistoryWindow) ReadBack(distance int) byte {
	return hw.data[(hw.cursor-distance)&hw.mask]
}

// Reset clears the window contents and returns the cursor to zero.
func (hw *HistoryWindow) Reset() {
	for i := range hw.data {
		hw.data[i] = 0
	}
	hw.cursor = 0
}
