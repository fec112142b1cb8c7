package lz77

// engineState enumerates the expansion engine's state machine.
type engineState int

const (
	stateIdle        engineState = iota // Ready for a new token
	stateCopying                        // Emitting back-reference copy bytes
	stateEmitLiteral                    // Emitting the token's trailing literal
)

// Decompressor expands tokens into bytes one tick at a time.
//
// It combines the expansion engine, the admission controller, the history
// window, the output staging buffer and the end-of-stream tracker of the
// hardware decoder. Exactly one token may be admitted per tick via Offer,
// and each Step stages at most one output byte. Admission reserves the
// token's full expansion in the staging buffer, so an admitted token is
// never stalled mid-copy; backpressure is applied upstream by rejecting
// the Offer instead.
//
// The engine performs no semantic validation of tokens: a distance
// reaching beyond the decoded history reads whatever occupies that window
// slot (zero bytes after a reset). See DecompressTokens for a validating
// wrapper.
type Decompressor struct {
	// Configuration (immutable after init)
	params Params

	// Shared state
	window  *HistoryWindow
	staging *StagingBuffer

	// Token in flight
	state     engineState
	distance  int
	remaining int
	literal   byte

	// End-of-stream bookkeeping: finalToken is the producer's flag for the
	// admitted token, pendingBytes counts output bytes it still owes. The
	// marker lands on the byte pushed while pendingBytes == 1.
	finalToken   bool
	pendingBytes int

	produced int64
}

// NewDecompressor creates a decompressor for the given parameters.
func NewDecompressor(p Params) (*Decompressor, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.StagingDepth = p.stagingDepth()

	window, err := NewHistoryWindow(p.WindowBits)
	if err != nil {
		return nil, err
	}
	staging, err := NewStagingBuffer(p.StagingDepth)
	if err != nil {
		return nil, err
	}

	return &Decompressor{
		params:  p,
		window:  window,
		staging: staging,
	}, nil
}

// Params returns the decompressor's configuration, with StagingDepth
// resolved to its effective value.
func (d *Decompressor) Params() Params {
	return d.params
}

// Reset synchronously clears the history window, the staging buffer and
// all pending-token bookkeeping, returning the engine to idle. Replaying
// the same token sequence after a reset reproduces identical output.
func (d *Decompressor) Reset() {
	d.window.Reset()
	d.staging.Reset()
	d.state = stateIdle
	d.distance = 0
	d.remaining = 0
	d.literal = 0
	d.finalToken = false
	d.pendingBytes = 0
	d.produced = 0
}

// Ready reports whether the engine is idle and can accept a token.
func (d *Decompressor) Ready() bool {
	return d.state == stateIdle
}

// CanAdmit reports whether Offer would accept the token: the engine must
// be idle and the staging buffer must have room for the token's full
// expansion.
func (d *Decompressor) CanAdmit(t Token) bool {
	return d.Ready() && d.staging.Free() >= t.ProducedBytes()
}

// Offer presents a token for admission; final marks it as the last token
// of the stream. It returns false when the engine is busy or the staging
// buffer cannot hold the token's expansion, in which case the producer
// retries on a later tick.
//
// A length-0 token emits its literal on the acceptance tick and leaves the
// engine ready for another token immediately. A length-n token produces
// nothing on the acceptance tick and enters the copying state.
func (d *Decompressor) Offer(t Token, final bool) bool {
	if !d.CanAdmit(t) {
		return false
	}

	d.finalToken = final
	d.pendingBytes = t.ProducedBytes()

	if t.Length == 0 {
		d.emit(t.Literal)
		return true
	}

	d.distance = t.Distance
	d.remaining = t.Length
	d.literal = t.Literal
	d.state = stateCopying
	return true
}

// Step advances the engine one tick, staging at most one output byte.
// It returns true if a byte was staged; false means the engine is idle.
func (d *Decompressor) Step() bool {
	switch d.state {
	case stateCopying:
		// Read before write: the copied byte is appended to the window so
		// overlapping back-references (distance < length) replicate the
		// repeating pattern byte by byte.
		d.emit(d.window.ReadBack(d.distance))
		d.remaining--
		if d.remaining == 0 {
			d.state = stateEmitLiteral
		}
		return true

	case stateEmitLiteral:
		d.emit(d.literal)
		d.state = stateIdle
		return true
	}

	return false
}

// emit stages one output byte, tags it with the end-of-stream marker when
// it is the last byte owed by a final token, and appends it to the history
// window.
func (d *Decompressor) emit(b byte) {
	d.staging.Push(StagedByte{
		Byte:        b,
		EndOfStream: d.finalToken && d.pendingBytes == 1,
	})
	d.window.Write(b)
	d.pendingBytes--
	d.produced++
}

// Pop drains the oldest staged byte. ok is false when nothing is staged.
func (d *Decompressor) Pop() (e StagedByte, ok bool) {
	return d.staging.Pop()
}

// Peek exposes the next staged byte without consuming it.
func (d *Decompressor) Peek() (e StagedByte, ok bool) {
	return d.staging.Peek()
}

// Buffered returns the number of bytes waiting in the staging buffer.
func (d *Decompressor) Buffered() int {
	return d.staging.Len()
}

// FreeSpace returns the staging slots available for admission.
func (d *Decompressor) FreeSpace() int {
	return d.staging.Free()
}

// Produced returns the total number of bytes staged since the last reset.
func (d *Decompressor) Produced() int64 {
	return d.produced
}
