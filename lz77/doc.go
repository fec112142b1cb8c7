// Package lz77 implements a streaming LZ77 token decompressor modeled on a
// synchronous hardware decoder.
//
// The compressed stream is a sequence of fixed-width token words, each packing
// a (distance, length, literal) triple: either a pure literal byte
// (length = 0) or a back-reference that copies length bytes from a bounded
// sliding-window history followed by one trailing literal. A token therefore
// always expands to length+1 bytes (or 1 byte when length = 0).
//
// The core is the Decompressor, a tick-driven state machine with a
// ready/valid admission handshake, a circular history window, and a bounded
// output staging buffer that absorbs consumer backpressure. A token is only
// admitted when the staging buffer can hold its full expansion, so the
// engine never stalls mid-copy. The end-of-stream flag offered with the
// final token is propagated onto the last output byte of that token.
//
// Basic usage:
//
//	// Compress data into a packed token stream
//	packed, err := lz77.Compress(data, lz77.DefaultParams())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Decompress it back
//	decompressed, err := lz77.Decompress(packed, lz77.DefaultParams(), nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Tick-level usage with explicit flow control:
//
//	d, err := lz77.NewDecompressor(params)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d.Offer(tok, isLast) // admission handshake, may return false
//	for d.Step() {
//	    // one output byte staged per step
//	}
//	for {
//	    e, ok := d.Pop()
//	    if !ok {
//	        break
//	    }
//	    consume(e.Byte, e.EndOfStream)
//	}
//
// Invalid back-references (distance = 0 with length > 0, or distance beyond
// the decoded history) are not detected by the engine itself, matching the
// hardware's garbage-in/garbage-out contract. The one-shot Decompress and
// DecompressTokens helpers validate them by default; use LenientOptions to
// reproduce the raw hardware behavior.
package lz77
