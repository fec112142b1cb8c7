package lz77

import (
	"bytes"
	"testing"
)

var benchInput = bytes.Repeat([]byte("Lorem ipsum dolor sit amet, consectetur adipiscing elit. "), 256)

var benchParams = Params{DistBits: 8, LenBits: 6, WindowBits: 8}

func BenchmarkCompress(b *testing.B) {
	b.SetBytes(int64(len(benchInput)))
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := Compress(benchInput, benchParams); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecompress(b *testing.B) {
	packed, err := Compress(benchInput, benchParams)
	if err != nil {
		b.Fatal(err)
	}

	b.SetBytes(int64(len(benchInput)))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Decompress(packed, benchParams, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecompressTokens(b *testing.B) {
	tokens, err := CompressToTokens(benchInput, benchParams)
	if err != nil {
		b.Fatal(err)
	}

	b.SetBytes(int64(len(benchInput)))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := DecompressTokens(tokens, benchParams, LenientOptions()); err != nil {
			b.Fatal(err)
		}
	}
}
