package lz77

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestVectorsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	p := DefaultParams()

	if err := WriteVectors(dir, p, goldenTokens, []byte(goldenOutput)); err != nil {
		t.Fatalf("WriteVectors error: %v", err)
	}

	tokens, expected, err := ReadVectors(dir, p)
	if err != nil {
		t.Fatalf("ReadVectors error: %v", err)
	}

	if len(tokens) != len(goldenTokens) {
		t.Fatalf("Expected %d tokens, got %d", len(goldenTokens), len(tokens))
	}
	for i, want := range goldenTokens {
		if tokens[i] != want {
			t.Errorf("Token %d: expected %+v, got %+v", i, want, tokens[i])
		}
	}
	if !bytes.Equal(expected, []byte(goldenOutput)) {
		t.Errorf("Expected %q, got %q", goldenOutput, expected)
	}
}

func TestVectorsFileFormat(t *testing.T) {
	dir := t.TempDir()
	p := DefaultParams()

	tokens := []Token{{Distance: 2, Length: 2, Literal: 'A'}}
	if err := WriteVectors(dir, p, tokens, []byte{'A'}); err != nil {
		t.Fatalf("WriteVectors error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, TokensMemFile))
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if got := strings.TrimSpace(string(data)); got != "2241" {
		t.Errorf("tokens.mem: expected \"2241\", got %q", got)
	}

	data, err = os.ReadFile(filepath.Join(dir, MetaMemFile))
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	lines := strings.Fields(string(data))
	if len(lines) != 2 || lines[0] != "00000001" || lines[1] != "00000001" {
		t.Errorf("meta.mem: got %q", lines)
	}
}

func TestVectorsMetaMismatch(t *testing.T) {
	dir := t.TempDir()
	p := DefaultParams()

	if err := WriteVectors(dir, p, goldenTokens, []byte(goldenOutput)); err != nil {
		t.Fatalf("WriteVectors error: %v", err)
	}

	// Truncate the token file; the meta counts no longer match
	if err := os.WriteFile(filepath.Join(dir, TokensMemFile), []byte("0031\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := ReadVectors(dir, p); err == nil {
		t.Error("Expected count mismatch error")
	}
}

func TestVectorsMissingFile(t *testing.T) {
	if _, _, err := ReadVectors(t.TempDir(), DefaultParams()); err == nil {
		t.Error("Expected error for missing vector files")
	}
}

func TestGoldenVectorReplay(t *testing.T) {
	// Full harness flow: compress, emit vectors, read them back, decode and
	// compare against the expected bytes.
	dir := t.TempDir()
	p := DefaultParams()
	input := []byte(goldenOutput)

	tokens, err := CompressToTokens(input, p)
	if err != nil {
		t.Fatalf("CompressToTokens error: %v", err)
	}
	if err := WriteVectors(dir, p, tokens, input); err != nil {
		t.Fatalf("WriteVectors error: %v", err)
	}

	readTokens, expected, err := ReadVectors(dir, p)
	if err != nil {
		t.Fatalf("ReadVectors error: %v", err)
	}
	out, err := DecompressTokens(readTokens, p, nil)
	if err != nil {
		t.Fatalf("DecompressTokens error: %v", err)
	}
	if !bytes.Equal(out, expected) {
		t.Errorf("Expected %q, got %q", expected, out)
	}
}
