// Package main provides the LZ77 stream decompressor command line interface.
//
// It mirrors the hardware verification harness: compress a file into
// tokens.mem / expected.mem / meta.mem vector files, decompress a vector
// directory back to bytes with verification, or render a staging-buffer
// occupancy trace.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Jobanpreet-Brar/LZ77-AXI-Stream-Decompressor/lz77"
)

func printVersion() {
	fmt.Printf("lz77 %s (Go)\n", lz77.Version)
}

func printHelp(progName string) {
	fmt.Printf("LZ77 Stream Decompressor (v%s)\n", lz77.Version)
	fmt.Println("=================================")
	fmt.Println()
	fmt.Println("Token format: fixed-width word {distance, length, literal},")
	fmt.Println("literal in the low 8 bits. A token expands to length+1 bytes")
	fmt.Println("(1 byte when length is 0).")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s <input> <outdir> [D L K]\n", progName)
	fmt.Printf("  %s -d <vectordir> [D L K]\n", progName)
	fmt.Printf("  %s -g <vectordir> <out.svg> [D L K]\n", progName)
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -d             Decompress a vector directory (default is compress)")
	fmt.Println("  -g             Render staging-buffer occupancy trace as SVG")
	fmt.Println("  -h, --help     Show this help message")
	fmt.Println("  -v, --version  Show version information")
	fmt.Println()
	fmt.Println("Parameters (optional, defaults 4 4 4):")
	fmt.Println("  D              Distance field width in bits (1-12)")
	fmt.Println("  L              Length field width in bits (1-12)")
	fmt.Println("  K              Window address width: window is 2^K bytes (1-16)")
	fmt.Println()
	fmt.Println("Output:")
	fmt.Println("  Compress:   <outdir>/tokens.mem, expected.mem, meta.mem")
	fmt.Println("  Decompress: <vectordir>/output.bin")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Printf("  %s data.bin vectors/            # compress with defaults\n", progName)
	fmt.Printf("  %s data.bin vectors/ 8 6 8      # 8-bit dist, 6-bit len, 256B window\n", progName)
	fmt.Printf("  %s -d vectors/                  # decompress and verify\n", progName)
	fmt.Printf("  %s -g vectors/ trace.svg        # occupancy trace\n", progName)
	fmt.Println()
}

// parseParams reads the optional D, L, K positional arguments.
func parseParams(args []string) (lz77.Params, error) {
	p := lz77.DefaultParams()
	if len(args) == 0 {
		return p, nil
	}
	if len(args) != 3 {
		return p, fmt.Errorf("expected 3 parameter arguments (D L K), got %d", len(args))
	}

	values := make([]int, 3)
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return p, fmt.Errorf("parameter %q is not a number", arg)
		}
		values[i] = v
	}
	p.DistBits = values[0]
	p.LenBits = values[1]
	p.WindowBits = values[2]

	return p, p.Validate()
}

func doCompress(inputPath, outDir string, p lz77.Params) int {
	inputData, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Cannot open input file: %s\n", inputPath)
		return 1
	}
	if len(inputData) == 0 {
		fmt.Fprintln(os.Stderr, "Error: Input file is empty")
		return 1
	}

	tokens, err := lz77.CompressToTokens(inputData, p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Compression failed: %v\n", err)
		return 1
	}

	// Self-check before emitting vectors
	decoded, err := lz77.DecompressTokens(tokens, p, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Round-trip check failed: %v\n", err)
		return 1
	}
	if !bytes.Equal(decoded, inputData) {
		fmt.Fprintln(os.Stderr, "Error: Round-trip check produced different bytes")
		return 1
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Cannot create output directory: %s\n", outDir)
		return 1
	}
	if err := lz77.WriteVectors(outDir, p, tokens, inputData); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Cannot write vectors: %v\n", err)
		return 1
	}

	packedBytes := (len(tokens)*p.TokenWidth() + 7) / 8
	ratio := float64(len(inputData)) / float64(packedBytes)
	fmt.Printf("Input:       %s (%d bytes)\n", inputPath, len(inputData))
	fmt.Printf("Output:      %s (%d tokens, %d packed bytes)\n", outDir, len(tokens), packedBytes)
	fmt.Printf("Ratio:       %.2fx\n", ratio)
	fmt.Printf("Parameters:  D=%d, L=%d, window=%d\n", p.DistBits, p.LenBits, p.WindowSize())

	return 0
}

func doDecompress(dir string, p lz77.Params) int {
	tokens, expected, err := lz77.ReadVectors(dir, p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Cannot read vectors: %v\n", err)
		return 1
	}

	outputData, err := lz77.DecompressTokens(tokens, p, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Decompression failed: %v\n", err)
		return 1
	}

	if !bytes.Equal(outputData, expected) {
		fmt.Fprintf(os.Stderr, "Error: Output differs from expected.mem (%d vs %d bytes)\n",
			len(outputData), len(expected))
		return 1
	}

	outputPath := filepath.Join(dir, "output.bin")
	if err := os.WriteFile(outputPath, outputData, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Cannot write output file: %s\n", outputPath)
		return 1
	}

	fmt.Printf("Input:       %s (%d tokens)\n", dir, len(tokens))
	fmt.Printf("Output:      %s (%d bytes, matches expected.mem)\n", outputPath, len(outputData))
	fmt.Printf("Parameters:  D=%d, L=%d, window=%d\n", p.DistBits, p.LenBits, p.WindowSize())

	return 0
}

func doGraph(dir, svgPath string, p lz77.Params) int {
	tokens, _, err := lz77.ReadVectors(dir, p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Cannot read vectors: %v\n", err)
		return 1
	}
	if len(tokens) == 0 {
		fmt.Fprintln(os.Stderr, "Error: No tokens to trace")
		return 1
	}

	samples, err := traceOccupancy(tokens, p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Trace failed: %v\n", err)
		return 1
	}
	if err := renderOccupancy(svgPath, samples); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Cannot render graph: %v\n", err)
		return 1
	}

	fmt.Printf("Input:       %s (%d tokens)\n", dir, len(tokens))
	fmt.Printf("Output:      %s (%d tick samples)\n", svgPath, len(samples))

	return 0
}

// traceOccupancy replays the token stream tick by tick against a consumer
// that is ready only every other tick, recording staging occupancy.
func traceOccupancy(tokens []lz77.Token, p lz77.Params) (map[int]int, error) {
	d, err := lz77.NewDecompressor(p)
	if err != nil {
		return nil, err
	}

	// Worst case: every token expands fully and the consumer takes two
	// ticks per byte.
	limit := 16
	for _, t := range tokens {
		limit += t.ProducedBytes() * 4
	}

	samples := make(map[int]int)
	i := 0
	for tick := 0; tick < limit; tick++ {
		if i < len(tokens) && d.Offer(tokens[i], i == len(tokens)-1) {
			i++
		}
		d.Step()
		if tick%2 == 0 {
			d.Pop()
		}
		samples[tick] = d.Buffered()

		if i == len(tokens) && d.Ready() && d.Buffered() == 0 {
			break
		}
	}
	if i < len(tokens) {
		return nil, fmt.Errorf("trace stalled after %d of %d tokens", i, len(tokens))
	}

	return samples, nil
}

func main() {
	args := os.Args
	progName := args[0]

	if len(args) < 2 || args[1] == "-h" || args[1] == "--help" {
		printHelp(progName)
		if len(args) < 2 {
			os.Exit(1)
		}
		os.Exit(0)
	}

	if args[1] == "-v" || args[1] == "--version" {
		printVersion()
		os.Exit(0)
	}

	switch args[1] {
	case "-d":
		// Decompress mode: -d <vectordir> [D L K]
		if len(args) < 3 {
			fmt.Fprintf(os.Stderr, "Usage: %s -d <vectordir> [D L K]\n", progName)
			os.Exit(1)
		}
		p, err := parseParams(args[3:])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(doDecompress(args[2], p))

	case "-g":
		// Graph mode: -g <vectordir> <out.svg> [D L K]
		if len(args) < 4 {
			fmt.Fprintf(os.Stderr, "Usage: %s -g <vectordir> <out.svg> [D L K]\n", progName)
			os.Exit(1)
		}
		p, err := parseParams(args[4:])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(doGraph(args[2], args[3], p))

	default:
		// Compress mode: <input> <outdir> [D L K]
		if len(args) < 3 {
			fmt.Fprintf(os.Stderr, "Usage: %s <input> <outdir> [D L K]\n", progName)
			os.Exit(1)
		}
		p, err := parseParams(args[3:])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(doCompress(args[1], args[2], p))
	}
}
