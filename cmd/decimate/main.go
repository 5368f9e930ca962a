// Command decimate runs sample vectors through the decimation cascade.
//
// Usage:
//
//	decimate -params params.txt -in input.txt [-out output.txt]
//
// The parameter file holds the decimation factor on its first
// non-comment line. The input file carries one cycle per line, sixteen
// integers forming eight complex (re, im) raw s16.15 sample pairs. One
// output line is written per valid output cycle, holding as many pairs
// as the selected factor yields per cycle.
//
// Examples:
//
//	decimate -params params.txt -in vectors.txt
//	decimate -params params.txt -in vectors.txt -out result.txt
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-decimate/dsp/decimator"
	"github.com/cwbudde/algo-decimate/internal/vectorio"
)

func main() {
	paramsPath := flag.String("params", "", "parameter file with the decimation factor")
	inPath := flag.String("in", "", "input sample vector file")
	outPath := flag.String("out", "", "output file (default stdout)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: decimate -params file -in file [-out file]\n\n")
		fmt.Fprintf(os.Stderr, "Runs sample vectors through the decimation cascade.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *paramsPath == "" || *inPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*paramsPath, *inPath, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(paramsPath, inPath, outPath string) error {
	factor, err := readFactor(paramsPath)
	if err != nil {
		return err
	}

	if !decimator.ValidFactor(factor) {
		return fmt.Errorf("factor %d: %w", factor, decimator.ErrInvalidFactor)
	}

	blocks, err := readBlocks(inPath)
	if err != nil {
		return err
	}

	out, err := process(factor, blocks)
	if err != nil {
		return err
	}

	used := decimator.SSR / factor
	if used < 1 {
		used = 1
	}

	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()

		w = f
	}

	return vectorio.WriteBlocks(w, out, used)
}

func readFactor(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return vectorio.ReadParams(f)
}

func readBlocks(path string) ([]decimator.Block, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return vectorio.ReadBlocks(f)
}

func process(factor int, in []decimator.Block) ([]decimator.Block, error) {
	dec, err := decimator.New()
	if err != nil {
		return nil, err
	}

	var out []decimator.Block
	for _, blk := range in {
		if res, ok := dec.Process(factor, true, blk); ok {
			out = append(out, res)
		}
	}

	return out, nil
}
