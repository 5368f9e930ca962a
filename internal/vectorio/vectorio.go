// Package vectorio reads and writes the text sample-vector format used
// by the decimate command: one line per cycle, sixteen whitespace
// separated integers forming eight (re, im) sample pairs. Lines that
// are blank or start with '#' are skipped.
package vectorio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-decimate/dsp/decimator"
	"github.com/cwbudde/algo-decimate/dsp/fixed"
)

const fieldsPerBlock = 2 * decimator.SSR

// ReadParams reads a parameter file: the first non-blank, non-comment
// line holds the decimation factor as a decimal integer.
func ReadParams(r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)

	line := 0
	for sc.Scan() {
		line++

		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		factor, err := strconv.Atoi(text)
		if err != nil {
			return 0, fmt.Errorf("vectorio: line %d: bad factor %q: %w", line, text, err)
		}

		return factor, nil
	}

	if err := sc.Err(); err != nil {
		return 0, err
	}

	return 0, fmt.Errorf("vectorio: no factor found")
}

// ReadBlocks reads all sample blocks from r.
func ReadBlocks(r io.Reader) ([]decimator.Block, error) {
	var blocks []decimator.Block

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)

	line := 0
	for sc.Scan() {
		line++

		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != fieldsPerBlock {
			return nil, fmt.Errorf("vectorio: line %d: %d fields, want %d", line, len(fields), fieldsPerBlock)
		}

		var blk decimator.Block
		for i := range blk {
			re, err := parseSample(fields[2*i])
			if err != nil {
				return nil, fmt.Errorf("vectorio: line %d: %w", line, err)
			}

			im, err := parseSample(fields[2*i+1])
			if err != nil {
				return nil, fmt.Errorf("vectorio: line %d: %w", line, err)
			}

			blk[i] = fixed.Complex{Re: re, Im: im}
		}

		blocks = append(blocks, blk)
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	return blocks, nil
}

func parseSample(s string) (fixed.Sample, error) {
	v, err := strconv.ParseInt(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("bad sample %q: %w", s, err)
	}

	return fixed.Sample(v), nil
}

// WriteBlocks writes blocks to w, one line per block. Only the first
// used slots of each block carry data; used selects how many pairs to
// emit per line.
func WriteBlocks(w io.Writer, blocks []decimator.Block, used int) error {
	if used < 1 || used > decimator.SSR {
		return fmt.Errorf("vectorio: %d used slots out of range", used)
	}

	bw := bufio.NewWriter(w)

	for _, blk := range blocks {
		for i := 0; i < used; i++ {
			if i > 0 {
				if _, err := fmt.Fprint(bw, " "); err != nil {
					return err
				}
			}

			if _, err := fmt.Fprintf(bw, "%6d %6d", blk[i].Re, blk[i].Im); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(bw); err != nil {
			return err
		}
	}

	return bw.Flush()
}
