package alias_test

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-decimate/dsp/decimator"
	"github.com/cwbudde/algo-decimate/measure/alias"
)

func TestMeasurePassband(t *testing.T) {
	tests := []struct {
		factor int
		bin    int
		maxDev float64
	}{
		{factor: 2, bin: 64, maxDev: 0.05},
		{factor: 4, bin: 32, maxDev: 0.1},
		{factor: 64, bin: 2, maxDev: 0.15},
	}

	for _, tt := range tests {
		r, err := alias.Measure(tt.factor, tt.bin)
		if err != nil {
			t.Fatalf("Measure(%d, %d): %v", tt.factor, tt.bin, err)
		}

		if math.Abs(r.GainDB) > tt.maxDev {
			t.Errorf("factor %d bin %d: gain %.3f dB, want within %.2f dB of flat",
				tt.factor, tt.bin, r.GainDB, tt.maxDev)
		}
	}
}

func TestMeasureTransitionBand(t *testing.T) {
	// Bin 512 sits at a quarter of the input rate, the half-band
	// symmetry point, where the response is exactly half.
	r, err := alias.Measure(2, 512)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}

	if math.Abs(r.GainDB-(-6.02)) > 0.15 {
		t.Errorf("gain at quarter rate = %.3f dB, want -6.02", r.GainDB)
	}
}

func TestMeasureStopband(t *testing.T) {
	for _, bin := range []int{832, 960} {
		r, err := alias.Measure(2, bin)
		if err != nil {
			t.Fatalf("Measure(2, %d): %v", bin, err)
		}

		if r.GainDB > -60 {
			t.Errorf("bin %d: gain %.2f dB, want at most -60 dB", bin, r.GainDB)
		}

		if math.Abs(r.InputLevelDB-(-6.02)) > 0.1 {
			t.Errorf("bin %d: input level %.2f dB, want -6.02", bin, r.InputLevelDB)
		}
	}
}

func TestMeasureErrors(t *testing.T) {
	if _, err := alias.Measure(3, 64); err != decimator.ErrInvalidFactor {
		t.Errorf("factor 3: err = %v, want ErrInvalidFactor", err)
	}

	if _, err := alias.Measure(2, -1); err != alias.ErrBinRange {
		t.Errorf("bin -1: err = %v, want ErrBinRange", err)
	}

	if _, err := alias.Measure(2, alias.FFTSize); err != alias.ErrBinRange {
		t.Errorf("bin %d: err = %v, want ErrBinRange", alias.FFTSize, err)
	}
}

func TestSweep(t *testing.T) {
	bins := []int{64, 512, 960}

	results, err := alias.Sweep(2, bins)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}

	if len(results) != len(bins) {
		t.Fatalf("got %d results, want %d", len(results), len(bins))
	}

	for i, r := range results {
		if r.Bin != bins[i] || r.Factor != 2 {
			t.Fatalf("result %d: factor %d bin %d, want factor 2 bin %d",
				i, r.Factor, r.Bin, bins[i])
		}
	}

	// Response falls monotonically from passband through the
	// transition into the stopband.
	if results[0].GainDB <= results[1].GainDB || results[1].GainDB <= results[2].GainDB {
		t.Errorf("gains not decreasing: %.2f, %.2f, %.2f dB",
			results[0].GainDB, results[1].GainDB, results[2].GainDB)
	}
}
