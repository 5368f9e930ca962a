// Package alias measures the frequency response of the decimation
// cascade with single-tone probes: a complex exponential is pushed
// through the cascade and the input and output levels are compared on
// windowed spectra.
package alias

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-dsp/dsp/core"
	"github.com/cwbudde/algo-dsp/dsp/window"
	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-decimate/dsp/decimator"
	"github.com/cwbudde/algo-decimate/dsp/fixed"
)

// FFTSize is the analysis frame length, in samples, for both the input
// and the decimated output. Probe frequencies are expressed as bins of
// this frame at the input rate, so every probe lands on an exact bin.
const FFTSize = 2048

// Amplitude is the probe tone amplitude. Half scale keeps the cascade
// clear of saturation at every stage.
const Amplitude = 0.5

// ErrBinRange is returned when a probe bin falls outside the frame.
var ErrBinRange = errors.New("alias: frequency bin out of range")

// ErrShortCapture is returned when the cascade produced fewer output
// samples than one analysis frame. It indicates an internal sizing bug.
var ErrShortCapture = errors.New("alias: not enough output samples captured")

// Result is one single-tone measurement. Levels are dB full scale;
// GainDB is the cascade's gain at the probe frequency, so a passband
// probe reads near zero and a stopband probe reads the attenuation of
// the energy that aliases into the output band.
type Result struct {
	Factor int
	Bin    int

	InputLevelDB  float64
	OutputLevelDB float64
	GainDB        float64
}

// Measure probes one factor at one input-rate frequency bin.
func Measure(factor, bin int) (Result, error) {
	if !decimator.ValidFactor(factor) {
		return Result{}, decimator.ErrInvalidFactor
	}

	if bin < 0 || bin >= FFTSize {
		return Result{}, ErrBinRange
	}

	dec, err := decimator.New()
	if err != nil {
		return Result{}, err
	}

	lat, err := decimator.Latency(factor)
	if err != nil {
		return Result{}, err
	}

	per := decimator.SSR / factor
	if per < 1 {
		per = 1
	}

	// One output frame plus latency, plus margin so the startup
	// transient falls off the front of the captured frame.
	blocks := FFTSize*factor/decimator.SSR + lat + 8*factor

	freq := float64(bin) / FFTSize

	input := make([]fixed.Complex, 0, FFTSize)
	output := make([]fixed.Complex, 0, blocks*per)

	for n := 0; n < blocks; n++ {
		var blk decimator.Block
		for i := range blk {
			ph := 2 * math.Pi * freq * float64(n*decimator.SSR+i)
			blk[i] = fixed.ComplexFromFloats(Amplitude*math.Cos(ph), Amplitude*math.Sin(ph))
		}

		if len(input) < FFTSize {
			input = append(input, blk[:]...)
		}

		if res, ok := dec.Process(factor, true, blk); ok {
			output = append(output, res[:per]...)
		}
	}

	if len(output) < FFTSize {
		return Result{}, ErrShortCapture
	}

	inLevel, err := peakLevelDB(input[:FFTSize])
	if err != nil {
		return Result{}, err
	}

	outLevel, err := peakLevelDB(output[len(output)-FFTSize:])
	if err != nil {
		return Result{}, err
	}

	return Result{
		Factor:        factor,
		Bin:           bin,
		InputLevelDB:  inLevel,
		OutputLevelDB: outLevel,
		GainDB:        outLevel - inLevel,
	}, nil
}

// Sweep probes one factor at a list of input-rate frequency bins.
func Sweep(factor int, bins []int) ([]Result, error) {
	results := make([]Result, 0, len(bins))
	for _, bin := range bins {
		r, err := Measure(factor, bin)
		if err != nil {
			return nil, err
		}

		results = append(results, r)
	}

	return results, nil
}

// peakLevelDB windows one frame, transforms it and returns the peak bin
// amplitude in dB full scale, corrected for the window's coherent gain.
func peakLevelDB(frame []fixed.Complex) (float64, error) {
	n := len(frame)

	coeffs := window.Generate(window.TypeHann, n)

	sum := 0.0
	for _, w := range coeffs {
		sum += w
	}

	re := make([]float64, n)
	im := make([]float64, n)
	for i, s := range frame {
		re[i] = s.Re.Float()
		im[i] = s.Im.Float()
	}

	vecmath.MulBlockInPlace(re, coeffs)
	vecmath.MulBlockInPlace(im, coeffs)

	in := make([]complex128, n)
	for i := range in {
		in[i] = complex(re[i], im[i])
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return 0, err
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return 0, err
	}

	for i, c := range out {
		re[i] = real(c)
		im[i] = imag(c)
	}

	mags := make([]float64, n)
	vecmath.Magnitude(mags, re, im)

	peak := 0.0
	for _, m := range mags {
		if m > peak {
			peak = m
		}
	}

	return core.LinearToDB(peak / sum), nil
}
