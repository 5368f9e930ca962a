package halfband

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-decimate/dsp/fixed"
)

// Taps is the prototype filter length.
const Taps = 31

// CenterTap is the index of the only nonzero odd-indexed tap.
const CenterTap = Taps / 2

// prototype is the floating-point half-band design. Quantization to
// s18.17 happens once, at package initialization.
var prototype = [Taps]float64{
	-0.001503, 0.000000, 0.003822, 0.000000, -0.008293, 0.000000,
	0.015862, 0.000000, -0.028404, 0.000000, 0.050323, 0.000000,
	-0.097603, 0.000000, 0.315392, 0.500000, 0.315392, 0.000000,
	-0.097603, 0.000000, 0.050323, 0.000000, -0.028404, 0.000000,
	0.015862, 0.000000, -0.008293, 0.000000, 0.003822, 0.000000,
	-0.001503,
}

var quantized [Taps]fixed.Coeff

func init() {
	for i, c := range prototype {
		quantized[i] = fixed.CoeffFromFloat(c)
	}
}

// Prototype returns a copy of the quantized s18.17 prototype taps.
func Prototype() []fixed.Coeff {
	out := make([]fixed.Coeff, Taps)
	copy(out, quantized[:])
	return out
}

// PrototypeFloat returns a copy of the floating-point prototype taps.
func PrototypeFloat() []float64 {
	out := make([]float64, Taps)
	copy(out, prototype[:])
	return out
}

// Decompose splits the quantized prototype into phases polyphase
// sub-vectors: phase p holds taps h[r*phases+p], zero-padded to a
// uniform length of ceil(Taps/phases) so that padding taps still occupy
// their delay-line position.
func Decompose(phases int) ([][]fixed.Coeff, error) {
	if phases < 1 || phases > Taps {
		return nil, fmt.Errorf("halfband: invalid phase count %d", phases)
	}

	subTaps := (Taps + phases - 1) / phases

	out := make([][]fixed.Coeff, phases)
	for p := range out {
		sub := make([]fixed.Coeff, subTaps)
		for r := 0; r < subTaps; r++ {
			if idx := r*phases + p; idx < Taps {
				sub[r] = quantized[idx]
			}
		}
		out[p] = sub
	}

	return out, nil
}

// Response computes the prototype's complex frequency response at the
// given frequency for the given sample rate.
func Response(freq, sampleRate float64) complex128 {
	w := 2 * math.Pi * freq / sampleRate

	var h complex128
	for k, c := range prototype {
		h += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}

	return h
}

// MagnitudeDB returns the prototype's magnitude response in dB.
func MagnitudeDB(freq, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(Response(freq, sampleRate)))
}
