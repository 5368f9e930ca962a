package mac

import (
	"errors"

	"github.com/cwbudde/algo-decimate/dsp/fixed"
)

// ErrNoTaps indicates an engine was constructed without coefficients.
var ErrNoTaps = errors.New("mac: empty coefficient vector")

// Engine is a systolic FIR multiply-accumulate chain: one multiplier and
// one accumulator register per tap, with a shift-gated tapped delay line.
//
// A sample presented with shift=true at tick t contributes its tap-i
// product to the output at tick t+K+1+i, so the convolution of the K
// most recent samples appears K+1 ticks after the newest one entered.
// Ticks with shift=false clock the arithmetic pipeline but leave the
// delay line untouched, preserving sample history across gaps.
type Engine struct {
	taps []fixed.Coeff

	// Registered state, one element per tap.
	sreg   []fixed.Complex    // tapped delay line, shift-gated
	xr     []fixed.Complex    // registered tap inputs
	accr   []fixed.ComplexAcc // accumulator chain
	shiftr []bool             // shift-enable pipe alongside the data

	// Next-state scratch, reused across ticks.
	sregN   []fixed.Complex
	xrN     []fixed.Complex
	accrN   []fixed.ComplexAcc
	shiftrN []bool
}

// NewEngine creates an engine for the given coefficient vector. The
// coefficients are copied; zero-valued taps still occupy their position
// in the delay line.
func NewEngine(taps []fixed.Coeff) (*Engine, error) {
	if len(taps) == 0 {
		return nil, ErrNoTaps
	}

	k := len(taps)
	e := &Engine{
		taps:    append([]fixed.Coeff(nil), taps...),
		sreg:    make([]fixed.Complex, k),
		xr:      make([]fixed.Complex, k),
		accr:    make([]fixed.ComplexAcc, k),
		shiftr:  make([]bool, k),
		sregN:   make([]fixed.Complex, k),
		xrN:     make([]fixed.Complex, k),
		accrN:   make([]fixed.ComplexAcc, k),
		shiftrN: make([]bool, k),
	}

	return e, nil
}

// Len returns the tap count.
func (e *Engine) Len() int {
	return len(e.taps)
}

// Tick advances the engine by one cycle and returns the accumulator at
// the end of the chain. shift controls whether x enters the delay line.
func (e *Engine) Tick(shift bool, x fixed.Complex) fixed.ComplexAcc {
	k := len(e.taps)

	// Shift-enable pipe and registered tap inputs.
	e.shiftrN[0] = shift
	for i := 1; i < k; i++ {
		e.shiftrN[i] = e.shiftr[i-1]
	}

	copy(e.xrN, e.sreg)

	// Delay line: element 0 loads the input, element i takes the
	// registered output of element i-1, each gated by its own delayed
	// shift flag.
	if shift {
		e.sregN[0] = x
	} else {
		e.sregN[0] = e.sreg[0]
	}

	for i := 1; i < k; i++ {
		if e.shiftr[i-1] {
			e.sregN[i] = e.xr[i-1]
		} else {
			e.sregN[i] = e.sreg[i]
		}
	}

	// Multiplier and accumulator registers.
	e.accrN[0] = fixed.MulComplex(e.xr[0], e.taps[0])
	for i := 1; i < k; i++ {
		e.accrN[i] = fixed.Add(e.accr[i-1], fixed.MulComplex(e.xr[i], e.taps[i]))
	}

	e.sreg, e.sregN = e.sregN, e.sreg
	e.xr, e.xrN = e.xrN, e.xr
	e.accr, e.accrN = e.accrN, e.accr
	e.shiftr, e.shiftrN = e.shiftrN, e.shiftr

	return e.accr[k-1]
}

// Reset clears the delay line and all pipeline registers.
func (e *Engine) Reset() {
	for i := range e.taps {
		e.sreg[i] = fixed.Complex{}
		e.xr[i] = fixed.Complex{}
		e.accr[i] = fixed.ComplexAcc{}
		e.shiftr[i] = false
	}
}

// Latency returns the output latency in ticks relative to the newest
// delay-line sample.
func (e *Engine) Latency() int {
	return len(e.taps) + 1
}
