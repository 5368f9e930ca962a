package decimator

import (
	"errors"

	"github.com/cwbudde/algo-decimate/dsp/fixed"
)

// SSR is the number of complex samples carried per input and output cycle.
const SSR = 8

// Block is one cycle's worth of samples. Slot i holds the sample
// x(SSR*cycle + i), ascending in time.
type Block [SSR]fixed.Complex

// ErrInvalidFactor is returned when a decimation factor is not one of
// the supported powers of two.
var ErrInvalidFactor = errors.New("decimator: unsupported decimation factor")

// Factors returns the supported decimation factors in ascending order.
func Factors() []int {
	return []int{1, 2, 4, 8, 16, 32, 64}
}

// ValidFactor reports whether d is a supported decimation factor.
func ValidFactor(d int) bool {
	return d == 1 || d == 2 || d == 4 || d == 8 || d == 16 || d == 32 || d == 64
}

type config struct {
	phaseVerify bool
}

// Option configures a Decimator.
type Option func(*config)

// WithPhaseVerify additionally computes the polyphase output phases
// that are normally discarded, so every block slot of the wide stages
// carries a filtered sample. Useful for inspection through the raw
// stage probes; the dispatched outputs are unaffected.
func WithPhaseVerify() Option {
	return func(c *config) { c.phaseVerify = true }
}

// Decimator is a six-stage cascaded half-band decimator for complex
// streams arriving eight samples per cycle. All stages run every cycle
// regardless of the selected factor, so the factor can vary per call;
// after a factor change the new output is only deterministic once the
// pipeline has been flushed, either by Reset or by feeding enough
// valid cycles to cover the new factor's latency.
type Decimator struct {
	ssr8 *polyStage
	ssr4 *polyStage
	ssr2 *polyStage
	sc16 *scalarStage
	sc32 *scalarStage
	sc64 *scalarStage

	raw8 [8]fixed.Complex
	raw4 [4]fixed.Complex
	raw2 [2]fixed.Complex

	sc16Out fixed.Complex
	sc32Out fixed.Complex
	sc64Out fixed.Complex
}

// New builds a Decimator with all stages in their reset state.
func New(opts ...Option) (*Decimator, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		d   Decimator
		err error
	)

	if d.ssr8, err = newPolyStage(8, cfg.phaseVerify); err != nil {
		return nil, err
	}
	if d.ssr4, err = newPolyStage(4, cfg.phaseVerify); err != nil {
		return nil, err
	}
	if d.ssr2, err = newPolyStage(2, cfg.phaseVerify); err != nil {
		return nil, err
	}
	if d.sc16, err = newScalarStage(); err != nil {
		return nil, err
	}
	if d.sc32, err = newScalarStage(); err != nil {
		return nil, err
	}
	if d.sc64, err = newScalarStage(); err != nil {
		return nil, err
	}

	return &d, nil
}

// Process advances the whole cascade one cycle and returns the output
// block for the requested factor. Unsupported factors yield a zero
// block that is never valid; the cascade still advances.
//
// Output packing per factor, with out[0] earliest in time:
//
//	1:  out[0..7], valid on every valid input cycle
//	2:  out[0..3]
//	4:  out[0..1]
//	8, 16, 32, 64: out[0]
//
// Unused slots are zero.
func (d *Decimator) Process(factor int, valid bool, in Block) (Block, bool) {
	a, aValid := d.ssr8.tick(valid, in[:])
	copy(d.raw8[:], a)

	var b4 [4]fixed.Complex
	for i := range b4 {
		b4[i] = a[2*i]
	}

	b, bValid := d.ssr4.tick(aValid, b4[:])
	copy(d.raw4[:], b)

	var c2 [2]fixed.Complex
	for i := range c2 {
		c2[i] = b[2*i]
	}

	c, cValid := d.ssr2.tick(bValid, c2[:])
	copy(d.raw2[:], c)

	var v16, v32, v64 bool
	d.sc16Out, v16 = d.sc16.tick(cValid, c[0])
	d.sc32Out, v32 = d.sc32.tick(v16, d.sc16Out)
	d.sc64Out, v64 = d.sc64.tick(v32, d.sc32Out)

	var out Block

	switch factor {
	case 1:
		return in, valid
	case 2:
		for i := 0; i < 4; i++ {
			out[i] = d.raw8[2*i]
		}
		return out, aValid
	case 4:
		out[0] = d.raw4[0]
		out[1] = d.raw4[2]
		return out, bValid
	case 8:
		out[0] = d.raw2[0]
		return out, cValid
	case 16:
		out[0] = d.sc16Out
		return out, v16
	case 32:
		out[0] = d.sc32Out
		return out, v32
	case 64:
		out[0] = d.sc64Out
		return out, v64
	default:
		return Block{}, false
	}
}

// Reset returns every stage to its initial state.
func (d *Decimator) Reset() {
	d.ssr8.reset()
	d.ssr4.reset()
	d.ssr2.reset()
	d.sc16.reset()
	d.sc32.reset()
	d.sc64.reset()

	d.raw8 = [8]fixed.Complex{}
	d.raw4 = [4]fixed.Complex{}
	d.raw2 = [2]fixed.Complex{}
	d.sc16Out = fixed.Complex{}
	d.sc32Out = fixed.Complex{}
	d.sc64Out = fixed.Complex{}
}

// Latency returns the number of cycles between the first valid input
// cycle and the first valid output cycle for the given factor.
func Latency(factor int) (int, error) {
	switch factor {
	case 1:
		return 0, nil
	case 2:
		return 6, nil
	case 4:
		return 16, nil
	case 8:
		return 34, nil
	case 16:
		return 66, nil
	case 32:
		return 98, nil
	case 64:
		return 130, nil
	default:
		return 0, ErrInvalidFactor
	}
}

// RawSSR8 returns the most recent output block of the first stage.
func (d *Decimator) RawSSR8() [8]fixed.Complex { return d.raw8 }

// RawSSR4 returns the most recent output block of the second stage.
func (d *Decimator) RawSSR4() [4]fixed.Complex { return d.raw4 }

// RawSSR2 returns the most recent output block of the third stage.
func (d *Decimator) RawSSR2() [2]fixed.Complex { return d.raw2 }
