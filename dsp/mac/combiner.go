package mac

import (
	"errors"

	"github.com/cwbudde/algo-decimate/dsp/fixed"
)

// ErrNoLanes indicates a combiner was constructed without input lanes.
var ErrNoLanes = errors.New("mac: combiner needs at least one lane")

// Combiner sums the partial accumulators of one polyphase output phase.
//
// Each lane is registered once; lanes tagged wrapped are registered
// twice, so they contribute the previous block's partial sum, which is
// the z^-N term of the polyphase phase-combination identity. The
// combiner adds one tick of latency to the direct lanes.
type Combiner struct {
	wrapped []bool
	reg1    []fixed.ComplexAcc
	reg2    []fixed.ComplexAcc
}

// NewCombiner creates a combiner; wrapped[i] marks lane i as carrying a
// one-block-delayed contribution.
func NewCombiner(wrapped []bool) (*Combiner, error) {
	if len(wrapped) == 0 {
		return nil, ErrNoLanes
	}

	return &Combiner{
		wrapped: append([]bool(nil), wrapped...),
		reg1:    make([]fixed.ComplexAcc, len(wrapped)),
		reg2:    make([]fixed.ComplexAcc, len(wrapped)),
	}, nil
}

// Lanes returns the number of input lanes.
func (c *Combiner) Lanes() int {
	return len(c.wrapped)
}

// Tick advances the combiner one cycle. partials must have one entry
// per lane.
func (c *Combiner) Tick(partials []fixed.ComplexAcc) fixed.ComplexAcc {
	var sum fixed.ComplexAcc

	for i, w := range c.wrapped {
		if w {
			sum = fixed.Add(sum, c.reg2[i])
		} else {
			sum = fixed.Add(sum, c.reg1[i])
		}

		c.reg2[i] = c.reg1[i]
		c.reg1[i] = partials[i]
	}

	return sum
}

// Reset clears the lane registers.
func (c *Combiner) Reset() {
	for i := range c.wrapped {
		c.reg1[i] = fixed.ComplexAcc{}
		c.reg2[i] = fixed.ComplexAcc{}
	}
}
