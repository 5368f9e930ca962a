package decimator

import (
	"github.com/cwbudde/algo-decimate/dsp/fixed"
	"github.com/cwbudde/algo-decimate/dsp/halfband"
	"github.com/cwbudde/algo-decimate/dsp/mac"
)

// polyPhase computes one polyphase output phase k of an n-wide stage:
//
//	Y_k = sum_{j>=k} P_{j-k} X_j + z^-N * sum_{j<k} P_{N+j-k} X_j
//
// with one MAC engine per input lane and a combiner that applies the
// one-block delay to the wrapped contributions.
type polyPhase struct {
	k        int
	engines  []*mac.Engine
	comb     *mac.Combiner
	partials []fixed.ComplexAcc
}

// polyStage is an n-way polyphase decimate-by-two stage (n in 8, 4, 2).
//
// Block convention: input slot j carries x(n*cycle + j), ascending in
// time, so lane j feeds sub-stream X_{n-1-j}. Computed phases are the
// odd ones; phase k lands in output slot n-1-k, so the decimated
// samples occupy the even slots in time order and the following stage
// consumes exactly those. The remaining slots stay zero unless phase
// verification is enabled, in which case the normally-discarded even
// phases are computed into the odd slots as well.
type polyStage struct {
	n      int
	phases []*polyPhase
	valid  *flagLine
	out    []fixed.Complex
}

func newPolyStage(n int, verify bool) (*polyStage, error) {
	subs, err := halfband.Decompose(n)
	if err != nil {
		return nil, err
	}

	subTaps := len(subs[0])

	// Engine latency is subTaps+1, the combiner adds one more tick.
	s := &polyStage{
		n:     n,
		valid: newFlagLine(subTaps + 2),
		out:   make([]fixed.Complex, n),
	}

	for k := 1; k < n; k += 2 {
		ph, err := newPolyPhase(n, k, subs)
		if err != nil {
			return nil, err
		}
		s.phases = append(s.phases, ph)
	}

	if verify {
		for k := 0; k < n; k += 2 {
			ph, err := newPolyPhase(n, k, subs)
			if err != nil {
				return nil, err
			}
			s.phases = append(s.phases, ph)
		}
	}

	return s, nil
}

func newPolyPhase(n, k int, subs [][]fixed.Coeff) (*polyPhase, error) {
	ph := &polyPhase{
		k:        k,
		engines:  make([]*mac.Engine, n),
		partials: make([]fixed.ComplexAcc, n),
	}

	wrapped := make([]bool, n)
	for j := 0; j < n; j++ {
		e, err := mac.NewEngine(subs[(j-k+n)%n])
		if err != nil {
			return nil, err
		}
		ph.engines[j] = e
		wrapped[j] = j < k
	}

	comb, err := mac.NewCombiner(wrapped)
	if err != nil {
		return nil, err
	}
	ph.comb = comb

	return ph, nil
}

// tick advances the stage one cycle. The returned slice is reused
// between calls; callers copy what they keep.
func (s *polyStage) tick(valid bool, in []fixed.Complex) ([]fixed.Complex, bool) {
	for i := range s.out {
		s.out[i] = fixed.Complex{}
	}

	for _, ph := range s.phases {
		for j := 0; j < s.n; j++ {
			ph.partials[j] = ph.engines[j].Tick(valid, in[s.n-1-j])
		}

		s.out[s.n-1-ph.k] = fixed.ComplexFromAcc(ph.comb.Tick(ph.partials))
	}

	return s.out, s.valid.tick(valid)
}

func (s *polyStage) reset() {
	for _, ph := range s.phases {
		for _, e := range ph.engines {
			e.Reset()
		}
		ph.comb.Reset()
	}
	s.valid.reset()
}
