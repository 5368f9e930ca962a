package decimator

import (
	"github.com/cwbudde/algo-decimate/dsp/fixed"
	"github.com/cwbudde/algo-decimate/dsp/halfband"
	"github.com/cwbudde/algo-decimate/dsp/mac"
)

// scalarStage is a decimate-by-two stage for streams that arrive one
// sample per cycle. The full 31-tap prototype runs on every input
// sample and a skip gate drops every second filtered sample.
type scalarStage struct {
	engine *mac.Engine
	gate   skipGate
	line   *flagLine
}

func newScalarStage() (*scalarStage, error) {
	e, err := mac.NewEngine(halfband.Prototype())
	if err != nil {
		return nil, err
	}

	return &scalarStage{
		engine: e,
		line:   newFlagLine(halfband.Taps + 1),
	}, nil
}

func (s *scalarStage) tick(valid bool, x fixed.Complex) (fixed.Complex, bool) {
	live := s.gate.tick(valid)
	out := fixed.ComplexFromAcc(s.engine.Tick(valid, x))

	return out, s.line.tick(live)
}

func (s *scalarStage) reset() {
	s.engine.Reset()
	s.gate.reset()
	s.line.reset()
}
