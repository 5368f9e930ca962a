package decimator

// flagLine delays a boolean by a fixed number of ticks, aligning a
// stage's valid marker with the latency of its MAC pipeline. It clocks
// every tick, valid or not, exactly like the data path registers.
type flagLine struct {
	regs []bool
	pos  int
}

func newFlagLine(depth int) *flagLine {
	return &flagLine{regs: make([]bool, depth)}
}

func (l *flagLine) tick(v bool) bool {
	out := l.regs[l.pos]
	l.regs[l.pos] = v
	l.pos++
	if l.pos == len(l.regs) {
		l.pos = 0
	}

	return out
}

func (l *flagLine) reset() {
	for i := range l.regs {
		l.regs[i] = false
	}
	l.pos = 0
}

// skipGate is the valid/skip state machine of a scalar decimate-by-two
// stage. Armed, the next valid input produces a live output and arms
// the skip; skipping, the next valid input is consumed silently.
type skipGate struct {
	skip bool
}

func (g *skipGate) tick(valid bool) bool {
	live := valid && !g.skip
	if live {
		g.skip = true
	} else if valid {
		g.skip = false
	}

	return live
}

func (g *skipGate) reset() {
	g.skip = false
}
