package decimator

import "testing"

func TestFlagLineDelay(t *testing.T) {
	const depth = 5

	l := newFlagLine(depth)

	pattern := []bool{true, false, true, true, false, false, true, false, true, true, true, false}

	var got []bool
	for _, v := range pattern {
		got = append(got, l.tick(v))
	}
	for i := 0; i < depth; i++ {
		got = append(got, l.tick(false))
	}

	for i := 0; i < depth; i++ {
		if got[i] {
			t.Fatalf("tick %d: flag leaked before the line filled", i)
		}
	}

	for i, want := range pattern {
		if got[i+depth] != want {
			t.Fatalf("tick %d: got %v, want %v", i+depth, got[i+depth], want)
		}
	}
}

func TestFlagLineReset(t *testing.T) {
	l := newFlagLine(3)

	l.tick(true)
	l.tick(true)
	l.reset()

	for i := 0; i < 3; i++ {
		if l.tick(false) {
			t.Fatalf("tick %d: flag survived reset", i)
		}
	}
}

func TestSkipGateAlternates(t *testing.T) {
	var g skipGate

	want := []bool{true, false, true, false, true, false}
	for i, w := range want {
		if got := g.tick(true); got != w {
			t.Fatalf("valid tick %d: got %v, want %v", i, got, w)
		}
	}
}

func TestSkipGateHoldsAcrossGaps(t *testing.T) {
	var g skipGate

	if !g.tick(true) {
		t.Fatal("first valid sample not kept")
	}

	// Idle ticks must not advance the keep/drop phase.
	for i := 0; i < 7; i++ {
		if g.tick(false) {
			t.Fatalf("idle tick %d reported a live sample", i)
		}
	}

	if g.tick(true) {
		t.Fatal("second valid sample not dropped")
	}

	if !g.tick(true) {
		t.Fatal("third valid sample not kept")
	}
}
