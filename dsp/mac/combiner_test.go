package mac

import (
	"testing"

	"github.com/cwbudde/algo-decimate/dsp/fixed"
)

func ca(re, im int64) fixed.ComplexAcc {
	return fixed.ComplexAcc{Re: fixed.Acc(re), Im: fixed.Acc(im)}
}

func TestNewCombiner(t *testing.T) {
	if _, err := NewCombiner(nil); err != ErrNoLanes {
		t.Fatalf("NewCombiner(nil): err = %v, want ErrNoLanes", err)
	}

	c, err := NewCombiner([]bool{false, true, true})
	if err != nil {
		t.Fatalf("NewCombiner: %v", err)
	}
	if c.Lanes() != 3 {
		t.Errorf("Lanes: got %d, want 3", c.Lanes())
	}
}

func TestCombiner_DirectAndWrappedDelays(t *testing.T) {
	// Lane 0 direct (one tick), lane 1 wrapped (two ticks).
	c, err := NewCombiner([]bool{false, true})
	if err != nil {
		t.Fatalf("NewCombiner: %v", err)
	}

	in := func(t int) []fixed.ComplexAcc {
		return []fixed.ComplexAcc{ca(int64(10+t), 0), ca(int64(1000+t), 0)}
	}

	if got := c.Tick(in(0)); got != (fixed.ComplexAcc{}) {
		t.Fatalf("tick 0: got %+v, want zero", got)
	}
	if got := c.Tick(in(1)); got != ca(10, 0) {
		t.Fatalf("tick 1: got %+v, want direct(0) only", got)
	}
	for tk := 2; tk < 6; tk++ {
		want := ca(int64(10+tk-1)+int64(1000+tk-2), 0)
		if got := c.Tick(in(tk)); got != want {
			t.Errorf("tick %d: got %+v, want %+v", tk, got, want)
		}
	}
}

func TestCombiner_Reset(t *testing.T) {
	c, _ := NewCombiner([]bool{false, true, false})

	for i := 0; i < 4; i++ {
		c.Tick([]fixed.ComplexAcc{ca(1, 2), ca(3, 4), ca(5, 6)})
	}
	c.Reset()

	zero := []fixed.ComplexAcc{{}, {}, {}}
	if got := c.Tick(zero); got != (fixed.ComplexAcc{}) {
		t.Fatalf("after Reset: got %+v, want zero", got)
	}
}
