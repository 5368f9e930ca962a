package alias_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-decimate/measure/alias"
)

func ExampleMeasure() {
	// A tone deep in the passband passes unchanged; one at a quarter
	// of the input rate hits the half-band symmetry point.
	for _, bin := range []int{64, 512} {
		r, err := alias.Measure(2, bin)
		if err != nil {
			panic(err)
		}

		fmt.Printf("bin %d: %d dB\n", bin, int(math.Round(r.GainDB)))
	}

	// Output:
	// bin 64: 0 dB
	// bin 512: -6 dB
}
