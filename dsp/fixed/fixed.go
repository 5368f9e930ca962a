package fixed

import "math"

// Word layouts. Samples and coefficients are signed two's-complement
// values with the given total and fractional bit counts; accumulators
// use a 40-bit frame with 32 fractional bits, so sample-by-coefficient
// products (s34.32) accumulate without loss.
const (
	SampleBits     = 16
	SampleFracBits = 15

	CoeffBits     = 18
	CoeffFracBits = 17

	AccBits     = 40
	AccFracBits = 32
)

const (
	sampleMax = 1<<(SampleBits-1) - 1
	sampleMin = -1 << (SampleBits - 1)

	coeffMax = 1<<(CoeffBits-1) - 1
	coeffMin = -1 << (CoeffBits - 1)

	// Fractional bits discarded when narrowing an accumulator to a sample.
	narrowShift = AccFracBits - SampleFracBits
	narrowHalf  = 1 << (narrowShift - 1)
)

// Sample is an s16.15 fixed-point value in [-1, 1).
type Sample int16

// Coeff is an s18.17 fixed-point filter coefficient.
type Coeff int32

// Acc is an s40.32 fixed-point accumulator value.
type Acc int64

// Complex is a complex sample, one s16.15 value per component.
type Complex struct {
	Re, Im Sample
}

// ComplexAcc is a complex accumulator, one s40.32 value per component.
type ComplexAcc struct {
	Re, Im Acc
}

// Mul multiplies a sample by a coefficient. The s34.32 product is exact.
func Mul(x Sample, c Coeff) Acc {
	return Acc(int64(x) * int64(c))
}

// MulComplex multiplies a complex sample by a real coefficient.
func MulComplex(x Complex, c Coeff) ComplexAcc {
	return ComplexAcc{Re: Mul(x.Re, c), Im: Mul(x.Im, c)}
}

// Add sums two complex accumulators. Exact; the cascade's worst-case
// gain stays far below the s40.32 range.
func Add(a, b ComplexAcc) ComplexAcc {
	return ComplexAcc{Re: a.Re + b.Re, Im: a.Im + b.Im}
}

// SampleFromAcc narrows an accumulator to sample precision, rounding to
// nearest with ties away from zero and saturating to the s16.15 range.
func SampleFromAcc(a Acc) Sample {
	var v int64
	if a >= 0 {
		v = (int64(a) + narrowHalf) >> narrowShift
	} else {
		v = -((-int64(a) + narrowHalf) >> narrowShift)
	}

	return saturateSample(v)
}

// ComplexFromAcc narrows both components of a complex accumulator.
func ComplexFromAcc(a ComplexAcc) Complex {
	return Complex{Re: SampleFromAcc(a.Re), Im: SampleFromAcc(a.Im)}
}

// SampleFromFloat quantizes x to s16.15: round(x * 2^15), ties away
// from zero, saturated. This is the offline test-vector quantization.
func SampleFromFloat(x float64) Sample {
	return saturateSample(int64(math.Round(x * (1 << SampleFracBits))))
}

// CoeffFromFloat quantizes x to s18.17: round(x * 2^17), ties away from
// zero, saturated. Coefficients are converted once, at initialization.
func CoeffFromFloat(x float64) Coeff {
	v := int64(math.Round(x * (1 << CoeffFracBits)))
	if v > coeffMax {
		return Coeff(coeffMax)
	}

	if v < coeffMin {
		return Coeff(coeffMin)
	}

	return Coeff(v)
}

// ComplexFromFloats quantizes a (re, im) pair to a complex sample.
func ComplexFromFloats(re, im float64) Complex {
	return Complex{Re: SampleFromFloat(re), Im: SampleFromFloat(im)}
}

// Float converts a sample back to floating point in [-1, 1).
func (s Sample) Float() float64 {
	return float64(s) / (1 << SampleFracBits)
}

// Float converts a coefficient back to floating point.
func (c Coeff) Float() float64 {
	return float64(c) / (1 << CoeffFracBits)
}

// Float converts an accumulator value back to floating point.
func (a Acc) Float() float64 {
	return float64(a) / (1 << AccFracBits)
}

// Complex128 converts a complex sample to complex128.
func (c Complex) Complex128() complex128 {
	return complex(c.Re.Float(), c.Im.Float())
}

func saturateSample(v int64) Sample {
	if v > sampleMax {
		return Sample(sampleMax)
	}

	if v < sampleMin {
		return Sample(sampleMin)
	}

	return Sample(v)
}
