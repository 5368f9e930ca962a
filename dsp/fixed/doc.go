// Package fixed provides the fixed-point numeric types of the decimator
// cascade: s16.15 samples, s18.17 coefficients, and s40.32 accumulators,
// plus the conversion and narrowing rules shared by every stage.
//
// Multiplication of a sample by a coefficient is exact (the s34.32
// product fits the accumulator frame), and accumulation across a tap
// chain is exact 40-bit arithmetic. Rounding (to nearest, ties away
// from zero) and saturation happen only when an accumulator is narrowed
// back to sample precision.
package fixed
