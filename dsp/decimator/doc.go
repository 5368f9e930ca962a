// Package decimator implements a six-stage half-band decimator cascade
// for complex I/Q streams at eight samples per cycle (SSR8), providing
// power-of-two decimation factors from 1 to 64 out of a single
// free-running pipeline.
//
// The first three stages halve the rate by polyphase decomposition
// (8-, 4- and 2-way); the last three are scalar systolic half-band
// filters that halve the rate by valid/skip alternation. Every stage
// runs every cycle regardless of the selected factor; the factor only
// selects which stage's output and valid flag reach the caller.
//
// All arithmetic is fixed point (see dsp/fixed): s16.15 samples in and
// out of every stage, s18.17 coefficients, s40.32 accumulation, with
// symmetric rounding and saturation at each stage's narrowing.
package decimator
