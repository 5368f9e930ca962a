// Package mac provides the multiply-accumulate primitives of the
// decimator: a systolic FIR engine with a shift-gated delay line, and
// the phase combiner that reassembles polyphase partial sums.
//
// Both components have register-transfer semantics: one Tick is one
// clock cycle, reading the previous state and committing the next. Each
// engine instance owns its delay line exclusively; sub-filters sharing
// an input stream still require distinct instances.
package mac
