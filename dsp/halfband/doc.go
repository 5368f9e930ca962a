// Package halfband provides the 31-tap half-band prototype filter of
// the decimator cascade: the floating-point design, its s18.17
// quantization, polyphase decomposition, and frequency-response
// helpers.
//
// The prototype is symmetric and every odd-indexed tap except the
// center is exactly zero, which is what makes it pair naturally with
// decimation by two. Zero taps are preserved through decomposition so
// delay-line timing stays intact.
package halfband
