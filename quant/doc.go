// Package quant implements the scalar codecs that turn a Gaussian splat's
// per-point float32 fields into the fixed-width byte encodings stored in a
// .spz payload, and back.
//
// Every codec in this package is a pure, deterministic function: no I/O, no
// allocation beyond the output it produces, no shared state between calls.
// Quantization is lossy by design (spec.md §4.1) — out-of-range inputs are
// clamped to the representable grid rather than rejected, and callers rely
// on the documented per-codec error bound rather than bit-exact round trips.
//
// Columnar, not struct-of-points: every encode/decode function here operates
// on a flat []float32 (or produces one), matching the Scene's parallel-array
// layout (spec.md §9) instead of materializing per-point structs.
package quant
