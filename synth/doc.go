// SPDX-License-Identifier: MIT

// Package synth provides deterministic signal and timeline generators used
// as fixtures throughout fluxseries tests, examples and benchmarks.
//
// Purpose:
//   - Timelines: uniform and deliberately gapped timestamp vectors with
//     known run lengths and known missing-sample counts.
//   - Signals: sine (optionally FFT-bin-aligned), linear chirp, and
//     Gaussian-noise variants for exercising the spectral calibrator.
//   - Fields: packing per-axis signals into the N×3 matrices the calib
//     package consumes.
//
// Determinism policy (shared across generators):
//   - Pure generators take no randomness at all.
//   - Noisy generators take an explicit seed and build their own
//     rand.New(rand.NewSource(seed)); no global state, golden-friendly.
//   - Invalid shape parameters yield nil rather than a panic or an error:
//     these are test fixtures, and a nil slice fails the consuming test
//     loudly enough.
//
// All generators are O(n) time and memory.
package synth
