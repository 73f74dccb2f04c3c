// Package fluxseries is an in-memory toolbox for offline analysis of
// spacecraft magnetometer telemetry — from locating timing gaps to merging
// two independently-sampled instruments into one calibrated record.
//
// 🚀 What is fluxseries?
//
//	A pure-Go library that brings together the computational half of a
//	fluxgate/search-coil processing chain:
//		• Series primitives: validated timestamp + N×3 field containers
//		• Gap detection: find and size discontinuities in uniform sampling
//		• Interval detection: partition a series into maximal continuous runs
//		• Dual-series alignment: prune and synchronize overlapping intervals
//		  across two sample grids
//		• Spectral calibration: windowed FFT overlap-add with a per-bin
//		  complex transfer function and sensor-frame rotation
//		• Synthesis: deterministic signal generators for fixtures and benches
//
// ✨ Why choose fluxseries?
//
//   - Deterministic – no global state, no hidden randomness, no I/O
//   - Explicit – sentinel errors, options structs, returned diagnostics
//   - Numeric backbone – FFTs, windows and matrices come from gonum
//
// Everything is organized under five subpackages:
//
//	series/    — sample-series container, validation, nominal-interval estimation
//	intervals/ — gap detection and continuous-interval partitioning
//	align/     — dual-series interval pruning and boundary synchronization
//	calib/     — overlap-add spectral calibration of 3-component field data
//	synth/     — deterministic test-signal and timeline generators
//
// Data flows series → intervals → align (two instruments) or
// series → intervals → calib (one instrument); downstream splicing,
// plotting and file readers live outside this module.
//
//	go get github.com/ebarkov/fluxseries
package fluxseries
