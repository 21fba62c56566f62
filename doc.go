// Package ssfft multiplies large nonnegative integers, represented as
// little-endian arrays of 64-bit limbs, using a Schönhage–Strassen
// style Fermat-ring FFT multiplier: operands are packed into
// polynomial coefficients, convolved via a negacyclic FFT over
// R = Z/(2^wn+1), and the product recovered by carry propagation.
//
// The package follows the orchestration in FFT_mulmod_2expp1 from the
// reference: internal/paramsel picks the transform depth and ring
// width, internal/pack slices operands into coefficients,
// internal/xform runs the forward/pointwise/inverse convolution, and
// this package's Mul reassembles the limb product. internal/mfa and
// the gpu package are alternate strategies for the same convolution,
// selected by config.SizePolicy through Plan.Variant.
package ssfft
