//go:build !cgo

// Package gpu provides an optional GPU-accelerated batched
// pointwise-multiply stage for the FFT convolution's transform-domain
// product step. This file is the pure-Go fallback used on builds
// without cgo; batch.go carries the MLX-backed path.
package gpu

import "github.com/luxfi/ssfft/internal/limb"

// BatchMul computes dst[i] = a[i]*b[i] (mod 2^wn+1) for every i on the
// CPU. wn is accepted for signature parity with the cgo-backed variant
// but unused here: there is no narrow/wide split without MLX to route
// the narrow case to.
func BatchMul(dst, a, b [][]uint64, wn int) {
	for i := range a {
		limb.Mul(dst[i], a[i], b[i])
	}
}
