//go:build cgo

// Package gpu provides an optional GPU-accelerated batched
// pointwise-multiply stage for the FFT convolution's transform-domain
// product step. It follows the reference's cgo/!cgo dual-path
// pattern: this file requires cgo and github.com/luxfi/mlx; batch_stub.go
// provides the pure-Go fallback used on builds without cgo.
package gpu

import (
	"github.com/luxfi/mlx"

	"github.com/luxfi/ssfft/internal/limb"
)

// narrowBits is the largest per-operand coefficient width whose product
// still fits in an int64 (MLX's integer array dtype) without
// overflowing: two narrowBits-bit factors produce up to 2*narrowBits
// bits, which must stay under 63 to read back exactly. Coefficients
// narrower than this can be batched through MLX's vectorized multiply;
// wider ones fall back to the CPU path, the same size-triggered
// strategy selection config.SizePolicy encodes for the transform as a
// whole.
const narrowBits = 31

// BatchMul computes dst[i] = a[i]*b[i] (mod 2^wn+1) for every i,
// dispatching narrow coefficients (wn <= narrowBits) through MLX's
// batched int64 multiply and everything else through the CPU
// big.Int-backed limb.Mul.
func BatchMul(dst, a, b [][]uint64, wn int) {
	if wn > narrowBits || len(a) == 0 {
		batchMulCPU(dst, a, b)
		return
	}
	batchMulNarrowGPU(dst, a, b)
}

func batchMulCPU(dst, a, b [][]uint64) {
	for i := range a {
		limb.Mul(dst[i], a[i], b[i])
	}
}

// batchMulNarrowGPU multiplies narrow (<=31-bit) coefficients as an
// MLX batched int64 array multiply, then reduces the double-width
// int64 products back into canonical residues on the CPU. MLX has
// no arbitrary-precision integer type, so this path only ever carries
// the pointwise-multiply arithmetic itself, never the surrounding
// modular reduction.
func batchMulNarrowGPU(dst, a, b [][]uint64) {
	n := len(a)
	ai := make([]int64, n)
	bi := make([]int64, n)
	for i := 0; i < n; i++ {
		ai[i] = int64(a[i][0])
		bi[i] = int64(b[i][0])
	}

	aArr := mlx.ArrayFromSlice(ai, []int{n}, mlx.Int64)
	bArr := mlx.ArrayFromSlice(bi, []int{n}, mlx.Int64)
	prod := mlx.Multiply(aArr, bArr)
	mlx.Eval(prod)
	out := mlx.AsSlice[int64](prod)

	for i := 0; i < n; i++ {
		dst[i][0] = uint64(out[i])
		for j := 1; j < len(dst[i]); j++ {
			dst[i][j] = 0
		}
		limb.Normalize(dst[i])
	}
}
