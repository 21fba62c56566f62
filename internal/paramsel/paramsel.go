// Package paramsel chooses the depth (transform length) and ring
// width w for a Schönhage–Strassen multiplication of two operands of a
// given bit length, the Go counterpart of the parameter search wrapped
// around FFT_mulmod_2expp1 in the reference. It also exposes a
// cache-locality heuristic, grounded on the matrix Fourier algorithm's
// reshape motivation, used to decide when internal/mfa's R×C layout is
// worth it over a flat one-dimensional transform.
package paramsel

import (
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"
	"golang.org/x/sys/cpu"

	"github.com/luxfi/ssfft/config"
	"github.com/luxfi/ssfft/internal/limb"
)

// Params is the transform configuration a multiplication runs with.
type Params struct {
	Depth int // n = 2^Depth is half the transform length
	W     int // ring exponent step; wn = n*W is the Fermat ring's exponent
	Bits1 int // bits per input coefficient before transform
	Limbs int // limbs per transform-domain coefficient, (n*W)/limb.Bits
}

// N returns the half-length n = 2^Depth.
func (p Params) N() int { return 1 << uint(p.Depth) }

// WN returns the Fermat ring exponent n*W.
func (p Params) WN() int { return p.N() * p.W }

// Select picks transform parameters for multiplying two operands whose
// product has at most rLimbs limbs (the reference's r_limbs), starting
// from initialDepth's estimate and lowering the depth until each
// coefficient's pre-transform bit width (bits1) reaches a practical
// floor, then picking w as the smallest ring exponent step that avoids
// coefficient overflow, rounded up so that n*w is a multiple of
// limb.Bits.
//
// The reference picks depth/w via a tuned cost-model table; here we
// derive depth directly from a closed-form bound instead, since we
// have no hardware to benchmark against. bigfloat's extended-precision
// log2 keeps that closed form accurate for operand sizes where a
// naive float64 log2 would lose the low bits that matter for picking
// between two adjacent depths.
func Select(rLimbs int) Params {
	totalBits := rLimbs * limb.Bits
	depth := initialDepth(totalBits)

	for {
		n := 1 << uint(depth)
		bits1 := (totalBits + 2*n - 1) / (2 * n)
		if bits1 < minCoeffBits && depth > 0 {
			depth--
			continue
		}
		w := ringStep(bits1, n)
		wn := n * w
		if wn%limb.Bits != 0 {
			// n is a power of two below limb.Bits here, so n*w is a
			// multiple of limb.Bits exactly when w is a multiple of
			// limb.Bits/n.
			step := limb.Bits / n
			w = (w + step - 1) / step * step
		}
		return Params{
			Depth: depth,
			W:     w,
			Bits1: bits1,
			Limbs: (n * w) / limb.Bits,
		}
	}
}

const minCoeffBits = 32

// initialDepth estimates depth from log2(totalBits), the same
// logarithmic relationship the reference's tuning tables encode
// empirically: doubling the operand size needs one more FFT level to
// keep per-coefficient size roughly constant.
func initialDepth(totalBits int) int {
	lg := bigfloat.Log2(new(big.Float).SetInt64(int64(totalBits)))
	lg64, _ := lg.Float64()
	depth := int(math.Ceil(lg64)) / 2
	if depth < 1 {
		depth = 1
	}
	return depth
}

// ringStep picks w such that a coefficient holding the full-precision
// negacyclic convolution of 2n values of bits1 bits each cannot
// overflow the ring: 2*bits1 bits for the worst-case product magnitude
// plus log2(2n) bits of accumulation headroom plus 2 spare bits.
func ringStep(bits1, n int) int {
	headroom := 1
	for (1 << uint(headroom)) < 2*n {
		headroom++
	}
	need := 2*bits1 + headroom + 2
	w := (need + n - 1) / n
	if w < 1 {
		w = 1
	}
	return w
}

// PreferMatrixLayout reports whether the matrix Fourier algorithm's
// R×C reshape is likely to outperform a flat transform of the given
// half-length n. Once a column's worth of coefficients (n*coeffBytes)
// exceeds a handful of assumed 64-byte cache lines, contiguous-stride
// passes start winning over the flat transform's large-stride
// butterflies, which is the entire motivation for MFA in the
// reference; the threshold is lowered further when the host has wide
// SIMD (AVX2/ASIMD), since vectorized butterflies make cache misses
// relatively more expensive.
func PreferMatrixLayout(n, coeffBytes int) bool {
	const assumedCacheLine = 64
	threshold := 32
	if cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD {
		threshold = 16
	}
	return n*coeffBytes > threshold*assumedCacheLine
}

// SelectLayout decides whether a transform of half-length n (full
// length 2n) should run as a flat transform or an MFA R×C grid, and if
// so picks the grid shape via config.FindBestTransformSize's cache-
// footprint search. ok reports whether the matrix layout is worth it;
// rows/cols are only meaningful when ok is true.
func SelectLayout(n, coeffBytes int) (rows, cols int, ok bool) {
	if !PreferMatrixLayout(n, coeffBytes) {
		return 0, 0, false
	}
	rows, cols = config.FindBestTransformSize(2*n, coeffBytes)
	return rows, cols, true
}
