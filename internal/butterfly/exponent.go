// Package butterfly implements the radix-2 Fermat-ring butterflies that
// the FFT/IFFT kernels in internal/xform are built from: the plain
// sum/difference-with-twiddle butterfly, its √2-trick sibling that
// doubles the available transform length, and the "twiddle" forms used
// by the matrix Fourier algorithm's column pass, where the twiddle
// shift is supplied directly rather than derived from (i, n, w).
package butterfly

import (
	"github.com/luxfi/ssfft/internal/limb"
)

// MulByExponent sets dst = src * 2^shift (mod P), where P = 2^wn+1 and
// shift is an arbitrary integer (reduced mod 2*wn with the sign flip
// that 2^wn ≡ -1 implies). dst and src may alias.
//
// This is the building block every butterfly and twiddle multiplier
// uses to apply a root-of-unity power: 2^w is the principal 2n-th root
// of unity when p = 2^wn+1, so multiplying by z^i is multiplying by
// 2^(i*w), decomposed into a whole-limb rotate (internal/limb.
// RotateLimbsMod) and a sub-limb bit shift (internal/limb.
// MulByPowerOf2).
func MulByExponent(dst, src []uint64, shift, wn int) {
	x, b, neg := decompose(shift, wn)
	limb.RotateLimbsMod(dst, src, x)
	limb.MulByPowerOf2(dst, b)
	if neg {
		limb.Negate(dst)
	}
}

// DivByExponent sets dst = src / 2^shift (mod P), the exact inverse of
// MulByExponent with the same shift and wn.
func DivByExponent(dst, src []uint64, shift, wn int) {
	l := len(src) - 1
	x, b, neg := decompose(shift, wn)
	divByLimbPower(dst, src, x, l)
	limb.DivByPowerOf2(dst, b)
	if neg {
		limb.Negate(dst)
	}
}

// divByLimbPower sets dst = src / 2^(limb.Bits*x) (mod P) for 0 <= x <=
// l, using 2^(-limb.Bits*x) ≡ -2^(limb.Bits*(l-x)) (mod P), the same
// identity 2^wn ≡ -1 applied in reverse.
func divByLimbPower(dst, src []uint64, x, l int) {
	limb.RotateLimbsMod(dst, src, l-x)
	limb.Negate(dst)
}

// decompose reduces shift modulo 2*wn, reporting whether the result
// wrapped past wn (in which case 2^wn ≡ -1 contributes a sign flip),
// then splits the remainder into a whole-limb count and a sub-limb bit
// count.
func decompose(shift, wn int) (limbShift int, bitShift uint, negate bool) {
	s := shift % (2 * wn)
	if s < 0 {
		s += 2 * wn
	}
	if s >= wn {
		negate = true
		s -= wn
	}
	return s / limb.Bits, uint(s % limb.Bits), negate
}
