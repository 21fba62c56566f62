package butterfly

import (
	"github.com/luxfi/ssfft/internal/limb"
)

// Forward computes the radix-2 DIF butterfly at index i of an n-point
// transform with root-of-unity exponent step w: s = a+b, t = (a-b)*z^i,
// where z = 2^w is the principal 2n-th root of unity mod 2^wn+1.
// s and t must not alias a or b.
func Forward(s, t, a, b []uint64, i, wn int, w uint) {
	limb.LshBSumDiff(s, t, a, b, 0, 0)
	MulByExponent(t, t, i*int(w), wn)
}

// sqrt2Mul sets dst = src * √2 (mod P), using the Schönhage identity
// √2 ≡ 2^(3n) - 2^n (mod 2^wn+1) with n = wn/4: squaring the
// right-hand side and reducing 2^wn to -1 recovers exactly 2. scratch
// must not alias dst or src; dst may alias src.
func sqrt2Mul(dst, src, scratch []uint64, wn int) {
	n := wn / 4
	MulByExponent(scratch, src, n, wn)
	MulByExponent(dst, src, 3*n, wn)
	limb.Sub(dst, dst, scratch)
}

// sqrt2Div sets dst = src / √2 (mod P), using √2^-1 = √2/2 ≡
// 2^(3n-1) - 2^(n-1) (mod 2^wn+1), n = wn/4 — the same identity as
// sqrt2Mul shifted down by one bit, since dividing √2 by 2 is dividing
// both its limb-shift terms by 2. scratch must not alias dst or src;
// dst may alias src.
func sqrt2Div(dst, src, scratch []uint64, wn int) {
	n := wn / 4
	MulByExponent(scratch, src, n-1, wn)
	MulByExponent(dst, src, 3*n-1, wn)
	limb.Sub(dst, dst, scratch)
}

// ForwardSqrt2 is Forward's counterpart for transform lengths reached
// via the √2 trick, which buys an extra factor of two in the
// available length by using √2 as an auxiliary root of unity: s = a+b,
// t = (a-b)*√2^(i*w), where √2^w is a 4n-th root of unity. An odd i*w
// is applied as 2^((i*w-1)/2) * √2, matching
// FFT_radix2_butterfly_sqrt2 in the reference: the √2 factor always
// multiplies the "new" (difference) half. scratch1 and scratch2 must
// not alias a, b, s, or t.
func ForwardSqrt2(s, t, a, b, scratch1, scratch2 []uint64, i, wn int, w uint) {
	shift := i * int(w)
	limb.LshBSumDiff(s, t, a, b, 0, 0)
	MulByExponent(t, t, shift>>1, wn)
	if shift&1 != 0 {
		sqrt2Mul(t, t, scratch1, wn)
	}
}

// Inverse computes the radix-2 DIF inverse butterfly: a = s + t*z^-i,
// b = s - t*z^-i. a and b must not alias s or t.
func Inverse(a, b, s, t, scratch []uint64, i, wn int, w uint) {
	MulByExponent(scratch, t, -i*int(w), wn)
	limb.Add(a, s, scratch)
	limb.Sub(b, s, scratch)
}

// InverseSqrt2 undoes ForwardSqrt2 up to the usual factor of two:
// a = s + t*√2^(-i*w), b = s - t*√2^(-i*w). scratch1 and scratch2 must
// not alias a, b, s, or t.
func InverseSqrt2(a, b, s, t, scratch1, scratch2 []uint64, i, wn int, w uint) {
	shift := -(i * int(w))
	MulByExponent(scratch1, t, shift>>1, wn)
	if shift&1 != 0 {
		sqrt2Mul(scratch1, scratch1, scratch2, wn)
	}
	limb.Add(a, s, scratch1)
	limb.Sub(b, s, scratch1)
}

// TwiddleForward is Forward specialized for the matrix Fourier
// algorithm's column pass, where the twiddle exponent is supplied
// directly (it depends on both row and column index, not a single
// transform index i).
func TwiddleForward(s, t, a, b []uint64, shift, wn int) {
	limb.LshBSumDiff(s, t, a, b, 0, 0)
	MulByExponent(t, t, shift, wn)
}

// TwiddleInverse is Inverse specialized for an explicit twiddle shift.
func TwiddleInverse(a, b, s, t, scratch []uint64, shift, wn int) {
	MulByExponent(scratch, t, -shift, wn)
	limb.Add(a, s, scratch)
	limb.Sub(b, s, scratch)
}
