package butterfly

// MulTwiddle sets dst = src * z^i (mod P) where z = 2^w is the
// principal 2n-th root of unity. Used by InverseTruncate1's twiddle
// fixup in internal/xform.
func MulTwiddle(dst, src []uint64, i, n, wn int, w uint) {
	MulByExponent(dst, src, i*int(w), wn)
}

// MulTwiddleSqrt2 sets dst = src * z^(i/2) (mod P), z = 2^w. When i*w
// is odd, z^(1/2) is realized via the √2 identity rather than an
// explicit root of z: √2^(i*w) = 2^((i*w-1)/2) * √2. wn must be
// divisible by 4.
func MulTwiddleSqrt2(dst, src []uint64, i, n, wn int, w uint) {
	shift := i * int(w)
	MulByExponent(dst, src, shift>>1, wn)
	if shift&1 != 0 {
		sqrt2Mul(dst, dst, make([]uint64, len(dst)), wn)
	}
}

// MulTwiddleNegacyclic pre-twists coefficient i of an n-coefficient
// sequence by z1^i, where z1 = 2^(w/2) is a 4n-th root of unity (half
// the shift of the principal 2n-th root 2^w), before an ordinary
// (cyclic) FFT is applied. This turns the cyclic convolution the FFT
// computes into the negacyclic (skew-circular) convolution the
// modular multiplication needs, matching FFT_negacyclic_twiddle in the
// reference. wn is the bit-size exponent of the coefficient ring
// 2^wn+1 and must be divisible by 4: when i*w is odd, the half step is
// realized with the √2 identity, √2^(i*w) = 2^((i*w-1)/2) * √2.
func MulTwiddleNegacyclic(dst, src []uint64, i, n, wn int, w uint) {
	shift := i * int(w)
	MulByExponent(dst, src, shift>>1, wn)
	if shift&1 != 0 {
		sqrt2Mul(dst, dst, make([]uint64, len(dst)), wn)
	}
}

// MulTwiddleNegacyclicInverse undoes MulTwiddleNegacyclic after the
// inverse FFT and 1/n scaling have both been applied.
func MulTwiddleNegacyclicInverse(dst, src []uint64, i, n, wn int, w uint) {
	shift := -(i * int(w))
	MulByExponent(dst, src, shift>>1, wn)
	if shift&1 != 0 {
		sqrt2Mul(dst, dst, make([]uint64, len(dst)), wn)
	}
}
