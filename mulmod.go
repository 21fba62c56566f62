package ssfft

import (
	"math/big"

	"github.com/luxfi/ssfft/internal/limb"
)

// baseMulThresholdLimbs is the largest operand width MulMod2expp1
// multiplies directly via BaseMulMod2expp1 rather than recursing
// through Mul. Below this, a plain big.Int-backed schoolbook multiply
// is faster than paying for another FFT plan; above it, the recursive
// path lets MulMod2expp1 serve as its own pointwise-multiply stage for
// coefficients too wide to multiply directly, matching the reference's
// self-similar fft_mulmod_2expp1 recursion.
const baseMulThresholdLimbs = 8

// BaseMultiplier is the shape of the caller-supplied base-case
// multiplier spec.md §6 calls an "external collaborator": multiply a
// and b (each nw-bit values, as limb.Limbs(nw) limbs), fold in the
// signed carry-in, reduce mod 2^nw+1, write the result's body into
// result and return the signed carry-out. scratch is a (limb.Limbs(nw)+1)
// word buffer the implementation may use as working space.
type BaseMultiplier func(result, a, b []uint64, carry int64, nw uint, scratch []uint64) int64

// MulMod2expp1 computes result = a*b+carry (mod 2^nw+1), the Fermat-
// ring pointwise-multiply primitive the transform-domain convolution
// stage bottoms out in, and returns the signed carry that must
// propagate into the next limb block the way GMP's mpn_mulmod_2expp1
// does. a, b and result each hold limb.Limbs(nw) limbs; scratch must
// have limb.Limbs(nw)+1 words. This is the spec's fixed external
// entry point, always using BaseMulMod2expp1 as its base case; use a
// Plan's MulMod2expp1 method instead to substitute a different
// BaseMultiplier.
func MulMod2expp1(result, a, b []uint64, carry int64, nw uint, scratch []uint64) int64 {
	return mulMod2expp1(BaseMulMod2expp1, result, a, b, carry, nw, scratch)
}

// MulMod2expp1 is Plan's counterpart to the package-level
// MulMod2expp1, using p.BaseMul (falling back to BaseMulMod2expp1 when
// unset) as the base case instead of a hardcoded call. This is the
// injectable seam spec.md §6 describes: a real deployment supplies a
// faster BaseMultiplier by setting Plan.BaseMul once, rather than
// threading a function parameter through every call site.
func (p Plan) MulMod2expp1(result, a, b []uint64, carry int64, nw uint, scratch []uint64) int64 {
	base := p.BaseMul
	if base == nil {
		base = BaseMulMod2expp1
	}
	return mulMod2expp1(base, result, a, b, carry, nw, scratch)
}

// mulMod2expp1 is the shared recursion: narrow operands go straight to
// base. Wide ones reduce via this package's own Mul: 2^nw ≡ -1 (mod
// 2^nw+1), so a full 2*limb.Limbs(nw)-limb product's high half
// subtracts from its low half instead of needing a second transform
// just for the reduction. This is the "self-similar" recursion
// spec.md §6 describes — a large multiply's pointwise stage can itself
// be a smaller instance of the same multiplier — without ever calling
// back into a Plan's own Pointwise hook, so it cannot recurse through
// itself indefinitely.
func mulMod2expp1(base BaseMultiplier, result, a, b []uint64, carry int64, nw uint, scratch []uint64) int64 {
	l := limb.Limbs(nw)
	if l <= baseMulThresholdLimbs {
		return base(result, a, b, carry, nw, scratch)
	}

	full := make([]uint64, 2*l)
	Mul(full, a[:l], b[:l])

	lo := make([]uint64, l+1)
	copy(lo, full[:l])
	hi := make([]uint64, l+1)
	copy(hi, full[l:2*l])

	buf := make([]uint64, l+1)
	limb.Sub(buf, lo, hi)
	if carry != 0 {
		limb.AddSmall(buf, carry)
	}

	copy(result[:l], buf[:l])
	return int64(int8(buf[l]))
}

// BaseMulMod2expp1 is the default BaseMultiplier: a plain math/big
// schoolbook multiply followed by a reduction mod 2^nw+1. It is the
// injectable base case spec.md §1 excludes a tuned bignum multiplier
// from: real deployments needing one faster than math/big (e.g. a SIMD
// or assembly kernel) would substitute their own BaseMultiplier-shaped
// function where MulMod2expp1 calls this one. This implementation
// exists so MulMod2expp1 has a correct default with no further
// dependencies.
func BaseMulMod2expp1(result, a, b []uint64, carry int64, nw uint, scratch []uint64) int64 {
	l := limb.Limbs(nw)
	A := new(big.Int).SetBits(wordsOf(a[:l]))
	B := new(big.Int).SetBits(wordsOf(b[:l]))
	prod := new(big.Int).Mul(A, B)
	if carry != 0 {
		prod.Add(prod, big.NewInt(carry))
	}

	P := new(big.Int).Lsh(big.NewInt(1), nw)
	P.Add(P, big.NewInt(1))
	prod.Mod(prod, P)

	if len(scratch) > 0 {
		clearUint64(scratch)
	}

	if prod.BitLen() > int(nw) {
		// prod == 2^nw exactly: the ring's -1 representative.
		for i := 0; i < l; i++ {
			result[i] = 0
		}
		return 1
	}

	bits := prod.Bits()
	for i := 0; i < l; i++ {
		if i < len(bits) {
			result[i] = uint64(bits[i])
		} else {
			result[i] = 0
		}
	}
	return 0
}

func wordsOf(t []uint64) []big.Word {
	n := len(t)
	for n > 0 && t[n-1] == 0 {
		n--
	}
	w := make([]big.Word, n)
	for i := 0; i < n; i++ {
		w[i] = big.Word(t[i])
	}
	return w
}

func clearUint64(s []uint64) {
	for i := range s {
		s[i] = 0
	}
}
