// Package limb implements the modular arithmetic primitives that every
// higher layer of ssfft composes: normalization, signed small-value
// addition, power-of-two shifts, negation and the fused sum/difference
// shifts used by the butterfly stage, all modulo P = 2^(Bits*l)+1 on
// (l+1)-word coefficient buffers.
//
// A coefficient is a []uint64 of length l+1. Word l is the carry word:
// per the data-model invariant, the coefficient's value is
// body + carry*2^(Bits*l), where body is the unsigned integer formed by
// words 0..l-1 and carry is word l reinterpreted as a signed two's
// complement integer. Reducing modulo P folds carry*2^(Bits*l) to
// -carry, since 2^(Bits*l) ≡ -1 (mod P).
//
// Every exported function here fully normalizes its result to the
// canonical representative in [0, 2^(Bits*l)] (carry in {0,1}, and
// carry=1 only when body=0, representing -1) rather than the lazier
// {-1,0,1,2} carry range the reference implementation tolerates
// between stages. This trades the reference's avoid-normalizing-until-
// you-must performance trick for a primitive set whose correctness is
// easy to state and check: every function is idempotent under
// Normalize and composes without hidden carry-range preconditions.
// ripple.go's internals still pass a small, bounded, possibly-negative
// carry scalar between its own helper calls (mirroring the reference's
// tolerated range) but every exported entry point collapses that
// scalar through Normalize before returning, so the invariant above
// holds at every package boundary. See DESIGN.md for the rationale.
package limb

import "math/big"

// Bits is the machine word width ssfft operates on.
const Bits = 64

// Limbs returns l = wn/Bits for a coefficient modulus 2^wn+1, i.e. the
// number of body words (the coefficient buffer itself is l+1 words).
func Limbs(wn uint) int {
	return int(wn / Bits)
}

var one = big.NewInt(1)

// modulus returns P = 2^(Bits*l) + 1.
func modulus(l int) *big.Int {
	return new(big.Int).Add(new(big.Int).Lsh(one, uint(Bits*l)), one)
}

// toInt interprets a coefficient buffer as a (possibly non-normalized,
// possibly negative) integer.
func toInt(t []uint64) *big.Int {
	l := len(t) - 1
	body := new(big.Int).SetBits(wordsOf(t[:l]))
	carry := int64(t[l])
	if carry == 0 {
		return body
	}
	shifted := new(big.Int).Lsh(big.NewInt(carry), uint(Bits*l))
	return shifted.Add(shifted, body)
}

// fromInt writes the canonical representative of v (mod P) into t,
// which must have length l+1.
func fromInt(v *big.Int, l int, t []uint64) {
	P := modulus(l)
	r := new(big.Int).Mod(v, P)
	bound := new(big.Int).Lsh(one, uint(Bits*l))
	clearWords(t)
	if r.Cmp(bound) == 0 {
		t[l] = 1
		return
	}
	copyWords(t[:l], r.Bits())
}

func clearWords(t []uint64) {
	for i := range t {
		t[i] = 0
	}
}

// Normalize reduces t (length l+1) to the canonical representative of
// its residue mod P: body in [0, 2^(Bits*l)), carry in {0,1}, carry=1
// implying body=0 (the representation of -1).
func Normalize(t []uint64) {
	l := len(t) - 1
	fromInt(toInt(t), l, t)
}

// AddSmall adds the signed value c to t (mod P), normalizing the
// result. The fast path (c fits in the low word without touching the
// carry word) is checked first, matching the reference's "no
// propagation needed" shortcut; the general path falls back to the
// same big.Int reduction every other primitive uses.
func AddSmall(t []uint64, c int64) {
	l := len(t) - 1
	if c >= 0 {
		sum := t[0] + uint64(c)
		if sum >= t[0] && t[l] == 0 {
			// No carry out of word 0 and no pre-existing carry word:
			// safe to stay purely in the unnormalized body, but we
			// still canonicalize to keep the idempotence invariant.
			t[0] = sum
			Normalize(t)
			return
		}
	}
	fromInt(new(big.Int).Add(toInt(t), big.NewInt(c)), l, t)
}

// Add sets dst = a+b (mod P). dst may alias a or b: the body sum and
// carry-word combination are computed into a fresh buffer before
// copying into dst, the way ripple.go's RotateLimbsMod does. See
// ripple.go.
func Add(dst, a, b []uint64) {
	ripplePlus(dst, a, b)
}

// Sub sets dst = a-b (mod P). dst may alias a or b.
func Sub(dst, a, b []uint64) {
	rippleMinus(dst, a, b)
}

// Mul sets dst = a*b (mod P). dst may alias a or b. This is the
// pointwise-multiply stage every FFT-based convolution bottoms out in
// once coefficients are transform-domain scalars; the gpu package
// provides a batched accelerator for this same operation.
func Mul(dst, a, b []uint64) {
	l := len(a) - 1
	fromInt(new(big.Int).Mul(toInt(a), toInt(b)), l, dst)
}

// Negate sets t to -t (mod P), via the genuine Sub above with a zero
// left-hand side.
func Negate(t []uint64) {
	zero := make([]uint64, len(t))
	Sub(t, zero, t)
}

// MulByPowerOf2 sets t to t*2^d (mod P) for 0 <= d < Bits.
func MulByPowerOf2(t []uint64, d uint) {
	if d == 0 {
		Normalize(t)
		return
	}
	l := len(t) - 1
	fromInt(new(big.Int).Lsh(toInt(t), d), l, t)
}

// DivByPowerOf2 sets t to t/2^d (mod P) for 0 <= d < Bits, i.e.
// multiplication by the modular inverse of 2^d.
func DivByPowerOf2(t []uint64, d uint) {
	if d == 0 {
		Normalize(t)
		return
	}
	l := len(t) - 1
	P := modulus(l)
	inv := new(big.Int).ModInverse(new(big.Int).Lsh(one, d), P)
	fromInt(new(big.Int).Mul(toInt(t), inv), l, t)
}

// DivByCount sets t to t/n (mod P), where n is a power of two of any
// size (unlike DivByPowerOf2, whose shift must fit under Bits). This
// is the final 1/n scaling every inverse transform applies once, after
// which no further division is needed.
func DivByCount(t []uint64, n int) {
	d := 0
	for (n >> uint(d)) > 1 {
		d++
	}
	if d == 0 {
		Normalize(t)
	}
	for d > 0 {
		chunk := d
		if chunk > int(Bits-1) {
			chunk = int(Bits - 1)
		}
		DivByPowerOf2(t, uint(chunk))
		d -= chunk
	}
}

// LshBSumDiff and SumDiffRshB (the fused sum/difference-with-shift
// primitives the butterfly stage composes) live in ripple.go, next to
// the ripple-carry machinery they're built from.

// IsZero reports whether the normalized value of t is zero.
func IsZero(t []uint64) bool {
	l := len(t) - 1
	tmp := make([]uint64, l+1)
	copy(tmp, t)
	Normalize(tmp)
	if tmp[l] != 0 {
		return false
	}
	for _, w := range tmp[:l] {
		if w != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether a and b represent the same residue mod P.
func Equal(a, b []uint64) bool {
	return toInt(normalizedCopy(a)).Cmp(toInt(normalizedCopy(b))) == 0
}

func normalizedCopy(t []uint64) []uint64 {
	c := make([]uint64, len(t))
	copy(c, t)
	Normalize(c)
	return c
}
