package xform

import (
	"github.com/luxfi/ssfft/internal/assert"
	"github.com/luxfi/ssfft/internal/butterfly"
	"github.com/luxfi/ssfft/internal/limb"
)

// NegacyclicConvolve computes the length-n negacyclic (skew-circular)
// convolution of a and b modulo 2^wn+1, using the pre-twist + ordinary
// FFT + post-twist construction: twisting coefficient i by z1^i before
// an ordinary cyclic FFT turns the cyclic convolution the FFT computes
// into a negacyclic one, matching FFT_radix2_negacyclic in the
// reference. w must satisfy w*(n/2) == wn: since 2^wn == -1 by
// construction of the ring, this makes 2^w exactly the principal root
// the inner Forward/Inverse calls need. n must be a power of two.
//
// a, b, and dst are n-entry tables; dst may alias a or b.
func NegacyclicConvolve(dst, a, b Table, n, wn int, w uint) {
	assert.PowerOfTwo(n, "xform.NegacyclicConvolve: n")
	l := limb.Limbs(uint(wn))
	if n == 1 {
		limb.Mul(dst[0], a[0], b[0])
		return
	}
	sc := NewScratch(l)

	ta := twistedCopy(a, n, wn, w)
	tb := twistedCopy(b, n, wn, w)

	Forward(ta, 1, ta, n/2, wn, w, sc)
	Forward(tb, 1, tb, n/2, wn, w, sc)

	prod := NewTable(n, l)
	for i := 0; i < n; i++ {
		prod[i] = make([]uint64, l+1)
		limb.Mul(prod[i], ta[i], tb[i])
	}

	Inverse(prod, 1, prod, n/2, wn, w, sc)

	for i := 0; i < n; i++ {
		limb.DivByCount(prod[i], n)
		butterfly.MulTwiddleNegacyclic(dst[i], prod[i], -i, n, wn, w)
	}
}

func twistedCopy(src Table, n, wn int, w uint) Table {
	l := limb.Limbs(uint(wn))
	out := NewTable(n, l)
	for i := 0; i < n; i++ {
		butterfly.MulTwiddleNegacyclic(out[i], src[i], i, n, wn, w)
	}
	return out
}
