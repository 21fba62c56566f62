package ssfft

import (
	"github.com/luxfi/ssfft/internal/butterfly"
	"github.com/luxfi/ssfft/internal/limb"
	"github.com/luxfi/ssfft/internal/mfa"
	"github.com/luxfi/ssfft/internal/xform"
)

// convolve runs the length-N negacyclic convolution dst = a*b (mod
// 2^wn+1, mod x^N+1) that the orchestration's pointwise-multiply step
// needs, dispatching on p.Variant exactly once rather than branching
// throughout the caller, per the reference's "dynamic dispatch
// avoided" design note. a, b, dst are N-entry tables.
func (p Plan) convolve(dst, a, b xform.Table) {
	switch p.Variant {
	case VariantMFA:
		p.convolveMFA(dst, a, b)
	default:
		p.convolvePlain(dst, a, b)
	}
}

// convolvePlain is xform.NegacyclicConvolve with the pointwise-multiply
// stage routed through p.Pointwise (CPU limb.Mul by default, or
// the gpu package's batched multiplier), rather than NegacyclicConvolve's
// own fixed limb.Mul loop.
func (p Plan) convolvePlain(dst, a, b xform.Table) {
	n := 2 * p.N()
	wn := p.WN()
	w := uint(p.W)
	l := limb.Limbs(uint(wn))

	ta := twistedCopy(a, n, wn, w)
	tb := twistedCopy(b, n, wn, w)

	sc := xform.NewScratch(l)
	xform.Forward(ta, 1, ta, n/2, wn, w, sc)
	xform.Forward(tb, 1, tb, n/2, wn, w, sc)

	prod := xform.NewTable(n, l)
	p.Pointwise(prod, ta, tb, wn)

	xform.Inverse(prod, 1, prod, n/2, wn, w, sc)

	for i := 0; i < n; i++ {
		limb.DivByCount(prod[i], n)
		butterfly.MulTwiddleNegacyclic(dst[i], prod[i], -i, n, wn, w)
	}
}

// convolveMFA is convolvePlain's counterpart using internal/mfa's
// entry points for the forward/inverse passes instead of
// internal/xform's directly: the R-by-C column/twiddle/row
// decomposition internal/mfa runs is a reshaping of the same flat
// transform convolvePlain calls, so it produces the same result
// through a different access pattern (column-then-row passes with
// small strides, the cache-blocking motivation FFT_radix2_mfa
// describes in the reference) rather than convolvePlain's single flat
// recursion. See internal/mfa's package doc and DESIGN.md.
func (p Plan) convolveMFA(dst, a, b xform.Table) {
	n := 2 * p.N()
	wn := p.WN()
	w := uint(p.W)
	l := limb.Limbs(uint(wn))

	ta := twistedCopy(a, n, wn, w)
	tb := twistedCopy(b, n, wn, w)

	sc := xform.NewScratch(l)
	mfa.Forward(ta, p.Rows, p.Cols, wn, w, sc)
	mfa.Forward(tb, p.Rows, p.Cols, wn, w, sc)

	prod := xform.NewTable(n, l)
	p.Pointwise(prod, ta, tb, wn)

	untwist := func(t xform.Table) {
		for i := 0; i < n; i++ {
			limb.DivByCount(t[i], n)
			butterfly.MulTwiddleNegacyclic(dst[i], t[i], -i, n, wn, w)
		}
	}

	if p.UseCombinedMFA {
		mfa.InverseTruncateSqrt2Combined(prod, p.Rows, p.Cols, wn, w, sc, untwist)
		return
	}

	mfa.Inverse(prod, p.Rows, p.Cols, wn, w, sc)
	untwist(prod)
}

func twistedCopy(src xform.Table, n, wn int, w uint) xform.Table {
	l := limb.Limbs(uint(wn))
	out := xform.NewTable(n, l)
	for i := 0; i < n; i++ {
		butterfly.MulTwiddleNegacyclic(out[i], src[i], i, n, wn, w)
	}
	return out
}

func defaultPointwise(dst, a, b [][]uint64, wn int) {
	for i := range a {
		limb.Mul(dst[i], a[i], b[i])
	}
}
