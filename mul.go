package ssfft

import (
	"github.com/luxfi/ssfft/internal/limb"
	"github.com/luxfi/ssfft/internal/pack"
	"github.com/luxfi/ssfft/internal/xform"
)

// Mul writes the product of a and b (each a little-endian array of
// 64-bit limbs, least significant first) into result, which must have
// room for len(a)+len(b) limbs, and returns the number of limbs of
// result that are significant (trailing limbs beyond this may be left
// zero or untouched garbage from a reused buffer).
//
// This is the core's outward-facing entry point, FFT_mulmod_2expp1's
// counterpart in the reference: it picks a plan, splits both operands
// into transform coefficients, runs the negacyclic convolution, and
// recombines. The convolution length is chosen generously enough that
// the convolution never wraps (see choosePlan and DESIGN.md), so no
// sign-correction pass over the combined limbs is needed: every
// coefficient the convolution produces is already the true,
// non-negative digit of the product in that position.
func Mul(result, a, b []uint64) int {
	n1, n2 := len(a), len(b)
	if n1 == 0 || n2 == 0 {
		return 0
	}

	plan, _, _ := choosePlan(n1, n2)
	bigN := 2 * plan.N()
	l := plan.Limbs

	ta := xform.NewTable(bigN, l)
	tb := xform.NewTable(bigN, l)
	pack.Split(ta, a, n1*limb.Bits, plan.Bits1, l)
	pack.Split(tb, b, n2*limb.Bits, plan.Bits1, l)

	prod := xform.NewTable(bigN, l)
	plan.convolve(prod, ta, tb)

	for i := range result {
		result[i] = 0
	}
	pack.Combine(result, prod, bigN, plan.Bits1)

	sig := len(result)
	for sig > 0 && result[sig-1] == 0 {
		sig--
	}
	if sig == 0 {
		sig = 1
	}
	return sig
}

// choosePlan derives a Plan whose transform length is large enough
// that splitting n1 and n2 limb-wide operands into Plan.Bits1-bit
// coefficients never needs more than the transform's full length,
// i.e. j1+j2 <= 2*Plan.N(): the classic FFT-multiply sizing guarantee
// that makes the negacyclic convolution equal the true, unwrapped
// linear convolution. paramsel.Select's closed-form estimate from
// rLimbs alone can undershoot for lopsided operand sizes (n1 very
// different from n2), so this grows the size hint and re-derives until
// the real j1, j2 fit.
func choosePlan(n1, n2 int) (plan Plan, j1, j2 int) {
	rLimbs := n1 + n2
	for {
		p := NewPlan(rLimbs)
		bits1 := p.Bits1
		j1 = ceilDiv(n1*limb.Bits, bits1)
		j2 = ceilDiv(n2*limb.Bits, bits1)
		if j1+j2 <= 2*p.N() {
			return p, j1, j2
		}
		rLimbs = rLimbs*3/2 + 1
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
