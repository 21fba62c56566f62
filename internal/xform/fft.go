package xform

import (
	"github.com/luxfi/ssfft/internal/assert"
	"github.com/luxfi/ssfft/internal/butterfly"
)

// Forward computes the length-2n radix-2 DIF FFT of ii[0:2n] in place,
// writing results into rr at stride rs (rr and ii may be the same
// table), using a 2n-th root of unity 2^w mod 2^wn+1. This mirrors
// FFT_radix2 in the reference: each level splits the even/odd halves
// with a butterfly, swaps the results into place by pointer, then
// recurses on each half with a doubled root-of-unity step.
//
// n must be a power of two. sc is the scratch pair threaded through
// every butterfly call at every recursion level.
func Forward(rr Table, rs int, ii Table, n, wn int, w uint, sc *Scratch) {
	assert.PowerOfTwo(n, "xform.Forward: n")
	if n == 1 {
		butterfly.Forward(sc.T1, sc.T2, ii[0], ii[1], 0, wn, w)
		rr[0], sc.T1 = sc.T1, rr[0]
		rr[rs], sc.T2 = sc.T2, rr[rs]
		return
	}

	for i := 0; i < n; i++ {
		butterfly.Forward(sc.T1, sc.T2, ii[i], ii[n+i], i, wn, w)
		ii[i], sc.T1 = sc.T1, ii[i]
		ii[n+i], sc.T2 = sc.T2, ii[n+i]
	}

	Forward(rr, 1, ii, n/2, wn, 2*w, sc)
	Forward(rr[n:], 1, ii[n:], n/2, wn, 2*w, sc)
}

// Inverse computes the length-2n radix-2 DIT inverse FFT, the exact
// structural mirror of Forward run bottom-up, matching IFFT_radix2 in
// the reference.
func Inverse(rr Table, rs int, ii Table, n, wn int, w uint, sc *Scratch) {
	assert.PowerOfTwo(n, "xform.Inverse: n")
	if n == 1 {
		butterfly.Inverse(sc.T1, sc.T2, ii[0], ii[rs], sc.Temp, 0, wn, w)
		rr[0], sc.T1 = sc.T1, rr[0]
		rr[rs], sc.T2 = sc.T2, rr[rs]
		return
	}

	Inverse(ii, 1, ii, n/2, wn, 2*w, sc)
	Inverse(ii[n:], 1, ii[n:], n/2, wn, 2*w, sc)

	for i := 0; i < n; i++ {
		butterfly.Inverse(sc.T1, sc.T2, ii[i], ii[n+i], sc.Temp, i, wn, w)
		rr[i], sc.T1 = sc.T1, rr[i]
		rr[n+i], sc.T2 = sc.T2, rr[n+i]
	}
}

// ForwardSqrt2 computes a length-4n radix-2 DIF FFT using √2 as an
// auxiliary root of unity, doubling the transform length reachable
// with a given coefficient ring, matching FFT_radix2_sqrt2 in the
// reference. If w is even the √2 trick is unnecessary (2^(w/2) is
// already an integral root) and this degenerates to an ordinary
// Forward of length 4n with half the root-of-unity step.
func ForwardSqrt2(rr Table, rs int, ii Table, n, wn int, w uint, sc *Scratch) {
	if w%2 == 0 {
		Forward(rr, rs, ii, 2*n, wn, w/2, sc)
		return
	}

	for i := 0; i < 2*n; i++ {
		butterfly.Forward(sc.T1, sc.T2, ii[i], ii[2*n+i], i/2, wn, w)
		ii[i], sc.T1 = sc.T1, ii[i]
		ii[2*n+i], sc.T2 = sc.T2, ii[2*n+i]
		i++
		butterfly.ForwardSqrt2(sc.T1, sc.T2, ii[i], ii[2*n+i], sc.Temp, sc.scratch3, i, wn, w)
		ii[i], sc.T1 = sc.T1, ii[i]
		ii[2*n+i], sc.T2 = sc.T2, ii[2*n+i]
	}

	Forward(rr, 1, ii, n, wn, w, sc)
	Forward(rr[2*n:], 1, ii[2*n:], n, wn, w, sc)
}

// InverseSqrt2 is the structural mirror of ForwardSqrt2.
func InverseSqrt2(rr Table, rs int, ii Table, n, wn int, w uint, sc *Scratch) {
	if w%2 == 0 {
		Inverse(rr, rs, ii, 2*n, wn, w/2, sc)
		return
	}

	Inverse(ii, 1, ii, n, wn, w, sc)
	Inverse(ii[2*n:], 1, ii[2*n:], n, wn, w, sc)

	for i := 0; i < 2*n; i++ {
		butterfly.Inverse(sc.T1, sc.T2, ii[i], ii[2*n+i], sc.Temp, i/2, wn, w)
		rr[i], sc.T1 = sc.T1, rr[i]
		rr[2*n+i], sc.T2 = sc.T2, rr[2*n+i]
		i++
		butterfly.InverseSqrt2(sc.T1, sc.T2, ii[i], ii[2*n+i], sc.Temp, sc.scratch3, i, wn, w)
		rr[i], sc.T1 = sc.T1, rr[i]
		rr[2*n+i], sc.T2 = sc.T2, rr[2*n+i]
	}
}
