package xform

import (
	"github.com/luxfi/ssfft/internal/butterfly"
	"github.com/luxfi/ssfft/internal/limb"
)

// Truncate1 computes trunc output coefficients of the length-2n
// forward transform of ii, for trunc any even value in (0, 2n],
// without computing the coefficients beyond trunc. This matches
// FFT_radix2_truncate1 in the reference: a length <= n truncation
// folds the upper half into the lower half via one elementwise add and
// recurses at half length; a length > n truncation runs one ordinary
// (non-truncated) level on the even output half and recurses the
// truncated computation on the odd half.
func Truncate1(rr Table, rs int, ii Table, n, wn int, w uint, sc *Scratch, trunc int) {
	if trunc == 2*n {
		Forward(rr, rs, ii, n, wn, w, sc)
		return
	}

	if trunc <= n {
		for i := 0; i < n; i++ {
			limb.Add(ii[i], ii[i], ii[i+n])
		}
		Truncate1(rr, rs, ii, n/2, wn, 2*w, sc, trunc)
		return
	}

	for i := 0; i < n; i++ {
		butterfly.Forward(sc.T1, sc.T2, ii[i], ii[n+i], i, wn, w)
		ii[i], sc.T1 = sc.T1, ii[i]
		ii[n+i], sc.T2 = sc.T2, ii[n+i]
	}

	Forward(rr, 1, ii, n/2, wn, 2*w, sc)
	Truncate1(rr[n:], 1, ii[n:], n/2, wn, 2*w, sc, trunc-n)
}

// InverseTruncate1 inverts Truncate1: given trunc transform-domain
// coefficients (trunc <= 2n) in ii[0:trunc) of an input whose
// coefficients from trunc to 2n are zero, with those zero coefficients
// stored in ii[trunc:2n), it recovers the trunc corresponding
// spatial-domain coefficients (scaled by 2n, the same convention
// Inverse leaves to its caller), matching IFFT_radix2_truncate1 in the
// reference. The slots ii[trunc:2n) are read as spatial-domain values
// scaled by 2n, not as transform output, so they must hold zeros on
// entry. The trunc <= n case runs the halved inverse transform, which
// leaves n*(x[i]+x[n+i]) in ii[i], then sets ii[i] = 2*ii[i] - ii[n+i]
// to recover 2n*x[i]; the trunc > n case runs one level of ordinary
// inverse transform on the even half, corrects the odd half for the
// missing upper coefficients via a twiddle fixup, then recurses the
// truncated inverse on the odd half.
//
// TestTruncate1InverseTruncate1RoundTrip covers trunc <= n, trunc > n,
// and a nested trunc > n recursing into trunc > n again. See DESIGN.md.
func InverseTruncate1(rr Table, rs int, ii Table, n, wn int, w uint, sc *Scratch, trunc int) {
	if trunc == 2*n {
		Inverse(rr, rs, ii, n, wn, w, sc)
		return
	}

	if trunc <= n {
		for i := trunc; i < n; i++ {
			limb.Add(ii[i], ii[i], ii[i+n])
			limb.DivByPowerOf2(ii[i], 1)
		}
		InverseTruncate1(rr, rs, ii, n/2, wn, 2*w, sc, trunc)

		for i := 0; i < trunc; i++ {
			limb.Add(ii[i], ii[i], ii[i])
			limb.Sub(ii[i], ii[i], ii[n+i])
		}
		return
	}

	Inverse(ii, 1, ii, n/2, wn, 2*w, sc)

	for i := trunc - n; i < n; i++ {
		limb.Sub(ii[i+n], ii[i], ii[i+n])
		butterfly.MulTwiddle(sc.T1, ii[i+n], i, n, wn, w)
		limb.Add(ii[i], ii[i], ii[i+n])
		ii[i+n], sc.T1 = sc.T1, ii[i+n]
	}

	InverseTruncate1(ii[n:], 1, ii[n:], n/2, wn, 2*w, sc, trunc-n)

	for i := 0; i < trunc-n; i++ {
		butterfly.Inverse(sc.T1, sc.T2, ii[i], ii[n+i], sc.Temp, i, wn, w)
		rr[i], sc.T1 = sc.T1, rr[i]
		rr[n+i], sc.T2 = sc.T2, rr[n+i]
	}
}
