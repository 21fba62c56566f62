package xform

import "github.com/luxfi/ssfft/internal/limb"

// NaiveConvolution computes the length-m negacyclic convolution of a
// and b by schoolbook accumulation with wraparound sign flip, matching
// fft_naive_convolution_1 in the reference: r[i] = sum_{j} a[j]*b[i-j]
// for i-j in [0,m), minus the wrapped terms where i-j < 0 (the
// negacyclic ring identifies x^m with -1). It exists purely as an
// O(m^2) correctness oracle for NegacyclicConvolve in tests; it is
// never used on the hot path.
func NaiveConvolution(dst, a, b Table, m, wn int) {
	l := limb.Limbs(uint(wn))
	acc := make(Table, m)
	for i := range acc {
		acc[i] = make([]uint64, l+1)
	}

	term := make([]uint64, l+1)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			k := i + j
			limb.Mul(term, a[i], b[j])
			if k < m {
				limb.Add(acc[k], acc[k], term)
			} else {
				limb.Sub(acc[k-m], acc[k-m], term)
			}
		}
	}
	for i := 0; i < m; i++ {
		copy(dst[i], acc[i])
	}
}
