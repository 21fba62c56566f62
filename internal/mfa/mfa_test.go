package mfa

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/ssfft/internal/limb"
	"github.com/luxfi/ssfft/internal/xform"
)

const testWN = 256

func randTable(r *rand.Rand, n, l int) xform.Table {
	t := xform.NewTable(n, l)
	for i := range t {
		for j := 0; j < l; j++ {
			t[i][j] = r.Uint64()
		}
		limb.Normalize(t[i])
	}
	return t
}

func TestForwardInverseRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	l := limb.Limbs(testWN)
	const rows, cols = 4, 4 // N = 16
	w := uint(testWN / ((rows * cols) / 2))

	orig := randTable(r, rows*cols, l)
	work := make(xform.Table, len(orig))
	for i, c := range orig {
		work[i] = append([]uint64(nil), c...)
	}

	sc := xform.NewScratch(l)
	Forward(work, rows, cols, testWN, w, sc)
	Inverse(work, rows, cols, testWN, w, sc)

	for i := range work {
		limb.DivByCount(work[i], rows*cols)
	}

	for i := range orig {
		require.True(t, limb.Equal(work[i], orig[i]), "mfa Forward/Inverse must round-trip at index %d", i)
	}
}

func TestPointwiseMultiplyImplementsConvolution(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	l := limb.Limbs(testWN)
	const rows, cols = 4, 4
	n := rows * cols
	w := uint(testWN / (n / 2))

	a := randTable(r, n, l)
	b := randTable(r, n, l)

	ta := make(xform.Table, n)
	tb := make(xform.Table, n)
	for i := range a {
		ta[i] = append([]uint64(nil), a[i]...)
		tb[i] = append([]uint64(nil), b[i]...)
	}

	sc := xform.NewScratch(l)
	Forward(ta, rows, cols, testWN, w, sc)
	Forward(tb, rows, cols, testWN, w, sc)

	prod := xform.NewTable(n, l)
	for i := 0; i < n; i++ {
		limb.Mul(prod[i], ta[i], tb[i])
	}
	Inverse(prod, rows, cols, testWN, w, sc)
	for i := range prod {
		limb.DivByCount(prod[i], n)
	}

	want := cyclicConvolution(a, b, n, l)

	for i := range want {
		require.True(t, limb.Equal(prod[i], want[i]), "mfa pointwise product must equal cyclic convolution at index %d", i)
	}
}

func TestCombinedMFAMatchesPlainSequence(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	l := limb.Limbs(testWN)
	const rows, cols = 4, 4
	n := rows * cols
	w := uint(testWN / (n / 2))

	plain := randTable(r, n, l)
	combined := make(xform.Table, n)
	for i, c := range plain {
		combined[i] = append([]uint64(nil), c...)
	}

	sc := xform.NewScratch(l)
	Inverse(plain, rows, cols, testWN, w, sc)

	var postRan bool
	InverseTruncateSqrt2Combined(combined, rows, cols, testWN, w, sc, func(xform.Table) {
		postRan = true
	})

	require.True(t, postRan, "InverseTruncateSqrt2Combined must invoke its post callback")
	for i := range plain {
		require.True(t, limb.Equal(plain[i], combined[i]), "combined inverse must match Inverse at index %d", i)
	}
}

// cyclicConvolution is a schoolbook O(n^2) reference for ordinary
// (wraparound-without-sign-flip) convolution, used only to check
// mfa's pointwise-multiply-in-transform-domain property in tests.
func cyclicConvolution(a, b xform.Table, n, l int) xform.Table {
	out := xform.NewTable(n, l)
	term := make([]uint64, l+1)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			limb.Mul(term, a[i], b[j])
			limb.Add(out[(i+j)%n], out[(i+j)%n], term)
		}
	}
	return out
}
