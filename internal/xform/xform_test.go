package xform

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/ssfft/internal/limb"
)

const testWN = 256

func randTable(r *rand.Rand, n, l int) Table {
	t := NewTable(n, l)
	for i := range t {
		for j := 0; j < l; j++ {
			t[i][j] = r.Uint64()
		}
		limb.Normalize(t[i])
	}
	return t
}

func cloneTable(t Table) Table {
	out := make(Table, len(t))
	for i, c := range t {
		out[i] = append([]uint64(nil), c...)
	}
	return out
}

func requireTablesEqual(t *testing.T, got, want Table, msg string) {
	t.Helper()
	for i := range want {
		require.True(t, limb.Equal(got[i], want[i]), "%s: coefficient %d mismatch", msg, i)
	}
}

func TestForwardInverseRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	l := limb.Limbs(testWN)
	w := uint(8)
	n := 4 // transforms 2n=8 points
	orig := randTable(r, 2*n, l)
	work := cloneTable(orig)
	sc := NewScratch(l)

	Forward(work, 1, work, n, testWN, w, sc)
	Inverse(work, 1, work, n, testWN, w, sc)

	for i := range work {
		limb.DivByCount(work[i], 2*n)
	}
	requireTablesEqual(t, work, orig, "Forward/Inverse must round-trip up to 1/(2n) scaling")
}

func TestForwardSqrt2InverseSqrt2RoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	l := limb.Limbs(testWN)
	w := uint(3) // odd, exercises the sqrt2 path
	n := 2       // transforms 4n=8 points
	orig := randTable(r, 4*n, l)
	work := cloneTable(orig)
	sc := NewScratch(l)

	ForwardSqrt2(work, 1, work, n, testWN, w, sc)
	InverseSqrt2(work, 1, work, n, testWN, w, sc)

	for i := range work {
		limb.DivByCount(work[i], 4*n)
	}
	requireTablesEqual(t, work, orig, "ForwardSqrt2/InverseSqrt2 must round-trip up to 1/(4n) scaling")
}

func TestNegacyclicConvolveMatchesNaive(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	l := limb.Limbs(testWN)
	// w must make 2^w a genuine principal root: w*(m/2) == wn.
	m := 8
	w := uint(testWN / (m / 2))

	a := randTable(r, m, l)
	b := randTable(r, m, l)

	got := NewTable(m, l)
	NegacyclicConvolve(got, a, b, m, testWN, w)

	want := NewTable(m, l)
	NaiveConvolution(want, a, b, m, testWN)

	requireTablesEqual(t, got, want, "NegacyclicConvolve must match schoolbook reference")
}

// TestTruncate1InverseTruncate1RoundTrip checks Truncate1 followed by
// InverseTruncate1 recovers the first trunc coefficients of a
// zero-padded-beyond-trunc input, for a (n, trunc) pair chosen so the
// trunc > n branch of InverseTruncate1 recurses into a second trunc > n
// branch (n=8, trunc=14 recurses to n'=4, trunc'=6, itself > n').
// InverseTruncate1 reads slots trunc..2n as the zero input
// coefficients, so those slots are cleared before it runs.
func TestTruncate1InverseTruncate1RoundTrip(t *testing.T) {
	l := limb.Limbs(testWN)
	w := uint(4)

	cases := []struct{ n, trunc int }{
		{4, 4},  // trunc == n, exercises the trunc <= n branch only
		{4, 6},  // trunc > n, single level (trunc-n=2 <= n'=2)
		{8, 14}, // trunc > n nested twice: trunc-n=6 > n/2=4
	}

	for _, c := range cases {
		c := c
		t.Run("", func(t *testing.T) {
			r := rand.New(rand.NewSource(int64(c.n*100 + c.trunc)))
			orig := randTable(r, 2*c.n, l)
			for i := c.trunc; i < 2*c.n; i++ {
				for j := range orig[i] {
					orig[i][j] = 0
				}
			}

			truncated := cloneTable(orig)
			sc1 := NewScratch(l)
			Truncate1(truncated, 1, truncated, c.n, testWN, w, sc1, c.trunc)

			recovered := cloneTable(truncated)
			for i := c.trunc; i < 2*c.n; i++ {
				for j := range recovered[i] {
					recovered[i][j] = 0
				}
			}
			sc2 := NewScratch(l)
			InverseTruncate1(recovered, 1, recovered, c.n, testWN, w, sc2, c.trunc)

			for i := 0; i < c.trunc; i++ {
				limb.DivByCount(recovered[i], 2*c.n)
			}

			for i := 0; i < c.trunc; i++ {
				require.True(t, limb.Equal(recovered[i], orig[i]),
					"n=%d trunc=%d: InverseTruncate1 must recover coefficient %d", c.n, c.trunc, i)
			}
		})
	}
}

func TestTruncate1FullLengthMatchesForward(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	l := limb.Limbs(testWN)
	w := uint(8)
	n := 4

	orig := randTable(r, 2*n, l)
	viaForward := cloneTable(orig)
	viaTruncate := cloneTable(orig)

	sc1 := NewScratch(l)
	sc2 := NewScratch(l)
	Forward(viaForward, 1, viaForward, n, testWN, w, sc1)
	Truncate1(viaTruncate, 1, viaTruncate, n, testWN, w, sc2, 2*n)

	requireTablesEqual(t, viaTruncate, viaForward, "Truncate1 at trunc=2n must match Forward")
}
