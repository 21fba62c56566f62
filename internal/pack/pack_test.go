package pack

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSplitCombineRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	const totalWords = 4
	const bits = 23 // deliberately not a multiple of 64, exercises the bit-granular path
	const outputLimbs = 2

	src := make([]uint64, totalWords)
	for i := range src {
		src[i] = r.Uint64()
	}

	totalBits := totalWords * 64
	length := (totalBits-1)/bits + 1
	dst := make([][]uint64, length)
	for i := range dst {
		dst[i] = make([]uint64, outputLimbs+1)
	}

	got := Split(dst, src, totalBits, bits, outputLimbs)
	require.Equal(t, length, got)

	recombined := make([]uint64, totalWords+1)
	Combine(recombined, dst, length, bits)

	want := new(big.Int).SetBits(toWords(src))
	gotVal := new(big.Int).SetBits(toWords(recombined))
	require.Equal(t, 0, want.Cmp(gotVal), "split+combine must reproduce the original integer")
}

func toWords(t []uint64) []big.Word {
	w := make([]big.Word, len(t))
	for i, v := range t {
		w[i] = big.Word(v)
	}
	return w
}

func TestSplitLimbAlignedMatchesExpectedCoefficients(t *testing.T) {
	// 64-bit aligned coefficients: Split should hand back exactly the
	// source words, one per coefficient, with no bit-shifting involved.
	src := []uint64{0x1111111111111111, 0x2222222222222222, 0x3333333333333333}
	dst := make([][]uint64, 3)
	for i := range dst {
		dst[i] = make([]uint64, 2)
	}

	Split(dst, src, 3*64, 64, 1)

	want := [][]uint64{{0x1111111111111111, 0}, {0x2222222222222222, 0}, {0x3333333333333333, 0}}
	if diff := cmp.Diff(want, dst); diff != "" {
		t.Errorf("Split produced unexpected coefficients (-want +got):\n%s", diff)
	}
}

func TestRingExponentGrowsWithN(t *testing.T) {
	small := RingExponent(64, 8)
	large := RingExponent(64, 64)
	require.GreaterOrEqual(t, large, small)
}
