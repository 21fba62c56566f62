package butterfly

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/ssfft/internal/limb"
)

func TestMulTwiddleNegacyclicRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	l := limb.Limbs(testWN)
	w := uint(2)
	n := 8
	for i := 0; i < n; i++ {
		a := randCoeff(r, l)
		twisted := make([]uint64, l+1)
		MulTwiddleNegacyclic(twisted, a, i, n, testWN, w)
		back := make([]uint64, l+1)
		MulTwiddleNegacyclicInverse(back, twisted, i, n, testWN, w)
		require.True(t, limb.Equal(a, back), "negacyclic twist/untwist must round-trip at i=%d", i)
	}
}

func TestMulTwiddleSqrt2MatchesHalfExponent(t *testing.T) {
	r := rand.New(rand.NewSource(12))
	l := limb.Limbs(testWN)
	w := uint(4) // even, so i*w is even for every i
	for i := 0; i < 8; i++ {
		a := randCoeff(r, l)
		got := make([]uint64, l+1)
		MulTwiddleSqrt2(got, a, i, 8, testWN, w)
		want := make([]uint64, l+1)
		MulByExponent(want, a, i*int(w)/2, testWN)
		require.True(t, limb.Equal(got, want), "i=%d", i)
	}
}
