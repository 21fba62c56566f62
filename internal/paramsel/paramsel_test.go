package paramsel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectGrowsDepthWithSize(t *testing.T) {
	small := Select(4)
	large := Select(4096)
	require.GreaterOrEqual(t, large.Depth, small.Depth)
	require.Equal(t, 0, large.WN()%64, "ring exponent must be limb-aligned")
	require.Equal(t, 0, small.WN()%64, "ring exponent must be limb-aligned")
}

func TestSelectCoefficientsDoNotOverflow(t *testing.T) {
	for _, rLimbs := range []int{1, 8, 64, 1000} {
		p := Select(rLimbs)
		require.Greater(t, p.WN(), 2*p.Bits1, "ring must have headroom over twice the coefficient width")
	}
}

func TestPreferMatrixLayoutMonotonic(t *testing.T) {
	require.False(t, PreferMatrixLayout(1, 16))
	require.True(t, PreferMatrixLayout(1<<20, 64))
}
