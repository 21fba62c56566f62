package limb

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

const testWN = 128 // l = 2 limbs

func randCoeff(t *testing.T, r *rand.Rand, l int) []uint64 {
	t.Helper()
	buf := make([]uint64, l+1)
	for i := 0; i < l; i++ {
		buf[i] = r.Uint64()
	}
	Normalize(buf)
	return buf
}

func TestNormalizeIdempotent(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	l := Limbs(testWN)
	for i := 0; i < 50; i++ {
		c := randCoeff(t, r, l)
		before := append([]uint64(nil), c...)
		Normalize(c)
		require.Equal(t, before, c, "Normalize must be idempotent on a canonical value")
	}
}

func TestAddSubRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	l := Limbs(testWN)
	for i := 0; i < 50; i++ {
		a := randCoeff(t, r, l)
		b := randCoeff(t, r, l)
		sum := make([]uint64, l+1)
		Add(sum, a, b)
		back := make([]uint64, l+1)
		Sub(back, sum, b)
		require.True(t, Equal(back, a), "a+b-b must equal a")
	}
}

func TestNegateInvolution(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	l := Limbs(testWN)
	for i := 0; i < 20; i++ {
		a := randCoeff(t, r, l)
		b := append([]uint64(nil), a...)
		Negate(b)
		Negate(b)
		require.True(t, Equal(a, b), "double negate must be identity")
	}
}

func TestMulDivByPowerOf2RoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	l := Limbs(testWN)
	for d := uint(0); d < Bits; d += 7 {
		a := randCoeff(t, r, l)
		b := append([]uint64(nil), a...)
		MulByPowerOf2(b, d)
		DivByPowerOf2(b, d)
		require.True(t, Equal(a, b), "mul/div by 2^%d must round-trip", d)
	}
}

func TestRotateLimbsModFullCycleIsIdentity(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	l := Limbs(testWN)
	a := randCoeff(t, r, l)
	b := append([]uint64(nil), a...)
	for i := 0; i < 2*l; i++ {
		RotateLimbsMod(b, b, l)
	}
	require.True(t, Equal(a, b), "rotating by l, 2l times, returns to start (2^wn ≡ -1 squared is 1)")
}

func TestRotateLimbsModShiftLIsNegate(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	l := Limbs(testWN)
	a := randCoeff(t, r, l)
	rotated := make([]uint64, l+1)
	RotateLimbsMod(rotated, a, l)
	negated := append([]uint64(nil), a...)
	Negate(negated)
	require.True(t, Equal(rotated, negated), "rotate by l limbs must equal negation")
}

func TestLshBSumDiffMatchesAddSub(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	l := Limbs(testWN)
	a := randCoeff(t, r, l)
	b := randCoeff(t, r, l)
	tBuf := make([]uint64, l+1)
	uBuf := make([]uint64, l+1)
	LshBSumDiff(tBuf, uBuf, a, b, 0, 0)

	sum := make([]uint64, l+1)
	diff := make([]uint64, l+1)
	Add(sum, a, b)
	Sub(diff, a, b)
	require.True(t, Equal(tBuf, sum))
	require.True(t, Equal(uBuf, diff))
}

func TestSumDiffRshBInvertsLshBSumDiff(t *testing.T) {
	r := rand.New(rand.NewSource(8))
	l := Limbs(testWN)
	a := randCoeff(t, r, l)
	b := randCoeff(t, r, l)
	tBuf := make([]uint64, l+1)
	uBuf := make([]uint64, l+1)
	LshBSumDiff(tBuf, uBuf, a, b, 1, 1)

	sum := make([]uint64, l+1)
	diff := make([]uint64, l+1)
	SumDiffRshB(sum, diff, tBuf, uBuf, 1, 1)

	// (a+b)/B + (a-b)/B = 2a and (a+b)/B - (a-b)/B = 2b: the sum and
	// difference of the two shifted-back values recover a and b doubled.
	wantSum := make([]uint64, l+1)
	wantDiff := make([]uint64, l+1)
	Add(wantSum, a, a)
	Add(wantDiff, b, b)
	require.True(t, Equal(sum, wantSum))
	require.True(t, Equal(diff, wantDiff))
}

func TestIsZero(t *testing.T) {
	l := Limbs(testWN)
	zero := make([]uint64, l+1)
	require.True(t, IsZero(zero))

	one := make([]uint64, l+1)
	one[0] = 1
	require.False(t, IsZero(one))

	negOne := make([]uint64, l+1)
	negOne[0] = 1
	Negate(negOne)
	require.False(t, IsZero(negOne))
}

func TestToIntFromIntAgreesWithBigInt(t *testing.T) {
	l := Limbs(testWN)
	P := modulus(l)
	val := new(big.Int).Sub(P, big.NewInt(5))
	buf := make([]uint64, l+1)
	fromInt(val, l, buf)
	require.Equal(t, 0, toInt(buf).Cmp(new(big.Int).Mod(val, P)))
}
