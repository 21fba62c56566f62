// Package pack implements the bit-level splitting and recombination
// that sit on either side of a Schönhage–Strassen multiplication: an
// operand's limbs are sliced into equal-sized, zero-padded
// coefficients before the transform, and the convolution's output
// coefficients are shifted back into place and summed afterward.
//
// This mirrors FFT_split / FFT_split_bits / FFT_combine /
// FFT_combine_bits in the reference. Those use hand-rolled mpn shift
// loops with a limb-aligned fast path and a bit-granular general path;
// here both paths are expressed through math/big, which already
// implements exact arbitrary-bit shifts, rather than re-deriving the
// carry bookkeeping those loops perform.
package pack

import (
	"math/big"

	"github.com/luxfi/ssfft/internal/limb"
)

// Split slices src (interpreted as a little-endian array of 64-bit
// words, least significant first) into coefficients of exactly bits
// bits each, zero-extended into output buffers of outputLimbs+1 words,
// writing into dst[0:length) and returning length, the number of
// coefficients written. This covers both the limb-aligned fast path
// (bits a multiple of limb.Bits) and the bit-granular general path of
// the reference in one implementation.
func Split(dst [][]uint64, src []uint64, totalBits, bits, outputLimbs int) int {
	length := (totalBits-1)/bits + 1
	v := new(big.Int).SetBits(wordsOf(src))
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(bits)), big.NewInt(1))
	for i := range dst[:length] {
		clearWords(dst[i])
	}
	for i := 0; i < length; i++ {
		chunk := new(big.Int).And(v, mask)
		copyWordsInto(dst[i][:outputLimbs], chunk.Bits())
		v.Rsh(v, uint(bits))
	}
	return length
}

// Combine adds length coefficients, each output_limbs+1 words wide and
// each shifted by i*bits bits, into dst (interpreted the same way as
// Split's src), matching FFT_combine_bits. dst must already hold the
// value to add into (callers typically start from a zeroed buffer) and
// must be large enough to hold the final shifted sum.
func Combine(dst []uint64, src [][]uint64, length, bits int) {
	acc := new(big.Int).SetBits(wordsOf(dst))
	for i := 0; i < length; i++ {
		c := new(big.Int).SetBits(wordsOf(src[i]))
		acc.Add(acc, new(big.Int).Lsh(c, uint(i*bits)))
	}
	copyWordsInto(dst, acc.Bits())
}

// CoeffBits returns the smallest per-coefficient bit width (at least 1)
// that splits a totalBitsPerOperand-bit operand into n coefficients,
// i.e. ceil(totalBitsPerOperand/n). It adds no headroom for the
// product; RingExponent sizes the ring for that.
func CoeffBits(totalBitsPerOperand, n int) int {
	b := (totalBitsPerOperand + n - 1) / n
	if b < 1 {
		b = 1
	}
	return b
}

// RingExponent returns a ring exponent wn, divisible by limb.Bits,
// sufficient to hold a coefficient of bits-bit inputs convolved over n
// points without overflow: 2*bits (worst-case product magnitude) plus
// log2(n) bits of carry headroom plus 1 spare bit, rounded up to a
// limb.Bits multiple.
func RingExponent(bits, n int) int {
	headroom := 0
	for (1 << uint(headroom)) < n {
		headroom++
	}
	need := 2*bits + headroom + 1
	return ((need + limb.Bits - 1) / limb.Bits) * limb.Bits
}

func clearWords(t []uint64) {
	for i := range t {
		t[i] = 0
	}
}

func wordsOf(t []uint64) []big.Word {
	n := len(t)
	for n > 0 && t[n-1] == 0 {
		n--
	}
	w := make([]big.Word, n)
	for i := 0; i < n; i++ {
		w[i] = big.Word(t[i])
	}
	return w
}

func copyWordsInto(dst []uint64, src []big.Word) {
	for i := range dst {
		if i < len(src) {
			dst[i] = uint64(src[i])
		} else {
			dst[i] = 0
		}
	}
}
