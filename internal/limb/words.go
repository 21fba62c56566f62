package limb

import "math/big"

// wordsOf converts a little-endian uint64 slice to big.Word form. It
// trims trailing zero words, as math/big.Int.SetBits requires a
// normalized (no high zero word) slice.
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

// copyWords copies big.Word words into a (larger or equal) uint64
// destination, zero-extending.
func copyWords(dst []uint64, src []big.Word) {
	for i := range dst {
		if i < len(src) {
			dst[i] = uint64(src[i])
		} else {
			dst[i] = 0
		}
	}
}
