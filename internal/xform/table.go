// Package xform implements the radix-2 DIF/DIT Fermat-ring transforms
// that sit above internal/butterfly: the plain and √2-trick FFT/IFFT
// kernels, their truncated-length variants, a negacyclic wrapper, and
// a schoolbook reference convolution used to check them in tests.
//
// A transform operates on a Table, an array of coefficient pointers.
// Every kernel here follows the reference's central performance
// discipline: never copy a coefficient body, always swap the pointer
// that names it. Each butterfly writes into the Scratch buffers, and
// the kernel then exchanges those scratch pointers with the table
// entries in place rather than copying coefficient contents.
package xform

// Table is an array of coefficient buffers, addressed the way the
// reference's mp_limb_t** arrays are: entry i is swapped, not copied,
// whenever a kernel produces a new value for slot i.
type Table [][]uint64

// Swap exchanges the buffers at indices i and j without copying their
// contents. The kernels in this package do the same kind of pointer
// exchange inline, between a table entry and a Scratch buffer.
func (t Table) Swap(i, j int) {
	t[i], t[j] = t[j], t[i]
}

// NewTable allocates n coefficient buffers of l+1 words each.
func NewTable(n, l int) Table {
	t := make(Table, n)
	for i := range t {
		t[i] = make([]uint64, l+1)
	}
	return t
}

// Scratch holds the working buffers every kernel call threads through
// explicitly (never as package-level state), mirroring the reference's
// t1/t2/temp triple passed down the FFT_radix2 recursion.
type Scratch struct {
	T1, T2     []uint64
	Temp       []uint64
	scratch3   []uint64
	scratch4   []uint64
}

// NewScratch allocates a Scratch sized for coefficients of l+1 words.
func NewScratch(l int) *Scratch {
	return &Scratch{
		T1:       make([]uint64, l+1),
		T2:       make([]uint64, l+1),
		Temp:     make([]uint64, l+1),
		scratch3: make([]uint64, l+1),
		scratch4: make([]uint64, l+1),
	}
}

func (s *Scratch) limbs() int { return len(s.T1) - 1 }
