// Package config loads the size policy table that chooses which
// transform strategy (plain FFT, the √2 trick, the matrix Fourier
// reshape, GPU-batched pointwise multiply) a Plan uses for a given
// operand size, in the same declarative table-over-code-branches style
// the reference's tuned threshold tables follow.
package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// targetRowFootprintBytes is the row-span size FindBestTransformSize
// optimizes an MFA split towards: a conservative private-L1 budget,
// leaving headroom for the butterfly's own scratch buffers alongside
// the row being processed.
const targetRowFootprintBytes = 24 * 1024

// SizePolicy is a single entry in the policy table: operand sizes at
// or above MinBits use the named strategy until a larger entry's
// MinBits takes over.
type SizePolicy struct {
	MinBits       int    `yaml:"min_bits"`
	Strategy      string `yaml:"strategy"`
	UseMFA        bool   `yaml:"use_mfa"`
	UseGPU        bool   `yaml:"use_gpu"`
	CombinedSqrt2 bool   `yaml:"combined_sqrt2"`
}

// Document is the top-level parsed policy file.
type Document struct {
	Policies []SizePolicy `yaml:"policies"`
}

//go:embed default_policy.yaml
var defaultPolicyYAML []byte

// Default returns the built-in size policy table, parsed from
// default_policy.yaml embedded in the binary.
func Default() (Document, error) {
	return Parse(defaultPolicyYAML)
}

// Parse decodes a size policy document from YAML.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("config: parse size policy: %w", err)
	}
	if len(doc.Policies) == 0 {
		return Document{}, fmt.Errorf("config: size policy document has no policies")
	}
	return doc, nil
}

// For returns the policy that applies to an operand of the given bit
// length: the highest MinBits entry not exceeding bits. Policies must
// be sorted ascending by MinBits; For does not sort them itself, since
// re-sorting on every lookup would defeat the point of a precomputed
// table.
func (d Document) For(bits int) SizePolicy {
	best := d.Policies[0]
	for _, p := range d.Policies {
		if p.MinBits <= bits {
			best = p
		}
	}
	return best
}

// FindBestTransformSize searches the power-of-two (rows, cols)
// factorizations of an n-point transform (rows*cols == n) and returns
// the one whose row span, rows*coeffBytes, sits closest to
// targetRowFootprintBytes: the same row-fits-in-cache reasoning the
// original's mul_fft.c parameter-search comments use to pick an MFA
// split, reduced here to a single closed-form sweep over the O(log n)
// candidate splits rather than a benchmarked table. n must be a power
// of two; coeffBytes is the byte size of one transform coefficient.
func FindBestTransformSize(n, coeffBytes int) (rows, cols int) {
	if n <= 1 || coeffBytes <= 0 {
		return 1, n
	}
	bestRows, bestCols := 1, n
	bestCost := -1
	for r := 1; r <= n; r *= 2 {
		c := n / r
		span := r * coeffBytes
		cost := span - targetRowFootprintBytes
		if cost < 0 {
			cost = -cost
		}
		if bestCost < 0 || cost < bestCost {
			bestCost = cost
			bestRows, bestCols = r, c
		}
	}
	return bestRows, bestCols
}
