package ssfft

import (
	"github.com/luxfi/ssfft/config"
	"github.com/luxfi/ssfft/gpu"
	"github.com/luxfi/ssfft/internal/paramsel"
)

// Variant names the convolution strategy a Plan dispatches to. Kept as
// a single tagged enum rather than letting callers reach for distinct
// functions directly, per the reference's "dynamic dispatch avoided"
// design note: one dispatcher (dispatch.go) switches on this tag once
// per Plan instead of scattering variant checks through the orchestrator.
type Variant int

const (
	// VariantPlain runs the flat negacyclic convolution directly.
	VariantPlain Variant = iota
	// VariantMFA reshapes the transform into an R×C grid before
	// convolving, for cache locality on large transforms.
	VariantMFA
)

func (v Variant) String() string {
	switch v {
	case VariantPlain:
		return "plain"
	case VariantMFA:
		return "mfa"
	default:
		return "unknown"
	}
}

// PointwiseMul is the per-coefficient multiplier a Plan's convolution
// invokes between the forward and inverse transform stages. It is
// injectable so MulMod2expp1's recursive self-call (the pointwise
// stage of a large multiply may itself be a smaller ssfft.Mul) can be
// substituted with a direct base-case multiplier in tests, matching
// the reference's split between the recursive entry point and
// BaseMulMod2expp1.
type PointwiseMul func(dst, a, b [][]uint64, wn int)

// Plan is the immutable transform configuration a single
// multiplication runs under, combining internal/paramsel's chosen
// parameters with the strategy selection config.SizePolicy drives.
type Plan struct {
	paramsel.Params

	Variant        Variant
	Rows           int // MFA row count; only meaningful when Variant == VariantMFA
	Cols           int // MFA column count; only meaningful when Variant == VariantMFA
	Pointwise      PointwiseMul
	UseCombinedMFA bool // consult mfa.InverseTruncateSqrt2Combined instead of Inverse+post
	BaseMul        BaseMultiplier // base case for Plan.MulMod2expp1; nil means BaseMulMod2expp1
}

// NewPlan derives a Plan for multiplying two operands whose product
// has at most rLimbs limbs. The transform size picks VariantMFA over
// VariantPlain using paramsel.SelectLayout's cache-locality heuristic
// (itself backed by config.FindBestTransformSize); config.Default's
// size policy table then overrides the strategy and pointwise
// multiplier per its declared thresholds for this operand's bit width,
// the same size-triggered dispatch the reference's tuned threshold
// tables use.
func NewPlan(rLimbs int) Plan {
	params := paramsel.Select(rLimbs)
	p := Plan{Params: params, Variant: VariantPlain, Pointwise: defaultPointwise}

	n := params.N()
	coeffBytes := (params.Limbs + 1) * 8
	if rows, cols, ok := paramsel.SelectLayout(n, coeffBytes); ok {
		p.Variant = VariantMFA
		p.Rows, p.Cols = rows, cols
	}

	if doc, err := config.Default(); err == nil {
		policy := doc.For(rLimbs * 64)
		if policy.UseMFA {
			if p.Rows == 0 {
				p.Rows, p.Cols = config.FindBestTransformSize(2*n, coeffBytes)
			}
			p.Variant = VariantMFA
		} else if policy.Strategy == "plain" {
			p.Variant = VariantPlain
		}
		if policy.UseGPU {
			p.Pointwise = gpu.BatchMul
		}
		p.UseCombinedMFA = policy.CombinedSqrt2
	}
	return p
}
