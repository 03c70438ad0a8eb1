package stream

import "github.com/jbjava/padic/internal/digit"

// ScaleDownView presents n, a number with scale s, as an integer-aligned
// producer offset by alignment alpha (alpha must be <= s): its digit at
// local index i is n's digit at true index i+alpha. Combinators work
// entirely in this integer-aligned coordinate system so carry/borrow and
// convolution never have to reason about negative indices.
type ScaleDownView struct {
	n     Number
	alpha int64
}

// NewScaleDownView builds a ScaleDownView of n aligned at alpha.
func NewScaleDownView(n Number, alpha int64) *ScaleDownView {
	return &ScaleDownView{n: n, alpha: alpha}
}

func (v *ScaleDownView) Digit(i int64) digit.Digit { return v.n.Digit(i + v.alpha) }
func (v *ScaleDownView) Scale() int64              { return 0 }
func (v *ScaleDownView) Base() digit.Base          { return v.n.Base() }

// IntegerLift presents an integer-aligned Producer (scale 0) as a full
// scaled Number: digit(i) is zero for i < alpha, and inner's digit at
// (i - alpha) otherwise; Scale() reports alpha.
type integerLift struct {
	inner Producer
	alpha int64
}

// IntegerLift builds the Number obtained by re-scaling inner (an
// integer-aligned producer) to alpha.
func IntegerLift(inner Producer, alpha int64) Number {
	return Of(&integerLift{inner: inner, alpha: alpha})
}

func (l *integerLift) Digit(i int64) digit.Digit {
	if i < l.alpha {
		return 0
	}
	return l.inner.Digit(i - l.alpha)
}
func (l *integerLift) Scale() int64     { return l.alpha }
func (l *integerLift) Base() digit.Base { return l.inner.Base() }

// reportedScale wraps an already-correct producer and overrides only the
// value Scale() reports, without touching how Digit is computed. It
// implements the additive scale adapter's leading-zero normalization
// (spec.md §4.6): once a prefix of positions at and after alpha is
// confirmed zero, the result can honestly claim a larger scale, because Digit already returns zero for every index below
// whatever scale is reported.
type reportedScale struct {
	inner Producer
	scale int64
}

func (r *reportedScale) Digit(i int64) digit.Digit { return r.inner.Digit(i) }
func (r *reportedScale) Scale() int64              { return r.scale }
func (r *reportedScale) Base() digit.Base          { return r.inner.Base() }

// NormalizationCap bounds how many leading-zero positions the additive
// scale adapter will scan before giving up (spec.md §4.6, §9: normalizing
// leading-zero drift after subtraction is deliberately capped to avoid
// unbounded scanning).
const NormalizationCap = 10

// NormalizeAdditive scans lift (an IntegerLift already reporting scale
// alpha) for up to NormalizationCap leading zero digits starting at
// alpha, and returns a Number reporting the advanced scale. It never
// re-derives Digit: the advanced scale is sound precisely because the
// positions it skips over were confirmed zero by this scan.
func NormalizeAdditive(lift Producer, alpha int64) Number {
	shift := int64(0)
	for shift < NormalizationCap && lift.Digit(alpha+shift) == 0 {
		shift++
	}
	return Of(&reportedScale{inner: lift, scale: alpha + shift})
}
