package combinator

import (
	"log"

	"github.com/dustin/go-humanize"
	"github.com/jbjava/padic/internal/digit"
	"github.com/jbjava/padic/internal/perr"
	"github.com/jbjava/padic/internal/stream"
)

// zeroScanCap bounds how many leading zero digits the division
// combinator will scan on the divisor before giving up and reporting
// DivisionByZero (spec.md §4.5, §9: zero-divisor detection is
// semi-decidable over an infinite stream, so the scan must be bounded).
const zeroScanCap = 10000

// zeroScanProgressEvery is how often (in scanned zero digits) the
// division combinator logs its "might be dividing by zero" advisory,
// per spec.md §5.
const zeroScanProgressEvery = 100

// div is the division combinator of spec.md §4.5. It produces one
// output digit per pulled remainder digit, using a single modular
// inverse of the divisor's unit digit (computed once, since it never
// changes across the life of the producer).
type div struct {
	p               digit.Base
	divisor         stream.Producer // integer-aligned divisor
	valuation       int64           // k: index of divisor's first nonzero digit
	divisorUnitInv  digit.Digit
	cache           []digit.Digit
	remaining       stream.Number // lazy numerator remainder, queried at scale 0
	remainingOffset int64
}

// newDiv scans divisor (integer-aligned) for its p-adic valuation, bounded
// by zeroScanCap, then builds the division combinator. numerator must
// also be integer-aligned.
func newDiv(p digit.Base, numerator, divisor stream.Producer) (*div, error) {
	if !digit.IsPrime(p) {
		return nil, perr.New(perr.NotInvertible, "division requires a prime base, got %d", p)
	}
	var k int64
	for divisor.Digit(k) == 0 {
		k++
		if k%zeroScanProgressEvery == 0 {
			log.Printf("division: might be dividing by zero, %s zero digits scanned so far", humanize.Comma(k))
		}
		if k >= zeroScanCap {
			return nil, perr.New(perr.DivisionByZero, "divisor looks like zero past %s digits", humanize.Comma(int64(zeroScanCap)))
		}
	}
	unit := divisor.Digit(k)
	inv, err := digit.Inverse(p, unit)
	if err != nil {
		return nil, perr.Wrap(err, perr.NotInvertible, "divisor's unit digit %d has no inverse mod %d", unit, p)
	}
	return &div{
		p:              p,
		divisor:        divisor,
		valuation:      k,
		divisorUnitInv: inv,
		remaining:      stream.IntegerLift(numerator, 0),
	}, nil
}

func (d *div) Digit(index int64) digit.Digit {
	adjusted := index + d.valuation
	if adjusted < 0 {
		return 0
	}
	for int64(len(d.cache)) <= adjusted {
		m := int64(len(d.cache))
		r := d.remaining.Digit(d.remainingOffset)
		var out digit.Digit
		if r != 0 {
			lo, _ := digit.MulOverflow(d.p, r, d.divisorUnitInv)
			out = lo
		}
		if out != 0 {
			// remaining -= (out at position m) * (divisor shifted right by
			// valuation, so its unit digit sits at index 0)
			single, err := stream.SingleDigitAt(d.p, m, out)
			if err == nil {
				shiftedDivisor := stream.Of(stream.NewScaleDownView(stream.Of(d.divisor), d.valuation))
				product, err := Mul(single, shiftedDivisor)
				if err == nil {
					if next, err := Sub(d.remaining, product); err == nil {
						d.remaining = next
					}
				}
			}
		}
		d.remainingOffset++
		d.cache = append(d.cache, out)
	}
	return d.cache[adjusted]
}

func (d *div) Scale() int64     { return -d.valuation }
func (d *div) Base() digit.Base { return d.p }

// Div returns a / b as a new lazily-evaluated stream. The base must be
// prime; the result's scale is scale(a) - scale(b) - the p-adic
// valuation of b's integer-aligned part.
func Div(a, b stream.Number) (stream.Number, error) {
	p, err := checkBases(a, b)
	if err != nil {
		return stream.Number{}, err
	}
	numerator := stream.NewScaleDownView(a, a.Scale())
	denominator := stream.NewScaleDownView(b, b.Scale())
	inner, err := newDiv(p, numerator, denominator)
	if err != nil {
		return stream.Number{}, err
	}
	outerScale := a.Scale() - b.Scale()
	return stream.Of(&divOuter{inner: inner, scale: outerScale}), nil
}

// divOuter reindexes the valuation-relative div producer (which reports
// its own scale as -valuation) to the true scale(a)-scale(b)-valuation
// demanded by spec.md invariant 5.
type divOuter struct {
	inner *div
	scale int64
}

func (o *divOuter) Digit(i int64) digit.Digit { return o.inner.Digit(i - o.scale) }
func (o *divOuter) Scale() int64              { return o.scale + o.inner.Scale() }
func (o *divOuter) Base() digit.Base          { return o.inner.Base() }
