package parser

import (
	"github.com/jbjava/padic/internal/combinator"
	"github.com/jbjava/padic/internal/digit"
	"github.com/jbjava/padic/internal/perr"
	"github.com/jbjava/padic/internal/stream"
)

// parseNumber builds the Number denoted by one NUMBER lexeme, per
// spec.md §6.2 and the literal grammar grounded in
// original_source/src/padic_lang.rs: optional leading underscores (one
// per digit of the leftmost, most-significant run that repeats forever
// leftward), then digits (each either a single 0-9 character or a
// parenthesized decimal run for bases above 10), then an optional
// single '.' marking the fractional boundary.
func parseNumber(p digit.Base, lexeme string) (stream.Number, error) {
	i := 0
	repeatCount := 0
	for i < len(lexeme) && lexeme[i] == '_' {
		repeatCount++
		i++
	}

	var digits []digit.Digit // in typed (most-significant-first) order
	var decimalAt *int

	for i < len(lexeme) {
		c := lexeme[i]
		switch {
		case c == '.':
			if decimalAt != nil {
				return stream.Number{}, perr.New(perr.ParseError, "number %q has two decimal points", lexeme)
			}
			n := len(digits)
			decimalAt = &n
			i++
		case c == '(':
			start := i + 1
			j := start
			for j < len(lexeme) && lexeme[j] >= '0' && lexeme[j] <= '9' {
				j++
			}
			if j == start || j >= len(lexeme) || lexeme[j] != ')' {
				return stream.Number{}, perr.New(perr.ParseError, "malformed parenthesized digit in %q", lexeme)
			}
			val := 0
			for k := start; k < j; k++ {
				val = val*10 + int(lexeme[k]-'0')
			}
			d := digit.Digit(val)
			if err := digit.Validate(p, d); err != nil {
				return stream.Number{}, perr.Wrap(err, perr.DigitOutOfRange, "digit %d not valid for base %d", d, p)
			}
			digits = append(digits, d)
			i = j + 1
		case c >= '0' && c <= '9':
			d := digit.Digit(c - '0')
			if err := digit.Validate(p, d); err != nil {
				return stream.Number{}, perr.Wrap(err, perr.DigitOutOfRange, "digit %d not valid for base %d", d, p)
			}
			digits = append(digits, d)
			i++
		default:
			return stream.Number{}, perr.New(perr.ParseError, "unexpected character %q in number %q", c, lexeme)
		}
	}

	var unscaled stream.Number
	var err error
	switch {
	case repeatCount == 0:
		unscaled, err = stream.FiniteLiteral(p, reverseDigits(digits))
	case repeatCount == len(digits):
		unscaled, err = stream.RepeatingLiteral(p, reverseDigits(digits))
	case repeatCount < len(digits):
		unscaled, err = mixedRepeatLiteral(p, digits, repeatCount)
	default:
		return stream.Number{}, perr.New(perr.ParseError, "cannot repeat more digits than typed in %q", lexeme)
	}
	if err != nil {
		return stream.Number{}, err
	}

	if decimalAt == nil {
		return unscaled, nil
	}
	scale := int64(len(digits) - *decimalAt)
	divisor, err := stream.SingleDigitAt(p, scale, 1)
	if err != nil {
		return stream.Number{}, err
	}
	return combinator.Div(unscaled, divisor)
}

// mixedRepeatLiteral builds the leftmost repeatCount typed digits as a
// repeating cycle, shifts it left past the remaining finite suffix, and
// adds the suffix back in: RepeatingLiteral(prefix) * p^(len-repeat) +
// FiniteLiteral(suffix). A smaller repeatCount than len(digits) means
// only the leading digits repeat; the rest is a finite, non-repeating
// tail.
func mixedRepeatLiteral(p digit.Base, digits []digit.Digit, repeatCount int) (stream.Number, error) {
	repeating, err := stream.RepeatingLiteral(p, reverseDigits(digits[:repeatCount]))
	if err != nil {
		return stream.Number{}, err
	}
	suffix, err := stream.FiniteLiteral(p, reverseDigits(digits[repeatCount:]))
	if err != nil {
		return stream.Number{}, err
	}
	shiftAmount := int64(len(digits) - repeatCount)
	shiftUnit, err := stream.SingleDigitAt(p, shiftAmount, 1)
	if err != nil {
		return stream.Number{}, err
	}
	shifted, err := combinator.Mul(repeating, shiftUnit)
	if err != nil {
		return stream.Number{}, err
	}
	return combinator.Add(shifted, suffix)
}

func reverseDigits(d []digit.Digit) []digit.Digit {
	out := make([]digit.Digit, len(d))
	for i, v := range d {
		out[len(d)-1-i] = v
	}
	return out
}
