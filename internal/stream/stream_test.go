package stream

import (
	"testing"

	"github.com/jbjava/padic/internal/digit"
)

func TestFiniteLiteralDigits(t *testing.T) {
	n, err := FiniteLiteral(7, []digit.Digit{1, 1}) // digits[0]=units=1, digits[1]=p's=1 -> "11"
	if err != nil {
		t.Fatalf("FiniteLiteral: %v", err)
	}
	if n.Digit(0) != 1 || n.Digit(1) != 1 {
		t.Fatalf("got digit0=%d digit1=%d, want 1,1", n.Digit(0), n.Digit(1))
	}
	if n.Digit(2) != 0 || n.Digit(-1) != 0 {
		t.Fatalf("digits beyond the literal and below scale must be zero")
	}
	if n.Scale() != 0 {
		t.Fatalf("finite literal scale = %d, want 0", n.Scale())
	}
}

func TestFiniteLiteralRejectsOutOfRangeDigit(t *testing.T) {
	if _, err := FiniteLiteral(7, []digit.Digit{7}); err == nil {
		t.Fatal("expected DigitOutOfRange for digit == base")
	}
	if _, err := FiniteLiteral(1, []digit.Digit{0}); err == nil {
		t.Fatal("expected TooSmallBase for p < 2")
	}
}

func TestRepeatingLiteralCycles(t *testing.T) {
	n, err := RepeatingLiteral(7, []digit.Digit{3})
	if err != nil {
		t.Fatalf("RepeatingLiteral: %v", err)
	}
	for i := int64(0); i < 20; i++ {
		if got := n.Digit(i); got != 3 {
			t.Fatalf("digit(%d) = %d, want 3", i, got)
		}
	}
}

func TestRepeatingLiteralRejectsEmptyCycle(t *testing.T) {
	if _, err := RepeatingLiteral(7, nil); err == nil {
		t.Fatal("expected ParseError for empty cycle")
	}
}

func TestSingleDigitAt(t *testing.T) {
	n, err := SingleDigitAt(7, 3, 5)
	if err != nil {
		t.Fatalf("SingleDigitAt: %v", err)
	}
	for i := int64(0); i < 3; i++ {
		if n.Digit(i) != 0 {
			t.Fatalf("digit(%d) = %d, want 0", i, n.Digit(i))
		}
	}
	if n.Digit(3) != 5 {
		t.Fatalf("digit(3) = %d, want 5", n.Digit(3))
	}
	if n.Digit(4) != 0 {
		t.Fatalf("digit(4) = %d, want 0", n.Digit(4))
	}
}

func TestScaleDownViewAndIntegerLift(t *testing.T) {
	n, err := FiniteLiteral(7, []digit.Digit{2, 3}) // "32"
	if err != nil {
		t.Fatalf("FiniteLiteral: %v", err)
	}
	lifted := IntegerLift(NewScaleDownView(n, 0), -2)
	if lifted.Scale() != -2 {
		t.Fatalf("lifted scale = %d, want -2", lifted.Scale())
	}
	if lifted.Digit(-2) != 2 || lifted.Digit(-1) != 3 {
		t.Fatalf("lifted digits wrong: digit(-2)=%d digit(-1)=%d", lifted.Digit(-2), lifted.Digit(-1))
	}
	if lifted.Digit(-3) != 0 {
		t.Fatalf("below scale must be zero, got %d", lifted.Digit(-3))
	}
}

func TestNormalizeAdditiveAdvancesPastConfirmedZeros(t *testing.T) {
	n, err := FiniteLiteral(7, []digit.Digit{0, 0, 5})
	if err != nil {
		t.Fatalf("FiniteLiteral: %v", err)
	}
	normalized := NormalizeAdditive(NewScaleDownView(n, 0), 0)
	if normalized.Scale() != 2 {
		t.Fatalf("normalized scale = %d, want 2", normalized.Scale())
	}
	if normalized.Digit(2) != 5 {
		t.Fatalf("normalized digit(2) = %d, want 5", normalized.Digit(2))
	}
}

func TestNumberValid(t *testing.T) {
	var zero Number
	if zero.Valid() {
		t.Fatal("zero Number must be invalid")
	}
	n, _ := FiniteLiteral(7, []digit.Digit{1})
	if !n.Valid() {
		t.Fatal("constructed Number must be valid")
	}
}
