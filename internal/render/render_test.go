package render

import (
	"testing"

	"github.com/jbjava/padic/internal/digit"
	"github.com/jbjava/padic/internal/stream"
)

func mustFinite(t *testing.T, p digit.Base, d ...digit.Digit) stream.Number {
	t.Helper()
	n, err := stream.FiniteLiteral(p, d)
	if err != nil {
		t.Fatalf("FiniteLiteral: %v", err)
	}
	return n
}

func TestRenderIntegerPart(t *testing.T) {
	n := mustFinite(t, 7, 1, 1)
	if got := Render(n, 10); got != "0000000011" {
		t.Fatalf("got %q, want 0000000011", got)
	}
}

func TestRenderZeroLiteral(t *testing.T) {
	n := mustFinite(t, 7, 0, 0, 0)
	if got := Render(n, 10); got != "0000000000" {
		t.Fatalf("got %q, want 0000000000", got)
	}
}

func TestRenderFractionalPartStripsLeadingZeros(t *testing.T) {
	n := stream.IntegerLift(stream.NewScaleDownView(mustFinite(t, 7, 5, 0, 0), 0), -3)
	got := Render(n, 4)
	if got != "0000.5" {
		t.Fatalf("got %q, want 0000.5", got)
	}
}

func TestRenderBaseOver10UsesParens(t *testing.T) {
	n := mustFinite(t, 16, 11, 1)
	got := Render(n, 3)
	if got != "(0)(1)(11)" {
		t.Fatalf("got %q, want (0)(1)(11)", got)
	}
}
