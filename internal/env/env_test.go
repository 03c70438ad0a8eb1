package env

import (
	"testing"

	"github.com/jbjava/padic/internal/digit"
	"github.com/jbjava/padic/internal/stream"
)

func mustNumber(t *testing.T, d ...digit.Digit) stream.Number {
	t.Helper()
	n, err := stream.FiniteLiteral(7, d)
	if err != nil {
		t.Fatalf("FiniteLiteral: %v", err)
	}
	return n
}

func TestBindAndGet(t *testing.T) {
	e := New()
	n := mustNumber(t, 1, 2, 3)
	if err := e.Bind("x", n); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	got, ok := e.Get("x")
	if !ok {
		t.Fatal("Get(\"x\") not found")
	}
	if got.Digit(0) != 1 {
		t.Fatalf("bound value digit(0) = %d, want 1", got.Digit(0))
	}
	if _, ok := e.Get("y"); ok {
		t.Fatal("Get(\"y\") should not be found")
	}
}

func TestBindRejectsBadNames(t *testing.T) {
	e := New()
	n := mustNumber(t, 1)
	cases := []string{"", "X", "1x", "_x"}
	for _, name := range cases {
		if err := e.Bind(name, n); err == nil {
			t.Errorf("Bind(%q, ...) should have failed", name)
		}
	}
}

func TestLastStartsInvalid(t *testing.T) {
	e := New()
	if _, ok := e.Last(); ok {
		t.Fatal("Last() should be unset on a fresh Env")
	}
	n := mustNumber(t, 5)
	e.SetLast(n)
	last, ok := e.Last()
	if !ok || last.Digit(0) != 5 {
		t.Fatalf("Last() = (%v, %v), want (5, true)", last, ok)
	}
}

func TestNamesSorted(t *testing.T) {
	e := New()
	n := mustNumber(t, 1)
	for _, name := range []string{"zed", "amy", "mid"} {
		if err := e.Bind(name, n); err != nil {
			t.Fatalf("Bind(%q): %v", name, err)
		}
	}
	got := e.Names()
	want := []string{"amy", "mid", "zed"}
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", got, want)
		}
	}
}
