package session

import (
	"strings"
	"testing"
)

func TestHandleLineEvalAndBind(t *testing.T) {
	s, err := New(7)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, quit := s.HandleLine("e 11")
	if quit {
		t.Fatal("'e' must not quit")
	}
	if out != "11 : 0000000011" {
		t.Fatalf("got %q, want %q", out, "11 : 0000000011")
	}

	out, quit = s.HandleLine("s x 11")
	if quit || out != "x : 0000000011" {
		t.Fatalf("got (%q, %v)", out, quit)
	}

	out, _ = s.HandleLine("e &{x} 2 +")
	if out != "&{x} 2 + : 0000000013" {
		t.Fatalf("got %q", out)
	}
}

func TestHandleLineImplicitExpression(t *testing.T) {
	s, _ := New(7)
	out, quit := s.HandleLine("11 2 +")
	if quit {
		t.Fatal("implicit expression must not quit")
	}
	if out != "11 2 + : 0000000013" {
		t.Fatalf("got %q", out)
	}
}

func TestHandleLineViewSize(t *testing.T) {
	s, _ := New(7)
	out, _ := s.HandleLine("l 3")
	if out != "view size set to 3" {
		t.Fatalf("got %q", out)
	}
	out, _ = s.HandleLine("e 11")
	if out != "11 : 011" {
		t.Fatalf("got %q, want 11 : 011", out)
	}
}

func TestHandleLineListVariables(t *testing.T) {
	s, _ := New(7)
	if out, _ := s.HandleLine("v"); out != "(no bound variables)" {
		t.Fatalf("got %q", out)
	}
	s.HandleLine("s x 11")
	s.HandleLine("s y 2")
	out, _ := s.HandleLine("v")
	if !strings.Contains(out, "x : 0000000011") || !strings.Contains(out, "y : 0000000002") {
		t.Fatalf("got %q", out)
	}
}

func TestHandleLineQuit(t *testing.T) {
	s, _ := New(7)
	_, quit := s.HandleLine("q")
	if !quit {
		t.Fatal("'q' must signal quit")
	}
}

func TestHandleLineUnknownCommand(t *testing.T) {
	s, _ := New(7)
	out, quit := s.HandleLine("z")
	if quit || out != "Unknown command" {
		t.Fatalf("got (%q, %v)", out, quit)
	}
}

func TestHandleLineErrorsArePrefixed(t *testing.T) {
	s, _ := New(7)
	out, _ := s.HandleLine("e &{nope}")
	if !strings.HasPrefix(out, "Error: ") {
		t.Fatalf("got %q, want Error: prefix", out)
	}
}

func TestHandleLineHelp(t *testing.T) {
	s, _ := New(7)
	out, quit := s.HandleLine("h")
	if quit || !strings.Contains(out, "commands:") {
		t.Fatalf("got (%q, %v)", out, quit)
	}
}
