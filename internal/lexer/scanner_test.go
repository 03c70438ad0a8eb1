package lexer

import "testing"

func TestScanTokensClassifiesOperators(t *testing.T) {
	tokens := NewScanner("11 _3 + &{x} &  ^^ [ ]").ScanTokens()
	want := []TokenType{TokenNumber, TokenNumber, TokenPlus, TokenRef, TokenRef, TokenSquare, TokenLBracket, TokenRBracket}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, tok := range tokens {
		if tok.Type != want[i] {
			t.Errorf("token %d: got %s, want %s", i, tok.Type, want[i])
		}
	}
}

func TestScanTokensNumberVariants(t *testing.T) {
	valid := []string{"11", "_3", "_12", "1.5", "(12)3", "1(255)"}
	for _, lexeme := range valid {
		tok := classify(lexeme)
		if tok.Type != TokenNumber {
			t.Errorf("classify(%q) = %s, want NUMBER", lexeme, tok.Type)
		}
	}
}

func TestScanTokensRejectsMalformedNumbers(t *testing.T) {
	// "1.2.3" lexes as one NUMBER token; its second decimal point is a
	// ParseError only at number-literal construction time, not here.
	invalid := []string{"abc", "1(2", "1)2"}
	for _, lexeme := range invalid {
		tok := classify(lexeme)
		if tok.Type == TokenNumber {
			t.Errorf("classify(%q) should not be a NUMBER", lexeme)
		}
	}
}
