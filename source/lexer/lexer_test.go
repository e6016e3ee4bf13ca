package lexer

import (
	"testing"

	"minilang/source/token"
)

func TestLexer(t *testing.T) {
	input := "let x = 2 ** 3.5 // a comment\n" +
		"print(x % 1e3); [1,\n 'two'] \\\n + -y != None"
	tests := []struct {
		expectedType    token.TokenType
		expectedLiteral string
	}{
		{token.LET, "let"},
		{token.IDENT, "x"},
		{token.ASSIGN, "="},
		{token.INT, "2"},
		{token.POWER, "**"},
		{token.FLOAT, "3.5"},
		{token.NEWLINE, ";"},
		{token.PRINT, "print"},
		{token.LPAREN, "("},
		{token.IDENT, "x"},
		{token.MOD, "%"},
		{token.FLOAT, "1e3"},
		{token.RPAREN, ")"},
		{token.SEMICOLON, ";"},
		{token.LBRACK, "["},
		{token.INT, "1"},
		{token.COMMA, ","},
		{token.STRING, "two"},
		{token.RBRACK, "]"},
		{token.PLUS, "+"},
		{token.MINUS, "-"},
		{token.IDENT, "y"},
		{token.BANG, "!"},
		{token.ASSIGN, "="},
		{token.NONE, "None"},
		{token.EOF, "EOF"},
	}
	l := New("test", input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType || tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d]: expected %q %q, got %q %q", i, tt.expectedType, tt.expectedLiteral, tok.Type, tok.Literal)
		}
	}
}

func TestPositions(t *testing.T) {
	l := New("test", "ab + 12\n  cd")
	want := [][3]int{{1, 1, 2}, {1, 4, 4}, {1, 6, 7}, {1, 8, 8}, {2, 3, 4}}
	for i, w := range want {
		tok := l.NextToken()
		if tok.Line != w[0] || tok.ChStart != w[1] || tok.ChEnd != w[2] {
			t.Errorf("token %d (%s): got %d:%d-%d, want %d:%d-%d", i, tok.Literal, tok.Line, tok.ChStart, tok.ChEnd, w[0], w[1], w[2])
		}
	}
}

func TestLexerErrors(t *testing.T) {
	for _, input := range []string{`"unclosed`, `a $ b`} {
		l := New("test", input)
		for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
		}
		if len(l.Ers) != 1 {
			t.Errorf("%s: got %d errors, want 1", input, len(l.Ers))
		}
	}
}
