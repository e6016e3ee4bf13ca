package lexer

import (
	"fmt"
	"unicode"

	"minilang/source/report"
	"minilang/source/settings"
	"minilang/source/token"
)

type Lexer struct {
	runes  *RuneSupplier
	tstart int // the column at the start of a token
	lineNo int
	depth  int // how many brackets we're inside; newlines don't end statements in there
	source string
	Ers    []*report.Error
}

func New(source, input string) *Lexer {
	return &Lexer{
		runes:  NewRuneSupplier([]rune(input)),
		source: source,
		lineNo: 1,
	}
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()
	l.lineNo, l.tstart = l.runes.Position()
	ch := l.runes.CurrentRune()
	switch ch {
	case 0:
		return l.MakeToken(token.EOF, "EOF")
	case '\n':
		return l.NewToken(token.NEWLINE, ";")
	case ';':
		return l.NewToken(token.SEMICOLON, ";")
	case ',':
		return l.NewToken(token.COMMA, ",")
	case ':':
		return l.NewToken(token.COLON, ":")
	case '=':
		return l.NewToken(token.ASSIGN, "=")
	case '+':
		return l.NewToken(token.PLUS, "+")
	case '-':
		return l.NewToken(token.MINUS, "-")
	case '%':
		return l.NewToken(token.MOD, "%")
	case '!':
		return l.NewToken(token.BANG, "!")
	case '*':
		if l.runes.PeekRune() == '*' {
			l.runes.Next()
			return l.NewToken(token.POWER, "**")
		}
		return l.NewToken(token.ASTER, "*")
	case '/':
		if l.runes.PeekRune() == '/' {
			l.runes.ReadComment()
			l.runes.Next()
			return l.NextToken()
		}
		return l.NewToken(token.SLASH, "/")
	case '(', '[', '{':
		l.depth++
		return l.NewToken(token.TokenType(string(ch)), string(ch))
	case ')', ']', '}':
		if l.depth > 0 {
			l.depth--
		}
		return l.NewToken(token.TokenType(string(ch)), string(ch))
	case '"', '\'':
		s, ok := l.runes.ReadString(ch)
		if !ok {
			return l.Throw("lex/quote", string(ch))
		}
		return l.NewToken(token.STRING, s)
	}
	if IsDigit(ch) || ch == '.' && IsDigit(l.runes.PeekRune()) {
		num, isFloat := l.runes.ReadNumber()
		if isFloat {
			return l.NewToken(token.FLOAT, num)
		}
		return l.NewToken(token.INT, num)
	}
	if IsLetter(ch) || ch == '_' {
		ident := l.runes.ReadIdentifier()
		return l.NewToken(token.LookupIdent(ident), ident)
	}
	return l.Throw("lex/illegal", string(ch))
}

// Consumes spaces and tabs, line continuations, and newlines inside brackets.
func (l *Lexer) skipWhitespace() {
	for {
		ch := l.runes.CurrentRune()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r':
			l.runes.Next()
		case ch == '\n' && l.depth > 0:
			l.runes.Next()
		case ch == '\\' && l.continuationFollows():
			for l.runes.CurrentRune() != '\n' && l.runes.CurrentRune() != 0 {
				l.runes.Next()
			}
			l.runes.Next()
		case ch == '/' && l.runes.PeekRune() == '/' && l.depth > 0:
			l.runes.ReadComment()
			l.runes.Next()
		default:
			return
		}
	}
}

// Whether a backslash is followed by nothing but whitespace up to the end of the line.
func (l *Lexer) continuationFollows() bool {
	for i := 1; ; i++ {
		switch l.runes.peekAhead(i) {
		case ' ', '\t', '\r':
			continue
		case '\n', 0:
			return true
		default:
			return false
		}
	}
}

func IsLetter(ch rune) bool {
	return unicode.IsLetter(ch)
}

func IsDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func IsIdentifierRune(ch rune) bool {
	return IsLetter(ch) || IsDigit(ch) || ch == '_'
}

func (l *Lexer) NewToken(tokenType token.TokenType, st string) token.Token {
	l.runes.Next()
	return l.MakeToken(tokenType, st)
}

func (l *Lexer) MakeToken(tokenType token.TokenType, st string) token.Token {
	if settings.SHOW_LEXER {
		fmt.Println(tokenType, st)
	}
	_, chNo := l.runes.Position()
	if chNo <= l.tstart {
		chNo = l.tstart + 1
	}
	return token.Token{Type: tokenType, Literal: st, Source: l.source, Line: l.lineNo, ChStart: l.tstart + 1, ChEnd: chNo}
}

func (l *Lexer) Throw(errorID string, args ...any) token.Token {
	tok := l.NewToken(token.ILLEGAL, errorID)
	l.Ers = append(l.Ers, report.CreateErr(errorID, &tok, args...))
	return tok
}
