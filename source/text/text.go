package text

// This consists of a bunch of text utilities to help in generating pretty and meaningful
// help messages, error messages, etc.

import (
	"strconv"
	"strings"

	"minilang/source/token"
)

const (
	VERSION        = "0.3.1"
	BULLET         = "  ▪ "
	BULLET_SPACING = "    " // I.e. whitespace the same width as BULLET.
	PROMPT         = "minilang> "
	NATIVE_PROMPT  = "native> "
	MORE_PROMPT    = "... "
)

func Cyan(s string) string {
	return CYAN + s + RESET
}

func Emph(s string) string {
	return "'" + s + "'"
}

func Red(s string) string {
	return RED + s + RESET
}

func Green(s string) string {
	return GREEN + s + RESET
}

func Yellow(s string) string {
	return YELLOW + s + RESET
}

func Logo() string {
	var padding string
	if len(VERSION)%2 == 0 {
		padding = ","
	}
	titleText := " MiniLang" + padding + " version " + VERSION + " "
	diamond := Cyan("◆")
	leftMargin := "  "
	bar := strings.Repeat("═", len(titleText)/2)
	logoString := "\n" +
		leftMargin + "╔" + bar + diamond + bar + "╗\n" +
		leftMargin + "║" + titleText + "║\n" +
		leftMargin + "╚" + bar + diamond + bar + "╝\n\n"
	return logoString
}

const HELP = "\nUsage: minilang [-v | -version] [-h | -help] [-config <file>] [-log-level <level>]\n" +
	"                [run] [<file>]\n\n" +
	"With no file, starts the MiniLang REPL. Inside the REPL:\n\n" +
	"  !             toggles between MiniLang and native mode.\n" +
	"  . <file>      runs a MiniLang file one statement at a time.\n" +
	"  \\             at the end of a line continues the statement on the next line.\n" +
	"  exit          leaves the REPL.\n\n" +
	"With a file, runs it as a script, stopping at the first error.\n\n"

func DescribePos(tok *token.Token) string {
	if tok.Line == 0 {
		return ""
	}
	result := " at line " + strconv.Itoa(tok.Line) + ":" + strconv.Itoa(tok.ChStart)
	if tok.Source == "" || tok.Source == "REPL input" {
		return result
	}
	return result + " of " + Emph(tok.Source)
}

// Describes a token for the purposes of error messages etc.
func DescribeTok(tok *token.Token) string {
	switch tok.Type {
	case token.NEWLINE:
		return "newline"
	case token.EOF:
		return "end of line"
	case token.STRING:
		return "string " + strconv.Quote(tok.Literal)
	case token.INT, token.FLOAT:
		return "number " + Emph(tok.Literal)
	case token.IDENT:
		return "name " + Emph(tok.Literal)
	}
	return Emph(tok.Literal)
}

const (
	RESET  = "\033[0m"
	RED    = "\033[31m"
	GREEN  = "\033[32m"
	YELLOW = "\033[33m"
	CYAN   = "\033[36m"
)
