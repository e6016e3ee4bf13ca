package token

type TokenType string

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	// Identifiers + literals
	IDENT  = "IDENT"   // x, load_csv, ...
	INT    = "int"     // 1343456
	FLOAT  = "float64" // 1.23, 1e9
	STRING = "string"  // "foo", 'bar'
	TRUE   = "true"
	FALSE  = "false"
	NONE   = "none"

	// Operators
	ASSIGN = "="
	PLUS   = "+"
	MINUS  = "-"
	BANG   = "!"
	ASTER  = "*"
	SLASH  = "/"
	MOD    = "%"
	POWER  = "**"

	COLON     = ":"
	NEWLINE   = "\n"
	SEMICOLON = ";"
	COMMA     = ","

	LPAREN = "("
	RPAREN = ")"
	LBRACE = "{"
	RBRACE = "}"
	LBRACK = "["
	RBRACK = "]"

	// Keywords
	LET   = "let"
	PRINT = "print"
)

type Token struct {
	Type    TokenType
	Literal string
	Source  string
	Line    int
	ChStart int
	ChEnd   int
}

var keywords = map[string]TokenType{
	"let":   LET,
	"print": PRINT,
	"True":  TRUE,
	"true":  TRUE,
	"False": FALSE,
	"false": FALSE,
	"None":  NONE,
	"null":  NONE,
}

func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// Whether the token ends a statement.
func (t Token) IsTerminator() bool {
	return t.Type == NEWLINE || t.Type == SEMICOLON || t.Type == EOF
}
