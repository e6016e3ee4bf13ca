package lexer

// The RuneSupplier gives us something simpler than a lexer that we can use for slurping up
// literals, and which keeps track of where we are in the source for the sake of error
// messages.
type RuneSupplier struct {
	code      []rune
	pos       int
	lineNo    int
	lineStart int
}

func NewRuneSupplier(code []rune) *RuneSupplier {
	return &RuneSupplier{code: code, lineNo: 1}
}

func (rs *RuneSupplier) CurrentRune() rune {
	if rs.pos < len(rs.code) {
		return rs.code[rs.pos]
	}
	return 0
}

func (rs *RuneSupplier) PeekRune() rune {
	if rs.pos+1 < len(rs.code) {
		return rs.code[rs.pos+1]
	}
	return 0
}

func (rs *RuneSupplier) peekAhead(n int) rune {
	if rs.pos+n < len(rs.code) {
		return rs.code[rs.pos+n]
	}
	return 0
}

func (rs *RuneSupplier) Next() {
	if rs.pos >= len(rs.code) {
		return
	}
	if rs.code[rs.pos] == '\n' {
		rs.lineNo++
		rs.lineStart = rs.pos + 1
	}
	rs.pos++
}

// Returns the line number and the zero-based column of the current rune.
func (rs *RuneSupplier) Position() (int, int) {
	return rs.lineNo, rs.pos - rs.lineStart
}

// Reads a number literal, leaving the supplier on its last rune. The second return value
// says whether the literal has the lexical form of a float, i.e. contains a point or an
// exponent.
func (rs *RuneSupplier) ReadNumber() (string, bool) {
	result := string(rs.CurrentRune())
	isFloat := rs.CurrentRune() == '.'
	for {
		pc := rs.PeekRune()
		switch {
		case IsDigit(pc) || pc == '_':
		case pc == '.' && !isFloat && IsDigit(rs.peekAhead(2)):
			isFloat = true
		case pc == '.' && !isFloat && !IsLetter(rs.peekAhead(2)):
			isFloat = true // "5." is a float, as it is in most languages.
		case (pc == 'e' || pc == 'E') && rs.exponentFollows():
			isFloat = true
			rs.Next()
			result = result + string(rs.CurrentRune())
			if rs.PeekRune() == '+' || rs.PeekRune() == '-' {
				rs.Next()
				result = result + string(rs.CurrentRune())
			}
		default:
			return result, isFloat
		}
		rs.Next()
		if rs.CurrentRune() != '_' {
			result = result + string(rs.CurrentRune())
		}
	}
}

func (rs *RuneSupplier) exponentFollows() bool {
	if IsDigit(rs.peekAhead(2)) {
		return true
	}
	return (rs.peekAhead(2) == '+' || rs.peekAhead(2) == '-') && IsDigit(rs.peekAhead(3))
}

// Reads a quoted string starting at the opening quote and leaves the supplier on the
// closing one. The bool is false if the string runs off the end of the line.
func (rs *RuneSupplier) ReadString(quote rune) (string, bool) {
	escape := false
	result := []rune{}
	for {
		rs.Next()
		ch := rs.CurrentRune()
		if (ch == quote && !escape) || ch == 0 || ch == '\n' || ch == '\r' {
			break
		}
		if ch == '\\' && !escape {
			escape = true
			continue
		}
		if escape {
			escape = false
			switch ch {
			case 'n':
				ch = '\n'
			case 'r':
				ch = '\r'
			case 't':
				ch = '\t'
			case '0':
				ch = 0
			case '"', '\'', '\\':
			default:
				result = append(result, '\\')
			}
		}
		result = append(result, ch)
	}
	if rs.CurrentRune() != quote {
		return string(result), false
	}
	return string(result), true
}

func (rs *RuneSupplier) ReadIdentifier() string {
	result := string(rs.CurrentRune())
	for IsIdentifierRune(rs.PeekRune()) {
		rs.Next()
		result = result + string(rs.CurrentRune())
	}
	return result
}

func (rs *RuneSupplier) ReadComment() string {
	result := ""
	for !(rs.PeekRune() == '\n' || rs.PeekRune() == 0) {
		result = result + string(rs.PeekRune())
		rs.Next()
	}
	return result
}
