package parser

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"minilang/source/ast"
	"minilang/source/lexer"
	"minilang/source/report"
	"minilang/source/settings"
	"minilang/source/token"
)

type TokenSupplier interface{ NextToken() token.Token }

type Parser struct {
	lexer     *lexer.Lexer
	curToken  token.Token
	peekToken token.Token
	Err       *report.Error // The first error; we don't try to recover from errors.
}

func New(source, input string) *Parser {
	p := &Parser{lexer: lexer.New(source, input)}
	p.NextToken()
	p.NextToken()
	return p
}

// Parses a whole script or REPL unit into its statements. Parsing stops at the first error.
func ParseProgram(source, input string) ([]ast.Node, *report.Error) {
	p := New(source, input)
	program := p.ParseProgram()
	if p.Err != nil {
		return nil, p.Err
	}
	if settings.SHOW_PARSER {
		for _, stmt := range program {
			fmt.Println(stmt.String())
		}
	}
	return program, nil
}

func (p *Parser) ParseProgram() []ast.Node {
	program := []ast.Node{}
	for {
		p.skipTerminators()
		if p.curTokenIs(token.EOF) || p.Err != nil {
			return program
		}
		stmt := p.parseStatement()
		if p.Err != nil {
			return program
		}
		program = append(program, stmt)
		p.NextToken()
		if !p.curToken.IsTerminator() {
			p.Throw("parse/terminator", &p.curToken)
			return program
		}
	}
}

func (p *Parser) NextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lexer.NextToken()
	if p.curToken.Type == token.ILLEGAL && p.Err == nil {
		p.Err = p.lexer.Ers[0]
	}
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peekToken.Type == t
}

// If the next token is of the given type, advances onto it. Otherwise records an error.
func (p *Parser) expectPeek(t token.TokenType, description string) bool {
	if p.peekTokenIs(t) {
		p.NextToken()
		return true
	}
	p.NextToken()
	p.Throw("parse/expected", &p.curToken, description)
	return false
}

func (p *Parser) Throw(errorID string, tok *token.Token, args ...any) {
	if p.Err == nil {
		p.Err = report.CreateErr(errorID, tok, args...)
	}
}

func (p *Parser) skipTerminators() {
	for p.curTokenIs(token.NEWLINE) || p.curTokenIs(token.SEMICOLON) {
		p.NextToken()
	}
}

// Statement parsers. Each leaves the parser on the last token of the statement.

func (p *Parser) parseStatement() ast.Node {
	switch p.curToken.Type {
	case token.LET:
		return p.parseLetStatement()
	case token.PRINT:
		return p.parsePrintStatement()
	}
	tok := p.curToken
	return &ast.ExpressionStatement{Token: tok, Expression: p.parseExpression()}
}

func (p *Parser) parseLetStatement() ast.Node {
	stmt := &ast.LetStatement{Token: p.curToken}
	if !p.peekTokenIs(token.IDENT) {
		p.NextToken()
		p.Throw("parse/let", &p.curToken)
		return nil
	}
	p.NextToken()
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	if !p.expectPeek(token.ASSIGN, "'='") {
		return nil
	}
	p.NextToken()
	stmt.Value = p.parseExpression()
	return stmt
}

func (p *Parser) parsePrintStatement() ast.Node {
	stmt := &ast.PrintStatement{Token: p.curToken}
	if !p.expectPeek(token.LPAREN, "'(' after 'print'") {
		return nil
	}
	p.NextToken()
	stmt.Value = p.parseExpression()
	if p.Err != nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN, "')'") {
		return nil
	}
	return stmt
}

// Expression parsers. Each starts on the first token of the expression and leaves the parser
// on its last token.

// expr := term (('+'|'-') term)*
func (p *Parser) parseExpression() ast.Node {
	return p.parseChain(p.parseTerm, token.PLUS, token.MINUS)
}

// term := factor (('*'|'/'|'%') factor)*
func (p *Parser) parseTerm() ast.Node {
	return p.parseChain(p.parseFactor, token.ASTER, token.SLASH, token.MOD)
}

// Collects operands and operators of one precedence level into a flat chain. A chain with
// only one operand is just that operand.
func (p *Parser) parseChain(parseOperand func() ast.Node, operators ...token.TokenType) ast.Node {
	tok := p.curToken
	first := parseOperand()
	if p.Err != nil {
		return nil
	}
	chain := &ast.OperatorChain{Token: tok, Operands: []ast.Node{first}}
	for p.peekTokenIsOneOf(operators...) {
		p.NextToken()
		chain.Operators = append(chain.Operators, p.curToken)
		p.NextToken()
		operand := parseOperand()
		if p.Err != nil {
			return nil
		}
		chain.Operands = append(chain.Operands, operand)
	}
	if len(chain.Operators) == 0 {
		return first
	}
	return chain
}

func (p *Parser) peekTokenIsOneOf(types ...token.TokenType) bool {
	for _, t := range types {
		if p.peekTokenIs(t) {
			return true
		}
	}
	return false
}

// factor := ('-'|'+'|'!') factor | power
func (p *Parser) parseFactor() ast.Node {
	switch p.curToken.Type {
	case token.MINUS, token.PLUS, token.BANG:
		expr := &ast.PrefixExpression{Token: p.curToken, Operator: p.curToken.Literal}
		p.NextToken()
		expr.Right = p.parseFactor()
		if p.Err != nil {
			return nil
		}
		return expr
	}
	return p.parsePower()
}

// power := atom ('**' factor)?
func (p *Parser) parsePower() ast.Node {
	base := p.parseAtom()
	if p.Err != nil || !p.peekTokenIs(token.POWER) {
		return base
	}
	p.NextToken()
	expr := &ast.PowerExpression{Token: p.curToken, Base: base}
	p.NextToken()
	expr.Exponent = p.parseFactor()
	if p.Err != nil {
		return nil
	}
	return expr
}

func (p *Parser) parseAtom() ast.Node {
	switch p.curToken.Type {
	case token.INT:
		return p.parseIntegerLiteral()
	case token.FLOAT:
		return p.parseFloatLiteral()
	case token.STRING:
		return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
	case token.TRUE, token.FALSE:
		return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
	case token.NONE:
		return &ast.NoneLiteral{Token: p.curToken}
	case token.IDENT:
		if p.peekTokenIs(token.LPAREN) {
			return p.parseCallExpression()
		}
		return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	case token.LPAREN:
		p.NextToken()
		expr := p.parseExpression()
		if p.Err != nil || !p.expectPeek(token.RPAREN, "')'") {
			return nil
		}
		return expr
	case token.LBRACK:
		return p.parseListLiteral()
	case token.LBRACE:
		return p.parseDictLiteral()
	}
	p.Throw("parse/prefix", &p.curToken)
	return nil
}

func (p *Parser) parseIntegerLiteral() ast.Node {
	lit := &ast.IntegerLiteral{Token: p.curToken}
	value, ok := new(big.Int).SetString(p.curToken.Literal, 10)
	if !ok {
		p.Throw("parse/number", &p.curToken)
		return nil
	}
	lit.Value = value
	return lit
}

func (p *Parser) parseFloatLiteral() ast.Node {
	lit := &ast.FloatLiteral{Token: p.curToken}
	value, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		p.Throw("parse/number", &p.curToken)
		return nil
	}
	lit.Value = value
	return lit
}

// call := NAME '(' [arg (',' arg)* [',']] ')'
func (p *Parser) parseCallExpression() ast.Node {
	call := &ast.CallExpression{Token: p.curToken, Function: p.curToken.Literal}
	p.NextToken()
	p.parseList(token.RPAREN, func() {
		arg := &ast.Argument{Token: p.curToken}
		if p.curTokenIs(token.IDENT) && p.peekTokenIs(token.ASSIGN) {
			arg.Name = p.curToken.Literal
			p.NextToken()
			p.NextToken()
		}
		arg.Value = p.parseExpression()
		call.Args = append(call.Args, arg)
	})
	if p.Err != nil {
		return nil
	}
	return call
}

// list := '[' [expr (',' expr)* [',']] ']'
func (p *Parser) parseListLiteral() ast.Node {
	list := &ast.ListLiteral{Token: p.curToken, Items: []ast.Node{}}
	p.parseList(token.RBRACK, func() {
		list.Items = append(list.Items, p.parseExpression())
	})
	if p.Err != nil {
		return nil
	}
	return list
}

// dict := '{' [key (':'|'=') expr (',' ...)* [',']] '}'
func (p *Parser) parseDictLiteral() ast.Node {
	dict := &ast.DictLiteral{Token: p.curToken, Keys: []string{}, Values: []ast.Node{}}
	p.parseList(token.RBRACE, func() {
		if !p.curTokenIs(token.IDENT) && !p.curTokenIs(token.STRING) {
			p.Throw("parse/dict/key", &p.curToken)
			return
		}
		dict.Keys = append(dict.Keys, p.curToken.Literal)
		if !p.peekTokenIs(token.COLON) && !p.peekTokenIs(token.ASSIGN) {
			p.expectPeek(token.COLON, "':' after dictionary key")
			return
		}
		p.NextToken()
		p.NextToken()
		dict.Values = append(dict.Values, p.parseExpression())
	})
	if p.Err != nil {
		return nil
	}
	return dict
}

// Parses comma-separated items up to the closing token, starting on the opening bracket and
// finishing on the closing one. A trailing comma is allowed.
func (p *Parser) parseList(closer token.TokenType, parseItem func()) {
	if p.peekTokenIs(closer) {
		p.NextToken()
		return
	}
	for {
		p.NextToken()
		parseItem()
		if p.Err != nil {
			return
		}
		if p.peekTokenIs(closer) {
			p.NextToken()
			return
		}
		if !p.expectPeek(token.COMMA, "',' or "+quoted(closer)) {
			return
		}
		if p.peekTokenIs(closer) {
			p.NextToken()
			return
		}
	}
}

func quoted(t token.TokenType) string {
	return "'" + string(t) + "'"
}
