package report

import (
	"minilang/source/text"
	"minilang/source/token"
)

// The kinds of error a user can see. Every error created from the catalogue belongs to
// exactly one of them.
type Kind string

const (
	ParseError        Kind = "ParseError"
	UnboundVariable   Kind = "UnboundVariable"
	TypeMismatch      Kind = "TypeMismatch"
	DivisionByZero    Kind = "DivisionByZero"
	UnknownFunction   Kind = "UnknownFunction"
	DuplicateArgument Kind = "DuplicateArgument"
	ArgumentError     Kind = "ArgumentError"
	BuiltinError      Kind = "BuiltinError"
	NativeError       Kind = "NativeError"
	SessionError      Kind = "SessionError"
)

// The 'error' type.
type Error struct {
	Kind    Kind
	ErrorId string
	Message string
	Args    []any
	Trace   []*token.Token
	Token   *token.Token
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Message
}

func (e *Error) AddToTrace(tok *token.Token) {
	e.Trace = append(e.Trace, tok)
}

// The message with the position of the error appended, if we know it.
func (e *Error) Describe() string {
	if e.Token == nil || e.Kind == ParseError {
		return e.Error()
	}
	return e.Error() + text.DescribePos(e.Token)
}

// Supplies the longer explanation of the error from the catalogue.
func (e *Error) Explain() string {
	creator, ok := ErrorCreatorMap[e.ErrorId]
	if !ok || creator.Explanation == nil {
		return ""
	}
	return creator.Explanation(e.Token, e.Args...)
}

func CreateErr(errorId string, tok *token.Token, args ...any) *Error {
	creator, ok := ErrorCreatorMap[errorId]
	if !ok {
		return &Error{Kind: SessionError, ErrorId: "report/unknown", Message: "no error with id " + emph(errorId), Token: tok}
	}
	msg := creator.Message(tok, args...)
	if creator.Kind == ParseError && tok != nil {
		msg = msg + text.DescribePos(tok)
	}
	return &Error{Kind: creator.Kind, ErrorId: errorId, Message: msg, Args: args, Token: tok}
}
