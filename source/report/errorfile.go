package report

import (
	"fmt"

	"minilang/source/text"
	"minilang/source/token"
)

type ErrorCreator struct {
	Kind        Kind
	Message     func(tok *token.Token, args ...any) string
	Explanation func(tok *token.Token, args ...any) string
}

// A map from error identifiers to functions that supply the corresponding error messages and explanations.
//
// Errors in the map are in alphabetical order of their identifers.
//
// Major categories are built, call, eval, lex, native, parse, and repl.
//
// Two otherwise identical errors thrown in different places in the Go code must be assigned
// different identifiers, if only by suffixing /a, /b, etc to the identifier.
var ErrorCreatorMap = map[string]ErrorCreator{

	"built/fail": {
		Kind: BuiltinError,
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("%s failed: %v", emphText(args[0]), args[1])
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "The built-in function was called with acceptable arguments but could not do what was asked of it, " +
				"e.g. because a file was missing or a column didn't exist."
		},
	},

	"built/panic": {
		Kind: BuiltinError,
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("%s failed unexpectedly: %v", emphText(args[0]), args[1])
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "Something went wrong inside the built-in function that it wasn't expecting. This is a bug in " +
				"MiniLang rather than in your code."
		},
	},

	"call/args/many": {
		Kind: ArgumentError,
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("%s takes at most %d positional arguments but %d were given", emphText(args[0]), args[1], args[2])
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "Some parameters of built-in functions can only be given by keyword, e.g. 'index=\"region\"'."
		},
	},

	"call/args/missing": {
		Kind: ArgumentError,
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("%s is missing required argument %s", emphText(args[0]), emphText(args[1]))
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "The argument has no default value, so you have to supply it either by position or by keyword."
		},
	},

	"call/args/type": {
		Kind: ArgumentError,
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("argument %s of %s should be %s, not %s", emphText(args[1]), emphText(args[0]), args[2], args[3])
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "Built-in functions check the kinds of their arguments before they do anything else."
		},
	},

	"call/args/unknown": {
		Kind: ArgumentError,
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("%s got an unexpected keyword argument %s", emphText(args[0]), emphText(args[1]))
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "The function has no parameter of that name. Check the spelling."
		},
	},

	"call/args/value": {
		Kind: ArgumentError,
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("argument %s of %s %v", emphText(args[1]), emphText(args[0]), args[2])
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "The argument is of the right kind but its value is not one the function accepts."
		},
	},

	"call/dup/kw": {
		Kind: DuplicateArgument,
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("keyword argument %s given more than once in call to %s", emphText(args[1]), emphText(args[0]))
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "Each keyword may appear only once in a call."
		},
	},

	"call/dup/pos": {
		Kind: DuplicateArgument,
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("argument %s of %s given both by position and by keyword", emphText(args[1]), emphText(args[0]))
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "A positional argument fills the parameter in that position, so naming the same parameter again " +
				"with a keyword would give it two values."
		},
	},

	"call/uncallable": {
		Kind: UnknownFunction,
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("%s is bound to %s, which is not a function", emphText(args[0]), args[1])
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "The name was once a built-in function, but has since been rebound with 'let'. Bindings are never " +
				"undone, so the function can't be reached under that name for the rest of the session."
		},
	},

	"call/unknown": {
		Kind: UnknownFunction,
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("unknown function %s", emphText(args[0]))
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "There is no built-in function of that name. MiniLang doesn't let you define your own."
		},
	},

	"eval/div/zero": {
		Kind: DivisionByZero,
		Message: func(tok *token.Token, args ...any) string {
			return "division by zero"
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "Dividing by zero has no meaningful answer, whether the zero is an integer or a float."
		},
	},

	"eval/mod/zero": {
		Kind: DivisionByZero,
		Message: func(tok *token.Token, args ...any) string {
			return "modulo by zero"
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "The remainder on dividing by zero is as undefined as the quotient."
		},
	},

	"eval/pow/zero": {
		Kind: DivisionByZero,
		Message: func(tok *token.Token, args ...any) string {
			return "zero can't be raised to a negative power"
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "Raising zero to a negative power means dividing one by zero."
		},
	},

	"eval/type/infix": {
		Kind: TypeMismatch,
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("can't apply %s to %s and %s", emphText(args[0]), args[1], args[2])
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "Arithmetic operators only work on numbers. MiniLang never converts other values to numbers for you."
		},
	},

	"eval/type/prefix": {
		Kind: TypeMismatch,
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("can't apply %s to %s", emphText(args[0]), args[1])
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "Unary '-' and '+' only work on numbers. Unary '!' works on anything."
		},
	},

	"eval/unbound": {
		Kind: UnboundVariable,
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("variable %s is not defined", emphText(args[0]))
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "A variable has to be bound with 'let' before it's used. If a 'let' statement failed, the " +
				"variable it was meant to bind was never bound."
		},
	},

	"lex/illegal": {
		Kind: ParseError,
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("unexpected character %s", emphText(args[0]))
		},
	},

	"lex/quote": {
		Kind: ParseError,
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("string opened with %s is never closed", args[0])
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "String literals must begin and end on the same line, with the same kind of quote."
		},
	},

	"native/eval": {
		Kind: NativeError,
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("%v", args[0])
		},
	},

	"native/none": {
		Kind: SessionError,
		Message: func(tok *token.Token, args ...any) string {
			return "native mode is not available in this session"
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "The native evaluator has been switched off in the configuration file."
		},
	},

	"parse/dict/key": {
		Kind: ParseError,
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("dictionary keys must be names or strings, found %s", text.DescribeTok(tok))
		},
	},

	"parse/expected": {
		Kind: ParseError,
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("expected %s, found %s", args[0], text.DescribeTok(tok))
		},
	},

	"parse/let": {
		Kind: ParseError,
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("expected a variable name after 'let', found %s", text.DescribeTok(tok))
		},
	},

	"parse/number": {
		Kind: ParseError,
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("malformed number %s", emph(tok.Literal))
		},
	},

	"parse/prefix": {
		Kind: ParseError,
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("an expression can't begin with %s", text.DescribeTok(tok))
		},
	},

	"parse/terminator": {
		Kind: ParseError,
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("expected the end of the statement, found %s", text.DescribeTok(tok))
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "Statements are separated by newlines or semicolons."
		},
	},

	"repl/file": {
		Kind: SessionError,
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("can't read file %s: %v", emphText(args[0]), args[1])
		},
	},
}

func emph(s string) string {
	return "'" + s + "'"
}

func emphText(s any) string {
	return "'" + fmt.Sprint(s) + "'"
}
