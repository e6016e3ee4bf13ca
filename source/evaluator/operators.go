package evaluator

import (
	"math"
	"math/big"

	"minilang/source/report"
	"minilang/source/token"
	"minilang/source/values"
)

// Ints stay ints under + - * and %. Anything involving a float is a float, and so is every
// quotient.
func applyInfix(op *token.Token, left, right values.Value) (values.Value, *report.Error) {
	if !left.IsNumber() || !right.IsNumber() {
		return values.NONE_VALUE, report.CreateErr("eval/type/infix", op, op.Literal, left.TypeName(), right.TypeName())
	}
	switch op.Type {
	case token.SLASH:
		if right.IsZero() {
			return values.NONE_VALUE, report.CreateErr("eval/div/zero", op)
		}
		if isInt(left) && isInt(right) {
			f, _ := new(big.Rat).SetFrac(bigOf(left), bigOf(right)).Float64()
			return values.Float(f), nil
		}
		return values.Float(left.AsFloat() / right.AsFloat()), nil
	case token.MOD:
		if right.IsZero() {
			return values.NONE_VALUE, report.CreateErr("eval/mod/zero", op)
		}
		if isInt(left) && isInt(right) {
			return values.BigInt(flooredMod(bigOf(left), bigOf(right))), nil
		}
		x, y := left.AsFloat(), right.AsFloat()
		m := math.Mod(x, y)
		if m != 0 && (m < 0) != (y < 0) {
			m += y
		}
		return values.Float(m), nil
	}
	if isInt(left) && isInt(right) {
		x, y := bigOf(left), bigOf(right)
		switch op.Type {
		case token.PLUS:
			return values.BigInt(new(big.Int).Add(x, y)), nil
		case token.MINUS:
			return values.BigInt(new(big.Int).Sub(x, y)), nil
		case token.ASTER:
			return values.BigInt(new(big.Int).Mul(x, y)), nil
		}
	} else {
		x, y := left.AsFloat(), right.AsFloat()
		switch op.Type {
		case token.PLUS:
			return values.Float(x + y), nil
		case token.MINUS:
			return values.Float(x - y), nil
		case token.ASTER:
			return values.Float(x * y), nil
		}
	}
	panic("unhandled infix operator " + op.Literal)
}

// The remainder takes the sign of the divisor.
func flooredMod(x, y *big.Int) *big.Int {
	_, m := new(big.Int).QuoRem(x, y, new(big.Int))
	if m.Sign() != 0 && m.Sign() != y.Sign() {
		m.Add(m, y)
	}
	return m
}

func applyPower(op *token.Token, base, exponent values.Value) (values.Value, *report.Error) {
	if !base.IsNumber() || !exponent.IsNumber() {
		return values.NONE_VALUE, report.CreateErr("eval/type/infix", op, "**", base.TypeName(), exponent.TypeName())
	}
	negative := exponent.AsFloat() < 0
	if base.IsZero() && negative {
		return values.NONE_VALUE, report.CreateErr("eval/pow/zero", op)
	}
	if isInt(base) && isInt(exponent) && !negative {
		return values.BigInt(new(big.Int).Exp(bigOf(base), bigOf(exponent), nil)), nil
	}
	return values.Float(math.Pow(base.AsFloat(), exponent.AsFloat())), nil
}

func applyPrefix(op *token.Token, operator string, right values.Value) (values.Value, *report.Error) {
	if operator == "!" {
		return values.Bool(!right.Truthy()), nil
	}
	switch right.T {
	case values.INT:
		if operator == "-" {
			return values.BigInt(new(big.Int).Neg(bigOf(right))), nil
		}
		return right, nil
	case values.FLOAT:
		if operator == "-" {
			return values.Float(-right.V.(float64)), nil
		}
		return right, nil
	}
	return values.NONE_VALUE, report.CreateErr("eval/type/prefix", op, operator, right.TypeName())
}
