package evaluator_test

import (
	"testing"

	"minilang/source/test_helper"
)

func TestArithmetic(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `2 + 3 - 1`, Want: `4`},
		{Input: `2 * 3 - 1`, Want: `5`},
		{Input: `2 - 3 * 4`, Want: `-10`},
		{Input: `10 - 2 - 3`, Want: `5`},
		{Input: `100 / 10 / 5`, Want: `2.0`},
		{Input: `(1 + 2) * 3`, Want: `9`},
		{Input: `10 / 2`, Want: `5.0`},
		{Input: `1 / 3 * 3`, Want: `1.0`},
		{Input: `1 + 2.5`, Want: `3.5`},
		{Input: `0.1 + 0.2`, Want: `0.30000000000000004`},
		{Input: `1e3`, Want: `1000.0`},
		{Input: `7 % 3`, Want: `1`},
		{Input: `-7 % 3`, Want: `2`},
		{Input: `7 % -3`, Want: `-2`},
		{Input: `7.5 % 2`, Want: `1.5`},
		{Input: `-7.5 % 2`, Want: `0.5`},
		{Input: `2 ** 10`, Want: `1024`},
		{Input: `2 ** 100`, Want: `1267650600228229401496703205376`},
		{Input: `2 ** -1`, Want: `0.5`},
		{Input: `2 ** 3 ** 2`, Want: `512`},
		{Input: `-2 ** 2`, Want: `-4`},
		{Input: `2.0 ** 2`, Want: `4.0`},
		{Input: `+3`, Want: `3`},
		{Input: `-(1.5)`, Want: `-1.5`},
		{Input: `9999999999999999999 + 1`, Want: `10000000000000000000`},
	}
	test_helper.RunTest(t, "", tests, test_helper.Values)
}

func TestLogicAndLiterals(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `!0`, Want: `True`},
		{Input: `!"x"`, Want: `False`},
		{Input: `![]`, Want: `True`},
		{Input: `!None`, Want: `True`},
		{Input: `!!{a: 1}`, Want: `True`},
		{Input: `None`, Want: `None`},
		{Input: `"it's"`, Want: `"it's"`},
		{Input: `[1, 2 + 3, "x"]`, Want: `[1, 5, 'x']`},
		{Input: `{"k": [1, 2, 3]}`, Want: `{'k': [1, 2, 3]}`},
		{Input: `{a: 1, b = 2, a: 3}`, Want: `{'a': 3, 'b': 2}`},
		{Input: `let x = 5; x + 1`, Want: `6`},
		{Input: `let x = 1; let x = x + 1; x`, Want: `2`},
		{Input: `load_csv`, Want: `<built-in function load_csv>`},
	}
	test_helper.RunTest(t, "", tests, test_helper.Values)
}

func TestEvaluationErrors(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `10 / 0`, Want: `DivisionByZero: division by zero`},
		{Input: `10.0 / 0.0`, Want: `DivisionByZero: division by zero`},
		{Input: `5 % 0`, Want: `DivisionByZero: modulo by zero`},
		{Input: `0 ** -1`, Want: `DivisionByZero: zero can't be raised to a negative power`},
		{Input: `"a" + 1`, Want: `TypeMismatch: can't apply '+' to string and int`},
		{Input: `[1] * 2`, Want: `TypeMismatch: can't apply '*' to list and int`},
		{Input: `2 ** None`, Want: `TypeMismatch: can't apply '**' to int and None`},
		{Input: `-"a"`, Want: `TypeMismatch: can't apply '-' to string`},
		{Input: `y`, Want: `UnboundVariable: variable 'y' is not defined`},
		{Input: `1 + y * (1 / 0)`, Want: `UnboundVariable: variable 'y' is not defined`},
		{Input: `[1, y]`, Want: `UnboundVariable: variable 'y' is not defined`},
		{Input: `nope(1, 2)`, Want: `UnknownFunction: unknown function 'nope'`},
		{Input: `nope(y)`, Want: `UnboundVariable: variable 'y' is not defined`},
		{Input: `let load_csv = 3; load_csv("x")`, Want: `UnknownFunction: 'load_csv' is bound to an int, which is not a function`},
		{Input: `head(1, n=2, n=3)`, Want: `DuplicateArgument: keyword argument 'n' given more than once in call to 'head'`},
		{Input: `columns([])`, Want: `ArgumentError: argument 'table' of 'columns' should be a table, not a list`},
		{Input: `load_csv("no/such/file.csv")`, Want: `BuiltinError: 'load_csv' failed: open no/such/file.csv: no such file or directory`},
	}
	test_helper.RunTest(t, "", tests, test_helper.Values)
}

func TestStatements(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `let x = 5; print(x + 1)`, Want: `6`},
		{Input: `print("hi")`, Want: `hi`},
		{Input: `print(["a", None, True])`, Want: `['a', None, True]`},
		{Input: `print(10 / 4)`, Want: `2.5`},
		{Input: `1 + 1`, Want: `2`},
		{Input: `None`, Want: ``},
		{Input: `let x = 1`, Want: ``},
		{Input: `print(y)`, Want: `UnboundVariable: variable 'y' is not defined at line 1:7`},
		{Input: `print(1); print(1/0); print(2)`, Want: "1\n2\nDivisionByZero: division by zero at line 1:18"},
		{Input: `visualize_pivot_stats(1)`, Want: `ArgumentError: argument 'table' of 'visualize_pivot_stats' should be a table, not an int at line 1:1`},
	}
	test_helper.RunTest(t, "", tests, test_helper.Output)
}
