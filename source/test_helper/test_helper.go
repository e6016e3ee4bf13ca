package test_helper

import (
	"os"
	"strings"
	"testing"

	"minilang/source/service"
	"minilang/source/settings"
	"minilang/source/text"
	"minilang/source/values"
)

// Auxiliary types and functions for testing the parser, the evaluator and the session.

type TestItem struct {
	Input string
	Want  string
}

// Runs each test against a fresh service, which first runs the named file from the test-files
// directory of the package being tested, if there is one. An error returned by F is compared
// with what's wanted as though it were output.
func RunTest(t *testing.T, filename string, tests []TestItem, F func(sv *service.Service, s string) (string, error)) {
	wd, _ := os.Getwd() // The working directory is the directory containing the package being tested.
	for _, test := range tests {
		if settings.SHOW_TESTS {
			println(text.BULLET + "Running test " + text.Emph(test.Input))
		}
		sv := service.NewCaptured(settings.Default())
		if filename != "" {
			if err := sv.RunFile(wd + "/test-files/" + filename); err != nil {
				t.Fatalf("There were errors initializing the service : \n%s", err.Describe())
			}
		}
		got, e := F(sv, test.Input)
		if e != nil {
			got = e.Error()
		}
		if !(test.Want == got) {
			t.Fatalf(`Test failed with input %s | Wanted : %s | Got : %s.`, test.Input, test.Want, got)
		}
	}
}

// Runs the input as a unit of REPL input and returns what it wrote, output first and then
// errors, with the trailing newline trimmed.
func Output(sv *service.Service, s string) (string, error) {
	sv.Do("REPL input", s)
	out, errs := sv.Captured()
	return strings.TrimSuffix(out+errs, "\n"), nil
}

// Runs the input as a script and returns what it wrote in the same way.
func Script(sv *service.Service, s string) (string, error) {
	sv.RunScript("REPL input", s)
	out, errs := sv.Captured()
	return strings.TrimSuffix(out+errs, "\n"), nil
}

// Evaluates the input and returns the literal form of its value.
func Values(sv *service.Service, s string) (string, error) {
	v, err := sv.Evaluate(s)
	if err != nil {
		return "", err
	}
	return values.Literal(v), nil
}
