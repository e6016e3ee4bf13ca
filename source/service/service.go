package service

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"fortio.org/log"

	"minilang/source/ast"
	"minilang/source/builtins"
	"minilang/source/environment"
	"minilang/source/evaluator"
	"minilang/source/parser"
	"minilang/source/report"
	"minilang/source/settings"
	"minilang/source/text"
	"minilang/source/values"
)

// A Service is one MiniLang session: an Environment with the built-ins bound in it, and an
// evaluator writing to the session's output. It can run a whole script, failing fast, or one
// unit at a time, as the REPL does.
type Service struct {
	Config   *settings.Config
	Env      *environment.Environment
	Registry *builtins.Registry
	Ev       *evaluator.Evaluator
	Out      io.Writer
	ErrOut   io.Writer
}

func New(cfg *settings.Config, out, errOut io.Writer) *Service {
	if cfg == nil {
		cfg = settings.Default()
	}
	reg := builtins.Standard()
	env := environment.New()
	for _, name := range reg.Names() {
		fn, _ := reg.Lookup(name)
		env.Set(name, values.Func(fn))
	}
	return &Service{
		Config:   cfg,
		Env:      env,
		Registry: reg,
		Ev:       evaluator.New(env, reg, out, cfg.Display),
		Out:      out,
		ErrOut:   errOut,
	}
}

// A service whose output is captured rather than written anywhere, for tests and for anything
// else that wants to look at what a script printed.
func NewCaptured(cfg *settings.Config) *Service {
	return New(cfg, &bytes.Buffer{}, &bytes.Buffer{})
}

// Parses the whole script and then runs it, stopping at the first error, which is reported and
// returned. Nothing runs if the script doesn't parse.
func (sv *Service) RunScript(source, code string) *report.Error {
	log.Infof("running script %s", source)
	program, err := parser.ParseProgram(source, code)
	if err != nil {
		sv.Report(err)
		return err
	}
	if err := sv.Ev.Run(program); err != nil {
		sv.Report(err)
		return err
	}
	return nil
}

func (sv *Service) RunFile(path string) *report.Error {
	code, e := os.ReadFile(path)
	if e != nil {
		err := report.CreateErr("repl/file", nil, path, e)
		sv.Report(err)
		return err
	}
	return sv.RunScript(path, string(code))
}

// Runs one line of interactive input. Each statement on the line is a unit of its own: one
// that fails is reported and the next still runs. The value of each bare expression is shown
// unless it's None. Returns the first error, which has already been reported.
func (sv *Service) Do(source, unit string) *report.Error {
	program, err := parser.ParseProgram(source, unit)
	if err != nil {
		sv.Report(err)
		return err
	}
	var first *report.Error
	for _, stmt := range program {
		v, err := sv.Ev.Eval(stmt)
		if err != nil {
			sv.Report(err)
			if first == nil {
				first = err
			}
			continue
		}
		if _, ok := stmt.(*ast.ExpressionStatement); ok && v.T != values.NONE {
			fmt.Fprintln(sv.Out, values.RenderWith(v, sv.Config.Display))
		}
	}
	return first
}

// Evaluates a single expression without showing anything, for callers that want the value.
func (sv *Service) Evaluate(code string) (values.Value, *report.Error) {
	program, err := parser.ParseProgram("REPL input", code)
	if err != nil {
		return values.NONE_VALUE, err
	}
	result := values.NONE_VALUE
	for _, stmt := range program {
		if result, err = sv.Ev.Eval(stmt); err != nil {
			return values.NONE_VALUE, err
		}
	}
	return result, nil
}

// Writes the error to the error writer as '<Kind>: <message>', with the explanation if the
// configuration asks for it.
func (sv *Service) Report(err *report.Error) {
	fmt.Fprintln(sv.ErrOut, err.Describe())
	if sv.Config.ExplainErrors {
		if explanation := err.Explain(); explanation != "" {
			fmt.Fprintln(sv.ErrOut, text.Yellow(text.BULLET_SPACING+explanation))
		}
	}
}

// The text written so far to the output and error writers of a captured service.
func (sv *Service) Captured() (string, string) {
	out, _ := sv.Out.(*bytes.Buffer)
	errOut, _ := sv.ErrOut.(*bytes.Buffer)
	return out.String(), errOut.String()
}
