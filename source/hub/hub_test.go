package hub

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lmorg/readline"

	"minilang/source/environment"
	"minilang/source/service"
	"minilang/source/settings"
	"minilang/source/values"
)

// Feeds the hub a fixed script of lines and remembers the prompts it was shown.
type scriptedReader struct {
	lines   []string
	prompts []string
}

func (r *scriptedReader) SetPrompt(prompt string) {
	r.prompts = append(r.prompts, prompt)
}

// The line ctrlC in the script stands for the user pressing Ctrl+C.
const ctrlC = "\x03"

func (r *scriptedReader) Readline() (string, error) {
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	if line == ctrlC {
		return "", readline.CtrlC
	}
	return line, nil
}

type fakeNative struct {
	lines []string
}

func (f *fakeNative) Name() string {
	return "fake"
}

func (f *fakeNative) Eval(line string, env *environment.Environment) error {
	f.lines = append(f.lines, line)
	if line == "fail" {
		return errors.New("boom")
	}
	env.Set("answer", values.Int(42))
	return nil
}

func newHub(native NativeEvaluator) (*Hub, *bytes.Buffer, *bytes.Buffer) {
	out, errs := &bytes.Buffer{}, &bytes.Buffer{}
	cfg := settings.Default()
	sv := service.New(cfg, out, errs)
	return New(sv, native, out, errs), out, errs
}

func run(h *Hub, lines ...string) *scriptedReader {
	r := &scriptedReader{lines: lines}
	h.Start(r)
	return r
}

func TestUnitsAreIsolated(t *testing.T) {
	h, out, errs := newHub(nil)
	run(h, "let a = 1", "print(a / 0)", "print(a)")
	if out.String() != "1\n" {
		t.Errorf("output = %q", out.String())
	}
	if !strings.HasPrefix(errs.String(), "DivisionByZero: division by zero") {
		t.Errorf("errors = %q", errs.String())
	}
}

func TestStatementsOnOneLineAreIsolated(t *testing.T) {
	h, out, errs := newHub(nil)
	run(h, "let a = 1; print(a/0); print(a)")
	if out.String() != "1\n" {
		t.Errorf("output = %q", out.String())
	}
	if errs.String() != "DivisionByZero: division by zero at line 1:19\n" {
		t.Errorf("errors = %q", errs.String())
	}
}

func TestCtrlCAbandonsTheUnit(t *testing.T) {
	h, out, errs := newHub(nil)
	r := run(h, "let a = 1", `let b = \`, ctrlC, ".", ctrlC, "print(a)")
	if out.String() != "1\n" || errs.String() != "" {
		t.Errorf("output = %q, errors = %q", out.String(), errs.String())
	}
	if len(r.lines) != 0 {
		t.Errorf("the session ended early, leaving %q unread", r.lines)
	}
	if h.Sv.Env.Exists("b") {
		t.Errorf("the abandoned unit shouldn't have run")
	}
	want := []string{"minilang> ", "minilang> ", "... ", "minilang> ", "File to run: ", "minilang> ", "minilang> "}
	if strings.Join(r.prompts, "|") != strings.Join(want, "|") {
		t.Errorf("prompts = %q, want %q", r.prompts, want)
	}
}

func TestAutoPrint(t *testing.T) {
	h, out, _ := newHub(nil)
	run(h, "1 + 2", "let x = 4", "None", `"raw"`, `["quoted"]`)
	if out.String() != "3\nraw\n['quoted']\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestContinuation(t *testing.T) {
	h, out, _ := newHub(nil)
	r := run(h, `let x = 1 + \`, `  2 \`, `  * 3`, "print(x)")
	if out.String() != "7\n" {
		t.Errorf("output = %q", out.String())
	}
	want := []string{"minilang> ", "... ", "... ", "minilang> ", "minilang> "}
	if strings.Join(r.prompts, "|") != strings.Join(want, "|") {
		t.Errorf("prompts = %q, want %q", r.prompts, want)
	}
}

func TestExit(t *testing.T) {
	h, out, _ := newHub(nil)
	r := run(h, "print(1)", "  EXIT  ", "print(2)")
	if out.String() != "1\n" {
		t.Errorf("output = %q", out.String())
	}
	if len(r.lines) != 1 {
		t.Errorf("the hub read past 'exit'")
	}
}

func TestToggle(t *testing.T) {
	native := &fakeNative{}
	h, out, errs := newHub(native)
	run(h, "!", "put hello", "fail")
	if h.Mode() != NATIVE {
		t.Fatalf("mode = %s, want native", h.Mode())
	}
	if strings.Join(native.lines, "|") != "put hello|fail" {
		t.Errorf("native evaluator saw %q", native.lines)
	}
	if !strings.Contains(errs.String(), "NativeError: boom") {
		t.Errorf("errors = %q", errs.String())
	}
	out.Reset()
	run(h, "!", "print(answer)")
	if h.Mode() != MINILANG {
		t.Fatalf("mode = %s, want MiniLang", h.Mode())
	}
	if !strings.HasSuffix(out.String(), "42\n") {
		t.Errorf("output = %q", out.String())
	}
}

func TestToggleWithoutNative(t *testing.T) {
	h, _, errs := newHub(nil)
	r := run(h, "!", "1")
	if h.Mode() != MINILANG {
		t.Errorf("mode = %s, want MiniLang", h.Mode())
	}
	if !strings.HasPrefix(errs.String(), "SessionError: native mode is not available") {
		t.Errorf("errors = %q", errs.String())
	}
	if r.prompts[1] != "minilang> " {
		t.Errorf("prompt = %q", r.prompts[1])
	}
}

const sample = `// A sample.
let a = 2

print(a / 0)
let b = a * \
    3
print(b)
`

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.ml")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	native := &fakeNative{}
	h, out, errs := newHub(native)
	run(h, "!", ". "+path)
	want := "minilang> let a = 2\nminilang> print(a / 0)\nminilang> let b = a * 3\nminilang> print(b)\n6\n"
	if !strings.HasSuffix(out.String(), want) {
		t.Errorf("output = %q, want it to end %q", out.String(), want)
	}
	if !strings.Contains(errs.String(), "DivisionByZero: division by zero at line 4:9") {
		t.Errorf("errors = %q", errs.String())
	}
	if h.Mode() != NATIVE || len(native.lines) != 0 {
		t.Errorf("running a file should neither change the mode nor use the native evaluator")
	}
}

func TestRunFileAsksForPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.ml")
	os.WriteFile(path, []byte("print(40 + 2)\n"), 0o644)
	h, out, _ := newHub(nil)
	h.cfg.EchoFileUnits = false
	r := run(h, ".", path, ".missing.ml")
	if out.String() != "42\n" {
		t.Errorf("output = %q", out.String())
	}
	if r.prompts[1] != "File to run: " {
		t.Errorf("prompt = %q", r.prompts[1])
	}
}

func TestRunMissingFile(t *testing.T) {
	h, _, errs := newHub(nil)
	run(h, ".no-such-file.ml")
	if !strings.HasPrefix(errs.String(), "SessionError: can't read file 'no-such-file.ml'") {
		t.Errorf("errors = %q", errs.String())
	}
}

func TestSplitUnits(t *testing.T) {
	h, _, _ := newHub(nil)
	got := h.SplitUnits(sample)
	want := []Unit{{2, "let a = 2"}, {4, "print(a / 0)"}, {5, "let b = a * 3"}, {7, "print(b)"}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("unit %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
