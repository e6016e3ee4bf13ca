package hub

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"fortio.org/log"
	"github.com/lmorg/readline"

	"minilang/source/environment"
	"minilang/source/report"
	"minilang/source/service"
	"minilang/source/settings"
	"minilang/source/text"
)

type Mode int

const (
	MINILANG Mode = iota
	NATIVE
)

func (m Mode) String() string {
	if m == NATIVE {
		return "native"
	}
	return "MiniLang"
}

// Something other than MiniLang that can run a line of input against the session's
// Environment, reading its bindings before and writing them back after.
type NativeEvaluator interface {
	Name() string
	Eval(line string, env *environment.Environment) error
}

// Where the hub gets its lines from: readline in a terminal, a script in the tests.
type LineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

// The hub sits between the user and the service. It deals with everything that isn't MiniLang:
// the mode toggle, running files, continuation lines, leaving.
type Hub struct {
	Sv           *service.Service
	Native       NativeEvaluator // Nil if there isn't one.
	cfg          *settings.Config
	out          io.Writer
	errOut       io.Writer
	mode         Mode
	pending      []string
	awaitingPath bool
}

func New(sv *service.Service, native NativeEvaluator, out, errOut io.Writer) *Hub {
	return &Hub{Sv: sv, Native: native, cfg: sv.Config, out: out, errOut: errOut}
}

func (hub *Hub) Mode() Mode {
	return hub.mode
}

func (hub *Hub) Prompt() string {
	switch {
	case hub.awaitingPath:
		return "File to run: "
	case len(hub.pending) > 0:
		return hub.cfg.ContinuationPrompt
	case hub.mode == NATIVE:
		return hub.cfg.NativePrompt
	}
	return hub.cfg.Prompt
}

// Takes one physical line of input. Returns true if the session should end.
func (hub *Hub) Do(line string) bool {
	if hub.awaitingPath {
		hub.awaitingPath = false
		hub.runFile(strings.TrimSpace(line))
		return false
	}
	if body, ok := hub.continued(line); ok {
		hub.pending = append(hub.pending, body)
		return false
	}
	unit := joinUnit(append(hub.pending, line))
	hub.pending = nil
	switch {
	case unit == "":
		return false
	case strings.EqualFold(unit, hub.cfg.ExitWord):
		return true
	case unit == hub.cfg.Toggle:
		hub.toggle()
		return false
	case strings.HasPrefix(unit, hub.cfg.RunFile):
		path := strings.TrimSpace(strings.TrimPrefix(unit, hub.cfg.RunFile))
		if path == "" {
			hub.awaitingPath = true
			return false
		}
		hub.runFile(path)
		return false
	}
	if hub.mode == NATIVE {
		hub.doNative(unit)
		return false
	}
	hub.Sv.Do("REPL input", unit)
	return false
}

// Reports whether the line ends with the continuation marker, and if so returns it without.
func (hub *Hub) continued(line string) (string, bool) {
	trimmed := strings.TrimRight(line, " \t\r")
	if !strings.HasSuffix(trimmed, hub.cfg.Continuation) {
		return line, false
	}
	return strings.TrimSuffix(trimmed, hub.cfg.Continuation), true
}

func joinUnit(pieces []string) string {
	parts := []string{}
	for _, piece := range pieces {
		if piece = strings.TrimSpace(piece); piece != "" {
			parts = append(parts, piece)
		}
	}
	return strings.Join(parts, " ")
}

func (hub *Hub) toggle() {
	if hub.mode == NATIVE {
		hub.mode = MINILANG
		hub.WriteString(text.BULLET + "Switched to " + text.Green("MiniLang") + " mode.\n")
		return
	}
	if hub.Native == nil {
		log.Warnf("native mode requested but no native evaluator is configured")
		hub.WriteError(report.CreateErr("native/none", nil))
		return
	}
	hub.mode = NATIVE
	hub.WriteString(text.BULLET + "Switched to " + text.Green("native") + " mode (" + hub.Native.Name() + "). Type " +
		text.Emph(hub.cfg.Toggle) + " to switch back.\n")
}

func (hub *Hub) doNative(line string) {
	if err := hub.Native.Eval(line, hub.Sv.Env); err != nil {
		hub.WriteError(report.CreateErr("native/eval", nil, err))
	}
}

// Runs a file as MiniLang one unit at a time, as though it had been typed in. A unit that
// fails is reported and the rest still run. The mode is left as it was.
func (hub *Hub) runFile(path string) {
	code, err := os.ReadFile(path)
	if err != nil {
		hub.WriteError(report.CreateErr("repl/file", nil, path, err))
		return
	}
	log.Infof("running file %s unit by unit", path)
	for _, unit := range hub.SplitUnits(string(code)) {
		if hub.cfg.EchoFileUnits {
			hub.WriteString(hub.cfg.Prompt + unit.Text + "\n")
		}
		// Padding with newlines keeps the line numbers in error messages true to the file.
		hub.Sv.Do(path, strings.Repeat("\n", unit.Line-1)+unit.Text)
	}
}

type Unit struct {
	Line int
	Text string
}

// Splits code into the units the REPL would see if it were typed in line by line: blank lines
// and comments are dropped and continuation lines are joined.
func (hub *Hub) SplitUnits(code string) []Unit {
	units := []Unit{}
	var pending []string
	start := 0
	for i, line := range strings.Split(code, "\n") {
		if len(pending) == 0 {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, hub.cfg.Comment) {
				continue
			}
			start = i + 1
		}
		if body, ok := hub.continued(line); ok {
			pending = append(pending, body)
			continue
		}
		units = append(units, Unit{Line: start, Text: joinUnit(append(pending, line))})
		pending = nil
	}
	if len(pending) > 0 {
		units = append(units, Unit{Line: start, Text: joinUnit(pending)})
	}
	return units
}

// Abandons a half-typed unit or a pending request for a file path. Bindings are untouched.
func (hub *Hub) Interrupt() {
	hub.pending = nil
	hub.awaitingPath = false
}

// Reads lines until the user leaves or the input runs out. Ctrl+C only abandons the
// current unit.
func (hub *Hub) Start(rl LineReader) {
	for {
		rl.SetPrompt(hub.Prompt())
		line, err := rl.Readline()
		if errors.Is(err, readline.CtrlC) {
			hub.Interrupt()
			continue
		}
		if err != nil {
			log.LogVf("readline stopped: %v", err)
			return
		}
		if hub.Do(line) {
			return
		}
	}
}

func (hub *Hub) WriteError(err *report.Error) {
	fmt.Fprintln(hub.errOut, err.Describe())
	if hub.cfg.ExplainErrors {
		if explanation := err.Explain(); explanation != "" {
			fmt.Fprintln(hub.errOut, text.Yellow(text.BULLET_SPACING+explanation))
		}
	}
}

func (hub *Hub) WriteString(s string) {
	io.WriteString(hub.out, s)
}
