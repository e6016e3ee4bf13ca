package repl

import (
	"github.com/lmorg/readline"

	"minilang/source/hub"
)

// Adapts a readline instance to what the hub wants of a line reader.
type terminal struct {
	rline *readline.Instance
}

func (t *terminal) SetPrompt(prompt string) {
	t.rline.SetPrompt(prompt)
}

func (t *terminal) Readline() (string, error) {
	return t.rline.Readline()
}

// Runs the REPL on the terminal until the user leaves or input ends.
func Start(h *hub.Hub) {
	h.Start(&terminal{rline: readline.NewInstance()})
}
