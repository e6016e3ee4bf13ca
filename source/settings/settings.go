// All this does is contain in one place the constants controlling which bits of the inner workings of the
// lexer/parser/evaluator are displayed to me for debugging purposes, and the user-facing configuration of
// the REPL, which may be overridden from a YAML file. In a release the debugging constants must all be set
// to false.

package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"minilang/source/text"
)

const (
	// These do what it sounds like.
	SHOW_LEXER  = false
	SHOW_PARSER = false // Only applies to the REPL.

	SHOW_TESTS = false // Says whether the tests should say what is being tested, useful if one of them crashes and we don't know which.
)

type Config struct {
	Prompt             string  `yaml:"prompt"`
	NativePrompt       string  `yaml:"native_prompt"`
	ContinuationPrompt string  `yaml:"continuation_prompt"`
	Toggle             string  `yaml:"toggle"`
	RunFile            string  `yaml:"run_file"`
	Continuation       string  `yaml:"continuation"`
	Comment            string  `yaml:"comment"`
	ExitWord           string  `yaml:"exit"`
	EchoFileUnits      bool    `yaml:"echo_file_units"`
	ExplainErrors      bool    `yaml:"explain_errors"`
	LogLevel           string  `yaml:"log_level"`
	Native             string  `yaml:"native"`
	Display            Display `yaml:"display"`
}

type Display struct {
	MaxRows        int `yaml:"max_rows"`
	FloatPrecision int `yaml:"float_precision"`
}

func Default() *Config {
	return &Config{
		Prompt:             text.PROMPT,
		NativePrompt:       text.NATIVE_PROMPT,
		ContinuationPrompt: text.MORE_PROMPT,
		Toggle:             "!",
		RunFile:            ".",
		Continuation:       "\\",
		Comment:            "//",
		ExitWord:           "exit",
		EchoFileUnits:      true,
		LogLevel:           "warning",
		Native:             "elvish",
		Display: Display{
			MaxRows:        50,
			FloatPrecision: 6,
		},
	}
}

// Reads a YAML configuration file over the defaults. Keys the file doesn't mention keep their
// default values; keys we don't know about are an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (cfg *Config) Validate() error {
	switch {
	case cfg.Toggle == "":
		return fmt.Errorf("toggle must not be empty")
	case cfg.RunFile == "":
		return fmt.Errorf("run_file must not be empty")
	case cfg.Toggle == cfg.RunFile:
		return fmt.Errorf("toggle and run_file must differ, both are %q", cfg.Toggle)
	case cfg.Continuation == "":
		return fmt.Errorf("continuation must not be empty")
	case cfg.Display.MaxRows < 0:
		return fmt.Errorf("display.max_rows must not be negative")
	case cfg.Display.FloatPrecision < 0 || cfg.Display.FloatPrecision > 17:
		return fmt.Errorf("display.float_precision must be between 0 and 17")
	}
	switch cfg.Native {
	case "elvish", "none":
	default:
		return fmt.Errorf("unknown native evaluator %q", cfg.Native)
	}
	return nil
}
