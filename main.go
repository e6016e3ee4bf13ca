//
// MiniLang
//
// A small line-oriented language for loading, pivoting and summarizing tables, with a REPL that
// can hand lines over to Elvish.
//

package main

import (
	"flag"
	"fmt"
	"os"

	"fortio.org/log"

	"minilang/source/hub"
	"minilang/source/native"
	"minilang/source/repl"
	"minilang/source/service"
	"minilang/source/settings"
	"minilang/source/text"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration `file`")
	logLevel := flag.String("log-level", "", "log `level`, overriding the configuration")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.BoolVar(showVersion, "v", false, "print the version and exit")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, text.HELP)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println("MiniLang version " + text.VERSION)
		return
	}
	cfg, err := settings.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, text.Red("Error: ")+err.Error())
		os.Exit(2)
	}
	level := cfg.LogLevel
	if *logLevel != "" {
		level = *logLevel
	}
	if err := log.SetLogLevelStr(level); err != nil {
		fmt.Fprintln(os.Stderr, text.Red("Error: ")+err.Error())
		os.Exit(2)
	}

	args := flag.Args()
	if len(args) > 0 && args[0] == "run" {
		args = args[1:]
	}
	sv := service.New(cfg, os.Stdout, os.Stderr)
	switch len(args) {
	case 0:
	case 1:
		if err := sv.RunFile(args[0]); err != nil {
			os.Exit(1)
		}
		return
	default:
		flag.Usage()
		os.Exit(2)
	}

	var nativeEvaluator hub.NativeEvaluator
	if cfg.Native == "elvish" {
		nativeEvaluator = native.NewElvish()
	}
	fmt.Print(text.Logo())
	repl.Start(hub.New(sv, nativeEvaluator, os.Stdout, os.Stderr))
	log.Infof("session ended")
}
