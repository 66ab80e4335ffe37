package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"example.com/tinyedit/internal/app"
	"example.com/tinyedit/pkg/config"
	"example.com/tinyedit/pkg/editor"
	"example.com/tinyedit/pkg/logs"
	"golang.org/x/term"
)

// isTerminal reports whether stdin is attached to a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes the editor and returns the process exit status.
func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("tinyedit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = usage(stderr, fs)
	cfgPath := fs.String("config", "", "config file (default ~/.tinyedit/config.yaml)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return 2
	}

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		fmt.Fprintf(stderr, "tinyedit: %v\n", err)
		return 1
	}
	if !isTerminal() {
		fmt.Fprintln(stderr, "tinyedit: stdin is not a terminal")
		return 1
	}

	r := app.New(nil)
	r.Logger = logs.NewFromEnv()
	r.Keymap = cfg.Keymap
	r.Theme = cfg.Theme
	r.Tick = cfg.Tick
	// an unreadable file starts as an empty document under that name
	if err := r.LoadFile(fs.Arg(0)); errors.Is(err, editor.ErrInvalidUTF8) {
		fmt.Fprintf(stderr, "tinyedit: warning: %v\n", err)
	}

	if err := r.Run(); err != nil {
		fmt.Fprintf(stderr, "tinyedit: %v\n", err)
		return 1
	}
	return 0
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadDefault()
	}
	return config.Load(path)
}
