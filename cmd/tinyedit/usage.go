package main

import (
	"flag"
	"fmt"
	"io"
)

const usageText = `usage: tinyedit [-config path] [file]

Edits file, or a new unnamed document when no file is given.
Arrow keys move, Enter splits lines, Backspace deletes.
Esc opens the save prompt: Enter saves and quits, Esc quits without saving.

Logging: set TINYEDIT_LOG=1 or TINYEDIT_LOG_FILE=path.
`

func usage(w io.Writer, fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprint(w, usageText)
		fmt.Fprintln(w, "\nflags:")
		fs.PrintDefaults()
	}
}
