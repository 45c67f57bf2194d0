// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// successf prints a green summary line when w is a terminal, plain text
// otherwise (pipes, redirects, tests).
func successf(w io.Writer, format string, a ...any) {
	if isTerminal(w) {
		color.New(color.FgGreen).Fprintf(w, format, a...)
		return
	}
	fmt.Fprintf(w, format, a...)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
