package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
)

// progressReporter prints pipeline progress and warnings. Step lines can be
// silenced with --quiet or the progress config key; warnings always print.
type progressReporter struct {
	w        io.Writer
	enabled  bool
	colorize bool
}

func newProgressReporter(w io.Writer, enabled bool) *progressReporter {
	return &progressReporter{w: w, enabled: enabled, colorize: shouldColorize(w)}
}

func (r *progressReporter) Step(msg string) {
	if !r.enabled {
		return
	}
	fmt.Fprintln(r.w, msg)
}

func (r *progressReporter) Warn(msg string) {
	if r.colorize {
		msg = ansiYellow + msg + ansiReset
	}
	fmt.Fprintln(r.w, msg)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
