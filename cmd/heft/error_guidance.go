package main

import (
	"errors"
	"fmt"
	"io"

	"heft/internal/archive"
)

func formatCLIError(err error) []string {
	if err == nil {
		return nil
	}

	lines := []string{err.Error()}

	var integrityErr *archive.IntegrityError
	if errors.As(err, &integrityErr) {
		lines[0] = "fatal: " + lines[0]
		lines = append(lines, "hint: re-extract the archive if files under attachments/ were moved or deleted.")
		return uniqueLines(lines)
	}

	var refErr *archive.ReferenceError
	if errors.As(err, &refErr) {
		lines[0] = "fatal: " + lines[0]
		lines = append(lines, "hint: the archive metadata is damaged; try downloading and extracting the export again.")
		return uniqueLines(lines)
	}

	var layoutErr *archive.LayoutError
	if errors.As(err, &layoutErr) {
		lines[0] = "Error: " + lines[0]
		lines = append(lines, "hint: cd into the extracted archive directory, or pass it as an argument.")
		return uniqueLines(lines)
	}

	var formatErr *archive.FormatError
	if errors.As(err, &formatErr) {
		lines[0] = "Error: " + lines[0]
		lines = append(lines, "hint: the export may be truncated or corrupted; try downloading and extracting it again.")
		return uniqueLines(lines)
	}

	return uniqueLines(lines)
}

// printCLIError writes the formatted error lines, coloring the message line
// red when w is a terminal.
func printCLIError(w io.Writer, err error) {
	colorize := shouldColorize(w)
	for i, line := range formatCLIError(err) {
		if colorize && i == 0 {
			line = ansiRed + line + ansiReset
		}
		fmt.Fprintln(w, line)
	}
}

func uniqueLines(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		out = append(out, line)
	}
	return out
}
