// Package render turns a *siskin.SyntaxError into a human-readable
// rendering with a source-line readout, the way a compiler points at the
// offending column. It is a collaborator built entirely on the core's
// public error surface — it never reaches into siskin's internals.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/oskoi/siskin"
)

var (
	errorLabel = color.New(color.FgRed, color.Bold).SprintFunc()
	caretColor = color.New(color.FgYellow, color.Bold).SprintFunc()
)

// Source renders err against input, prefixed with filename if non-empty.
// If err is not a *siskin.SyntaxError, its Error() string is returned
// unchanged.
func Source(input string, err error, filename string) string {
	se, ok := err.(*siskin.SyntaxError)
	if !ok {
		return err.Error()
	}

	line, col := se.LineAndColumn()
	lines := strings.Split(input, "\n")
	var snippet string
	if line-1 >= 0 && line-1 < len(lines) {
		snippet = lines[line-1]
	}

	loc := fmt.Sprintf("%d:%d", line, col)
	if filename != "" {
		loc = filename + ":" + loc
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s: %s\n", errorLabel("syntax error"), loc, err.Error())
	fmt.Fprintf(&b, "    %s\n", snippet)
	pad := col - 1
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(&b, "    %s%s\n", strings.Repeat(" ", pad), caretColor("^"))
	return b.String()
}
