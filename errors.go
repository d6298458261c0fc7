package siskin

import "fmt"

// SyntaxError is the ordinary outcome of a rule that does not apply. It
// always carries the context at the furthest position actually inspected,
// mirroring the teacher's parserError, which wraps the rule stack and
// position at the point a generated parser gave up.
type SyntaxError struct {
	ctx Context
}

func newError(ctx Context) error {
	return &SyntaxError{ctx: ctx}
}

// Progress is the character index the error reached.
func (e *SyntaxError) Progress() int { return e.ctx.Progress() }

// Char is the character under the cursor at the point of failure.
func (e *SyntaxError) Char() rune { return e.ctx.Char() }

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.ctx.AtEnd() {
		return fmt.Sprintf("syntax error at position %d: unexpected end of input", e.Progress())
	}
	return fmt.Sprintf("syntax error at position %d: unexpected %q", e.Progress(), e.Char())
}

// LineAndColumn computes the 1-based line and column of the error's
// position by scanning the input backward for newlines.
func (e *SyntaxError) LineAndColumn() (line, col int) {
	return e.ctx.cur.lineAndColumn()
}

// progressOf extracts the progress carried by any error produced by this
// package. It panics on an error of a foreign type, since the rule algebra
// never returns anything else from evaluate.
func progressOf(err error) int {
	se, ok := err.(*SyntaxError)
	if !ok {
		panic(fmt.Sprintf("siskin: unexpected error type %T", err))
	}
	return se.Progress()
}

// furthestError returns whichever of a, b reached the greater progress,
// favoring a on a tie (the first one encountered by a caller walking
// alternatives in order).
func furthestError(a, b error) error {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if progressOf(b) > progressOf(a) {
		return b
	}
	return a
}
