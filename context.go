package siskin

import "github.com/oskoi/siskin/tree"

// Context pairs a cursor position with the tree currently being
// accumulated. It is a plain value: every operation that "advances" a
// context returns a new one, so a pre-call Context surfaces unchanged on
// the failure path of a rule that evaluates it and backtracks.
type Context struct {
	cur  cursor
	root tree.Tree
}

// Progress is the character index the context has reached in the input.
func (ctx Context) Progress() int { return ctx.cur.position() }

// Char is the character currently under the cursor, or the end-of-input
// sentinel.
func (ctx Context) Char() rune { return ctx.cur.char() }

// AtEnd reports whether the cursor has reached the end of the input.
func (ctx Context) AtEnd() bool { return ctx.cur.atEnd() }

// Root returns the tree accumulated so far in this context.
func (ctx Context) Root() tree.Tree { return ctx.root }

func (ctx Context) advance() Context {
	ctx.cur = ctx.cur.advance()
	return ctx
}

// rebase returns a context with the same cursor but a fresh root tree
// (id, position) for a capture or keep to accumulate into.
func (ctx Context) rebase(id string) Context {
	return Context{cur: ctx.cur, root: tree.New(id, ctx.cur.position())}
}

// terminate closes the context's root so its span ends at the current
// position.
func (ctx Context) terminate() Context {
	ctx.root = ctx.root.Terminate(ctx.cur.position())
	return ctx
}

// adopt incorporates other — a descendant context from a successful
// sub-evaluation — into ctx: the parent's root gains other's terminated
// root as its next child, and the cursor advances to whichever of ctx's or
// other's cursor progressed further. This progress-max rule is what
// propagates forward motion out of a capture even when the capture's own
// body matched less of the input than some nested construct already
// consumed.
func (ctx Context) adopt(other Context) Context {
	child := other.terminate().root
	cur := ctx.cur
	if other.cur.position() > cur.position() {
		cur = other.cur
	}
	return Context{cur: cur, root: ctx.root.Adopt(child)}
}
