package siskin

// refuseRule implements negative lookahead: cond is evaluated first and
// its resulting context is always discarded — it never consumes input in
// the enclosing context, win or lose.
type refuseRule struct {
	body Rule
	cond Rule
}

func (r refuseRule) evaluate(ctx Context) (Context, error) {
	condCtx, err := r.cond.evaluate(ctx)
	if err == nil {
		// cond matched: refuse, reporting the progress it reached.
		return ctx, newError(condCtx)
	}
	return r.body.evaluate(ctx)
}

// Refuse evaluates body only if cond fails to match at the same starting
// context. If cond succeeds, Refuse fails at the progress cond reached.
func Refuse(body, cond Rule) Rule {
	return Rule{eval: refuseRule{body: body, cond: cond}}
}
