package siskin

// captureRule labels the subtree body produces with id, adopting it as the
// next child of the enclosing tree.
type captureRule struct {
	body Rule
	id   string
}

func (c captureRule) evaluate(ctx Context) (Context, error) {
	sub, err := c.body.evaluate(ctx.rebase(c.id))
	if err != nil {
		return ctx, err
	}
	return ctx.adopt(sub), nil
}

// Capture evaluates body against a fresh subtree named id. On success the
// subtree is adopted as the next child of the enclosing tree and the
// cursor advances to whichever of the parent's or the capture's progress
// is further. On failure the enclosing tree is untouched.
func Capture(body Rule, id string) Rule {
	return Rule{eval: captureRule{body: body, id: id}}
}

// keepRule labels the substring body matches as an attribute of the
// enclosing tree, discarding the subtree body itself produced.
type keepRule struct {
	body Rule
	id   string
}

func (k keepRule) evaluate(ctx Context) (Context, error) {
	sub, err := k.body.evaluate(ctx.rebase(k.id))
	if err != nil {
		return ctx, err
	}
	value := ctx.cur.substring(sub.Progress())
	result := ctx
	result.root = ctx.root.SetAttr(k.id, value)
	result.cur = ctx.cur.at(sub.Progress())
	return result, nil
}

// Keep evaluates body against a fresh subtree, then — on success — sets
// attribute id on the enclosing tree to the substring of input body
// matched, and advances the cursor past that substring. The subtree body
// produced is thrown away; only its span is kept, as text.
func Keep(body Rule, id string) Rule {
	return Rule{eval: keepRule{body: body, id: id}}
}
