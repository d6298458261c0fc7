package siskin

import "github.com/oskoi/siskin/tree"

// Options holds the settings Apply evaluates a rule under.
type Options struct {
	offset int
	exact  bool
	rootID string
}

// Option sets one field of Options and returns an Option that restores the
// previous value — the same reversible functional-option shape the
// teacher's parser options use.
type Option func(*Options) Option

// Offset sets the starting character index. Default 0.
func Offset(n int) Option {
	return func(o *Options) Option {
		old := o.offset
		o.offset = n
		return Offset(old)
	}
}

// Exact requires the rule to consume the input to end-of-input for Apply
// to report success. Default false.
func Exact(b bool) Option {
	return func(o *Options) Option {
		old := o.exact
		o.exact = b
		return Exact(old)
	}
}

// RootID sets the label of the implicit outermost tree. Default "root".
func RootID(id string) Option {
	return func(o *Options) Option {
		old := o.rootID
		o.rootID = id
		return RootID(old)
	}
}

func newOptions(opts []Option) Options {
	o := Options{rootID: "root"}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Apply evaluates rule against input and returns the resulting context or
// the first unhandled *SyntaxError. On success the returned context's
// Root is final — its span closed at the cursor's resting position.
func Apply(input string, rule Rule, opts ...Option) (Context, error) {
	o := newOptions(opts)
	runes := []rune(input)
	ctx := Context{
		cur:  newCursor(runes, o.offset),
		root: tree.New(o.rootID, o.offset),
	}

	result, err := rule.evaluate(ctx)
	if err != nil {
		return result, err
	}
	if o.exact && !result.AtEnd() {
		return result, newError(result)
	}
	return result.terminate(), nil
}

// ApplyTree evaluates rule against input and returns the final tree, or
// false if the rule did not match.
func ApplyTree(input string, rule Rule, opts ...Option) (tree.Tree, bool) {
	ctx, err := Apply(input, rule, opts...)
	if err != nil {
		return tree.Tree{}, false
	}
	return ctx.Root(), true
}

// ApplyTreeOrThrow evaluates rule against input and returns the final
// tree, panicking with the *SyntaxError on failure.
func ApplyTreeOrThrow(input string, rule Rule, opts ...Option) tree.Tree {
	ctx, err := Apply(input, rule, opts...)
	if err != nil {
		panic(err)
	}
	return ctx.Root()
}
