// Package siskin is an embedded parser-combinator DSL: grammars are built
// by composing primitive matchers (single character, character range,
// literal) with combinators (sequence, alternation, repetition, negation,
// forward declaration, capture, keep) into a Rule value. Applying a Rule
// to an input either succeeds, yielding an immutable tree of named
// captures with string attributes (see package tree), or fails, yielding
// a *SyntaxError identifying the furthest position reached.
//
// The evaluator is a backtracking, single-threaded, top-down interpreter.
// A Rule value is safe to share across goroutines — each call to Apply
// builds its own Context and cursor — but evaluating a single Rule is not
// reentrant-safe for Ahead rules still being Put.
package siskin

// evaluator is the contract every rule variant implements. It is kept
// unexported so Rule itself can stay a concrete value rather than an
// interface a caller could implement incorrectly.
type evaluator interface {
	evaluate(ctx Context) (Context, error)
}

// Rule is a composable grammar value. The zero Rule is not usable; every
// Rule in circulation comes from one of this package's constructors.
type Rule struct {
	eval evaluator
}

func (r Rule) evaluate(ctx Context) (Context, error) {
	return r.eval.evaluate(ctx)
}

// Then chains r and s: s is evaluated only after r succeeds, with no
// backtracking between them.
func (r Rule) Then(s Rule) Rule { return Chain(r, s) }

// Or tries r first and falls back to s only if r fails, in declaration
// order (see Branch / SeqMode). For furthest-progress selection among
// ambiguous alternatives, use Tourney instead.
func (r Rule) Or(s Rule) Rule { return Branch(SeqMode, r, s) }

// Times repeats r between min and max times. max < 0 means unbounded. See
// Repeat for the exact cap semantics of exclusiveUpper.
func (r Rule) Times(min, max int, exclusiveUpper ...bool) Rule {
	return Repeat(r, min, max, exclusiveUpper...)
}

// Refusing turns r into a negative-lookahead-guarded rule: r only runs if
// cond fails to match at the same position.
func (r Rule) Refusing(cond Rule) Rule { return Refuse(r, cond) }

type emptyRule struct{}

func (emptyRule) evaluate(ctx Context) (Context, error) { return ctx, nil }

// Empty always succeeds without consuming any input.
func Empty() Rule { return Rule{eval: emptyRule{}} }

// rangeRule matches a single character within [lo, hi]. When
// exclusiveUpper is set, the upper bound is excluded: [lo, hi).
type rangeRule struct {
	lo, hi         rune
	exclusiveUpper bool
}

func (r rangeRule) evaluate(ctx Context) (Context, error) {
	if ctx.AtEnd() {
		return ctx, newError(ctx)
	}
	c := ctx.Char()
	ok := c >= r.lo
	if r.exclusiveUpper {
		ok = ok && c < r.hi
	} else {
		ok = ok && c <= r.hi
	}
	if !ok {
		return ctx, newError(ctx)
	}
	return ctx.advance(), nil
}

// FromRange matches any character in [lo, hi], inclusive unless
// exclusiveUpper is passed as true, in which case the upper bound is
// excluded.
func FromRange(lo, hi rune, exclusiveUpper ...bool) Rule {
	excl := len(exclusiveUpper) > 0 && exclusiveUpper[0]
	return Rule{eval: rangeRule{lo: lo, hi: hi, exclusiveUpper: excl}}
}

// FromChar matches exactly one character. It is Range(c, c).
func FromChar(c rune) Rule {
	return Rule{eval: rangeRule{lo: c, hi: c}}
}

// FromString matches a literal run of characters: a Chain of one FromChar
// rule per rune in s.
func FromString(s string) Rule {
	runes := []rune(s)
	rules := make([]Rule, len(runes))
	for i, r := range runes {
		rules[i] = FromChar(r)
	}
	return Chain(rules...)
}
