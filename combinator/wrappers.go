// Package combinator holds the convenience shorthand wrappers named in
// the core's external interface (maybe, many, some, sep, lit) built
// purely on top of Rule's exported methods and constructors — a
// collaborator, not part of the core rule algebra itself.
package combinator

import "github.com/oskoi/siskin"

// Maybe matches r zero or one times.
func Maybe(r siskin.Rule) siskin.Rule {
	return r.Times(0, 1)
}

// Some matches r zero or more times.
func Some(r siskin.Rule) siskin.Rule {
	return r.Times(0, -1)
}

// Many matches r one or more times.
func Many(r siskin.Rule) siskin.Rule {
	return r.Times(1, -1)
}

// Sep matches r, then zero or more repetitions of by followed by r —
// i.e. one or more r separated by by.
func Sep(r, by siskin.Rule) siskin.Rule {
	return r.Then(Some(by.Then(r)))
}

// Lit matches the literal string s, captured under an id equal to s
// itself.
func Lit(s string) siskin.Rule {
	return siskin.Capture(siskin.FromString(s), s)
}
