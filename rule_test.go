package siskin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptySucceedsWithoutAdvancing(t *testing.T) {
	ctx, err := Apply("", Empty())
	require.NoError(t, err)
	assert.Equal(t, 0, ctx.Root().Span())
}

func TestFromCharFailsAtProgressZeroOnEmptyInput(t *testing.T) {
	_, err := Apply("", FromChar('x'))
	require.Error(t, err)
	se := err.(*SyntaxError)
	assert.Equal(t, 0, se.Progress())
}

func TestFromRangeInclusiveByDefault(t *testing.T) {
	r := FromRange('a', 'c')
	for _, c := range []string{"a", "b", "c"} {
		_, err := Apply(c, r, Exact(true))
		assert.NoError(t, err, c)
	}
	_, err := Apply("d", r, Exact(true))
	assert.Error(t, err)
}

func TestFromRangeExclusiveUpper(t *testing.T) {
	r := FromRange('a', 'c', true)
	_, err := Apply("c", r, Exact(true))
	assert.Error(t, err)
	_, err = Apply("b", r, Exact(true))
	assert.NoError(t, err)
}

func TestChainFlattensNestedChains(t *testing.T) {
	inner := Chain(FromChar('a'), FromChar('b'))
	outer := Chain(inner, FromChar('c'))

	direct := Chain(FromChar('a'), FromChar('b'), FromChar('c'))
	assert.Equal(t, direct.eval, outer.eval)

	_, err1 := Apply("abc", outer, Exact(true))
	_, err2 := Apply("abc", direct, Exact(true))
	assert.NoError(t, err1)
	assert.NoError(t, err2)
}

func TestChainShortCircuitsOnFirstError(t *testing.T) {
	_, err := Apply("ax", Chain(FromChar('a'), FromChar('b')))
	require.Error(t, err)
	assert.Equal(t, 1, err.(*SyntaxError).Progress())
}

// scenario 1: lit("true") | lit("false")
func TestBooleanChoice(t *testing.T) {
	trueRule := Capture(FromString("true"), "true")
	falseRule := Capture(FromString("false"), "false")
	choice := trueRule.Or(falseRule)

	tr, ok := ApplyTree("true", choice, Exact(true))
	require.True(t, ok)
	require.Equal(t, 1, tr.NumChildren())
	assert.Equal(t, "true", tr.Child(0).ID())
	assert.Equal(t, 0, tr.Child(0).Begin())
	assert.Equal(t, 4, tr.Child(0).End())

	tr, ok = ApplyTree("false", choice, Exact(true))
	require.True(t, ok)
	assert.Equal(t, "false", tr.Child(0).ID())
	assert.Equal(t, 5, tr.Child(0).End())

	_, err := Apply("maybe", choice, Exact(true))
	require.Error(t, err)
	assert.Equal(t, 0, err.(*SyntaxError).Progress())
}

// scenario 2: tourney versus seq-branch prefix ambiguity.
func TestTourneyVsSeqBranchPrefix(t *testing.T) {
	x := Capture(FromString("xxx"), "x")
	y := Capture(FromString("xxxy"), "y")

	tourney := Tourney(x, y)
	seq := x.Or(y)

	tr, ok := ApplyTree("xxx", tourney, Exact(true))
	require.True(t, ok)
	assert.Equal(t, "x", tr.Child(0).ID())

	tr, ok = ApplyTree("xxxy", tourney, Exact(true))
	require.True(t, ok)
	assert.Equal(t, "y", tr.Child(0).ID())

	tr, ok = ApplyTree("xxx", seq, Exact(true))
	require.True(t, ok)
	assert.Equal(t, "x", tr.Child(0).ID())

	_, ok = ApplyTree("xxxy", seq, Exact(true))
	assert.False(t, ok, "seq-branch commits to the first match and leaves 'y' unconsumed")
}

// scenario 3: tourney with four choices of increasing length.
func TestTourneyFourChoices(t *testing.T) {
	a := Capture(FromString("x"), "a")
	b := Capture(FromString("xx"), "b")
	c := Capture(FromString("xxx"), "c")
	d := Capture(FromString("xxxx"), "d")
	grammar := Tourney(a, b, c, d)

	cases := map[string]string{"x": "a", "xx": "b", "xxx": "c", "xxxx": "d"}
	for input, want := range cases {
		tr, ok := ApplyTree(input, grammar, Exact(true))
		require.True(t, ok, input)
		assert.Equal(t, want, tr.Child(0).ID(), input)
	}
}

func TestBranchSeqReturnsFurthestErrorOnTotalFailure(t *testing.T) {
	short := Chain(FromChar('a'), FromChar('b'))
	long := Chain(FromChar('a'), FromChar('x'), FromChar('y'))
	_, err := Apply("ax!", short.Or(long))
	require.Error(t, err)
	// "long" reaches progress 2 (matches a, x) before failing on 'y' vs '!'.
	assert.Equal(t, 2, err.(*SyntaxError).Progress())
}

func TestRepeatMinZeroNeverFails(t *testing.T) {
	ctx, err := Apply("", FromChar('a').Times(0, 3))
	require.NoError(t, err)
	assert.Equal(t, 0, ctx.Progress())
}

func TestRepeatRespectsInclusiveCap(t *testing.T) {
	// default (inclusive-count) cap: at most 2 matches.
	ctx, err := Apply("aaaa", FromChar('a').Times(0, 2))
	require.NoError(t, err)
	assert.Equal(t, 2, ctx.Progress())
}

func TestRepeatExclusiveUpperIsOneLess(t *testing.T) {
	ctx, err := Apply("aaaa", FromChar('a').Times(0, 2, true))
	require.NoError(t, err)
	assert.Equal(t, 1, ctx.Progress())
}

func TestRepeatStopsOnZeroProgressBody(t *testing.T) {
	zeroProgress := Rule{eval: emptyRule{}}
	ctx, err := Apply("", zeroProgress.Times(0, -1))
	require.NoError(t, err)
	assert.Equal(t, 0, ctx.Progress())
}

func TestRefuseSucceedsOnlyWhenCondFails(t *testing.T) {
	notA := FromChar('x').Refusing(FromChar('a'))
	_, err := Apply("a", notA)
	assert.Error(t, err)

	ctx, err := Apply("x", notA)
	require.NoError(t, err)
	assert.Equal(t, 1, ctx.Progress())
}

func TestRefuseDoesNotConsumeInputForCond(t *testing.T) {
	// cond matches "ab" and so refuse fails, but the two characters cond
	// consumed while checking must never leak into a sibling alternative
	// evaluated against the same starting context.
	r := FromChar('a').Refusing(FromString("ab"))
	ctx, err := Apply("ab", r.Or(Empty()))
	require.NoError(t, err)
	assert.Equal(t, 0, ctx.Progress())
}

func TestCaptureSucceedsIffBodySucceedsUnderRebase(t *testing.T) {
	r := Capture(FromChar('a'), "a")
	ctx, err := Apply("a", r)
	require.NoError(t, err)
	require.Equal(t, 1, ctx.Root().NumChildren())
	assert.Equal(t, 1, ctx.Root().Child(0).End())

	_, err = Apply("b", r)
	assert.Error(t, err)
}

func TestCaptureFailureLeavesParentUntouched(t *testing.T) {
	r := Capture(FromChar('a'), "a").Or(Empty())
	ctx, err := Apply("b", r)
	require.NoError(t, err)
	assert.Equal(t, 0, ctx.Root().NumChildren())
}

// scenario 5: JSON number keep.
func TestKeepSetsAttributeAndNoChildren(t *testing.T) {
	digit := FromRange('0', '9')
	sign := FromChar('-').Times(0, 1)
	digits := digit.Times(1, -1)
	fraction := FromChar('.').Then(digits)
	exponent := FromChar('e').Then(FromChar('+').Times(0, 1)).Then(digits)

	body := sign.Then(digits).Then(fraction.Times(0, 1)).Then(exponent.Times(0, 1))
	number := Capture(Keep(body, "number:value"), "number")

	tr, ok := ApplyTree("-12.5e+3", number, Exact(true))
	require.True(t, ok)
	assert.Equal(t, "-12.5e+3", tr.Child(0).GetAttr("number:value"))
	assert.Equal(t, 0, tr.Child(0).NumChildren())
}

func TestKeepPreservesProgressOfBody(t *testing.T) {
	body := FromString("abc")
	r := Keep(body, "x")
	ctx, err := Apply("abc", r)
	require.NoError(t, err)
	assert.Equal(t, 3, ctx.Progress())
	assert.Equal(t, "abc", ctx.Root().GetAttr("x"))
}

func TestAheadSupportsRecursiveGrammar(t *testing.T) {
	// balanced parens: paren = '(' paren? ')'
	a := NewAhead()
	paren := Capture(FromChar('(').Then(a.Rule().Times(0, 1)).Then(FromChar(')')), "paren")
	a.Put(paren)

	_, err := Apply("((()))", paren, Exact(true))
	assert.NoError(t, err)

	_, err = Apply("(()", paren, Exact(true))
	assert.Error(t, err)
}

func TestAheadPanicsBeforePut(t *testing.T) {
	a := NewAhead()
	assert.Panics(t, func() {
		_, _ = a.Rule().evaluate(Context{})
	})
}

func TestErrorProgressNeverRegresses(t *testing.T) {
	r := Chain(FromChar('a'), FromChar('b'), FromChar('c'))
	_, err := Apply("abx", r)
	require.Error(t, err)
	assert.GreaterOrEqual(t, err.(*SyntaxError).Progress(), 0)
	assert.Equal(t, 2, err.(*SyntaxError).Progress())
}

func TestImmutabilityOfRuleEvaluation(t *testing.T) {
	r := FromChar('a')
	ctx := Context{cur: newCursor([]rune("ab"), 0)}
	before := ctx.Progress()
	_, _ = r.evaluate(ctx)
	assert.Equal(t, before, ctx.Progress(), "evaluating a rule must not mutate the context it was given")
}
