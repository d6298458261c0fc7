package siskin

// BranchMode selects how Branch picks among its alternatives.
type BranchMode int

const (
	// SeqMode tries alternatives in declaration order and returns the
	// first success. On total failure, it returns the furthest-progress
	// error among all the alternatives, favoring the first on a tie.
	SeqMode BranchMode = iota
	// TourneyMode evaluates every alternative against the same starting
	// context and keeps whichever result reached the furthest progress,
	// regardless of success or failure, preferring a success over an
	// error at equal progress and the first-encountered result among
	// equals of the same kind.
	TourneyMode
)

type branchRule struct {
	mode  BranchMode
	rules []Rule
}

func (b branchRule) evaluate(ctx Context) (Context, error) {
	if b.mode == TourneyMode {
		return evalTourney(ctx, b.rules)
	}
	return evalSeq(ctx, b.rules)
}

func evalSeq(ctx Context, rules []Rule) (Context, error) {
	var furthest error
	for _, r := range rules {
		next, err := r.evaluate(ctx)
		if err == nil {
			return next, nil
		}
		furthest = furthestError(furthest, err)
	}
	return ctx, furthest
}

func evalTourney(ctx Context, rules []Rule) (Context, error) {
	var (
		bestCtx      Context
		bestErr      error
		bestProgress int
		bestSuccess  bool
		have         bool
	)
	for _, r := range rules {
		next, err := r.evaluate(ctx)
		var progress int
		success := err == nil
		if success {
			progress = next.Progress()
		} else {
			progress = progressOf(err)
		}

		switch {
		case !have:
			bestCtx, bestErr, bestProgress, bestSuccess, have = next, err, progress, success, true
		case progress > bestProgress:
			bestCtx, bestErr, bestProgress, bestSuccess = next, err, progress, success
		case progress == bestProgress && success && !bestSuccess:
			bestCtx, bestErr, bestProgress, bestSuccess = next, err, progress, success
		}
	}
	if bestSuccess {
		return bestCtx, nil
	}
	return ctx, bestErr
}

// Branch builds an alternation among rules, resolved according to mode.
func Branch(mode BranchMode, rules ...Rule) Rule {
	return Rule{eval: branchRule{mode: mode, rules: rules}}
}

// Tourney builds an alternation that picks whichever rule reaches the
// furthest progress, rather than the first to succeed.
func Tourney(rules ...Rule) Rule {
	return Branch(TourneyMode, rules...)
}
