package diceroll

// Solver is the package's entry point: a parsed-on-demand dice notation
// query, ready to be rolled one or more times. A Solver is cheap to build
// and holds no random state of its own, so the same Solver can be
// reused (and is safe for concurrent use) across many Solve calls.
type Solver struct {
	query string
}

// NewSolver builds a Solver over the given dice notation query. The query
// is not parsed until Solve (or Dices) is called, so a malformed query
// only surfaces an error at roll time.
func NewSolver(query string) *Solver {
	return &Solver{query: query}
}

// AsStr returns the Solver's original query, including any reason suffix.
func (s *Solver) AsStr() string {
	return s.query
}

// TrimReason strips and returns any `:<reason>` suffix from the Solver's
// query, mutating the Solver in place so subsequent calls parse the bare
// expression. It returns "" if no reason suffix was present.
func (s *Solver) TrimReason() string {
	expr, reason, hasReason := splitReason(s.query)
	if !hasReason {
		return ""
	}
	s.query = expr
	return reason
}

// Dices parses the Solver's query and returns every dice term it contains,
// in left-to-right source order, without rolling them.
func (s *Solver) Dices() ([]*DiceTerm, error) {
	expr, _, _ := splitReason(s.query)
	cmd, err := NewParser().Parse(expr)
	if err != nil {
		return nil, err
	}
	var dices []*DiceTerm
	collectDiceTerms(cmd.Expr, &dices)
	return dices, nil
}

// Solve parses and rolls the query against the package's default
// crypto/rand-backed RandomSource.
func (s *Solver) Solve() (*RollResult, error) {
	return s.SolveWithSource(DefaultRandomSource)
}

// SolveWith is an alias for SolveWithSource, kept for callers migrating
// from code that only ever supplies a custom source.
func (s *Solver) SolveWith(source RandomSource) (*RollResult, error) {
	return s.SolveWithSource(source)
}

// SolveWithSource parses and rolls the query against source. Passing a
// deterministic RandomSource (see sequenceSource in tests) makes the
// result reproducible.
func (s *Solver) SolveWithSource(source RandomSource) (*RollResult, error) {
	expr, reason, _ := splitReason(s.query)

	cmd, err := NewParser().Parse(expr)
	if err != nil {
		return nil, err
	}

	eval := NewEvaluator(source)

	if cmd.Rep != nil {
		multi, err := solveRepeated(eval, cmd)
		if err != nil {
			return nil, err
		}
		return &RollResult{Kind: ResultKindMulti, Multi: multi, Reason: reason}, nil
	}

	single, err := eval.Eval(cmd.Expr)
	if err != nil {
		return nil, err
	}
	return &RollResult{Kind: ResultKindSingle, Single: single, Reason: reason}, nil
}

// solveRepeated evaluates cmd.Expr cmd.Rep.Count times, then combines the
// repetitions per the `^` (plain, individually reported), `^+` (summed),
// or `^#` (sorted ascending) suffix.
func solveRepeated(eval *Evaluator, cmd *Command) (*Multi, error) {
	count := cmd.Rep.Count
	if count <= 0 {
		return nil, ErrBadRepeatCount
	}

	multi := &Multi{Rolls: make([]*Single, 0, count)}
	for i := int64(0); i < count; i++ {
		single, err := eval.Eval(cmd.Expr)
		if err != nil {
			return nil, err
		}
		multi.Rolls = append(multi.Rolls, single)
	}

	switch {
	case cmd.Rep.Sum:
		multi.Sum()
	case cmd.Rep.Sort:
		multi.SortAscending()
	}
	return multi, nil
}
