package diceroll

import (
	"fmt"
	"sort"
)

// Single is one numeric sub-expression: a constant, a dice roll, or the
// result of combining two Singles with an arithmetic operator. Every
// Single carries its own History so the final Result can echo back how its
// total was derived.
//
// Total/Dirty implement a small dirty flag: AddHistory sets Dirty, and
// EvalTotal recomputes Total on every call and clears Dirty. AddParens only
// rewraps the rendered history and leaves Dirty as it was. This mirrors re-deriving a displayed total after a modifier is applied
// without re-walking the whole history on every String() call.
type Single struct {
	Total   float64
	Dirty   bool
	History History

	// Rolls holds the raw dice results backing this Single when it is (or
	// derives from) a dice term, so EvalTotal can re-derive a total under
	// a different Modifier without re-rolling.
	Rolls DieResults

	// Fudge holds the raw faces (-1, 0, +1) when this Single is a fudge
	// dice term.
	Fudge []int
}

// NewSingleInt builds a leaf Single from an integer literal. Every leaf
// Single's history is pre-seeded with one Constant entry, even though it
// looks redundant for e.g. a bare `6` term: merge_history (see Add) only
// appends an operator and the right-hand history when the right side is
// non-empty, so a literal combined with a dice term must already carry its
// own one-entry history to show up at all.
func NewSingleInt(v int64) *Single {
	return &Single{
		Total:   float64(v),
		History: History{constantEntry(float64(v))},
	}
}

// NewSingleFloat builds a leaf Single from a decimal literal.
func NewSingleFloat(v float64) *Single {
	return &Single{
		Total:   v,
		History: History{constantEntry(v)},
	}
}

// NewSingleRoll builds a Single from a freshly rolled dice term, with no
// modifier applied yet (equivalent to EvalTotal(Modifier{})).
func NewSingleRoll(rolls DieResults) *Single {
	s := &Single{Rolls: append(DieResults(nil), rolls...)}
	s.AddHistory(rollEntry(sortedDescending(rolls)))
	s.EvalTotal(Modifier{})
	return s
}

// NewSingleFudge builds a Single from a fudge dice term (see FudgeDie).
func NewSingleFudge(faces []int) *Single {
	s := &Single{Fudge: append([]int(nil), faces...)}
	s.AddHistory(fudgeEntry(faces))
	total := 0
	for _, f := range faces {
		total += f
	}
	s.Total = float64(total)
	return s
}

func sortedDescending(rolls DieResults) DieResults {
	out := append(DieResults(nil), rolls...)
	sort.Sort(sort.Reverse(out))
	return out
}

// AddHistory appends one entry to the Single's history and marks it dirty.
func (s *Single) AddHistory(entry HistoryEntry) {
	s.History = append(s.History, entry)
	s.Dirty = true
}

// AddParens wraps the Single's existing history in a parenthesis pair, as
// happens when a `(...)` block expression is folded back into its
// surrounding expression.
func (s *Single) AddParens() {
	wrapped := make(History, 0, len(s.History)+2)
	wrapped = append(wrapped, openParenEntry())
	wrapped = append(wrapped, s.History...)
	wrapped = append(wrapped, closeParenEntry())
	s.History = wrapped
}

// IsZero reports whether the Single's total is exactly zero.
func (s *Single) IsZero() bool {
	return s.Total == 0
}

// String renders the Single as markdown: its history, backtick-quoted,
// followed by its bold total — `` `<history>` = **<total>** ``.
func (s *Single) String() string {
	return fmt.Sprintf("`%s` = **%s**", s.History.String(), formatFloat(s.Total))
}

// EvalTotal recomputes Total from Rolls under modifier, applying
// keep/drop/target semantics, and returns the resulting total. It is the
// only place these modifiers are scored; the evaluator's explode/reroll
// pass runs before it on the full roll pool and does no keep/drop slicing.
// A fudge Single has no Rolls, so its precomputed Total is kept as is.
func (s *Single) EvalTotal(modifier Modifier) (float64, error) {
	switch modifier.Kind {
	case ModKeepHigh, ModKeepLow, ModDropHigh, ModDropLow:
		kept, err := applyKeepDrop(s.Rolls, modifier)
		if err != nil {
			return 0, err
		}
		total := 0.0
		for _, r := range kept {
			total += float64(r.Value)
		}
		s.Total = total
		s.Dirty = false
		return total, nil

	case ModTargetDoubleFailure:
		total := 0.0
		for _, r := range s.Rolls {
			total += scoreTarget(r.Value, modifier)
		}
		s.Total = total
		s.Dirty = false
		return total, nil

	case ModTargetEnum:
		total := 0.0
		for _, r := range s.Rolls {
			for _, want := range modifier.Enum {
				if int64(r.Value) == want {
					total++
					break
				}
			}
		}
		s.Total = total
		s.Dirty = false
		return total, nil

	default:
		// No keep/drop/target modifier: total is the plain sum of rolls
		// (or the precomputed fudge/constant total).
		if len(s.Rolls) > 0 {
			total := 0.0
			for _, r := range s.Rolls {
				total += float64(r.Value)
			}
			s.Total = total
		}
		s.Dirty = false
		return s.Total, nil
	}
}

// applyKeepDrop sorts rolls ascending and slices the kept subset per
// modifier. Count greater than len(rolls) is an ErrNotEnoughDice.
func applyKeepDrop(rolls DieResults, modifier Modifier) (DieResults, error) {
	if modifier.Count > uint64(len(rolls)) {
		return nil, ErrNotEnoughDice
	}
	sorted := append(DieResults(nil), rolls...)
	sort.Sort(sorted)
	n := int(modifier.Count)
	switch modifier.Kind {
	case ModKeepHigh:
		return sorted[len(sorted)-n:], nil
	case ModKeepLow:
		return sorted[:n], nil
	case ModDropHigh:
		return sorted[:len(sorted)-n], nil
	case ModDropLow:
		return sorted[n:], nil
	default:
		return sorted, nil
	}
}

// scoreTarget applies the fused target/double-target/failure scoring rule
// to a single die value, checking the slots in order: +2 for a double-target
// hit, otherwise +1 for a target hit, otherwise -1 for a failure hit.
func scoreTarget(value uint64, modifier Modifier) float64 {
	v := int64(value)
	switch {
	case modifier.HasDouble && modifier.DoubleCmp.matches(v, modifier.Double):
		return 2
	case modifier.HasTarget && modifier.Cmp.matches(v, modifier.Target):
		return 1
	case modifier.HasFailure && modifier.FailureCmp.matches(v, modifier.Failure):
		return -1
	}
	return 0
}

// merge folds rhs's history into lhs's, prefixed by an operator entry,
// but only when rhs actually has history to show: a no-op identity operand
// (e.g. an internal zero accumulator) must not inject a bare ` + ` with
// nothing after it.
func (lhs *Single) merge(op string, rhs *Single) {
	if len(rhs.History) == 0 {
		return
	}
	lhs.History = append(lhs.History, operatorEntry(op))
	lhs.History = append(lhs.History, rhs.History...)
}

// Add returns a new Single holding lhs+rhs, with merged history.
func (lhs *Single) Add(rhs *Single) *Single {
	out := &Single{Total: lhs.Total + rhs.Total, History: append(History(nil), lhs.History...)}
	out.merge("+", rhs)
	return out
}

// Sub returns a new Single holding lhs-rhs, with merged history.
func (lhs *Single) Sub(rhs *Single) *Single {
	out := &Single{Total: lhs.Total - rhs.Total, History: append(History(nil), lhs.History...)}
	out.merge("-", rhs)
	return out
}

// Mul returns a new Single holding lhs*rhs, with merged history.
func (lhs *Single) Mul(rhs *Single) *Single {
	out := &Single{Total: lhs.Total * rhs.Total, History: append(History(nil), lhs.History...)}
	out.merge("*", rhs)
	return out
}

// Div returns a new Single holding lhs/rhs, with merged history. Division
// by a zero-total rhs is rejected rather than producing +Inf/NaN.
func (lhs *Single) Div(rhs *Single) (*Single, error) {
	if rhs.IsZero() {
		return nil, ErrDivideByZero
	}
	out := &Single{Total: lhs.Total / rhs.Total, History: append(History(nil), lhs.History...)}
	out.merge("/", rhs)
	return out, nil
}
