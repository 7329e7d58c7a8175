package diceroll

// SubRule distinguishes the repeat behavior of explode/reroll style
// modifiers: a rule fires once, or fires indefinitely until the triggering
// condition stops holding.
type SubRule int

const (
	RuleOnce SubRule = iota
	RuleIndefinite
)

// ModKind discriminates the concrete kind of a Modifier. Go has no sum
// types, so Modifier carries Kind plus whichever of its other fields that
// kind actually uses; eval_total-style code should switch exhaustively on
// Kind rather than infer shape from which fields are set.
type ModKind int

const (
	// ModNone is the zero value: no keep/drop/target scoring modifier is
	// present on a dice term, so EvalTotal just sums the rolls.
	ModNone ModKind = iota
	// ModExplode re-rolls and adds an extra die when a die shows its max
	// (or min, for exploding low) face. Rule/Low distinguish the four
	// `!`, `!!`, `!l`, `!!l` forms.
	ModExplode
	// ModReroll discards and re-rolls a die matching Target (or below/above
	// it depending on Cmp), once or indefinitely per Rule.
	ModReroll
	ModKeepHigh
	ModKeepLow
	ModDropHigh
	ModDropLow
	// ModTargetDoubleFailure fuses target-counting (`t`), double-target
	// success (`tt`), and failure counting (`f`) into one modifier because
	// they share a single success-count accumulator and can coexist on the
	// same dice term; see mergeTargetModifier's merge-own-slot handling.
	ModTargetDoubleFailure
	// ModTargetEnum counts successes against a fixed set of literal faces,
	// e.g. `t[2,3,5]`.
	ModTargetEnum
	ModFudge
)

// Cmp is the comparison a target/reroll modifier tests a die value against.
type Cmp int

const (
	CmpEqual Cmp = iota
	CmpGreaterEqual
	CmpLessEqual
)

// Modifier is a single parsed dice-term suffix. Only the fields relevant to
// Kind are meaningful; the rest are zero.
type Modifier struct {
	Kind ModKind

	// ModExplode, ModReroll
	Rule SubRule
	Low  bool // explode/reroll against the low face instead of the high one

	// ModKeepHigh, ModKeepLow, ModDropHigh, ModDropLow
	Count uint64

	// ModReroll, ModTargetDoubleFailure (target/failure thresholds)
	Cmp    Cmp
	Target int64

	// ModTargetDoubleFailure: Double and Failure are only set when the
	// corresponding suffix (`tt`, `f`) was present on this dice term; a
	// second `t`/`tt`/`f` suffix on the same term overwrites only its own
	// slot, never the others (see mergeTargetModifier).
	HasTarget  bool
	HasDouble  bool
	DoubleCmp  Cmp
	Double     int64
	HasFailure bool
	FailureCmp Cmp
	Failure    int64

	// ModTargetEnum
	Enum []int64
}

// mergeTargetModifier folds `next` into `m`, which must both be
// ModTargetDoubleFailure, overwriting only the slot `next` actually carries.
// This mirrors the original solver's "last `t`/`tt`/`f` wins independently"
// semantics for e.g. `10d10 t7 tt9 f1`.
func mergeTargetModifier(m, next Modifier) Modifier {
	if next.HasTarget {
		m.HasTarget = true
		m.Cmp = next.Cmp
		m.Target = next.Target
	}
	if next.HasDouble {
		m.HasDouble = true
		m.DoubleCmp = next.DoubleCmp
		m.Double = next.Double
	}
	if next.HasFailure {
		m.HasFailure = true
		m.FailureCmp = next.FailureCmp
		m.Failure = next.Failure
	}
	return m
}

func (c Cmp) matches(value, target int64) bool {
	switch c {
	case CmpGreaterEqual:
		return value >= target
	case CmpLessEqual:
		return value <= target
	default:
		return value == target
	}
}
