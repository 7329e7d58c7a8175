package diceroll

// Evaluator walks a parsed Command/Expr AST, rolling dice against a
// RandomSource and folding terms together with Climber, to produce a
// final Single (or, for repeated expressions, a Multi).
type Evaluator struct {
	source RandomSource
}

// NewEvaluator returns an Evaluator that rolls dice against source.
func NewEvaluator(source RandomSource) *Evaluator {
	return &Evaluator{source: source}
}

// Eval resolves expr to a single combined Single, applying operator
// precedence via Climber.
func (e *Evaluator) Eval(expr *Expr) (*Single, error) {
	climber := &Climber{Primary: e.evalTerm, Infix: e.evalInfix}
	return climber.Climb(expr)
}

func (e *Evaluator) evalInfix(op string, lhs, rhs *Single) (*Single, error) {
	switch op {
	case "+":
		return lhs.Add(rhs), nil
	case "-":
		return lhs.Sub(rhs), nil
	case "*":
		return lhs.Mul(rhs), nil
	case "/":
		return lhs.Div(rhs)
	default:
		return nil, newGrammarError(op, ErrNilExpression)
	}
}

func (e *Evaluator) evalTerm(t *Term) (*Single, error) {
	switch {
	case t.Paren != nil:
		single, err := e.Eval(t.Paren.Expr)
		if err != nil {
			return nil, err
		}
		single.AddParens()
		return single, nil
	case t.Dice != nil:
		return e.evalDiceTerm(t.Dice)
	case t.Number != nil:
		return evalNumber(t.Number), nil
	default:
		return nil, ErrNilExpression
	}
}

func evalNumber(n *Number) *Single {
	negative := n.Sign == "-"
	if n.Float != nil {
		v := *n.Float
		if negative {
			v = -v
		}
		return NewSingleFloat(v)
	}
	v := *n.Int
	if negative {
		v = -v
	}
	return NewSingleInt(v)
}

// evalDiceTerm rolls dt's dice against e.source, resolves its
// explode/reroll modifiers against the live roll pool, then scores the
// result with whatever keep/drop/target modifier remains.
func (e *Evaluator) evalDiceTerm(dt *DiceTerm) (*Single, error) {
	amount := uint64(1)
	if dt.Amount != nil {
		amount = *dt.Amount
	}
	if amount > MaxDiceAmount {
		return nil, &ErrTooManyDice{Requested: amount}
	}

	if dt.Fudge {
		faces := make([]int, amount)
		for i := range faces {
			faces[i] = fudgeFace(e.source.Throw(6))
		}
		return NewSingleFudge(faces), nil
	}

	if dt.Sides == nil {
		return nil, ErrZeroSidedDie
	}
	sides := *dt.Sides
	if sides == 0 {
		return nil, ErrZeroSidedDie
	}
	if sides > MaxDiceSides {
		return nil, &ErrTooManySides{Requested: sides}
	}

	rolls := rollDice(e.source, amount, sides)

	rolls, err := e.applyExplodeReroll(rolls, sides, dt.Modifiers)
	if err != nil {
		return nil, err
	}

	single := NewSingleRoll(rolls)

	modifier, err := scoringModifier(dt.Modifiers)
	if err != nil {
		return nil, err
	}
	if _, err := single.EvalTotal(modifier); err != nil {
		return nil, err
	}
	return single, nil
}

func rollDice(source RandomSource, amount, sides uint64) DieResults {
	rolls := make(DieResults, amount)
	for i := range rolls {
		rolls[i] = NewDieResult(source.Throw(sides), sides)
	}
	return rolls
}

// fudgeFace maps a d6 throw onto a fudge die's three grouped faces: 1-2
// is minus, 3-4 is blank, 5-6 is plus.
func fudgeFace(v uint64) int {
	switch {
	case v <= 2:
		return -1
	case v <= 4:
		return 0
	default:
		return 1
	}
}

// explodeRerollCap bounds how many additional dice an indefinite
// explode/reroll clause may add/replace, guarding against a die that
// (against astronomical odds, or a malicious deterministic source) never
// stops qualifying.
const explodeRerollCap = 10000

// applyExplodeReroll resolves every explode/reroll ModifierNode against
// rolls, in source order, returning the final roll pool. Keep/drop and
// target modifiers are left untouched for scoringModifier to fold into a
// single scoring Modifier afterward.
func (e *Evaluator) applyExplodeReroll(rolls DieResults, sides uint64, nodes []*ModifierNode) (DieResults, error) {
	for _, node := range nodes {
		switch {
		case node.Explode != nil:
			rolls = e.applyExplode(rolls, sides, node.Explode)
		case node.Reroll != nil:
			rolls = e.applyReroll(rolls, sides, node.Reroll)
		}
	}
	return rolls, nil
}

func (e *Evaluator) applyExplode(rolls DieResults, sides uint64, mod *ExplodeNode) DieResults {
	low := mod.Low || mod.IndefLow
	indefinite := mod.Indef || mod.IndefLow
	triggers := func(v uint64) bool {
		if low {
			return v == 1
		}
		return v == sides
	}

	out := append(DieResults(nil), rolls...)
	queue := make([]int, 0, len(out))
	for i, r := range out {
		if triggers(r.Value) {
			queue = append(queue, i)
		}
	}

	budget := explodeRerollCap
	for len(queue) > 0 && budget > 0 {
		queue = queue[1:]
		extra := NewDieResult(e.source.Throw(sides), sides)
		out = append(out, extra)
		budget--
		if indefinite && triggers(extra.Value) {
			queue = append(queue, len(out)-1)
		}
	}
	return out
}

func (e *Evaluator) applyReroll(rolls DieResults, sides uint64, mod *RerollNode) DieResults {
	cmp := cmpOrDefault(mod.Cmp, CmpEqual)
	matches := func(v uint64) bool { return cmp.matches(int64(v), mod.Value) }

	out := append(DieResults(nil), rolls...)
	budget := explodeRerollCap
	for i := range out {
		for matches(out[i].Value) && budget > 0 {
			out[i] = NewDieResult(e.source.Throw(sides), sides)
			budget--
			if !mod.Indef {
				break
			}
		}
	}
	return out
}

// scoringModifier folds the keep/drop/target/enum ModifierNodes on a dice
// term into a single flat Modifier for Single.EvalTotal. Target/double/
// failure nodes merge (last one wins per slot); a keep/drop or enum node
// simply replaces whatever scoring modifier preceded it, matching a dice
// term only ever applying one keep/drop rule.
func scoringModifier(nodes []*ModifierNode) (Modifier, error) {
	result := Modifier{Kind: ModNone}
	for _, node := range nodes {
		switch {
		case node.KeepDrop != nil:
			kd := node.KeepDrop
			m := Modifier{Count: kd.Count}
			switch {
			case kd.KeepHigh:
				m.Kind = ModKeepHigh
			case kd.KeepLow:
				m.Kind = ModKeepLow
			case kd.DropHigh:
				m.Kind = ModDropHigh
			default:
				m.Kind = ModDropLow
			}
			result = m

		case node.TargetEnum != nil:
			result = Modifier{Kind: ModTargetEnum, Enum: node.TargetEnum.Values}

		case node.Target != nil:
			t := node.Target
			next := Modifier{Kind: ModTargetDoubleFailure}
			if t.Double {
				next.HasDouble = true
				next.DoubleCmp = cmpOrDefault(t.Cmp, CmpGreaterEqual)
				next.Double = t.Value
			} else {
				next.HasTarget = true
				next.Cmp = cmpOrDefault(t.Cmp, CmpGreaterEqual)
				next.Target = t.Value
			}
			if result.Kind == ModTargetDoubleFailure {
				result = mergeTargetModifier(result, next)
			} else {
				result = next
			}

		case node.Failure != nil:
			f := node.Failure
			next := Modifier{
				Kind:       ModTargetDoubleFailure,
				HasFailure: true,
				FailureCmp: cmpOrDefault(f.Cmp, CmpEqual),
				Failure:    f.Value,
			}
			if result.Kind == ModTargetDoubleFailure {
				result = mergeTargetModifier(result, next)
			} else {
				result = next
			}
		}
	}
	return result, nil
}
