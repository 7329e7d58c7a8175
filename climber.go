package diceroll

// Climber resolves operator precedence over the flat term/operator
// sequence the grammar produces (Expr.Left, Expr.Rest...), combining
// operands with the caller-supplied Eval's Primary/Infix handlers.
//
// Precedence is exactly two bands, both left-associative: `+` and `-`
// bind equally and looser than `*` and `/`, which also bind equally to
// each other. This is a deliberate flattening relative to a naive
// four-level reading of "each operator gets its own precedence rule" — the
// dice notation this engine accepts never needs finer-grained precedence
// than "multiplicative before additive", and collapsing same-tier
// operators to one level keeps `10 - 4 - 2` and `20 / 4 / 2` associating
// left the way a player expects.
type Climber struct {
	Primary func(*Term) (*Single, error)
	Infix   func(op string, lhs, rhs *Single) (*Single, error)
}

func precedence(op string) int {
	switch op {
	case "*", "/":
		return 2
	default: // "+", "-"
		return 1
	}
}

// Climb evaluates expr's flat term sequence into a single combined Single,
// respecting operator precedence via precedence climbing.
func (c *Climber) Climb(expr *Expr) (*Single, error) {
	lhs, err := c.Primary(expr.Left)
	if err != nil {
		return nil, err
	}
	ops := make([]opOperand, len(expr.Rest))
	for i, ot := range expr.Rest {
		rhs, err := c.Primary(ot.Term)
		if err != nil {
			return nil, err
		}
		ops[i] = opOperand{op: ot.Op, rhs: rhs}
	}
	result, _, err := c.climb(lhs, ops, 0, 0)
	return result, err
}

type opOperand struct {
	op  string
	rhs *Single
}

// climb is the standard precedence-climbing loop: it folds operands into
// lhs as long as the next operator binds at least as tightly as minPrec,
// recursing to consume a tighter-binding run first.
func (c *Climber) climb(lhs *Single, ops []opOperand, pos int, minPrec int) (*Single, int, error) {
	for pos < len(ops) && precedence(ops[pos].op) >= minPrec {
		op := ops[pos].op
		rhs := ops[pos].rhs
		pos++
		for pos < len(ops) && precedence(ops[pos].op) > precedence(op) {
			var err error
			rhs, pos, err = c.climb(rhs, ops, pos, precedence(op)+1)
			if err != nil {
				return nil, pos, err
			}
		}
		var err error
		lhs, err = c.Infix(op, lhs, rhs)
		if err != nil {
			return nil, pos, err
		}
	}
	return lhs, pos, nil
}
