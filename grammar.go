package diceroll

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// diceLexer tokenizes dice notation with a single flat rule set. Order
// matters: participle's stateful lexer tries rules in order, so every
// multi-character modifier token (`!!`, `rr`, `kh`, `tt`, ...) is listed
// ahead of the single-character token it would otherwise be swallowed by
// (`!`, `r`, `t`).
var diceLexer = lexer.MustStateful(lexer.Rules{
	"Root": []lexer.Rule{
		{Name: "whitespace", Pattern: `[ \t\r\n]+`},

		{Name: "ExplodeIndefLow", Pattern: `!!l`},
		{Name: "ExplodeLow", Pattern: `!l`},
		{Name: "ExplodeIndefinite", Pattern: `!!`},
		{Name: "Explode", Pattern: `!`},

		{Name: "RerollIndefinite", Pattern: `rr`},
		{Name: "Reroll", Pattern: `r`},

		{Name: "KeepHigh", Pattern: `kh`},
		{Name: "KeepLow", Pattern: `kl`},
		{Name: "DropHigh", Pattern: `dh`},
		{Name: "DropLow", Pattern: `dl`},

		{Name: "DoubleTarget", Pattern: `tt`},
		{Name: "Target", Pattern: `t`},
		{Name: "Failure", Pattern: `f`},

		{Name: "FudgeDie", Pattern: `dF`},
		{Name: "Dice", Pattern: `[dD]`},

		{Name: "GTE", Pattern: `>=`},
		{Name: "LTE", Pattern: `<=`},
		{Name: "EQ", Pattern: `=`},

		{Name: "CaretSum", Pattern: `\^\+`},
		{Name: "CaretSort", Pattern: `\^#`},
		{Name: "Caret", Pattern: `\^`},

		{Name: "LBracket", Pattern: `\[`},
		{Name: "RBracket", Pattern: `\]`},
		{Name: "Comma", Pattern: `,`},
		{Name: "LParen", Pattern: `\(`},
		{Name: "RParen", Pattern: `\)`},

		{Name: "Plus", Pattern: `\+`},
		{Name: "Minus", Pattern: `-`},
		{Name: "Star", Pattern: `\*`},
		{Name: "Slash", Pattern: `/`},

		{Name: "Float", Pattern: `[0-9]+\.[0-9]+`},
		{Name: "Int", Pattern: `[0-9]+`},
	},
})

// Command is the root grammar production: an expression, optionally
// followed by a repeat suffix (`^N`, `^+N`, `^#N`).
type Command struct {
	Pos  lexer.Position
	Expr *Expr   `parser:"@@"`
	Rep  *Repeat `parser:"@@?"`
}

// Repeat is the `^`/`^+`/`^#` suffix controlling how many times Expr is
// evaluated and how the repetitions are combined.
type Repeat struct {
	Sum   bool  `parser:"( @CaretSum"`
	Sort  bool  `parser:"| @CaretSort"`
	Plain bool  `parser:"| @Caret )"`
	Count int64 `parser:"@Int"`
}

// Expr is a flat left-to-right sequence of terms and the operators
// joining them. Precedence is NOT encoded in the grammar: Climber resolves
// it over this flat sequence, per the two-band (`+`/`-` then `*`/`/`)
// precedence rule.
type Expr struct {
	Pos   lexer.Position
	Left  *Term     `parser:"@@"`
	Rest  []*OpTerm `parser:"@@*"`
}

// OpTerm is one (operator, term) pair following the first term of an Expr.
type OpTerm struct {
	Op   string `parser:"@(Plus | Minus | Star | Slash)"`
	Term *Term  `parser:"@@"`
}

// Term is a single operand: a parenthesized sub-expression, a dice term,
// or a signed numeric literal.
type Term struct {
	Paren  *ParenExpr `parser:"( @@"`
	Dice   *DiceTerm  `parser:"| @@"`
	Number *Number    `parser:"| @@ )"`
}

// ParenExpr is a fully parenthesized sub-expression; evaluating it
// produces a Single whose history gets wrapped in a paren pair (see
// Single.AddParens).
type ParenExpr struct {
	Expr *Expr `parser:"LParen @@ RParen"`
}

// Number is a signed integer or decimal literal, e.g. `6`, `-1.5`, `+5`.
type Number struct {
	Sign  string   `parser:"@(Plus | Minus)?"`
	Float *float64 `parser:"( @Float"`
	Int   *int64   `parser:"| @Int )"`
}

// DiceTerm is `[amount] d (sides|F) [modifiers...]`, e.g. `4d6kh3`,
// `2dF`, `10d10t7tt9`. Pos/EndPos bound the term's source slice so
// Solver.Dices can report the exact notation a dice term was written as.
type DiceTerm struct {
	Pos       lexer.Position
	Amount    *uint64         `parser:"@Int?"`
	Fudge     bool            `parser:"( @FudgeDie"`
	Sides     *uint64         `parser:"| Dice @Int )"`
	Modifiers []*ModifierNode `parser:"@@*"`
	EndPos    lexer.Position
}

// ModifierNode is the grammar-level representation of one dice-term
// suffix; the evaluator applies explode/reroll nodes directly
// (applyExplodeReroll) and scoringModifier folds the rest into the flat
// Modifier used by Single.EvalTotal.
type ModifierNode struct {
	Explode    *ExplodeNode    `parser:"( @@"`
	Reroll     *RerollNode     `parser:"| @@"`
	KeepDrop   *KeepDropNode   `parser:"| @@"`
	TargetEnum *TargetEnumNode `parser:"| @@"`
	Target     *TargetNode     `parser:"| @@"`
	Failure    *FailureNode    `parser:"| @@ )"`
}

// ExplodeNode: `!`, `!!`, `!l`, `!!l`.
type ExplodeNode struct {
	IndefLow bool `parser:"( @ExplodeIndefLow"`
	Low      bool `parser:"| @ExplodeLow"`
	Indef    bool `parser:"| @ExplodeIndefinite"`
	Once     bool `parser:"| @Explode )"`
}

// RerollNode: `r<cmp>N`, `rr<cmp>N`.
type RerollNode struct {
	Indef bool    `parser:"( @RerollIndefinite"`
	Once  bool    `parser:"| @Reroll )"`
	Cmp   *string `parser:"@(GTE | LTE | EQ)?"`
	Value int64   `parser:"@Int"`
}

// KeepDropNode: `khN`, `klN`, `dhN`, `dlN`.
type KeepDropNode struct {
	KeepHigh bool   `parser:"( @KeepHigh"`
	KeepLow  bool   `parser:"| @KeepLow"`
	DropHigh bool   `parser:"| @DropHigh"`
	DropLow  bool   `parser:"| @DropLow )"`
	Count    uint64 `parser:"@Int"`
}

// TargetEnumNode: `t[2,3,5]`.
type TargetEnumNode struct {
	Values []int64 `parser:"Target LBracket @Int (Comma @Int)* RBracket"`
}

// TargetNode: `t<cmp>N`, `tt<cmp>N`.
type TargetNode struct {
	Double bool    `parser:"( @DoubleTarget"`
	Single bool    `parser:"| @Target )"`
	Cmp    *string `parser:"@(GTE | LTE | EQ)?"`
	Value  int64   `parser:"@Int"`
}

// FailureNode: `f<cmp>N`.
type FailureNode struct {
	Cmp   *string `parser:"Failure @(GTE | LTE | EQ)?"`
	Value int64   `parser:"@Int"`
}
