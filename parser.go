package diceroll

import (
	"strings"

	"github.com/alecthomas/participle/v2"
)

var diceParser = participle.MustBuild[Command](
	participle.Lexer(diceLexer),
	participle.UseLookahead(2),
	participle.Elide("whitespace"),
)

// Parser wraps the generated participle grammar. The reason suffix
// (`:<reason>`) sits outside the dice grammar proper: a reason is free text
// a player attaches to a roll ("for the killing blow"), not part of the
// expression, so Solver strips it with splitReason before the expression
// is handed to Parse at all.
type Parser struct{}

// NewParser returns a ready-to-use Parser. It holds no state; all of its
// methods are safe to call concurrently.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses query (without any reason suffix) into a Command AST.
// Syntax errors are wrapped in a *GrammarError carrying the original query
// for display.
func (p *Parser) Parse(query string) (*Command, error) {
	cmd, err := diceParser.ParseString("", query)
	if err != nil {
		return nil, newGrammarError(query, err)
	}
	return cmd, nil
}

// splitReason splits "2d6+6 : fireball damage" into the expression part
// and the trimmed reason, using the first top-level `:`. There is no
// facility for an expression to contain a literal `:`, so the first
// occurrence always delimits the reason, matching trim_reason's
// mutate-in-place behavior in the original solver.
func splitReason(query string) (expr string, reason string, hasReason bool) {
	idx := strings.IndexByte(query, ':')
	if idx < 0 {
		return query, "", false
	}
	return strings.TrimSpace(query[:idx]), strings.TrimSpace(query[idx+1:]), true
}

// collectDiceTerms walks an Expr's flat term sequence (including nested
// parenthesized sub-expressions) and appends every DiceTerm it finds, in
// left-to-right source order. This backs Solver.Dices, which callers use
// to show a player which individual dice terms fired in a compound
// expression like `2d6 + 1d4 + 3`.
func collectDiceTerms(e *Expr, out *[]*DiceTerm) {
	if e == nil {
		return
	}
	collectTermDice(e.Left, out)
	for _, ot := range e.Rest {
		collectTermDice(ot.Term, out)
	}
}

func collectTermDice(t *Term, out *[]*DiceTerm) {
	if t == nil {
		return
	}
	switch {
	case t.Dice != nil:
		*out = append(*out, t.Dice)
	case t.Paren != nil:
		collectDiceTerms(t.Paren.Expr, out)
	}
}

// cmpOrDefault resolves a grammar-level optional comparator token to a
// Cmp, falling back to def when the suffix carried no explicit `>=`/`<=`/
// `=`. Reroll and failure suffixes (`r1`, `f1`) default to an exact match;
// target and double-target suffixes (`t7`, `tt9`) default to "at least",
// matching how tables typically write success-counting dice.
func cmpOrDefault(cmp *string, def Cmp) Cmp {
	if cmp == nil {
		return def
	}
	switch *cmp {
	case ">=":
		return CmpGreaterEqual
	case "<=":
		return CmpLessEqual
	default:
		return CmpEqual
	}
}
