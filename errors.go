package diceroll

import (
	"fmt"

	"github.com/pkg/errors"
)

// Semantic error sentinels. Their text matches the wording callers (chat
// front-ends, REPLs) pattern-match on, so it is kept stable.
var (
	ErrDivideByZero   = errors.New("can't divide by zero")
	ErrNotEnoughDice  = errors.New("Not enough dice to keep or drop")
	ErrBadRepeatCount = errors.New("Can't repeat 0 times or negatively")
	ErrZeroSidedDie   = errors.New("invalid `0` sides dice provided")
	ErrNilExpression  = errors.New("expression evaluated to nothing")
)

// ErrTooManyDice is returned when a dice term requests more than
// MaxDiceAmount dice.
type ErrTooManyDice struct {
	Requested uint64
}

func (e *ErrTooManyDice) Error() string {
	return fmt.Sprintf("exceeded max allowed amount of dices `%d`", MaxDiceAmount)
}

// ErrTooManySides is returned when a dice term requests more sides than
// MaxDiceSides.
type ErrTooManySides struct {
	Requested uint64
}

func (e *ErrTooManySides) Error() string {
	return fmt.Sprintf("exceeded max allowed number of dice sides `%d`", MaxDiceSides)
}

// GrammarError wraps a failure to parse a query string as dice notation.
// It is kept distinct from the semantic errors above so callers can tell
// "your syntax is wrong" apart from "your syntax rolled into an invalid
// operation".
type GrammarError struct {
	Query string
	Cause error
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("parsing dice string %q: %s", e.Query, e.Cause)
}

func (e *GrammarError) Unwrap() error {
	return e.Cause
}

func newGrammarError(query string, cause error) *GrammarError {
	return &GrammarError{Query: query, Cause: cause}
}
