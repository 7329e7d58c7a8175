/*
Package diceroll implements a tabletop-style dice-roll expression engine: a
parser plus evaluator that turns an arithmetic/dice expression such as
`2d6kh1 + 4`, `10d10 t7 tt9`, or `(2d6+6) ^# 8 : flavor text` into a
structured RollResult carrying a final numeric total and a human-readable
history of the steps that produced it.

# Dice Notation

Dice notation is an algebra-like system for indicating dice rolls in games.
A roll is usually written AdX, where A is the number of X-sided dice to
roll; A may be omitted if it is 1, so 1d20 can be written as d20. A dice
term may be followed by any number of modifiers (explode, reroll,
keep/drop, target counting, fudge) and combined with other terms and plain
numbers using the usual arithmetic operators. See Solver for the entry
point.

# Usage

	solver := diceroll.NewSolver("2d6 + 6 : fireball damage")
	result, err := solver.Solve()
	if err != nil {
		// grammar or semantic error
	}
	fmt.Println(result)

Solver.Solve uses a crypto/rand-backed default RandomSource.
Solver.SolveWithSource accepts a caller-supplied source, which is how
external callers (chat bots, REPLs, HTTP handlers) inject determinism for
tests or alternate entropy for production.
*/
package diceroll
