package daily

import (
	"fmt"
	"sync"

	"puzzlepack/internal/game"
)

var (
	eqOnce   sync.Once
	eqPool   []string
	eqByExpr map[string]game.Equation
)

// masterEquations is the generation pool for flashcard days: every addition
// and subtraction over 1..12 plus the 2..9 times tables, keyed by the
// rendered expression. Built once, deterministic order.
func masterEquations() ([]string, map[string]game.Equation) {
	eqOnce.Do(func() {
		eqByExpr = make(map[string]game.Equation)
		add := func(expr string, answer int) {
			if _, dup := eqByExpr[expr]; dup {
				return
			}
			eqByExpr[expr] = game.Equation{Expression: expr, Answer: answer}
			eqPool = append(eqPool, expr)
		}
		for a := 1; a <= 12; a++ {
			for b := 1; b <= 12; b++ {
				add(fmt.Sprintf("%d + %d", a, b), a+b)
			}
		}
		for a := 2; a <= 12; a++ {
			for b := 1; b < a; b++ {
				add(fmt.Sprintf("%d - %d", a, b), a-b)
			}
		}
		for a := 2; a <= 9; a++ {
			for b := 2; b <= 9; b++ {
				add(fmt.Sprintf("%d x %d", a, b), a*b)
			}
		}
	})
	return eqPool, eqByExpr
}
