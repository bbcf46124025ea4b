package dragonmath

import (
	"fmt"
	"math/rand"
)

// Operator is one of the three arithmetic operations a challenge can use.
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
)

// Symbol returns the operator as shown to the player.
func (o Operator) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	default:
		return "?"
	}
}

// Apply computes a op b.
func (o Operator) Apply(a, b int) int {
	switch o {
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	default:
		return a + b
	}
}

// Challenge is the active arithmetic question.
type Challenge struct {
	A, B   int
	Op     Operator
	Result int
}

// NewChallenge draws both operands uniformly from [min, max] and the
// operator uniformly from {+, -, *}.
func NewChallenge(rng *rand.Rand, min, max int) Challenge {
	span := max - min + 1
	a := min + rng.Intn(span)
	b := min + rng.Intn(span)
	op := Operator(rng.Intn(3))
	return Challenge{A: a, B: b, Op: op, Result: op.Apply(a, b)}
}

// String renders the question as "a op b".
func (c Challenge) String() string {
	return fmt.Sprintf("%d %s %d", c.A, c.Op.Symbol(), c.B)
}

// Check reports whether answer is the correct result.
func (c Challenge) Check(answer int) bool {
	return answer == c.Result
}
