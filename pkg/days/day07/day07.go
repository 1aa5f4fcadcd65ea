// Package day07 solves "Bridge Repair": finding operator placements that
// make calibration equations true.
package day07

import (
	"iter"
	"strconv"
	"strings"

	"github.com/matzehuels/advent/pkg/errors"
)

// Operator combines an accumulated value with the next operand.
type Operator int

const (
	Add Operator = iota
	Mul
	Concat
)

// Apply evaluates acc op v.
func (o Operator) Apply(acc, v int) int {
	switch o {
	case Add:
		return acc + v
	case Mul:
		return acc * v
	case Concat:
		shift := 10
		for v >= shift {
			shift *= 10
		}
		return acc*shift + v
	}
	panic("day07: unknown operator " + strconv.Itoa(int(o)))
}

func (o Operator) String() string {
	switch o {
	case Add:
		return "+"
	case Mul:
		return "*"
	case Concat:
		return "||"
	}
	return "?"
}

// Equation is a target value and the operands that should produce it.
type Equation struct {
	Target   int
	Operands []int
}

// Parse reads "target: a b c" lines. Blank lines are skipped.
func Parse(input string) ([]Equation, error) {
	var eqs []Equation
	lineNo := 0
	for line := range strings.Lines(input) {
		lineNo++
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		head, tail, ok := strings.Cut(line, ":")
		if !ok {
			return nil, errors.AtLine(lineNo, nil, "missing ':' in %q", line)
		}
		target, err := strconv.Atoi(strings.TrimSpace(head))
		if err != nil {
			return nil, errors.AtLine(lineNo, err, "bad target %q", head)
		}
		fields := strings.Fields(tail)
		if len(fields) == 0 {
			return nil, errors.AtLine(lineNo, nil, "equation has no operands")
		}
		eq := Equation{Target: target, Operands: make([]int, len(fields))}
		for i, f := range fields {
			if eq.Operands[i], err = strconv.Atoi(f); err != nil {
				return nil, errors.AtLine(lineNo, err, "bad operand %q", f)
			}
		}
		eqs = append(eqs, eq)
	}
	return eqs, nil
}

// Combinations yields every assignment of ops to n slots, counting like an
// odometer with the first slot turning fastest. The yielded slice is reused
// between iterations.
func Combinations(n int, ops []Operator) iter.Seq[[]Operator] {
	return func(yield func([]Operator) bool) {
		if len(ops) == 0 && n > 0 {
			return
		}
		digits := make([]int, n)
		out := make([]Operator, n)
		for {
			for i, d := range digits {
				out[i] = ops[d]
			}
			if !yield(out) {
				return
			}
			i := 0
			for ; i < n; i++ {
				digits[i]++
				if digits[i] < len(ops) {
					break
				}
				digits[i] = 0
			}
			if i == n {
				return
			}
		}
	}
}

// Evaluate applies ops strictly left to right.
func (e Equation) Evaluate(ops []Operator) int {
	acc := e.Operands[0]
	for i, op := range ops {
		acc = op.Apply(acc, e.Operands[i+1])
	}
	return acc
}

// Solvable reports whether some placement of ops reaches the target.
func (e Equation) Solvable(ops []Operator) bool {
	for combo := range Combinations(len(e.Operands)-1, ops) {
		if e.Evaluate(combo) == e.Target {
			return true
		}
	}
	return false
}

// Calibrate sums the targets of all solvable equations.
func Calibrate(input string, ops ...Operator) (int, error) {
	eqs, err := Parse(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, e := range eqs {
		if e.Solvable(ops) {
			sum += e.Target
		}
	}
	return sum, nil
}

// Part1 calibrates with addition and multiplication.
func Part1(input string) (int, error) {
	return Calibrate(input, Add, Mul)
}

// Part2 also allows concatenation.
func Part2(input string) (int, error) {
	return Calibrate(input, Add, Mul, Concat)
}
