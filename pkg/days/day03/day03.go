// Package day03 solves "Mull It Over": extracting mul instructions from
// corrupted program memory.
package day03

import (
	"iter"
	"strings"
)

// Op identifies an instruction kind.
type Op int

const (
	OpMul Op = iota
	OpDo
	OpDont
)

func (o Op) String() string {
	switch o {
	case OpMul:
		return "mul"
	case OpDo:
		return "do"
	case OpDont:
		return "don't"
	default:
		return "unknown"
	}
}

// Instruction is one well-formed instruction found in memory. A and B are
// only set for OpMul.
type Instruction struct {
	Op   Op
	A, B int
}

// maxDigits bounds each mul operand.
const maxDigits = 3

// Scan yields every well-formed instruction in memory order. After a
// failed match scanning resumes at the next byte, so "mmul(1,2)" still
// yields mul(1,2).
func Scan(memory string) iter.Seq[Instruction] {
	return func(yield func(Instruction) bool) {
		for i := 0; i < len(memory); {
			ins, n, ok := match(memory[i:])
			if !ok {
				i++
				continue
			}
			if !yield(ins) {
				return
			}
			i += n
		}
	}
}

func match(s string) (Instruction, int, bool) {
	switch {
	case strings.HasPrefix(s, "do()"):
		return Instruction{Op: OpDo}, len("do()"), true
	case strings.HasPrefix(s, "don't()"):
		return Instruction{Op: OpDont}, len("don't()"), true
	case strings.HasPrefix(s, "mul("):
		return matchMul(s)
	}
	return Instruction{}, 0, false
}

// matchMul accepts mul(X,Y) where X and Y have 1 to 3 digits.
func matchMul(s string) (Instruction, int, bool) {
	pos := len("mul(")
	a, n := number(s[pos:])
	if n == 0 {
		return Instruction{}, 0, false
	}
	pos += n
	if pos >= len(s) || s[pos] != ',' {
		return Instruction{}, 0, false
	}
	pos++
	b, n := number(s[pos:])
	if n == 0 {
		return Instruction{}, 0, false
	}
	pos += n
	if pos >= len(s) || s[pos] != ')' {
		return Instruction{}, 0, false
	}
	return Instruction{Op: OpMul, A: a, B: b}, pos + 1, true
}

// number reads up to maxDigits leading digits. A fourth digit rejects the
// operand entirely.
func number(s string) (int, int) {
	v, n := 0, 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		if n == maxDigits {
			return 0, 0
		}
		v = v*10 + int(s[n]-'0')
		n++
	}
	return v, n
}

// Part1 sums the products of every mul instruction.
func Part1(input string) (int, error) {
	sum := 0
	for ins := range Scan(input) {
		if ins.Op == OpMul {
			sum += ins.A * ins.B
		}
	}
	return sum, nil
}

// Part2 sums mul products while honouring do() and don't(). Multiplication
// starts enabled.
func Part2(input string) (int, error) {
	sum, enabled := 0, true
	for ins := range Scan(input) {
		switch ins.Op {
		case OpDo:
			enabled = true
		case OpDont:
			enabled = false
		case OpMul:
			if enabled {
				sum += ins.A * ins.B
			}
		}
	}
	return sum, nil
}
