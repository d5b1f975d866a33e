package expr

import "unicode/utf8"

// Evaluate computes the value of a flat infix expression.
//
// The empty string, a leading or trailing operator, two operators or two
// operands in a row, and any character other than digits, operators and
// ASCII whitespace are reported as a *MalformedExpressionError.
func Evaluate(s string) (float64, error) {
	var (
		values        []float64
		ops           []byte
		expectOperand = true
		lastOp        = -1
	)

	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case isSpace(c):
			i++

		case isDigit(c):
			if !expectOperand {
				return 0, malformed(s, i, "operand without a preceding operator")
			}
			var v float64
			for i < len(s) && isDigit(s[i]) {
				v = v*10 + float64(s[i]-'0')
				i++
			}
			values = append(values, v)
			expectOperand = false

		case IsOperator(c):
			if expectOperand {
				if len(values) == 0 {
					return 0, malformed(s, i, "expression starts with operator %q", c)
				}
				return 0, malformed(s, i, "operator %q has no left operand", c)
			}
			for len(ops) > 0 && Precedence(ops[len(ops)-1]) >= Precedence(c) {
				values, ops = fold(values, ops)
			}
			ops = append(ops, c)
			expectOperand = true
			lastOp = i
			i++

		default:
			r, _ := utf8.DecodeRuneInString(s[i:])
			return 0, malformed(s, i, "unrecognized character %q", r)
		}
	}

	if len(values) == 0 && len(ops) == 0 {
		return 0, malformed(s, 0, "empty expression")
	}
	if expectOperand {
		return 0, malformed(s, lastOp, "expression ends with operator %q", s[lastOp])
	}
	for len(ops) > 0 {
		values, ops = fold(values, ops)
	}
	return values[len(values)-1], nil
}

// fold pops the top operator and its two operands and pushes the result.
// Callers guarantee at least two operands are available.
func fold(values []float64, ops []byte) ([]float64, []byte) {
	op := ops[len(ops)-1]
	ops = ops[:len(ops)-1]

	b := values[len(values)-1]
	a := values[len(values)-2]
	values = values[:len(values)-2]

	return append(values, Apply(a, b, op)), ops
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
