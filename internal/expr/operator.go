package expr

import "math"

const (
	AddOp      byte = '+'
	SubtractOp byte = '-'
	MultiplyOp byte = '*'
	DivideOp   byte = '/'
)

const (
	AddPrecedence  = 1
	MultPrecedence = 2
)

const (
	// DivisionSentinel is the result of dividing by a near-zero divisor.
	DivisionSentinel = 1e99

	divisionEpsilon = 1e-9
)

// Operators lists the supported operators in their canonical order.
var Operators = []byte{AddOp, SubtractOp, MultiplyOp, DivideOp}

// IsOperator reports whether c is one of the four binary operators.
func IsOperator(c byte) bool {
	switch c {
	case AddOp, SubtractOp, MultiplyOp, DivideOp:
		return true
	}
	return false
}

// Precedence returns the binding strength of op, or 0 for anything that is
// not an operator.
func Precedence(op byte) int {
	switch op {
	case AddOp, SubtractOp:
		return AddPrecedence
	case MultiplyOp, DivideOp:
		return MultPrecedence
	}
	return 0
}

// Apply computes a op b. Unknown operators yield 0.
func Apply(a, b float64, op byte) float64 {
	switch op {
	case AddOp:
		return a + b
	case SubtractOp:
		return a - b
	case MultiplyOp:
		return a * b
	case DivideOp:
		if math.Abs(b) < divisionEpsilon {
			return DivisionSentinel
		}
		return a / b
	}
	return 0
}
