package checker

import (
	"math"
	"strconv"
	"strings"

	"mathclash/internal/domain"
)

const (
	// ExactTolerance applies when the reference is essentially integral.
	ExactTolerance = 0.01
	// DecimalTolerance is the general closeness bound.
	DecimalTolerance = 0.1

	zeroDenominator = 1e-9
)

// Policy holds the tolerances used to compare answers.
type Policy struct {
	Exact   float64
	Decimal float64
}

// DefaultPolicy uses ExactTolerance and DecimalTolerance.
var DefaultPolicy = Policy{Exact: ExactTolerance, Decimal: DecimalTolerance}

// IsCorrect reports whether input matches reference under DefaultPolicy.
func IsCorrect(input string, reference float64) bool {
	return DefaultPolicy.IsCorrect(input, reference)
}

// IsCorrect reports whether input matches reference under p.
func (p Policy) IsCorrect(input string, reference float64) bool {
	got := ParseAnswer(input)
	if math.IsNaN(got) {
		return false
	}
	// Covers matching infinities, where the differences below are NaN.
	if got == reference {
		return true
	}
	if math.Abs(got-reference) < p.Decimal {
		return true
	}
	floor := math.Floor(reference)
	return math.Abs(reference-floor) < p.Exact && math.Abs(got-floor) < p.Exact
}

// ParseAnswer converts typed input to a number. A fraction with a
// denominator closer to zero than 1e-9 is +Inf. Unparseable input is NaN.
func ParseAnswer(input string) float64 {
	input = strings.TrimSpace(input)
	num, den, isFraction := strings.Cut(input, "/")
	if !isFraction {
		return parseNumber(input)
	}

	n, d := parseNumber(num), parseNumber(den)
	if math.IsNaN(n) || math.IsNaN(d) {
		return math.NaN()
	}
	if math.Abs(d) < zeroDenominator {
		return math.Inf(1)
	}
	return n / d
}

func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Compile-time assertion that Policy implements domain.AnswerChecker.
var _ domain.AnswerChecker = Policy{}
