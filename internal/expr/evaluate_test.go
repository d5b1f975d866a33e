package expr_test

import (
	"errors"
	"math"
	"testing"

	"mathclash/internal/expr"
)

func TestEvaluate_Values(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"7", 7},
		{"10 - 3 - 2", 5},
		{"2 + 3 * 4", 14},
		{"10 - 4 / 2", 8},
		{"100 / 10 / 5", 2},
		{"2 * 3 + 4 * 5", 26},
		{"8 / 4 * 3", 6},
		{"1 - 5", -4},
		{"12+7*3", 33},
		{"  40 /\t8 ", 5},
		{"3 / 4", 0.75},
		{"20 - 6 * 2 + 30 / 5", 14},
		{"007 + 1", 8},
	}
	for _, tc := range cases {
		got, err := expr.Evaluate(tc.in)
		if err != nil {
			t.Fatalf("Evaluate(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("Evaluate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestEvaluate_DivisionByZeroYieldsSentinel(t *testing.T) {
	got, err := expr.Evaluate("5 / 0")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got != expr.DivisionSentinel {
		t.Fatalf("got %v, want %v", got, expr.DivisionSentinel)
	}

	// The sentinel propagates through later operators like any other value.
	got, err = expr.Evaluate("1 + 5 / 0")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got != 1+expr.DivisionSentinel {
		t.Fatalf("got %v, want %v", got, 1+expr.DivisionSentinel)
	}
}

func TestEvaluate_Malformed(t *testing.T) {
	cases := []struct {
		in     string
		offset int
	}{
		{"", 0},
		{"   ", 0},
		{"+ 3", 0},
		{"3 +", 2},
		{"3 + * 4", 4},
		{"3 4", 2},
		{"3 + x", 4},
		{"3.5 + 1", 1},
		{"(1 + 2)", 0},
		{"-3 + 1", 0},
		{"2 ÷ 1", 2},
	}
	for _, tc := range cases {
		_, err := expr.Evaluate(tc.in)
		if err == nil {
			t.Fatalf("Evaluate(%q): expected error", tc.in)
		}
		if !errors.Is(err, expr.ErrMalformedExpression) {
			t.Fatalf("Evaluate(%q): error %v does not match ErrMalformedExpression", tc.in, err)
		}
		var me *expr.MalformedExpressionError
		if !errors.As(err, &me) {
			t.Fatalf("Evaluate(%q): expected *MalformedExpressionError, got %T", tc.in, err)
		}
		if me.Offset != tc.offset {
			t.Errorf("Evaluate(%q): offset %d, want %d (%s)", tc.in, me.Offset, tc.offset, me.Reason)
		}
	}
}

func TestEvaluate_Pure(t *testing.T) {
	const in = "45 - 9 * 3 + 60 / 4"
	first, err := expr.Evaluate(in)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	for i := 0; i < 100; i++ {
		got, err := expr.Evaluate(in)
		if err != nil {
			t.Fatalf("Evaluate: %v", err)
		}
		if got != first {
			t.Fatalf("call %d: got %v, want %v", i, got, first)
		}
	}
}

func TestApply(t *testing.T) {
	if got := expr.Apply(1, 1e-10, expr.DivideOp); got != expr.DivisionSentinel {
		t.Fatalf("near-zero divisor: got %v", got)
	}
	if got := expr.Apply(-9, 3, expr.DivideOp); got != -3 {
		t.Fatalf("got %v, want -3", got)
	}
	if got := expr.Apply(2, 3, '%'); got != 0 {
		t.Fatalf("unknown operator: got %v, want 0", got)
	}
	if math.IsNaN(expr.Apply(0, 0, expr.DivideOp)) {
		t.Fatal("0/0 must not be NaN")
	}
}

func TestPrecedence(t *testing.T) {
	if expr.Precedence(expr.AddOp) != expr.Precedence(expr.SubtractOp) {
		t.Fatal("+ and - must share a precedence")
	}
	if expr.Precedence(expr.MultiplyOp) <= expr.Precedence(expr.AddOp) {
		t.Fatal("* must bind tighter than +")
	}
	if expr.Precedence('x') != 0 {
		t.Fatal("non-operators have precedence 0")
	}
}
