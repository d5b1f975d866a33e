package generator_test

import (
	"strconv"
	"strings"
	"sync"
	"testing"

	"mathclash/internal/domain"
	"mathclash/internal/expr"
	"mathclash/internal/generator"
)

const trials = 2000

// split returns the operands and operators of a generated expression.
func split(t *testing.T, s string) (operands []int, ops []string) {
	t.Helper()
	for i, tok := range strings.Fields(s) {
		if i%2 == 1 {
			ops = append(ops, tok)
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			t.Fatalf("%q: token %q is not an integer", s, tok)
		}
		operands = append(operands, n)
	}
	if len(operands) != len(ops)+1 {
		t.Fatalf("%q: %d operands for %d operators", s, len(operands), len(ops))
	}
	return operands, ops
}

func TestGenerate_SameSeedSameSequence(t *testing.T) {
	for _, opts := range [][]generator.Option{nil, {generator.WithSingleDivisionRetry()}} {
		a := generator.NewSeeded(42, opts...)
		b := generator.NewSeeded(42, opts...)
		for i := 0; i < 200; i++ {
			tier := domain.Tier(i%3 + 1)
			qa, qb := a.Generate(tier), b.Generate(tier)
			if qa != qb {
				t.Fatalf("question %d differs: %+v vs %+v", i, qa, qb)
			}
		}
	}
}

func TestGenerate_TierOne(t *testing.T) {
	g := generator.NewSeeded(1)
	for i := 0; i < trials; i++ {
		q := g.Generate(1)
		operands, ops := split(t, q.Expression)
		if len(ops) != 1 {
			t.Fatalf("%q: expected exactly one operator", q.Expression)
		}
		for _, n := range operands {
			if n < 1 || n > 10 {
				t.Fatalf("%q: operand %d outside [1, 10]", q.Expression, n)
			}
		}
		if ops[0] == "/" {
			a, b := operands[0], operands[1]
			if a%b != 0 && (2*a)%b != 0 && (4*a)%b != 0 {
				t.Fatalf("%q: divisor %d is not clean for %d", q.Expression, b, a)
			}
		}
	}
}

func TestGenerate_HigherTiers(t *testing.T) {
	g := generator.NewSeeded(7)
	for _, tier := range []domain.Tier{2, 3} {
		lo, hi := generator.OperandRange(tier)
		for i := 0; i < trials; i++ {
			q := g.Generate(tier)
			operands, ops := split(t, q.Expression)
			if len(ops) < 2 || len(ops) > 3 {
				t.Fatalf("tier %d %q: %d operators, want 2 or 3", tier, q.Expression, len(ops))
			}
			if operands[0] < lo || operands[0] > hi {
				t.Fatalf("tier %d %q: leading operand outside [%d, %d]", tier, q.Expression, lo, hi)
			}
			for j, op := range ops {
				n := operands[j+1]
				if op != "/" && (n < lo || n > hi) {
					t.Fatalf("tier %d %q: operand %d outside [%d, %d]", tier, q.Expression, n, lo, hi)
				}
			}
		}
	}
}

func TestGenerate_NeverDividesByZero(t *testing.T) {
	for _, opts := range [][]generator.Option{nil, {generator.WithSingleDivisionRetry()}} {
		g := generator.NewSeeded(3, opts...)
		for i := 0; i < trials; i++ {
			q := g.Generate(domain.Tier(i%3 + 1))
			operands, ops := split(t, q.Expression)
			for j, op := range ops {
				if op == "/" && operands[j+1] == 0 {
					t.Fatalf("%q divides by zero", q.Expression)
				}
			}
		}
	}
}

func TestGenerate_OperatorAdjacency(t *testing.T) {
	for _, opts := range [][]generator.Option{nil, {generator.WithSingleDivisionRetry()}} {
		g := generator.NewSeeded(11, opts...)
		for i := 0; i < trials; i++ {
			q := g.Generate(domain.Tier(i%3 + 1))
			_, ops := split(t, q.Expression)
			for j := 1; j < len(ops); j++ {
				prev, cur := ops[j-1], ops[j]
				if prev == cur {
					t.Fatalf("%q repeats %s", q.Expression, cur)
				}
				if (prev == "/" && cur == "*") || (prev == "*" && cur == "/") {
					t.Fatalf("%q places %s after %s", q.Expression, cur, prev)
				}
			}
		}
	}
}

func TestGenerate_TierThreeSingleDivision(t *testing.T) {
	g := generator.NewSeeded(5)
	for i := 0; i < trials; i++ {
		q := g.Generate(3)
		if n := strings.Count(q.Expression, "/"); n > 1 {
			t.Fatalf("%q uses %d divisions", q.Expression, n)
		}
	}
}

func TestGenerate_SingleDivisionRetryAllowsSecondDivision(t *testing.T) {
	g := generator.NewSeeded(99, generator.WithSingleDivisionRetry())
	for i := 0; i < 20000; i++ {
		q := g.Generate(3)
		if strings.Count(q.Expression, "/") >= 2 {
			return
		}
	}
	t.Fatal("no tier-3 question with two divisions in lax mode")
}

func TestGenerate_AnswerMatchesEvaluator(t *testing.T) {
	for _, opts := range [][]generator.Option{nil, {generator.WithSingleDivisionRetry()}} {
		g := generator.NewSeeded(9, opts...)
		for i := 0; i < trials; i++ {
			q := g.Generate(domain.Tier(i%3 + 1))
			got, err := expr.Evaluate(q.Expression)
			if err != nil {
				t.Fatalf("%q does not evaluate: %v", q.Expression, err)
			}
			if got != q.Answer {
				t.Fatalf("%q: answer %v, evaluator says %v", q.Expression, q.Answer, got)
			}
			if q.Answer == expr.DivisionSentinel {
				t.Fatalf("%q hit the division sentinel", q.Expression)
			}
		}
	}
}

func TestGenerate_ClampsTier(t *testing.T) {
	g := generator.NewSeeded(13)
	for i := 0; i < 200; i++ {
		_, ops := split(t, g.Generate(0).Expression)
		if len(ops) != 1 {
			t.Fatalf("tier 0 should behave like tier 1, got %d operators", len(ops))
		}
		lo, hi := generator.OperandRange(3)
		operands, _ := split(t, g.Generate(9).Expression)
		if operands[0] < lo || operands[0] > hi {
			t.Fatalf("tier 9 should behave like tier 3, leading operand %d", operands[0])
		}
	}
}

func TestGenerate_ConcurrentUse(t *testing.T) {
	g := generator.NewSeeded(17)
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(tier domain.Tier) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				q := g.Generate(tier)
				if _, err := expr.Evaluate(q.Expression); err != nil {
					t.Errorf("%q: %v", q.Expression, err)
					return
				}
			}
		}(domain.Tier(w%3 + 1))
	}
	wg.Wait()
}

func TestOperandRange(t *testing.T) {
	cases := []struct {
		tier   domain.Tier
		lo, hi int
	}{
		{1, 1, 10},
		{2, 10, 30},
		{3, 15, 45},
	}
	for _, tc := range cases {
		lo, hi := generator.OperandRange(tc.tier)
		if lo != tc.lo || hi != tc.hi {
			t.Errorf("tier %d: got [%d, %d], want [%d, %d]", tc.tier, lo, hi, tc.lo, tc.hi)
		}
	}
}
