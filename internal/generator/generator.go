package generator

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"sync"

	"mathclash/internal/domain"
	"mathclash/internal/expr"
)

const (
	maxOperatorAttempts = 64
	maxDivisorAttempts  = 64
	maxBuildAttempts    = 8
	maxZeroRedraws      = 16
)

// cleanDivisors are tried when the running value is a multiple of ten and
// more operators follow.
var cleanDivisors = []int{2, 4, 5, 8, 10}

// Option configures a Generator.
type Option func(*Generator)

// WithSingleDivisionRetry makes the tier-3 division guard redraw a second
// division only once, as the original game did. The redrawn operator may be
// a division again, so expressions with two divisions become possible.
func WithSingleDivisionRetry() Option {
	return func(g *Generator) { g.singleDivisionRetry = true }
}

// Generator produces questions from its own random stream. It is safe for
// concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand

	singleDivisionRetry bool
}

// New returns a Generator drawing from src.
func New(src rand.Source, opts ...Option) *Generator {
	g := &Generator{rng: rand.New(src)}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewSeeded returns a Generator whose output is fully determined by seed.
func NewSeeded(seed int64, opts ...Option) *Generator {
	return New(rand.NewSource(seed), opts...)
}

// OperandRange returns the inclusive operand bounds for tier after
// normalization.
func OperandRange(tier domain.Tier) (lo, hi int) {
	tier = tier.Normalize()
	if tier == domain.MinTier {
		return 1, 10
	}
	return 5 * int(tier), 15 * int(tier)
}

// Generate returns a new question for tier. Tiers outside [1, 3] are clamped.
func (g *Generator) Generate(tier domain.Tier) domain.Question {
	tier = tier.Normalize()

	g.mu.Lock()
	defer g.mu.Unlock()

	for attempt := 0; attempt < maxBuildAttempts; attempt++ {
		q, err := g.build(tier)
		if err == nil {
			return q
		}
	}
	return g.fallbackQuestion()
}

func (g *Generator) build(tier domain.Tier) (domain.Question, error) {
	lo, hi := OperandRange(tier)
	numOps := 1
	if tier > domain.MinTier {
		numOps = g.between(2, 3)
	}

	var sb strings.Builder
	sb.WriteString(strconv.Itoa(g.between(lo, hi)))

	var last byte
	divisionUsed := false
	for i := 0; i < numOps; i++ {
		op := g.drawOperator(last, tier == domain.MaxTier && divisionUsed)
		next := g.between(lo, hi)

		if op == expr.DivideOp {
			d, ok := g.divisorFor(sb.String(), next, lo, hi, i < numOps-1)
			if ok {
				next = d
			} else {
				op = fallbackOperator(last, true)
			}
		}
		if op == expr.DivideOp {
			divisionUsed = true
		}

		fmt.Fprintf(&sb, " %c %d", op, next)
		last = op
	}

	text := sb.String()
	answer, err := expr.Evaluate(text)
	if err != nil {
		return domain.Question{}, fmt.Errorf("evaluate %q: %w", text, err)
	}
	return domain.Question{Expression: text, Answer: answer}, nil
}

// drawOperator picks the next operator given the previous one. forbidDivision
// is set at tier 3 once a division has been emitted.
func (g *Generator) drawOperator(last byte, forbidDivision bool) byte {
	for attempt := 0; attempt < maxOperatorAttempts; attempt++ {
		op := g.randomOperator()
		if forbidDivision && op == expr.DivideOp {
			if !g.singleDivisionRetry {
				continue
			}
			op = g.randomOperator()
		}
		if allowedAfter(last, op) {
			return op
		}
	}
	return fallbackOperator(last, forbidDivision)
}

// divisorFor chooses a divisor for the expression built so far. candidate is
// kept when it already divides the running value cleanly; otherwise a bounded
// search looks for one that does. ok is false when the partial expression
// cannot be evaluated, in which case the caller drops the division.
func (g *Generator) divisorFor(partial string, candidate, lo, hi int, moreOps bool) (divisor int, ok bool) {
	for i := 0; candidate == 0 && i < maxZeroRedraws; i++ {
		candidate = g.between(lo, hi)
	}
	if candidate == 0 {
		candidate = 1
	}

	running, err := expr.Evaluate(partial)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(running) || math.Abs(running) > math.MaxInt32 {
		return candidate, true
	}
	cur := int(running)

	if divides(cur, candidate) || divides(4*cur, candidate) {
		return candidate, true
	}

	d := candidate
	for attempt := 0; attempt < maxDivisorAttempts; attempt++ {
		if cur%10 == 0 && moreOps {
			d = cleanDivisors[g.rng.Intn(len(cleanDivisors))]
		} else {
			d = g.between(1, 10)
		}
		if d != cur && (divides(cur, d) || divides(2*cur, d) || divides(4*cur, d)) {
			return d, true
		}
	}
	return d, true
}

// fallbackQuestion is only reached if every build attempt failed to
// evaluate, which the construction rules make unreachable in practice.
func (g *Generator) fallbackQuestion() domain.Question {
	a, b := g.between(1, 10), g.between(1, 10)
	return domain.Question{
		Expression: fmt.Sprintf("%d %c %d", a, expr.AddOp, b),
		Answer:     float64(a + b),
	}
}

func (g *Generator) randomOperator() byte {
	return expr.Operators[g.rng.Intn(len(expr.Operators))]
}

func (g *Generator) between(lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

// allowedAfter reports whether op may follow last: no repeats and no * next
// to /.
func allowedAfter(last, op byte) bool {
	if op == last {
		return false
	}
	if last == expr.DivideOp && op == expr.MultiplyOp {
		return false
	}
	if last == expr.MultiplyOp && op == expr.DivideOp {
		return false
	}
	return true
}

// fallbackOperator returns the first operator in canonical order that may
// follow last.
func fallbackOperator(last byte, forbidDivision bool) byte {
	for _, op := range expr.Operators {
		if forbidDivision && op == expr.DivideOp {
			continue
		}
		if allowedAfter(last, op) {
			return op
		}
	}
	return expr.AddOp
}

func divides(n, d int) bool { return d != 0 && n%d == 0 }

// Compile-time assertion that Generator implements domain.QuestionGenerator.
var _ domain.QuestionGenerator = (*Generator)(nil)
