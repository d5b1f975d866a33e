package game

import (
	"fmt"

	"mathclash/internal/domain"
)

// Game is one run through the levels. It is not safe for concurrent use.
type Game struct {
	svc     *Service
	profile domain.Profile

	level      int // next level to play, 1-based
	current    *domain.Round
	results    []domain.RoundResult
	levelScore int
	finished   bool
}

// Level returns the level currently being played, or Levels+1 when done.
func (g *Game) Level() int { return g.level }

// Done reports whether every level has been scored.
func (g *Game) Done() bool { return g.finished }

// Profile returns a copy of the player's record as of the last scored round.
func (g *Game) Profile() domain.Profile { return g.profile.Clone() }

// Next returns the round for the current level, generating its question on
// first call. It returns false once the game is over.
func (g *Game) Next() (domain.Round, bool) {
	if g.finished {
		return domain.Round{}, false
	}
	if g.current == nil {
		tier := domain.Tier(g.level).Normalize()
		g.current = &domain.Round{
			Level:     g.level,
			Tier:      tier,
			Question:  g.svc.gen.Generate(tier),
			TimeLimit: g.svc.TimeLimit(g.level),
		}
	}
	return *g.current, true
}

// Submit scores the player's typed input for the current round. The skip
// sentinel is scored as a miss without consulting the checker.
func (g *Game) Submit(input string) (domain.RoundResult, error) {
	if g.finished {
		return domain.RoundResult{}, ErrGameOver
	}
	if g.current == nil {
		return domain.RoundResult{}, ErrNoRound
	}

	verdict := domain.VerdictWrong
	switch {
	case domain.IsSkip(input):
		verdict = domain.VerdictSkipped
	case g.svc.check.IsCorrect(input, g.current.Question.Answer):
		verdict = domain.VerdictCorrect
	}
	return g.score(input, verdict)
}

// Expire scores the current round as timed out.
func (g *Game) Expire() (domain.RoundResult, error) {
	if g.finished {
		return domain.RoundResult{}, ErrGameOver
	}
	if g.current == nil {
		return domain.RoundResult{}, ErrNoRound
	}
	return g.score("", domain.VerdictTimedOut)
}

// Summary reports the finished game. ok is false while levels remain.
func (g *Game) Summary() (summary domain.GameSummary, ok bool) {
	if !g.finished {
		return domain.GameSummary{}, false
	}
	return domain.GameSummary{
		Username:   g.profile.Username,
		Results:    append([]domain.RoundResult(nil), g.results...),
		LevelScore: g.levelScore,
		Passed:     g.levelScore > 0,
		Profile:    g.profile.Clone(),
	}, true
}

func (g *Game) score(input string, verdict domain.Verdict) (domain.RoundResult, error) {
	q := g.current.Question

	delta := ScoreMiss
	if verdict == domain.VerdictCorrect {
		delta = ScoreCorrect
	} else {
		g.profile.Missed = append(g.profile.Missed, q)
	}
	g.profile.TotalScore += delta
	g.levelScore += delta

	result := domain.RoundResult{
		Level:      g.level,
		Question:   q,
		Input:      input,
		Verdict:    verdict,
		ScoreDelta: delta,
	}
	g.results = append(g.results, result)
	g.current = nil
	g.level++

	if g.level > Levels {
		g.finished = true
		g.profile.GamesPlayed++
		if g.levelScore > 0 {
			g.profile.GamesWon++
		} else {
			g.profile.GamesLost++
		}
	}

	g.svc.log.Printf("%s level %d: %q -> %s (%+d, total %d)",
		g.profile.Username, result.Level, q.Expression, verdict, delta, g.profile.TotalScore)

	if err := g.svc.store.SaveProfile(g.profile); err != nil {
		return result, fmt.Errorf("save profile: %w", err)
	}
	return result, nil
}
