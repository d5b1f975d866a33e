package interfaces

import domaintypes "mathclash/internal/domain/types"

// QuestionGenerator produces one question for a difficulty tier.
type QuestionGenerator interface {
	Generate(tier domaintypes.Tier) domaintypes.Question
}

// AnswerChecker decides whether typed input matches a reference answer.
type AnswerChecker interface {
	IsCorrect(input string, reference float64) bool
}

// ReviewService replays a player's missed questions, oldest first.
type ReviewService interface {
	Pending(username domaintypes.Username) ([]domaintypes.Question, error)
	Answer(username domaintypes.Username, input string) (domaintypes.ReviewOutcome, error)
}

// StatsService reports per-player and global standings.
type StatsService interface {
	Dashboard(username domaintypes.Username) (domaintypes.Dashboard, error)
	Leaderboard(limit int) ([]domaintypes.LeaderboardEntry, error)
}
