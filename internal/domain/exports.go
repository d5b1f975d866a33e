package domain

import (
	interfaces "mathclash/internal/domain/interfaces"
	types "mathclash/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Username         = types.Username
	Tier             = types.Tier
	Question         = types.Question
	Profile          = types.Profile
	Verdict          = types.Verdict
	Round            = types.Round
	RoundResult      = types.RoundResult
	GameSummary      = types.GameSummary
	Dashboard        = types.Dashboard
	LeaderboardEntry = types.LeaderboardEntry
	ReviewOutcome    = types.ReviewOutcome
)

const (
	MinTier = types.MinTier
	MaxTier = types.MaxTier

	VerdictUnspecified = types.VerdictUnspecified
	VerdictCorrect     = types.VerdictCorrect
	VerdictWrong       = types.VerdictWrong
	VerdictSkipped     = types.VerdictSkipped
	VerdictTimedOut    = types.VerdictTimedOut

	SkipSentinel = types.SkipSentinel
)

// ErrInvalidUsername is returned when a player name cannot key a record.
var ErrInvalidUsername = types.ErrInvalidUsername

// IsSkip reports whether input is the skip sentinel.
func IsSkip(input string) bool { return types.IsSkip(input) }

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	QuestionGenerator = interfaces.QuestionGenerator
	AnswerChecker     = interfaces.AnswerChecker
	ProfileStore      = interfaces.ProfileStore
	ReviewService     = interfaces.ReviewService
	StatsService      = interfaces.StatsService
)
