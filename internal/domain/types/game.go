package types

import (
	"strings"
	"time"
)

// SkipSentinel is typed by a player to give up on a question. It is scored
// like a wrong answer and never reaches the answer checker.
const SkipSentinel = "s"

// IsSkip reports whether input is the skip sentinel, in either case.
func IsSkip(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), SkipSentinel)
}

// Verdict is the outcome of one answered, skipped or expired round.
type Verdict int

const (
	VerdictUnspecified Verdict = iota
	VerdictCorrect
	VerdictWrong
	VerdictSkipped
	VerdictTimedOut
)

func (v Verdict) String() string {
	switch v {
	case VerdictCorrect:
		return "correct"
	case VerdictWrong:
		return "wrong"
	case VerdictSkipped:
		return "skipped"
	case VerdictTimedOut:
		return "timed out"
	default:
		return "unspecified"
	}
}

// Round is one level of a game as presented to the player.
type Round struct {
	Level     int // 1-based
	Tier      Tier
	Question  Question
	TimeLimit time.Duration
}

// RoundResult records how a round was scored.
type RoundResult struct {
	Level      int      `json:"level"`
	Question   Question `json:"question"`
	Input      string   `json:"input,omitempty"`
	Verdict    Verdict  `json:"verdict"`
	ScoreDelta int      `json:"score_delta"`
}

// GameSummary is reported once every level has been played.
type GameSummary struct {
	Username   Username
	Results    []RoundResult
	LevelScore int
	Passed     bool
	Profile    Profile
}
