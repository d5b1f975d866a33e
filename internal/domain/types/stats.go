package types

// Dashboard summarizes one player's record.
type Dashboard struct {
	Username    Username
	TotalScore  int
	GamesPlayed int
	GamesWon    int
	GamesLost   int
	WinRate     float64
	Missed      int
}

// LeaderboardEntry is one ranked row of the leaderboard.
type LeaderboardEntry struct {
	Rank       int
	Username   Username
	TotalScore int
}

// ReviewOutcome reports the result of answering a missed question.
type ReviewOutcome struct {
	Question   Question
	Verdict    Verdict
	ScoreDelta int
	Remaining  int
}
