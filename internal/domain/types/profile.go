package types

// Profile is a player's persisted score record.
type Profile struct {
	Username    Username   `json:"username"`
	TotalScore  int        `json:"total_score"`
	GamesPlayed int        `json:"games_played"`
	GamesWon    int        `json:"games_won"`
	GamesLost   int        `json:"games_lost"`
	Missed      []Question `json:"missed,omitempty"` // oldest first
}

// WinRate returns the percentage of games won, or 0 before the first game.
func (p Profile) WinRate() float64 {
	if p.GamesPlayed == 0 {
		return 0
	}
	return float64(p.GamesWon) / float64(p.GamesPlayed) * 100
}

// Clone returns a copy of p that shares no slice storage with it.
func (p Profile) Clone() Profile {
	p.Missed = append([]Question(nil), p.Missed...)
	return p
}
