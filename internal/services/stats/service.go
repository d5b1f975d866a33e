package stats

import (
	"errors"
	"fmt"
	"sort"

	"mathclash/internal/domain"
)

// ErrUnknownPlayer is returned for a player with no stored record.
var ErrUnknownPlayer = errors.New("unknown player")

// Service reads standings from a profile store.
type Service struct {
	store domain.ProfileStore
}

// New returns a stats service backed by the given store.
func New(store domain.ProfileStore) *Service { return &Service{store: store} }

// Dashboard summarizes one player's record.
func (s *Service) Dashboard(username domain.Username) (domain.Dashboard, error) {
	if err := username.Validate(); err != nil {
		return domain.Dashboard{}, err
	}
	p, ok, err := s.store.LoadProfile(username)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("load profile: %w", err)
	}
	if !ok {
		return domain.Dashboard{}, fmt.Errorf("%w: %s", ErrUnknownPlayer, username)
	}
	return domain.Dashboard{
		Username:    p.Username,
		TotalScore:  p.TotalScore,
		GamesPlayed: p.GamesPlayed,
		GamesWon:    p.GamesWon,
		GamesLost:   p.GamesLost,
		WinRate:     p.WinRate(),
		Missed:      len(p.Missed),
	}, nil
}

// Leaderboard ranks players by total score, highest first, breaking ties by
// name. A limit of zero or less returns every player.
func (s *Service) Leaderboard(limit int) ([]domain.LeaderboardEntry, error) {
	profiles, err := s.store.ListProfiles()
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	sort.SliceStable(profiles, func(i, j int) bool {
		if profiles[i].TotalScore != profiles[j].TotalScore {
			return profiles[i].TotalScore > profiles[j].TotalScore
		}
		return profiles[i].Username < profiles[j].Username
	})
	if limit > 0 && len(profiles) > limit {
		profiles = profiles[:limit]
	}

	out := make([]domain.LeaderboardEntry, len(profiles))
	for i, p := range profiles {
		out[i] = domain.LeaderboardEntry{Rank: i + 1, Username: p.Username, TotalScore: p.TotalScore}
	}
	return out, nil
}

// Compile-time assertion that Service implements domain.StatsService.
var _ domain.StatsService = (*Service)(nil)
