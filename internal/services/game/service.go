package game

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"mathclash/internal/domain"
)

const (
	// Levels is the number of rounds in one game.
	Levels = 3

	ScoreCorrect = 10
	ScoreMiss    = -5
)

// DefaultTimeLimits are the per-level answer windows.
var DefaultTimeLimits = []time.Duration{20 * time.Second, 15 * time.Second, 10 * time.Second}

var (
	// ErrGameOver is returned when scoring a round after the last level.
	ErrGameOver = errors.New("game is over")
	// ErrNoRound is returned when scoring before Next has produced a round.
	ErrNoRound = errors.New("no round in progress")
)

// Config tunes a Service.
type Config struct {
	// TimeLimits holds one window per level. Missing entries reuse the last
	// one; an empty slice means DefaultTimeLimits.
	TimeLimits []time.Duration
	Logger     *log.Logger
}

// Service starts games against a profile store.
type Service struct {
	store  domain.ProfileStore
	gen    domain.QuestionGenerator
	check  domain.AnswerChecker
	limits []time.Duration
	log    *log.Logger
}

// New returns a game service.
func New(
	store domain.ProfileStore,
	gen domain.QuestionGenerator,
	check domain.AnswerChecker,
	cfg Config,
) *Service {
	limits := cfg.TimeLimits
	if len(limits) == 0 {
		limits = DefaultTimeLimits
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		store:  store,
		gen:    gen,
		check:  check,
		limits: append([]time.Duration(nil), limits...),
		log:    logger,
	}
}

// TimeLimit returns the answer window for a 1-based level.
func (s *Service) TimeLimit(level int) time.Duration {
	i := level - 1
	if i < 0 {
		i = 0
	}
	if i >= len(s.limits) {
		i = len(s.limits) - 1
	}
	return s.limits[i]
}

// Start loads (or creates) the player's profile and begins a game at level 1.
func (s *Service) Start(username domain.Username) (*Game, error) {
	if err := username.Validate(); err != nil {
		return nil, err
	}
	profile, ok, err := s.store.LoadProfile(username)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if !ok {
		profile = domain.Profile{Username: username}
		s.log.Printf("new player %s", username)
	}
	return &Game{svc: s, profile: profile, level: 1}, nil
}
