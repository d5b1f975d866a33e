package review

import (
	"errors"
	"fmt"
	"io"
	"log"

	"mathclash/internal/domain"
)

// ScoreCorrect is awarded for answering a missed question.
const ScoreCorrect = 10

var (
	// ErrNothingToReview is returned when the player has no missed questions.
	ErrNothingToReview = errors.New("no missed questions to review")
)

// Service replays missed questions from a profile store.
type Service struct {
	store domain.ProfileStore
	check domain.AnswerChecker
	log   *log.Logger
}

// New returns a review service. A nil logger discards output.
func New(store domain.ProfileStore, check domain.AnswerChecker, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{store: store, check: check, log: logger}
}

// Pending returns the player's missed questions, oldest first.
func (s *Service) Pending(username domain.Username) ([]domain.Question, error) {
	profile, _, err := s.load(username)
	if err != nil {
		return nil, err
	}
	return append([]domain.Question(nil), profile.Missed...), nil
}

// Answer checks input against the oldest missed question.
func (s *Service) Answer(username domain.Username, input string) (domain.ReviewOutcome, error) {
	profile, ok, err := s.load(username)
	if err != nil {
		return domain.ReviewOutcome{}, err
	}
	if !ok || len(profile.Missed) == 0 {
		return domain.ReviewOutcome{}, ErrNothingToReview
	}

	q := profile.Missed[0]
	out := domain.ReviewOutcome{Question: q, Verdict: domain.VerdictWrong}
	switch {
	case domain.IsSkip(input):
		out.Verdict = domain.VerdictSkipped
		profile.Missed = profile.Missed[1:]
	case s.check.IsCorrect(input, q.Answer):
		out.Verdict = domain.VerdictCorrect
		out.ScoreDelta = ScoreCorrect
		profile.TotalScore += ScoreCorrect
		profile.Missed = profile.Missed[1:]
	}
	out.Remaining = len(profile.Missed)

	if out.Verdict == domain.VerdictWrong {
		return out, nil
	}
	if err := s.store.SaveProfile(profile); err != nil {
		return out, fmt.Errorf("save profile: %w", err)
	}
	s.log.Printf("%s review %q -> %s, %d left", username, q.Expression, out.Verdict, out.Remaining)
	return out, nil
}

func (s *Service) load(username domain.Username) (domain.Profile, bool, error) {
	if err := username.Validate(); err != nil {
		return domain.Profile{}, false, err
	}
	profile, ok, err := s.store.LoadProfile(username)
	if err != nil {
		return domain.Profile{}, false, fmt.Errorf("load profile: %w", err)
	}
	return profile, ok, nil
}

// Compile-time assertion that Service implements domain.ReviewService.
var _ domain.ReviewService = (*Service)(nil)
