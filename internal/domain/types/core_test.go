package types_test

import (
	"errors"
	"strings"
	"testing"

	"mathclash/internal/domain/types"
)

func TestUsername_Validate(t *testing.T) {
	ok := []types.Username{"ada", "Player_1", "名前", types.Username(strings.Repeat("x", types.MaxUsernameLength))}
	for _, u := range ok {
		if err := u.Validate(); err != nil {
			t.Errorf("%q: unexpected error %v", u, err)
		}
	}
	bad := []types.Username{"", "two words", "tab\there", types.Username(strings.Repeat("x", types.MaxUsernameLength+1))}
	for _, u := range bad {
		if err := u.Validate(); !errors.Is(err, types.ErrInvalidUsername) {
			t.Errorf("%q: expected ErrInvalidUsername, got %v", u, err)
		}
	}
}

func TestTier_Normalize(t *testing.T) {
	cases := map[types.Tier]types.Tier{-1: 1, 0: 1, 1: 1, 2: 2, 3: 3, 4: 3}
	for in, want := range cases {
		if got := in.Normalize(); got != want {
			t.Errorf("Tier(%d).Normalize() = %d, want %d", in, got, want)
		}
	}
}

func TestProfile_WinRate(t *testing.T) {
	if got := (types.Profile{}).WinRate(); got != 0 {
		t.Fatalf("no games: got %v", got)
	}
	p := types.Profile{GamesPlayed: 4, GamesWon: 3}
	if got := p.WinRate(); got != 75 {
		t.Fatalf("got %v, want 75", got)
	}
}

func TestProfile_CloneIsIndependent(t *testing.T) {
	p := types.Profile{Missed: []types.Question{{Expression: "1 + 1", Answer: 2}}}
	c := p.Clone()
	c.Missed[0].Answer = 3
	if p.Missed[0].Answer != 2 {
		t.Fatal("clone shares missed storage")
	}
}

func TestIsSkip(t *testing.T) {
	for _, in := range []string{"s", "S", " s\n"} {
		if !types.IsSkip(in) {
			t.Errorf("IsSkip(%q) = false", in)
		}
	}
	for _, in := range []string{"", "skip", "5", "ss"} {
		if types.IsSkip(in) {
			t.Errorf("IsSkip(%q) = true", in)
		}
	}
}
