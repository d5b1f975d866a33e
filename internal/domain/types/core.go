package types

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxUsernameLength is the longest accepted player name, in runes.
const MaxUsernameLength = 32

// ErrInvalidUsername is returned by Username.Validate.
var ErrInvalidUsername = errors.New("username must be 1-32 characters without whitespace")

// Username keys a player's score record.
type Username string

// String returns the string form of the username.
func (u Username) String() string { return string(u) }

// Validate checks that u is usable as a record key.
func (u Username) Validate() error {
	n := utf8.RuneCountInString(string(u))
	if n == 0 || n > MaxUsernameLength {
		return ErrInvalidUsername
	}
	if strings.IndexFunc(string(u), unicode.IsSpace) >= 0 {
		return ErrInvalidUsername
	}
	return nil
}

// Tier is a difficulty level. It controls operand magnitude, operator count
// and whether a second division is allowed.
type Tier int

const (
	MinTier Tier = 1
	MaxTier Tier = 3
)

// Normalize clamps t into [MinTier, MaxTier].
func (t Tier) Normalize() Tier {
	if t < MinTier {
		return MinTier
	}
	if t > MaxTier {
		return MaxTier
	}
	return t
}

// Valid reports whether t is within [MinTier, MaxTier].
func (t Tier) Valid() bool { return t >= MinTier && t <= MaxTier }

// Question is a generated expression and its precomputed answer.
type Question struct {
	Expression string  `json:"expression"`
	Answer     float64 `json:"answer"`
}
