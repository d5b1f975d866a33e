package interfaces

import domaintypes "mathclash/internal/domain/types"

// ProfileStore persists player score records.
type ProfileStore interface {
	SaveProfile(profile domaintypes.Profile) error
	LoadProfile(username domaintypes.Username) (domaintypes.Profile, bool, error)
	ListProfiles() ([]domaintypes.Profile, error)
}
