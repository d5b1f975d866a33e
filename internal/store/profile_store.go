package store

import (
	"io"
	"log"
	"path/filepath"
	"sort"
	"sync"

	"mathclash/internal/domain"
)

const (
	profilesFile       = "profiles.json"
	sealedProfilesFile = "profiles.enc"
)

// ProfileFileStore persists player profiles to disk.
type ProfileFileStore struct {
	doc document
	log *log.Logger

	mu sync.Mutex
}

// NewProfileFileStore returns a plain JSON ProfileFileStore rooted at dir.
func NewProfileFileStore(dir string) *ProfileFileStore {
	return &ProfileFileStore{
		doc: document{path: filepath.Join(dir, profilesFile), mode: 0o600},
		log: log.New(io.Discard, "", 0),
	}
}

// NewSealedProfileFileStore returns a ProfileFileStore rooted at dir whose
// file is encrypted under passphrase.
func NewSealedProfileFileStore(dir, passphrase string) *ProfileFileStore {
	return &ProfileFileStore{
		doc: document{
			path:       filepath.Join(dir, sealedProfilesFile),
			passphrase: passphrase,
			sealed:     true,
			mode:       0o600,
		},
		log: log.New(io.Discard, "", 0),
	}
}

// SetLogger routes store diagnostics to l.
func (s *ProfileFileStore) SetLogger(l *log.Logger) {
	if l != nil {
		s.log = l
	}
}

// Path returns the file backing the store.
func (s *ProfileFileStore) Path() string { return s.doc.path }

// SaveProfile stores or replaces the profile for profile.Username.
func (s *ProfileFileStore) SaveProfile(profile domain.Profile) error {
	if err := profile.Username.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.load()
	if err != nil {
		return err
	}
	profiles[profile.Username] = profile.Clone()
	if err := s.save(profiles); err != nil {
		return err
	}
	s.log.Printf("saved profile %s: score %d, games %d, missed %d",
		profile.Username, profile.TotalScore, profile.GamesPlayed, len(profile.Missed))
	return nil
}

// LoadProfile retrieves the profile for username.
func (s *ProfileFileStore) LoadProfile(username domain.Username) (domain.Profile, bool, error) {
	if err := username.Validate(); err != nil {
		return domain.Profile{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.load()
	if err != nil {
		return domain.Profile{}, false, err
	}
	p, ok := profiles[username]
	return p, ok, nil
}

// ListProfiles returns every stored profile ordered by username.
func (s *ProfileFileStore) ListProfiles() ([]domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Profile, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

// load reads the whole document; a missing file is an empty store.
func (s *ProfileFileStore) load() (map[domain.Username]domain.Profile, error) {
	profiles := make(map[domain.Username]domain.Profile)

	if _, err := s.doc.read(&profiles); err != nil {
		return nil, err
	}
	for name, p := range profiles {
		// The map key is authoritative.
		p.Username = name
		profiles[name] = p
	}
	return profiles, nil
}

func (s *ProfileFileStore) save(profiles map[domain.Username]domain.Profile) error {
	return s.doc.write(profiles)
}

// Compile-time assertion that ProfileFileStore implements domain.ProfileStore.
var _ domain.ProfileStore = (*ProfileFileStore)(nil)
