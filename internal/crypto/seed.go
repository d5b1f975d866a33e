package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed returns a generator seed read from the system CSPRNG.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
