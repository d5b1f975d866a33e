package crypto_test

import (
	"testing"

	"mathclash/internal/crypto"
)

func TestWipe(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	crypto.Wipe(b)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d = %d, want 0", i, v)
		}
	}
	crypto.Wipe(nil)
}

func TestNewSeed_Varies(t *testing.T) {
	seen := make(map[int64]bool)
	for i := 0; i < 8; i++ {
		s, err := crypto.NewSeed()
		if err != nil {
			t.Fatalf("NewSeed: %v", err)
		}
		seen[s] = true
	}
	if len(seen) < 2 {
		t.Fatal("expected distinct seeds")
	}
}
