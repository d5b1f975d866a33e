package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"mathclash/internal/crypto"
)

const (
	// sealedFormatVersion is the newest envelope layout this package reads.
	sealedFormatVersion = 1

	saltSize = 16
)

// envelopeAD binds ciphertexts to this file kind.
var envelopeAD = []byte("mathclash/profiles")

// ErrWrongPassphrase is returned when a sealed file cannot be opened, either
// because the passphrase differs or the ciphertext was modified.
var ErrWrongPassphrase = errors.New("wrong passphrase or corrupted profile file")

// envelope is the on-disk JSON structure holding the ciphertext and KDF parameters.
type envelope struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Nonce  []byte `json:"nonce"`
	Cipher []byte `json:"cipher"`
}

// scrypt cost parameters for newly sealed files.
func scryptParamsDefault() (n, r, p int) { return 1 << 15, 8, 1 }

// seal derives a key from passphrase and encrypts plaintext into a JSON envelope.
func seal(passphrase string, plaintext []byte) ([]byte, error) {
	n, r, p := scryptParamsDefault()

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("read salt: %w", err)
	}
	key, err := scrypt.Key([]byte(passphrase), salt, n, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	defer crypto.Wipe(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("read nonce: %w", err)
	}

	return json.Marshal(envelope{
		V:      sealedFormatVersion,
		Salt:   salt,
		N:      n,
		R:      r,
		P:      p,
		Nonce:  nonce,
		Cipher: aead.Seal(nil, nonce, plaintext, envelopeAD),
	})
}

// open reverses seal.
func open(passphrase string, b []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	if env.V > sealedFormatVersion {
		return nil, fmt.Errorf("unsupported profile file version %d", env.V)
	}

	key, err := scrypt.Key([]byte(passphrase), env.Salt, env.N, env.R, env.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	defer crypto.Wipe(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	if len(env.Nonce) != aead.NonceSize() {
		return nil, ErrWrongPassphrase
	}
	pt, err := aead.Open(nil, env.Nonce, env.Cipher, envelopeAD)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}
