// Package crypto exposes the few randomness and hygiene helpers mathclash
// needs outside the sealed profile store.
//
// Contents
//
//   - Seeds for the question generator drawn from crypto/rand (NewSeed)
//   - Best-effort memory wiping for derived keys (Wipe)
package crypto
