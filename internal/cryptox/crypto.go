// Package cryptox implements the one-way secret hashing used by the
// credential store: an argon2id key derived from (secret, salt), reduced to
// a SHA-256 verifier that is safe to persist.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/dmitrijs2005/academicnav/internal/common"
	"golang.org/x/crypto/argon2"
)

// SaltSize is the length in bytes of generated salts.
const SaltSize = 32

// Params tunes the argon2id derivation.
type Params struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
	KeyLen    uint32
}

// DefaultParams are the interactive-login defaults.
var DefaultParams = Params{Time: 1, MemoryKiB: 64 * 1024, Threads: 4, KeyLen: 32}

// MakeVerifier reduces a derived key to the value stored at rest.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// DeriveKey runs argon2id over secret and salt.
func DeriveKey(secret, salt []byte, p Params) []byte {
	return argon2.IDKey(secret, salt, p.Time, p.MemoryKiB, p.Threads, p.KeyLen)
}

// Hasher computes salted secret hashes with fixed parameters.
// The same (secret, salt) always yields the same hash.
type Hasher struct {
	params Params
}

// NewHasher returns a Hasher. Zero fields in p fall back to DefaultParams.
func NewHasher(p Params) *Hasher {
	if p.Time == 0 {
		p.Time = DefaultParams.Time
	}
	if p.MemoryKiB == 0 {
		p.MemoryKiB = DefaultParams.MemoryKiB
	}
	if p.Threads == 0 {
		p.Threads = DefaultParams.Threads
	}
	if p.KeyLen == 0 {
		p.KeyLen = DefaultParams.KeyLen
	}
	return &Hasher{params: p}
}

// NewSalt returns a fresh hex-encoded random salt.
func (h *Hasher) NewSalt() (string, error) {
	salt, err := common.MakeRandHexString(SaltSize)
	if err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// Hash returns the hex-encoded verifier of secret under the hex-encoded salt.
func (h *Hasher) Hash(secret []byte, salt string) (string, error) {
	rawSalt, err := hex.DecodeString(salt)
	if err != nil {
		return "", fmt.Errorf("decode salt: %w", err)
	}
	key := DeriveKey(secret, rawSalt, h.params)
	defer common.WipeByteArray(key)
	return hex.EncodeToString(MakeVerifier(key)), nil
}

// Verify reports whether secret hashes to expected under salt. The
// comparison runs in constant time.
func (h *Hasher) Verify(secret []byte, salt, expected string) bool {
	candidate, err := h.Hash(secret, salt)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(expected)) == 1
}
