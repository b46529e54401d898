package cryptox

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// light parameters keep the suite fast; the properties do not depend on cost
var testParams = Params{Time: 1, MemoryKiB: 1024, Threads: 1, KeyLen: 32}

func TestDeriveKey_Deterministic(t *testing.T) {
	secret := []byte("secret-password")
	salt := []byte("fixed-salt")

	key1 := DeriveKey(secret, salt, testParams)
	key2 := DeriveKey(secret, salt, testParams)

	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}
	if len(key1) != int(testParams.KeyLen) {
		t.Errorf("expected key length %d, got %d", testParams.KeyLen, len(key1))
	}
}

func TestDeriveKey_DifferentSalts(t *testing.T) {
	secret := []byte("secret-password")

	key1 := DeriveKey(secret, []byte("salt-1"), testParams)
	key2 := DeriveKey(secret, []byte("salt-2"), testParams)

	if bytes.Equal(key1, key2) {
		t.Errorf("expected different results for different salts, got same")
	}
}

func TestMakeVerifier_IsSHA256OfKey(t *testing.T) {
	v := MakeVerifier([]byte("abc"))
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", hex.EncodeToString(v))
}

func TestHasher_HashDeterminism(t *testing.T) {
	h := NewHasher(testParams)
	salt, err := h.NewSalt()
	require.NoError(t, err)

	a, err := h.Hash([]byte("pass"), salt)
	require.NoError(t, err)
	b, err := h.Hash([]byte("pass"), salt)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := h.Hash([]byte("pass2"), salt)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	salt2, err := h.NewSalt()
	require.NoError(t, err)
	other, err := h.Hash([]byte("pass"), salt2)
	require.NoError(t, err)
	assert.NotEqual(t, a, other, "fresh salts must change the hash")
}

func TestHasher_BadSalt(t *testing.T) {
	h := NewHasher(testParams)
	_, err := h.Hash([]byte("pass"), "not-hex")
	require.Error(t, err)
	assert.False(t, h.Verify([]byte("pass"), "not-hex", "whatever"))
}

func TestHasher_Verify(t *testing.T) {
	h := NewHasher(testParams)
	salt, err := h.NewSalt()
	require.NoError(t, err)
	stored, err := h.Hash([]byte("correct"), salt)
	require.NoError(t, err)

	assert.True(t, h.Verify([]byte("correct"), salt, stored))
	assert.False(t, h.Verify([]byte("wrong"), salt, stored))
}

func TestNewHasher_FillsDefaults(t *testing.T) {
	h := NewHasher(Params{MemoryKiB: 2048})
	assert.Equal(t, DefaultParams.Time, h.params.Time)
	assert.Equal(t, uint32(2048), h.params.MemoryKiB)
	assert.Equal(t, DefaultParams.Threads, h.params.Threads)
	assert.Equal(t, DefaultParams.KeyLen, h.params.KeyLen)
}

func TestNewSalt_Shape(t *testing.T) {
	h := NewHasher(testParams)
	s, err := h.NewSalt()
	require.NoError(t, err)
	raw, err := hex.DecodeString(s)
	require.NoError(t, err)
	assert.Len(t, raw, SaltSize)
}
