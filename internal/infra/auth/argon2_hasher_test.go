package auth

import (
	"strings"
	"testing"

	"signup/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testConfig keeps the memory cost low so the suite stays fast.
func testConfig() *config.Config {
	return &config.Config{
		Hash: &config.HashConfig{
			MemoryKiB:   8 * 1024,
			Iterations:  1,
			Parallelism: 1,
			SaltLength:  16,
			KeyLength:   32,
		},
	}
}

func TestArgon2Hasher_Hash(t *testing.T) {
	hasher := NewArgon2Hasher(testConfig())

	password := "123456"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	// The digest is self-describing and verifies against the plaintext.
	assert.True(t, hasher.Check(password, hash))
}

func TestArgon2Hasher_SaltFreshness(t *testing.T) {
	hasher := NewArgon2Hasher(testConfig())

	password := "123456"
	first, err := hasher.Hash(password)
	require.NoError(t, err)
	second, err := hasher.Hash(password)
	require.NoError(t, err)

	// Same plaintext, two calls: the fresh salt must produce different
	// digests that both verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check(password, first))
	assert.True(t, hasher.Check(password, second))
}

func TestArgon2Hasher_Check(t *testing.T) {
	hasher := NewArgon2Hasher(testConfig())

	password := "correct horse battery staple"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong password", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
	assert.False(t, hasher.Check(password, "$argon2id$v=19$m=8192,t=1,p=1$bad salt$bad key"))
}

func TestArgon2Hasher_DefaultsWhenUnconfigured(t *testing.T) {
	hasher := NewArgon2Hasher(nil)

	hash, err := hasher.Hash("123456")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=65536,t=1,p=4$"))
	assert.True(t, hasher.Check("123456", hash))
}

func TestArgon2Hasher_InvalidParams(t *testing.T) {
	hasher := &argon2Hasher{
		memoryKiB:   8 * 1024,
		iterations:  0, // invalid
		parallelism: 1,
		saltLength:  16,
		keyLength:   32,
	}

	_, err := hasher.Hash("123456")
	assert.Error(t, err)

	hasher.iterations = 1
	hasher.keyLength = 0
	_, err = hasher.Hash("123456")
	assert.Error(t, err)
}

func TestDecodeDigest_RejectsForeignFormats(t *testing.T) {
	cases := []string{
		"",
		"plaintext",
		"$2a$10$abcdefghijklmnopqrstuv", // bcrypt
		"$argon2i$v=19$m=8192,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=18$m=8192,t=1,p=1$c2FsdA$a2V5",
	}

	for _, tc := range cases {
		_, _, _, _, _, err := decodeDigest(tc)
		assert.Error(t, err, "expected decode failure for %q", tc)
	}
}
