// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"signup/config"
	"signup/internal/domain/service"

	"github.com/pkg/errors"
)

// Default Argon2id parameters, used when the config leaves a field zero.
const (
	defaultMemoryKiB   = 64 * 1024
	defaultIterations  = 1
	defaultParallelism = 4
	defaultSaltLength  = 16
	defaultKeyLength   = 32
)

// argon2Hasher is a concrete implementation of the PasswordHasher interface
// using Argon2id. The digest is a self-describing PHC-format string carrying
// the algorithm parameters and the per-call random salt.
type argon2Hasher struct {
	memoryKiB   uint32
	iterations  uint32
	parallelism uint8
	saltLength  uint32
	keyLength   uint32
}

// NewArgon2Hasher is the constructor for argon2Hasher. Parameters come from
// the hash section of the config; zero values fall back to the defaults above.
func NewArgon2Hasher(cfg *config.Config) service.PasswordHasher {
	hasher := &argon2Hasher{
		memoryKiB:   defaultMemoryKiB,
		iterations:  defaultIterations,
		parallelism: defaultParallelism,
		saltLength:  defaultSaltLength,
		keyLength:   defaultKeyLength,
	}

	if cfg == nil || cfg.Hash == nil {
		return hasher
	}

	if cfg.Hash.MemoryKiB > 0 {
		hasher.memoryKiB = cfg.Hash.MemoryKiB
	}
	if cfg.Hash.Iterations > 0 {
		hasher.iterations = cfg.Hash.Iterations
	}
	if cfg.Hash.Parallelism > 0 {
		hasher.parallelism = cfg.Hash.Parallelism
	}
	if cfg.Hash.SaltLength > 0 {
		hasher.saltLength = cfg.Hash.SaltLength
	}
	if cfg.Hash.KeyLength > 0 {
		hasher.keyLength = cfg.Hash.KeyLength
	}

	return hasher
}

// Hash generates a salted Argon2id digest from a plaintext password.
// A fresh salt is drawn from crypto/rand on every call, so hashing the same
// plaintext twice produces two different digests.
func (h *argon2Hasher) Hash(password string) (string, error) {
	if err := h.validateParams(); err != nil {
		return "", err
	}

	salt := make([]byte, h.saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	key := argon2.IDKey([]byte(password), salt, h.iterations, h.memoryKiB, h.parallelism, h.keyLength)

	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.memoryKiB,
		h.iterations,
		h.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// Check compares a plaintext password with an encoded Argon2id digest.
// The parameters and salt are read back from the digest itself, so digests
// produced under older parameter settings still verify.
func (h *argon2Hasher) Check(password, hash string) bool {
	memoryKiB, iterations, parallelism, salt, key, err := decodeDigest(hash)
	if err != nil {
		return false
	}

	candidate := argon2.IDKey([]byte(password), salt, iterations, memoryKiB, parallelism, uint32(len(key)))

	return subtle.ConstantTimeCompare(key, candidate) == 1
}

func (h *argon2Hasher) validateParams() error {
	if h.memoryKiB == 0 || h.iterations == 0 || h.parallelism == 0 {
		return errors.Errorf(
			"invalid argon2 parameters: m=%d t=%d p=%d",
			h.memoryKiB, h.iterations, h.parallelism,
		)
	}
	if h.saltLength == 0 || h.keyLength == 0 {
		return errors.Errorf(
			"invalid argon2 lengths: salt=%d key=%d",
			h.saltLength, h.keyLength,
		)
	}

	return nil
}

// decodeDigest parses a PHC-format Argon2id string:
// $argon2id$v=19$m=65536,t=1,p=4$<b64 salt>$<b64 key>
func decodeDigest(hash string) (memoryKiB, iterations uint32, parallelism uint8, salt, key []byte, err error) {
	parts := strings.Split(hash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, errors.New("not an argon2id digest")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return 0, 0, 0, nil, nil, errors.Wrap(err, "failed to parse digest version")
	}
	if version != argon2.Version {
		return 0, 0, 0, nil, nil, errors.Errorf("unsupported argon2 version: %d", version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memoryKiB, &iterations, &parallelism); err != nil {
		return 0, 0, 0, nil, nil, errors.Wrap(err, "failed to parse digest parameters")
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return 0, 0, 0, nil, nil, errors.Wrap(err, "failed to decode digest salt")
	}

	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return 0, 0, 0, nil, nil, errors.Wrap(err, "failed to decode digest key")
	}

	return memoryKiB, iterations, parallelism, salt, key, nil
}
