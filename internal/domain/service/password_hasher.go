// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., Argon2id), keeping the domain pure.
// Implementations must produce a salted, memory-hard, self-describing digest
// with a freshly generated salt on every call, so hashing the same plaintext
// twice yields two different strings that both verify.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) bool
}
