package hasher

import "errors"

var (
	// ErrInvalidHash is returned when an encoded hash cannot be parsed.
	ErrInvalidHash = errors.New("hasher: invalid encoded hash")

	// ErrIncompatibleVersion is returned when the hash was produced by another Argon2 version.
	ErrIncompatibleVersion = errors.New("hasher: incompatible argon2 version")
)
