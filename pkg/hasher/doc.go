// Package hasher produces salted one-way hashes of form values with Argon2id
// (golang.org/x/crypto/argon2).
//
// Hash returns a self-describing PHC string:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
//
// so that Verify can later recompute the key with the same parameters. An
// explicit salt makes the result deterministic; an empty salt draws 16 random
// bytes.
//
//	h := hasher.New()
//	encoded := h.Hash("s3cret", "")
//	ok, err := h.Verify(encoded, "s3cret")
//
// Parameters can be tuned with options or loaded from the environment through
// Config.
package hasher
