package hasher

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const saltLength = 16

// Hasher hashes strings with Argon2id.
type Hasher struct {
	params Config
}

// Option configures a Hasher.
type Option func(*Hasher)

// WithParams overrides Argon2id parameters. Zero fields are ignored.
func WithParams(cfg Config) Option {
	return func(h *Hasher) {
		if cfg.Time > 0 {
			h.params.Time = cfg.Time
		}
		if cfg.Memory > 0 {
			h.params.Memory = cfg.Memory
		}
		if cfg.Threads > 0 {
			h.params.Threads = cfg.Threads
		}
		if cfg.KeyLength > 0 {
			h.params.KeyLength = cfg.KeyLength
		}
	}
}

// New creates a Hasher with DefaultConfig parameters.
func New(opts ...Option) *Hasher {
	h := &Hasher{params: DefaultConfig()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Hash derives an Argon2id key from value and returns it in PHC format.
// An empty salt is replaced by random bytes.
func (h *Hasher) Hash(value, salt string) string {
	saltBytes := []byte(salt)
	if len(saltBytes) == 0 {
		saltBytes = make([]byte, saltLength)
		_, _ = rand.Read(saltBytes)
	}
	return h.encode(saltBytes, h.derive(value, saltBytes, h.params))
}

// Verify reports whether value hashes to encoded, using the parameters
// recorded in encoded rather than the Hasher's own.
func (h *Hasher) Verify(encoded, value string) (bool, error) {
	p, salt, key, err := decode(encoded)
	if err != nil {
		return false, err
	}
	other := h.derive(value, salt, p)
	return subtle.ConstantTimeCompare(key, other) == 1, nil
}

func (h *Hasher) derive(value string, salt []byte, p Config) []byte {
	return argon2.IDKey([]byte(value), salt, p.Time, p.Memory, p.Threads, p.KeyLength)
}

func (h *Hasher) encode(salt, key []byte) string {
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.Memory, h.params.Time, h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
}

func decode(encoded string) (Config, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return Config{}, nil, nil, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return Config{}, nil, nil, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	if version != argon2.Version {
		return Config{}, nil, nil, ErrIncompatibleVersion
	}

	var p Config
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Threads); err != nil {
		return Config{}, nil, nil, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return Config{}, nil, nil, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return Config{}, nil, nil, fmt.Errorf("%w: bad key", ErrInvalidHash)
	}
	p.KeyLength = uint32(len(key))

	return p, salt, key, nil
}
