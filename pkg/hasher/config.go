package hasher

// Config holds Argon2id parameters.
type Config struct {
	Time      uint32 `env:"HASH_ARGON2_TIME" envDefault:"1"`
	Memory    uint32 `env:"HASH_ARGON2_MEMORY" envDefault:"65536"` // KiB
	Threads   uint8  `env:"HASH_ARGON2_THREADS" envDefault:"4"`
	KeyLength uint32 `env:"HASH_ARGON2_KEY_LENGTH" envDefault:"32"`
}

// DefaultConfig returns the parameters recommended by RFC 9106 for
// memory-constrained environments.
func DefaultConfig() Config {
	return Config{
		Time:      1,
		Memory:    64 * 1024,
		Threads:   4,
		KeyLength: 32,
	}
}

// NewFromConfig creates a Hasher from cfg. Zero fields keep their defaults.
func NewFromConfig(cfg Config, opts ...Option) *Hasher {
	return New(append([]Option{WithParams(cfg)}, opts...)...)
}
