package config

import (
	"fmt"
	"strings"
	"time"
)

// SessionBackend selects where server-side sessions are stored.
type SessionBackend string

const (
	// SessionBackendRedis stores sessions in Redis (production default).
	SessionBackendRedis SessionBackend = "redis"
	// SessionBackendMemory stores sessions in process memory (dev/tests).
	SessionBackendMemory SessionBackend = "memory"
)

// UnmarshalText implements encoding.TextUnmarshaler for SessionBackend.
func (b *SessionBackend) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "redis", "memory":
		*b = SessionBackend(v)
		return nil
	default:
		return fmt.Errorf("invalid SessionBackend: %q (valid options: redis, memory)", v)
	}
}

// AuthConfig groups authentication and session configuration.
type AuthConfig struct {
	// SessionBackend determines which session store implementation to use.
	SessionBackend SessionBackend `env:"SESSION_BACKEND" envDefault:"memory"`

	// SessionTTL is how long a login remains valid.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// BcryptCost is the bcrypt work factor for password hashing.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`

	// SeedAdminPassword, when set in dev mode, creates an "admin" account at
	// startup if one does not exist. Ignored in production mode.
	SeedAdminPassword string `env:"SEED_ADMIN_PASSWORD" envDefault:""`
}

// bcrypt's own limits; values outside this range fail at hash time.
const (
	minBcryptCost = 4
	maxBcryptCost = 31
)

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.SessionTTL < time.Minute {
		a.SessionTTL = time.Minute
	}
	if a.BcryptCost < minBcryptCost {
		a.BcryptCost = minBcryptCost
	}
	if a.BcryptCost > maxBcryptCost {
		a.BcryptCost = maxBcryptCost
	}
}
