package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the process configuration. It is loaded once in main and
// passed into the modules; nothing reads the environment after startup.
type Config struct {
	HTTPAddr   string        `envconfig:"HTTP_ADDR"`
	DBPath     string        `envconfig:"DB_PATH"`
	JWTSecret  string        `envconfig:"JWT_SECRET"`
	JWTIssuer  string        `envconfig:"JWT_ISSUER"`
	TokenTTL   time.Duration `envconfig:"TOKEN_TTL"`
	BcryptCost int           `envconfig:"BCRYPT_COST"`
	SeedUsers  bool          `envconfig:"SEED_USERS"`
}

// Environ returns the settings from the environment.
func Environ() (*Config, error) {
	cfg := Config{
		SeedUsers: true,
	}
	err := envconfig.Process("", &cfg)
	defaults(&cfg)

	return &cfg, err
}

func defaults(c *Config) {
	if c.HTTPAddr == "" {
		c.HTTPAddr = ":3000"
	}
	if c.DBPath == "" {
		c.DBPath = "user_admin.db"
	}
	if c.JWTIssuer == "" {
		c.JWTIssuer = "user-admin-api"
	}
	if c.TokenTTL == 0 {
		c.TokenTTL = 15 * time.Minute
	}
	if c.BcryptCost == 0 {
		c.BcryptCost = 12
	}
}
