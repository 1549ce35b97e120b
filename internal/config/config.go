package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENV" default:"development"`

	// Postgres connection string for the courses database. When running
	// behind a transaction pooler the string must carry its own SSL and
	// protocol settings; see router.New for the development defaults.
	DBConnectionString string `envconfig:"DB_CONNECTION_STRING" required:"true"`

	// Key material for verifying tokens issued by the hosted auth provider:
	// the shared HMAC secret, or a PEM public key for RSA/ECDSA tokens.
	JWTSecret string `envconfig:"SUPABASE_JWT_SECRET" required:"true"`

	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
